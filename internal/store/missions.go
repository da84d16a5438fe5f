package store

import (
	"context"
	"fmt"

	"stellar-cargo/internal/models"
)

func missionID(m models.Mission) string { return m.ID }

func (s *Store) Missions() []models.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMissions(s.missions)
}

func (s *Store) FindMission(id string) (models.Mission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.missions, id, missionID); i >= 0 {
		return s.missions[i].Clone(), true
	}
	return models.Mission{}, false
}

func (s *Store) AddMission(ctx context.Context, in models.MissionInput) models.Mission {
	s.mu.Lock()
	m := models.Mission{
		ID:           s.newID("mission"),
		Name:         in.Name,
		Status:       in.Status,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		ModuleIDs:    in.ModuleIDs,
		AstronautIDs: in.AstronautIDs,
		CargoIDs:     in.CargoIDs,
	}.Clone()
	s.missions = append(s.missions, m)
	entry := s.record(ctx, "Mission Added", fmt.Sprintf("New mission '%s' added", m.Name))
	s.mu.Unlock()

	s.publish(entry)
	return m.Clone()
}

func (s *Store) UpdateMission(ctx context.Context, id string, patch models.MissionPatch) (models.Mission, bool) {
	s.mu.Lock()
	i := indexByID(s.missions, id, missionID)
	if i < 0 {
		s.mu.Unlock()
		return models.Mission{}, false
	}
	m := patch.Apply(s.missions[i].Clone())
	s.missions[i] = m
	entry := s.record(ctx, "Mission Updated", fmt.Sprintf("Mission '%s' updated", id))
	s.mu.Unlock()

	s.publish(entry)
	return m.Clone(), true
}

func (s *Store) DeleteMission(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := indexByID(s.missions, id, missionID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	m := s.missions[i]
	s.missions = removeAt(s.missions, i)
	entry := s.record(ctx, "Mission Deleted", fmt.Sprintf("Mission '%s' removed", m.Name))
	s.mu.Unlock()

	s.publish(entry)
	return true
}
