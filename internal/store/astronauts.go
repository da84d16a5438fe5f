package store

import (
	"context"
	"fmt"

	"stellar-cargo/internal/models"
)

func astronautID(a models.Astronaut) string { return a.ID }

func (s *Store) Astronauts() []models.Astronaut {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.astronauts)
}

func (s *Store) FindAstronaut(id string) (models.Astronaut, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.astronauts, id, astronautID); i >= 0 {
		return s.astronauts[i], true
	}
	return models.Astronaut{}, false
}

func (s *Store) AddAstronaut(ctx context.Context, in models.AstronautInput) models.Astronaut {
	s.mu.Lock()
	a := models.Astronaut{
		ID:           s.newID("astro"),
		Name:         in.Name,
		Rank:         in.Rank,
		Specialty:    in.Specialty,
		Status:       in.Status,
		ModuleID:     in.ModuleID,
		MissionCount: in.MissionCount,
		Avatar:       in.Avatar,
		Bio:          in.Bio,
	}
	s.astronauts = append(s.astronauts, a)
	entry := s.record(ctx, "Astronaut Added", fmt.Sprintf("New astronaut '%s' added", a.Name))
	s.mu.Unlock()

	s.publish(entry)
	return a
}

func (s *Store) UpdateAstronaut(ctx context.Context, id string, patch models.AstronautPatch) (models.Astronaut, bool) {
	s.mu.Lock()
	i := indexByID(s.astronauts, id, astronautID)
	if i < 0 {
		s.mu.Unlock()
		return models.Astronaut{}, false
	}
	a := patch.Apply(s.astronauts[i])
	s.astronauts[i] = a
	entry := s.record(ctx, "Astronaut Updated", fmt.Sprintf("Astronaut '%s' updated", id))
	s.mu.Unlock()

	s.publish(entry)
	return a, true
}

func (s *Store) DeleteAstronaut(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := indexByID(s.astronauts, id, astronautID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	a := s.astronauts[i]
	s.astronauts = removeAt(s.astronauts, i)
	if s.refs == ReferenceNullify {
		for j := range s.missions {
			s.missions[j].AstronautIDs = withoutID(s.missions[j].AstronautIDs, id)
		}
	}
	entry := s.record(ctx, "Astronaut Deleted", fmt.Sprintf("Astronaut '%s' removed", a.Name))
	s.mu.Unlock()

	s.publish(entry)
	return true
}
