package store

import (
	"context"
	"fmt"
	"time"

	"stellar-cargo/internal/models"
)

func cargoID(c models.Cargo) string { return c.ID }

func (s *Store) Cargo() []models.Cargo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.cargo)
}

func (s *Store) FindCargo(id string) (models.Cargo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.cargo, id, cargoID); i >= 0 {
		return s.cargo[i], true
	}
	return models.Cargo{}, false
}

// AddCargo stores a new item with a generated id and both timestamps set to now.
func (s *Store) AddCargo(ctx context.Context, in models.CargoInput) models.Cargo {
	s.mu.Lock()
	now := s.now()
	c := models.Cargo{
		ID:          s.newID("cargo"),
		Name:        in.Name,
		Type:        in.Type,
		Weight:      in.Weight,
		Volume:      in.Volume,
		Status:      in.Status,
		ModuleID:    in.ModuleID,
		Destination: in.Destination,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.cargo = append(s.cargo, c)
	entry := s.record(ctx, "Cargo Created", fmt.Sprintf("New cargo '%s' created", c.Name))
	s.mu.Unlock()

	s.publish(entry)
	return c
}

// UpdateCargo merges patch into the item and refreshes UpdatedAt, which
// always moves forward. It reports false when id is unknown.
func (s *Store) UpdateCargo(ctx context.Context, id string, patch models.CargoPatch) (models.Cargo, bool) {
	s.mu.Lock()
	i := indexByID(s.cargo, id, cargoID)
	if i < 0 {
		s.mu.Unlock()
		return models.Cargo{}, false
	}
	c := patch.Apply(s.cargo[i])
	now := s.now()
	if !now.After(c.UpdatedAt) {
		now = c.UpdatedAt.Add(time.Nanosecond)
	}
	c.UpdatedAt = now
	s.cargo[i] = c
	entry := s.record(ctx, "Cargo Updated", fmt.Sprintf("Cargo '%s' updated", id))
	s.mu.Unlock()

	s.publish(entry)
	return c, true
}

// DeleteCargo removes the item. It reports false when id is unknown.
func (s *Store) DeleteCargo(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := indexByID(s.cargo, id, cargoID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	c := s.cargo[i]
	s.cargo = removeAt(s.cargo, i)
	if s.refs == ReferenceNullify {
		for j := range s.missions {
			s.missions[j].CargoIDs = withoutID(s.missions[j].CargoIDs, id)
		}
	}
	entry := s.record(ctx, "Cargo Deleted", fmt.Sprintf("Cargo '%s' deleted", c.Name))
	s.mu.Unlock()

	s.publish(entry)
	return true
}
