package store

import (
	"context"
	"fmt"

	"stellar-cargo/internal/models"
)

func moduleID(m models.Module) string { return m.ID }

func (s *Store) Modules() []models.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.modules)
}

func (s *Store) FindModule(id string) (models.Module, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.modules, id, moduleID); i >= 0 {
		return s.modules[i], true
	}
	return models.Module{}, false
}

func (s *Store) AddModule(ctx context.Context, in models.ModuleInput) models.Module {
	s.mu.Lock()
	m := models.Module{
		ID:              s.newID("module"),
		Name:            in.Name,
		Status:          in.Status,
		Capacity:        in.Capacity,
		UsedCapacity:    in.UsedCapacity,
		Location:        in.Location,
		AstronautCount:  in.AstronautCount,
		CargoCount:      in.CargoCount,
		LastMaintenance: in.LastMaintenance,
	}
	s.modules = append(s.modules, m)
	entry := s.record(ctx, "Module Added", fmt.Sprintf("New module '%s' added", m.Name))
	s.mu.Unlock()

	s.publish(entry)
	return m
}

func (s *Store) UpdateModule(ctx context.Context, id string, patch models.ModulePatch) (models.Module, bool) {
	s.mu.Lock()
	i := indexByID(s.modules, id, moduleID)
	if i < 0 {
		s.mu.Unlock()
		return models.Module{}, false
	}
	m := patch.Apply(s.modules[i])
	s.modules[i] = m
	entry := s.record(ctx, "Module Updated", fmt.Sprintf("Module '%s' updated", id))
	s.mu.Unlock()

	s.publish(entry)
	return m, true
}

// DeleteModule removes the module. Under ReferenceNullify cargo and
// astronauts hosted by it become unassigned and missions drop it.
func (s *Store) DeleteModule(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := indexByID(s.modules, id, moduleID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	m := s.modules[i]
	s.modules = removeAt(s.modules, i)
	if s.refs == ReferenceNullify {
		for j := range s.cargo {
			if s.cargo[j].ModuleID == id {
				s.cargo[j].ModuleID = ""
			}
		}
		for j := range s.astronauts {
			if s.astronauts[j].ModuleID == id {
				s.astronauts[j].ModuleID = ""
			}
		}
		for j := range s.missions {
			s.missions[j].ModuleIDs = withoutID(s.missions[j].ModuleIDs, id)
		}
	}
	entry := s.record(ctx, "Module Deleted", fmt.Sprintf("Module '%s' removed", m.Name))
	s.mu.Unlock()

	s.publish(entry)
	return true
}
