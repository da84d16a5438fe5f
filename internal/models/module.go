package models

import (
	"fmt"
	"strings"
	"time"
)

type ModuleStatus string

const (
	ModuleActive      ModuleStatus = "active"
	ModuleMaintenance ModuleStatus = "maintenance"
	ModuleDocking     ModuleStatus = "docking"
	ModuleOffline     ModuleStatus = "offline"
)

var ModuleStatuses = []ModuleStatus{ModuleActive, ModuleMaintenance, ModuleDocking, ModuleOffline}

func (s ModuleStatus) Valid() bool {
	for _, v := range ModuleStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Module is a station compartment. Capacity and UsedCapacity are in m³;
// UsedCapacity is expected to stay within [0, Capacity] but nothing enforces it.
// AstronautCount and CargoCount are maintained by hand.
type Module struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Status          ModuleStatus `json:"status"`
	Capacity        float64      `json:"capacity"`
	UsedCapacity    float64      `json:"usedCapacity"`
	Location        string       `json:"location"`
	AstronautCount  int          `json:"astronautCount"`
	CargoCount      int          `json:"cargoCount"`
	LastMaintenance time.Time    `json:"lastMaintenance"`
}

type ModuleInput struct {
	Name            string       `json:"name"`
	Status          ModuleStatus `json:"status"`
	Capacity        float64      `json:"capacity"`
	UsedCapacity    float64      `json:"usedCapacity"`
	Location        string       `json:"location"`
	AstronautCount  int          `json:"astronautCount"`
	CargoCount      int          `json:"cargoCount"`
	LastMaintenance time.Time    `json:"lastMaintenance"`
}

func (in ModuleInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown module status %q", ErrInvalid, in.Status)
	}
	if in.Capacity < 0 || in.UsedCapacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalid)
	}
	if in.AstronautCount < 0 || in.CargoCount < 0 {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalid)
	}
	return nil
}

type ModulePatch struct {
	Name            *string       `json:"name,omitempty"`
	Status          *ModuleStatus `json:"status,omitempty"`
	Capacity        *float64      `json:"capacity,omitempty"`
	UsedCapacity    *float64      `json:"usedCapacity,omitempty"`
	Location        *string       `json:"location,omitempty"`
	AstronautCount  *int          `json:"astronautCount,omitempty"`
	CargoCount      *int          `json:"cargoCount,omitempty"`
	LastMaintenance *time.Time    `json:"lastMaintenance,omitempty"`
}

func (p ModulePatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown module status %q", ErrInvalid, *p.Status)
	}
	if (p.Capacity != nil && *p.Capacity < 0) || (p.UsedCapacity != nil && *p.UsedCapacity < 0) {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalid)
	}
	if (p.AstronautCount != nil && *p.AstronautCount < 0) || (p.CargoCount != nil && *p.CargoCount < 0) {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalid)
	}
	return nil
}

func (p ModulePatch) Apply(m Module) Module {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Capacity != nil {
		m.Capacity = *p.Capacity
	}
	if p.UsedCapacity != nil {
		m.UsedCapacity = *p.UsedCapacity
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.AstronautCount != nil {
		m.AstronautCount = *p.AstronautCount
	}
	if p.CargoCount != nil {
		m.CargoCount = *p.CargoCount
	}
	if p.LastMaintenance != nil {
		m.LastMaintenance = *p.LastMaintenance
	}
	return m
}
