package models

import (
	"fmt"
	"strings"
	"time"
)

type CargoType string

const (
	CargoFood       CargoType = "food"
	CargoEquipment  CargoType = "equipment"
	CargoExperiment CargoType = "experiment"
	CargoMedical    CargoType = "medical"
	CargoPersonal   CargoType = "personal"
)

// CargoTypes lists every cargo type in display order.
var CargoTypes = []CargoType{CargoFood, CargoEquipment, CargoExperiment, CargoMedical, CargoPersonal}

func (t CargoType) Valid() bool {
	for _, v := range CargoTypes {
		if v == t {
			return true
		}
	}
	return false
}

type CargoStatus string

const (
	CargoLoaded    CargoStatus = "loaded"
	CargoUnloaded  CargoStatus = "unloaded"
	CargoInTransit CargoStatus = "in-transit"
	CargoPending   CargoStatus = "pending"
)

var CargoStatuses = []CargoStatus{CargoLoaded, CargoUnloaded, CargoInTransit, CargoPending}

func (s CargoStatus) Valid() bool {
	for _, v := range CargoStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Cargo is a trackable physical item. Weight is in kg, volume in m³.
type Cargo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        CargoType   `json:"type"`
	Weight      float64     `json:"weight"`
	Volume      float64     `json:"volume"`
	Status      CargoStatus `json:"status"`
	ModuleID    string      `json:"moduleId,omitempty"`
	Destination string      `json:"destination"`
	AssignedTo  string      `json:"assignedTo,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CargoInput carries the caller-supplied fields of a new cargo item.
type CargoInput struct {
	Name        string      `json:"name"`
	Type        CargoType   `json:"type"`
	Weight      float64     `json:"weight"`
	Volume      float64     `json:"volume"`
	Status      CargoStatus `json:"status"`
	ModuleID    string      `json:"moduleId,omitempty"`
	Destination string      `json:"destination"`
	AssignedTo  string      `json:"assignedTo,omitempty"`
}

func (in CargoInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown cargo type %q", ErrInvalid, in.Type)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown cargo status %q", ErrInvalid, in.Status)
	}
	if in.Weight < 0 || in.Volume < 0 {
		return fmt.Errorf("%w: weight and volume must not be negative", ErrInvalid)
	}
	return nil
}

// CargoPatch is a partial update. Nil fields are left untouched.
type CargoPatch struct {
	Name        *string      `json:"name,omitempty"`
	Type        *CargoType   `json:"type,omitempty"`
	Weight      *float64     `json:"weight,omitempty"`
	Volume      *float64     `json:"volume,omitempty"`
	Status      *CargoStatus `json:"status,omitempty"`
	ModuleID    *string      `json:"moduleId,omitempty"`
	Destination *string      `json:"destination,omitempty"`
	AssignedTo  *string      `json:"assignedTo,omitempty"`
}

func (p CargoPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: unknown cargo type %q", ErrInvalid, *p.Type)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown cargo status %q", ErrInvalid, *p.Status)
	}
	if (p.Weight != nil && *p.Weight < 0) || (p.Volume != nil && *p.Volume < 0) {
		return fmt.Errorf("%w: weight and volume must not be negative", ErrInvalid)
	}
	return nil
}

// Apply merges the patch into c and returns the result.
func (p CargoPatch) Apply(c Cargo) Cargo {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.Volume != nil {
		c.Volume = *p.Volume
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ModuleID != nil {
		c.ModuleID = *p.ModuleID
	}
	if p.Destination != nil {
		c.Destination = *p.Destination
	}
	if p.AssignedTo != nil {
		c.AssignedTo = *p.AssignedTo
	}
	return c
}
