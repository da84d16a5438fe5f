package models

import (
	"fmt"
	"strings"
)

type AstronautStatus string

const (
	AstronautActive    AstronautStatus = "active"
	AstronautInTransit AstronautStatus = "in-transit"
	AstronautOnLeave   AstronautStatus = "on-leave"
	AstronautTraining  AstronautStatus = "training"
)

var AstronautStatuses = []AstronautStatus{AstronautActive, AstronautInTransit, AstronautOnLeave, AstronautTraining}

func (s AstronautStatus) Valid() bool {
	for _, v := range AstronautStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Astronaut struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rank         string          `json:"rank"`
	Specialty    string          `json:"specialty"`
	Status       AstronautStatus `json:"status"`
	ModuleID     string          `json:"moduleId,omitempty"`
	MissionCount int             `json:"missionCount"`
	Avatar       string          `json:"avatar,omitempty"`
	Bio          string          `json:"bio"`
}

type AstronautInput struct {
	Name         string          `json:"name"`
	Rank         string          `json:"rank"`
	Specialty    string          `json:"specialty"`
	Status       AstronautStatus `json:"status"`
	ModuleID     string          `json:"moduleId,omitempty"`
	MissionCount int             `json:"missionCount"`
	Avatar       string          `json:"avatar,omitempty"`
	Bio          string          `json:"bio"`
}

func (in AstronautInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown astronaut status %q", ErrInvalid, in.Status)
	}
	if in.MissionCount < 0 {
		return fmt.Errorf("%w: mission count must not be negative", ErrInvalid)
	}
	return nil
}

type AstronautPatch struct {
	Name         *string          `json:"name,omitempty"`
	Rank         *string          `json:"rank,omitempty"`
	Specialty    *string          `json:"specialty,omitempty"`
	Status       *AstronautStatus `json:"status,omitempty"`
	ModuleID     *string          `json:"moduleId,omitempty"`
	MissionCount *int             `json:"missionCount,omitempty"`
	Avatar       *string          `json:"avatar,omitempty"`
	Bio          *string          `json:"bio,omitempty"`
}

func (p AstronautPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown astronaut status %q", ErrInvalid, *p.Status)
	}
	if p.MissionCount != nil && *p.MissionCount < 0 {
		return fmt.Errorf("%w: mission count must not be negative", ErrInvalid)
	}
	return nil
}

func (p AstronautPatch) Apply(a Astronaut) Astronaut {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Rank != nil {
		a.Rank = *p.Rank
	}
	if p.Specialty != nil {
		a.Specialty = *p.Specialty
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ModuleID != nil {
		a.ModuleID = *p.ModuleID
	}
	if p.MissionCount != nil {
		a.MissionCount = *p.MissionCount
	}
	if p.Avatar != nil {
		a.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
	return a
}
