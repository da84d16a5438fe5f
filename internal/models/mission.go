package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type MissionStatus string

const (
	MissionPlanned    MissionStatus = "planned"
	MissionInProgress MissionStatus = "in-progress"
	MissionCompleted  MissionStatus = "completed"
	MissionAborted    MissionStatus = "aborted"
)

var MissionStatuses = []MissionStatus{MissionPlanned, MissionInProgress, MissionCompleted, MissionAborted}

func (s MissionStatus) Valid() bool {
	for _, v := range MissionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Mission references modules, astronauts and cargo by id only.
type Mission struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       MissionStatus `json:"status"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      *time.Time    `json:"endDate,omitempty"`
	Description  string        `json:"description"`
	ModuleIDs    []string      `json:"moduleIds"`
	AstronautIDs []string      `json:"astronautIds"`
	CargoIDs     []string      `json:"cargoIds"`
}

// Clone returns a copy that shares no slices or pointers with m.
func (m Mission) Clone() Mission {
	m.ModuleIDs = cloneIDs(m.ModuleIDs)
	m.AstronautIDs = cloneIDs(m.AstronautIDs)
	m.CargoIDs = cloneIDs(m.CargoIDs)
	if m.EndDate != nil {
		end := *m.EndDate
		m.EndDate = &end
	}
	return m
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}

type MissionInput struct {
	Name         string        `json:"name"`
	Status       MissionStatus `json:"status"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      *time.Time    `json:"endDate,omitempty"`
	Description  string        `json:"description"`
	ModuleIDs    []string      `json:"moduleIds"`
	AstronautIDs []string      `json:"astronautIds"`
	CargoIDs     []string      `json:"cargoIds"`
}

func (in MissionInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown mission status %q", ErrInvalid, in.Status)
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalid)
	}
	return nil
}

type MissionPatch struct {
	Name         *string        `json:"name,omitempty"`
	Status       *MissionStatus `json:"status,omitempty"`
	StartDate    *time.Time     `json:"startDate,omitempty"`
	EndDate      *time.Time     `json:"endDate,omitempty"`
	Description  *string        `json:"description,omitempty"`
	ModuleIDs    *[]string      `json:"moduleIds,omitempty"`
	AstronautIDs *[]string      `json:"astronautIds,omitempty"`
	CargoIDs     *[]string      `json:"cargoIds,omitempty"`
}

func (p MissionPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown mission status %q", ErrInvalid, *p.Status)
	}
	return nil
}

func (p MissionPatch) Apply(m Mission) Mission {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.StartDate != nil {
		m.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		m.EndDate = &end
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.ModuleIDs != nil {
		m.ModuleIDs = cloneIDs(*p.ModuleIDs)
	}
	if p.AstronautIDs != nil {
		m.AstronautIDs = cloneIDs(*p.AstronautIDs)
	}
	if p.CargoIDs != nil {
		m.CargoIDs = cloneIDs(*p.CargoIDs)
	}
	return m
}
