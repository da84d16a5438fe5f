// Package views derives the filtered and sorted listings shown on each page.
// Every function is pure: it reads the collection it is given and returns a
// new slice, never nil, in the input order unless a sort is requested.
package views

import (
	"strings"

	"stellar-cargo/internal/models"
)

// All disables a status or type filter. The empty string does too.
const All = "all"

func matchesAll(filter string) bool {
	return filter == "" || filter == All
}

// containsFold reports whether any field contains query, ignoring case.
func containsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

type AstronautFilter struct {
	Query  string
	Status string
}

func Astronauts(items []models.Astronaut, f AstronautFilter) []models.Astronaut {
	out := make([]models.Astronaut, 0, len(items))
	for _, a := range items {
		if !containsFold(f.Query, a.Name, a.Specialty, a.Rank) {
			continue
		}
		if !matchesAll(f.Status) && string(a.Status) != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

type ModuleFilter struct {
	Query  string
	Status string
}

func Modules(items []models.Module, f ModuleFilter) []models.Module {
	out := make([]models.Module, 0, len(items))
	for _, m := range items {
		if !containsFold(f.Query, m.Name, m.Location) {
			continue
		}
		if !matchesAll(f.Status) && string(m.Status) != f.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}

type MissionFilter struct {
	Query  string
	Status string
}

func Missions(items []models.Mission, f MissionFilter) []models.Mission {
	out := make([]models.Mission, 0, len(items))
	for _, m := range items {
		if !containsFold(f.Query, m.Name, m.Description) {
			continue
		}
		if !matchesAll(f.Status) && string(m.Status) != f.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}
