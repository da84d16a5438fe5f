package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stellar-cargo/internal/models"
)

type SortField string

const (
	SortNone        SortField = ""
	SortName        SortField = "name"
	SortType        SortField = "type"
	SortWeight      SortField = "weight"
	SortVolume      SortField = "volume"
	SortStatus      SortField = "status"
	SortDestination SortField = "destination"
	SortModule      SortField = "moduleId"
	SortAssignedTo  SortField = "assignedTo"
	SortCreatedAt   SortField = "createdAt"
	SortUpdatedAt   SortField = "updatedAt"
)

var sortFields = []SortField{
	SortName, SortType, SortWeight, SortVolume, SortStatus, SortDestination,
	SortModule, SortAssignedTo, SortCreatedAt, SortUpdatedAt,
}

func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortNone, nil
	}
	for _, f := range sortFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort field %q", s)
}

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(s) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("unknown sort direction %q", s)
}

// SortState is the current sort column and direction of the cargo table.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// DefaultCargoSort is the table's initial state: newest first.
var DefaultCargoSort = SortState{Field: SortCreatedAt, Direction: Desc}

// ToggleSort applies a click on a column header: the active column flips
// direction, any other column becomes active ascending.
func ToggleSort(state SortState, field SortField) SortState {
	if state.Field == field {
		if state.Direction == Asc {
			return SortState{Field: field, Direction: Desc}
		}
		return SortState{Field: field, Direction: Asc}
	}
	return SortState{Field: field, Direction: Asc}
}

type CargoFilter struct {
	Query  string
	Status string
	Type   string
	Sort   SortState
}

// Cargo matches name and destination against the query, applies the status
// and type filters and then the optional sort.
func Cargo(items []models.Cargo, f CargoFilter) []models.Cargo {
	out := make([]models.Cargo, 0, len(items))
	for _, c := range items {
		if !containsFold(f.Query, c.Name, c.Destination) {
			continue
		}
		if !matchesAll(f.Status) && string(c.Status) != f.Status {
			continue
		}
		if !matchesAll(f.Type) && string(c.Type) != f.Type {
			continue
		}
		out = append(out, c)
	}
	SortCargo(out, f.Sort)
	return out
}

// SortCargo sorts items in place. Text columns compare lowercased under an
// English collator; numbers and timestamps compare by value. Ties keep
// their input order.
func SortCargo(items []models.Cargo, state SortState) {
	if state.Field == SortNone {
		return
	}
	cmp := cargoComparator(state.Field)
	if cmp == nil {
		return
	}
	desc := state.Direction == Desc
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return cmp(items[j], items[i]) < 0
		}
		return cmp(items[i], items[j]) < 0
	})
}

func cargoComparator(field SortField) func(a, b models.Cargo) int {
	text := func(get func(models.Cargo) string) func(a, b models.Cargo) int {
		col := collate.New(language.English)
		return func(a, b models.Cargo) int {
			return col.CompareString(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}
	switch field {
	case SortName:
		return text(func(c models.Cargo) string { return c.Name })
	case SortType:
		return text(func(c models.Cargo) string { return string(c.Type) })
	case SortStatus:
		return text(func(c models.Cargo) string { return string(c.Status) })
	case SortDestination:
		return text(func(c models.Cargo) string { return c.Destination })
	case SortModule:
		return text(func(c models.Cargo) string { return c.ModuleID })
	case SortAssignedTo:
		return text(func(c models.Cargo) string { return c.AssignedTo })
	case SortWeight:
		return func(a, b models.Cargo) int { return compareFloat(a.Weight, b.Weight) }
	case SortVolume:
		return func(a, b models.Cargo) int { return compareFloat(a.Volume, b.Volume) }
	case SortCreatedAt:
		return func(a, b models.Cargo) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	case SortUpdatedAt:
		return func(a, b models.Cargo) int { return compareTime(a.UpdatedAt, b.UpdatedAt) }
	}
	return nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}
