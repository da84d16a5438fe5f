// Package export serializes collections for download and optionally keeps
// a copy of every export in an archive.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Category string

const (
	CategoryCargo      Category = "cargo"
	CategoryModules    Category = "modules"
	CategoryAstronauts Category = "astronauts"
	CategoryMissions   Category = "missions"
	CategoryActivity   Category = "activity"
)

// ReportCategories are the tabs of the reports page.
var ReportCategories = []Category{CategoryCargo, CategoryModules, CategoryAstronauts, CategoryMissions}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryCargo, CategoryModules, CategoryAstronauts, CategoryMissions, CategoryActivity:
		return c, nil
	}
	return c, fmt.Errorf("unknown export category %q", s)
}

// Filename is the fixed download name of a category.
func Filename(c Category) string {
	switch c {
	case CategoryCargo:
		return "cargo-report.json"
	case CategoryModules:
		return "modules-report.json"
	case CategoryAstronauts:
		return "astronauts-report.json"
	case CategoryMissions:
		return "missions-report.json"
	case CategoryActivity:
		return "activity-logs.json"
	}
	return "report.json"
}

// Marshal renders v as JSON indented by two spaces, without a trailing newline.
func Marshal(v any) ([]byte, error) {
	if v == nil {
		v = struct{}{}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

func Encode(w io.Writer, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
