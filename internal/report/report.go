// Package report computes dashboard figures and per-category report series
// by reducing over the live collections. Nothing is cached.
package report

import (
	"math"
	"sort"
	"strings"

	"stellar-cargo/internal/models"
)

// Point is one named value of a chart series.
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// displayStatus replaces the first hyphen with a space ("in-transit" -> "in transit").
func displayStatus(s string) string {
	return strings.Replace(s, "-", " ", 1)
}

// histogram counts items per key in the order of keys, skipping empty buckets.
func histogram[K ~string, T any](keys []K, items []T, key func(T) K, label func(K) string) []Point {
	out := make([]Point, 0, len(keys))
	for _, k := range keys {
		n := 0
		for _, item := range items {
			if key(item) == k {
				n++
			}
		}
		if n > 0 {
			out = append(out, Point{Name: label(k), Value: float64(n)})
		}
	}
	return out
}

// accumulate sums value per name in first-seen order.
func accumulate[T any](items []T, name func(T) string, value func(T) float64) []Point {
	out := make([]Point, 0)
	index := make(map[string]int)
	for _, item := range items {
		n := name(item)
		if i, ok := index[n]; ok {
			out[i].Value += value(item)
			continue
		}
		index[n] = len(out)
		out = append(out, Point{Name: n, Value: value(item)})
	}
	return out
}

// CapacityPercent is the module's used share of capacity, rounded to a
// whole percent. A module without capacity reports 0.
func CapacityPercent(m models.Module) int {
	if m.Capacity <= 0 {
		return 0
	}
	return int(math.Round(m.UsedCapacity / m.Capacity * 100))
}

// CargoReport feeds the cargo tab.
type CargoReport struct {
	ByType        []Point `json:"byType"`
	ByStatus      []Point `json:"byStatus"`
	WeightByPlace []Point `json:"weightByDestination"`
}

func Cargo(items []models.Cargo) CargoReport {
	return CargoReport{
		ByType: histogram(models.CargoTypes, items,
			func(c models.Cargo) models.CargoType { return c.Type },
			func(t models.CargoType) string { return string(t) }),
		ByStatus: histogram(models.CargoStatuses, items,
			func(c models.Cargo) models.CargoStatus { return c.Status },
			func(s models.CargoStatus) string { return displayStatus(string(s)) }),
		WeightByPlace: accumulate(items,
			func(c models.Cargo) string { return c.Destination },
			func(c models.Cargo) float64 { return c.Weight }),
	}
}

// Experience is one bar of the mission-experience chart.
type Experience struct {
	Name     string `json:"name"`
	Missions int    `json:"missions"`
}

// TopExperience is the number of astronauts in the experience chart.
const TopExperience = 10

type AstronautReport struct {
	ByStatus    []Point      `json:"byStatus"`
	BySpecialty []Point      `json:"bySpecialty"`
	Experience  []Experience `json:"experience"`
}

func Astronauts(items []models.Astronaut) AstronautReport {
	exp := make([]Experience, 0, len(items))
	for _, a := range items {
		exp = append(exp, Experience{Name: a.Name, Missions: a.MissionCount})
	}
	sort.SliceStable(exp, func(i, j int) bool { return exp[i].Missions > exp[j].Missions })
	if len(exp) > TopExperience {
		exp = exp[:TopExperience]
	}
	return AstronautReport{
		ByStatus: histogram(models.AstronautStatuses, items,
			func(a models.Astronaut) models.AstronautStatus { return a.Status },
			func(s models.AstronautStatus) string { return displayStatus(string(s)) }),
		BySpecialty: accumulate(items,
			func(a models.Astronaut) string { return a.Specialty },
			func(models.Astronaut) float64 { return 1 }),
		Experience: exp,
	}
}

type CapacityRow struct {
	Name      string  `json:"name"`
	Capacity  float64 `json:"capacity"`
	Used      float64 `json:"used"`
	Available float64 `json:"available"`
}

type Distribution struct {
	Name       string `json:"name"`
	Astronauts int    `json:"astronauts"`
	Cargo      int    `json:"cargo"`
}

type ModuleReport struct {
	ByStatus     []Point        `json:"byStatus"`
	Capacity     []CapacityRow  `json:"capacity"`
	Distribution []Distribution `json:"distribution"`
}

func Modules(items []models.Module) ModuleReport {
	r := ModuleReport{
		ByStatus: histogram(models.ModuleStatuses, items,
			func(m models.Module) models.ModuleStatus { return m.Status },
			func(s models.ModuleStatus) string { return string(s) }),
		Capacity:     make([]CapacityRow, 0, len(items)),
		Distribution: make([]Distribution, 0, len(items)),
	}
	for _, m := range items {
		r.Capacity = append(r.Capacity, CapacityRow{
			Name:      m.Name,
			Capacity:  m.Capacity,
			Used:      m.UsedCapacity,
			Available: m.Capacity - m.UsedCapacity,
		})
		r.Distribution = append(r.Distribution, Distribution{
			Name:       m.Name,
			Astronauts: m.AstronautCount,
			Cargo:      m.CargoCount,
		})
	}
	return r
}

// MaxLabelLength bounds mission names in the resource chart.
const MaxLabelLength = 15

type Crew struct {
	Name       string `json:"name"`
	Astronauts int    `json:"astronauts"`
}

type Resources struct {
	Name    string `json:"name"`
	Modules int    `json:"modules"`
	Cargo   int    `json:"cargo"`
	Crew    int    `json:"crew"`
}

type MissionReport struct {
	ByStatus  []Point     `json:"byStatus"`
	Crew      []Crew      `json:"crew"`
	Resources []Resources `json:"resources"`
}

func Missions(items []models.Mission) MissionReport {
	r := MissionReport{
		ByStatus: histogram(models.MissionStatuses, items,
			func(m models.Mission) models.MissionStatus { return m.Status },
			func(s models.MissionStatus) string { return displayStatus(string(s)) }),
		Crew:      make([]Crew, 0, len(items)),
		Resources: make([]Resources, 0, len(items)),
	}
	for _, m := range items {
		r.Crew = append(r.Crew, Crew{Name: m.Name, Astronauts: len(m.AstronautIDs)})
		r.Resources = append(r.Resources, Resources{
			Name:    truncate(m.Name, MaxLabelLength),
			Modules: len(m.ModuleIDs),
			Cargo:   len(m.CargoIDs),
			Crew:    len(m.AstronautIDs),
		})
	}
	return r
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
