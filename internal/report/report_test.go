package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-cargo/internal/fixtures"
	"stellar-cargo/internal/models"
)

func seedInputs() Inputs {
	seed := fixtures.Seed()
	logs := make([]models.ActivityLog, 0, len(seed.ActivityLogs))
	for i := len(seed.ActivityLogs) - 1; i >= 0; i-- {
		logs = append(logs, seed.ActivityLogs[i])
	}
	return Inputs{
		Cargo:        seed.Cargo,
		Astronauts:   seed.Astronauts,
		Modules:      seed.Modules,
		Missions:     seed.Missions,
		ActivityLogs: logs,
	}
}

func TestBuildDashboardOnSeed(t *testing.T) {
	d := BuildDashboard(seedInputs())

	assert.Equal(t, 5, d.TotalCargo)
	assert.Equal(t, 1, d.PendingCargo)
	assert.Equal(t, 2, d.ActiveAstronauts)
	assert.Equal(t, 3, d.AvailableModules)
	assert.Equal(t, 1, d.ActiveModules)
	assert.Equal(t, 1, d.MaintenanceModules)
	assert.Equal(t, 23, d.CargoCapacityUsed)
	assert.Equal(t, 1, d.UpcomingMissions)
	assert.Equal(t, 1, d.ActiveMissions)

	require.Len(t, d.Modules, 4)
	percents := []int{d.Modules[0].Percent, d.Modules[1].Percent, d.Modules[2].Percent, d.Modules[3].Percent}
	assert.Equal(t, []int{65, 25, 13, 0}, percents)

	require.Len(t, d.RecentActivity, 4)
	assert.Equal(t, "log-001", d.RecentActivity[0].ID)
	assert.Equal(t, "log-004", d.RecentActivity[3].ID)
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(Inputs{})
	assert.Zero(t, d.CargoCapacityUsed)
	assert.NotNil(t, d.Modules)
	assert.NotNil(t, d.RecentActivity)
}

func TestCapacityPercent(t *testing.T) {
	assert.Equal(t, 65, CapacityPercent(models.Module{Capacity: 100, UsedCapacity: 65}))
	assert.Equal(t, 0, CapacityPercent(models.Module{Capacity: 0, UsedCapacity: 10}))
	// over-full modules are reported as is
	assert.Equal(t, 150, CapacityPercent(models.Module{Capacity: 10, UsedCapacity: 15}))
}

func TestCargoReport(t *testing.T) {
	r := Cargo(fixtures.Seed().Cargo)

	assert.Equal(t, []Point{
		{Name: "food", Value: 1}, {Name: "equipment", Value: 1}, {Name: "experiment", Value: 1},
		{Name: "medical", Value: 1}, {Name: "personal", Value: 1},
	}, r.ByType)
	assert.Equal(t, []Point{
		{Name: "loaded", Value: 2}, {Name: "unloaded", Value: 1}, {Name: "in transit", Value: 1}, {Name: "pending", Value: 1},
	}, r.ByStatus)
	assert.Equal(t, []Point{
		{Name: "ISS", Value: 575}, {Name: "Lunar Base", Value: 320}, {Name: "Mars Outpost", Value: 150}, {Name: "Earth", Value: 200},
	}, r.WeightByPlace)
}

func TestCargoReportSkipsEmptyBuckets(t *testing.T) {
	r := Cargo([]models.Cargo{{Type: models.CargoFood, Status: models.CargoPending, Destination: "ISS", Weight: 3}})
	assert.Equal(t, []Point{{Name: "food", Value: 1}}, r.ByType)
	assert.Equal(t, []Point{{Name: "pending", Value: 1}}, r.ByStatus)

	empty := Cargo(nil)
	assert.NotNil(t, empty.ByType)
	assert.NotNil(t, empty.WeightByPlace)
}

func TestAstronautReport(t *testing.T) {
	r := Astronauts(fixtures.Seed().Astronauts)

	assert.Equal(t, []Point{{Name: "active", Value: 2}, {Name: "in transit", Value: 1}, {Name: "training", Value: 1}}, r.ByStatus)
	assert.Len(t, r.BySpecialty, 4)
	assert.Equal(t, []Experience{
		{Name: "Dr. Eliza Shannon", Missions: 6},
		{Name: "Major David Chen", Missions: 4},
		{Name: "Lt. Sophia Rodriguez", Missions: 3},
		{Name: "Dr. James Wilson", Missions: 2},
	}, r.Experience)
}

func TestAstronautReportTopTen(t *testing.T) {
	crew := make([]models.Astronaut, 0, 12)
	for i := 0; i < 12; i++ {
		crew = append(crew, models.Astronaut{Name: fmt.Sprintf("crew-%02d", i), Specialty: "Ops", Status: models.AstronautActive, MissionCount: i % 4})
	}
	r := Astronauts(crew)
	require.Len(t, r.Experience, TopExperience)
	assert.Equal(t, "crew-03", r.Experience[0].Name)
	assert.Equal(t, "crew-07", r.Experience[1].Name)
	assert.Equal(t, []Point{{Name: "Ops", Value: 12}}, r.BySpecialty)
}

func TestModuleReport(t *testing.T) {
	r := Modules(fixtures.Seed().Modules)

	assert.Equal(t, []Point{
		{Name: "active", Value: 1}, {Name: "maintenance", Value: 1}, {Name: "docking", Value: 1}, {Name: "offline", Value: 1},
	}, r.ByStatus)
	assert.Equal(t, CapacityRow{Name: "Tranquility", Capacity: 120, Used: 30, Available: 90}, r.Capacity[1])
	assert.Equal(t, Distribution{Name: "Harmony", Astronauts: 2, Cargo: 5}, r.Distribution[0])
}

func TestMissionReport(t *testing.T) {
	r := Missions(fixtures.Seed().Missions)

	assert.Equal(t, []Point{{Name: "planned", Value: 1}, {Name: "in progress", Value: 1}, {Name: "completed", Value: 1}}, r.ByStatus)
	assert.Equal(t, []Crew{
		{Name: "ISS Resupply", Astronauts: 2},
		{Name: "Lunar Base Expansion", Astronauts: 2},
		{Name: "Mars Sample Return", Astronauts: 2},
	}, r.Crew)
	assert.Equal(t, []Resources{
		{Name: "ISS Resupply", Modules: 1, Cargo: 2, Crew: 2},
		{Name: "Lunar Base Expa...", Modules: 2, Cargo: 1, Crew: 2},
		{Name: "Mars Sample Ret...", Modules: 1, Cargo: 1, Crew: 2},
	}, r.Resources)
}
