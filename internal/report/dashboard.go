package report

import (
	"math"

	"stellar-cargo/internal/models"
)

// DashboardPreview is how many modules and activity entries the dashboard shows.
const DashboardPreview = 4

type ModuleCapacity struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Status  models.ModuleStatus `json:"status"`
	Percent int                 `json:"percent"`
}

type Dashboard struct {
	TotalCargo         int                  `json:"totalCargo"`
	PendingCargo       int                  `json:"pendingCargo"`
	ActiveAstronauts   int                  `json:"activeAstronauts"`
	AvailableModules   int                  `json:"availableModules"`
	ActiveModules      int                  `json:"activeModules"`
	MaintenanceModules int                  `json:"maintenanceModules"`
	CargoCapacityUsed  int                  `json:"cargoCapacityUsed"`
	UpcomingMissions   int                  `json:"upcomingMissions"`
	ActiveMissions     int                  `json:"activeMissions"`
	Modules            []ModuleCapacity     `json:"modules"`
	RecentActivity     []models.ActivityLog `json:"recentActivity"`
}

// Inputs groups the collections the dashboard reduces over. ActivityLogs
// must be newest first.
type Inputs struct {
	Cargo        []models.Cargo
	Astronauts   []models.Astronaut
	Modules      []models.Module
	Missions     []models.Mission
	ActivityLogs []models.ActivityLog
}

func BuildDashboard(in Inputs) Dashboard {
	d := Dashboard{
		TotalCargo:     len(in.Cargo),
		Modules:        make([]ModuleCapacity, 0, DashboardPreview),
		RecentActivity: make([]models.ActivityLog, 0, DashboardPreview),
	}
	for _, c := range in.Cargo {
		if c.Status == models.CargoPending {
			d.PendingCargo++
		}
	}
	for _, a := range in.Astronauts {
		if a.Status == models.AstronautActive {
			d.ActiveAstronauts++
		}
	}
	var capacity, used float64
	for _, m := range in.Modules {
		capacity += m.Capacity
		used += m.UsedCapacity
		switch m.Status {
		case models.ModuleActive:
			d.ActiveModules++
		case models.ModuleMaintenance:
			d.MaintenanceModules++
		}
		if m.Status != models.ModuleOffline {
			d.AvailableModules++
		}
	}
	if capacity > 0 {
		d.CargoCapacityUsed = int(math.Round(used / capacity * 100))
	}
	for _, m := range in.Missions {
		switch m.Status {
		case models.MissionPlanned:
			d.UpcomingMissions++
		case models.MissionInProgress:
			d.ActiveMissions++
		}
	}
	for i, m := range in.Modules {
		if i == DashboardPreview {
			break
		}
		d.Modules = append(d.Modules, ModuleCapacity{ID: m.ID, Name: m.Name, Status: m.Status, Percent: CapacityPercent(m)})
	}
	for i, l := range in.ActivityLogs {
		if i == DashboardPreview {
			break
		}
		d.RecentActivity = append(d.RecentActivity, l)
	}
	return d
}
