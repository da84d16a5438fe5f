// Package fixtures holds the seed dataset the store starts from and the
// demo accounts accepted by the login gate.
package fixtures

import (
	"time"

	"stellar-cargo/internal/models"
)

// Dataset is a full set of collections used to seed a store.
type Dataset struct {
	Cargo        []models.Cargo
	Astronauts   []models.Astronaut
	Modules      []models.Module
	Missions     []models.Mission
	ActivityLogs []models.ActivityLog
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}

// Users are the demo accounts.
func Users() []models.User {
	return []models.User{
		{ID: "user-001", Name: "John Administrator", Email: "john@spacehack.com", Role: models.RoleAdmin, Avatar: "/placeholder.svg"},
		{ID: "user-002", Name: "Sarah Astronaut", Email: "sarah@spacehack.com", Role: models.RoleAstronaut, Avatar: "/placeholder.svg"},
		{ID: "user-003", Name: "Mike Technician", Email: "mike@spacehack.com", Role: models.RoleStaff, Avatar: "/placeholder.svg"},
	}
}

// Seed returns a fresh copy of the station dataset. Activity logs are
// ordered oldest first.
func Seed() Dataset {
	return Dataset{
		Cargo: []models.Cargo{
			{ID: "cargo-001", Name: "Water Supply", Type: models.CargoFood, Weight: 500, Volume: 0.8, Status: models.CargoLoaded,
				ModuleID: "module-001", Destination: "ISS", AssignedTo: "user-002",
				CreatedAt: ts("2025-02-10T14:00:00Z"), UpdatedAt: ts("2025-02-11T09:30:00Z")},
			{ID: "cargo-002", Name: "Experimental Equipment", Type: models.CargoEquipment, Weight: 320, Volume: 1.2, Status: models.CargoInTransit,
				ModuleID: "module-002", Destination: "Lunar Base",
				CreatedAt: ts("2025-01-20T10:15:00Z"), UpdatedAt: ts("2025-01-25T16:45:00Z")},
			{ID: "cargo-003", Name: "Medical Supplies", Type: models.CargoMedical, Weight: 150, Volume: 0.5, Status: models.CargoPending,
				Destination: "Mars Outpost",
				CreatedAt: ts("2025-03-05T08:30:00Z"), UpdatedAt: ts("2025-03-05T08:30:00Z")},
			{ID: "cargo-004", Name: "Personal Items", Type: models.CargoPersonal, Weight: 75, Volume: 0.3, Status: models.CargoUnloaded,
				ModuleID: "module-001", Destination: "ISS", AssignedTo: "user-002",
				CreatedAt: ts("2025-02-01T12:00:00Z"), UpdatedAt: ts("2025-02-15T18:20:00Z")},
			{ID: "cargo-005", Name: "Scientific Samples", Type: models.CargoExperiment, Weight: 200, Volume: 0.4, Status: models.CargoLoaded,
				ModuleID: "module-003", Destination: "Earth",
				CreatedAt: ts("2025-03-10T09:45:00Z"), UpdatedAt: ts("2025-03-12T14:30:00Z")},
		},
		Astronauts: []models.Astronaut{
			{ID: "astro-001", Name: "Dr. Eliza Shannon", Rank: "Commander", Specialty: "Mission Specialist", Status: models.AstronautActive,
				ModuleID: "module-001", MissionCount: 6, Avatar: "/placeholder.svg",
				Bio: "Dr. Shannon has led multiple missions to the ISS and holds a Ph.D in Astrophysics."},
			{ID: "astro-002", Name: "Major David Chen", Rank: "Pilot", Specialty: "Navigation", Status: models.AstronautActive,
				ModuleID: "module-001", MissionCount: 4, Avatar: "/placeholder.svg",
				Bio: "Major Chen is an experienced pilot with over 2000 hours of flight time in various spacecraft."},
			{ID: "astro-003", Name: "Dr. James Wilson", Rank: "Science Officer", Specialty: "Biology", Status: models.AstronautTraining,
				MissionCount: 2, Avatar: "/placeholder.svg",
				Bio: "Dr. Wilson specializes in space biology experiments and has authored numerous research papers."},
			{ID: "astro-004", Name: "Lt. Sophia Rodriguez", Rank: "Engineer", Specialty: "Mechanical Systems", Status: models.AstronautInTransit,
				ModuleID: "module-002", MissionCount: 3, Avatar: "/placeholder.svg",
				Bio: "Lt. Rodriguez is an expert in spacecraft maintenance and has solved critical mechanical issues during previous missions."},
		},
		Modules: []models.Module{
			{ID: "module-001", Name: "Harmony", Status: models.ModuleActive, Capacity: 100, UsedCapacity: 65, Location: "ISS",
				AstronautCount: 2, CargoCount: 5, LastMaintenance: ts("2025-01-15T00:00:00Z")},
			{ID: "module-002", Name: "Tranquility", Status: models.ModuleDocking, Capacity: 120, UsedCapacity: 30, Location: "En Route to Lunar Base",
				AstronautCount: 1, CargoCount: 3, LastMaintenance: ts("2025-02-20T00:00:00Z")},
			{ID: "module-003", Name: "Discovery", Status: models.ModuleMaintenance, Capacity: 80, UsedCapacity: 10, Location: "Earth Orbit",
				AstronautCount: 0, CargoCount: 1, LastMaintenance: ts("2025-03-10T00:00:00Z")},
			{ID: "module-004", Name: "Perseverance", Status: models.ModuleOffline, Capacity: 150, UsedCapacity: 0, Location: "Lunar Base",
				AstronautCount: 0, CargoCount: 0, LastMaintenance: ts("2025-01-05T00:00:00Z")},
		},
		Missions: []models.Mission{
			{ID: "mission-001", Name: "ISS Resupply", Status: models.MissionInProgress,
				StartDate: ts("2025-02-10T00:00:00Z"), EndDate: tsPtr("2025-02-25T00:00:00Z"),
				Description:  "Regular resupply mission to the International Space Station",
				ModuleIDs:    []string{"module-001"},
				AstronautIDs: []string{"astro-001", "astro-002"},
				CargoIDs:     []string{"cargo-001", "cargo-004"}},
			{ID: "mission-002", Name: "Lunar Base Expansion", Status: models.MissionPlanned,
				StartDate:    ts("2025-04-15T00:00:00Z"),
				Description:  "Mission to expand the Lunar Base with new equipment and personnel",
				ModuleIDs:    []string{"module-002", "module-004"},
				AstronautIDs: []string{"astro-003", "astro-004"},
				CargoIDs:     []string{"cargo-002"}},
			{ID: "mission-003", Name: "Mars Sample Return", Status: models.MissionCompleted,
				StartDate: ts("2024-11-08T00:00:00Z"), EndDate: tsPtr("2025-01-20T00:00:00Z"),
				Description:  "Recovery of scientific samples from Mars surface",
				ModuleIDs:    []string{"module-003"},
				AstronautIDs: []string{"astro-001", "astro-004"},
				CargoIDs:     []string{"cargo-005"}},
		},
		ActivityLogs: []models.ActivityLog{
			{ID: "log-005", Action: "System Maintenance", UserID: "user-001", Timestamp: ts("2025-03-09T23:11:05Z"),
				Details: "System backup and maintenance performed"},
			{ID: "log-004", Action: "Cargo Created", UserID: "user-003", Timestamp: ts("2025-03-10T09:22:17Z"),
				Details: "New cargo 'Scientific Samples' created"},
			{ID: "log-003", Action: "Astronaut Assignment", UserID: "user-001", Timestamp: ts("2025-03-11T16:45:33Z"),
				Details: "Lt. Sophia Rodriguez assigned to mission Lunar Base Expansion"},
			{ID: "log-002", Action: "Module Status Change", UserID: "user-001", Timestamp: ts("2025-03-12T10:15:22Z"),
				Details: "Tranquility module status changed from offline to docking"},
			{ID: "log-001", Action: "Cargo Loaded", UserID: "user-003", Timestamp: ts("2025-03-12T14:30:45Z"),
				Details: "Water Supply loaded onto Harmony module"},
		},
	}
}
