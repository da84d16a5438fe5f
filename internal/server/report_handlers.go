package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stellar-cargo/internal/export"
	"stellar-cargo/internal/models"
	"stellar-cargo/internal/report"
	"stellar-cargo/internal/views"
)

// otherCategory files downloads of unknown categories.
const otherCategory export.Category = "other"

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, report.BuildDashboard(report.Inputs{
		Cargo:        snap.Cargo,
		Astronauts:   snap.Astronauts,
		Modules:      snap.Modules,
		Missions:     snap.Missions,
		ActivityLogs: snap.ActivityLogs,
	}))
}

func (s *Server) activityFilter(r *http.Request) (views.ActivityFilter, error) {
	q := r.URL.Query()
	tr, err := views.ParseTimeRange(q.Get("range"))
	if err != nil {
		return views.ActivityFilter{}, err
	}
	return views.ActivityFilter{
		Query:  q.Get("q"),
		Action: q.Get("action"),
		Range:  tr,
		Now:    s.now(),
	}, nil
}

func (s *Server) filteredActivity(w http.ResponseWriter, r *http.Request) ([]models.ActivityLog, bool) {
	f, err := s.activityFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return views.Activity(s.store.ActivityLogs(), f), true
}

func (s *Server) activityHandler(w http.ResponseWriter, r *http.Request) {
	logs, ok := s.filteredActivity(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) activityActionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, views.UniqueActions(s.store.ActivityLogs()))
}

func (s *Server) activityExportHandler(w http.ResponseWriter, r *http.Request) {
	logs, ok := s.filteredActivity(w, r)
	if !ok {
		return
	}
	s.writeExport(w, r, export.CategoryActivity, logs)
}

func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	var body any
	switch export.Category(chi.URLParam(r, "category")) {
	case export.CategoryCargo:
		body = report.Cargo(s.store.Cargo())
	case export.CategoryAstronauts:
		body = report.Astronauts(s.store.Astronauts())
	case export.CategoryModules:
		body = report.Modules(s.store.Modules())
	case export.CategoryMissions:
		body = report.Missions(s.store.Missions())
	default:
		writeError(w, http.StatusNotFound, "unknown report category")
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// reportExportHandler downloads the raw collection behind a report tab.
// Unknown categories download an empty object as report.json.
func (s *Server) reportExportHandler(w http.ResponseWriter, r *http.Request) {
	category := export.Category(chi.URLParam(r, "category"))
	var body any
	switch category {
	case export.CategoryCargo:
		body = s.store.Cargo()
	case export.CategoryAstronauts:
		body = s.store.Astronauts()
	case export.CategoryModules:
		body = s.store.Modules()
	case export.CategoryMissions:
		body = s.store.Missions()
	case export.CategoryActivity:
		body = s.store.ActivityLogs()
	default:
		category = otherCategory
	}
	s.writeExport(w, r, category, body)
}

type adminSummary struct {
	Users           []models.User  `json:"users"`
	Counts          map[string]int `json:"counts"`
	ReferencePolicy string         `json:"referencePolicy"`
}

func (s *Server) adminHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	users := s.users
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, adminSummary{
		Users: users,
		Counts: map[string]int{
			"cargo":        len(snap.Cargo),
			"astronauts":   len(snap.Astronauts),
			"modules":      len(snap.Modules),
			"missions":     len(snap.Missions),
			"activityLogs": len(snap.ActivityLogs),
		},
		ReferencePolicy: s.store.ReferencePolicy().String(),
	})
}
