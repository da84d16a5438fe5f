package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stellar-cargo/internal/models"
	"stellar-cargo/internal/views"
)

func writeFound[T any](w http.ResponseWriter, v T, ok bool, kind string) {
	if !ok {
		writeError(w, http.StatusNotFound, kind+" not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeDeleted(w http.ResponseWriter, ok bool, kind string) {
	if !ok {
		writeError(w, http.StatusNotFound, kind+" not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func cargoSort(r *http.Request) (views.SortState, error) {
	q := r.URL.Query()
	field, err := views.ParseSortField(q.Get("sort"))
	if err != nil || field == views.SortNone {
		return views.SortState{}, err
	}
	dir, err := views.ParseSortDirection(q.Get("order"))
	if err != nil {
		return views.SortState{}, err
	}
	return views.SortState{Field: field, Direction: dir}, nil
}

func (s *Server) listCargoHandler(w http.ResponseWriter, r *http.Request) {
	sort, err := cargoSort(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, views.Cargo(s.store.Cargo(), views.CargoFilter{
		Query:  q.Get("q"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Sort:   sort,
	}))
}

func (s *Server) createCargoHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeValid[models.CargoInput](w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, s.store.AddCargo(r.Context(), in))
}

func (s *Server) getCargoHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := s.store.FindCargo(chi.URLParam(r, "id"))
	writeFound(w, c, ok, "cargo")
}

func (s *Server) updateCargoHandler(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeValid[models.CargoPatch](w, r)
	if !ok {
		return
	}
	c, ok := s.store.UpdateCargo(r.Context(), chi.URLParam(r, "id"), patch)
	writeFound(w, c, ok, "cargo")
}

func (s *Server) deleteCargoHandler(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, s.store.DeleteCargo(r.Context(), chi.URLParam(r, "id")), "cargo")
}

func (s *Server) listAstronautsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, views.Astronauts(s.store.Astronauts(), views.AstronautFilter{
		Query:  q.Get("q"),
		Status: q.Get("status"),
	}))
}

func (s *Server) createAstronautHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeValid[models.AstronautInput](w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, s.store.AddAstronaut(r.Context(), in))
}

func (s *Server) getAstronautHandler(w http.ResponseWriter, r *http.Request) {
	a, ok := s.store.FindAstronaut(chi.URLParam(r, "id"))
	writeFound(w, a, ok, "astronaut")
}

func (s *Server) updateAstronautHandler(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeValid[models.AstronautPatch](w, r)
	if !ok {
		return
	}
	a, ok := s.store.UpdateAstronaut(r.Context(), chi.URLParam(r, "id"), patch)
	writeFound(w, a, ok, "astronaut")
}

func (s *Server) deleteAstronautHandler(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, s.store.DeleteAstronaut(r.Context(), chi.URLParam(r, "id")), "astronaut")
}

func (s *Server) listModulesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, views.Modules(s.store.Modules(), views.ModuleFilter{
		Query:  q.Get("q"),
		Status: q.Get("status"),
	}))
}

func (s *Server) createModuleHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeValid[models.ModuleInput](w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, s.store.AddModule(r.Context(), in))
}

func (s *Server) getModuleHandler(w http.ResponseWriter, r *http.Request) {
	m, ok := s.store.FindModule(chi.URLParam(r, "id"))
	writeFound(w, m, ok, "module")
}

func (s *Server) updateModuleHandler(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeValid[models.ModulePatch](w, r)
	if !ok {
		return
	}
	m, ok := s.store.UpdateModule(r.Context(), chi.URLParam(r, "id"), patch)
	writeFound(w, m, ok, "module")
}

func (s *Server) deleteModuleHandler(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, s.store.DeleteModule(r.Context(), chi.URLParam(r, "id")), "module")
}

func (s *Server) listMissionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, views.Missions(s.store.Missions(), views.MissionFilter{
		Query:  q.Get("q"),
		Status: q.Get("status"),
	}))
}

func (s *Server) createMissionHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeValid[models.MissionInput](w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, s.store.AddMission(r.Context(), in))
}

func (s *Server) getMissionHandler(w http.ResponseWriter, r *http.Request) {
	m, ok := s.store.FindMission(chi.URLParam(r, "id"))
	writeFound(w, m, ok, "mission")
}

func (s *Server) updateMissionHandler(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeValid[models.MissionPatch](w, r)
	if !ok {
		return
	}
	m, ok := s.store.UpdateMission(r.Context(), chi.URLParam(r, "id"), patch)
	writeFound(w, m, ok, "mission")
}

func (s *Server) deleteMissionHandler(w http.ResponseWriter, r *http.Request) {
	writeDeleted(w, s.store.DeleteMission(r.Context(), chi.URLParam(r, "id")), "mission")
}
