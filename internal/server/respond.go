package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"stellar-cargo/internal/export"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

type validator interface {
	Validate() error
}

// decodeValid decodes the body into T and runs its validation. On failure the
// 400 response has already been written.
func decodeValid[T validator](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := decodeJSON(w, r, &v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return v, false
	}
	if err := v.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return v, false
	}
	return v, true
}

// writeExport sends v as a download and keeps a copy in the archive when one
// is configured. Archive failures only get logged.
func (s *Server) writeExport(w http.ResponseWriter, r *http.Request, category export.Category, v any) {
	body, err := export.Marshal(v)
	if err != nil {
		s.internalError(w, r, "marshal export", err)
		return
	}
	name := export.Filename(category)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	w.Write(body)

	if s.metrics != nil {
		s.metrics.ObserveExport(string(category))
	}
	if s.archive != nil {
		key := export.ArchiveKey(category, s.now())
		if err := s.archive.Put(r.Context(), key, body); err != nil {
			s.log.Warn("archive export failed", zap.String("key", key), zap.Error(err))
		}
	}
}
