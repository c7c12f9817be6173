package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/buildinfo"
	"github.com/mshaler/isogrid/pkg/errors"
	"github.com/mshaler/isogrid/pkg/grid"
	"github.com/mshaler/isogrid/pkg/pipeline"
	"github.com/mshaler/isogrid/pkg/store"
)

// maxRequestBody caps request bodies at 8 MiB. Axis trees are small; anything
// bigger is a client error.
const maxRequestBody = 8 << 20

// =============================================================================
// Request / Response Types
// =============================================================================

// LayoutRequest is the body of POST /v1/layouts and /v1/documents.
type LayoutRequest struct {
	Axes    axis.Axes        `json:"axes"`
	Options pipeline.Options `json:"options"`
	// Name labels the saved document (documents endpoint only).
	Name string `json:"name,omitempty"`
}

// LayoutResponse is the body of a successful POST /v1/layouts.
type LayoutResponse struct {
	Layout    *grid.Layout `json:"layout"`
	FromCache bool         `json:"from_cache"`
}

// DocumentResponse is the body of a successful POST /v1/documents.
type DocumentResponse struct {
	Document store.Document `json:"document"`
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	layout, fromCache, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), req.Axes, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LayoutResponse{Layout: layout, FromCache: fromCache})
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	layout, err := s.runner.ComputeLayout(r.Context(), req.Axes, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc := store.Document{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
		Axes:      req.Axes,
		Layout:    layout,
	}
	if err := s.store.Save(r.Context(), doc); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, DocumentResponse{Document: doc})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]store.Summary{"documents": summaries})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DocumentResponse{Document: doc})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) decodeLayoutRequest(w http.ResponseWriter, r *http.Request) (LayoutRequest, bool) {
	var req LayoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return LayoutRequest{}, false
	}
	req.Options.Logger = s.logger
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestID(r))
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAxis, errors.ErrCodeInvalidNodeID,
		errors.ErrCodeDuplicateID, errors.ErrCodeInvalidCellKey, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	case errors.ErrCodeLayoutTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
