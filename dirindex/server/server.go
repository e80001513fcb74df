// Package server is the thin HTTP adapter over the indexer facade: one
// endpoint to run an index, one to download the produced artifacts. Runs
// are held in memory for the lifetime of the process; nothing persists
// across restarts.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/dirforge/dirindex/dirindex/fswalk"
	"github.com/dirforge/dirindex/dirindex/indexer"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var contentTypes = map[string]string{
	"json": "application/json; charset=utf-8",
	"xml":  "application/xml; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
}

// Server exposes indexing runs over HTTP.
type Server struct {
	svc    *indexer.Service
	walker *fswalk.Walker
	logger zerolog.Logger

	mu   sync.RWMutex
	runs map[uuid.UUID]*indexer.Result
}

func New(svc *indexer.Service, walker *fswalk.Walker, logger zerolog.Logger) *Server {
	return &Server{
		svc:    svc,
		walker: walker,
		logger: logger,
		runs:   make(map[uuid.UUID]*indexer.Result),
	}
}

// Routes wires up the HTTP handlers.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /index", s.handleIndex)
	mux.HandleFunc("GET /runs/{id}/{artifact}", s.handleDownload)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info().Str("addr", addr).Msg("dirindex server listening")
	return srv.ListenAndServe()
}

type indexRequest struct {
	Path string `json:"path"`
}

type indexResponse struct {
	RunID     string   `json:"run_id"`
	Root      string   `json:"root"`
	Entries   int      `json:"entries"`
	Nodes     int      `json:"nodes"`
	Artifacts []string `json:"artifacts"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var req indexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		s.writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	entries, err := s.walker.Walk(r.Context(), req.Path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", req.Path).Msg("walk failed")
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.svc.Run(req.Path, entries, nil)
	if err != nil {
		s.logger.Error().Err(err).Str("path", req.Path).Msg("indexing run failed")
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	s.runs[result.ID] = result
	s.mu.Unlock()

	resp := indexResponse{
		RunID:   result.ID.String(),
		Root:    result.Root,
		Entries: result.EntryCount,
		Nodes:   result.NodeCount,
	}
	for format := range result.Artifacts {
		resp.Artifacts = append(resp.Artifacts, indexer.ArtifactName(format))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	format, err := formatForArtifact(r.PathValue("artifact"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	s.mu.RLock()
	result, ok := s.runs[runID]
	s.mu.RUnlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown run")
		return
	}

	artifact, ok := result.Artifacts[format]
	if !ok {
		s.writeError(w, http.StatusNotFound, "artifact not rendered for this run")
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", `attachment; filename="`+indexer.ArtifactName(format)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(artifact)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func formatForArtifact(name string) (string, error) {
	for format := range contentTypes {
		if name == indexer.ArtifactName(format) {
			return format, nil
		}
	}
	return "", errors.New("unknown artifact")
}
