// Package api serves the operational HTTP endpoints.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"turfbot/pkg/logger"
)

// Stats reports live counters for the health endpoint.
type Stats interface {
	ActiveEvents(ctx context.Context) int
}

type healthResponse struct {
	Status       string `json:"status"`
	ActiveEvents int    `json:"active_events"`
}

// Server wires /healthz and /metrics.
type Server struct {
	stats   Stats
	metrics http.Handler
	log     logger.Logger
}

func NewServer(stats Stats, metrics http.Handler, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{stats: stats, metrics: metrics, log: log}
}

// Register attaches all routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", ActiveEvents: s.stats.ActiveEvents(r.Context())}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warn(r.Context(), "health response failed", logger.Error(err))
	}
}
