// Package handler contains the HTTP handlers for the travel-blog API.
//
// Handlers parse the request, call one service method, and translate the
// result into JSON. They never talk to the database directly.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger is the part of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves the root welcome message and the health check.
type HomeHandler struct {
	store  Pinger
	logger *slog.Logger
}

func NewHomeHandler(store Pinger, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{store: store, logger: logger}
}

// HandleWelcome answers GET /.
func (h *HomeHandler) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to Travel Blog API"})
}

// HandleHealth answers GET /healthz with 200 while the store responds to a
// ping and 503 otherwise.
func (h *HomeHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
