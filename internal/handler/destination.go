package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/travel-blog/internal/service"
)

// DestinationHandler serves the read-only destination catalog.
type DestinationHandler struct {
	svc    *service.DestinationService
	logger *slog.Logger
}

func NewDestinationHandler(svc *service.DestinationService, logger *slog.Logger) *DestinationHandler {
	return &DestinationHandler{svc: svc, logger: logger}
}

// HandleList answers GET /api/destinations. ?type=popular restricts the list
// to popular destinations; any other value of type is ignored.
func (h *DestinationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	popularOnly := r.URL.Query().Get("type") == "popular"

	destinations, err := h.svc.List(r.Context(), popularOnly)
	if err != nil {
		h.logger.Error("listing destinations failed", slog.String("error", err.Error()))
		writeError(w, err, "Failed to fetch destinations")
		return
	}

	writeJSON(w, http.StatusOK, destinations)
}

// HandleGetByID answers GET /api/destinations/{id}.
func (h *DestinationHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	destination, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if !isAppError(err) {
			h.logger.Error("fetching destination failed", slog.String("id", id), slog.String("error", err.Error()))
		}
		writeError(w, err, "Failed to fetch destination")
		return
	}

	writeJSON(w, http.StatusOK, destination)
}
