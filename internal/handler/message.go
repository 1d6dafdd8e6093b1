package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/service"
)

// MessageHandler serves the message board.
type MessageHandler struct {
	svc    *service.MessageService
	logger *slog.Logger
}

func NewMessageHandler(svc *service.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, logger: logger}
}

// HandleList answers GET /api/messages with every message, oldest first.
func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("listing messages failed", slog.String("error", err.Error()))
		writeError(w, err, "Failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []model.Message{}
	}

	writeJSON(w, http.StatusOK, messages)
}

// HandleCreate answers POST /api/messages. The body must be a JSON object;
// its fields are stored as given.
func (h *MessageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, err, "")
		return
	}

	msg, err := h.svc.Create(r.Context(), body)
	if err != nil {
		h.logger.Error("creating message failed", slog.String("error", err.Error()))
		writeError(w, err, "Failed to create message")
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// HandleDelete answers DELETE /api/messages/{id}. The reply is the same
// whether or not a message was removed.
func (h *MessageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.logger.Error("deleting message failed", slog.String("id", id), slog.String("error", err.Error()))
		writeError(w, err, "Failed to delete message")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
}
