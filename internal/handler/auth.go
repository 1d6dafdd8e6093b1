package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/travel-blog/internal/service"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse echoes the username back on a successful login. No token is
// issued.
type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// HandleRegister answers POST /api/register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err, "")
		return
	}

	if _, err := h.svc.Register(r.Context(), req.Username, req.Password); err != nil {
		if !isAppError(err) {
			h.logger.Error("registration failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		}
		writeError(w, err, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Registered successfully"})
}

// HandleLogin answers POST /api/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err, "")
		return
	}

	user, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if !isAppError(err) {
			h.logger.Error("login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		}
		writeError(w, err, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Message: "Login successful", Username: user.Username})
}
