package handlers

import (
	"net/http"

	"RegistryAdmin/internal/config"
	"RegistryAdmin/internal/middleware"
	"RegistryAdmin/internal/service"

	"go.uber.org/zap"
)

type CreateSessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateSessionResponse struct {
	Token string `json:"token"`
}

// SessionHandler выдаёт bearer-токены администратору.
type SessionHandler struct {
	SessionService *service.SessionService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewSessionHandler(s *service.SessionService, logger *zap.SugaredLogger, cfg *config.Config) *SessionHandler {
	return &SessionHandler{SessionService: s, Logger: logger, Config: cfg}
}

// CreateSession проверяет логин/пароль и возвращает JWT.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.SessionService.Authenticate(req.Username, req.Password); err != nil {
		h.Logger.Infow("login refused", "username", req.Username)
		writeError(w, h.Logger, err)
		return
	}
	token, err := middleware.IssueToken(req.Username, h.Config.AuthSecret, h.Config.SessionTTL)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, CreateSessionResponse{Token: token})
}

// Current возвращает логин владельца токена.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUserFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"username": user})
}
