package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Handlers — HTTP обработчики для auth эндпоинтов
type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

type devAuthRequest struct {
	UserID string `json:"user_id"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// HandleDevToken выдаёт токен для локальной разработки.
// POST /v1/auth/dev
func (h *Handlers) HandleDevToken(w http.ResponseWriter, r *http.Request) {
	var req devAuthRequest
	if r.Body != nil {
		// An empty or malformed body just means "no explicit user".
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = "dev:" + uuid.New().String()
	}

	token, err := h.service.GenerateToken(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token_generation_failed", "Could not generate token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResponse{Token: token, UserID: userID})
}
