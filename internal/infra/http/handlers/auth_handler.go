package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/muraalee/almalead/internal/entity"
	"github.com/muraalee/almalead/internal/usecase"
)

type AuthHandler struct {
	Service *usecase.AuthService
}

func NewAuthHandler(service *usecase.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HandleLogin exchanges credentials for a bearer token. Bad credentials get
// one generic 401 regardless of which factor failed.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := h.Service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondError(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		logrus.WithError(err).Error("authentication failed")
		respondError(w, http.StatusInternalServerError, "authentication unavailable")
		return
	}

	token, err := h.Service.IssueToken(user)
	if err != nil {
		logrus.WithError(err).Error("token issuing failed")
		respondError(w, http.StatusInternalServerError, "authentication unavailable")
		return
	}

	respondJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
