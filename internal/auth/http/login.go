package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codezen-labs/codezen/internal/auth/service"
	"github.com/codezen-labs/codezen/pkg/authsdk"
	"github.com/codezen-labs/codezen/pkg/httpx"
	"github.com/codezen-labs/codezen/pkg/slogx"
)

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.AuthService.Login(ctx, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, "All input fields are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid email or password")
		default:
			log.Error("login failed", slog.Any("error", err))
			httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		User:    sdkUser(user),
		Token:   token,
		Message: "Login successful",
	})
}
