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

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.AuthService.Register(ctx, service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, "All input fields are required")
		case errors.Is(err, service.ErrUserExists):
			httpx.WriteMessage(w, http.StatusConflict, "User already exists. Please login.")
		default:
			log.Error("register failed", slog.Any("error", err))
			httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.AuthResponse{
		User:    sdkUser(user),
		Token:   token,
		Message: "Registration successful",
	})
}
