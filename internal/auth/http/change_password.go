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

// ChangePasswordHandler handles PUT /auth/change-password.
type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid Token")
		return
	}

	var req authsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.AuthService.ChangePassword(ctx, userID, service.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteMessage(w, http.StatusBadRequest, "All input fields are required")
		case errors.Is(err, service.ErrWrongPassword):
			httpx.WriteMessage(w, http.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, "User not found")
		default:
			log.Error("change password failed", slog.Any("error", err))
			httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Password changed successfully")
}
