package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codezen-labs/codezen/internal/auth/domain"
	"github.com/codezen-labs/codezen/internal/auth/service"
	"github.com/codezen-labs/codezen/pkg/authsdk"
	"github.com/codezen-labs/codezen/pkg/httpx"
	"github.com/codezen-labs/codezen/pkg/slogx"
)

// ProfileHandler handles GET and PUT /auth/profile.
type ProfileHandler struct {
	AuthService *service.AuthService
}

func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid Token")
		return
	}

	user, err := h.AuthService.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error("get profile failed", slog.Any("error", err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdkUser(user))
}

func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid Token")
		return
	}

	var req authsdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.AuthService.UpdateProfile(ctx, userID, domain.ProfilePatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error("update profile failed", slog.Any("error", err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UpdateProfileResponse{
		User:    sdkUser(user),
		Message: "Profile updated successfully",
	})
}
