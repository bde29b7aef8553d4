package http

import (
	"github.com/codezen-labs/codezen/internal/auth/domain"
	"github.com/codezen-labs/codezen/pkg/authsdk"
)

// sdkUser converts a stored user to the wire representation. The password
// hash stays behind; authsdk.User has no field for it.
func sdkUser(u domain.User) authsdk.User {
	return authsdk.User{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
