package authsdk

import "time"

// User is the outward-facing user representation. There is deliberately no
// password field on this type: the credential can never be serialized.
type User struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstname"`
	LastName       string    `json:"lastname"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the PUT /auth/profile body. Omitted or empty
// fields leave the stored value unchanged.
type UpdateProfileRequest struct {
	FirstName      string `json:"firstname,omitempty"`
	LastName       string `json:"lastname,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ChangePasswordRequest is the PUT /auth/change-password body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse is returned by register and login: the created/authenticated
// user plus a fresh 24h session token.
type AuthResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// UpdateProfileResponse carries the merged user back to the client.
type UpdateProfileResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// MessageResponse is the plain `{"message": ...}` acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LivezResponse is returned by GET /livez.
type LivezResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
