package domain

import "time"

// User is the sole persisted entity. Email is stored lowercase; the hash is
// an Argon2id PHC string and must never appear in any outward-facing
// representation. ID and CreatedAt are assigned by the store at creation and
// never change.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	ProfilePicture string // optional URL, empty when unset
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfilePatch carries a partial profile update. An empty field means "leave
// unchanged" — there is deliberately no way to clear a field back to empty.
type ProfilePatch struct {
	FirstName      string
	LastName       string
	ProfilePicture string
}

// IsEmpty reports whether the patch would change nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.FirstName == "" && p.LastName == "" && p.ProfilePicture == ""
}
