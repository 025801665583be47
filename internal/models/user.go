package models

// DefaultCommunity is assigned to users that sign up without naming one.
const DefaultCommunity = "EcoVille"

// User represents a registered user record.
//
// Passwords are stored and compared as plaintext. This mirrors the layout
// of the persisted users record and is not a security boundary.
type User struct {
	// ID is the unique identifier for the user (ULID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the login identifier. Unique across all users, compared
	// case-sensitively.
	Email string `json:"email"`

	// Password is the plaintext credential.
	Password string `json:"password"`

	// Community is the neighbourhood the user belongs to.
	Community string `json:"community,omitempty"`
}

// Profile returns the session view of the user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Community: u.Community,
	}
}

// Profile is who is currently logged in. It never carries the password.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Community string `json:"community,omitempty"`
}
