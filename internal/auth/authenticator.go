package auth

import (
	"context"

	"github.com/mmynk/ecotracker/internal/models"
)

// Authenticator defines the interface for the credential store.
// This abstraction lets the service layer run against any implementation
// (the persisted plaintext store today, a real identity provider later).
type Authenticator interface {
	// Signup creates a new user and makes it the active session.
	// Returns ErrEmailExists if the email is already registered, or a
	// *models.ValidationError when a required field is empty.
	Signup(ctx context.Context, name, email, password, community string) (*models.Profile, error)

	// Login matches email and password exactly and makes the user the
	// active session. Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (*models.Profile, error)

	// Logout clears the active session.
	Logout(ctx context.Context) error

	// RestoreSession returns the persisted active session, or nil.
	RestoreSession(ctx context.Context) (*models.Profile, error)
}
