package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mmynk/ecotracker/internal/ids"
	"github.com/mmynk/ecotracker/internal/models"
	"github.com/mmynk/ecotracker/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
)

var _ Authenticator = (*CredentialStore)(nil)

// CredentialStore keeps user records and the active session in a
// storage.Repository.
type CredentialStore struct {
	repo  *storage.Repository
	newID func() string

	mu      sync.Mutex
	session *models.Profile
}

// NewCredentialStore creates a credential store over repo.
func NewCredentialStore(repo *storage.Repository) *CredentialStore {
	return &CredentialStore{
		repo:  repo,
		newID: ids.New,
	}
}

// Signup registers a new user and logs them in.
func (s *CredentialStore) Signup(ctx context.Context, name, email, password, community string) (*models.Profile, error) {
	verr := &models.ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.Add("name", "required")
	}
	if strings.TrimSpace(email) == "" {
		verr.Add("email", "required")
	}
	if password == "" {
		verr.Add("password", "required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(community) == "" {
		community = models.DefaultCommunity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailExists
		}
	}

	user := models.User{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Password:  password,
		Community: community,
	}
	profile := user.Profile()

	if err := s.repo.SaveSignup(ctx, append(users, user), profile); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.session = profile
	return cloneProfile(profile), nil
}

// Login authenticates against the stored user records.
func (s *CredentialStore) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	var found *models.User
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return nil, ErrInvalidCredentials
	}

	profile := found.Profile()
	if err := s.repo.SaveSession(ctx, profile); err != nil {
		return nil, err
	}

	s.session = profile
	return cloneProfile(profile), nil
}

// Logout clears the active session from memory and from the store.
func (s *CredentialStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.repo.ClearSession(ctx)
}

// RestoreSession loads the persisted session into memory. The stored
// profile is trusted as-is.
func (s *CredentialStore) RestoreSession(ctx context.Context) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.repo.LoadSession(ctx)
	if err != nil {
		return nil, err
	}

	s.session = profile
	return cloneProfile(profile), nil
}

// Current returns the in-memory active session, or nil.
func (s *CredentialStore) Current() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.session)
}

func cloneProfile(p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
