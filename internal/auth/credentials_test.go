package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ecotracker/internal/models"
	"github.com/mmynk/ecotracker/internal/storage"
	"github.com/mmynk/ecotracker/internal/storage/memory"
)

func newTestStore(t *testing.T) (*CredentialStore, *storage.Repository) {
	t.Helper()
	repo := storage.NewRepository(memory.New())
	s := NewCredentialStore(repo)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("user-%d", n)
	}
	return s, repo
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore(t)

	profile, err := s.Signup(ctx, "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, &models.Profile{ID: "user-1", Name: "Ada", Email: "ada@example.com", Community: models.DefaultCommunity}, profile)
	assert.Equal(t, profile, s.Current())

	users, err := repo.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "pw", users[0].Password)

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, session)
}

// flakyStore fails Put on demand and records the keys of every Put call.
type flakyStore struct {
	storage.Store
	failPut bool
	puts    [][]string
}

func (f *flakyStore) Put(ctx context.Context, records ...storage.Record) error {
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key
	}
	f.puts = append(f.puts, keys)
	if f.failPut {
		return errors.New("disk full")
	}
	return f.Store.Put(ctx, records...)
}

func TestSignupWritesUsersAndSessionTogether(t *testing.T) {
	ctx := context.Background()
	backend := &flakyStore{Store: memory.New()}
	repo := storage.NewRepository(backend)
	s := NewCredentialStore(repo)

	ann, err := s.Signup(ctx, "Ann", "a@x.io", "p1", "")
	require.NoError(t, err)
	require.Len(t, backend.puts, 1, "signup must be a single write")
	assert.ElementsMatch(t, []string{storage.KeyUsers, storage.KeySession}, backend.puts[0])

	backend.failPut = true
	_, err = s.Signup(ctx, "Bob", "b@x.io", "p2", "")
	require.Error(t, err)

	users, err := repo.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.io", users[0].Email)

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, ann, session)
	assert.Equal(t, ann, s.Current())
}

func TestSignupKeepsCommunity(t *testing.T) {
	s, _ := newTestStore(t)
	profile, err := s.Signup(context.Background(), "Ada", "ada@example.com", "pw", "Greenfield")
	require.NoError(t, err)
	assert.Equal(t, "Greenfield", profile.Community)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore(t)

	_, err := s.Signup(ctx, "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "Other Ada", "ada@example.com", "different", "")
	require.ErrorIs(t, err, ErrEmailExists)

	// Matching is case-sensitive.
	_, err = s.Signup(ctx, "Upper Ada", "ADA@example.com", "pw", "")
	require.NoError(t, err)

	users, err := repo.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSignupValidation(t *testing.T) {
	s, repo := newTestStore(t)

	_, err := s.Signup(context.Background(), " ", "", "", "")
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"name", "email", "password"}, verr.FieldNames())

	users, err := repo.LoadUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Nil(t, s.Current())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore(t)

	signed, err := s.Signup(ctx, "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"exact match", "ada@example.com", "pw", nil},
		{"wrong password", "ada@example.com", "PW", ErrInvalidCredentials},
		{"unknown email", "bob@example.com", "pw", ErrInvalidCredentials},
		{"email differs in case", "Ada@example.com", "pw", ErrInvalidCredentials},
		{"empty", "", "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.Logout(ctx))

			profile, err := s.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
				assert.Nil(t, s.Current())
				session, err := repo.LoadSession(ctx)
				require.NoError(t, err)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, signed, profile)
			session, err := repo.LoadSession(ctx)
			require.NoError(t, err)
			assert.Equal(t, signed, session)
		})
	}
}

func TestLogoutThenRestoreSession(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore(t)

	_, err := s.Signup(ctx, "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))
	assert.Nil(t, s.Current())

	// A fresh store over the same repository simulates an app restart.
	restarted := NewCredentialStore(repo)
	profile, err := restarted.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestRestoreSessionAfterRestart(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestStore(t)

	signed, err := s.Signup(ctx, "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)

	restarted := NewCredentialStore(repo)
	assert.Nil(t, restarted.Current())

	profile, err := restarted.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, signed, profile)
	assert.Equal(t, signed, restarted.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Signup(context.Background(), "Ada", "ada@example.com", "pw", "")
	require.NoError(t, err)

	p := s.Current()
	p.Name = "Mallory"
	assert.Equal(t, "Ada", s.Current().Name)
}
