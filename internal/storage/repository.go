package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/ecotracker/internal/models"
)

// SchemaVersion is the envelope version written by this build.
const SchemaVersion = 1

// envelope wraps every persisted value with the schema version it was
// written under. Values without an envelope are treated as version 0.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// CorruptHook is notified whenever a persisted value is discarded.
type CorruptHook func(key string, err error)

// Repository reads and writes the typed records on top of a Store.
// Undecodable values degrade to the empty default and never reach callers.
type Repository struct {
	store     Store
	onCorrupt CorruptHook
}

// Option configures a Repository.
type Option func(*Repository)

// WithCorruptHook registers a callback for discarded values.
func WithCorruptHook(h CorruptHook) Option {
	return func(r *Repository) {
		r.onCorrupt = h
	}
}

// NewRepository creates a Repository over store.
func NewRepository(store Store, opts ...Option) *Repository {
	r := &Repository{store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadUsers returns all user records, or an empty slice.
func (r *Repository) LoadUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if _, err := r.load(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// LoadSession returns the persisted active session, or nil when there is none.
func (r *Repository) LoadSession(ctx context.Context) (*models.Profile, error) {
	var profile *models.Profile
	found, err := r.load(ctx, KeySession, &profile)
	if err != nil || !found {
		return nil, err
	}
	if profile == nil || profile.ID == "" {
		return nil, nil
	}
	return profile, nil
}

// LoadEntries returns all waste log entries in insertion order, or an empty slice.
func (r *Repository) LoadEntries(ctx context.Context) ([]models.Entry, error) {
	entries := []models.Entry{}
	if _, err := r.load(ctx, KeyLogs, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

// SaveSignup persists the user collection and the new active session in a
// single atomic write.
func (r *Repository) SaveSignup(ctx context.Context, users []models.User, session *models.Profile) error {
	usersRec, err := encode(KeyUsers, users)
	if err != nil {
		return err
	}
	sessionRec, err := encode(KeySession, session)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, usersRec, sessionRec); err != nil {
		return fmt.Errorf("failed to save signup: %w", err)
	}
	return nil
}

// SaveSession persists the active session.
func (r *Repository) SaveSession(ctx context.Context, session *models.Profile) error {
	rec, err := encode(KeySession, session)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, rec); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearSession removes the persisted active session.
func (r *Repository) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// SaveEntries persists the full entry collection.
func (r *Repository) SaveEntries(ctx context.Context, entries []models.Entry) error {
	rec, err := encode(KeyLogs, entries)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, rec); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}

// load decodes the value under key into dst. It reports whether a usable
// value was found. Backend errors are returned; decode errors are not.
func (r *Repository) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	payload, err := unwrap(raw)
	if err == nil {
		err = json.Unmarshal(payload, dst)
	}
	if err != nil {
		r.corrupt(key, err)
		return false, nil
	}
	return true, nil
}

func (r *Repository) corrupt(key string, err error) {
	err = fmt.Errorf("%w: %s: %v", models.ErrCorruptState, key, err)
	slog.Warn("Discarding corrupt persisted value", "key", key, "error", err)
	if r.onCorrupt != nil {
		r.onCorrupt(key, err)
	}
}

// unwrap strips the schema envelope. A value that is not an envelope is
// the legacy bare payload.
func unwrap(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty value")
	}
	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	switch {
	case env.Version == 0 && env.Data == nil:
		return trimmed, nil
	case env.Version > SchemaVersion || env.Version < 0:
		return nil, fmt.Errorf("unsupported schema version %d", env.Version)
	case env.Data == nil:
		return nil, errors.New("envelope without data")
	}
	return env.Data, nil
}

func encode(key string, v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	value, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return Record{Key: key, Value: value}, nil
}
