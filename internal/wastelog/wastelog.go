// Package wastelog implements the append-only waste log.
package wastelog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/ecotracker/internal/ids"
	"github.com/mmynk/ecotracker/internal/models"
	"github.com/mmynk/ecotracker/internal/storage"
)

// DefaultRecentLimit is how many entries Recent returns when asked for
// zero or fewer.
const DefaultRecentLimit = 5

// Log appends and lists waste entries. Entries are never updated or deleted.
type Log struct {
	repo  *storage.Repository
	now   func() time.Time
	loc   *time.Location
	newID func() string

	mu sync.Mutex
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the time source used to date new entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// WithLocation sets the time zone that decides an entry's calendar day.
// The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(l *Log) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// New creates a Log over repo.
func New(repo *storage.Repository, opts ...Option) *Log {
	l := &Log{
		repo:  repo,
		now:   time.Now,
		loc:   time.UTC,
		newID: ids.New,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Today returns the current calendar day in the log's time zone.
func (l *Log) Today() time.Time {
	t := l.now().In(l.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, l.loc)
}

// Location returns the time zone used to date entries.
func (l *Log) Location() *time.Location {
	return l.loc
}

// Append validates and stores a new entry dated today. Invalid input is
// reported as a *models.ValidationError naming every failing field.
func (l *Log) Append(ctx context.Context, ownerID string, category models.Category, itemName string, quantity int) (*models.Entry, error) {
	verr := &models.ValidationError{}
	if ownerID == "" {
		verr.Add("userId", "required")
	}
	if !category.Valid() {
		if category == "" {
			verr.Add("category", "required")
		} else {
			verr.Add("category", fmt.Sprintf("unknown category %q", category))
		}
	}
	if strings.TrimSpace(itemName) == "" {
		verr.Add("itemName", "required")
	}
	switch {
	case quantity < 1:
		verr.Add("quantity", "must be at least 1")
	case quantity > models.MaxQuantity:
		verr.Add("quantity", fmt.Sprintf("must be at most %d", models.MaxQuantity))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}

	entry := models.Entry{
		ID:       l.newID(),
		Date:     l.Today().Format(models.DateFormat),
		Category: category,
		ItemName: itemName,
		Quantity: quantity,
		UserID:   ownerID,
	}

	if err := l.repo.SaveEntries(ctx, append(entries, entry)); err != nil {
		return nil, fmt.Errorf("failed to append entry: %w", err)
	}

	return &entry, nil
}

// ListAll returns every stored entry in insertion order.
func (l *Log) ListAll(ctx context.Context) ([]models.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.repo.LoadEntries(ctx)
}

// ListByOwner returns the entries owned by ownerID in insertion order.
func (l *Log) ListByOwner(ctx context.Context, ownerID string) ([]models.Entry, error) {
	all, err := l.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByOwner(all, ownerID), nil
}

// Recent returns up to limit of the owner's entries, newest day first.
// Entries from the same day keep their insertion order.
func (l *Log) Recent(ctx context.Context, ownerID string, limit int) ([]models.Entry, error) {
	owned, err := l.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return MostRecent(owned, limit), nil
}

// FilterByOwner returns the entries whose UserID equals ownerID.
func FilterByOwner(entries []models.Entry, ownerID string) []models.Entry {
	owned := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == ownerID {
			owned = append(owned, e)
		}
	}
	return owned
}

// MostRecent sorts a copy of entries by date descending and truncates it
// to limit (DefaultRecentLimit when limit <= 0).
func MostRecent(entries []models.Entry, limit int) []models.Entry {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := append([]models.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []models.Entry{}
	}
	return sorted
}
