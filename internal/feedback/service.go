// Package feedback collects free-text feedback entries. Entries are held
// in memory, newest first; the remote submission is only simulated.
package feedback

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"github.com/oklog/ulid/v2"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyMessage = errors.New("message is required")
)

// Service owns the in-memory feedback list. Safe for concurrent use.
type Service struct {
	log     logging.Logger
	latency time.Duration

	mu      sync.Mutex
	entries []models.FeedbackEntry
}

// NewService builds a Service holding the given seed entries (newest
// first). latency simulates the remote submission; 0 disables it.
func NewService(seed []models.FeedbackEntry, log logging.Logger, latency time.Duration) *Service {
	entries := make([]models.FeedbackEntry, len(seed))
	copy(entries, seed)
	return &Service{entries: entries, log: log, latency: latency}
}

// DefaultSeed returns the sample entries the application ships with.
func DefaultSeed() []models.FeedbackEntry {
	now := time.Now()
	return []models.FeedbackEntry{
		{
			ID:        ulid.Make().String(),
			Name:      "Le Van C",
			Message:   "Food and water supplies were delivered to our community. Much appreciated!",
			Timestamp: now.Add(-12 * time.Hour),
		},
		{
			ID:        ulid.Make().String(),
			Name:      "Tran Thi B",
			Message:   "Medical assistance was provided efficiently. Great coordination!",
			Timestamp: now.Add(-24 * time.Hour),
		},
		{
			ID:        ulid.Make().String(),
			Name:      "Nguyen Van A",
			Message:   "The rescue team arrived quickly and helped evacuate our family. Thank you!",
			Timestamp: now.Add(-48 * time.Hour),
		},
	}
}

// Submit validates the form fields, simulates the remote call, and
// prepends the new entry.
func (s *Service) Submit(ctx context.Context, name, message string) (*models.FeedbackEntry, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" {
		return nil, ErrEmptyName
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	entry := models.FeedbackEntry{
		ID:        ulid.Make().String(),
		Name:      name,
		Message:   message,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.entries = append([]models.FeedbackEntry{entry}, s.entries...)
	s.mu.Unlock()

	s.log.Info(ctx, "feedback submitted", "id", entry.ID)
	return &entry, nil
}

// List returns a snapshot of the entries, newest first.
func (s *Service) List() []models.FeedbackEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FeedbackEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
