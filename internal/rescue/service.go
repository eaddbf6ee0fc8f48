// Package rescue maintains the working set of rescue locations shown to
// the operator: loading it from the remote API with a client-side
// priority filter, and resolving individual locations.
package rescue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/rescuemap/internal/api"
	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
)

// ErrStaleLoad marks a Load whose response arrived after a newer Load
// had already started. The stale response is discarded; the caller
// should simply ignore it.
var ErrStaleLoad = errors.New("stale load discarded")

// Service owns the location working set. Safe for concurrent use.
type Service struct {
	client api.Client
	log    logging.Logger

	mu        sync.Mutex
	locations []models.RescueLocation
	loadSeq   uint64
}

func NewService(client api.Client, log logging.Logger) *Service {
	return &Service{client: client, log: log}
}

// Load fetches the current location set, applies the priority filter and
// replaces the working set. Each call takes a sequence token; if another
// Load starts while the fetch is in flight, the older response is not
// applied and ErrStaleLoad is returned.
func (s *Service) Load(ctx context.Context, filter models.PriorityFilter) ([]models.RescueLocation, error) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	locs, err := s.client.FetchLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}

	filtered := make([]models.RescueLocation, 0, len(locs))
	for _, loc := range locs {
		if filter.Matches(loc.Priority) {
			filtered = append(filtered, loc)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		s.log.Debug(ctx, "discarding stale locations response", "seq", seq, "current", s.loadSeq)
		return nil, ErrStaleLoad
	}
	s.locations = filtered
	return s.snapshotLocked(), nil
}

// Resolve marks one location as handled. The remote delete must succeed
// before anything local changes; on failure the working set is untouched.
func (s *Service) Resolve(ctx context.Context, id string) error {
	if err := s.client.DeleteLocation(ctx, id); err != nil {
		return fmt.Errorf("resolving location %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, loc := range s.locations {
		if loc.ID == id {
			s.locations = append(s.locations[:i], s.locations[i+1:]...)
			break
		}
	}
	s.log.Info(ctx, "location resolved", "id", id)
	return nil
}

// Locations returns a snapshot of the working set.
func (s *Service) Locations() []models.RescueLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() []models.RescueLocation {
	out := make([]models.RescueLocation, len(s.locations))
	copy(out, s.locations)
	return out
}
