package tracker

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// MemoryStore is an in-memory Store implementation used by tests and the
// CLI. It applies the same uniqueness and optimistic-concurrency rules as
// the Postgres store.
type MemoryStore struct {
	mu      sync.RWMutex
	apps    map[uuid.UUID]*types.Application
	byPair  map[pairKey]uuid.UUID
	history map[uuid.UUID][]types.StageHistoryEntry
}

type pairKey struct {
	candidate uuid.UUID
	variant   uuid.UUID
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		apps:    make(map[uuid.UUID]*types.Application),
		byPair:  make(map[pairKey]uuid.UUID),
		history: make(map[uuid.UUID][]types.StageHistoryEntry),
	}
}

// CreateApplication stores a new application, rejecting duplicates per
// (candidate, variant).
func (s *MemoryStore) CreateApplication(_ context.Context, app *types.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{candidate: app.CandidateID, variant: app.CompanyJobVariantID}
	if _, exists := s.byPair[key]; exists {
		return errs.Conflict("candidate %s already applied to variant %s", app.CandidateID, app.CompanyJobVariantID)
	}

	stored := cloneApplication(app)
	s.apps[app.ID] = stored
	s.byPair[key] = app.ID
	s.history[app.ID] = append([]types.StageHistoryEntry(nil), app.StageHistory...)
	return nil
}

// GetApplication returns a copy of the application, or nil when absent.
func (s *MemoryStore) GetApplication(_ context.Context, id uuid.UUID) (*types.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.apps[id]
	if !ok {
		return nil, nil
	}
	out := cloneApplication(app)
	out.StageHistory = append([]types.StageHistoryEntry(nil), s.history[id]...)
	return out, nil
}

// UpdateApplicationStatus applies the status change and appends the history
// entry atomically, failing with a retryable conflict on a stale version.
func (s *MemoryStore) UpdateApplicationStatus(_ context.Context, app *types.Application, expectedVersion int64, entry *types.StageHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.apps[app.ID]
	if !ok {
		return errs.NotFound("application %s", app.ID)
	}
	if stored.Version != expectedVersion {
		return errs.StaleWrite("application %s changed concurrently (version %d, expected %d)",
			app.ID, stored.Version, expectedVersion)
	}

	stored.Status = app.Status
	stored.UpdatedAt = app.UpdatedAt
	stored.Version = expectedVersion + 1
	s.history[app.ID] = append(s.history[app.ID], *entry)
	app.Version = stored.Version
	return nil
}

// SaveScore stores the fit score and explanation on the application.
func (s *MemoryStore) SaveScore(_ context.Context, id uuid.UUID, fitScore float64, explanation *types.MatchExplanation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.apps[id]
	if !ok {
		return errs.NotFound("application %s", id)
	}
	score := fitScore
	stored.FitScore = &score
	stored.Explanation = explanation
	return nil
}

// ListStageHistory returns the history entries in append order.
func (s *MemoryStore) ListStageHistory(_ context.Context, applicationID uuid.UUID) ([]types.StageHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.apps[applicationID]; !ok {
		return nil, errs.NotFound("application %s", applicationID)
	}
	return append([]types.StageHistoryEntry(nil), s.history[applicationID]...), nil
}

func cloneApplication(app *types.Application) *types.Application {
	out := *app
	out.StageHistory = nil
	if app.FitScore != nil {
		score := *app.FitScore
		out.FitScore = &score
	}
	return &out
}
