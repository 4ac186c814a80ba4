// Package tracker owns the application lifecycle: creation, score
// attachment, and stage transitions over a pluggable store.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/pipeline"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// Store is the persistence port for applications. Implementations must
// enforce uniqueness per (candidate, variant) on create and reject stale
// writes on update with a retryable conflict.
type Store interface {
	CreateApplication(ctx context.Context, app *types.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error)
	// UpdateApplicationStatus persists the new status and appends the
	// history entry atomically, but only if the stored version still
	// equals expectedVersion.
	UpdateApplicationStatus(ctx context.Context, app *types.Application, expectedVersion int64, entry *types.StageHistoryEntry) error
	SaveScore(ctx context.Context, id uuid.UUID, fitScore float64, explanation *types.MatchExplanation) error
	ListStageHistory(ctx context.Context, applicationID uuid.UUID) ([]types.StageHistoryEntry, error)
}

// Tracker coordinates the state machine with the store and serializes
// transitions per application.
type Tracker struct {
	store   Store
	machine *pipeline.Machine
	now     func() time.Time
	newID   func() uuid.UUID

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// New builds a tracker. Nil clock/ID arguments fall back to time.Now and
// uuid.New.
func New(store Store, machine *pipeline.Machine, now func() time.Time, newID func() uuid.UUID) *Tracker {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.New
	}
	if machine == nil {
		machine = pipeline.NewMachine(now, newID)
	}
	return &Tracker{
		store:   store,
		machine: machine,
		now:     now,
		newID:   newID,
		locks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

// Apply creates a new application in the applied stage with an initial
// automated history entry. A second application for the same candidate and
// variant surfaces as a ConflictError from the store.
func (t *Tracker) Apply(ctx context.Context, candidateID, variantID uuid.UUID) (*types.Application, error) {
	if candidateID == uuid.Nil {
		return nil, errs.Validation("candidate id is required")
	}
	if variantID == uuid.Nil {
		return nil, errs.Validation("variant id is required")
	}

	now := t.now()
	app := &types.Application{
		ID:                  t.newID(),
		CandidateID:         candidateID,
		CompanyJobVariantID: variantID,
		Status:              types.StageApplied,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	app.StageHistory = []types.StageHistoryEntry{{
		ID:            t.newID(),
		ApplicationID: app.ID,
		ToStage:       types.StageApplied,
		Automated:     true,
		ChangedAt:     now,
		Notes:         "application created",
	}}

	if err := t.store.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// AttachScore persists a scoring run's result on the application. A new
// run replaces the prior explanation.
func (t *Tracker) AttachScore(ctx context.Context, applicationID uuid.UUID, explanation *types.MatchExplanation) error {
	if explanation == nil {
		return errs.Validation("match explanation is required")
	}
	if err := t.store.SaveScore(ctx, applicationID, explanation.OverallScore, explanation); err != nil {
		return fmt.Errorf("failed to attach score: %w", err)
	}
	return nil
}

// Transition moves the application to the requested stage. Transitions on
// the same application are serialized with a per-application lock; the
// store's version check catches writers racing through other processes,
// and such failures are retryable against re-fetched state.
func (t *Tracker) Transition(ctx context.Context, applicationID uuid.UUID, req pipeline.TransitionRequest) (*types.Application, error) {
	lock := t.lockFor(applicationID)
	lock.Lock()
	defer lock.Unlock()

	app, err := t.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errs.NotFound("application %s", applicationID)
	}

	expectedVersion := app.Version
	entry, err := t.machine.Apply(app, req)
	if err != nil {
		return nil, err
	}
	if err := t.store.UpdateApplicationStatus(ctx, app, expectedVersion, entry); err != nil {
		return nil, err
	}
	return app, nil
}

// Advance moves the application one step along the happy path.
func (t *Tracker) Advance(ctx context.Context, applicationID uuid.UUID, to types.PipelineStage, changedBy, notes string) (*types.Application, error) {
	return t.Transition(ctx, applicationID, pipeline.TransitionRequest{
		To:        to,
		ChangedBy: changedBy,
		Notes:     notes,
	})
}

// Reject screens the application out from any non-terminal stage.
func (t *Tracker) Reject(ctx context.Context, applicationID uuid.UUID, changedBy, notes string) (*types.Application, error) {
	return t.Transition(ctx, applicationID, pipeline.TransitionRequest{
		To:        types.StageRejected,
		ChangedBy: changedBy,
		Notes:     notes,
	})
}

// History returns the append-only stage history, oldest first.
func (t *Tracker) History(ctx context.Context, applicationID uuid.UUID) ([]types.StageHistoryEntry, error) {
	return t.store.ListStageHistory(ctx, applicationID)
}

func (t *Tracker) lockFor(id uuid.UUID) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[id] = lock
	}
	return lock
}
