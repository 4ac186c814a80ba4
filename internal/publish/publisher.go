// Package publish snapshots resolved job specs into immutable, monotonically
// versioned JD records.
package publish

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// VersionStore is the persistence port for JD versions. Implementations
// must reject a duplicate (variant, version) pair with a conflict so the
// monotonicity invariant holds across processes.
type VersionStore interface {
	LatestVersion(ctx context.Context, variantID uuid.UUID) (int, error)
	CreateVersion(ctx context.Context, version *types.JDVersion) error
	ListVersions(ctx context.Context, variantID uuid.UUID) ([]types.JDVersion, error)
}

// Publisher creates JD versions. Versions are immutable after creation;
// republishing creates the next version, there is no rollback.
type Publisher struct {
	store VersionStore
	now   func() time.Time
	newID func() uuid.UUID

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewPublisher builds a publisher. Nil clock/ID arguments fall back to
// time.Now and uuid.New.
func NewPublisher(store VersionStore, now func() time.Time, newID func() uuid.UUID) *Publisher {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.New
	}
	return &Publisher{store: store, now: now, newID: newID, locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Publish snapshots the resolved spec as the next version for the variant.
// The first publish activates the variant and stamps PublishedAt; the
// variant record itself is persisted by the caller.
func (p *Publisher) Publish(ctx context.Context, variant *types.CompanyJobVariant, spec *types.ResolvedJobSpec, publishedContent, createdBy string) (*types.JDVersion, error) {
	if variant == nil {
		return nil, errs.NotFound("company job variant")
	}
	if spec == nil {
		return nil, errs.NotFound("resolved spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if publishedContent == "" {
		return nil, errs.Validation("published content must be non-empty")
	}

	// Serialize per variant so concurrent publishes get sequential
	// version numbers instead of racing to the same one.
	lock := p.lockFor(variant.ID)
	lock.Lock()
	defer lock.Unlock()

	latest, err := p.store.LatestVersion(ctx, variant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest version: %w", err)
	}

	now := p.now()
	version := &types.JDVersion{
		ID:                  p.newID(),
		CompanyJobVariantID: variant.ID,
		Version:             latest + 1,
		ResolvedSpec:        *spec,
		PublishedContent:    publishedContent,
		CreatedBy:           createdBy,
		CreatedAt:           now,
	}
	if err := p.store.CreateVersion(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to create JD version: %w", err)
	}

	variant.IsActive = true
	if variant.PublishedAt == nil {
		variant.PublishedAt = &now
	}
	return version, nil
}

// Versions lists the published versions for a variant, oldest first.
func (p *Publisher) Versions(ctx context.Context, variantID uuid.UUID) ([]types.JDVersion, error) {
	return p.store.ListVersions(ctx, variantID)
}

func (p *Publisher) lockFor(id uuid.UUID) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[id] = lock
	}
	return lock
}
