package publish

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// MemoryVersionStore is an in-memory VersionStore used by tests and the
// CLI.
type MemoryVersionStore struct {
	mu       sync.RWMutex
	versions map[uuid.UUID][]types.JDVersion
}

// NewMemoryVersionStore builds an empty in-memory version store.
func NewMemoryVersionStore() *MemoryVersionStore {
	return &MemoryVersionStore{versions: make(map[uuid.UUID][]types.JDVersion)}
}

// LatestVersion returns the highest version number for the variant, zero
// when none exist.
func (s *MemoryVersionStore) LatestVersion(_ context.Context, variantID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := 0
	for _, v := range s.versions[variantID] {
		if v.Version > latest {
			latest = v.Version
		}
	}
	return latest, nil
}

// CreateVersion appends a new immutable version record.
func (s *MemoryVersionStore) CreateVersion(_ context.Context, version *types.JDVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.versions[version.CompanyJobVariantID] {
		if v.Version == version.Version {
			return errs.Conflict("version %d already exists for variant %s",
				version.Version, version.CompanyJobVariantID)
		}
	}
	s.versions[version.CompanyJobVariantID] = append(s.versions[version.CompanyJobVariantID], *version)
	return nil
}

// ListVersions returns the variant's versions, oldest first.
func (s *MemoryVersionStore) ListVersions(_ context.Context, variantID uuid.UUID) ([]types.JDVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]types.JDVersion(nil), s.versions[variantID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}
