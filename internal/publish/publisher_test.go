package publish

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

func testSpec() *types.ResolvedJobSpec {
	return &types.ResolvedJobSpec{
		Title:       "Frontend Engineer",
		Description: "mid Frontend Engineer (Software Engineer) at TechStart",
		Requirements: []types.RequirementItem{
			{Type: types.RequirementSkill, Category: types.CategoryMust, Description: "JavaScript", Weight: 9},
		},
	}
}

func testVariant() *types.CompanyJobVariant {
	return &types.CompanyJobVariant{
		ID:               uuid.New(),
		JobTemplateID:    uuid.New(),
		CompanyProfileID: uuid.New(),
	}
}

func TestPublish_VersionsAreMonotonic(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)
	ctx := context.Background()
	variant := testVariant()
	spec := testSpec()

	for want := 1; want <= 3; want++ {
		version, err := publisher.Publish(ctx, variant, spec, "job description text", "recruiter")
		require.NoError(t, err)
		assert.Equal(t, want, version.Version)
	}

	versions, err := publisher.Versions(ctx, variant.ID)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	for i, v := range versions {
		assert.Equal(t, i+1, v.Version)
	}
}

func TestPublish_FirstPublishActivatesVariant(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	publisher := NewPublisher(NewMemoryVersionStore(), func() time.Time { return at }, nil)
	ctx := context.Background()
	variant := testVariant()

	require.False(t, variant.IsActive)
	require.Nil(t, variant.PublishedAt)

	_, err := publisher.Publish(ctx, variant, testSpec(), "content", "recruiter")
	require.NoError(t, err)

	assert.True(t, variant.IsActive)
	require.NotNil(t, variant.PublishedAt)
	assert.Equal(t, at, *variant.PublishedAt)
}

func TestPublish_RepublishKeepsOriginalPublishedAt(t *testing.T) {
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := first
	publisher := NewPublisher(NewMemoryVersionStore(), func() time.Time { return now }, nil)
	ctx := context.Background()
	variant := testVariant()

	_, err := publisher.Publish(ctx, variant, testSpec(), "content v1", "recruiter")
	require.NoError(t, err)

	now = first.Add(48 * time.Hour)
	_, err = publisher.Publish(ctx, variant, testSpec(), "content v2", "recruiter")
	require.NoError(t, err)

	require.NotNil(t, variant.PublishedAt)
	assert.Equal(t, first, *variant.PublishedAt)
}

func TestPublish_SnapshotsTheResolvedSpec(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)
	ctx := context.Background()
	variant := testVariant()
	spec := testSpec()

	version, err := publisher.Publish(ctx, variant, spec, "content", "recruiter")
	require.NoError(t, err)

	// Later edits to the source spec must not bleed into the snapshot.
	spec.Title = "edited after publish"
	assert.Equal(t, "Frontend Engineer", version.ResolvedSpec.Title)
	assert.Equal(t, variant.ID, version.CompanyJobVariantID)
	assert.Equal(t, "recruiter", version.CreatedBy)
}

func TestPublish_IndependentVariantsVersionIndependently(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)
	ctx := context.Background()
	a, b := testVariant(), testVariant()

	va, err := publisher.Publish(ctx, a, testSpec(), "content", "recruiter")
	require.NoError(t, err)
	vb, err := publisher.Publish(ctx, b, testSpec(), "content", "recruiter")
	require.NoError(t, err)

	assert.Equal(t, 1, va.Version)
	assert.Equal(t, 1, vb.Version)
}

func TestPublish_RejectsEmptyContent(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)

	_, err := publisher.Publish(context.Background(), testVariant(), testSpec(), "", "recruiter")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestPublish_RejectsInvalidSpec(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)
	spec := testSpec()
	spec.Title = ""

	_, err := publisher.Publish(context.Background(), testVariant(), spec, "content", "recruiter")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestPublish_NilInputs(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)
	ctx := context.Background()

	_, err := publisher.Publish(ctx, nil, testSpec(), "content", "recruiter")
	assert.True(t, errs.IsNotFound(err))

	_, err = publisher.Publish(ctx, testVariant(), nil, "content", "recruiter")
	assert.True(t, errs.IsNotFound(err))
}

func TestPublish_ConcurrentPublishesGetDistinctVersions(t *testing.T) {
	publisher := NewPublisher(NewMemoryVersionStore(), nil, nil)
	ctx := context.Background()
	variant := testVariant()

	const workers = 8
	var wg sync.WaitGroup
	versions := make([]int, workers)
	errors := make([]error, workers)
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := publisher.Publish(ctx, variant, testSpec(), "content", "recruiter")
			if err != nil {
				errors[i] = err
				return
			}
			versions[i] = v.Version
		}()
	}
	wg.Wait()

	for _, err := range errors {
		require.NoError(t, err)
	}

	seen := make(map[int]bool, workers)
	for _, v := range versions {
		assert.False(t, seen[v], "version %d assigned twice", v)
		seen[v] = true
	}
	for want := 1; want <= workers; want++ {
		assert.True(t, seen[want], "version %d missing", want)
	}
}
