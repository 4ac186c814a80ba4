package tracker

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

func testTracker() (*Tracker, *MemoryStore) {
	store := NewMemoryStore()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return New(store, nil, func() time.Time { return at }, uuid.New), store
}

func TestApply_CreatesApplicationInAppliedStage(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, types.StageApplied, app.Status)
	assert.Equal(t, int64(1), app.Version)
	require.Len(t, app.StageHistory, 1)
	assert.Equal(t, types.StageApplied, app.StageHistory[0].ToStage)
	assert.True(t, app.StageHistory[0].Automated)

	history, err := trk.History(ctx, app.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestApply_DuplicateCandidateVariantPairConflicts(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()
	candidateID, variantID := uuid.New(), uuid.New()

	_, err := trk.Apply(ctx, candidateID, variantID)
	require.NoError(t, err)

	_, err = trk.Apply(ctx, candidateID, variantID)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
	assert.False(t, errs.IsRetryable(err))
}

func TestApply_SameCandidateDifferentVariants(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()
	candidateID := uuid.New()

	_, err := trk.Apply(ctx, candidateID, uuid.New())
	require.NoError(t, err)
	_, err = trk.Apply(ctx, candidateID, uuid.New())
	assert.NoError(t, err)
}

func TestApply_RequiresIDs(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()

	_, err := trk.Apply(ctx, uuid.Nil, uuid.New())
	assert.True(t, errs.IsValidation(err))

	_, err = trk.Apply(ctx, uuid.New(), uuid.Nil)
	assert.True(t, errs.IsValidation(err))
}

func TestTransition_AdvancesAndBumpsVersion(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	updated, err := trk.Advance(ctx, app.ID, types.StageScreening, "recruiter", "")
	require.NoError(t, err)

	assert.Equal(t, types.StageScreening, updated.Status)
	assert.Equal(t, int64(2), updated.Version)

	history, err := trk.History(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, types.StageApplied, history[1].FromStage)
	assert.Equal(t, types.StageScreening, history[1].ToStage)
}

func TestTransition_IllegalMoveDoesNotTouchStore(t *testing.T) {
	trk, store := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = trk.Advance(ctx, app.ID, types.StageHired, "recruiter", "")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	stored, err := store.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StageApplied, stored.Status)
	assert.Equal(t, int64(1), stored.Version)
}

func TestTransition_UnknownApplication(t *testing.T) {
	trk, _ := testTracker()

	_, err := trk.Advance(context.Background(), uuid.New(), types.StageScreening, "recruiter", "")
	assert.True(t, errs.IsNotFound(err))
}

func TestReject_FromMidPipeline(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = trk.Advance(ctx, app.ID, types.StageScreening, "recruiter", "")
	require.NoError(t, err)
	_, err = trk.Advance(ctx, app.ID, types.StageShortlisted, "recruiter", "")
	require.NoError(t, err)

	rejected, err := trk.Reject(ctx, app.ID, "recruiter", "position filled")
	require.NoError(t, err)
	assert.Equal(t, types.StageRejected, rejected.Status)

	_, err = trk.Advance(ctx, app.ID, types.StageInterviewScheduled, "recruiter", "")
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestTransition_ConcurrentRequestsSerialized(t *testing.T) {
	trk, _ := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = trk.Advance(ctx, app.ID, types.StageScreening, "recruiter", "")
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errs.IsValidation(err), "losers must fail the same-stage check, got %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one transition may win")

	history, err := trk.History(ctx, app.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2, "exactly one entry past the initial one")
}

func TestStore_StaleVersionWriteIsRetryable(t *testing.T) {
	trk, store := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	// Simulate a writer in another process: the stored version has moved
	// past what this caller read.
	stale, err := store.GetApplication(ctx, app.ID)
	require.NoError(t, err)

	_, err = trk.Advance(ctx, app.ID, types.StageScreening, "recruiter", "")
	require.NoError(t, err)

	stale.Status = types.StageScreening
	entry := &types.StageHistoryEntry{
		ID:            uuid.New(),
		ApplicationID: stale.ID,
		FromStage:     types.StageApplied,
		ToStage:       types.StageScreening,
		ChangedAt:     time.Now(),
	}
	err = store.UpdateApplicationStatus(ctx, stale, 1, entry)
	require.Error(t, err)
	assert.True(t, errs.IsRetryable(err))
}

func TestAttachScore(t *testing.T) {
	trk, store := testTracker()
	ctx := context.Background()

	app, err := trk.Apply(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	explanation := &types.MatchExplanation{OverallScore: 82.5}
	require.NoError(t, trk.AttachScore(ctx, app.ID, explanation))

	stored, err := store.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.FitScore)
	assert.Equal(t, 82.5, *stored.FitScore)
	require.NotNil(t, stored.Explanation)
	assert.Equal(t, 82.5, stored.Explanation.OverallScore)
}

func TestAttachScore_RequiresExplanation(t *testing.T) {
	trk, _ := testTracker()

	err := trk.AttachScore(context.Background(), uuid.New(), nil)
	assert.True(t, errs.IsValidation(err))
}
