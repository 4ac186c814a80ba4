package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// -----------------------------------------------------------------------------
// Application Methods
//
// Implements tracker.Store. Status updates use an optimistic version check:
// a stale write affects zero rows and surfaces as a retryable conflict.
// -----------------------------------------------------------------------------

// CreateApplication inserts a new application with its initial history
// entries. A duplicate (candidate, variant) pair returns a ConflictError.
func (db *DB) CreateApplication(ctx context.Context, app *types.Application) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO applications
		     (id, candidate_id, company_job_variant_id, status, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.CandidateID, app.CompanyJobVariantID, app.Status, app.Version,
		app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.Conflict("candidate %s already applied to variant %s",
				app.CandidateID, app.CompanyJobVariantID)
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	for i := range app.StageHistory {
		if err := insertHistoryEntry(ctx, tx, &app.StageHistory[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit application: %w", err)
	}
	return nil
}

// GetApplication retrieves an application with its stage history, nil when
// absent.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	var a types.Application
	var explanationJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, company_job_variant_id, status, fit_score, explanation,
		        version, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.CandidateID, &a.CompanyJobVariantID, &a.Status, &a.FitScore,
		&explanationJSON, &a.Version, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if err := unmarshalColumn(explanationJSON, &a.Explanation, "explanation"); err != nil {
		return nil, err
	}

	history, err := db.ListStageHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	a.StageHistory = history
	return &a, nil
}

// UpdateApplicationStatus persists the status change and appends the
// history entry in one transaction, guarded by the version check.
func (db *DB) UpdateApplicationStatus(ctx context.Context, app *types.Application, expectedVersion int64, entry *types.StageHistoryEntry) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE applications
		 SET status = $1, version = version + 1, updated_at = $2
		 WHERE id = $3 AND version = $4`,
		app.Status, app.UpdatedAt, app.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.StaleWrite("application %s changed concurrently (expected version %d)",
			app.ID, expectedVersion)
	}

	if err := insertHistoryEntry(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}
	app.Version = expectedVersion + 1
	return nil
}

// SaveScore stores the fit score and match explanation on the application.
func (db *DB) SaveScore(ctx context.Context, id uuid.UUID, fitScore float64, explanation *types.MatchExplanation) error {
	explanationJSON, err := json.Marshal(explanation)
	if err != nil {
		return fmt.Errorf("failed to marshal explanation: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET fit_score = $1, explanation = $2, updated_at = NOW() WHERE id = $3`,
		fitScore, explanationJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("application %s", id)
	}
	return nil
}

// ListStageHistory returns the application's history entries, oldest first.
func (db *DB) ListStageHistory(ctx context.Context, applicationID uuid.UUID) ([]types.StageHistoryEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, application_id, from_stage, to_stage, changed_by, automated, changed_at, notes
		 FROM stage_history WHERE application_id = $1 ORDER BY changed_at, id`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage history: %w", err)
	}
	defer rows.Close()

	var entries []types.StageHistoryEntry
	for rows.Next() {
		var e types.StageHistoryEntry
		var fromStage, changedBy, notes *string
		if err := rows.Scan(&e.ID, &e.ApplicationID, &fromStage, &e.ToStage,
			&changedBy, &e.Automated, &e.ChangedAt, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan stage history: %w", err)
		}
		if fromStage != nil {
			e.FromStage = types.PipelineStage(*fromStage)
		}
		if changedBy != nil {
			e.ChangedBy = *changedBy
		}
		if notes != nil {
			e.Notes = *notes
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stage history: %w", err)
	}
	return entries, nil
}

func insertHistoryEntry(ctx context.Context, tx pgx.Tx, entry *types.StageHistoryEntry) error {
	var fromStage *string
	if entry.FromStage != "" {
		s := string(entry.FromStage)
		fromStage = &s
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO stage_history
		     (id, application_id, from_stage, to_stage, changed_by, automated, changed_at, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.ApplicationID, fromStage, entry.ToStage,
		nullIfEmpty(entry.ChangedBy), entry.Automated, entry.ChangedAt, nullIfEmpty(entry.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert stage history entry: %w", err)
	}
	return nil
}
