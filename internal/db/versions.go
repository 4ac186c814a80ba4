package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// -----------------------------------------------------------------------------
// JD Version Methods
//
// Implements publish.VersionStore. The resolved spec is frozen as JSONB;
// a unique (variant, version) constraint keeps numbering monotonic across
// processes.
// -----------------------------------------------------------------------------

// LatestVersion returns the highest version number for the variant, zero
// when none exist.
func (db *DB) LatestVersion(ctx context.Context, variantID uuid.UUID) (int, error) {
	var latest int
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM jd_versions WHERE company_job_variant_id = $1`,
		variantID,
	).Scan(&latest)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest version: %w", err)
	}
	return latest, nil
}

// CreateVersion inserts a new immutable JD version record.
func (db *DB) CreateVersion(ctx context.Context, version *types.JDVersion) error {
	specJSON, err := json.Marshal(version.ResolvedSpec)
	if err != nil {
		return fmt.Errorf("failed to marshal resolved spec: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jd_versions
		     (id, company_job_variant_id, version, resolved_spec, published_content, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		version.ID, version.CompanyJobVariantID, version.Version, specJSON,
		version.PublishedContent, nullIfEmpty(version.CreatedBy), version.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.Conflict("version %d already exists for variant %s",
				version.Version, version.CompanyJobVariantID)
		}
		return fmt.Errorf("failed to create JD version: %w", err)
	}
	return nil
}

// ListVersions returns the variant's JD versions, oldest first.
func (db *DB) ListVersions(ctx context.Context, variantID uuid.UUID) ([]types.JDVersion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_job_variant_id, version, resolved_spec, published_content, created_by, created_at
		 FROM jd_versions WHERE company_job_variant_id = $1 ORDER BY version`,
		variantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list JD versions: %w", err)
	}
	defer rows.Close()

	var versions []types.JDVersion
	for rows.Next() {
		var v types.JDVersion
		var specJSON []byte
		var createdBy *string
		if err := rows.Scan(&v.ID, &v.CompanyJobVariantID, &v.Version, &specJSON,
			&v.PublishedContent, &createdBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan JD version: %w", err)
		}
		if err := unmarshalColumn(specJSON, &v.ResolvedSpec, "resolved_spec"); err != nil {
			return nil, err
		}
		if createdBy != nil {
			v.CreatedBy = *createdBy
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read JD versions: %w", err)
	}
	return versions, nil
}
