// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// JDVersion is an immutable snapshot of a resolved job spec taken at
// publish time. Version numbers increase monotonically per variant; there
// is no rollback, republishing creates the next version.
type JDVersion struct {
	ID                  uuid.UUID       `json:"id"`
	CompanyJobVariantID uuid.UUID       `json:"company_job_variant_id"`
	Version             int             `json:"version"`
	ResolvedSpec        ResolvedJobSpec `json:"resolved_spec"`
	PublishedContent    string          `json:"published_content"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
}
