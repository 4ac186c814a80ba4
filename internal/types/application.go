// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// PipelineStage is a discrete step in a candidate's progress through
// hiring. The non-terminal stages form a strict linear order; rejected is
// reachable from any non-terminal stage.
type PipelineStage string

// Pipeline stage constants, in happy-path order
const (
	StageApplied            PipelineStage = "applied"
	StageScreening          PipelineStage = "screening"
	StageShortlisted        PipelineStage = "shortlisted"
	StageInterviewScheduled PipelineStage = "interview_scheduled"
	StageInterviewCompleted PipelineStage = "interview_completed"
	StageOfferExtended      PipelineStage = "offer_extended"
	StageOfferAccepted      PipelineStage = "offer_accepted"
	StageHired              PipelineStage = "hired"
	StageRejected           PipelineStage = "rejected"
)

// Stages lists every pipeline stage in happy-path order, rejected last.
func Stages() []PipelineStage {
	return []PipelineStage{
		StageApplied, StageScreening, StageShortlisted,
		StageInterviewScheduled, StageInterviewCompleted,
		StageOfferExtended, StageOfferAccepted, StageHired, StageRejected,
	}
}

// IsTerminal reports whether no further transitions are permitted.
func (s PipelineStage) IsTerminal() bool {
	return s == StageHired || s == StageRejected
}

// IsValid reports whether s is a known pipeline stage.
func (s PipelineStage) IsValid() bool {
	for _, stage := range Stages() {
		if s == stage {
			return true
		}
	}
	return false
}

// StageHistoryEntry records one accepted stage transition. Entries are
// append-only: never mutated, never deleted.
type StageHistoryEntry struct {
	ID            uuid.UUID     `json:"id"`
	ApplicationID uuid.UUID     `json:"application_id"`
	FromStage     PipelineStage `json:"from_stage,omitempty"`
	ToStage       PipelineStage `json:"to_stage"`
	ChangedBy     string        `json:"changed_by,omitempty"`
	Automated     bool          `json:"automated"`
	ChangedAt     time.Time     `json:"changed_at"`
	Notes         string        `json:"notes,omitempty"`
}

// Application links a candidate to a company job variant and tracks their
// progress. Unique per (candidate, variant); status changes only through
// the pipeline state machine. Version backs optimistic concurrency in
// stores that use it.
type Application struct {
	ID                  uuid.UUID           `json:"id"`
	CandidateID         uuid.UUID           `json:"candidate_id"`
	CompanyJobVariantID uuid.UUID           `json:"company_job_variant_id"`
	Status              PipelineStage       `json:"status"`
	FitScore            *float64            `json:"fit_score,omitempty"` // 0 to 100
	Explanation         *MatchExplanation   `json:"explanation,omitempty"`
	StageHistory        []StageHistoryEntry `json:"stage_history,omitempty"`
	Version             int64               `json:"version"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}
