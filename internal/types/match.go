// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/google/uuid"
)

// RequirementResult is the per-requirement outcome of a scoring run. The
// full list is retained on the explanation so every score is auditable.
type RequirementResult struct {
	RequirementID uuid.UUID           `json:"requirement_id"`
	Description   string              `json:"description"`
	Type          RequirementType     `json:"type"`
	Category      RequirementCategory `json:"category"`
	Weight        int                 `json:"weight"`
	MatchDegree   float64             `json:"match_degree"` // 0.0 to 1.0
	MatchedOn     string              `json:"matched_on,omitempty"`
	Note          string              `json:"note,omitempty"`
}

// Met reports whether the requirement counted as matched at all.
func (r *RequirementResult) Met() bool {
	return r.MatchDegree > 0
}

// MatchExplanation is the explainable result of comparing a candidate
// against a resolved job spec. A new scoring run replaces the prior
// explanation; explanations are not versioned.
type MatchExplanation struct {
	OverallScore     float64             `json:"overall_score"`
	MustHaveScore    float64             `json:"must_have_score"`
	ShouldHaveScore  float64             `json:"should_have_score"`
	NiceToHaveScore  float64             `json:"nice_to_have_score"`
	Gated            bool                `json:"gated,omitempty"` // overall capped by an unmet must-have
	Strengths        []string            `json:"strengths"`
	Gaps             []string            `json:"gaps"`
	Recommendations  []string            `json:"recommendations"`
	DetailedAnalysis []RequirementResult `json:"detailed_analysis"`
}
