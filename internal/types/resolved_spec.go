// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/jonathan/talent-pipeline/internal/errs"
)

// ResolvedJobSpec is the fully merged, publish-ready job description
// produced by the resolver. It is derived state: recomputed or cached,
// never edited in place.
type ResolvedJobSpec struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Requirements    []RequirementItem `json:"requirements"`
	Company         CompanyProfile    `json:"company"`
	SalaryRange     *SalaryRange      `json:"salary_range,omitempty"`
	Benefits        []string          `json:"benefits,omitempty"`
	WorkArrangement WorkArrangement   `json:"work_arrangement"`
	Location        string            `json:"location,omitempty"`
}

// RequirementsByCategory splits the spec's requirements into priority tiers.
func (s *ResolvedJobSpec) RequirementsByCategory() map[RequirementCategory][]RequirementItem {
	out := make(map[RequirementCategory][]RequirementItem, 3)
	for _, r := range s.Requirements {
		out[r.Category] = append(out[r.Category], r)
	}
	return out
}

// Validate checks the spec invariants: at most one requirement per
// normalized description, and a positive must-have weight sum whenever any
// must-have requirement exists.
func (s *ResolvedJobSpec) Validate() error {
	if s.Title == "" {
		return errs.Validation("resolved spec title must be non-empty")
	}
	if s.Description == "" {
		return errs.Validation("resolved spec description must be non-empty")
	}
	seen := make(map[string]bool, len(s.Requirements))
	mustWeight := 0
	mustCount := 0
	for i := range s.Requirements {
		r := &s.Requirements[i]
		if err := r.Validate(); err != nil {
			return err
		}
		key := r.Key()
		if seen[key] {
			return errs.Validation("resolved spec contains duplicate requirement %q", r.Description)
		}
		seen[key] = true
		if r.Category == CategoryMust {
			mustCount++
			mustWeight += r.Weight
		}
	}
	if mustCount > 0 && mustWeight <= 0 {
		return errs.Validation("resolved spec has must-have requirements with zero total weight")
	}
	return nil
}
