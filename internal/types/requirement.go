// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
)

// RequirementType classifies what kind of evidence a requirement asks for.
type RequirementType string

// Requirement type constants
const (
	RequirementSkill         RequirementType = "skill"
	RequirementExperience    RequirementType = "experience"
	RequirementEducation     RequirementType = "education"
	RequirementCertification RequirementType = "certification"
	RequirementOther         RequirementType = "other"
)

// RequirementCategory is the priority tier of a requirement.
type RequirementCategory string

// Requirement category constants
const (
	CategoryMust   RequirementCategory = "must"
	CategoryShould RequirementCategory = "should"
	CategoryNice   RequirementCategory = "nice"
)

// Weight bounds for requirements. DefaultWeight is applied when a
// requirement arrives with no weight set.
const (
	MinWeight     = 1
	MaxWeight     = 10
	DefaultWeight = 5
)

// RequirementItem is a single weighted requirement. Once resolved into a
// spec it is treated as immutable.
type RequirementItem struct {
	ID           uuid.UUID           `json:"id"`
	Type         RequirementType     `json:"type"`
	Category     RequirementCategory `json:"category"`
	Description  string              `json:"description"`
	Weight       int                 `json:"weight"`
	Alternatives []string            `json:"alternatives,omitempty"`
}

// Key returns the normalized identity of the requirement: its trimmed,
// lowercased description. Overlay and dedup rules in the resolver key on it.
func (r *RequirementItem) Key() string {
	return strings.ToLower(strings.TrimSpace(r.Description))
}

// Validate checks the requirement invariants. A zero weight is filled with
// DefaultWeight first, so after a successful Validate the weight is always
// explicit and in [MinWeight, MaxWeight].
func (r *RequirementItem) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errs.Validation("requirement description must be non-empty")
	}
	if r.Weight == 0 {
		r.Weight = DefaultWeight
	}
	if r.Weight < MinWeight || r.Weight > MaxWeight {
		return errs.Validation("requirement %q: weight %d out of range [%d,%d]",
			r.Description, r.Weight, MinWeight, MaxWeight)
	}
	switch r.Type {
	case RequirementSkill, RequirementExperience, RequirementEducation,
		RequirementCertification, RequirementOther:
	default:
		return errs.Validation("requirement %q: unknown type %q", r.Description, r.Type)
	}
	switch r.Category {
	case CategoryMust, CategoryShould, CategoryNice:
	default:
		return errs.Validation("requirement %q: unknown category %q", r.Description, r.Category)
	}
	return nil
}

// ValidateRequirements validates a slice of requirements in place.
func ValidateRequirements(reqs []RequirementItem) error {
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
