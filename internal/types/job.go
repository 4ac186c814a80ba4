// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
)

// JobLevel is the seniority level of a job template.
type JobLevel string

// Job level constants
const (
	LevelJunior    JobLevel = "junior"
	LevelMid       JobLevel = "mid"
	LevelSenior    JobLevel = "senior"
	LevelLead      JobLevel = "lead"
	LevelPrincipal JobLevel = "principal"
)

// JobFamily is a broad occupational category owning default requirements.
// Deleting a family cascades to its templates (families own templates).
type JobFamily struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name" validate:"required,min=1"`
	SkillCategories  []string          `json:"skill_categories,omitempty"`
	BaseRequirements []RequirementItem `json:"base_requirements,omitempty"`
}

// ExperienceRange is the expected years of experience for a template.
type ExperienceRange struct {
	Min int `json:"min" validate:"min=0"`
	Max int `json:"max" validate:"min=0"`
}

// SalaryRange is an optional advertised salary band.
type SalaryRange struct {
	Min      int    `json:"min" validate:"min=0"`
	Max      int    `json:"max" validate:"min=0"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// JobTemplate is a leveled, family-scoped job definition with its own
// requirement overlay. A template cannot exist without its family.
type JobTemplate struct {
	ID              uuid.UUID         `json:"id"`
	JobFamilyID     uuid.UUID         `json:"job_family_id"`
	Name            string            `json:"name" validate:"required,min=1"`
	Level           JobLevel          `json:"level" validate:"required,oneof=junior mid senior lead principal"`
	ExperienceRange ExperienceRange   `json:"experience_range"`
	SalaryRange     *SalaryRange      `json:"salary_range,omitempty"`
	OwnRequirements []RequirementItem `json:"own_requirements,omitempty"`
}

// Validate checks the family and its base requirements.
func (f *JobFamily) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errs.Validation("job family name must be non-empty")
	}
	if err := ValidateRequirements(f.BaseRequirements); err != nil {
		return err
	}
	return nil
}

// Validate checks the template, its ranges, and its own requirements.
func (t *JobTemplate) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
		return &errs.ValidationError{Message: "job template", Cause: err}
	}
	if t.JobFamilyID == uuid.Nil {
		return errs.Validation("job template %q: missing job family reference", t.Name)
	}
	if t.ExperienceRange.Min > t.ExperienceRange.Max {
		return errs.Validation("job template %q: experience range min %d > max %d",
			t.Name, t.ExperienceRange.Min, t.ExperienceRange.Max)
	}
	if t.SalaryRange != nil && t.SalaryRange.Min > t.SalaryRange.Max {
		return errs.Validation("job template %q: salary range min %d > max %d",
			t.Name, t.SalaryRange.Min, t.SalaryRange.Max)
	}
	if err := ValidateRequirements(t.OwnRequirements); err != nil {
		return err
	}
	return nil
}
