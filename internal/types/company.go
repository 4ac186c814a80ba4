// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
)

// CompanySize buckets a company by headcount.
type CompanySize string

// Company size constants
const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// WorkArrangement is where the work happens.
type WorkArrangement string

// Work arrangement constants
const (
	WorkRemote WorkArrangement = "remote"
	WorkHybrid WorkArrangement = "hybrid"
	WorkOnsite WorkArrangement = "onsite"
)

// HiringPreferences capture a company's skill priorities for screening.
type HiringPreferences struct {
	PrioritySkills []string `json:"priority_skills,omitempty"`
	DealBreakers   []string `json:"deal_breakers,omitempty"`
	NiceToHave     []string `json:"nice_to_have,omitempty"`
}

// CompanyProfile describes a hiring company.
type CompanyProfile struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name" validate:"required,min=1"`
	Industry        string            `json:"industry,omitempty"`
	Size            CompanySize       `json:"size" validate:"required,oneof=startup small medium large enterprise"`
	Culture         []string          `json:"culture,omitempty"`
	Benefits        []string          `json:"benefits,omitempty"`
	WorkArrangement WorkArrangement   `json:"work_arrangement" validate:"required,oneof=remote hybrid onsite"`
	Location        string            `json:"location,omitempty"`
	Preferences     HiringPreferences `json:"preferences"`
}

// CompanyJobVariant is a company's concrete customization of a job
// template. Modified requirements override base/template requirements that
// share the same case-insensitive description; additional requirements are
// appended when new.
type CompanyJobVariant struct {
	ID                     uuid.UUID         `json:"id"`
	JobTemplateID          uuid.UUID         `json:"job_template_id"`
	CompanyProfileID       uuid.UUID         `json:"company_profile_id"`
	CustomTitle            string            `json:"custom_title,omitempty"`
	CustomDescription      string            `json:"custom_description,omitempty"`
	AdditionalRequirements []RequirementItem `json:"additional_requirements,omitempty"`
	ModifiedRequirements   []RequirementItem `json:"modified_requirements,omitempty"`
	IsActive               bool              `json:"is_active"`
	PublishedAt            *time.Time        `json:"published_at,omitempty"`
}

// Validate checks the company profile.
func (c *CompanyProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &errs.ValidationError{Message: "company profile", Cause: err}
	}
	if strings.TrimSpace(c.Name) == "" {
		return errs.Validation("company name must be non-empty")
	}
	return nil
}

// Validate checks the variant references and both requirement overlays.
func (v *CompanyJobVariant) Validate() error {
	if v.JobTemplateID == uuid.Nil {
		return errs.Validation("variant: missing job template reference")
	}
	if v.CompanyProfileID == uuid.Nil {
		return errs.Validation("variant: missing company profile reference")
	}
	if err := ValidateRequirements(v.AdditionalRequirements); err != nil {
		return err
	}
	if err := ValidateRequirements(v.ModifiedRequirements); err != nil {
		return err
	}
	return nil
}
