// Package types provides type definitions for structured data used throughout the talent-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency bounds for parsed skills (0 = unknown/none, 10 = expert).
const (
	MinProficiency = 0
	MaxProficiency = 10
)

// RawSkill is a skill entry as it arrives from the external resume parser,
// before normalization.
type RawSkill struct {
	Name              string  `json:"name"`
	Category          string  `json:"category,omitempty"`
	Proficiency       int     `json:"proficiency,omitempty"`
	YearsOfExperience float64 `json:"years_of_experience,omitempty"`
}

// Skill is a normalized, deduplicated skill on a candidate profile.
type Skill struct {
	Name              string  `json:"name"`
	Category          string  `json:"category,omitempty"`
	Proficiency       int     `json:"proficiency,omitempty"`
	YearsOfExperience float64 `json:"years_of_experience,omitempty"`
}

// ExperienceEntry is one position from the parsed resume.
type ExperienceEntry struct {
	Title     string  `json:"title"`
	Company   string  `json:"company,omitempty"`
	Years     float64 `json:"years,omitempty"`
	Summary   string  `json:"summary,omitempty"`
	StartDate string  `json:"start_date,omitempty"` // "YYYY-MM"
	EndDate   string  `json:"end_date,omitempty"`   // "YYYY-MM" or empty for current
}

// EducationEntry is one degree from the parsed resume.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// ParsedResumeData is the structured output of the external resume parser.
// The core never parses documents; it consumes this shape as-is.
type ParsedResumeData struct {
	Skills          []RawSkill        `json:"skills,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       []EducationEntry  `json:"education,omitempty"`
	Certifications  []string          `json:"certifications,omitempty"`
	TotalExperience float64           `json:"total_experience,omitempty"`
	Confidence      float64           `json:"confidence,omitempty"`
}

// Candidate is a person in the pipeline together with their normalized
// profile. Missing profile fields are legal; scoring treats absence as
// "no match", never as invalid input.
type Candidate struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name,omitempty"`
	Email           string            `json:"email,omitempty"`
	Skills          []Skill           `json:"skills,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       []EducationEntry  `json:"education,omitempty"`
	Certifications  []string          `json:"certifications,omitempty"`
	TotalExperience float64           `json:"total_experience,omitempty"`
	ParsedAt        *time.Time        `json:"parsed_at,omitempty"`
}
