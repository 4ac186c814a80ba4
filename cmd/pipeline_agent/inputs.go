package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-pipeline/internal/schemas"
	"github.com/jonathan/talent-pipeline/internal/skills"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// parsedResumeSchema is the repo-relative schema for candidate input.
const parsedResumeSchema = "schemas/parsed_resume.schema.json"

// loadJSON reads and unmarshals a JSON entity file.
func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadCatalog loads the family, template, company, and variant files.
func loadCatalog(familyPath, templatePath, companyPath, variantPath string) (*types.JobFamily, *types.JobTemplate, *types.CompanyProfile, *types.CompanyJobVariant, error) {
	var family types.JobFamily
	if err := loadJSON(familyPath, &family); err != nil {
		return nil, nil, nil, nil, err
	}
	var template types.JobTemplate
	if err := loadJSON(templatePath, &template); err != nil {
		return nil, nil, nil, nil, err
	}
	var company types.CompanyProfile
	if err := loadJSON(companyPath, &company); err != nil {
		return nil, nil, nil, nil, err
	}
	var variant types.CompanyJobVariant
	if err := loadJSON(variantPath, &variant); err != nil {
		return nil, nil, nil, nil, err
	}
	return &family, &template, &company, &variant, nil
}

// loadCandidate validates the parsed resume JSON against its schema and
// normalizes it into a candidate profile.
func loadCandidate(path string) (*types.Candidate, error) {
	if schemaPath := schemas.ResolveSchemaPath(parsedResumeSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("candidate input rejected: %w", err)
		}
	}

	var parsed types.ParsedResumeData
	if err := loadJSON(path, &parsed); err != nil {
		return nil, err
	}
	candidate := skills.NormalizeCandidate(&parsed)
	return &candidate, nil
}

// writeJSON marshals v to the given path, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
