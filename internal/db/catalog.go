package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// -----------------------------------------------------------------------------
// Job Catalog Methods
//
// Requirement lists and preferences are stored as JSONB: the core treats
// them as opaque value objects, so relational decomposition buys nothing.
// -----------------------------------------------------------------------------

// SaveJobFamily inserts or updates a job family.
func (db *DB) SaveJobFamily(ctx context.Context, family *types.JobFamily) error {
	reqsJSON, err := json.Marshal(family.BaseRequirements)
	if err != nil {
		return fmt.Errorf("failed to marshal base requirements: %w", err)
	}
	categoriesJSON, err := json.Marshal(family.SkillCategories)
	if err != nil {
		return fmt.Errorf("failed to marshal skill categories: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_families (id, name, skill_categories, base_requirements)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET
		     name = $2, skill_categories = $3, base_requirements = $4, updated_at = NOW()`,
		family.ID, family.Name, categoriesJSON, reqsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save job family: %w", err)
	}
	return nil
}

// GetJobFamily retrieves a job family by ID, nil when absent.
func (db *DB) GetJobFamily(ctx context.Context, id uuid.UUID) (*types.JobFamily, error) {
	var f types.JobFamily
	var categoriesJSON, reqsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, skill_categories, base_requirements FROM job_families WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.Name, &categoriesJSON, &reqsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job family: %w", err)
	}

	if err := unmarshalColumn(categoriesJSON, &f.SkillCategories, "skill_categories"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(reqsJSON, &f.BaseRequirements, "base_requirements"); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteJobFamily removes a family and, via ON DELETE CASCADE, its
// templates and their variants (families own templates).
func (db *DB) DeleteJobFamily(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM job_families WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job family: %w", err)
	}
	return nil
}

// SaveJobTemplate inserts or updates a job template.
func (db *DB) SaveJobTemplate(ctx context.Context, template *types.JobTemplate) error {
	reqsJSON, err := json.Marshal(template.OwnRequirements)
	if err != nil {
		return fmt.Errorf("failed to marshal own requirements: %w", err)
	}
	var salaryJSON []byte
	if template.SalaryRange != nil {
		salaryJSON, err = json.Marshal(template.SalaryRange)
		if err != nil {
			return fmt.Errorf("failed to marshal salary range: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_templates
		     (id, job_family_id, name, level, experience_min, experience_max, salary_range, own_requirements)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		     name = $3, level = $4, experience_min = $5, experience_max = $6,
		     salary_range = $7, own_requirements = $8, updated_at = NOW()`,
		template.ID, template.JobFamilyID, template.Name, template.Level,
		template.ExperienceRange.Min, template.ExperienceRange.Max, salaryJSON, reqsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save job template: %w", err)
	}
	return nil
}

// GetJobTemplate retrieves a job template by ID, nil when absent.
func (db *DB) GetJobTemplate(ctx context.Context, id uuid.UUID) (*types.JobTemplate, error) {
	var t types.JobTemplate
	var salaryJSON, reqsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_family_id, name, level, experience_min, experience_max, salary_range, own_requirements
		 FROM job_templates WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.JobFamilyID, &t.Name, &t.Level,
		&t.ExperienceRange.Min, &t.ExperienceRange.Max, &salaryJSON, &reqsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job template: %w", err)
	}

	if err := unmarshalColumn(salaryJSON, &t.SalaryRange, "salary_range"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(reqsJSON, &t.OwnRequirements, "own_requirements"); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveCompanyProfile inserts or updates a company profile.
func (db *DB) SaveCompanyProfile(ctx context.Context, company *types.CompanyProfile) error {
	cultureJSON, err := json.Marshal(company.Culture)
	if err != nil {
		return fmt.Errorf("failed to marshal culture: %w", err)
	}
	benefitsJSON, err := json.Marshal(company.Benefits)
	if err != nil {
		return fmt.Errorf("failed to marshal benefits: %w", err)
	}
	prefsJSON, err := json.Marshal(company.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO company_profiles
		     (id, name, industry, size, culture, benefits, work_arrangement, location, preferences)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		     name = $2, industry = $3, size = $4, culture = $5, benefits = $6,
		     work_arrangement = $7, location = $8, preferences = $9, updated_at = NOW()`,
		company.ID, company.Name, nullIfEmpty(company.Industry), company.Size,
		cultureJSON, benefitsJSON, company.WorkArrangement, nullIfEmpty(company.Location), prefsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save company profile: %w", err)
	}
	return nil
}

// GetCompanyProfile retrieves a company profile by ID, nil when absent.
func (db *DB) GetCompanyProfile(ctx context.Context, id uuid.UUID) (*types.CompanyProfile, error) {
	var c types.CompanyProfile
	var industry, location *string
	var cultureJSON, benefitsJSON, prefsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, industry, size, culture, benefits, work_arrangement, location, preferences
		 FROM company_profiles WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &industry, &c.Size, &cultureJSON, &benefitsJSON,
		&c.WorkArrangement, &location, &prefsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}

	if industry != nil {
		c.Industry = *industry
	}
	if location != nil {
		c.Location = *location
	}
	if err := unmarshalColumn(cultureJSON, &c.Culture, "culture"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(benefitsJSON, &c.Benefits, "benefits"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(prefsJSON, &c.Preferences, "preferences"); err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveVariant inserts or updates a company job variant.
func (db *DB) SaveVariant(ctx context.Context, variant *types.CompanyJobVariant) error {
	additionalJSON, err := json.Marshal(variant.AdditionalRequirements)
	if err != nil {
		return fmt.Errorf("failed to marshal additional requirements: %w", err)
	}
	modifiedJSON, err := json.Marshal(variant.ModifiedRequirements)
	if err != nil {
		return fmt.Errorf("failed to marshal modified requirements: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO company_job_variants
		     (id, job_template_id, company_profile_id, custom_title, custom_description,
		      additional_requirements, modified_requirements, is_active, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		     custom_title = $4, custom_description = $5, additional_requirements = $6,
		     modified_requirements = $7, is_active = $8, published_at = $9, updated_at = NOW()`,
		variant.ID, variant.JobTemplateID, variant.CompanyProfileID,
		nullIfEmpty(variant.CustomTitle), nullIfEmpty(variant.CustomDescription),
		additionalJSON, modifiedJSON, variant.IsActive, variant.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save variant: %w", err)
	}
	return nil
}

// GetVariant retrieves a company job variant by ID, nil when absent.
func (db *DB) GetVariant(ctx context.Context, id uuid.UUID) (*types.CompanyJobVariant, error) {
	var v types.CompanyJobVariant
	var customTitle, customDescription *string
	var additionalJSON, modifiedJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_template_id, company_profile_id, custom_title, custom_description,
		        additional_requirements, modified_requirements, is_active, published_at
		 FROM company_job_variants WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.JobTemplateID, &v.CompanyProfileID, &customTitle, &customDescription,
		&additionalJSON, &modifiedJSON, &v.IsActive, &v.PublishedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get variant: %w", err)
	}

	if customTitle != nil {
		v.CustomTitle = *customTitle
	}
	if customDescription != nil {
		v.CustomDescription = *customDescription
	}
	if err := unmarshalColumn(additionalJSON, &v.AdditionalRequirements, "additional_requirements"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(modifiedJSON, &v.ModifiedRequirements, "modified_requirements"); err != nil {
		return nil, err
	}
	return &v, nil
}
