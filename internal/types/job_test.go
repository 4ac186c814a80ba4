package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/errs"
)

func validTemplate() JobTemplate {
	return JobTemplate{
		ID:          uuid.New(),
		JobFamilyID: uuid.New(),
		Name:        "Frontend Engineer",
		Level:       LevelMid,
		ExperienceRange: ExperienceRange{
			Min: 2,
			Max: 5,
		},
	}
}

func TestJobFamily_Validate(t *testing.T) {
	family := JobFamily{ID: uuid.New(), Name: "Software Engineer"}
	assert.NoError(t, family.Validate())

	family.Name = "  "
	err := family.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestJobFamily_ValidateBaseRequirements(t *testing.T) {
	family := JobFamily{
		ID:   uuid.New(),
		Name: "Software Engineer",
		BaseRequirements: []RequirementItem{
			{Type: RequirementSkill, Category: CategoryMust, Description: "Programming", Weight: 99},
		},
	}
	assert.Error(t, family.Validate())
}

func TestJobTemplate_Validate(t *testing.T) {
	template := validTemplate()
	assert.NoError(t, template.Validate())
}

func TestJobTemplate_ValidateRejectsUnknownLevel(t *testing.T) {
	template := validTemplate()
	template.Level = JobLevel("intern")

	err := template.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestJobTemplate_ValidateRequiresFamilyReference(t *testing.T) {
	template := validTemplate()
	template.JobFamilyID = uuid.Nil

	err := template.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestJobTemplate_ValidateRejectsInvertedRanges(t *testing.T) {
	template := validTemplate()
	template.ExperienceRange = ExperienceRange{Min: 5, Max: 2}
	assert.Error(t, template.Validate())

	template = validTemplate()
	template.SalaryRange = &SalaryRange{Min: 90000, Max: 60000, Currency: "EUR"}
	assert.Error(t, template.Validate())

	template = validTemplate()
	template.SalaryRange = &SalaryRange{Min: 60000, Max: 90000, Currency: "EUR"}
	assert.NoError(t, template.Validate())
}

func TestCompanyProfile_Validate(t *testing.T) {
	company := CompanyProfile{
		ID:              uuid.New(),
		Name:            "TechStart",
		Size:            SizeStartup,
		WorkArrangement: WorkRemote,
	}
	assert.NoError(t, company.Validate())

	company.Size = CompanySize("gigantic")
	assert.Error(t, company.Validate())
}

func TestCompanyJobVariant_Validate(t *testing.T) {
	variant := CompanyJobVariant{
		ID:               uuid.New(),
		JobTemplateID:    uuid.New(),
		CompanyProfileID: uuid.New(),
	}
	assert.NoError(t, variant.Validate())

	variant.JobTemplateID = uuid.Nil
	err := variant.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCompanyJobVariant_ValidateOverlays(t *testing.T) {
	variant := CompanyJobVariant{
		ID:               uuid.New(),
		JobTemplateID:    uuid.New(),
		CompanyProfileID: uuid.New(),
		ModifiedRequirements: []RequirementItem{
			{Type: RequirementSkill, Category: CategoryMust, Description: ""},
		},
	}
	assert.Error(t, variant.Validate())
}
