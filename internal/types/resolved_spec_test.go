package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/errs"
)

func validSpec() ResolvedJobSpec {
	return ResolvedJobSpec{
		Title:       "Frontend Engineer",
		Description: "mid Frontend Engineer (Software Engineer) at TechStart",
		Requirements: []RequirementItem{
			{Type: RequirementSkill, Category: CategoryMust, Description: "JavaScript", Weight: 9},
			{Type: RequirementSkill, Category: CategoryShould, Description: "SQL", Weight: 5},
			{Type: RequirementSkill, Category: CategoryNice, Description: "TailwindCSS", Weight: 5},
		},
	}
}

func TestResolvedJobSpec_Validate(t *testing.T) {
	spec := validSpec()
	assert.NoError(t, spec.Validate())
}

func TestResolvedJobSpec_ValidateRequiresTitleAndDescription(t *testing.T) {
	spec := validSpec()
	spec.Title = ""
	assert.True(t, errs.IsValidation(spec.Validate()))

	spec = validSpec()
	spec.Description = ""
	assert.True(t, errs.IsValidation(spec.Validate()))
}

func TestResolvedJobSpec_ValidateRejectsDuplicateRequirements(t *testing.T) {
	spec := validSpec()
	spec.Requirements = append(spec.Requirements, RequirementItem{
		Type:        RequirementSkill,
		Category:    CategoryShould,
		Description: "  javascript ",
		Weight:      3,
	})

	err := spec.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicate requirement")
}

func TestResolvedJobSpec_ValidateEmptyRequirementsIsLegal(t *testing.T) {
	spec := validSpec()
	spec.Requirements = nil
	assert.NoError(t, spec.Validate())
}

func TestResolvedJobSpec_RequirementsByCategory(t *testing.T) {
	spec := validSpec()

	byCategory := spec.RequirementsByCategory()

	require.Len(t, byCategory[CategoryMust], 1)
	assert.Equal(t, "JavaScript", byCategory[CategoryMust][0].Description)
	assert.Len(t, byCategory[CategoryShould], 1)
	assert.Len(t, byCategory[CategoryNice], 1)
}
