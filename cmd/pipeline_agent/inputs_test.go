package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/config"
	"github.com/jonathan/talent-pipeline/internal/types"
)

func writeTempJSON(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	familyID, templateID, companyID := uuid.New(), uuid.New(), uuid.New()

	familyPath := writeTempJSON(t, "family.json", types.JobFamily{ID: familyID, Name: "Software Engineer"})
	templatePath := writeTempJSON(t, "template.json", types.JobTemplate{
		ID: templateID, JobFamilyID: familyID, Name: "Frontend Engineer", Level: types.LevelMid,
	})
	companyPath := writeTempJSON(t, "company.json", types.CompanyProfile{
		ID: companyID, Name: "TechStart", Size: types.SizeStartup, WorkArrangement: types.WorkRemote,
	})
	variantPath := writeTempJSON(t, "variant.json", types.CompanyJobVariant{
		ID: uuid.New(), JobTemplateID: templateID, CompanyProfileID: companyID,
	})

	family, template, company, variant, err := loadCatalog(familyPath, templatePath, companyPath, variantPath)
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", family.Name)
	assert.Equal(t, familyID, template.JobFamilyID)
	assert.Equal(t, "TechStart", company.Name)
	assert.Equal(t, templateID, variant.JobTemplateID)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	path := writeTempJSON(t, "family.json", types.JobFamily{Name: "Software Engineer"})

	_, _, _, _, err := loadCatalog(path, filepath.Join(t.TempDir(), "missing.json"), path, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadCandidate_NormalizesSkills(t *testing.T) {
	path := writeTempJSON(t, "resume.json", types.ParsedResumeData{
		Skills: []types.RawSkill{
			{Name: "javascript", Proficiency: 7},
			{Name: "JavaScript", Proficiency: 8},
		},
		TotalExperience: 5,
	})

	candidate, err := loadCandidate(path)
	require.NoError(t, err)

	require.Len(t, candidate.Skills, 1)
	assert.Equal(t, "JavaScript", candidate.Skills[0].Name)
	assert.Equal(t, 8, candidate.Skills[0].Proficiency)
	assert.Equal(t, 5.0, candidate.TotalExperience)
}

func TestWriteJSON_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(path, map[string]int{"version": 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": 3}`, string(data))
}

func TestScoringConfig_AppliesOverrides(t *testing.T) {
	got := scoringConfig(config.Config{
		MustWeight:   0.6,
		ShouldWeight: 0.25,
		NiceWeight:   0.15,
		GateCap:      50,
	})

	assert.Equal(t, 0.6, got.MustWeight)
	assert.Equal(t, 0.25, got.ShouldWeight)
	assert.Equal(t, 0.15, got.NiceWeight)
	assert.Equal(t, 50.0, got.GateCap)
	assert.Equal(t, 0.3, got.GateThreshold, "unset overrides keep the default")
	assert.NoError(t, got.Validate())
}

func TestFillCatalogIDs(t *testing.T) {
	family := &types.JobFamily{Name: "Software Engineer"}
	template := &types.JobTemplate{Name: "Frontend Engineer", Level: types.LevelMid}
	company := &types.CompanyProfile{Name: "TechStart", Size: types.SizeStartup, WorkArrangement: types.WorkRemote}
	variant := &types.CompanyJobVariant{}

	fillCatalogIDs(family, template, company, variant)

	assert.NotEqual(t, uuid.Nil, family.ID)
	assert.Equal(t, family.ID, template.JobFamilyID)
	assert.Equal(t, template.ID, variant.JobTemplateID)
	assert.Equal(t, company.ID, variant.CompanyProfileID)
}

func TestFillCatalogIDs_KeepsExistingReferences(t *testing.T) {
	familyID := uuid.New()
	otherFamilyID := uuid.New()
	family := &types.JobFamily{ID: familyID, Name: "Software Engineer"}
	template := &types.JobTemplate{JobFamilyID: otherFamilyID, Name: "Frontend Engineer", Level: types.LevelMid}
	company := &types.CompanyProfile{Name: "TechStart"}
	variant := &types.CompanyJobVariant{}

	fillCatalogIDs(family, template, company, variant)

	assert.Equal(t, otherFamilyID, template.JobFamilyID, "an explicit reference is never rewired")
}

func TestScoringConfig_DefaultsWhenUnset(t *testing.T) {
	got := scoringConfig(config.Config{})
	assert.Equal(t, 0.5, got.MustWeight)
	assert.Equal(t, 60.0, got.GateCap)
}
