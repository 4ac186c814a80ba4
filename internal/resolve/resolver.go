// Package resolve merges a job family's base requirements, a template's own
// requirements, and a company variant's overlays into one resolved job spec.
package resolve

import (
	"fmt"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// Resolve merges family, template, and variant requirements into a
// ResolvedJobSpec. Precedence, highest first:
//
//	company-modified > company-additional (new keys only) > template > family
//
// All inputs are validated before any merging runs; the function is pure
// and idempotent, so resolving twice with identical inputs yields a
// structurally identical spec.
func Resolve(family *types.JobFamily, template *types.JobTemplate, variant *types.CompanyJobVariant, company *types.CompanyProfile) (*types.ResolvedJobSpec, error) {
	if family == nil {
		return nil, errs.NotFound("job family")
	}
	if template == nil {
		return nil, errs.NotFound("job template")
	}
	if variant == nil {
		return nil, errs.NotFound("company job variant")
	}
	if company == nil {
		return nil, errs.NotFound("company profile")
	}
	if err := family.Validate(); err != nil {
		return nil, err
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}
	if template.JobFamilyID != family.ID {
		return nil, errs.Validation("template %q does not belong to family %q", template.Name, family.Name)
	}
	if variant.JobTemplateID != template.ID {
		return nil, errs.Validation("variant does not belong to template %q", template.Name)
	}
	if variant.CompanyProfileID != company.ID {
		return nil, errs.Validation("variant does not belong to company %q", company.Name)
	}

	merged := newRequirementSet(len(family.BaseRequirements) + len(template.OwnRequirements) + len(variant.AdditionalRequirements))

	// 1. Seed with family base requirements, then overlay template
	// requirements: matching descriptions replace, new ones append.
	for _, r := range family.BaseRequirements {
		merged.put(r)
	}
	for _, r := range template.OwnRequirements {
		merged.put(r)
	}

	// 2. Company modifications replace matching requirements; a
	// modification with no existing match counts as additional.
	for _, r := range variant.ModifiedRequirements {
		merged.put(r)
	}

	// 3. Company additions only land on keys not already taken. Step 2 ran
	// first, so an addition colliding with a modification is dropped and
	// the more specific company-modified entry survives.
	for _, r := range variant.AdditionalRequirements {
		merged.putIfAbsent(r)
	}

	spec := &types.ResolvedJobSpec{
		Title:           template.Name,
		Description:     generatedDescription(family, template, company),
		Requirements:    merged.ordered(),
		Company:         *company,
		SalaryRange:     template.SalaryRange,
		Benefits:        company.Benefits,
		WorkArrangement: company.WorkArrangement,
		Location:        company.Location,
	}
	if variant.CustomTitle != "" {
		spec.Title = variant.CustomTitle
	}
	if variant.CustomDescription != "" {
		spec.Description = variant.CustomDescription
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// generatedDescription is the deterministic fallback used when the variant
// carries no custom description.
func generatedDescription(family *types.JobFamily, template *types.JobTemplate, company *types.CompanyProfile) string {
	return fmt.Sprintf("%s %s (%s) at %s", template.Level, template.Name, family.Name, company.Name)
}

// requirementSet is an insertion-ordered map of requirements keyed on the
// normalized description.
type requirementSet struct {
	byKey map[string]int
	items []types.RequirementItem
}

func newRequirementSet(capacity int) *requirementSet {
	return &requirementSet{
		byKey: make(map[string]int, capacity),
		items: make([]types.RequirementItem, 0, capacity),
	}
}

// put inserts the requirement, replacing an existing entry with the same
// key in place so the original position is kept.
func (s *requirementSet) put(r types.RequirementItem) {
	key := r.Key()
	if idx, ok := s.byKey[key]; ok {
		s.items[idx] = r
		return
	}
	s.byKey[key] = len(s.items)
	s.items = append(s.items, r)
}

// putIfAbsent inserts the requirement only when its key is new.
func (s *requirementSet) putIfAbsent(r types.RequirementItem) {
	key := r.Key()
	if _, ok := s.byKey[key]; ok {
		return
	}
	s.byKey[key] = len(s.items)
	s.items = append(s.items, r)
}

// ordered returns the merged requirements in insertion order.
func (s *requirementSet) ordered() []types.RequirementItem {
	out := make([]types.RequirementItem, len(s.items))
	copy(out, s.items)
	return out
}
