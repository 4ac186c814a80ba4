package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Degree bounds for partial skill matches: a matched skill below the exact
// proficiency bar scores between weakMatchFloor and weakMatchCeil, scaled
// by proficiency.
const (
	weakMatchFloor = 0.5
	weakMatchCeil  = 0.9
)

// yearsPattern extracts a leading numeric threshold like "3+ years" or
// "5 years" from an experience requirement description.
var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*year`)

// matchRequirement computes the match degree in [0,1] for one requirement
// against the candidate profile, together with what it matched on and a
// short note. Absent candidate fields always mean "no match", never an
// error.
func (e *Engine) matchRequirement(candidate *types.Candidate, req *types.RequirementItem) (float64, string, string) {
	switch req.Type {
	case types.RequirementSkill:
		return e.matchSkill(candidate, req)
	case types.RequirementExperience:
		return e.matchExperience(candidate, req)
	case types.RequirementEducation:
		return matchNames(educationNames(candidate), req)
	case types.RequirementCertification:
		return matchNames(candidate.Certifications, req)
	default:
		// "other" requirements match against any profile text we have.
		names := make([]string, 0, len(candidate.Skills)+len(candidate.Certifications))
		for _, s := range candidate.Skills {
			names = append(names, s.Name)
		}
		names = append(names, candidate.Certifications...)
		return matchNames(names, req)
	}
}

// matchSkill finds the best candidate skill for the requirement. Exact
// name/alternative equality is preferred; substring matching is the
// fallback for multi-word descriptions. Degree is 1.0 for an exact match at
// or above the proficiency bar, otherwise scaled into the weak-match band.
func (e *Engine) matchSkill(candidate *types.Candidate, req *types.RequirementItem) (float64, string, string) {
	targets := requirementTargets(req)

	var (
		best      *types.Skill
		bestExact bool
	)
	for i := range candidate.Skills {
		skill := &candidate.Skills[i]
		name := strings.ToLower(strings.TrimSpace(skill.Name))
		if name == "" {
			continue
		}
		for _, target := range targets {
			exact := name == target
			partial := !exact && substringMatch(name, target)
			if !exact && !partial {
				continue
			}
			if best == nil || (exact && !bestExact) ||
				(exact == bestExact && skill.Proficiency > best.Proficiency) {
				best = skill
				bestExact = exact
			}
		}
	}

	if best == nil {
		return 0, "", "no matching skill on profile"
	}

	if bestExact && best.Proficiency >= e.cfg.ExactMatchProficiency {
		return 1.0, best.Name, fmt.Sprintf("exact match, proficiency %d", best.Proficiency)
	}

	// Weak match: scale by proficiency into [weakMatchFloor, weakMatchCeil].
	// An unknown proficiency sits at the floor.
	degree := weakMatchFloor + (weakMatchCeil-weakMatchFloor)*float64(best.Proficiency)/float64(types.MaxProficiency)
	if degree > weakMatchCeil {
		degree = weakMatchCeil
	}
	kind := "partial match"
	if bestExact {
		kind = "exact match below proficiency bar"
	}
	return degree, best.Name, fmt.Sprintf("%s, proficiency %d", kind, best.Proficiency)
}

// matchExperience handles experience requirements. When the description
// embeds a numeric threshold ("3+ years ..."), the candidate's total
// experience is compared against it; otherwise position titles are matched
// by name in a boolean fashion.
func (e *Engine) matchExperience(candidate *types.Candidate, req *types.RequirementItem) (float64, string, string) {
	if years, ok := yearsThreshold(req.Description); ok {
		if candidate.TotalExperience >= years {
			return 1.0, "", fmt.Sprintf("%.1f years of experience meets %.0f-year threshold", candidate.TotalExperience, years)
		}
		return 0, "", fmt.Sprintf("%.1f years of experience below %.0f-year threshold", candidate.TotalExperience, years)
	}

	titles := make([]string, 0, len(candidate.Experience))
	for _, exp := range candidate.Experience {
		titles = append(titles, exp.Title)
	}
	return matchNames(titles, req)
}

// matchNames performs boolean matching of a requirement against a list of
// candidate entry names.
func matchNames(names []string, req *types.RequirementItem) (float64, string, string) {
	targets := requirementTargets(req)
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		for _, target := range targets {
			if name == target || substringMatch(name, target) {
				return 1.0, strings.TrimSpace(raw), "matched"
			}
		}
	}
	return 0, "", "not present on profile"
}

// requirementTargets returns the lowercased description plus alternatives.
func requirementTargets(req *types.RequirementItem) []string {
	targets := make([]string, 0, 1+len(req.Alternatives))
	targets = append(targets, strings.ToLower(strings.TrimSpace(req.Description)))
	for _, alt := range req.Alternatives {
		alt = strings.ToLower(strings.TrimSpace(alt))
		if alt != "" {
			targets = append(targets, alt)
		}
	}
	return targets
}

// substringMatch allows containment either way, but only when the longer
// side is multi-word. That keeps "React" from matching "Redux" while
// letting "experience with React" match a "React" skill.
func substringMatch(name, target string) bool {
	if strings.Contains(target, " ") && strings.Contains(target, name) {
		return true
	}
	if strings.Contains(name, " ") && strings.Contains(name, target) {
		return true
	}
	return false
}

func yearsThreshold(description string) (float64, bool) {
	m := yearsPattern.FindStringSubmatch(strings.ToLower(description))
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil || years <= 0 {
		return 0, false
	}
	return float64(years), true
}
