// Package skills provides skill name canonicalization and deduplication for
// parsed resumes and requirement alternatives.
package skills

import (
	"strings"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// skillAliases maps common skill name variants to canonical names. Lookups
// are case-insensitive; the canonical casing here wins over whatever the
// parser produced.
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"js":         "JavaScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"tailwind":   "TailwindCSS",
}

// CanonicalName resolves a skill name to its canonical alias if one exists,
// otherwise returns the trimmed input unchanged. Casing of unknown names is
// preserved.
func CanonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := skillAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Normalize canonicalizes and deduplicates raw parsed skills. Dedup is
// keyed on the trimmed, case-insensitive name; on collision the entry with
// the higher proficiency wins (ties keep the first seen) and years of
// experience merge by taking the max. The winning entry's casing is
// preserved. Entries with empty names are dropped silently.
//
// Pure function: the input slice is never modified.
func Normalize(raw []types.RawSkill) []types.Skill {
	if len(raw) == 0 {
		return nil
	}

	normalized := make([]types.Skill, 0, len(raw))
	seen := make(map[string]int, len(raw)) // lowercased name -> index in normalized

	for _, rs := range raw {
		name := CanonicalName(rs.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)

		idx, exists := seen[key]
		if !exists {
			normalized = append(normalized, types.Skill{
				Name:              name,
				Category:          rs.Category,
				Proficiency:       clampProficiency(rs.Proficiency),
				YearsOfExperience: rs.YearsOfExperience,
			})
			seen[key] = len(normalized) - 1
			continue
		}

		// Collision: higher proficiency wins, ties keep the first seen.
		current := &normalized[idx]
		if clampProficiency(rs.Proficiency) > current.Proficiency {
			current.Name = name
			current.Proficiency = clampProficiency(rs.Proficiency)
			if rs.Category != "" {
				current.Category = rs.Category
			}
		}
		if rs.YearsOfExperience > current.YearsOfExperience {
			current.YearsOfExperience = rs.YearsOfExperience
		}
	}

	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// NormalizeCandidate builds a candidate profile from parsed resume data,
// carrying over the non-skill sections unchanged.
func NormalizeCandidate(parsed *types.ParsedResumeData) types.Candidate {
	if parsed == nil {
		return types.Candidate{}
	}
	return types.Candidate{
		Skills:          Normalize(parsed.Skills),
		Experience:      parsed.Experience,
		Education:       parsed.Education,
		Certifications:  parsed.Certifications,
		TotalExperience: parsed.TotalExperience,
	}
}

func clampProficiency(p int) int {
	if p < types.MinProficiency {
		return types.MinProficiency
	}
	if p > types.MaxProficiency {
		return types.MaxProficiency
	}
	return p
}
