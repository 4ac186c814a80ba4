package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Engine scores candidates against resolved job specs. It is stateless and
// safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine with the given configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Score compares a candidate against a resolved spec with the default
// configuration.
func Score(candidate *types.Candidate, spec *types.ResolvedJobSpec) *types.MatchExplanation {
	engine := &Engine{cfg: DefaultConfig()}
	return engine.Score(candidate, spec)
}

// Score produces a MatchExplanation for the candidate against the spec.
// A spec with zero requirements scores a neutral 100 with empty lists; a
// nil spec is treated the same way. Missing candidate fields are treated
// as "no match", never as an error.
func (e *Engine) Score(candidate *types.Candidate, spec *types.ResolvedJobSpec) *types.MatchExplanation {
	if candidate == nil {
		candidate = &types.Candidate{}
	}
	if spec == nil {
		spec = &types.ResolvedJobSpec{}
	}

	results := make([]types.RequirementResult, 0, len(spec.Requirements))
	for i := range spec.Requirements {
		req := &spec.Requirements[i]
		degree, matchedOn, note := e.matchRequirement(candidate, req)
		results = append(results, types.RequirementResult{
			RequirementID: req.ID,
			Description:   req.Description,
			Type:          req.Type,
			Category:      req.Category,
			Weight:        req.Weight,
			MatchDegree:   degree,
			MatchedOn:     matchedOn,
			Note:          note,
		})
	}

	mustScore := e.categoryScore(results, types.CategoryMust)
	shouldScore := e.categoryScore(results, types.CategoryShould)
	niceScore := e.categoryScore(results, types.CategoryNice)

	overall := e.cfg.MustWeight*mustScore +
		e.cfg.ShouldWeight*shouldScore +
		e.cfg.NiceWeight*niceScore

	// Gate: a missed must-have caps the overall score so strong
	// nice-to-haves cannot hide a hard-requirement miss.
	gated := false
	for _, r := range results {
		if r.Category == types.CategoryMust && r.MatchDegree < e.cfg.GateThreshold {
			gated = true
			break
		}
	}
	if gated && overall > e.cfg.GateCap {
		overall = e.cfg.GateCap
	}

	return &types.MatchExplanation{
		OverallScore:     round1(overall),
		MustHaveScore:    round1(mustScore),
		ShouldHaveScore:  round1(shouldScore),
		NiceToHaveScore:  round1(niceScore),
		Gated:            gated,
		Strengths:        e.strengths(results),
		Gaps:             e.gaps(results),
		Recommendations:  e.recommendations(results),
		DetailedAnalysis: results,
	}
}

// categoryScore is the weighted match percentage for one category. A
// category with no requirements is vacuously satisfied at 100 so it never
// penalizes the overall score.
func (e *Engine) categoryScore(results []types.RequirementResult, category types.RequirementCategory) float64 {
	totalWeight := 0
	matchedWeight := 0.0
	for _, r := range results {
		if r.Category != category {
			continue
		}
		totalWeight += r.Weight
		matchedWeight += float64(r.Weight) * r.MatchDegree
	}
	if totalWeight == 0 {
		return 100
	}
	return 100 * matchedWeight / float64(totalWeight)
}

// strengths lists well-matched must/should requirements, heaviest first.
func (e *Engine) strengths(results []types.RequirementResult) []string {
	picked := make([]types.RequirementResult, 0, len(results))
	for _, r := range results {
		if r.Category == types.CategoryNice {
			continue
		}
		if r.MatchDegree >= e.cfg.StrengthFloor {
			picked = append(picked, r)
		}
	}
	sortByWeight(picked)
	if len(picked) > e.cfg.MaxStrengths {
		picked = picked[:e.cfg.MaxStrengths]
	}

	out := make([]string, 0, len(picked))
	for _, r := range picked {
		if r.MatchedOn != "" && r.MatchedOn != r.Description {
			out = append(out, fmt.Sprintf("Strong match on %s (%s)", r.Description, r.MatchedOn))
		} else {
			out = append(out, fmt.Sprintf("Strong match on %s", r.Description))
		}
	}
	return out
}

// gapResults picks weakly matched must/should requirements plus absent
// nice-to-haves, ordered by category priority then weight.
func (e *Engine) gapResults(results []types.RequirementResult) []types.RequirementResult {
	picked := make([]types.RequirementResult, 0, len(results))
	for _, r := range results {
		switch r.Category {
		case types.CategoryNice:
			if r.MatchDegree == 0 {
				picked = append(picked, r)
			}
		default:
			if r.MatchDegree < e.cfg.GapCeiling {
				picked = append(picked, r)
			}
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		pi, pj := categoryRank(picked[i].Category), categoryRank(picked[j].Category)
		if pi != pj {
			return pi < pj
		}
		return picked[i].Weight > picked[j].Weight
	})
	return picked
}

// gaps formats the gap list, labeled so a nice-to-have miss is never
// mistaken for a hard gap.
func (e *Engine) gaps(results []types.RequirementResult) []string {
	picked := e.gapResults(results)
	if len(picked) > e.cfg.MaxGaps {
		picked = picked[:e.cfg.MaxGaps]
	}

	out := make([]string, 0, len(picked))
	for _, r := range picked {
		switch r.Category {
		case types.CategoryMust:
			out = append(out, fmt.Sprintf("Missing must-have: %s", r.Description))
		case types.CategoryShould:
			out = append(out, fmt.Sprintf("Weak on should-have: %s", r.Description))
		default:
			out = append(out, fmt.Sprintf("Nice-to-have not present: %s", r.Description))
		}
	}
	return out
}

// recommendations turns the top gaps into templated guidance.
func (e *Engine) recommendations(results []types.RequirementResult) []string {
	picked := e.gapResults(results)
	if len(picked) > e.cfg.MaxRecommendations {
		picked = picked[:e.cfg.MaxRecommendations]
	}
	out := make([]string, 0, len(picked))
	for _, r := range picked {
		out = append(out, fmt.Sprintf("Consider highlighting experience with %s", r.Description))
	}
	return out
}

func educationNames(candidate *types.Candidate) []string {
	names := make([]string, 0, len(candidate.Education)*2)
	for _, edu := range candidate.Education {
		if edu.Degree != "" {
			names = append(names, edu.Degree)
		}
		if edu.Field != "" {
			names = append(names, edu.Field)
		}
	}
	return names
}

func sortByWeight(results []types.RequirementResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Weight > results[j].Weight
	})
}

func categoryRank(c types.RequirementCategory) int {
	switch c {
	case types.CategoryMust:
		return 0
	case types.CategoryShould:
		return 1
	default:
		return 2
	}
}

func round1(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return float64(int(v*10+0.5)) / 10
}
