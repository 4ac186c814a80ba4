// Package scoring compares a candidate's normalized profile against a
// resolved job spec and produces an explainable fit score.
package scoring

// Config holds the tunable constants of the scoring formula. The defaults
// are a reconstruction of the original weighting; keeping them here rather
// than as literals lets a recovered formula be dialed in without touching
// the engine.
type Config struct {
	// Category blend weights. Must sum to 1.0.
	MustWeight   float64
	ShouldWeight float64
	NiceWeight   float64

	// GateThreshold is the match degree below which a must-have
	// requirement counts as missed; any missed must-have caps the overall
	// score at GateCap so strong nice-to-haves cannot hide it.
	GateThreshold float64
	GateCap       float64

	// ExactMatchProficiency is the minimum proficiency for an exact skill
	// match to count as a full 1.0 degree.
	ExactMatchProficiency int

	// StrengthFloor and GapCeiling bound which requirements surface as
	// strengths (degree >= floor) and gaps (degree < ceiling).
	StrengthFloor float64
	GapCeiling    float64

	// List caps for the human-readable sections.
	MaxStrengths       int
	MaxGaps            int
	MaxRecommendations int
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		MustWeight:            0.5,
		ShouldWeight:          0.3,
		NiceWeight:            0.2,
		GateThreshold:         0.3,
		GateCap:               60,
		ExactMatchProficiency: 6,
		StrengthFloor:         0.8,
		GapCeiling:            0.5,
		MaxStrengths:          5,
		MaxGaps:               5,
		MaxRecommendations:    3,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	sum := c.MustWeight + c.ShouldWeight + c.NiceWeight
	if sum < 0.999 || sum > 1.001 {
		return errConfigWeights(sum)
	}
	if c.GateThreshold < 0 || c.GateThreshold > 1 {
		return errConfigRange("gate threshold", c.GateThreshold)
	}
	if c.GateCap < 0 || c.GateCap > 100 {
		return errConfigRange("gate cap", c.GateCap)
	}
	return nil
}
