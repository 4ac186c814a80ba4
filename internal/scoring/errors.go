package scoring

import (
	"github.com/jonathan/talent-pipeline/internal/errs"
)

func errConfigWeights(sum float64) error {
	return errs.Validation("scoring config: category weights sum to %.3f, want 1.0", sum)
}

func errConfigRange(name string, v float64) error {
	return errs.Validation("scoring config: %s %.2f out of range", name, v)
}
