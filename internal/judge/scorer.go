package judge

import (
	"errors"

	"github.com/questio/questio-backend/internal/model"
)

// ErrEmptyCaseSet is returned when scoring is attempted over zero results.
var ErrEmptyCaseSet = errors.New("cannot score an empty case set")

// Score returns the percentage of results whose output exactly matches
// the expected output, truncated to an integer (2 of 3 correct is 66).
// Comparison is strict byte equality with no whitespace normalization:
// expected outputs must be authored in exactly the format the judge
// expects.
func Score(results []model.ComparisonResult) (int, error) {
	if len(results) == 0 {
		return 0, ErrEmptyCaseSet
	}

	matches := 0
	for _, r := range results {
		if r.Output == r.ExpectedOutput {
			matches++
		}
	}

	return matches * 100 / len(results), nil
}
