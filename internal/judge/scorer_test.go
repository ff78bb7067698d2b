package judge

import (
	"testing"

	"github.com/questio/questio-backend/internal/model"
	"github.com/stretchr/testify/require"
)

func resultsWithMatches(matches, total int) []model.ComparisonResult {
	results := make([]model.ComparisonResult, 0, total)
	for i := 0; i < total; i++ {
		r := model.ComparisonResult{Output: "42", ExpectedOutput: "42"}
		if i >= matches {
			r.Output = "wrong"
		}
		results = append(results, r)
	}
	return results
}

func TestScoreTruncates(t *testing.T) {
	cases := []struct {
		matches, total, want int
	}{
		{2, 3, 66},
		{1, 3, 33},
		{3, 3, 100},
		{0, 3, 0},
		{1, 6, 16},
		{5, 6, 83},
		{1, 1, 100},
	}

	for _, tc := range cases {
		score, err := Score(resultsWithMatches(tc.matches, tc.total))
		require.NoError(t, err)
		require.Equal(t, tc.want, score, "%d of %d", tc.matches, tc.total)
	}
}

func TestScoreEmptyCaseSet(t *testing.T) {
	_, err := Score(nil)
	require.ErrorIs(t, err, ErrEmptyCaseSet)

	_, err = Score([]model.ComparisonResult{})
	require.ErrorIs(t, err, ErrEmptyCaseSet)
}

func TestScoreIsStrictEquality(t *testing.T) {
	// Trailing whitespace is not normalized away.
	score, err := Score([]model.ComparisonResult{
		{Output: "5\n", ExpectedOutput: "5"},
		{Output: "5", ExpectedOutput: "5"},
	})
	require.NoError(t, err)
	require.Equal(t, 50, score)
}
