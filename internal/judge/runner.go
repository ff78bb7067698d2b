package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/questio/questio-backend/internal/model"
)

// ErrNoCasesAvailable is returned when a grading pass is requested for a
// question that has no test cases.
var ErrNoCasesAvailable = errors.New("no test cases available")

// RenderMode selects the display form of a case's inputs in results.
// Rendering never affects correctness; only outputs are compared.
type RenderMode int

const (
	// RenderSpaceJoined renders inputs as "2 3". Used for inline result
	// previews and for persisted submission results.
	RenderSpaceJoined RenderMode = iota
	// RenderBracketed renders inputs as "[2, 3]". Used by the question
	// page editor and the exam preview.
	RenderBracketed
)

// Options configures one grading pass.
type Options struct {
	Render RenderMode
	// Limit caps how many cases run; 0 runs all. Exam previews use 1 so
	// students only ever see the first case.
	Limit int
}

// RenderInputs formats a case's input tokens for display.
func RenderInputs(mode RenderMode, inputs []string) string {
	if mode == RenderBracketed {
		return fmt.Sprintf("[%s]", strings.Join(inputs, ", "))
	}
	return strings.Join(inputs, " ")
}

// RunCases executes code against cases in order and returns one
// ComparisonResult per executed case, preserving case order. A case whose
// execution fails is recorded with a failure-marker output so it scores
// as incorrect without aborting the remaining cases. The case list is
// treated as a snapshot: it is never re-fetched mid-run.
func RunCases(ctx context.Context, exec Executor, code string, cases []model.ExpectedCase, opts Options) ([]model.ComparisonResult, error) {
	if len(cases) == 0 {
		return nil, ErrNoCasesAvailable
	}

	n := len(cases)
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}

	results := make([]model.ComparisonResult, 0, n)
	for _, cs := range cases[:n] {
		output, err := exec.Execute(ctx, code, cs.Inputs)
		if err != nil {
			var execErr *ExecutionError
			if !errors.As(err, &execErr) {
				return nil, err
			}
			output = FailureOutput(execErr)
		}

		results = append(results, model.ComparisonResult{
			Input:          RenderInputs(opts.Render, cs.Inputs),
			Output:         output,
			ExpectedOutput: cs.Output,
		})
	}

	return results, nil
}
