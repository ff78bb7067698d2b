package judge

import (
	"context"
	"strings"
	"testing"

	"github.com/questio/questio-backend/internal/model"
	"github.com/stretchr/testify/require"
)

// execFunc adapts a function to the Executor interface.
type execFunc func(ctx context.Context, code string, inputs []string) (string, error)

func (f execFunc) Execute(ctx context.Context, code string, inputs []string) (string, error) {
	return f(ctx, code, inputs)
}

// sumExec behaves like a correct program for "sum two integers" questions:
// "2 3" -> "5".
var sumExec = execFunc(func(_ context.Context, _ string, inputs []string) (string, error) {
	switch strings.Join(inputs, " ") {
	case "2 3":
		return "5", nil
	case "4 4":
		return "8", nil
	default:
		return "?", nil
	}
})

func twoCases() []model.ExpectedCase {
	return []model.ExpectedCase{
		{Inputs: []string{"2", "3"}, Output: "5"},
		{Inputs: []string{"4", "4"}, Output: "8"},
	}
}

func TestRunCasesPreservesOrder(t *testing.T) {
	results, err := RunCases(context.Background(), sumExec, "code", twoCases(), Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, "2 3", results[0].Input)
	require.Equal(t, "5", results[0].Output)
	require.Equal(t, "5", results[0].ExpectedOutput)
	require.Equal(t, "4 4", results[1].Input)
	require.Equal(t, "8", results[1].Output)
}

func TestRunCasesBracketedRendering(t *testing.T) {
	results, err := RunCases(context.Background(), sumExec, "code", twoCases(), Options{Render: RenderBracketed})
	require.NoError(t, err)
	require.Equal(t, "[2, 3]", results[0].Input)
	require.Equal(t, "[4, 4]", results[1].Input)
}

func TestRunCasesLimitRunsFirstCaseOnly(t *testing.T) {
	calls := 0
	exec := execFunc(func(_ context.Context, _ string, inputs []string) (string, error) {
		calls++
		return "out", nil
	})

	cases := []model.ExpectedCase{
		{Inputs: []string{"1"}, Output: "a"},
		{Inputs: []string{"2"}, Output: "b"},
		{Inputs: []string{"3"}, Output: "c"},
	}

	results, err := RunCases(context.Background(), exec, "code", cases, Options{Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1, calls)
	require.Equal(t, "a", results[0].ExpectedOutput)
}

func TestRunCasesEmptyNeverInvokesExecutor(t *testing.T) {
	exec := execFunc(func(_ context.Context, _ string, _ []string) (string, error) {
		t.Fatal("executor must not be invoked for an empty case list")
		return "", nil
	})

	_, err := RunCases(context.Background(), exec, "code", nil, Options{})
	require.ErrorIs(t, err, ErrNoCasesAvailable)

	_, err = RunCases(context.Background(), exec, "code", nil, Options{Limit: 1})
	require.ErrorIs(t, err, ErrNoCasesAvailable)
}

func TestRunCasesExecutionFailureScoresIncorrect(t *testing.T) {
	exec := execFunc(func(_ context.Context, _ string, inputs []string) (string, error) {
		if inputs[0] == "2" {
			return "", &ExecutionError{Reason: "segmentation fault"}
		}
		return "8", nil
	})

	results, err := RunCases(context.Background(), exec, "code", twoCases(), Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// The failed case carries the failure marker and can never match.
	require.NotEqual(t, results[0].ExpectedOutput, results[0].Output)
	require.Contains(t, results[0].Output, "segmentation fault")
	require.Equal(t, "8", results[1].Output)

	score, err := Score(results)
	require.NoError(t, err)
	require.Equal(t, 50, score)
}

func TestRunCasesPropagatesNonExecutionErrors(t *testing.T) {
	exec := execFunc(func(ctx context.Context, _ string, _ []string) (string, error) {
		return "", context.Canceled
	})

	_, err := RunCases(context.Background(), exec, "code", twoCases(), Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderInputs(t *testing.T) {
	require.Equal(t, "2 3", RenderInputs(RenderSpaceJoined, []string{"2", "3"}))
	require.Equal(t, "[2, 3]", RenderInputs(RenderBracketed, []string{"2", "3"}))
	require.Equal(t, "", RenderInputs(RenderSpaceJoined, nil))
	require.Equal(t, "[]", RenderInputs(RenderBracketed, nil))
}
