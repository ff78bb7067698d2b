package judge

import (
	"context"
	"fmt"
)

// Executor runs submitted source code against one ordered list of input
// tokens and returns the program's textual output. Implementations must
// be deterministic from the caller's perspective; the sandbox owns its
// own resource limits and timeouts.
type Executor interface {
	Execute(ctx context.Context, code string, inputs []string) (string, error)
}

// ExecutionError signals that the sandbox could not produce output for a
// case (compile error, runtime crash, timeout). The case runner scores
// such cases as incorrect instead of aborting the batch.
type ExecutionError struct {
	Reason string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed: %s", e.Reason)
}

// FailureOutput is the display output recorded for a case whose execution
// failed. The marker prefix guarantees it never matches an expected output.
func FailureOutput(e *ExecutionError) string {
	return fmt.Sprintf("[erro de execução] %s", e.Reason)
}
