package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/questio/questio-backend/internal/config"
	"github.com/rs/zerolog"
)

// SandboxClient implements Executor against the external execution
// sandbox over HTTP. The sandbox contract is a single POST /run call that
// feeds the input tokens to the program's stdin and returns its stdout.
type SandboxClient struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewSandboxClient creates a SandboxClient from configuration.
func NewSandboxClient(cfg *config.Config, log zerolog.Logger) *SandboxClient {
	return &SandboxClient{
		baseURL: strings.TrimRight(cfg.SandboxURL, "/"),
		client:  &http.Client{Timeout: cfg.SandboxTimeout},
		log:     log.With().Str("component", "sandbox_client").Logger(),
	}
}

type sandboxRequest struct {
	Code   string   `json:"code"`
	Inputs []string `json:"inputs"`
}

type sandboxResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Execute runs code with the given inputs and returns the program output.
// Timeouts and sandbox-reported failures come back as *ExecutionError.
func (s *SandboxClient) Execute(ctx context.Context, code string, inputs []string) (string, error) {
	payload, err := json.Marshal(sandboxRequest{Code: code, Inputs: inputs})
	if err != nil {
		return "", fmt.Errorf("marshal sandbox request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/run", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build sandbox request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// Propagate caller cancellation; everything else is a sandbox failure.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.log.Warn().Err(err).Msg("Sandbox unreachable")
		return "", &ExecutionError{Reason: "tempo limite de execução excedido"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sandbox response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ExecutionError{Reason: strings.TrimSpace(string(body))}
	}

	var out sandboxResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode sandbox response: %w", err)
	}
	if out.Error != "" {
		return "", &ExecutionError{Reason: out.Error}
	}

	return out.Output, nil
}

var _ Executor = (*SandboxClient)(nil)

// IsExecutionError reports whether err is a sandbox execution failure.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError
	return errors.As(err, &execErr)
}
