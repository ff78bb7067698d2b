package judge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/questio/questio-backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *SandboxClient {
	cfg := &config.Config{SandboxURL: url, SandboxTimeout: 2 * time.Second}
	return NewSandboxClient(cfg, zerolog.Nop())
}

func TestSandboxClientExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/run", r.URL.Path)
		w.Write([]byte(`{"output":"5"}`))
	}))
	defer srv.Close()

	out, err := newTestClient(srv.URL).Execute(context.Background(), "print(a+b)", []string{"2", "3"})
	require.NoError(t, err)
	require.Equal(t, "5", out)
}

func TestSandboxClientNonOKIsExecutionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "erro de compilação: linha 3", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Execute(context.Background(), "broken", nil)
	require.True(t, IsExecutionError(err))
	require.Contains(t, err.Error(), "erro de compilação")
}

func TestSandboxClientReportedErrorIsExecutionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":"","error":"runtime error"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Execute(context.Background(), "boom", nil)
	require.True(t, IsExecutionError(err))
}

func TestSandboxClientUnreachableIsExecutionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Immediately closed: connection refused.

	_, err := newTestClient(srv.URL).Execute(context.Background(), "code", nil)
	require.True(t, IsExecutionError(err))
}
