package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("FEEDMIX_TEST_DB", filepath.Join(t.TempDir(), "feedmix.db"))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: "testdata/test_config.yml", Listen: fmt.Sprintf("127.0.0.1:%d", port)})
	}()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping") //nolint:gosec,noctx // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	t.Run("feed of a new user is empty", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/v1/feed", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-User-ID", "u1")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"items":[],"count":0}`, string(body))
	})

	t.Run("cron fetch with configured secret", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/v1/cron/fetch", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-Cron-Secret", "test-secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"total_sources":0`)
	})

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestEnvFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "default", args: []string{"--dbg"}, want: ".env"},
		{name: "separate value", args: []string{"--env-file", "custom.env"}, want: "custom.env"},
		{name: "inline value", args: []string{"-c", "cfg.yml", "--env-file=prod.env"}, want: "prod.env"},
		{name: "from environment", args: []string{}, env: "env.env", want: "env.env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_FILE", tt.env)
			assert.Equal(t, tt.want, envFile(tt.args))
		})
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("normal mode", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
