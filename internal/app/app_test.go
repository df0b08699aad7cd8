package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Board:    config.BoardConfig{Backend: backend, Locale: "en-GB", Timezone: "UTC"},
		Upstream: config.UpstreamConfig{Timeout: time.Second, MaxConcurrency: 2},
	}
}

func TestNew_Synthetic(t *testing.T) {
	a, err := New(testConfig(config.BackendSynthetic), nil)
	require.NoError(t, err)

	employees, err := a.EmployeeService.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 5)
}

func TestNew_SyntheticRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees:\n  - id: 7\n    name: Nadia\n    remaining_leave_days: 4\n"), 0o600))

	cfg := testConfig(config.BackendSynthetic)
	cfg.Synthetic.RosterFile = path
	a, err := New(cfg, nil)
	require.NoError(t, err)

	employees, err := a.EmployeeService.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Nadia", employees[0].Name)

	cfg.Synthetic.RosterFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(cfg, nil)
	assert.Error(t, err)
}

func TestNew_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"name":"Rina","remainingLeaveDays":2,"penaltyPoints":1}]`))
	}))
	defer srv.Close()

	cfg := testConfig(config.BackendRemote)
	cfg.Upstream.BaseURL = srv.URL
	a, err := New(cfg, nil)
	require.NoError(t, err)

	employees, err := a.EmployeeService.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, int64(3), employees[0].ID)
}
