package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/attendance-board-go/internal/repository/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream is an in-memory attendance API.
type fakeUpstream struct {
	mu      sync.Mutex
	records map[int64][]upstream.Attendance
	writes  []string
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/employees":
		_, _ = io.WriteString(w, `[{"id":1,"name":"Ani","remainingLeaveDays":3,"penaltyPoints":0},{"id":2,"name":"Budi","remainingLeaveDays":1,"penaltyPoints":4}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/attendance":
		id, _ := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
		rows := f.records[id]
		if rows == nil {
			rows = []upstream.Attendance{}
		}
		_ = json.NewEncoder(w).Encode(rows)
	case r.Method == http.MethodPut && r.URL.Path == "/attendance":
		body, _ := io.ReadAll(r.Body)
		f.writes = append(f.writes, string(body))
		var rec upstream.Attendance
		if err := json.Unmarshal(body, &rec); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.records[rec.UserID] = append(f.records[rec.UserID], rec)
		_, _ = io.WriteString(w, `{"ok":true}`)
	default:
		http.NotFound(w, r)
	}
}

func TestRemoteBoard_CommitThroughProxy(t *testing.T) {
	fake := &fakeUpstream{records: map[int64][]upstream.Attendance{
		2: {{UserID: 2, AttendanceDate: "2024-03-04T00:00:00.000Z", Status: "Present", Time: "08:02"}},
	}}
	upstreamSrv := httptest.NewServer(fake)
	defer upstreamSrv.Close()

	var router http.Handler
	app := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.ServeHTTP(w, r)
	}))
	defer app.Close()

	// Reads go straight upstream; writes go through this server's proxy route.
	boardClient := upstream.NewClient(config.UpstreamConfig{
		BaseURL:  upstreamSrv.URL,
		WriteURL: app.URL + "/api/attendance",
		Timeout:  5 * time.Second,
	})
	proxyClient := upstream.NewClient(config.UpstreamConfig{BaseURL: upstreamSrv.URL, Timeout: 5 * time.Second})

	attSvc, empSvc, boardSvc := newServices(
		remote.NewAttendanceRepository(boardClient, time.UTC),
		remote.NewEmployeeRepository(boardClient),
	)
	router = NewRouter(testAppConfig, slog.LevelError,
		NewBoardHandler(boardSvc, sse.NewHub(1)),
		NewEmployeeHandler(empSvc, attSvc),
		NewProxyHandler(proxyClient),
	)

	resp, env := doJSON(t, http.MethodGet, app.URL+"/api/v1/board?mode=week", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeState(t, env)
	require.Len(t, state.Grid.Rows, 2)

	row, _, ok := state.Grid.Row(2)
	require.True(t, ok)
	monday, _ := row.Cell("2024-03-04")
	assert.Equal(t, "PRESENT 08:02", monday.Label)
	tuesday, _ := row.Cell("2024-03-05")
	assert.Equal(t, attendance.StatusNotYet, tuesday.Status)
	assert.True(t, tuesday.Editable)

	resp, env = doJSON(t, http.MethodPost, app.URL+"/api/v1/board/edits", map[string]interface{}{"employee_id": 2, "date": "2024-03-05"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, attendance.StatusPresent, decodeState(t, env).Session.Status)

	resp, _ = doJSON(t, http.MethodPatch, app.URL+"/api/v1/board/edits", map[string]interface{}{"status": "OFFICIAL_LEAVE", "time": "08:00", "comment": "medical"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodPost, app.URL+"/api/v1/board/edits/commit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state = decodeState(t, env)
	assert.Equal(t, board.PhaseLoaded, state.Phase)

	fake.mu.Lock()
	writes := append([]string(nil), fake.writes...)
	fake.mu.Unlock()
	require.Len(t, writes, 1)
	assert.Equal(t, `{"userId":2,"attendanceDate":"2024-03-05","status":"OFFICIAL_LEAVE","comment":"medical","time":""}`, writes[0])

	row, _, ok = state.Grid.Row(2)
	require.True(t, ok)
	tuesday, ok = row.Cell("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusOfficialLeave, tuesday.Status)
	assert.Equal(t, "OFFICIAL_LEAVE (medical)", tuesday.Label)
}

func TestRemoteBoard_CommitFailureKeepsDraft(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/employees":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":1,"name":"Ani","remainingLeaveDays":3,"penaltyPoints":0}]`)
		case r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[]`)
		default:
			http.Error(w, "validation failed", http.StatusUnprocessableEntity)
		}
	}))
	defer upstreamSrv.Close()

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: upstreamSrv.URL, Timeout: 5 * time.Second})
	attSvc, empSvc, boardSvc := newServices(remote.NewAttendanceRepository(client, time.UTC), remote.NewEmployeeRepository(client))
	app := httptest.NewServer(NewRouter(testAppConfig, slog.LevelError,
		NewBoardHandler(boardSvc, sse.NewHub(1)),
		NewEmployeeHandler(empSvc, attSvc),
		NewProxyHandler(client),
	))
	defer app.Close()

	resp, _ := doJSON(t, http.MethodGet, app.URL+"/api/v1/board?mode=week", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodPost, app.URL+"/api/v1/board/edits", map[string]interface{}{"employee_id": 1, "date": "2024-03-05"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, http.MethodPost, app.URL+"/api/v1/board/edits/commit", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_ERROR", env.Error.Code)

	resp, env = doJSON(t, http.MethodGet, app.URL+"/api/v1/board/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeState(t, env)
	assert.Equal(t, board.PhaseError, state.Phase)
	require.NotNil(t, state.Session)
	assert.Equal(t, int64(1), state.Session.EmployeeID)
}
