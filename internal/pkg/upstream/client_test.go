package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second, MaxConcurrency: 1})
}

func TestClient_ListEmployees(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/employees", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"name":"Andi","remainingLeaveDays":12.5,"penaltyPoints":"3"}]`)
	})

	employees, err := c.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, int64(1), employees[0].ID)
	assert.Equal(t, "12.5", employees[0].RemainingLeaveDays.String())
	assert.Equal(t, "3", employees[0].PenaltyPoints.String())
}

func TestClient_ListAttendance_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attendance", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("userId"))
		assert.Equal(t, "2024-03-04", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-03-10", r.URL.Query().Get("to"))
		_, _ = io.WriteString(w, `[{"userId":2,"attendanceDate":"2024-03-05","status":"LATE","time":"08:20","comment":null}]`)
	})

	records, err := c.ListAttendance(context.Background(), 2, "2024-03-04", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LATE", records[0].Status)
	assert.Equal(t, "08:20", records[0].Time)
	assert.Empty(t, records[0].Comment)
}

func TestClient_UpdateAttendance_WireBody(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	reply, err := c.UpdateAttendance(context.Background(), Attendance{
		UserID: 2, AttendanceDate: "2024-03-05", Status: "OFFICIAL_LEAVE", Comment: "medical",
	})
	require.NoError(t, err)
	assert.True(t, reply.IsJSON())
	assert.Equal(t, `{"userId":2,"attendanceDate":"2024-03-05","status":"OFFICIAL_LEAVE","comment":"medical","time":""}`, got)
}

func TestClient_NonSuccessIsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	})

	_, err := c.Forward(context.Background(), "", []byte(`{}`))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "nope", apiErr.Body)
}

func TestClient_AdjustVacationDays(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/employees/7/vacation-days", r.URL.Path)
		var body VacationDelta
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, -0.5, body.Delta)
		_, _ = io.WriteString(w, "ok")
	})

	require.NoError(t, c.AdjustVacationDays(context.Background(), 7, -0.5))
}

func TestReply_IsJSON(t *testing.T) {
	assert.True(t, Reply{ContentType: "application/json; charset=utf-8"}.IsJSON())
	assert.True(t, Reply{ContentType: "application/problem+json"}.IsJSON())
	assert.False(t, Reply{ContentType: "text/plain"}.IsJSON())
	assert.False(t, Reply{}.IsJSON())
}
