package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateBody = `{"userId":2,"attendanceDate":"2024-03-05","status":"OFFICIAL_LEAVE","comment":"medical","time":""}`

type forwarderFunc func(ctx context.Context, contentType string, body []byte) (upstream.Reply, error)

func (f forwarderFunc) Forward(ctx context.Context, contentType string, body []byte) (upstream.Reply, error) {
	return f(ctx, contentType, body)
}

func TestProxy_RejectsOtherMethods(t *testing.T) {
	called := false
	h := NewProxyHandler(forwarderFunc(func(context.Context, string, []byte) (upstream.Reply, error) {
		called = true
		return upstream.Reply{}, nil
	}))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete} {
		rec := httptest.NewRecorder()
		h.UpdateAttendance(rec, httptest.NewRequest(method, "/api/attendance", strings.NewReader(updateBody)))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "PUT", rec.Header().Get("Allow"), method)
	}
	assert.False(t, called)
}

func TestProxy_ForwardsVerbatimAndRelaysJSON(t *testing.T) {
	var gotBody, gotMethod, gotPath, gotType string
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		gotBody, gotMethod, gotPath, gotType = string(body), r.Method, r.URL.Path, r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = io.WriteString(w, `{"id":17,"status":"OFFICIAL_LEAVE"}`)
	}))
	defer upstreamSrv.Close()

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: upstreamSrv.URL, Timeout: 5 * time.Second})
	h := NewProxyHandler(client)

	req := httptest.NewRequest(http.MethodPut, "/api/attendance", strings.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.UpdateAttendance(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":17,"status":"OFFICIAL_LEAVE"}`, rec.Body.String())

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/attendance", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, updateBody, gotBody)
}

func TestProxy_RelaysText(t *testing.T) {
	h := NewProxyHandler(forwarderFunc(func(context.Context, string, []byte) (upstream.Reply, error) {
		return upstream.Reply{ContentType: "text/plain", Body: []byte("saved")}, nil
	}))

	rec := httptest.NewRecorder()
	h.UpdateAttendance(rec, httptest.NewRequest(http.MethodPut, "/api/attendance", strings.NewReader(updateBody)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "saved", rec.Body.String())
}

func TestProxy_FailuresBecome500(t *testing.T) {
	tests := []struct {
		name  string
		reply upstream.Reply
		err   error
	}{
		{name: "upstream 4xx", err: &upstream.APIError{StatusCode: http.StatusBadRequest, Body: "bad"}},
		{name: "upstream 5xx", err: &upstream.APIError{StatusCode: http.StatusServiceUnavailable, Body: "down"}},
		{name: "transport", err: errors.New("dial tcp: connection refused")},
		{name: "malformed json", reply: upstream.Reply{ContentType: "application/json", Body: []byte("{nope")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProxyHandler(forwarderFunc(func(context.Context, string, []byte) (upstream.Reply, error) {
				return tt.reply, tt.err
			}))

			rec := httptest.NewRecorder()
			h.UpdateAttendance(rec, httptest.NewRequest(http.MethodPut, "/api/attendance", strings.NewReader(updateBody)))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":{"code":"UPSTREAM_ERROR","message":"Failed to update attendance"}}`, rec.Body.String())
		})
	}
}
