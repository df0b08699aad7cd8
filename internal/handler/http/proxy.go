package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-board-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
)

const maxProxyBodyBytes = 1 << 20

// AttendanceForwarder relays a raw attendance write to the upstream.
type AttendanceForwarder interface {
	Forward(ctx context.Context, contentType string, body []byte) (upstream.Reply, error)
}

type ProxyHandler interface {
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
}

type proxyHandlerImpl struct {
	forwarder AttendanceForwarder
}

func NewProxyHandler(forwarder AttendanceForwarder) ProxyHandler {
	return &proxyHandlerImpl{
		forwarder: forwarder,
	}
}

// UpdateAttendance implements ProxyHandler. Only PUT is accepted; every
// upstream failure, 4xx or 5xx alike, becomes a 500.
func (h *proxyHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		response.MethodNotAllowed(w, http.MethodPut)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProxyBodyBytes))
	if err != nil {
		slog.Error("Failed to read attendance update body", "error", err)
		response.UpstreamError(w, "Failed to read request body")
		return
	}

	reply, err := h.forwarder.Forward(r.Context(), r.Header.Get("Content-Type"), body)
	if err != nil {
		slog.Error("Failed to forward attendance update", "error", err)
		response.UpstreamError(w, "Failed to update attendance")
		return
	}

	if reply.IsJSON() {
		if !json.Valid(reply.Body) {
			slog.Error("Upstream returned malformed JSON", "body", string(reply.Body))
			response.UpstreamError(w, "Failed to update attendance")
			return
		}
		response.Raw(w, http.StatusOK, "application/json", reply.Body)
		return
	}

	response.Raw(w, http.StatusOK, "text/plain; charset=utf-8", reply.Body)
}
