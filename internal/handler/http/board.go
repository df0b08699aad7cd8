package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/sse"
)

const sseKeepalive = 30 * time.Second

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BoardHandler interface {
	Load(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	OpenEdit(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	CommitEdit(w http.ResponseWriter, r *http.Request)
	CancelEdit(w http.ResponseWriter, r *http.Request)
	AdjustLeaveDays(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type boardHandlerImpl struct {
	boardService board.BoardService
	hub          *sse.Hub
}

func NewBoardHandler(boardService board.BoardService, hub *sse.Hub) BoardHandler {
	return &boardHandlerImpl{
		boardService: boardService,
		hub:          hub,
	}
}

// viewMode reads ?mode=, defaulting to the week view.
func viewMode(r *http.Request) (calendar.ViewMode, error) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		return calendar.ViewWeek, nil
	}
	return calendar.ParseViewMode(mode)
}

// Load implements BoardHandler
func (h *boardHandlerImpl) Load(w http.ResponseWriter, r *http.Request) {
	mode, err := viewMode(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	state, err := h.boardService.Load(r.Context(), mode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// State implements BoardHandler
func (h *boardHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.boardService.State())
}

// Range implements BoardHandler
func (h *boardHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	mode, err := viewMode(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.boardService.Range(mode))
}

// Export implements BoardHandler
func (h *boardHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	mode, err := viewMode(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.boardService.Export(r.Context(), mode, &buf); err != nil {
		slog.Error("Failed to export board", "error", err, "mode", mode)
		response.HandleError(w, err)
		return
	}

	rng := h.boardService.Range(mode)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=attendance_%s_%s.xlsx", rng.From, rng.To))
	response.Raw(w, http.StatusOK, xlsxContentType, buf.Bytes())
}

// OpenEdit implements BoardHandler
func (h *boardHandlerImpl) OpenEdit(w http.ResponseWriter, r *http.Request) {
	var req board.OpenEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.boardService.OpenEdit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// UpdateDraft implements BoardHandler
func (h *boardHandlerImpl) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req board.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.boardService.UpdateDraft(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// CommitEdit implements BoardHandler
func (h *boardHandlerImpl) CommitEdit(w http.ResponseWriter, r *http.Request) {
	state, err := h.boardService.CommitEdit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", state)
}

// CancelEdit implements BoardHandler
func (h *boardHandlerImpl) CancelEdit(w http.ResponseWriter, r *http.Request) {
	state, err := h.boardService.CancelEdit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// AdjustLeaveDays implements BoardHandler
func (h *boardHandlerImpl) AdjustLeaveDays(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	var req employee.AdjustLeaveDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = id

	state, err := h.boardService.AdjustLeaveDays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance updated", state)
}

// Events streams every view state change as a server-sent event, starting
// with the current state.
func (h *boardHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(board.EventTopic)
	defer cleanup()

	if err := writeEvent(w, board.StateEvent, h.boardService.State()); err != nil {
		slog.Error("Failed to encode board state", "error", err)
		return
	}
	flusher.Flush()

	keepalive := time.NewTicker(sseKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, event.Event, event.Data); err != nil {
				slog.Error("Failed to encode board event", "error", err)
				continue
			}
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
	return err
}
