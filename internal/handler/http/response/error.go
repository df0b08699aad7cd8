package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		UpstreamError(w, "Upstream attendance service failed")
		return
	}

	switch {
	case errors.Is(err, calendar.ErrInvalidViewMode):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrStatusNotEditable),
		errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrDateNotEditable):
		Conflict(w, "Attendance can only be recorded for past workdays")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidLeaveDelta):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrInsufficientLeaveBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Board errors
	case errors.Is(err, board.ErrInvalidTransition),
		errors.Is(err, board.ErrLoadSuperseded),
		errors.Is(err, board.ErrNoEditSession):
		Conflict(w, err.Error())
	case errors.Is(err, board.ErrBoardNotLoaded):
		Conflict(w, "Board has not been loaded yet")
	case errors.Is(err, board.ErrEmployeeNotOnBoard),
		errors.Is(err, board.ErrDateNotOnBoard):
		NotFound(w, err.Error())
	case errors.Is(err, board.ErrCellNotEditable):
		Conflict(w, "Cell cannot be edited")

	case errors.Is(err, context.Canceled):
		InternalServerError(w, "Request cancelled")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
