package board

import (
	"context"
	"io"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

// BoardService drives the attendance grid and its edit session.
type BoardService interface {
	// Range computes the interval and workday columns for a view mode without loading data
	Range(mode calendar.ViewMode) RangeResponse

	// BuildGrid assembles a grid for the mode without touching the view state
	BuildGrid(ctx context.Context, mode calendar.ViewMode) (Grid, error)

	// Load replaces the current grid with a freshly loaded one for the mode
	Load(ctx context.Context, mode calendar.ViewMode) (ViewState, error)

	// State returns a snapshot of the current view state
	State() ViewState

	OpenEdit(ctx context.Context, req OpenEditRequest) (ViewState, error)
	UpdateDraft(ctx context.Context, req UpdateDraftRequest) (ViewState, error)

	// CommitEdit submits the open session and reloads the current range
	CommitEdit(ctx context.Context) (ViewState, error)
	CancelEdit(ctx context.Context) (ViewState, error)

	// AdjustLeaveDays applies a leave delta and refreshes the employee columns of the grid
	AdjustLeaveDays(ctx context.Context, req employee.AdjustLeaveDaysRequest) (ViewState, error)

	// Export writes the grid for the mode as an XLSX workbook
	Export(ctx context.Context, mode calendar.ViewMode, w io.Writer) error
}
