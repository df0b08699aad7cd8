package board

import (
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

// Phase is the lifecycle step of the board view.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseEditing Phase = "editing"
	PhaseSaving  Phase = "saving"
	PhaseError   Phase = "error"
)

type Column struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Weekday string `json:"weekday"`
}

type Cell struct {
	Date     string            `json:"date"`
	Status   attendance.Status `json:"status"`
	Time     string            `json:"time,omitempty"`
	Comment  string            `json:"comment,omitempty"`
	Label    string            `json:"label"`
	Stored   bool              `json:"stored"`
	Editable bool              `json:"editable"`
}

type Row struct {
	Employee employee.EmployeeResponse `json:"employee"`
	// RecordsLoaded is false when the employee's record lookup failed; every
	// cell of the row is then a placeholder.
	RecordsLoaded bool   `json:"records_loaded"`
	Cells         []Cell `json:"cells"`
}

// Cell finds the cell for a yyyy-MM-dd date.
func (r Row) Cell(date string) (Cell, bool) {
	for _, c := range r.Cells {
		if c.Date == date {
			return c, true
		}
	}
	return Cell{}, false
}

type Grid struct {
	Mode    calendar.ViewMode `json:"mode"`
	From    string            `json:"from"`
	To      string            `json:"to"`
	Today   string            `json:"today"`
	Columns []Column          `json:"columns"`
	Rows    []Row             `json:"rows"`
}

// Row finds the row of an employee.
func (g Grid) Row(employeeID int64) (Row, int, bool) {
	for i, r := range g.Rows {
		if r.Employee.ID == employeeID {
			return r, i, true
		}
	}
	return Row{}, -1, false
}

// EditSession is the single in-flight edit of one cell.
type EditSession struct {
	ID         string            `json:"id"`
	EmployeeID int64             `json:"employee_id"`
	Date       string            `json:"date"`
	Status     attendance.Status `json:"status"`
	Time       string            `json:"time"`
	Comment    string            `json:"comment"`
	OpenedAt   time.Time         `json:"opened_at"`
}

// Request builds the update submitted on commit; fields the status does not
// carry are dropped.
func (s EditSession) Request() attendance.UpdateAttendanceRequest {
	req := attendance.UpdateAttendanceRequest{
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		Status:     s.Status,
		Time:       s.Time,
		Comment:    s.Comment,
	}
	req.Normalize()
	return req
}

// ViewState is the whole board as the UI sees it.
type ViewState struct {
	Phase     Phase        `json:"phase"`
	Epoch     uint64       `json:"epoch"`
	Grid      *Grid        `json:"grid,omitempty"`
	Session   *EditSession `json:"session,omitempty"`
	LastError string       `json:"last_error,omitempty"`
}

// Server-sent event names for view state changes.
const (
	EventTopic = "board"
	StateEvent = "board.state"
)
