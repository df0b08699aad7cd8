package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrency = 8

type Option func(*BoardServiceImpl)

func WithLocale(locale calendar.Locale) Option {
	return func(s *BoardServiceImpl) { s.locale = locale }
}

func WithLocation(loc *time.Location) Option {
	return func(s *BoardServiceImpl) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithMaxConcurrency bounds the number of record lookups in flight during a load.
func WithMaxConcurrency(n int) Option {
	return func(s *BoardServiceImpl) {
		if n > 0 {
			s.maxConcurrency = n
		}
	}
}

// WithStateListener registers fn to receive every new view state. fn runs
// with the board locked, so it must not block or call back into the service.
func WithStateListener(fn func(board.ViewState)) Option {
	return func(s *BoardServiceImpl) { s.listener = fn }
}

func WithClock(clock func() time.Time) Option {
	return func(s *BoardServiceImpl) {
		if clock != nil {
			s.clock = clock
		}
	}
}

type BoardServiceImpl struct {
	attendance.AttendanceRepository
	attendanceService attendance.AttendanceService
	employeeService   employee.EmployeeService

	locale         calendar.Locale
	loc            *time.Location
	maxConcurrency int
	clock          func() time.Time
	listener       func(board.ViewState)

	mu         sync.Mutex
	state      board.ViewState
	cancelLoad context.CancelFunc
}

func NewBoardService(
	attendanceRepo attendance.AttendanceRepository,
	attendanceService attendance.AttendanceService,
	employeeService employee.EmployeeService,
	opts ...Option,
) board.BoardService {
	s := &BoardServiceImpl{
		AttendanceRepository: attendanceRepo,
		attendanceService:    attendanceService,
		employeeService:      employeeService,
		locale:               calendar.NewLocale(""),
		loc:                  time.Local,
		maxConcurrency:       defaultMaxConcurrency,
		clock:                time.Now,
		state:                board.ViewState{Phase: board.PhaseIdle},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BoardServiceImpl) today() time.Time {
	return calendar.StartOfDay(s.clock().In(s.loc))
}

func (s *BoardServiceImpl) columns(r calendar.DateRange) ([]time.Time, []board.Column) {
	days := calendar.Workdays(r)
	columns := make([]board.Column, 0, len(days))
	for _, day := range days {
		columns = append(columns, board.Column{
			Date:    calendar.FormatDate(day),
			Label:   s.locale.Label(day),
			Weekday: day.Weekday().String(),
		})
	}
	return days, columns
}

// Range implements board.BoardService.
func (s *BoardServiceImpl) Range(mode calendar.ViewMode) board.RangeResponse {
	today := s.today()
	r := calendar.RangeFor(mode, today, s.locale.WeekStart())
	_, columns := s.columns(r)
	return board.RangeResponse{
		Mode:    string(mode),
		From:    calendar.FormatDate(r.From),
		To:      calendar.FormatDate(r.To),
		Today:   calendar.FormatDate(today),
		Columns: columns,
	}
}

// BuildGrid implements board.BoardService.
func (s *BoardServiceImpl) BuildGrid(ctx context.Context, mode calendar.ViewMode) (board.Grid, error) {
	today := s.today()
	r := calendar.RangeFor(mode, today, s.locale.WeekStart())
	days, columns := s.columns(r)

	employees, err := s.employeeService.ListEmployees(ctx)
	if err != nil {
		return board.Grid{}, fmt.Errorf("failed to load employees: %w", err)
	}

	rows := make([]board.Row, len(employees))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)
	for i, emp := range employees {
		g.Go(func() error {
			records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID, r)
			if err != nil {
				// The row stays on the board with placeholder cells.
				if ctx.Err() == nil {
					slog.Error("failed to load attendance", "error", err, "employee_id", emp.ID, "range", r.String())
				}
				rows[i] = buildRow(emp, nil, false, days, today)
				return nil
			}
			rows[i] = buildRow(emp, records, true, days, today)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return board.Grid{}, err
	}

	return board.Grid{
		Mode:    mode,
		From:    calendar.FormatDate(r.From),
		To:      calendar.FormatDate(r.To),
		Today:   calendar.FormatDate(today),
		Columns: columns,
		Rows:    rows,
	}, nil
}

func buildRow(emp employee.EmployeeResponse, records []attendance.Record, loaded bool, days []time.Time, today time.Time) board.Row {
	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Key()] = rec
	}

	cells := make([]board.Cell, 0, len(days))
	for _, day := range days {
		rec, stored := byDate[calendar.FormatDate(day)]
		if !stored {
			rec = attendance.Placeholder(emp.ID, day)
		}
		cells = append(cells, board.Cell{
			Date:     rec.Key(),
			Status:   rec.Status,
			Time:     rec.Time,
			Comment:  rec.Comment,
			Label:    rec.Label(),
			Stored:   stored,
			Editable: stored || day.Before(today),
		})
	}

	return board.Row{Employee: emp, RecordsLoaded: loaded, Cells: cells}
}

// startLoadLocked cancels any load in flight and opens a new epoch. The
// caller holds s.mu.
func (s *BoardServiceImpl) startLoadLocked(ctx context.Context) (context.Context, uint64) {
	if s.cancelLoad != nil {
		s.cancelLoad()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancelLoad = cancel
	s.state.Epoch++
	s.state.Phase = board.PhaseLoading
	s.state.Session = nil
	s.state.LastError = ""
	s.changedLocked()
	return loadCtx, s.state.Epoch
}

func (s *BoardServiceImpl) changedLocked() {
	if s.listener != nil {
		s.listener(s.snapshotLocked())
	}
}

func (s *BoardServiceImpl) finishLoad(epoch uint64, grid board.Grid, err error) (board.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.state.Epoch {
		return s.snapshotLocked(), board.ErrLoadSuperseded
	}

	s.cancelLoad()
	s.cancelLoad = nil

	if err != nil {
		slog.Error("failed to load board", "error", err, "epoch", epoch)
		s.state.Phase = board.PhaseError
		s.state.LastError = err.Error()
		s.changedLocked()
		return s.snapshotLocked(), err
	}

	s.state.Phase = board.PhaseLoaded
	s.state.Grid = &grid
	s.changedLocked()
	return s.snapshotLocked(), nil
}

// Load implements board.BoardService.
func (s *BoardServiceImpl) Load(ctx context.Context, mode calendar.ViewMode) (board.ViewState, error) {
	s.mu.Lock()
	if s.state.Phase == board.PhaseSaving {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, board.ErrInvalidTransition
	}
	loadCtx, epoch := s.startLoadLocked(ctx)
	s.mu.Unlock()

	grid, err := s.BuildGrid(loadCtx, mode)
	return s.finishLoad(epoch, grid, err)
}

// State implements board.BoardService.
func (s *BoardServiceImpl) State() board.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *BoardServiceImpl) snapshotLocked() board.ViewState {
	state := s.state
	if s.state.Session != nil {
		session := *s.state.Session
		state.Session = &session
	}
	return state
}

// OpenEdit implements board.BoardService.
func (s *BoardServiceImpl) OpenEdit(ctx context.Context, req board.OpenEditRequest) (board.ViewState, error) {
	if err := req.Validate(); err != nil {
		return board.ViewState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.Phase {
	case board.PhaseLoaded, board.PhaseEditing, board.PhaseError:
	default:
		return s.snapshotLocked(), board.ErrInvalidTransition
	}
	if s.state.Grid == nil {
		return s.snapshotLocked(), board.ErrBoardNotLoaded
	}

	row, _, ok := s.state.Grid.Row(req.EmployeeID)
	if !ok {
		return s.snapshotLocked(), board.ErrEmployeeNotOnBoard
	}
	cell, ok := row.Cell(req.Date)
	if !ok {
		return s.snapshotLocked(), board.ErrDateNotOnBoard
	}
	if !cell.Editable {
		return s.snapshotLocked(), board.ErrCellNotEditable
	}

	status := cell.Status
	if !status.Editable() {
		status = attendance.StatusPresent
	}

	s.state.Session = &board.EditSession{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       cell.Date,
		Status:     status,
		Time:       cell.Time,
		Comment:    cell.Comment,
		OpenedAt:   s.clock(),
	}
	s.state.Phase = board.PhaseEditing
	s.state.LastError = ""
	s.changedLocked()
	return s.snapshotLocked(), nil
}

// UpdateDraft implements board.BoardService.
func (s *BoardServiceImpl) UpdateDraft(ctx context.Context, req board.UpdateDraftRequest) (board.ViewState, error) {
	if err := req.Validate(); err != nil {
		return board.ViewState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(); err != nil {
		return s.snapshotLocked(), err
	}

	session := s.state.Session
	if req.Status != nil {
		session.Status = attendance.Status(*req.Status)
	}
	if req.Time != nil {
		session.Time = *req.Time
	}
	if req.Comment != nil {
		session.Comment = *req.Comment
	}
	s.state.Phase = board.PhaseEditing
	s.changedLocked()
	return s.snapshotLocked(), nil
}

// requireSessionLocked checks the board is editing, or holds a draft after a
// failed commit.
func (s *BoardServiceImpl) requireSessionLocked() error {
	switch s.state.Phase {
	case board.PhaseEditing, board.PhaseError:
	default:
		return board.ErrInvalidTransition
	}
	if s.state.Session == nil {
		return board.ErrNoEditSession
	}
	return nil
}

// CommitEdit implements board.BoardService.
func (s *BoardServiceImpl) CommitEdit(ctx context.Context) (board.ViewState, error) {
	s.mu.Lock()
	if err := s.requireSessionLocked(); err != nil {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, err
	}
	req := s.state.Session.Request()
	mode := calendar.ViewWeek
	if s.state.Grid != nil {
		mode = s.state.Grid.Mode
	}
	s.state.Phase = board.PhaseSaving
	s.state.LastError = ""
	s.changedLocked()
	s.mu.Unlock()

	if err := s.attendanceService.UpdateAttendance(ctx, req); err != nil {
		slog.Error("failed to commit attendance edit", "error", err, "employee_id", req.EmployeeID, "date", req.Date)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Phase = board.PhaseError
		s.state.LastError = err.Error()
		s.changedLocked()
		return s.snapshotLocked(), err
	}

	s.mu.Lock()
	loadCtx, epoch := s.startLoadLocked(ctx)
	s.mu.Unlock()

	grid, err := s.BuildGrid(loadCtx, mode)
	return s.finishLoad(epoch, grid, err)
}

// CancelEdit implements board.BoardService.
func (s *BoardServiceImpl) CancelEdit(ctx context.Context) (board.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSessionLocked(); err != nil {
		return s.snapshotLocked(), err
	}

	s.state.Session = nil
	s.state.LastError = ""
	s.state.Phase = board.PhaseLoaded
	if s.state.Grid == nil {
		s.state.Phase = board.PhaseIdle
	}
	s.changedLocked()
	return s.snapshotLocked(), nil
}

// AdjustLeaveDays implements board.BoardService.
func (s *BoardServiceImpl) AdjustLeaveDays(ctx context.Context, req employee.AdjustLeaveDaysRequest) (board.ViewState, error) {
	s.mu.Lock()
	if s.state.Grid == nil {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, board.ErrBoardNotLoaded
	}
	if _, _, ok := s.state.Grid.Row(req.EmployeeID); !ok {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, board.ErrEmployeeNotOnBoard
	}
	s.mu.Unlock()

	employees, err := s.employeeService.AdjustLeaveDays(ctx, req)
	if err != nil {
		return s.State(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Grid == nil {
		return s.snapshotLocked(), nil
	}

	byID := make(map[int64]employee.EmployeeResponse, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	grid := *s.state.Grid
	grid.Rows = make([]board.Row, len(s.state.Grid.Rows))
	for i, row := range s.state.Grid.Rows {
		if e, ok := byID[row.Employee.ID]; ok {
			row.Employee = e
		}
		grid.Rows[i] = row
	}
	s.state.Grid = &grid
	s.changedLocked()
	return s.snapshotLocked(), nil
}

// Export implements board.BoardService.
func (s *BoardServiceImpl) Export(ctx context.Context, mode calendar.ViewMode, w io.Writer) error {
	grid, err := s.BuildGrid(ctx, mode)
	if err != nil {
		return err
	}
	if err := WriteWorkbook(grid, w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
