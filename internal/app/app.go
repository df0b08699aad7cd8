package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/attendance-board-go/internal/repository/remote"
	"github.com/cmlabs-hris/attendance-board-go/internal/repository/synthetic"
	attendanceService "github.com/cmlabs-hris/attendance-board-go/internal/service/attendance"
	boardService "github.com/cmlabs-hris/attendance-board-go/internal/service/board"
	employeeService "github.com/cmlabs-hris/attendance-board-go/internal/service/employee"
)

// App holds the services shared by the HTTP server and the CLI.
type App struct {
	Config            *config.Config
	Location          *time.Location
	Upstream          *upstream.Client
	Hub               *sse.Hub
	AttendanceService attendance.AttendanceService
	EmployeeService   employee.EmployeeService
	BoardService      board.BoardService
}

// New wires the configured backend. clock may be nil.
func New(cfg *config.Config, clock func() time.Time) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}
	if clock == nil {
		clock = time.Now
	}

	// The proxy route always needs a client, even on the synthetic backend.
	client := upstream.NewClient(cfg.Upstream)

	var (
		attendanceRepo attendance.AttendanceRepository
		employeeRepo   employee.EmployeeRepository
	)

	switch cfg.Board.Backend {
	case config.BackendRemote:
		attendanceRepo = remote.NewAttendanceRepository(client, loc)
		employeeRepo = remote.NewEmployeeRepository(client)
	case config.BackendSynthetic:
		roster := synthetic.DefaultRoster()
		if cfg.Synthetic.RosterFile != "" {
			roster, err = synthetic.LoadRoster(cfg.Synthetic.RosterFile)
			if err != nil {
				return nil, err
			}
		}
		store := synthetic.NewStore(roster, clock, loc)
		attendanceRepo = synthetic.NewAttendanceRepository(store)
		employeeRepo = synthetic.NewEmployeeRepository(store)
	default:
		return nil, fmt.Errorf("unsupported board backend %q", cfg.Board.Backend)
	}

	hub := sse.NewHub(16)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, loc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	boardSvc := boardService.NewBoardService(
		attendanceRepo,
		attendanceSvc,
		employeeSvc,
		boardService.WithLocale(cfg.Locale()),
		boardService.WithLocation(loc),
		boardService.WithMaxConcurrency(cfg.Upstream.MaxConcurrency),
		boardService.WithClock(clock),
		boardService.WithStateListener(func(state board.ViewState) {
			hub.Publish(sse.Event{Topic: board.EventTopic, Event: board.StateEvent, Data: state})
		}),
	)

	slog.Info("Board backend ready", "backend", cfg.Board.Backend, "locale", cfg.Board.Locale, "timezone", loc.String())

	return &App{
		Config:            cfg,
		Location:          loc,
		Upstream:          client,
		Hub:               hub,
		AttendanceService: attendanceSvc,
		EmployeeService:   employeeSvc,
		BoardService:      boardSvc,
	}, nil
}
