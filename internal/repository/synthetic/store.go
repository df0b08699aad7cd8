package synthetic

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

type recordKey struct {
	employeeID int64
	date       string
}

// Store is the in-memory state of the synthetic backend: the roster and the
// edits laid over the generated pattern. Nothing survives a restart.
type Store struct {
	mu        sync.RWMutex
	order     []int64
	employees map[int64]employee.Employee
	overlay   map[recordKey]attendance.Record
	clock     func() time.Time
	loc       *time.Location
}

func NewStore(roster []employee.Employee, clock func() time.Time, loc *time.Location) *Store {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}

	s := &Store{
		employees: make(map[int64]employee.Employee, len(roster)),
		overlay:   make(map[recordKey]attendance.Record),
		clock:     clock,
		loc:       loc,
	}
	for _, e := range roster {
		if _, exists := s.employees[e.ID]; !exists {
			s.order = append(s.order, e.ID)
		}
		s.employees[e.ID] = e
	}
	return s
}

func (s *Store) today() time.Time {
	return calendar.StartOfDay(s.clock().In(s.loc))
}
