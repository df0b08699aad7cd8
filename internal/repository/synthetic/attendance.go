package synthetic

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, r calendar.DateRange) ([]attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	if _, ok := a.store.employees[employeeID]; !ok {
		return nil, employee.ErrEmployeeNotFound
	}

	today := a.store.today()
	days := calendar.Workdays(r)
	records := make([]attendance.Record, 0, len(days))
	for i, day := range days {
		rec := Generate(employeeID, i, day, today)
		if rec.Status == attendance.StatusNotYet {
			continue
		}
		if edited, ok := a.store.overlay[recordKey{employeeID, rec.Key()}]; ok {
			rec = edited
		}
		records = append(records, rec)
	}
	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec, err := req.Record(a.store.loc)
	if err != nil {
		return fmt.Errorf("failed to parse attendance date: %w", err)
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	if _, ok := a.store.employees[req.EmployeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	if !rec.Date.Before(a.store.today()) || calendar.IsWeekend(rec.Date) {
		return attendance.ErrDateNotEditable
	}

	a.store.overlay[recordKey{rec.EmployeeID, rec.Key()}] = rec
	return nil
}
