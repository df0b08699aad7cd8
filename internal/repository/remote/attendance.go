package remote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/upstream"
)

type attendanceRepository struct {
	client *upstream.Client
	loc    *time.Location
}

func NewAttendanceRepository(client *upstream.Client, loc *time.Location) attendance.AttendanceRepository {
	if loc == nil {
		loc = time.Local
	}
	return &attendanceRepository{client: client, loc: loc}
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, r calendar.DateRange) ([]attendance.Record, error) {
	rows, err := a.client.ListAttendance(ctx, employeeID, calendar.FormatDate(r.From), calendar.FormatDate(r.To))
	if err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := a.toRecord(employeeID, row)
		if err != nil {
			slog.Warn("skipping upstream attendance record", "employee_id", employeeID, "date", row.AttendanceDate, "status", row.Status, "error", err)
			continue
		}
		if !r.Contains(rec.Date) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	req.Normalize()
	_, err := a.client.UpdateAttendance(ctx, upstream.Attendance{
		UserID:         req.EmployeeID,
		AttendanceDate: req.Date,
		Status:         string(req.Status),
		Comment:        req.Comment,
		Time:           req.Time,
	})
	if err != nil {
		return fmt.Errorf("failed to submit attendance update: %w", err)
	}
	return nil
}

func (a *attendanceRepository) toRecord(employeeID int64, row upstream.Attendance) (attendance.Record, error) {
	status, err := attendance.ParseStatus(row.Status)
	if err != nil {
		return attendance.Record{}, err
	}

	// Upstream dates may carry a time part ("2024-03-05T00:00:00Z"); only the
	// calendar date is compared against columns.
	raw := row.AttendanceDate
	if len(raw) > len(calendar.DateLayout) {
		raw = raw[:len(calendar.DateLayout)]
	}
	date, err := calendar.ParseDate(raw, a.loc)
	if err != nil {
		return attendance.Record{}, err
	}

	if row.UserID != 0 {
		employeeID = row.UserID
	}

	return attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		Time:       row.Time,
		Comment:    row.Comment,
	}.Normalize(), nil
}
