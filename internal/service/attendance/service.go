package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	r, err := filter.DateRange(a.loc)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to parse date range: %w", err)
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, filter.EmployeeID, r)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		EmployeeID: filter.EmployeeID,
		StartDate:  calendar.FormatDate(r.From),
		EndDate:    calendar.FormatDate(r.To),
		Records:    responses,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	req.Normalize()

	if err := a.AttendanceRepository.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
	}
}
