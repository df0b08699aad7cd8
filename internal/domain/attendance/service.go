package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance records
type AttendanceService interface {
	// ListAttendance returns an employee's records for an inclusive date range
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateAttendance validates, strips fields the status does not carry and stores the record
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) error
}
