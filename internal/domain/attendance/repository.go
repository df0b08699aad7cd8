package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

// AttendanceRepository is the capability both backends share: given an
// employee and a range, produce records; given an edit, store it.
type AttendanceRepository interface {
	// ListByEmployee returns the stored records of one employee inside the range.
	// Dates without a record are simply absent from the result.
	ListByEmployee(ctx context.Context, employeeID int64, r calendar.DateRange) ([]Record, error)

	// Update writes a single (employee, date) record.
	Update(ctx context.Context, req UpdateAttendanceRequest) error
}
