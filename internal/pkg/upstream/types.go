package upstream

import (
	"github.com/shopspring/decimal"
)

// Employee is an entry of the upstream employee listing
type Employee struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	RemainingLeaveDays decimal.Decimal `json:"remainingLeaveDays"`
	PenaltyPoints      decimal.Decimal `json:"penaltyPoints"`
}

// Attendance is the upstream record shape, used for both reads and writes.
// Field order is the wire order of the write body.
type Attendance struct {
	UserID         int64  `json:"userId"`
	AttendanceDate string `json:"attendanceDate"`
	Status         string `json:"status"`
	Comment        string `json:"comment"`
	Time           string `json:"time"`
}

type VacationDelta struct {
	Delta float64 `json:"delta"`
}
