package employee

import (
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 int64
	Name               string
	RemainingLeaveDays decimal.Decimal
	// Penalty is the accumulated penalty measure (points or currency); it is
	// accrued upstream and only displayed here.
	Penalty decimal.Decimal
}

var (
	dayFull = decimal.NewFromInt(1)
	dayHalf = decimal.NewFromFloat(0.5)
)

// LeaveDeltas are the only adjustments an operator can apply to a leave balance.
func LeaveDeltas() []decimal.Decimal {
	return []decimal.Decimal{dayFull, dayHalf, dayHalf.Neg(), dayFull.Neg()}
}

func IsAllowedDelta(delta decimal.Decimal) bool {
	for _, d := range LeaveDeltas() {
		if d.Equal(delta) {
			return true
		}
	}
	return false
}

// CanApply reports whether the delta control is enabled for the current
// balance: a deduction needs at least its magnitude left.
func (e Employee) CanApply(delta decimal.Decimal) bool {
	if !delta.IsNegative() {
		return true
	}
	return e.RemainingLeaveDays.GreaterThanOrEqual(delta.Abs())
}

// ApplyClamped returns the balance after the delta, floored at zero.
func (e Employee) ApplyClamped(delta decimal.Decimal) decimal.Decimal {
	next := e.RemainingLeaveDays.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
