package employee

import (
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LeaveControl struct {
	Delta   decimal.Decimal `json:"delta"`
	Enabled bool            `json:"enabled"`
}

type EmployeeResponse struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	RemainingLeaveDays decimal.Decimal `json:"remaining_leave_days"`
	Penalty            decimal.Decimal `json:"penalty"`
	LeaveControls      []LeaveControl  `json:"leave_controls"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	deltas := LeaveDeltas()
	controls := make([]LeaveControl, 0, len(deltas))
	for _, d := range deltas {
		controls = append(controls, LeaveControl{Delta: d, Enabled: e.CanApply(d)})
	}
	return EmployeeResponse{
		ID:                 e.ID,
		Name:               e.Name,
		RemainingLeaveDays: e.RemainingLeaveDays,
		Penalty:            e.Penalty,
		LeaveControls:      controls,
	}
}

type AdjustLeaveDaysRequest struct {
	EmployeeID int64           `json:"-"`
	Delta      decimal.Decimal `json:"delta"`
}

func (r *AdjustLeaveDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}

	if !IsAllowedDelta(r.Delta) {
		errs = append(errs, validator.ValidationError{
			Field:   "delta",
			Message: ErrInvalidLeaveDelta.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
