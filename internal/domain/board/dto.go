package board

import (
	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/validator"
)

type RangeResponse struct {
	Mode    string   `json:"mode"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Today   string   `json:"today"`
	Columns []Column `json:"columns"`
}

type OpenEditRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (r *OpenEditRequest) Validate() error {
	return validator.Struct(r)
}

// UpdateDraftRequest changes the open session; nil fields are left alone.
type UpdateDraftRequest struct {
	Status  *string `json:"status,omitempty"`
	Time    *string `json:"time,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

func (r *UpdateDraftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil {
		status, err := attendance.ParseStatus(*r.Status)
		switch {
		case err != nil:
			errs = append(errs, validator.ValidationError{Field: "status", Message: err.Error()})
		case !status.Editable():
			errs = append(errs, validator.ValidationError{Field: "status", Message: attendance.ErrStatusNotEditable.Error()})
		default:
			normalized := string(status)
			r.Status = &normalized
		}
	}

	if r.Time != nil && *r.Time != "" && !validator.IsValidClockTime(*r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM format",
		})
	}

	if r.Comment != nil && len(*r.Comment) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
