package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	Time       string `json:"time,omitempty"`
	Comment    string `json:"comment,omitempty"`
	Label      string `json:"label"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		EmployeeID: r.EmployeeID,
		Date:       r.Key(),
		Status:     r.Status,
		Time:       r.Time,
		Comment:    r.Comment,
		Label:      r.Label(),
	}
}

type ListAttendanceResponse struct {
	EmployeeID int64            `json:"employee_id"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Records    []RecordResponse `json:"records"`
}

type AttendanceFilter struct {
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DateRange converts an already validated filter into a calendar range in loc.
func (f *AttendanceFilter) DateRange(loc *time.Location) (calendar.DateRange, error) {
	from, err := calendar.ParseDate(f.StartDate, loc)
	if err != nil {
		return calendar.DateRange{}, err
	}
	to, err := calendar.ParseDate(f.EndDate, loc)
	if err != nil {
		return calendar.DateRange{}, err
	}
	return calendar.NewDateRange(from, to), nil
}

// UpdateAttendanceRequest is the single-record edit submitted on commit.
type UpdateAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     Status `json:"status" validate:"required"`
	Time       string `json:"time"`
	Comment    string `json:"comment" validate:"max=500"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		tagErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, tagErrs...)
	}

	if r.Status != "" {
		status, err := ParseStatus(string(r.Status))
		switch {
		case err != nil:
			errs = append(errs, validator.ValidationError{Field: "status", Message: err.Error()})
		case !status.Editable():
			errs = append(errs, validator.ValidationError{Field: "status", Message: ErrStatusNotEditable.Error()})
		default:
			r.Status = status
		}
	}

	if r.Status.TakesTime() && r.Time != "" && !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize clears the time unless the status is present/late and the comment
// unless it is official leave.
func (r *UpdateAttendanceRequest) Normalize() {
	if !r.Status.TakesTime() {
		r.Time = ""
	}
	if !r.Status.TakesComment() {
		r.Comment = ""
	}
}

// Record converts a validated request into a domain record.
func (r UpdateAttendanceRequest) Record(loc *time.Location) (Record, error) {
	date, err := calendar.ParseDate(r.Date, loc)
	if err != nil {
		return Record{}, err
	}
	return Record{
		EmployeeID: r.EmployeeID,
		Date:       date,
		Status:     r.Status,
		Time:       r.Time,
		Comment:    r.Comment,
	}.Normalize(), nil
}
