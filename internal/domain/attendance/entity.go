package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent       Status = "PRESENT"
	StatusAbsent        Status = "ABSENT"
	StatusVacation      Status = "VACATION"
	StatusLate          Status = "LATE"
	StatusOfficialLeave Status = "OFFICIAL_LEAVE"

	// StatusNotYet is the placeholder for a date without a stored record.
	// It is never persisted and never selectable in the editor.
	StatusNotYet Status = "NOT_YET"
)

// EditableStatuses lists the statuses an operator can pick.
func EditableStatuses() []Status {
	return []Status{StatusPresent, StatusAbsent, StatusVacation, StatusLate, StatusOfficialLeave}
}

// ParseStatus normalizes the spellings seen on the wire ("Present",
// "official-leave", "Official Leave", "OFFICIAL_LEAVE") to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch status := Status(normalized); status {
	case StatusPresent, StatusAbsent, StatusVacation, StatusLate, StatusOfficialLeave, StatusNotYet:
		return status, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) Editable() bool {
	return s != StatusNotYet && s != ""
}

// TakesTime reports whether a check-in time is meaningful for the status.
func (s Status) TakesTime() bool {
	return s == StatusPresent || s == StatusLate
}

// TakesComment reports whether a free-text comment is meaningful for the status.
func (s Status) TakesComment() bool {
	return s == StatusOfficialLeave
}

// Record is the attendance of one employee on one calendar date.
type Record struct {
	EmployeeID int64
	Date       time.Time
	Status     Status
	Time       string // HH:MM, present/late only
	Comment    string // official leave only
}

// Key is the normalized date used to match a record against a grid column.
func (r Record) Key() string {
	return calendar.FormatDate(r.Date)
}

// Normalize drops the time and comment fields the status does not carry.
func (r Record) Normalize() Record {
	if !r.Status.TakesTime() {
		r.Time = ""
	}
	if !r.Status.TakesComment() {
		r.Comment = ""
	}
	return r
}

// Label renders the record the way a grid cell shows it, e.g.
// "LATE 08:17" or "OFFICIAL_LEAVE (medical)".
func (r Record) Label() string {
	label := string(r.Status)
	if r.Status.TakesTime() && r.Time != "" {
		label += " " + r.Time
	}
	if r.Status.TakesComment() && r.Comment != "" {
		label += " (" + r.Comment + ")"
	}
	return label
}

// Placeholder builds the not-yet record shown for a date without data.
func Placeholder(employeeID int64, date time.Time) Record {
	return Record{EmployeeID: employeeID, Date: date, Status: StatusNotYet}
}
