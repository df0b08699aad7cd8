package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidStatus     = errors.New("status must be one of: PRESENT, ABSENT, VACATION, LATE, OFFICIAL_LEAVE")
	ErrStatusNotEditable = errors.New("NOT_YET cannot be selected")
	ErrDateNotEditable   = errors.New("attendance can only be recorded for past workdays")
	ErrInvalidDateRange  = errors.New("start_date must not be after end_date")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
