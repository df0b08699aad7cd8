package synthetic

import (
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/attendance"
)

type patternEntry struct {
	status  attendance.Status
	time    string
	comment string
}

// patterns are the cyclic attendance habits handed out by employee id.
var patterns = [][]patternEntry{
	{
		{attendance.StatusPresent, "07:55", ""},
		{attendance.StatusPresent, "08:00", ""},
		{attendance.StatusPresent, "07:58", ""},
		{attendance.StatusLate, "08:20", ""},
		{attendance.StatusPresent, "07:50", ""},
	},
	{
		{attendance.StatusPresent, "08:02", ""},
		{attendance.StatusLate, "08:35", ""},
		{attendance.StatusPresent, "07:59", ""},
		{attendance.StatusAbsent, "", ""},
		{attendance.StatusPresent, "08:00", ""},
		{attendance.StatusVacation, "", ""},
	},
	{
		{attendance.StatusPresent, "07:45", ""},
		{attendance.StatusPresent, "07:48", ""},
		{attendance.StatusOfficialLeave, "", "client visit"},
		{attendance.StatusPresent, "07:52", ""},
		{attendance.StatusLate, "08:10", ""},
	},
	{
		{attendance.StatusVacation, "", ""},
		{attendance.StatusVacation, "", ""},
		{attendance.StatusPresent, "08:05", ""},
		{attendance.StatusPresent, "07:57", ""},
		{attendance.StatusAbsent, "", ""},
		{attendance.StatusPresent, "08:01", ""},
		{attendance.StatusLate, "08:42", ""},
	},
}

// Generate is the synthetic record of an employee on the index-th workday of
// the visible range. Any date on or after today is NOT_YET.
func Generate(employeeID int64, index int, date, today time.Time) attendance.Record {
	if !date.Before(today) {
		return attendance.Placeholder(employeeID, date)
	}

	pattern := patterns[mod(employeeID, int64(len(patterns)))]
	entry := pattern[mod(int64(index), int64(len(pattern)))]

	return attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     entry.status,
		Time:       entry.time,
		Comment:    entry.comment,
	}
}

func mod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
