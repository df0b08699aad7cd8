package calendar

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DateLayout is the normalized yyyy-MM-dd form used for column keys and upstream queries.
const DateLayout = "2006-01-02"

var ErrInvalidViewMode = errors.New("view mode must be one of: day, week, month, all")

// ViewMode selects how much calendar time the grid shows at once.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
	ViewAll   ViewMode = "all"
)

func ViewModes() []ViewMode {
	return []ViewMode{ViewDay, ViewWeek, ViewMonth, ViewAll}
}

func ParseViewMode(s string) (ViewMode, error) {
	switch mode := ViewMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ViewDay, ViewWeek, ViewMonth, ViewAll:
		return mode, nil
	}
	return "", ErrInvalidViewMode
}

// DateRange is an inclusive [From, To] pair of calendar dates at midnight.
type DateRange struct {
	From time.Time
	To   time.Time
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: StartOfDay(from), To: StartOfDay(to)}
}

// Contains reports whether the calendar day of t lies inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := StartOfDay(t.In(r.From.Location()))
	return !d.Before(r.From) && !d.After(r.To)
}

// Days returns the number of calendar days in the range, 0 when To precedes From.
func (r DateRange) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	n := 0
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func (r DateRange) String() string {
	return FormatDate(r.From) + ".." + FormatDate(r.To)
}

// RangeFor maps a view mode to the concrete interval anchored on today.
func RangeFor(mode ViewMode, today time.Time, weekStart time.Weekday) DateRange {
	today = StartOfDay(today)
	n := (&now.Config{WeekStartDay: weekStart, TimeLocation: today.Location()}).With(today)

	switch mode {
	case ViewWeek:
		return NewDateRange(n.BeginningOfWeek(), n.EndOfWeek())
	case ViewMonth:
		return NewDateRange(n.BeginningOfMonth(), n.EndOfMonth())
	case ViewAll:
		return NewDateRange(today.AddDate(0, -12, 0), today)
	default:
		return NewDateRange(today, today)
	}
}

// Workdays expands the range into its weekdays in ascending order.
func Workdays(r DateRange) []time.Time {
	days := make([]time.Time, 0, r.Days())
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}
