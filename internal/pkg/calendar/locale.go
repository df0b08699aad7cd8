package calendar

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// labelLocales lists the locales column labels can be rendered in. The first
// entry is the fallback.
var labelLocales = []struct {
	tag    language.Tag
	locale monday.Locale
}{
	{language.AmericanEnglish, monday.LocaleEnUS},
	{language.BritishEnglish, monday.Locale("en_GB")},
	{language.Indonesian, monday.Locale("id_ID")},
	{language.German, monday.Locale("de_DE")},
	{language.French, monday.Locale("fr_FR")},
	{language.Dutch, monday.Locale("nl_NL")},
	{language.Japanese, monday.Locale("ja_JP")},
}

var labelMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(labelLocales))
	for i, l := range labelLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Regions whose calendars start the week on Sunday.
var sundayRegions = map[string]bool{
	"US": true, "CA": true, "JP": true, "BR": true, "MX": true,
	"PH": true, "IL": true, "KR": true, "TW": true, "ZA": true,
}

// Locale renders column labels and decides the week-start convention.
type Locale struct {
	tag       language.Tag
	label     monday.Locale
	weekStart time.Weekday
}

// NewLocale resolves a BCP 47 tag such as "en-US" or "id-ID". An unparsable or
// unsupported tag falls back to en-US labels; the week start still follows the
// requested region when one is given.
func NewLocale(tag string) Locale {
	requested, err := language.Parse(tag)
	if err != nil {
		requested = language.AmericanEnglish
	}

	_, idx, conf := labelMatcher.Match(requested)
	label := labelLocales[0].locale
	if conf != language.No {
		label = labelLocales[idx].locale
	}

	weekStart := time.Monday
	if region, _ := requested.Region(); sundayRegions[region.String()] {
		weekStart = time.Sunday
	}

	return Locale{tag: requested, label: label, weekStart: weekStart}
}

// WithWeekStart overrides the locale's week-start convention.
func (l Locale) WithWeekStart(wd time.Weekday) Locale {
	l.weekStart = wd
	return l
}

func (l Locale) Tag() string {
	return l.tag.String()
}

func (l Locale) WeekStart() time.Weekday {
	return l.weekStart
}

// Label formats a column header such as "Mon, 04 Mar".
func (l Locale) Label(t time.Time) string {
	return monday.Format(t, "Mon, 02 Jan", l.label)
}

// ParseWeekday accepts English weekday names or their prefixes ("monday", "Sun").
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return time.Sunday, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if len(s) <= len(name) && strings.EqualFold(name[:len(s)], s) {
			return wd, true
		}
	}
	return time.Sunday, false
}
