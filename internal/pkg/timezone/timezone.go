// Package timezone builds wall-clock instants from calendar dates in an
// explicit IANA zone and converts them for display. The process-local zone is
// never used implicitly: callers always pass a *time.Location, and wall times
// that fall into a DST gap resolve the way the zone database resolves them.
package timezone

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimezone = errors.New("invalid timezone identifier")
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no zone attached. Which instant it denotes
// depends on the zone it is projected into.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// At returns the instant of the given wall-clock time on this date in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// Weekday is the day of week of this calendar date as observed in loc.
func (d Date) Weekday(loc *time.Location) time.Weekday {
	return d.At(0, 0, loc).Weekday()
}

// DayRange returns the half-open [midnight, next midnight) interval of this
// date in loc. Going through the next calendar day keeps the range correct on
// 23- and 25-hour DST transition days.
func (d Date) DayRange(loc *time.Location) (time.Time, time.Time) {
	start := d.At(0, 0, loc)
	end := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, loc)
	return start, end
}

// LoadLocation resolves an IANA zone name. Empty names and "Local" are
// rejected so no caller can fall back to the server's zone by accident.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// Clock formats an instant as a short clock label in loc, e.g. "2:30 PM".
func Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM")
}

// Abbreviation returns the short zone name in effect at t in loc, e.g. "EST".
func Abbreviation(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("MST")
}

// LongDate formats an instant as a full human-readable date in loc,
// e.g. "Monday, January 2, 2006".
func LongDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, January 2, 2006")
}
