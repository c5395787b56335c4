package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidWindow    = errors.New("window start must be before window end")
)

// TimeOfDay is a minute-resolution wall-clock time with no date or zone.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds ignored), the two
// shapes the rule table stores.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) < 5 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	t, err := time.Parse("15:04", s[:5])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Rule is one recurring weekly availability window, expressed in the
// organizer's timezone. Windows on the same weekday may overlap; the slot
// generator processes each independently.
type Rule struct {
	weekday time.Weekday
	start   TimeOfDay
	end     TimeOfDay
}

func NewRule(weekday int, start, end TimeOfDay) (Rule, error) {
	if weekday < 0 || weekday > 6 {
		return Rule{}, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return Rule{}, ErrInvalidWindow
	}
	return Rule{weekday: time.Weekday(weekday), start: start, end: end}, nil
}

func (r Rule) Weekday() time.Weekday { return r.weekday }
func (r Rule) Start() TimeOfDay      { return r.start }
func (r Rule) End() TimeOfDay        { return r.end }

type RuleSet []Rule

// ForWeekday selects the rules applying on d, ordered by window start. The
// selection does not merge or deduplicate overlapping windows.
func (rs RuleSet) ForWeekday(d time.Weekday) []Rule {
	var matched []Rule
	for _, r := range rs {
		if r.weekday == d {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].start.Before(matched[j].start)
	})
	return matched
}
