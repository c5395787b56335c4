package availability

import (
	"time"

	"slotbook/internal/pkg/timezone"
)

// GridStep is the candidate-slot granularity. The cursor always advances by
// this step regardless of event duration, so a 30-minute event still offers
// 09:00, 09:15, 09:30, ... starts.
const GridStep = 15 * time.Minute

// BookedInterval is an existing confirmed booking's [start, end) in UTC.
type BookedInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is a bookable candidate window. Start/End are UTC instants; Display is
// the start time rendered as a clock label in the invitee's zone.
type Slot struct {
	Start   time.Time
	End     time.Time
	Display string
}

// GenerateRequest carries everything slot generation depends on. Now is an
// input rather than read from the system clock so the "no past slots" filter
// is deterministic under test.
type GenerateRequest struct {
	Date          timezone.Date
	Rules         RuleSet
	Duration      time.Duration
	Bookings      []BookedInterval
	BufferBefore  time.Duration
	BufferAfter   time.Duration
	OrganizerZone *time.Location
	InviteeZone   *time.Location
	Now           time.Time
}

// GenerateSlots expands the availability rules matching Date's weekday (as
// observed in the organizer's zone) into candidate slots, then drops
// candidates that overlap a buffered existing booking or start at or before
// Now. Overlapping rule windows are walked independently, so they can emit
// duplicate candidates.
func GenerateSlots(req GenerateRequest) []Slot {
	weekday := req.Date.Weekday(req.OrganizerZone)

	var slots []Slot
	for _, rule := range req.Rules.ForWeekday(weekday) {
		windowEnd := req.Date.At(rule.End().Hour(), rule.End().Minute(), req.OrganizerZone)

		cursor := req.Date.At(rule.Start().Hour(), rule.Start().Minute(), req.OrganizerZone)
		for !cursor.Add(req.Duration).After(windowEnd) {
			start := cursor.UTC()
			end := cursor.Add(req.Duration).UTC()

			if start.After(req.Now) && !overlapsBooked(start, end, req) {
				slots = append(slots, Slot{
					Start:   start,
					End:     end,
					Display: timezone.Clock(cursor, req.InviteeZone),
				})
			}

			cursor = cursor.Add(GridStep)
		}
	}
	return slots
}

// overlapsBooked applies the half-open overlap test against each booking
// expanded by the buffers. Buffers pad existing bookings only; candidates are
// never padded against each other, so back-to-back slots stay offerable when
// buffers are zero.
func overlapsBooked(start, end time.Time, req GenerateRequest) bool {
	for _, b := range req.Bookings {
		paddedStart := b.Start.Add(-req.BufferBefore)
		paddedEnd := b.End.Add(req.BufferAfter)
		if start.Before(paddedEnd) && end.After(paddedStart) {
			return true
		}
	}
	return false
}
