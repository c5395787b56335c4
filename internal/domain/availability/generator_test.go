//go:build unit

package availability_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/pkg/timezone"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, weekday int, start, end string) availability.Rule {
	t.Helper()
	s, err := availability.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := availability.ParseTimeOfDay(end)
	require.NoError(t, err)
	rule, err := availability.NewRule(weekday, s, e)
	require.NoError(t, err)
	return rule
}

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := timezone.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

// 2026-06-01 is a Monday; New York observes EDT (UTC-4) in June.
func mondayRequest(t *testing.T) availability.GenerateRequest {
	t.Helper()
	ny := mustZone(t, "America/New_York")
	return availability.GenerateRequest{
		Date:          timezone.Date{Year: 2026, Month: time.June, Day: 1},
		Rules:         availability.RuleSet{mustRule(t, 1, "09:00", "17:00")},
		Duration:      30 * time.Minute,
		OrganizerZone: ny,
		InviteeZone:   ny,
		Now:           time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateSlots(t *testing.T) {
	t.Run("full day on the grid", func(t *testing.T) {
		slots := availability.GenerateSlots(mondayRequest(t))

		// Starts every 15 minutes from 09:00 to 16:30 local.
		require.Len(t, slots, 31)
		assert.Equal(t, time.Date(2026, time.June, 1, 13, 0, 0, 0, time.UTC), slots[0].Start)
		assert.Equal(t, time.Date(2026, time.June, 1, 13, 30, 0, 0, time.UTC), slots[0].End)
		assert.Equal(t, "9:00 AM", slots[0].Display)
		assert.Equal(t, time.Date(2026, time.June, 1, 20, 30, 0, 0, time.UTC), slots[30].Start)
		assert.Equal(t, "4:30 PM", slots[30].Display)
	})

	t.Run("every slot spans exactly the event duration", func(t *testing.T) {
		req := mondayRequest(t)
		for _, s := range availability.GenerateSlots(req) {
			assert.Equal(t, req.Duration, s.End.Sub(s.Start))
		}
	})

	t.Run("booked interval excludes overlapping candidates", func(t *testing.T) {
		req := mondayRequest(t)
		// 10:00-10:30 local is 14:00-14:30 UTC.
		req.Bookings = []availability.BookedInterval{{
			Start: time.Date(2026, time.June, 1, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.June, 1, 14, 30, 0, 0, time.UTC),
		}}

		slots := availability.GenerateSlots(req)
		require.Len(t, slots, 28)

		starts := displaySet(slots)
		assert.NotContains(t, starts, "9:45 AM")
		assert.NotContains(t, starts, "10:00 AM")
		assert.NotContains(t, starts, "10:15 AM")
		assert.Contains(t, starts, "9:30 AM")
		assert.Contains(t, starts, "10:30 AM")
	})

	t.Run("buffer after pads the booking", func(t *testing.T) {
		req := mondayRequest(t)
		req.BufferAfter = 15 * time.Minute
		req.Bookings = []availability.BookedInterval{{
			Start: time.Date(2026, time.June, 1, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.June, 1, 14, 30, 0, 0, time.UTC),
		}}

		slots := availability.GenerateSlots(req)
		require.Len(t, slots, 27)

		starts := displaySet(slots)
		assert.NotContains(t, starts, "10:30 AM")
		assert.Contains(t, starts, "10:45 AM")
	})

	t.Run("slots touching a booking endpoint survive with zero buffers", func(t *testing.T) {
		req := mondayRequest(t)
		req.Bookings = []availability.BookedInterval{{
			Start: time.Date(2026, time.June, 1, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.June, 1, 14, 30, 0, 0, time.UTC),
		}}

		starts := displaySet(availability.GenerateSlots(req))
		// [09:30, 10:00) ends exactly where the booking starts.
		assert.Contains(t, starts, "9:30 AM")
	})

	t.Run("past and present starts are dropped", func(t *testing.T) {
		req := mondayRequest(t)
		// Now is exactly the 11:00 local candidate start.
		req.Now = time.Date(2026, time.June, 1, 15, 0, 0, 0, time.UTC)

		slots := availability.GenerateSlots(req)
		require.NotEmpty(t, slots)
		assert.Equal(t, "11:15 AM", slots[0].Display)
		for _, s := range slots {
			assert.True(t, s.Start.After(req.Now))
		}
	})

	t.Run("display labels follow the invitee zone", func(t *testing.T) {
		req := mondayRequest(t)
		req.InviteeZone = mustZone(t, "Asia/Kolkata")

		slots := availability.GenerateSlots(req)
		require.NotEmpty(t, slots)
		// 09:00 EDT is 13:00 UTC is 18:30 IST.
		assert.Equal(t, "6:30 PM", slots[0].Display)
	})

	t.Run("no rules for the weekday yields nothing", func(t *testing.T) {
		req := mondayRequest(t)
		req.Rules = availability.RuleSet{mustRule(t, 2, "09:00", "17:00")}

		assert.Empty(t, availability.GenerateSlots(req))
	})

	t.Run("trailing remainder shorter than the duration is not offered", func(t *testing.T) {
		req := mondayRequest(t)
		req.Rules = availability.RuleSet{mustRule(t, 1, "09:00", "10:10")}

		slots := availability.GenerateSlots(req)
		// 09:00, 09:15, 09:30 fit; 09:45+30m would pass 10:10.
		require.Len(t, slots, 3)
		assert.Equal(t, "9:30 AM", slots[2].Display)
	})

	t.Run("overlapping rule windows emit duplicates", func(t *testing.T) {
		req := mondayRequest(t)
		req.Rules = availability.RuleSet{
			mustRule(t, 1, "09:30", "10:30"),
			mustRule(t, 1, "09:00", "10:00"),
		}

		slots := availability.GenerateSlots(req)
		require.Len(t, slots, 6)
		// Windows are walked in start order; both emit a 09:30 candidate.
		assert.Equal(t, "9:00 AM", slots[0].Display)
		dupes := 0
		for _, s := range slots {
			if s.Display == "9:30 AM" {
				dupes++
			}
		}
		assert.Equal(t, 2, dupes)
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		req := mondayRequest(t)
		first := availability.GenerateSlots(req)
		second := availability.GenerateSlots(req)
		assert.Empty(t, cmp.Diff(first, second))
	})
}

func displaySet(slots []availability.Slot) []string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Display
	}
	return labels
}
