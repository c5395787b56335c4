//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLists(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	organizerID := uuid.New()
	schedule := &queries.ScheduleView{ID: uuid.New(), OrganizerID: organizerID, Timezone: "Europe/Berlin", IsDefault: true}

	t.Run("upcoming carries the organizer timezone", func(t *testing.T) {
		store := &fakeBookingStore{upcoming: []*queries.BookingListItem{
			{ID: uuid.New(), EventName: "Intro Call", Status: "confirmed"},
		}}
		q := queries.NewBookingQueries(store, &fakeAvailStore{schedule: schedule}, clock.NewMockClock(now))

		view, err := q.ListUpcoming(context.Background(), organizerID)
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", view.OrganizerTimezone)
		require.Len(t, view.Meetings, 1)
		assert.Equal(t, "Intro Call", view.Meetings[0].EventName)
	})

	t.Run("empty list stays a list", func(t *testing.T) {
		q := queries.NewBookingQueries(&fakeBookingStore{}, &fakeAvailStore{schedule: schedule}, clock.NewMockClock(now))

		view, err := q.ListPast(context.Background(), organizerID)
		require.NoError(t, err)
		assert.NotNil(t, view.Meetings)
		assert.Empty(t, view.Meetings)
	})

	t.Run("missing schedule falls back to UTC", func(t *testing.T) {
		avail := &fakeAvailStore{scheduleErr: infra.WrapRepoErr("find schedule", nil, infra.KindNotFound)}
		q := queries.NewBookingQueries(&fakeBookingStore{}, avail, clock.NewMockClock(now))

		view, err := q.ListUpcoming(context.Background(), organizerID)
		require.NoError(t, err)
		assert.Equal(t, "UTC", view.OrganizerTimezone)
	})
}
