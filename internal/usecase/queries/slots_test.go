//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventTypeStore struct {
	view *queries.EventTypeView
	err  error
}

func (s *fakeEventTypeStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.EventTypeView, error) {
	return s.view, s.err
}

func (s *fakeEventTypeStore) FindActiveBySlug(_ context.Context, _ string) (*queries.EventTypeView, error) {
	return s.view, s.err
}

func (s *fakeEventTypeStore) ListActive(_ context.Context) ([]*queries.EventTypeView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*queries.EventTypeView{s.view}, nil
}

type fakeAvailStore struct {
	schedule    *queries.ScheduleView
	scheduleErr error
	rules       []*queries.RuleView
}

func (s *fakeAvailStore) DefaultScheduleByOrganizer(_ context.Context, _ uuid.UUID) (*queries.ScheduleView, error) {
	return s.schedule, s.scheduleErr
}

func (s *fakeAvailStore) RulesBySchedule(_ context.Context, _ uuid.UUID) ([]*queries.RuleView, error) {
	return s.rules, nil
}

func (s *fakeAvailStore) SchedulesForEventType(_ context.Context, _ uuid.UUID) ([]*queries.ScheduleView, error) {
	if s.schedule == nil {
		return nil, s.scheduleErr
	}
	return []*queries.ScheduleView{s.schedule}, s.scheduleErr
}

func (s *fakeAvailStore) RulesForEventType(_ context.Context, _ uuid.UUID) ([]*queries.RuleView, error) {
	return s.rules, nil
}

type fakeBookingStore struct {
	view     *queries.BookingView
	viewErr  error
	booked   []queries.BookedRange
	upcoming []*queries.BookingListItem
	past     []*queries.BookingListItem
}

func (s *fakeBookingStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.viewErr
}

func (s *fakeBookingStore) ConfirmedStartingIn(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]queries.BookedRange, error) {
	return s.booked, nil
}

func (s *fakeBookingStore) ListUpcoming(_ context.Context, _ uuid.UUID, _ time.Time) ([]*queries.BookingListItem, error) {
	return s.upcoming, nil
}

func (s *fakeBookingStore) ListPast(_ context.Context, _ uuid.UUID, _ time.Time) ([]*queries.BookingListItem, error) {
	return s.past, nil
}

func mondayFixture() (*fakeEventTypeStore, *fakeAvailStore) {
	eventTypes := &fakeEventTypeStore{view: &queries.EventTypeView{
		ID:              uuid.New(),
		OrganizerID:     uuid.New(),
		Name:            "Intro Call",
		DurationMinutes: 30,
		Slug:            "intro-call",
		IsActive:        true,
	}}
	avail := &fakeAvailStore{
		schedule: &queries.ScheduleView{ID: uuid.New(), Timezone: "America/New_York", IsDefault: true},
		rules:    []*queries.RuleView{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}},
	}
	return eventTypes, avail
}

func TestListForDate(t *testing.T) {
	// Well before the requested Monday, so no slot is filtered as past.
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("full open day", func(t *testing.T) {
		eventTypes, avail := mondayFixture()
		q := queries.NewSlotQueries(eventTypes, avail, &fakeBookingStore{}, clock.NewMockClock(now))

		view, err := q.ListForDate(context.Background(), "intro-call", "2026-06-01", "America/New_York")
		require.NoError(t, err)
		assert.Len(t, view.Slots, 31)
		assert.Equal(t, "America/New_York", view.OrganizerTimezone)
		assert.Equal(t, "America/New_York", view.InviteeTimezone)
		assert.Equal(t, "9:00 AM", view.Slots[0].Display)
		assert.Equal(t, time.Date(2026, time.June, 1, 13, 0, 0, 0, time.UTC), view.Slots[0].Start.UTC())
	})

	t.Run("display follows the invitee zone", func(t *testing.T) {
		eventTypes, avail := mondayFixture()
		q := queries.NewSlotQueries(eventTypes, avail, &fakeBookingStore{}, clock.NewMockClock(now))

		view, err := q.ListForDate(context.Background(), "intro-call", "2026-06-01", "Asia/Kolkata")
		require.NoError(t, err)
		// 09:00 EDT is 13:00 UTC is 18:30 IST.
		assert.Equal(t, "6:30 PM", view.Slots[0].Display)
	})

	t.Run("booked range carves out slots", func(t *testing.T) {
		eventTypes, avail := mondayFixture()
		bookings := &fakeBookingStore{booked: []queries.BookedRange{{
			Start: time.Date(2026, time.June, 1, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.June, 1, 14, 30, 0, 0, time.UTC),
		}}}
		q := queries.NewSlotQueries(eventTypes, avail, bookings, clock.NewMockClock(now))

		view, err := q.ListForDate(context.Background(), "intro-call", "2026-06-01", "")
		require.NoError(t, err)
		assert.Len(t, view.Slots, 28)
		assert.Equal(t, "UTC", view.InviteeTimezone)
	})

	t.Run("empty timezone defaults to UTC display", func(t *testing.T) {
		eventTypes, avail := mondayFixture()
		q := queries.NewSlotQueries(eventTypes, avail, &fakeBookingStore{}, clock.NewMockClock(now))

		view, err := q.ListForDate(context.Background(), "intro-call", "2026-06-01", "")
		require.NoError(t, err)
		assert.Equal(t, "1:00 PM", view.Slots[0].Display)
	})

	t.Run("unknown slug", func(t *testing.T) {
		eventTypes := &fakeEventTypeStore{err: infra.WrapRepoErr("find event type", nil, infra.KindNotFound)}
		q := queries.NewSlotQueries(eventTypes, &fakeAvailStore{}, &fakeBookingStore{}, clock.NewMockClock(now))

		_, err := q.ListForDate(context.Background(), "nope", "2026-06-01", "UTC")
		assert.ErrorIs(t, err, errs.ErrEventTypeNotFound)
	})

	t.Run("malformed date", func(t *testing.T) {
		eventTypes, avail := mondayFixture()
		q := queries.NewSlotQueries(eventTypes, avail, &fakeBookingStore{}, clock.NewMockClock(now))

		_, err := q.ListForDate(context.Background(), "intro-call", "06/01/2026", "UTC")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown invitee timezone", func(t *testing.T) {
		eventTypes, avail := mondayFixture()
		q := queries.NewSlotQueries(eventTypes, avail, &fakeBookingStore{}, clock.NewMockClock(now))

		_, err := q.ListForDate(context.Background(), "intro-call", "2026-06-01", "Atlantis/Capital")
		assert.ErrorIs(t, err, errs.ErrInvalidTimezone)
	})

	t.Run("event type without a schedule offers nothing", func(t *testing.T) {
		eventTypes, _ := mondayFixture()
		q := queries.NewSlotQueries(eventTypes, &fakeAvailStore{}, &fakeBookingStore{}, clock.NewMockClock(now))

		view, err := q.ListForDate(context.Background(), "intro-call", "2026-06-01", "UTC")
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
		assert.Equal(t, "UTC", view.OrganizerTimezone)
	})
}
