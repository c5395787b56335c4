package queries

import (
	"context"
	"log/slog"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// ListUpcoming: confirmed bookings starting at or after now, ascending.
	ListUpcoming(ctx context.Context, organizerID uuid.UUID) (*BookingListView, error)
	// ListPast: bookings already started or cancelled (a cancelled future
	// booking counts as past), descending.
	ListPast(ctx context.Context, organizerID uuid.UUID) (*BookingListView, error)
}

type bookingQueriesImpl struct {
	bookings     BookingReadStore
	availability AvailabilityReadStore
	clock        clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, avail AvailabilityReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings:     bookings,
		availability: avail,
		clock:        clk,
	}
}

func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, organizerID uuid.UUID) (*BookingListView, error) {
	items, err := q.bookings.ListUpcoming(ctx, organizerID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.buildListView(ctx, organizerID, items), nil
}

func (q *bookingQueriesImpl) ListPast(ctx context.Context, organizerID uuid.UUID) (*BookingListView, error) {
	items, err := q.bookings.ListPast(ctx, organizerID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.buildListView(ctx, organizerID, items), nil
}

func (q *bookingQueriesImpl) buildListView(ctx context.Context, organizerID uuid.UUID, items []*BookingListItem) *BookingListView {
	if items == nil {
		items = []*BookingListItem{}
	}
	return &BookingListView{
		OrganizerTimezone: q.organizerTimezone(ctx, organizerID),
		Meetings:          items,
	}
}

func (q *bookingQueriesImpl) organizerTimezone(ctx context.Context, organizerID uuid.UUID) string {
	schedule, err := q.availability.DefaultScheduleByOrganizer(ctx, organizerID)
	if err != nil {
		slog.Warn("could not fetch organizer timezone, using UTC", "organizer_id", organizerID, "error", err.Error())
		return "UTC"
	}
	return schedule.Timezone
}
