package queries

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/timezone"
)

// SlotQueries lists the bookable windows of a calendar day for an event type,
// as seen from the invitee's timezone.
type SlotQueries interface {
	ListForDate(ctx context.Context, slug, date, inviteeTZ string) (*SlotListView, error)
}

type slotQueriesImpl struct {
	eventTypes   EventTypeReadStore
	availability AvailabilityReadStore
	bookings     BookingReadStore
	clock        clock.Clock
}

func NewSlotQueries(
	eventTypes EventTypeReadStore,
	avail AvailabilityReadStore,
	bookings BookingReadStore,
	clk clock.Clock,
) SlotQueries {
	return &slotQueriesImpl{
		eventTypes:   eventTypes,
		availability: avail,
		bookings:     bookings,
		clock:        clk,
	}
}

func (q *slotQueriesImpl) ListForDate(ctx context.Context, slug, date, inviteeTZ string) (*SlotListView, error) {
	eventType, err := q.eventTypes.FindActiveBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	day, err := timezone.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if inviteeTZ == "" {
		inviteeTZ = "UTC"
	}
	inviteeZone, err := timezone.LoadLocation(inviteeTZ)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimezone)
	}

	schedules, err := q.availability.SchedulesForEventType(ctx, eventType.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(schedules) == 0 {
		return &SlotListView{Slots: []SlotView{}, OrganizerTimezone: "UTC", InviteeTimezone: inviteeTZ}, nil
	}

	organizerTZ := schedules[0].Timezone
	organizerZone, err := timezone.LoadLocation(organizerTZ)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimezone)
	}

	ruleViews, err := q.availability.RulesForEventType(ctx, eventType.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	rules, err := toRuleSet(ruleViews)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRule)
	}

	// Bookings are fetched for the organizer-local day, across every active
	// event type of the organizer: the calendar is shared.
	dayStart, dayEnd := day.DayRange(organizerZone)
	booked, err := q.bookings.ConfirmedStartingIn(ctx, eventType.OrganizerID, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	intervals := make([]availability.BookedInterval, len(booked))
	for i, b := range booked {
		intervals[i] = availability.BookedInterval{Start: b.Start, End: b.End}
	}

	slots := availability.GenerateSlots(availability.GenerateRequest{
		Date:          day,
		Rules:         rules,
		Duration:      eventType.Duration(),
		Bookings:      intervals,
		BufferBefore:  eventType.BufferBeforeDuration(),
		BufferAfter:   eventType.BufferAfterDuration(),
		OrganizerZone: organizerZone,
		InviteeZone:   inviteeZone,
		Now:           q.clock.Now(),
	})

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Start: s.Start, End: s.End, Display: s.Display}
	}

	return &SlotListView{
		Slots:             views,
		OrganizerTimezone: organizerTZ,
		InviteeTimezone:   inviteeTZ,
	}, nil
}

func toRuleSet(views []*RuleView) (availability.RuleSet, error) {
	rules := make(availability.RuleSet, 0, len(views))
	for _, v := range views {
		start, err := availability.ParseTimeOfDay(v.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := availability.ParseTimeOfDay(v.EndTime)
		if err != nil {
			return nil, err
		}
		rule, err := availability.NewRule(v.DayOfWeek, start, end)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
