package commands

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side repository ports implemented by internal/infra/repository.
type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindByIDForUpdate locks the row so cancel decisions are serialized.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// HasConfirmedOverlap applies the strict half-open overlap test against
	// every confirmed booking of the organizer, across all event types.
	HasConfirmedOverlap(ctx context.Context, tx db.DBTX, organizerID uuid.UUID, slot booking.TimeSlot) (bool, error)
	SaveCancellation(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type AvailabilityRepository interface {
	UpdateScheduleTimezone(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, tz string) error
	// ReplaceRules deletes the schedule's rules and inserts the new set.
	// Callers run it inside the same transaction as the timezone update so no
	// reader observes an empty rule set.
	ReplaceRules(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, rules availability.RuleSet) error
}

type EventTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *eventtype.EventType) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, e *eventtype.EventType) error
	Delete(ctx context.Context, tx db.DBTX, organizerID, id uuid.UUID) error
	LinkSchedule(ctx context.Context, tx db.DBTX, eventTypeID, scheduleID uuid.UUID) error
}

// Notifier is the outbound notification collaborator. Implementations own
// delivery, formatting and their own timeout; they log failures instead of
// returning them, so dispatch can never fail a booking operation.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b *queries.BookingView, et *queries.EventTypeView)
	BookingCancelled(ctx context.Context, b *queries.BookingView, et *queries.EventTypeView, reason string)
}
