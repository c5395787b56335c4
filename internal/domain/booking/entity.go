package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotInPast       = errors.New("slot start must be in the future")
	ErrDurationMismatch = errors.New("slot duration does not match event type duration")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// Booking is created confirmed and can only ever transition to cancelled.
// Rows are never deleted.
type Booking struct {
	id                 uuid.UUID
	eventTypeID        uuid.UUID
	organizerID        uuid.UUID
	invitee            Invitee
	slot               TimeSlot
	status             Status
	cancellationReason *string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewBooking validates a booking request against the current instant and the
// event type's duration. Conflict detection against other bookings is the
// repository's concern, not the entity's.
func NewBooking(
	now time.Time,
	eventTypeID, organizerID uuid.UUID,
	invitee Invitee,
	slot TimeSlot,
	duration time.Duration,
) (*Booking, error) {
	if !slot.Start().After(now) {
		return nil, ErrSlotInPast
	}
	if slot.Duration() != duration {
		return nil, ErrDurationMismatch
	}

	return &Booking{
		id:          uuid.New(),
		eventTypeID: eventTypeID,
		organizerID: organizerID,
		invitee:     invitee,
		slot:        slot,
		status:      StatusConfirmed,
	}, nil
}

func Reconstruct(
	id, eventTypeID, organizerID uuid.UUID,
	invitee Invitee,
	slot TimeSlot,
	status Status,
	cancellationReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		eventTypeID:        eventTypeID,
		organizerID:        organizerID,
		invitee:            invitee,
		slot:               slot,
		status:             status,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Cancel is terminal. Cancelling twice is an error so callers can tell a
// no-op apart from a state change and avoid duplicate notifications.
func (b *Booking) Cancel(reason string) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancellationReason = &reason
	return nil
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) EventTypeID() uuid.UUID      { return b.eventTypeID }
func (b *Booking) OrganizerID() uuid.UUID      { return b.organizerID }
func (b *Booking) Invitee() Invitee            { return b.invitee }
func (b *Booking) Slot() TimeSlot              { return b.slot }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
