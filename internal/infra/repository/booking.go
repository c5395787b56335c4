package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgCodeUniqueViolation    = "23505"
	pgCodeForeignKeyViolated = "23503"
	pgCodeExclusionViolation = "23P01"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, event_type_id, organizer_id,
			invitee_name, invitee_email, invitee_timezone,
			start_time, end_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.EventTypeID(), b.OrganizerID(),
		b.Invitee().Name(), b.Invitee().Email(), b.Invitee().Timezone(),
		b.Slot().Start(), b.Slot().End(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		switch pgErrCode(err) {
		case pgCodeExclusionViolation:
			return uuid.Nil, infra.WrapRepoErr("booking interval overlaps a confirmed booking", err, infra.KindConflict)
		case pgCodeForeignKeyViolated:
			return uuid.Nil, infra.WrapRepoErr("booking references a missing event type", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, event_type_id, organizer_id,
		       invitee_name, invitee_email, invitee_timezone,
		       start_time, end_time, status, cancellation_reason,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		bookingID, eventTypeID, organizerID uuid.UUID
		name, email, tz, status             string
		startTime, endTime                  time.Time
		reason                              *string
		createdAt, updatedAt                time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&bookingID, &eventTypeID, &organizerID,
		&name, &email, &tz,
		&startTime, &endTime, &status, &reason,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}

	return booking.Reconstruct(
		bookingID, eventTypeID, organizerID,
		booking.ReconstructInvitee(name, email, tz),
		booking.ReconstructTimeSlot(startTime, endTime),
		booking.Status(status),
		reason,
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) HasConfirmedOverlap(ctx context.Context, tx db.DBTX, organizerID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	// Strict half-open overlap across every booking of the organizer,
	// regardless of event type. No buffers here; buffers only shape which
	// slots are offered.
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE organizer_id = $1
			  AND status = 'confirmed'
			  AND start_time < $3
			  AND end_time > $2
		)`

	var exists bool
	err := tx.QueryRow(ctx, query, organizerID, slot.Start(), slot.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingRepository) SaveCancellation(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, cancellation_reason = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, b.ID(), b.Status().String(), b.CancellationReason())
	if err != nil {
		return infra.WrapRepoErr("failed to save cancellation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
