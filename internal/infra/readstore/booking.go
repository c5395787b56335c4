package readstore

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, event_type_id, organizer_id,
		       invitee_name, invitee_email, invitee_timezone,
		       start_time, end_time, status, cancellation_reason,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var v queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.EventTypeID, &v.OrganizerID,
		&v.InviteeName, &v.InviteeEmail, &v.InviteeTimezone,
		&v.StartTime, &v.EndTime, &v.Status, &v.CancellationReason,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

func (r *BookingReadStore) ConfirmedStartingIn(ctx context.Context, organizerID uuid.UUID, from, to time.Time) ([]queries.BookedRange, error) {
	const query = `
		SELECT start_time, end_time
		FROM bookings
		WHERE organizer_id = $1
		  AND status = 'confirmed'
		  AND start_time >= $2
		  AND start_time < $3
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, organizerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}
	defer rows.Close()

	var ranges []queries.BookedRange
	for rows.Next() {
		var br queries.BookedRange
		if scanErr := rows.Scan(&br.Start, &br.End); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booked range", scanErr)
		}
		ranges = append(ranges, br)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}
	return ranges, nil
}

const bookingListColumns = `
	b.id, et.name, et.duration_minutes, et.color,
	b.invitee_name, b.invitee_email, b.invitee_timezone,
	b.start_time, b.end_time, b.status, b.cancellation_reason`

func (r *BookingReadStore) ListUpcoming(ctx context.Context, organizerID uuid.UUID, now time.Time) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN event_types et ON et.id = b.event_type_id
		WHERE b.organizer_id = $1
		  AND b.status = 'confirmed'
		  AND b.start_time >= $2
		ORDER BY b.start_time ASC`

	return r.listMeetings(ctx, query, organizerID, now)
}

// ListPast mirrors the upcoming partition: anything already started, plus
// cancellations regardless of when they were scheduled.
func (r *BookingReadStore) ListPast(ctx context.Context, organizerID uuid.UUID, now time.Time) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN event_types et ON et.id = b.event_type_id
		WHERE b.organizer_id = $1
		  AND (b.start_time < $2 OR b.status = 'cancelled')
		ORDER BY b.start_time DESC`

	return r.listMeetings(ctx, query, organizerID, now)
}

func (r *BookingReadStore) listMeetings(ctx context.Context, query string, organizerID uuid.UUID, now time.Time) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, query, organizerID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		scanErr := rows.Scan(
			&item.ID, &item.EventName, &item.DurationMinutes, &item.Color,
			&item.InviteeName, &item.InviteeEmail, &item.InviteeTimezone,
			&item.StartTime, &item.EndTime, &item.Status, &item.CancellationReason,
		)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", scanErr)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return items, nil
}
