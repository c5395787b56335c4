//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateOrganizer(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO organizers (id, name, email, password_hash) VALUES ($1, $2, $3, $4)",
		id, "Test Organizer", id.String()+"@example.com", "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.")
	require.NoError(t, err)
	return id
}

func CreateDefaultSchedule(t *testing.T, pool *pgxpool.Pool, organizerID uuid.UUID, tz string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO availability_schedules (id, organizer_id, timezone, is_default) VALUES ($1, $2, $3, true)",
		id, organizerID, tz)
	require.NoError(t, err)
	return id
}

func CreateEventType(t *testing.T, pool *pgxpool.Pool, organizerID uuid.UUID, slug string, durationMinutes int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO event_types (id, organizer_id, name, duration_minutes, slug) VALUES ($1, $2, $3, $4, $5)",
		id, organizerID, "Event "+slug, durationMinutes, slug)
	require.NoError(t, err)
	return id
}

func LinkSchedule(t *testing.T, pool *pgxpool.Pool, eventTypeID, scheduleID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"INSERT INTO event_type_schedules (event_type_id, schedule_id) VALUES ($1, $2)",
		eventTypeID, scheduleID)
	require.NoError(t, err)
}

func InsertBooking(t *testing.T, pool *pgxpool.Pool, eventTypeID, organizerID uuid.UUID, start, end time.Time, status string, reason *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO bookings (id, event_type_id, organizer_id, invitee_name, invitee_email, invitee_timezone,
		                       start_time, end_time, status, cancellation_reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, eventTypeID, organizerID, "Dana", "dana@example.com", "UTC", start, end, status, reason)
	require.NoError(t, err)
	return id
}
