//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func validInvitee(t *testing.T) booking.Invitee {
	t.Helper()
	invitee, err := booking.NewInvitee("Ada Lovelace", "ada@example.com", "Europe/London")
	require.NoError(t, err)
	return invitee
}

func validSlot(t *testing.T) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(now.Add(time.Hour), now.Add(90*time.Minute))
	require.NoError(t, err)
	return slot
}

func TestNewBooking(t *testing.T) {
	t.Run("valid booking starts confirmed", func(t *testing.T) {
		b, err := booking.NewBooking(now, uuid.New(), uuid.New(), validInvitee(t), validSlot(t), 30*time.Minute)
		require.NoError(t, err)
		assert.True(t, b.IsConfirmed())
		assert.Nil(t, b.CancellationReason())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("start in the past", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(now.Add(-time.Hour), now.Add(-30*time.Minute))
		require.NoError(t, err)

		_, err = booking.NewBooking(now, uuid.New(), uuid.New(), validInvitee(t), slot, 30*time.Minute)
		assert.ErrorIs(t, err, booking.ErrSlotInPast)
	})

	t.Run("start exactly now", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(now, now.Add(30*time.Minute))
		require.NoError(t, err)

		_, err = booking.NewBooking(now, uuid.New(), uuid.New(), validInvitee(t), slot, 30*time.Minute)
		assert.ErrorIs(t, err, booking.ErrSlotInPast)
	})

	t.Run("duration mismatch", func(t *testing.T) {
		_, err := booking.NewBooking(now, uuid.New(), uuid.New(), validInvitee(t), validSlot(t), time.Hour)
		assert.ErrorIs(t, err, booking.ErrDurationMismatch)
	})
}

func TestBookingCancel(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewBooking(now, uuid.New(), uuid.New(), validInvitee(t), validSlot(t), 30*time.Minute)
		require.NoError(t, err)
		return b
	}

	t.Run("cancel records the reason", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel("double booked"))
		assert.True(t, b.IsCancelled())
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, "double booked", *b.CancellationReason())
	})

	t.Run("cancel twice fails", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel("first"))

		err := b.Cancel("second")
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, "first", *b.CancellationReason())
	})

	t.Run("cancel with empty reason", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel(""))
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, "", *b.CancellationReason())
	})
}
