//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTx(_ context.Context, fn func(tx db.DBTX) error) error {
	return fn(nil)
}

type fakeBookingRepo struct {
	overlap       bool
	overlapErr    error
	createErr     error
	createdID     uuid.UUID
	created       *booking.Booking
	lockTarget    *booking.Booking
	lockErr       error
	savedStatus   booking.Status
	savedReason   *string
	saveCancelled bool
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = b
	return r.createdID, nil
}

func (r *fakeBookingRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, _ uuid.UUID) (*booking.Booking, error) {
	if r.lockErr != nil {
		return nil, r.lockErr
	}
	return r.lockTarget, nil
}

func (r *fakeBookingRepo) HasConfirmedOverlap(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.TimeSlot) (bool, error) {
	return r.overlap, r.overlapErr
}

func (r *fakeBookingRepo) SaveCancellation(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	r.saveCancelled = true
	r.savedStatus = b.Status()
	r.savedReason = b.CancellationReason()
	return nil
}

type fakeEventTypeReads struct {
	view *queries.EventTypeView
	err  error
}

func (r *fakeEventTypeReads) FindByID(_ context.Context, _ uuid.UUID) (*queries.EventTypeView, error) {
	return r.view, r.err
}

func (r *fakeEventTypeReads) FindActiveBySlug(_ context.Context, _ string) (*queries.EventTypeView, error) {
	return r.view, r.err
}

func (r *fakeEventTypeReads) ListActive(_ context.Context) ([]*queries.EventTypeView, error) {
	return []*queries.EventTypeView{r.view}, r.err
}

type fakeBookingReads struct {
	view *queries.BookingView
	err  error
}

func (r *fakeBookingReads) FindByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return r.view, r.err
}

func (r *fakeBookingReads) ConfirmedStartingIn(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]queries.BookedRange, error) {
	return nil, nil
}

func (r *fakeBookingReads) ListUpcoming(_ context.Context, _ uuid.UUID, _ time.Time) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (r *fakeBookingReads) ListPast(_ context.Context, _ uuid.UUID, _ time.Time) ([]*queries.BookingListItem, error) {
	return nil, nil
}

// fakeNotifier signals over channels so tests can wait for the detached
// notification goroutine instead of sleeping.
type fakeNotifier struct {
	confirmed chan *queries.BookingView
	cancelled chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		confirmed: make(chan *queries.BookingView, 1),
		cancelled: make(chan string, 1),
	}
}

func (n *fakeNotifier) BookingConfirmed(_ context.Context, b *queries.BookingView, _ *queries.EventTypeView) {
	n.confirmed <- b
}

func (n *fakeNotifier) BookingCancelled(_ context.Context, _ *queries.BookingView, _ *queries.EventTypeView, reason string) {
	n.cancelled <- reason
}

func waitConfirmed(t *testing.T, n *fakeNotifier) *queries.BookingView {
	t.Helper()
	select {
	case v := <-n.confirmed:
		return v
	case <-time.After(time.Second):
		t.Fatal("confirmation notification never dispatched")
		return nil
	}
}

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func eventTypeView(organizerID uuid.UUID) *queries.EventTypeView {
	return &queries.EventTypeView{
		ID:              uuid.New(),
		OrganizerID:     organizerID,
		Name:            "Intro Call",
		DurationMinutes: 30,
		Slug:            "intro-call",
		IsActive:        true,
	}
}

func createParams(et *queries.EventTypeView) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		EventTypeID:     et.ID,
		InviteeName:     "Dana",
		InviteeEmail:    "dana@example.com",
		InviteeTimezone: "America/New_York",
		StartTime:       testNow.Add(2 * time.Hour),
		EndTime:         testNow.Add(2*time.Hour + 30*time.Minute),
	}
}

func TestCreateBooking(t *testing.T) {
	organizerID := uuid.New()

	t.Run("confirms and notifies", func(t *testing.T) {
		et := eventTypeView(organizerID)
		bookingID := uuid.New()
		repo := &fakeBookingRepo{createdID: bookingID}
		view := &queries.BookingView{ID: bookingID, EventTypeID: et.ID, Status: "confirmed"}
		notifier := newFakeNotifier()

		cmds := commands.NewBookingCommands(
			repo,
			&fakeEventTypeReads{view: et},
			&fakeBookingReads{view: view},
			notifier,
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		got, err := cmds.CreateBooking(context.Background(), createParams(et))
		require.NoError(t, err)
		assert.Equal(t, bookingID, got.ID)
		require.NotNil(t, repo.created)
		assert.Equal(t, organizerID, repo.created.OrganizerID())
		assert.Equal(t, bookingID, waitConfirmed(t, notifier).ID)
	})

	t.Run("overlap rejects with conflict", func(t *testing.T) {
		et := eventTypeView(organizerID)
		notifier := newFakeNotifier()
		cmds := commands.NewBookingCommands(
			&fakeBookingRepo{overlap: true},
			&fakeEventTypeReads{view: et},
			&fakeBookingReads{},
			notifier,
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CreateBooking(context.Background(), createParams(et))
		assert.ErrorIs(t, err, errs.ErrSlotConflict)
		assert.Empty(t, notifier.confirmed)
	})

	t.Run("exclusion constraint violation maps to conflict", func(t *testing.T) {
		et := eventTypeView(organizerID)
		repo := &fakeBookingRepo{
			createErr: infra.WrapRepoErr("insert booking", nil, infra.KindConflict),
		}
		cmds := commands.NewBookingCommands(
			repo,
			&fakeEventTypeReads{view: et},
			&fakeBookingReads{},
			newFakeNotifier(),
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CreateBooking(context.Background(), createParams(et))
		assert.ErrorIs(t, err, errs.ErrSlotConflict)
	})

	t.Run("unknown event type", func(t *testing.T) {
		cmds := commands.NewBookingCommands(
			&fakeBookingRepo{},
			&fakeEventTypeReads{err: infra.WrapRepoErr("find event type", nil, infra.KindNotFound)},
			&fakeBookingReads{},
			newFakeNotifier(),
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CreateBooking(context.Background(), createParams(eventTypeView(organizerID)))
		assert.ErrorIs(t, err, errs.ErrEventTypeNotFound)
	})

	t.Run("past start rejected", func(t *testing.T) {
		et := eventTypeView(organizerID)
		p := createParams(et)
		p.StartTime = testNow.Add(-time.Hour)
		p.EndTime = p.StartTime.Add(30 * time.Minute)

		cmds := commands.NewBookingCommands(
			&fakeBookingRepo{},
			&fakeEventTypeReads{view: et},
			&fakeBookingReads{},
			newFakeNotifier(),
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CreateBooking(context.Background(), p)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("duration mismatch rejected", func(t *testing.T) {
		et := eventTypeView(organizerID)
		p := createParams(et)
		p.EndTime = p.StartTime.Add(45 * time.Minute)

		cmds := commands.NewBookingCommands(
			&fakeBookingRepo{},
			&fakeEventTypeReads{view: et},
			&fakeBookingReads{},
			newFakeNotifier(),
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CreateBooking(context.Background(), p)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func confirmedBooking(organizerID uuid.UUID) *booking.Booking {
	invitee := booking.ReconstructInvitee("Dana", "dana@example.com", "UTC")
	slot := booking.ReconstructTimeSlot(testNow.Add(time.Hour), testNow.Add(90*time.Minute))
	return booking.Reconstruct(
		uuid.New(), uuid.New(), organizerID,
		invitee, slot,
		booking.StatusConfirmed, nil,
		testNow, testNow,
	)
}

func TestCancelBooking(t *testing.T) {
	organizerID := uuid.New()

	t.Run("cancels, persists reason, notifies", func(t *testing.T) {
		entity := confirmedBooking(organizerID)
		repo := &fakeBookingRepo{lockTarget: entity}
		reason := "schedule change"
		view := &queries.BookingView{
			ID: entity.ID(), EventTypeID: entity.EventTypeID(),
			Status: "cancelled", CancellationReason: &reason,
		}
		notifier := newFakeNotifier()

		cmds := commands.NewBookingCommands(
			repo,
			&fakeEventTypeReads{view: eventTypeView(organizerID)},
			&fakeBookingReads{view: view},
			notifier,
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		got, err := cmds.CancelBooking(context.Background(), entity.ID(), reason)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", got.Status)
		assert.True(t, repo.saveCancelled)
		assert.Equal(t, booking.StatusCancelled, repo.savedStatus)
		require.NotNil(t, repo.savedReason)
		assert.Equal(t, reason, *repo.savedReason)

		select {
		case gotReason := <-notifier.cancelled:
			assert.Equal(t, reason, gotReason)
		case <-time.After(time.Second):
			t.Fatal("cancellation notification never dispatched")
		}
	})

	t.Run("cancelling twice conflicts", func(t *testing.T) {
		entity := confirmedBooking(organizerID)
		require.NoError(t, entity.Cancel("first"))

		cmds := commands.NewBookingCommands(
			&fakeBookingRepo{lockTarget: entity},
			&fakeEventTypeReads{view: eventTypeView(organizerID)},
			&fakeBookingReads{},
			newFakeNotifier(),
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CancelBooking(context.Background(), entity.ID(), "second")
		assert.ErrorIs(t, err, errs.ErrBookingAlreadyCancelled)
	})

	t.Run("unknown booking", func(t *testing.T) {
		cmds := commands.NewBookingCommands(
			&fakeBookingRepo{lockErr: infra.WrapRepoErr("find booking", nil, infra.KindNotFound)},
			&fakeEventTypeReads{view: eventTypeView(organizerID)},
			&fakeBookingReads{},
			newFakeNotifier(),
			fakeTxManager{},
			clock.NewMockClock(testNow),
		)

		_, err := cmds.CancelBooking(context.Background(), uuid.New(), "")
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
