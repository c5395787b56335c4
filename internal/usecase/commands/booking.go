package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	EventTypeID     uuid.UUID
	InviteeName     string
	InviteeEmail    string
	InviteeTimezone string
	StartTime       time.Time
	EndTime         time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	eventTypes   queries.EventTypeReadStore
	bookingReads queries.BookingReadStore
	notifier     Notifier
	txm          shared.TxManager
	clock        clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	eventTypes queries.EventTypeReadStore,
	bookingReads queries.BookingReadStore,
	notifier Notifier,
	txm shared.TxManager,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		eventTypes:   eventTypes,
		bookingReads: bookingReads,
		notifier:     notifier,
		txm:          txm,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	eventType, err := c.eventTypes.FindByID(ctx, p.EventTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := c.buildBooking(p, eventType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// The overlap check and the insert share one transaction; the exclusion
	// constraint on confirmed bookings backs this up across processes, so two
	// concurrent requests for overlapping intervals cannot both commit.
	var bookingID uuid.UUID
	err = c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		overlap, txErr := c.bookingRepo.HasConfirmedOverlap(ctx, tx, entity.OrganizerID(), entity.Slot())
		if txErr != nil {
			return txErr
		}
		if overlap {
			return errs.ErrSlotConflict
		}
		bookingID, txErr = c.bookingRepo.Create(ctx, tx, entity)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrSlotConflict)
		}
		return nil, err
	}

	view, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.dispatch(ctx, func(ctx context.Context) {
		c.notifier.BookingConfirmed(ctx, view, eventType)
	})

	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*queries.BookingView, error) {
	err := c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		entity, txErr := c.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if txErr != nil {
			return txErr
		}
		if txErr := entity.Cancel(reason); txErr != nil {
			return txErr
		}
		return c.bookingRepo.SaveCancellation(ctx, tx, entity)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		case errors.Is(err, booking.ErrAlreadyCancelled):
			return nil, errs.Mark(err, errs.ErrBookingAlreadyCancelled)
		default:
			return nil, err
		}
	}

	view, err := c.bookingReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The event type is only needed for the email template; a missing one
	// skips the notification rather than failing the cancellation.
	eventType, err := c.eventTypes.FindByID(ctx, view.EventTypeID)
	if err != nil {
		slog.Warn("cancellation notification skipped, event type lookup failed",
			"booking_id", id, "error", err.Error())
		return view, nil
	}

	c.dispatch(ctx, func(ctx context.Context) {
		c.notifier.BookingCancelled(ctx, view, eventType, reason)
	})

	return view, nil
}

func (c *bookingCommandsImpl) buildBooking(p CreateBookingParams, eventType *queries.EventTypeView) (*booking.Booking, error) {
	invitee, err := booking.NewInvitee(p.InviteeName, p.InviteeEmail, p.InviteeTimezone)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(c.clock.Now(), eventType.ID, eventType.OrganizerID, invitee, slot, eventType.Duration())
}

// dispatch hands the notification to a detached goroutine. The request
// context's cancellation must not abort delivery, only the notifier's own
// timeout bounds it.
func (c *bookingCommandsImpl) dispatch(ctx context.Context, fn func(ctx context.Context)) {
	go fn(context.WithoutCancel(ctx))
}
