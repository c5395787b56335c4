package commands

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventTypeParams struct {
	Name         string
	Description  string
	Duration     int
	Slug         string
	Color        string
	BufferBefore int
	BufferAfter  int
}

type EventTypeCommands interface {
	Create(ctx context.Context, organizerID uuid.UUID, p EventTypeParams) (*queries.EventTypeView, error)
	Update(ctx context.Context, organizerID, id uuid.UUID, p EventTypeParams) (*queries.EventTypeView, error)
	Delete(ctx context.Context, organizerID, id uuid.UUID) error
}

type eventTypeCommandsImpl struct {
	repo       EventTypeRepository
	reads      queries.EventTypeReadStore
	availReads queries.AvailabilityReadStore
	txm        shared.TxManager
}

func NewEventTypeCommands(
	repo EventTypeRepository,
	reads queries.EventTypeReadStore,
	availReads queries.AvailabilityReadStore,
	txm shared.TxManager,
) EventTypeCommands {
	return &eventTypeCommandsImpl{
		repo:       repo,
		reads:      reads,
		availReads: availReads,
		txm:        txm,
	}
}

func (c *eventTypeCommandsImpl) Create(ctx context.Context, organizerID uuid.UUID, p EventTypeParams) (*queries.EventTypeView, error) {
	entity, err := buildEventType(organizerID, p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		createdID, txErr := c.repo.Create(ctx, tx, entity)
		if txErr != nil {
			return txErr
		}
		id = createdID

		// New event types use the organizer's default schedule. An organizer
		// without one simply has an unlinked event type that offers no slots.
		schedule, txErr := c.availReads.DefaultScheduleByOrganizer(ctx, organizerID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				slog.Warn("event type created without a schedule link", "organizer_id", organizerID)
				return nil
			}
			return txErr
		}
		return c.repo.LinkSchedule(ctx, tx, createdID, schedule.ID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrSlugTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.findByID(ctx, id)
}

func (c *eventTypeCommandsImpl) Update(ctx context.Context, organizerID, id uuid.UUID, p EventTypeParams) (*queries.EventTypeView, error) {
	existing, err := c.reads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
	}
	if existing.OrganizerID != organizerID {
		return nil, errs.ErrEventTypeNotFound
	}

	entity, err := buildEventType(organizerID, p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity = eventtype.Reconstruct(
		id, organizerID,
		entity.Name(), entity.Description(), entity.DurationMinutes(),
		entity.Slug(), entity.Color(), entity.BufferBefore(), entity.BufferAfter(),
		existing.IsActive, existing.CreatedAt, existing.UpdatedAt,
	)

	err = c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		return c.repo.Update(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrSlugTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.findByID(ctx, id)
}

func (c *eventTypeCommandsImpl) Delete(ctx context.Context, organizerID, id uuid.UUID) error {
	err := c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		return c.repo.Delete(ctx, tx, organizerID, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *eventTypeCommandsImpl) findByID(ctx context.Context, id uuid.UUID) (*queries.EventTypeView, error) {
	view, err := c.reads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func buildEventType(organizerID uuid.UUID, p EventTypeParams) (*eventtype.EventType, error) {
	slug, err := eventtype.NewSlug(p.Slug)
	if err != nil {
		return nil, err
	}
	return eventtype.NewEventType(
		organizerID,
		p.Name, p.Description,
		p.Duration,
		slug,
		p.Color,
		p.BufferBefore, p.BufferAfter,
	)
}
