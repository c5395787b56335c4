package repository

import (
	"context"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
)

type EventTypeRepository struct{}

func NewEventTypeRepository() *EventTypeRepository {
	return &EventTypeRepository{}
}

func (r *EventTypeRepository) Create(ctx context.Context, tx db.DBTX, e *eventtype.EventType) (uuid.UUID, error) {
	const query = `
		INSERT INTO event_types (
			id, organizer_id, name, description, duration_minutes,
			slug, color, buffer_before, buffer_after, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		e.ID(), e.OrganizerID(), e.Name(), e.Description(), e.DurationMinutes(),
		e.Slug().String(), e.Color(), e.BufferBefore(), e.BufferAfter(), e.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("slug already in use", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create event type", err)
	}
	return id, nil
}

func (r *EventTypeRepository) Update(ctx context.Context, tx db.DBTX, e *eventtype.EventType) error {
	const query = `
		UPDATE event_types
		SET name = $3, description = $4, duration_minutes = $5,
		    slug = $6, color = $7, buffer_before = $8, buffer_after = $9,
		    updated_at = now()
		WHERE id = $1 AND organizer_id = $2`

	tag, err := tx.Exec(ctx, query,
		e.ID(), e.OrganizerID(),
		e.Name(), e.Description(), e.DurationMinutes(),
		e.Slug().String(), e.Color(), e.BufferBefore(), e.BufferAfter(),
	)
	if err != nil {
		if pgErrCode(err) == pgCodeUniqueViolation {
			return infra.WrapRepoErr("slug already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update event type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event type not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete deactivates rather than removes. Bookings keep their event type
// reference and the slug becomes available again only if the row is purged
// manually.
func (r *EventTypeRepository) Delete(ctx context.Context, tx db.DBTX, organizerID, id uuid.UUID) error {
	const query = `
		UPDATE event_types
		SET is_active = false, updated_at = now()
		WHERE id = $1 AND organizer_id = $2 AND is_active`

	tag, err := tx.Exec(ctx, query, id, organizerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventTypeRepository) LinkSchedule(ctx context.Context, tx db.DBTX, eventTypeID, scheduleID uuid.UUID) error {
	const query = `
		INSERT INTO event_type_schedules (event_type_id, schedule_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	if _, err := tx.Exec(ctx, query, eventTypeID, scheduleID); err != nil {
		return infra.WrapRepoErr("failed to link schedule", err)
	}
	return nil
}
