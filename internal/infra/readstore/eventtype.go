package readstore

import (
	"context"
	"errors"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventTypeColumns = `
	id, organizer_id, name, description, duration_minutes,
	slug, color, buffer_before, buffer_after, is_active,
	created_at, updated_at`

type EventTypeReadStore struct {
	db db.DBTX
}

func NewEventTypeReadStore(db db.DBTX) *EventTypeReadStore {
	return &EventTypeReadStore{db: db}
}

func (r *EventTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventTypeView, error) {
	const query = `SELECT ` + eventTypeColumns + ` FROM event_types WHERE id = $1`

	view, err := scanEventType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event type by ID", err)
	}
	return view, nil
}

func (r *EventTypeReadStore) FindActiveBySlug(ctx context.Context, slug string) (*queries.EventTypeView, error) {
	const query = `SELECT ` + eventTypeColumns + ` FROM event_types WHERE slug = $1 AND is_active`

	view, err := scanEventType(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event type by slug", err)
	}
	return view, nil
}

func (r *EventTypeReadStore) ListActive(ctx context.Context) ([]*queries.EventTypeView, error) {
	const query = `SELECT ` + eventTypeColumns + ` FROM event_types WHERE is_active ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event types", err)
	}
	defer rows.Close()

	var views []*queries.EventTypeView
	for rows.Next() {
		view, scanErr := scanEventType(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan event type", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list event types", err)
	}
	return views, nil
}

func scanEventType(row pgx.Row) (*queries.EventTypeView, error) {
	var v queries.EventTypeView
	err := row.Scan(
		&v.ID, &v.OrganizerID, &v.Name, &v.Description, &v.DurationMinutes,
		&v.Slug, &v.Color, &v.BufferBefore, &v.BufferAfter, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
