package readstore

import (
	"context"
	"errors"
	"fmt"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (r *AvailabilityReadStore) DefaultScheduleByOrganizer(ctx context.Context, organizerID uuid.UUID) (*queries.ScheduleView, error) {
	const query = `
		SELECT id, organizer_id, timezone, is_default
		FROM availability_schedules
		WHERE organizer_id = $1 AND is_default`

	var v queries.ScheduleView
	err := r.db.QueryRow(ctx, query, organizerID).Scan(&v.ID, &v.OrganizerID, &v.Timezone, &v.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("default schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find default schedule", err)
	}
	return &v, nil
}

func (r *AvailabilityReadStore) RulesBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*queries.RuleView, error) {
	const query = `
		SELECT id, day_of_week, start_time, end_time
		FROM availability_rules
		WHERE schedule_id = $1
		ORDER BY day_of_week, start_time`

	rows, err := r.db.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability rules", err)
	}
	defer rows.Close()

	return collectRules(rows)
}

func (r *AvailabilityReadStore) SchedulesForEventType(ctx context.Context, eventTypeID uuid.UUID) ([]*queries.ScheduleView, error) {
	const query = `
		SELECT s.id, s.organizer_id, s.timezone, s.is_default
		FROM availability_schedules s
		JOIN event_type_schedules ets ON ets.schedule_id = s.id
		WHERE ets.event_type_id = $1
		ORDER BY s.is_default DESC, s.id`

	rows, err := r.db.Query(ctx, query, eventTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules for event type", err)
	}
	defer rows.Close()

	var views []*queries.ScheduleView
	for rows.Next() {
		var v queries.ScheduleView
		if scanErr := rows.Scan(&v.ID, &v.OrganizerID, &v.Timezone, &v.IsDefault); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules for event type", err)
	}
	return views, nil
}

func (r *AvailabilityReadStore) RulesForEventType(ctx context.Context, eventTypeID uuid.UUID) ([]*queries.RuleView, error) {
	const query = `
		SELECT ar.id, ar.day_of_week, ar.start_time, ar.end_time
		FROM availability_rules ar
		JOIN event_type_schedules ets ON ets.schedule_id = ar.schedule_id
		WHERE ets.event_type_id = $1
		ORDER BY ar.day_of_week, ar.start_time`

	rows, err := r.db.Query(ctx, query, eventTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rules for event type", err)
	}
	defer rows.Close()

	return collectRules(rows)
}

func collectRules(rows pgx.Rows) ([]*queries.RuleView, error) {
	var views []*queries.RuleView
	for rows.Next() {
		var (
			v          queries.RuleView
			start, end pgtype.Time
		)
		if err := rows.Scan(&v.ID, &v.DayOfWeek, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability rule", err)
		}
		v.StartTime = formatTimeOfDay(start)
		v.EndTime = formatTimeOfDay(end)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rules", err)
	}
	return views, nil
}

func formatTimeOfDay(t pgtype.Time) string {
	minutes := t.Microseconds / 60_000_000
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
