package repository

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
)

type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

func (r *AvailabilityRepository) UpdateScheduleTimezone(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, tz string) error {
	const query = `
		UPDATE availability_schedules
		SET timezone = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, scheduleID, tz)
	if err != nil {
		return infra.WrapRepoErr("failed to update schedule timezone", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AvailabilityRepository) ReplaceRules(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, rules availability.RuleSet) error {
	const deleteQuery = `DELETE FROM availability_rules WHERE schedule_id = $1`
	if _, err := tx.Exec(ctx, deleteQuery, scheduleID); err != nil {
		return infra.WrapRepoErr("failed to delete availability rules", err)
	}

	const insertQuery = `
		INSERT INTO availability_rules (id, schedule_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)`
	for _, rule := range rules {
		_, err := tx.Exec(ctx, insertQuery,
			uuid.New(), scheduleID,
			int(rule.Weekday()), rule.Start().String(), rule.End().String(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert availability rule", err)
		}
	}
	return nil
}
