package queries

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetForOrganizer(ctx context.Context, organizerID uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) GetForOrganizer(ctx context.Context, organizerID uuid.UUID) (*AvailabilityView, error) {
	schedule, err := q.store.DefaultScheduleByOrganizer(ctx, organizerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rules, err := q.store.RulesBySchedule(ctx, schedule.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := &AvailabilityView{Schedule: *schedule, Rules: make([]RuleView, len(rules))}
	for i, r := range rules {
		view.Rules[i] = *r
	}
	return view, nil
}
