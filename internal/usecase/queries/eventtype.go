package queries

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"
)

type EventTypeQueries interface {
	ListActive(ctx context.Context) ([]*EventTypeView, error)
	GetBySlug(ctx context.Context, slug string) (*EventTypeView, error)
}

type eventTypeQueriesImpl struct {
	store EventTypeReadStore
}

func NewEventTypeQueries(store EventTypeReadStore) EventTypeQueries {
	return &eventTypeQueriesImpl{store: store}
}

func (q *eventTypeQueriesImpl) ListActive(ctx context.Context) ([]*EventTypeView, error) {
	views, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*EventTypeView{}
	}
	return views, nil
}

func (q *eventTypeQueriesImpl) GetBySlug(ctx context.Context, slug string) (*EventTypeView, error) {
	view, err := q.store.FindActiveBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventTypeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
