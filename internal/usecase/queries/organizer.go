package queries

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrganizerNotFound = errs.New("organizer not found")

type OrganizerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizerView, error)
}

type organizerQueriesImpl struct {
	store OrganizerReadStore
}

func NewOrganizerQueries(store OrganizerReadStore) OrganizerQueries {
	return &organizerQueriesImpl{store: store}
}

func (q *organizerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrganizerView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrganizerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
