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

type OrganizerReadStore struct {
	db db.DBTX
}

func NewOrganizerReadStore(db db.DBTX) *OrganizerReadStore {
	return &OrganizerReadStore{db: db}
}

func (r *OrganizerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrganizerView, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM organizers
		WHERE id = $1`

	return r.scanOrganizer(r.db.QueryRow(ctx, query, id))
}

func (r *OrganizerReadStore) FindByEmail(ctx context.Context, email string) (*queries.OrganizerView, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM organizers
		WHERE email = $1`

	return r.scanOrganizer(r.db.QueryRow(ctx, query, email))
}

func (r *OrganizerReadStore) scanOrganizer(row pgx.Row) (*queries.OrganizerView, error) {
	var v queries.OrganizerView
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("organizer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find organizer", err)
	}
	return &v, nil
}
