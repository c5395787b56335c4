//go:build unit

package commands_test

import (
	"context"
	"testing"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventTypeRepo struct {
	createErr       error
	createdID       uuid.UUID
	created         *eventtype.EventType
	updated         *eventtype.EventType
	updateErr       error
	deleteErr       error
	linkedEventType uuid.UUID
	linkedSchedule  uuid.UUID
}

func (r *fakeEventTypeRepo) Create(_ context.Context, _ db.DBTX, e *eventtype.EventType) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = e
	return r.createdID, nil
}

func (r *fakeEventTypeRepo) Update(_ context.Context, _ db.DBTX, e *eventtype.EventType) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = e
	return nil
}

func (r *fakeEventTypeRepo) Delete(_ context.Context, _ db.DBTX, _, _ uuid.UUID) error {
	return r.deleteErr
}

func (r *fakeEventTypeRepo) LinkSchedule(_ context.Context, _ db.DBTX, eventTypeID, scheduleID uuid.UUID) error {
	r.linkedEventType = eventTypeID
	r.linkedSchedule = scheduleID
	return nil
}

func eventTypeParams() commands.EventTypeParams {
	return commands.EventTypeParams{
		Name:     "Intro Call",
		Duration: 30,
		Slug:     "intro-call",
	}
}

func TestCreateEventType(t *testing.T) {
	organizerID := uuid.New()
	scheduleID := uuid.New()
	schedule := &queries.ScheduleView{ID: scheduleID, OrganizerID: organizerID, IsDefault: true}

	t.Run("creates and links the default schedule", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeEventTypeRepo{createdID: id}
		view := &queries.EventTypeView{ID: id, OrganizerID: organizerID, Slug: "intro-call"}

		cmds := commands.NewEventTypeCommands(
			repo,
			&fakeEventTypeReads{view: view},
			&fakeAvailabilityReads{schedule: schedule},
			fakeTxManager{},
		)

		got, err := cmds.Create(context.Background(), organizerID, eventTypeParams())
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, id, repo.linkedEventType)
		assert.Equal(t, scheduleID, repo.linkedSchedule)
	})

	t.Run("missing default schedule leaves the event type unlinked", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeEventTypeRepo{createdID: id}
		view := &queries.EventTypeView{ID: id, OrganizerID: organizerID}
		reads := &fakeAvailabilityReads{err: infra.WrapRepoErr("find schedule", nil, infra.KindNotFound)}

		cmds := commands.NewEventTypeCommands(repo, &fakeEventTypeReads{view: view}, reads, fakeTxManager{})

		got, err := cmds.Create(context.Background(), organizerID, eventTypeParams())
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, uuid.Nil, repo.linkedEventType)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		repo := &fakeEventTypeRepo{
			createErr: infra.WrapRepoErr("insert event type", nil, infra.KindDuplicateKey),
		}
		cmds := commands.NewEventTypeCommands(
			repo, &fakeEventTypeReads{}, &fakeAvailabilityReads{schedule: schedule}, fakeTxManager{},
		)

		_, err := cmds.Create(context.Background(), organizerID, eventTypeParams())
		assert.ErrorIs(t, err, errs.ErrSlugTaken)
	})

	t.Run("invalid params", func(t *testing.T) {
		cmds := commands.NewEventTypeCommands(
			&fakeEventTypeRepo{}, &fakeEventTypeReads{}, &fakeAvailabilityReads{schedule: schedule}, fakeTxManager{},
		)

		p := eventTypeParams()
		p.Duration = 0
		_, err := cmds.Create(context.Background(), organizerID, p)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)

		p = eventTypeParams()
		p.Slug = "Bad Slug!"
		_, err = cmds.Create(context.Background(), organizerID, p)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUpdateEventType(t *testing.T) {
	organizerID := uuid.New()
	id := uuid.New()
	view := &queries.EventTypeView{ID: id, OrganizerID: organizerID, IsActive: true}

	t.Run("rebuilds the entity and persists", func(t *testing.T) {
		repo := &fakeEventTypeRepo{}
		cmds := commands.NewEventTypeCommands(
			repo, &fakeEventTypeReads{view: view}, &fakeAvailabilityReads{}, fakeTxManager{},
		)

		p := eventTypeParams()
		p.Name = "Discovery Call"
		_, err := cmds.Update(context.Background(), organizerID, id, p)
		require.NoError(t, err)
		require.NotNil(t, repo.updated)
		assert.Equal(t, id, repo.updated.ID())
		assert.Equal(t, "Discovery Call", repo.updated.Name())
		assert.True(t, repo.updated.IsActive())
	})

	t.Run("another organizer's event type reads as missing", func(t *testing.T) {
		cmds := commands.NewEventTypeCommands(
			&fakeEventTypeRepo{}, &fakeEventTypeReads{view: view}, &fakeAvailabilityReads{}, fakeTxManager{},
		)

		_, err := cmds.Update(context.Background(), uuid.New(), id, eventTypeParams())
		assert.ErrorIs(t, err, errs.ErrEventTypeNotFound)
	})
}

func TestDeleteEventType(t *testing.T) {
	organizerID := uuid.New()

	t.Run("unknown event type", func(t *testing.T) {
		repo := &fakeEventTypeRepo{
			deleteErr: infra.WrapRepoErr("deactivate event type", nil, infra.KindNotFound),
		}
		cmds := commands.NewEventTypeCommands(
			repo, &fakeEventTypeReads{}, &fakeAvailabilityReads{}, fakeTxManager{},
		)

		err := cmds.Delete(context.Background(), organizerID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrEventTypeNotFound)
	})

	t.Run("deactivates", func(t *testing.T) {
		cmds := commands.NewEventTypeCommands(
			&fakeEventTypeRepo{}, &fakeEventTypeReads{}, &fakeAvailabilityReads{}, fakeTxManager{},
		)

		err := cmds.Delete(context.Background(), organizerID, uuid.New())
		assert.NoError(t, err)
	})
}
