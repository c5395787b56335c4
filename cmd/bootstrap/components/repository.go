package components

import (
	"slotbook/internal/infra/db"
	"slotbook/internal/infra/notification"
	"slotbook/internal/infra/readstore"
	"slotbook/internal/infra/repository"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		shared.NewPgxTxManager,
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(commands.AvailabilityRepository)),
		),
		fx.Annotate(
			repository.NewEventTypeRepository,
			fx.As(new(commands.EventTypeRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewEventTypeReadStore,
			fx.As(new(queries.EventTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewOrganizerReadStore,
			fx.As(new(queries.OrganizerReadStore)),
		),
		// Outbound
		fx.Annotate(
			notification.NewEmailNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
