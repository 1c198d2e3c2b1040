package components

import (
	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/readstore"
	"pousada-booking/internal/infra/uow"
	"pousada-booking/internal/pkg/config"
	"pousada-booking/internal/usecase/queries"
	"pousada-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Read stores built here serve the admin listings. Booking reads go through
// the unit of work so that they share its transaction.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// ManualBlock
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ManualBlockReadQueries)),
		),
		fx.Annotate(
			readstore.NewManualBlockReadStore,
			fx.As(new(queries.ManualBlockReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *pgstore.Queries, cfg config.BookingConfig) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, cfg.MaxRetries)
}

func NewSQLQueries(_ *pgxpool.Pool) *pgstore.Queries {
	return pgstore.New()
}

func NewDBTX(pool *pgxpool.Pool) pgstore.DBTX {
	return pool
}
