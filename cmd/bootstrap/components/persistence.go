package components

import (
	"autoflow/internal/infra/db"
	"autoflow/internal/infra/readstore"
	"autoflow/internal/infra/uow"
	"autoflow/internal/pkg/config"
	"autoflow/internal/usecase/queries"
	"autoflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Read stores run single statements on the pool, outside any unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			readstore.NewOptionalReadStore,
			fx.As(new(queries.OptionalReadStore)),
		),
		fx.Annotate(
			readstore.NewConfigurationReadStore,
			fx.As(new(queries.ConfigurationReadStore)),
		),
		fx.Annotate(
			readstore.NewProposalReadStore,
			fx.As(new(queries.ProposalReadStore)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			readstore.NewStatisticsReadStore,
			fx.As(new(queries.StatisticsReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.DB)
}
