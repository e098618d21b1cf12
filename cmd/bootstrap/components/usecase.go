package components

import (
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/proposal"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/config"
	"autoflow/internal/usecase"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"
	"autoflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		configuration.NewDefaultPriceCalculator,
		fx.As(new(configuration.PriceCalculator)),
	),
	configuration.NewFactory,
	func(cfg config.Config) proposal.VehicleReleasePolicy {
		return proposal.NewVehicleReleasePolicy(cfg.Proposal.ReleaseVehicleOnClose)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogUseCase,
		commands.NewConfigurationUseCase,
		commands.NewProposalUseCase,
		commands.NewInvoiceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewCatalogQueries,
		// catalog writes drop the cached snapshot
		func(q queries.CatalogQueries) shared.CatalogCache { return q },
		queries.NewConfigurationQueries,
		queries.NewProposalQueries,
		queries.NewInvoiceQueries,
		queries.NewStatisticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCatalogQueries(
	uow shared.UnitOfWork,
	vehicles queries.VehicleReadStore,
	optionals queries.OptionalReadStore,
	calc configuration.PriceCalculator,
	clk clock.Clock,
	cfg config.Config,
) queries.CatalogQueries {
	return queries.NewCatalogQueries(uow, vehicles, optionals, calc, clk, cfg.Catalog.SnapshotTTL)
}
