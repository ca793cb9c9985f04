package components

import (
	"timebook/internal/infra/readstore"
	"timebook/internal/infra/repository"
	"timebook/internal/usecase/commands"
	"timebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repository.NewDayRepository,
			fx.As(new(commands.DayRepository)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewDayReadStore,
			fx.As(new(queries.DayReadStore)),
		),
	),
)
