package bootstrap

import (
	"timebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the whole application graph: ambient pieces first
// (config, database pool, token service), then the booking components from
// storage up to the router.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
