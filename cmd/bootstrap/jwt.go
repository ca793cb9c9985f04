package bootstrap

import (
	"timebook/internal/pkg/clock"
	"timebook/internal/pkg/config"
	"timebook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, clk)
}
