package bootstrap

import (
	"pousada-booking/internal/handler/middleware"
	"pousada-booking/internal/pkg/config"
	"pousada-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTVerifier,
			fx.As(new(middleware.TokenVerifier)),
		),
	),
)

func NewJWTVerifier(cfg config.AuthConfig) *jwt.Verifier {
	if cfg.JWTSecret == "" {
		panic("AUTH_JWT_SECRET must not be empty")
	}
	return jwt.NewVerifier(cfg.JWTSecret, cfg.Issuer)
}
