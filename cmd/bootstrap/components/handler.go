package components

import (
	"pousada-booking/internal/handler"
	"pousada-booking/internal/handler/api"
	"pousada-booking/internal/handler/middleware"
	"pousada-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewManualBlockHandler,
		NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(verifier middleware.TokenVerifier, cfg config.AuthConfig) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(verifier, cfg.AdminRole)
}

func NewHandlers(
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	manualBlock *api.ManualBlockHandler,
	auth *middleware.AuthMiddleware,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Reservation:  reservation,
		ManualBlock:  manualBlock,
		Auth:         auth,
	}
}
