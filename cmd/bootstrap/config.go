package bootstrap

import (
	"pousada-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the config sections components depend on. It needs
// a config.Config from somewhere else.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.AuthConfig { return cfg.Auth },
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
)
