package components

import (
	"fmt"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/config"
	"pousada-booking/internal/usecase/commands"
	"pousada-booking/internal/usecase/queries"
	"pousada-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewPropertyLocation,
	NewPolicy,
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewManualBlockUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewManualBlockQueries,
	),
)

func NewPropertyLocation(cfg config.BookingConfig) (*time.Location, error) {
	return cfg.Location()
}

func NewPolicy(cfg config.BookingConfig, loc *time.Location) (shared.Policy, error) {
	floor, err := availability.ParseTimeOfDay(cfg.VacantFloor)
	if err != nil {
		return shared.Policy{}, fmt.Errorf("invalid BOOKING_VACANT_FLOOR %q: %w", cfg.VacantFloor, err)
	}
	return shared.Policy{VacantFloor: floor, Location: loc}, nil
}
