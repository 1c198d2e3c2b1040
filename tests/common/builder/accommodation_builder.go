//go:build unit || e2e

package builder

import (
	domaccommodation "pousada-booking/internal/domain/accommodation"
	"pousada-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccommodationBuilder struct {
	ID                  uuid.UUID
	Name                string
	Capacity            int
	PricePerNightCents  int64
	CleaningBufferHours *float64
}

func NewAccommodationBuilder() *AccommodationBuilder {
	return &AccommodationBuilder{
		ID:                 uuid.MustParse("0f6c3e1a-7d2b-4c8e-9a41-3b5d2e7f8a90"),
		Name:               "Chalé Beira-Mar",
		Capacity:           2,
		PricePerNightCents: 20000,
	}
}

func (b *AccommodationBuilder) With(mutate func(*AccommodationBuilder)) *AccommodationBuilder {
	mutate(b)
	return b
}

func (b *AccommodationBuilder) WithBuffer(hours float64) *AccommodationBuilder {
	b.CleaningBufferHours = &hours
	return b
}

func (b *AccommodationBuilder) BuildDomain() (*domaccommodation.Accommodation, error) {
	return domaccommodation.NewAccommodation(b.ID, b.Name, b.Capacity, b.PricePerNightCents, b.CleaningBufferHours)
}

func (b *AccommodationBuilder) BuildSnapshot() *shared.AccommodationSnapshot {
	return &shared.AccommodationSnapshot{
		ID:                  b.ID,
		Name:                b.Name,
		Capacity:            b.Capacity,
		PricePerNightCents:  b.PricePerNightCents,
		CleaningBufferHours: b.CleaningBufferHours,
	}
}
