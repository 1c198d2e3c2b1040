//go:build unit

package accommodation_test

import (
	"math"
	"strings"
	"testing"

	"pousada-booking/internal/domain/accommodation"
	"pousada-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AccommodationBuilder)
	errIs  error
}

func TestAccommodation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAccommodationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Chalé Beira-Mar", actual.Name())
		assert.Equal(t, 2, actual.Capacity())
		assert.Equal(t, "200.00", actual.PricePerNight().String())
		assert.Equal(t, accommodation.DefaultCleaningBufferHours, actual.CleaningBufferHours())
	})

	t.Run("explicit buffer", func(t *testing.T) {
		actual, err := builder.NewAccommodationBuilder().WithBuffer(1.5).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 1.5, actual.CleaningBufferHours())

		actual, err = builder.NewAccommodationBuilder().WithBuffer(0).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 0.0, actual.CleaningBufferHours())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.AccommodationBuilder) { b.Name = " " },
				errIs:  accommodation.ErrEmptyName,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.AccommodationBuilder) { b.Name = strings.Repeat("a", accommodation.MaxNameLength+1) },
				errIs:  accommodation.ErrNameTooLong,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.AccommodationBuilder) { b.Capacity = 0 },
				errIs:  accommodation.ErrInvalidCapacity,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.AccommodationBuilder) { b.PricePerNightCents = -1 },
				errIs:  accommodation.ErrNegativeNightly,
			},
			{
				name:   "negative buffer",
				mutate: func(b *builder.AccommodationBuilder) { b.WithBuffer(-0.5) },
				errIs:  accommodation.ErrNegativeBuffer,
			},
			{
				name:   "NaN buffer",
				mutate: func(b *builder.AccommodationBuilder) { b.WithBuffer(math.NaN()) },
				errIs:  accommodation.ErrNonFiniteBuffer,
			},
		})
	})
}

func TestAccommodation_Admits(t *testing.T) {
	acc, err := builder.NewAccommodationBuilder().BuildDomain()
	require.NoError(t, err)

	assert.False(t, acc.Admits(0))
	assert.True(t, acc.Admits(1))
	assert.True(t, acc.Admits(2))
	assert.False(t, acc.Admits(3))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAccommodationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
