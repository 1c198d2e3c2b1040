//go:build unit

package converter_test

import (
	"testing"

	"pousada-booking/internal/infra/pgstore"
	"pousada-booking/internal/infra/repository/converter"
	"pousada-booking/internal/pkg/pgconv"
	"pousada-booking/tests/common/builder"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowFromParams(p pgstore.CreateReservationParams) pgstore.Reservation {
	return pgstore.Reservation{
		ID:              p.ID,
		AccommodationID: p.AccommodationID,
		GuestName:       p.GuestName,
		GuestEmail:      p.GuestEmail,
		GuestPhone:      p.GuestPhone,
		CheckInDate:     p.CheckInDate,
		CheckInTime:     p.CheckInTime,
		CheckOutDate:    p.CheckOutDate,
		CheckOutTime:    p.CheckOutTime,
		GuestCount:      p.GuestCount,
		Status:          p.Status,
		TotalPrice:      p.TotalPrice,
		Note:            p.Note,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func TestReservationToInfra(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	params := converter.ReservationToInfra(res)

	assert.Equal(t, res.ID(), params.ID)
	assert.Equal(t, "maria@example.com", params.GuestEmail)
	assert.Equal(t, int64(14*60*60*1_000_000), params.CheckInTime.Microseconds)
	assert.Equal(t, int64(11*60*60*1_000_000), params.CheckOutTime.Microseconds)
	assert.Equal(t, "pending", params.Status)
	assert.Equal(t, pgtype.Text{String: "Chegamos de carro", Valid: true}, params.Note)

	cents, err := pgconv.CentsFromNumeric(params.TotalPrice)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), cents)
}

func TestReservationFromRow(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	row := rowFromParams(converter.ReservationToInfra(res))

	t.Run("restores the aggregate", func(t *testing.T) {
		got, err := converter.ReservationFromRow(row)
		require.NoError(t, err)

		assert.Equal(t, res.ID(), got.ID())
		assert.Equal(t, res.CheckInDate(), got.CheckInDate())
		assert.Equal(t, "14:00", got.CheckInTime().String())
		assert.Equal(t, "11:00", got.CheckOutTime().String())
		assert.Equal(t, res.TotalPrice(), got.TotalPrice())
		assert.Equal(t, res.Status(), got.Status())
		assert.Equal(t, 3, got.Nights())
	})

	tests := []struct {
		name   string
		mutate func(*pgstore.Reservation)
	}{
		{name: "unknown status", mutate: func(r *pgstore.Reservation) { r.Status = "archived" }},
		{name: "null check-in date", mutate: func(r *pgstore.Reservation) { r.CheckInDate = pgtype.Date{} }},
		{name: "null checkout time", mutate: func(r *pgstore.Reservation) { r.CheckOutTime = pgtype.Time{} }},
		{name: "invalid guest email", mutate: func(r *pgstore.Reservation) { r.GuestEmail = "nope" }},
		{name: "null price", mutate: func(r *pgstore.Reservation) { r.TotalPrice = pgtype.Numeric{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := row
			tt.mutate(&broken)

			_, err := converter.ReservationFromRow(broken)

			assert.Error(t, err)
		})
	}
}

func TestManualBlockFromRow(t *testing.T) {
	b := builder.NewReservationBuilder()
	row := pgstore.ManualBlock{
		StartDate: pgconv.DateToPgtype(b.CheckInDate),
		EndDate:   pgconv.DateToPgtype(b.CheckOutDate),
		Reason:    "pintura",
	}

	block, err := converter.ManualBlockFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, b.CheckInDate, block.StartDate())
	assert.True(t, block.BlockedRange().IsManual)

	row.EndDate = pgtype.Date{}
	_, err = converter.ManualBlockFromRow(row)
	assert.Error(t, err)
}
