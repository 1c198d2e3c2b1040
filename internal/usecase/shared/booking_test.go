//go:build unit

package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/manualblock"
	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/shared"
	"pousada-booking/tests/common/builder"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReads struct {
	acc       *shared.AccommodationSnapshot
	accErr    error
	ranges    []availability.RawBlockedRange
	rangesErr error
	from      civil.Date
}

func (f *fakeReads) AccommodationByID(context.Context, uuid.UUID) (*shared.AccommodationSnapshot, error) {
	return f.acc, f.accErr
}

func (f *fakeReads) BlockedRanges(_ context.Context, _ uuid.UUID, from civil.Date) ([]availability.RawBlockedRange, error) {
	f.from = from
	return f.ranges, f.rangesErr
}

func (f *fakeReads) ReservationByID(context.Context, uuid.UUID) (*reservation.Reservation, error) {
	return nil, nil
}

func (f *fakeReads) ManualBlockByID(context.Context, uuid.UUID) (*manualblock.ManualBlock, error) {
	return nil, nil
}

var (
	accID = uuid.MustParse("0f6c3e1a-7d2b-4c8e-9a41-3b5d2e7f8a90")
	brt   = time.FixedZone("BRT", -3*60*60)
)

func strPtr(s string) *string { return &s }

func snapshot() *shared.AccommodationSnapshot {
	return &shared.AccommodationSnapshot{ID: accID, Name: "Chalé", Capacity: 2, PricePerNightCents: 20000}
}

func policy() shared.Policy {
	return shared.Policy{VacantFloor: availability.DefaultVacantFloor, Location: brt}
}

func TestLoadBooking(t *testing.T) {
	ctx := context.Background()
	// 01:30 UTC is still the previous evening in the property's zone
	now := time.Date(2024, time.June, 2, 1, 30, 0, 0, time.UTC)

	t.Run("computes availability in the property's zone", func(t *testing.T) {
		reads := &fakeReads{
			acc: snapshot(),
			ranges: []availability.RawBlockedRange{
				{AccommodationID: accID, StartDate: "2024-06-03", EndDate: "2024-06-05", EndTime: strPtr("11:00:00")},
			},
		}

		b, err := shared.LoadBooking(ctx, reads, accID, now, policy())
		require.NoError(t, err)

		assert.True(t, b.Exists())
		assert.Equal(t, "2024-06-01", b.Today().String())
		assert.Equal(t, "2024-06-01", reads.from.String())
		assert.Len(t, b.Availability.FullyBlocked, 2)
		assert.True(t, b.Availability.IsPartiallyBlocked(civil.Date{Year: 2024, Month: time.June, Day: 5}))
	})

	t.Run("unknown accommodation yields an empty booking", func(t *testing.T) {
		b, err := shared.LoadBooking(ctx, &fakeReads{}, accID, now, policy())
		require.NoError(t, err)

		assert.False(t, b.Exists())
		_, err = b.Validate(builder.NewReservationBuilder().BuildStay())
		assert.True(t, errs.Is(err, availability.ErrNotFound), "got %v", err)
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := shared.LoadBooking(ctx, &fakeReads{acc: snapshot(), rangesErr: errors.New("conn reset")}, accID, now, policy())

		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	})

	t.Run("malformed stored range", func(t *testing.T) {
		reads := &fakeReads{
			acc:    snapshot(),
			ranges: []availability.RawBlockedRange{{AccommodationID: accID, StartDate: "2024-06-05", EndDate: "2024-06-03"}},
		}

		_, err := shared.LoadBooking(ctx, reads, accID, now, policy())

		assert.True(t, errs.Is(err, errs.ErrAvailabilityDataCorrupted), "got %v", err)
		assert.True(t, errs.Is(err, availability.ErrData), "got %v", err)
	})

	t.Run("unreadable accommodation row is corruption, not an outage", func(t *testing.T) {
		rowErr := infra.WrapRepoErr("accommodation price_per_night", errors.New("numeric is NaN"), infra.KindCorruptRow)

		_, err := shared.LoadBooking(ctx, &fakeReads{accErr: rowErr}, accID, now, policy())

		assert.True(t, errs.Is(err, errs.ErrAvailabilityDataCorrupted), "got %v", err)
		assert.False(t, errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	})

	t.Run("accommodation lookup failure", func(t *testing.T) {
		_, err := shared.LoadBooking(ctx, &fakeReads{accErr: infra.WrapRepoErr("get accommodation", errors.New("conn reset"))}, accID, now, policy())

		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	})

	t.Run("invalid accommodation row", func(t *testing.T) {
		bad := snapshot()
		bad.Capacity = 0

		_, err := shared.LoadBooking(ctx, &fakeReads{acc: bad}, accID, now, policy())

		assert.True(t, errs.Is(err, errs.ErrAvailabilityDataCorrupted), "got %v", err)
	})
}

func TestBooking_ValidateUsesVacantFloorPolicy(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 20, 10, 0, 0, 0, brt)
	p := policy()
	p.VacantFloor = availability.MustTimeOfDay(15, 0)

	b, err := shared.LoadBooking(ctx, &fakeReads{acc: snapshot()}, accID, now, p)
	require.NoError(t, err)

	_, err = b.Validate(builder.NewReservationBuilder().BuildStay())
	require.True(t, errs.Is(err, availability.ErrTimeUnavailable), "got %v", err)
	ve, _ := availability.AsValidationError(err)
	assert.Equal(t, availability.ReasonVacantFloor, ve.TimeReason)

	stay := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CheckInTime = availability.MustTimeOfDay(15, 0)
	}).BuildStay()
	quote, err := b.Validate(stay)
	require.NoError(t, err)
	assert.Equal(t, "600.00", quote.TotalPrice.String())
}

func TestReservationPayload(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	payload, err := shared.ReservationPayload(res)
	require.NoError(t, err)

	var got shared.ReservationNotification
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, res.ID(), got.ReservationID)
	assert.Equal(t, "2024-07-01", got.CheckInDate)
	assert.Equal(t, "14:00", got.CheckInTime)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "600.00", got.TotalPrice)
}
