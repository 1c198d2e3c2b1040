//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/pkg/clock"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/queries"
	"pousada-booking/internal/usecase/shared"
	"pousada-booking/tests/common/builder"
	"pousada-booking/tests/common/uowtest"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var brt = time.FixedZone("BRT", -3*60*60)

func strPtr(s string) *string { return &s }

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newAvailabilityQueries(uow *uowtest.UnitOfWork, now time.Time) queries.AvailabilityQueries {
	policy := shared.Policy{VacantFloor: availability.DefaultVacantFloor, Location: brt}
	return queries.NewAvailabilityQueries(uow, clock.NewMockClock(now), policy)
}

func TestAvailabilityQueries_Calendar(t *testing.T) {
	ctx := context.Background()
	acc := builder.NewAccommodationBuilder()
	// Late evening of June 1 at the property
	now := time.Date(2024, time.June, 2, 1, 30, 0, 0, time.UTC)

	t.Run("lists blocked days from today", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(acc.BuildSnapshot(), nil)
		uow.Reads.On("BlockedRanges", mock.Anything, acc.ID, day("2024-06-01")).Return([]availability.RawBlockedRange{
			{AccommodationID: acc.ID, StartDate: "2024-06-03", EndDate: "2024-06-05", EndTime: strPtr("11:00:00")},
			{AccommodationID: acc.ID, StartDate: "2024-06-10", EndDate: "2024-06-11"},
		}, nil)

		view, err := newAvailabilityQueries(uow, now).Calendar(ctx, acc.ID)
		require.NoError(t, err)

		want := &queries.CalendarView{
			AccommodationID:  acc.ID,
			Today:            day("2024-06-01"),
			FullyBlocked:     []civil.Date{day("2024-06-03"), day("2024-06-04"), day("2024-06-10")},
			PartiallyBlocked: []civil.Date{day("2024-06-05")},
		}
		if diff := cmp.Diff(want, view); diff != "" {
			t.Errorf("Calendar() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, uow.ReadOnlyCalls)
		uow.AssertExpectations(t)
	})

	t.Run("unknown accommodation", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(nil, nil)

		_, err := newAvailabilityQueries(uow, now).Calendar(ctx, acc.ID)
		assert.True(t, errs.Is(err, errs.ErrAccommodationNotFound), "got %v", err)
		uow.Reads.AssertNotCalled(t, "BlockedRanges", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(nil, errors.New("connection reset"))

		_, err := newAvailabilityQueries(uow, now).Calendar(ctx, acc.ID)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
	})
}

func TestAvailabilityQueries_CheckInTimes(t *testing.T) {
	ctx := context.Background()
	acc := builder.NewAccommodationBuilder().WithBuffer(5)
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, brt)

	uow := uowtest.New()
	uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(acc.BuildSnapshot(), nil)
	uow.Reads.On("BlockedRanges", mock.Anything, acc.ID, day("2024-06-01")).Return([]availability.RawBlockedRange{
		{AccommodationID: acc.ID, StartDate: "2024-06-03", EndDate: "2024-06-05", EndTime: strPtr("11:00:00")},
	}, nil)
	q := newAvailabilityQueries(uow, now)

	t.Run("checkout day waits for the cleaning buffer", func(t *testing.T) {
		view, err := q.CheckInTimes(ctx, acc.ID, day("2024-06-05"))
		require.NoError(t, err)

		assert.False(t, view.DateBlocked)
		assert.Equal(t, "16:00", view.Window.Earliest.String())
		assert.Equal(t, availability.ReasonCheckoutBuffer, view.Window.EarliestReason)
	})

	t.Run("vacant day opens at the floor", func(t *testing.T) {
		view, err := q.CheckInTimes(ctx, acc.ID, day("2024-06-20"))
		require.NoError(t, err)

		assert.False(t, view.DateBlocked)
		assert.Equal(t, availability.DefaultVacantFloor, view.Window.Earliest)
	})

	t.Run("occupied day is flagged", func(t *testing.T) {
		view, err := q.CheckInTimes(ctx, acc.ID, day("2024-06-04"))
		require.NoError(t, err)

		assert.True(t, view.DateBlocked)
	})
}

func TestAvailabilityQueries_Quote(t *testing.T) {
	ctx := context.Background()
	acc := builder.NewAccommodationBuilder()
	res := builder.NewReservationBuilder()
	now := res.Now

	t.Run("quotes a free stay", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(acc.BuildSnapshot(), nil)
		uow.Reads.On("BlockedRanges", mock.Anything, acc.ID, mock.Anything).Return(nil, nil)

		view, err := newAvailabilityQueries(uow, now).Quote(ctx, res.BuildStay())
		require.NoError(t, err)

		assert.Equal(t, 3, view.Quote.Nights)
		assert.Equal(t, "600.00", view.Quote.TotalPrice.String())
		assert.Equal(t, res.BuildStay(), view.Stay)
	})

	t.Run("too many guests", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(acc.BuildSnapshot(), nil)
		uow.Reads.On("BlockedRanges", mock.Anything, acc.ID, mock.Anything).Return(nil, nil)

		stay := res.BuildStay()
		stay.GuestCount = 5
		_, err := newAvailabilityQueries(uow, now).Quote(ctx, stay)

		ve, ok := availability.AsValidationError(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, availability.KindCapacityExceeded, ve.Kind)
	})

	t.Run("unknown accommodation", func(t *testing.T) {
		uow := uowtest.New()
		uow.Reads.On("AccommodationByID", mock.Anything, acc.ID).Return(nil, nil)

		_, err := newAvailabilityQueries(uow, now).Quote(ctx, res.BuildStay())
		assert.True(t, errs.Is(err, availability.ErrNotFound), "got %v", err)
	})
}
