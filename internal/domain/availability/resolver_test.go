//go:build unit

package availability_test

import (
	"math"
	"testing"
	"time"

	"pousada-booking/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brt = time.FixedZone("BRT", -3*60*60)

func at(t *testing.T, day, hhmm string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", day+" "+hhmm, brt)
	require.NoError(t, err)
	return ts
}

func tod(t *testing.T, s string) availability.TimeOfDay {
	t.Helper()
	v, err := availability.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func option(t *testing.T, w availability.TimeWindow, s string) availability.TimeOption {
	t.Helper()
	opt, ok := w.Option(tod(t, s))
	require.True(t, ok, "no option for %s", s)
	return opt
}

func TestComputeEarliestCheckIn_TodayRoundsUpToNextSlot(t *testing.T) {
	now := at(t, "2024-06-10", "09:07:00")

	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), nil, 1, now)
	require.NoError(t, err)

	assert.Equal(t, "09:30", w.Earliest.String())
	assert.Equal(t, availability.ReasonPast, w.EarliestReason)
	assert.False(t, w.Exhausted)

	assert.Equal(t, availability.TimeOption{Time: tod(t, "09:00"), Blocked: true, Reason: availability.ReasonPast}, option(t, w, "09:00"))
	assert.Equal(t, availability.ReasonPast, option(t, w, "07:30").Reason)
	assert.False(t, option(t, w, "09:30").Blocked)
	assert.False(t, option(t, w, "23:30").Blocked)
}

func TestComputeEarliestCheckIn_NextSlotCountsSeconds(t *testing.T) {
	tests := []struct {
		now  string
		want string
	}{
		{now: "09:00:00", want: "09:00"},
		{now: "09:00:30", want: "09:30"},
		{now: "09:29:59", want: "09:30"},
		{now: "09:30:00", want: "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), nil, 1, at(t, "2024-06-10", tt.now))
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Earliest.String())
		})
	}
}

func TestComputeEarliestCheckIn_CheckoutBuffer(t *testing.T) {
	ranges := []availability.BlockedRange{reservationRange(t, "2024-06-07", "2024-06-10", "11:00")}

	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), ranges, 1.5, at(t, "2024-06-01", "10:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "12:30", w.Earliest.String())
	assert.Equal(t, availability.ReasonCheckoutBuffer, w.EarliestReason)
	require.NotNil(t, w.LatestCheckout)
	assert.Equal(t, "11:00", w.LatestCheckout.String())

	assert.Equal(t, availability.TimeOption{Time: tod(t, "11:00"), Blocked: true, Reason: availability.ReasonCheckoutBuffer}, option(t, w, "11:00"))
	assert.Equal(t, availability.ReasonCheckoutBuffer, option(t, w, "07:00").Reason)
	assert.False(t, option(t, w, "12:30").Blocked)
}

func TestComputeEarliestCheckIn_VacantFloor(t *testing.T) {
	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), nil, 1, at(t, "2024-06-01", "10:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "08:00", w.Earliest.String())
	assert.Equal(t, availability.ReasonVacantFloor, w.EarliestReason)
	assert.Nil(t, w.LatestCheckout)
	assert.Equal(t, availability.ReasonVacantFloor, option(t, w, "07:30").Reason)
	assert.False(t, option(t, w, "08:00").Blocked)
}

func TestComputeEarliestCheckIn_EarlyCheckoutStillRespectsFloor(t *testing.T) {
	ranges := []availability.BlockedRange{reservationRange(t, "2024-06-08", "2024-06-10", "06:00")}

	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), ranges, 1, at(t, "2024-06-01", "10:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "08:00", w.Earliest.String())
	assert.Equal(t, availability.ReasonVacantFloor, w.EarliestReason)
	assert.Equal(t, availability.ReasonCheckoutBuffer, option(t, w, "06:30").Reason)
	assert.Equal(t, availability.ReasonVacantFloor, option(t, w, "07:30").Reason)
}

func TestComputeEarliestCheckIn_UsesLatestCheckoutOfTheDay(t *testing.T) {
	ranges := []availability.BlockedRange{
		reservationRange(t, "2024-06-08", "2024-06-10", "10:00"),
		reservationRange(t, "2024-06-09", "2024-06-10", "12:00"),
		reservationRange(t, "2024-06-10", "2024-06-12", "18:00"),
		manualRange(t, "2024-06-05", "2024-06-10"),
	}

	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), ranges, 1, at(t, "2024-06-01", "10:00:00"))
	require.NoError(t, err)

	require.NotNil(t, w.LatestCheckout)
	assert.Equal(t, "12:00", w.LatestCheckout.String())
	assert.Equal(t, "13:00", w.Earliest.String())
}

func TestComputeEarliestCheckIn_ReadyTimeWrapsPastMidnight(t *testing.T) {
	ready, err := availability.CheckoutReadyAt(tod(t, "23:30"), 1)
	require.NoError(t, err)
	assert.Equal(t, "00:30", ready.String())

	ranges := []availability.BlockedRange{reservationRange(t, "2024-06-08", "2024-06-10", "23:30")}
	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), ranges, 1, at(t, "2024-06-01", "10:00:00"),
		availability.WithVacantFloor(tod(t, "00:00")))
	require.NoError(t, err)

	assert.Equal(t, "00:30", w.Earliest.String())
	assert.Equal(t, availability.ReasonCheckoutBuffer, option(t, w, "00:00").Reason)
	assert.False(t, option(t, w, "23:30").Blocked)
}

func TestComputeEarliestCheckIn_ExhaustedDay(t *testing.T) {
	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), nil, 1, at(t, "2024-06-10", "23:31:00"))
	require.NoError(t, err)

	assert.True(t, w.Exhausted)
	assert.Equal(t, availability.ReasonPast, w.EarliestReason)
	for _, opt := range w.Options {
		assert.True(t, opt.Blocked, "option %s should be blocked", opt.Time)
		assert.Equal(t, availability.ReasonPast, opt.Reason)
	}
}

func TestComputeEarliestCheckIn_MonotonicInBuffer(t *testing.T) {
	ranges := []availability.BlockedRange{reservationRange(t, "2024-06-08", "2024-06-10", "11:00")}
	now := at(t, "2024-06-01", "10:00:00")

	prev := availability.MustTimeOfDay(0, 0)
	for _, buffer := range []float64{0, 0.25, 0.5, 1, 1.5, 2, 3.75, 6} {
		w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), ranges, buffer, now)
		require.NoError(t, err)
		assert.False(t, w.Earliest.Before(prev), "buffer %v moved earliest back to %s", buffer, w.Earliest)
		prev = w.Earliest
	}
}

func TestComputeEarliestCheckIn_RejectsInvalidBuffer(t *testing.T) {
	for _, buffer := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), nil, buffer, at(t, "2024-06-01", "10:00:00"))
		assert.ErrorIs(t, err, availability.ErrInvalidInput, "buffer %v", buffer)
	}
}

func TestBufferMinutes(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{hours: 0, want: 0},
		{hours: 1.5, want: 90},
		{hours: 0.01, want: 1},
		{hours: 0.008, want: 0},
		{hours: 2.25, want: 135},
	}

	for _, tt := range tests {
		got, err := availability.BufferMinutes(tt.hours)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "hours %v", tt.hours)
	}
}

func TestTimeWindow_OptionRejectsOffGridTimes(t *testing.T) {
	w, err := availability.ComputeEarliestCheckIn(date(t, "2024-06-10"), nil, 1, at(t, "2024-06-01", "10:00:00"))
	require.NoError(t, err)

	require.Len(t, w.Options, availability.SlotsPerDay)
	_, ok := w.Option(tod(t, "09:15"))
	assert.False(t, ok)
}
