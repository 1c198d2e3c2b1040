package availability

import (
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// DefaultVacantFloor is the earliest check-in on a day with no prior checkout.
var DefaultVacantFloor = MustTimeOfDay(8, 0)

// BlockReason tells why a check-in option is not offered.
type BlockReason string

const (
	ReasonNone           BlockReason = ""
	ReasonPast           BlockReason = "past"
	ReasonCheckoutBuffer BlockReason = "checkout_buffer"
	ReasonVacantFloor    BlockReason = "vacant_floor"
)

func (r BlockReason) Describe() string {
	switch r {
	case ReasonPast:
		return "this time has already passed"
	case ReasonCheckoutBuffer:
		return "the unit is being cleaned after the previous checkout"
	case ReasonVacantFloor:
		return "check-in starts later in the day"
	default:
		return ""
	}
}

type TimeOption struct {
	Time    TimeOfDay
	Blocked bool
	Reason  BlockReason
}

// TimeWindow is the check-in schedule for a single day.
type TimeWindow struct {
	Date     civil.Date
	Earliest TimeOfDay
	// EarliestReason names the constraint that set Earliest.
	EarliestReason BlockReason
	// LatestCheckout is the last same-day checkout, if any.
	LatestCheckout *TimeOfDay
	// Exhausted is set when Date is today and every slot has already passed.
	Exhausted bool
	Options   []TimeOption
}

// Option looks up the option for t. Times off the half-hour grid are not options.
func (w TimeWindow) Option(t TimeOfDay) (TimeOption, bool) {
	if !t.IsSlot() {
		return TimeOption{}, false
	}
	i := t.MinuteOfDay() / SlotMinutes
	if i >= len(w.Options) {
		return TimeOption{}, false
	}
	return w.Options[i], true
}

type resolverConfig struct {
	vacantFloor TimeOfDay
}

type ResolverOption func(*resolverConfig)

func WithVacantFloor(floor TimeOfDay) ResolverOption {
	return func(c *resolverConfig) {
		c.vacantFloor = floor
	}
}

// BufferMinutes converts fractional buffer hours to whole minutes, rounding to
// the nearest minute.
func BufferMinutes(bufferHours float64) (int, error) {
	if math.IsNaN(bufferHours) || math.IsInf(bufferHours, 0) || bufferHours < 0 {
		return 0, NewValidationError(KindInvalidInput, fmt.Sprintf("cleaning buffer must be a non-negative number of hours, got %v", bufferHours))
	}
	return int(math.Round(bufferHours * 60)), nil
}

// CheckoutReadyAt is the first moment a unit is ready after a checkout at
// checkout, wrapping past midnight without changing the date.
func CheckoutReadyAt(checkout TimeOfDay, bufferHours float64) (TimeOfDay, error) {
	minutes, err := BufferMinutes(bufferHours)
	if err != nil {
		return TimeOfDay{}, err
	}
	return checkout.AddMinutes(minutes), nil
}

// ComputeEarliestCheckIn resolves the earliest permitted check-in time on date
// and flags each half-hour option. now supplies both the current day and the
// wall-clock time; pass it in the property's location.
func ComputeEarliestCheckIn(
	date civil.Date,
	ranges []BlockedRange,
	bufferHours float64,
	now time.Time,
	opts ...ResolverOption,
) (TimeWindow, error) {
	cfg := resolverConfig{vacantFloor: DefaultVacantFloor}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !date.IsValid() {
		return TimeWindow{}, NewValidationError(KindInvalidInput, "check-in date is not a calendar date")
	}

	earliest := cfg.vacantFloor
	earliestReason := ReasonVacantFloor

	var latestCheckout *TimeOfDay
	for _, r := range ranges {
		if !r.HasCheckout() || r.EndDate != date {
			continue
		}
		if latestCheckout == nil || r.EndTime.After(*latestCheckout) {
			t := *r.EndTime
			latestCheckout = &t
		}
	}

	var readyAt *TimeOfDay
	if latestCheckout != nil {
		ready, err := CheckoutReadyAt(*latestCheckout, bufferHours)
		if err != nil {
			return TimeWindow{}, err
		}
		readyAt = &ready
		if ready.After(earliest) {
			earliest = ready
			earliestReason = ReasonCheckoutBuffer
		}
	} else if _, err := BufferMinutes(bufferHours); err != nil {
		return TimeWindow{}, err
	}

	isToday := civil.DateOf(now) == date
	var nextSlot *TimeOfDay
	exhausted := false
	if isToday {
		slot, ok := nextSlotAtOrAfter(now)
		if ok {
			nextSlot = &slot
			if slot.After(earliest) {
				earliest = slot
				earliestReason = ReasonPast
			}
		} else {
			exhausted = true
		}
	}

	slots := DaySlots()
	options := make([]TimeOption, len(slots))
	for i, slot := range slots {
		opt := TimeOption{Time: slot}
		switch {
		case exhausted:
			opt.Blocked, opt.Reason = true, ReasonPast
		case !slot.Before(earliest):
		case nextSlot != nil && slot.Before(*nextSlot):
			opt.Blocked, opt.Reason = true, ReasonPast
		case readyAt != nil && slot.Before(*readyAt):
			opt.Blocked, opt.Reason = true, ReasonCheckoutBuffer
		default:
			opt.Blocked, opt.Reason = true, ReasonVacantFloor
		}
		options[i] = opt
	}

	if exhausted {
		earliestReason = ReasonPast
	}

	return TimeWindow{
		Date:           date,
		Earliest:       earliest,
		EarliestReason: earliestReason,
		LatestCheckout: latestCheckout,
		Exhausted:      exhausted,
		Options:        options,
	}, nil
}
