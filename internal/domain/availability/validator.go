package availability

import (
	"fmt"

	"pousada-booking/internal/domain/accommodation"
	"pousada-booking/internal/domain/money"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ProposedStay is a guest's requested booking. It is never persisted here.
type ProposedStay struct {
	AccommodationID uuid.UUID
	CheckInDate     civil.Date
	CheckInTime     TimeOfDay
	CheckOutDate    civil.Date
	CheckOutTime    TimeOfDay
	GuestCount      int
}

// Nights counts nights between check-in and check-out dates.
func (s ProposedStay) Nights() int {
	return s.CheckOutDate.DaysSince(s.CheckInDate)
}

type Quote struct {
	Nights        int
	PricePerNight money.Money
	TotalPrice    money.Money
}

// ValidateStay accepts or rejects stay against a snapshot-derived availability
// and the check-in window for stay.CheckInDate. Checks run in a fixed order and
// stop at the first failure. The result is advisory: concurrent bookings are
// arbitrated by the data store, not here.
func ValidateStay(
	stay ProposedStay,
	acc *accommodation.Accommodation,
	av Availability,
	window TimeWindow,
) (Quote, error) {
	if acc == nil || acc.ID() != stay.AccommodationID {
		return Quote{}, NewValidationError(KindNotFound, "accommodation not found")
	}

	if !acc.Admits(stay.GuestCount) {
		return Quote{}, NewValidationError(KindCapacityExceeded,
			fmt.Sprintf("guest count must be between 1 and %d, got %d", acc.Capacity(), stay.GuestCount))
	}

	if !stay.CheckInDate.IsValid() || !stay.CheckOutDate.IsValid() {
		return Quote{}, NewValidationError(KindInvalidRange, "check-in and check-out must be calendar dates")
	}
	nights := stay.Nights()
	if nights < 1 {
		return Quote{}, NewValidationError(KindInvalidRange, "check-out must be at least one day after check-in")
	}

	if av.IsFullyBlocked(stay.CheckInDate) {
		return Quote{}, NewValidationError(KindDateUnavailable,
			fmt.Sprintf("check-in date %s is unavailable", stay.CheckInDate)).withDate(stay.CheckInDate)
	}

	if err := checkInTimeAllowed(stay, window); err != nil {
		return Quote{}, err
	}

	for d := stay.CheckInDate; d.Before(stay.CheckOutDate); d = d.AddDays(1) {
		if av.IsFullyBlocked(d) {
			return Quote{}, NewValidationError(KindDateUnavailable,
				fmt.Sprintf("the night of %s is already occupied", d)).withDate(d)
		}
	}

	price := acc.PricePerNight()
	return Quote{
		Nights:        nights,
		PricePerNight: price,
		TotalPrice:    price.Times(nights),
	}, nil
}

func checkInTimeAllowed(stay ProposedStay, window TimeWindow) error {
	if window.Date != stay.CheckInDate {
		return NewValidationError(KindTimeUnavailable,
			fmt.Sprintf("check-in times were resolved for %s, not %s", window.Date, stay.CheckInDate)).withDate(stay.CheckInDate)
	}

	opt, ok := window.Option(stay.CheckInTime)
	if !ok {
		return NewValidationError(KindTimeUnavailable,
			fmt.Sprintf("check-in time %s is not a half-hour option", stay.CheckInTime)).withDate(stay.CheckInDate)
	}
	if !opt.Blocked {
		return nil
	}

	reason := fmt.Sprintf("check-in at %s is unavailable: %s", stay.CheckInTime, opt.Reason.Describe())
	if opt.Reason != ReasonPast {
		reason += fmt.Sprintf("; earliest check-in is %s", window.Earliest)
	}
	ve := NewValidationError(KindTimeUnavailable, reason).withDate(stay.CheckInDate)
	ve.TimeReason = opt.Reason
	return ve
}
