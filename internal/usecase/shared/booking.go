package shared

import (
	"context"
	"encoding/json"
	"time"

	"pousada-booking/internal/domain/accommodation"
	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/reservation"
	"pousada-booking/internal/infra"
	"pousada-booking/internal/pkg/errs"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Booking is one accommodation's availability as of now. It is computed from a
// single snapshot and discarded after the request.
type Booking struct {
	// Accommodation is nil when the id does not exist.
	Accommodation *accommodation.Accommodation
	Ranges        []availability.BlockedRange
	Availability  availability.Availability
	Now           time.Time
	policy        Policy
}

// LoadBooking reads the accommodation and its blocked ranges and derives the
// calendar. Store failures are marked ErrStoreUnavailable, unreadable rows
// ErrAvailabilityDataCorrupted.
func LoadBooking(ctx context.Context, reads CommandReads, accommodationID uuid.UUID, now time.Time, policy Policy) (*Booking, error) {
	if policy.Location != nil {
		now = now.In(policy.Location)
	}
	today := policy.Today(now)

	snap, err := reads.AccommodationByID(ctx, accommodationID)
	if err != nil {
		if infra.IsKind(err, infra.KindCorruptRow) {
			return nil, errs.Mark(errs.WithDetail(err, accommodationID.String()), errs.ErrAvailabilityDataCorrupted)
		}
		return nil, errs.Mark(errs.Wrap(err, "load accommodation"), errs.ErrStoreUnavailable)
	}

	b := &Booking{Now: now, policy: policy}
	if snap == nil {
		av, err := availability.ComputeAvailability(nil, today)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrAvailabilityDataCorrupted)
		}
		b.Availability = av
		return b, nil
	}

	acc, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(errs.WithDetail(errs.Wrap(err, "accommodation row"), accommodationID.String()), errs.ErrAvailabilityDataCorrupted)
	}
	b.Accommodation = acc

	raws, err := reads.BlockedRanges(ctx, accommodationID, today)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load blocked ranges"), errs.ErrStoreUnavailable)
	}
	ranges, err := availability.ParseBlockedRanges(raws)
	if err != nil {
		return nil, errs.Mark(errs.WithDetail(err, accommodationID.String()), errs.ErrAvailabilityDataCorrupted)
	}
	av, err := availability.ComputeAvailability(ranges, today)
	if err != nil {
		return nil, errs.Mark(errs.WithDetail(err, accommodationID.String()), errs.ErrAvailabilityDataCorrupted)
	}

	b.Ranges = ranges
	b.Availability = av
	return b, nil
}

func (b *Booking) Exists() bool {
	return b.Accommodation != nil
}

func (b *Booking) Today() civil.Date {
	return b.Availability.Today
}

// Window resolves the check-in options for date.
func (b *Booking) Window(date civil.Date) (availability.TimeWindow, error) {
	buffer := accommodation.DefaultCleaningBufferHours
	if b.Accommodation != nil {
		buffer = b.Accommodation.CleaningBufferHours()
	}
	return availability.ComputeEarliestCheckIn(date, b.Ranges, buffer, b.Now,
		availability.WithVacantFloor(b.policy.VacantFloor))
}

// Validate runs the stay validator against this snapshot.
func (b *Booking) Validate(stay availability.ProposedStay) (availability.Quote, error) {
	if b.Accommodation == nil {
		return availability.ValidateStay(stay, nil, b.Availability, availability.TimeWindow{})
	}
	window, err := b.Window(stay.CheckInDate)
	if err != nil {
		return availability.Quote{}, err
	}
	return availability.ValidateStay(stay, b.Accommodation, b.Availability, window)
}

func ReservationPayload(res *reservation.Reservation) ([]byte, error) {
	g := res.Guest()
	return json.Marshal(ReservationNotification{
		ReservationID:   res.ID(),
		AccommodationID: res.AccommodationID(),
		GuestName:       g.Name(),
		GuestEmail:      g.Email(),
		GuestPhone:      g.Phone(),
		CheckInDate:     res.CheckInDate().String(),
		CheckInTime:     res.CheckInTime().String(),
		CheckOutDate:    res.CheckOutDate().String(),
		CheckOutTime:    res.CheckOutTime().String(),
		GuestCount:      res.GuestCount(),
		Status:          res.Status().String(),
		TotalPrice:      res.TotalPrice().String(),
	})
}
