package reservation

import (
	"errors"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/money"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("reservation status transition not allowed")
	ErrQuoteMismatch     = errors.New("quote does not match the stay")
)

type Reservation struct {
	id              uuid.UUID
	accommodationID uuid.UUID
	guest           Guest
	checkInDate     civil.Date
	checkInTime     availability.TimeOfDay
	checkOutDate    civil.Date
	checkOutTime    availability.TimeOfDay
	guestCount      int
	status          Status
	totalPrice      money.Money
	note            Note
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation records an accepted stay as pending. quote must come from
// availability.ValidateStay for the same stay.
func NewReservation(
	stay availability.ProposedStay,
	quote availability.Quote,
	guest Guest,
	note Note,
	now time.Time,
) (*Reservation, error) {
	if quote.Nights != stay.Nights() {
		return nil, ErrQuoteMismatch
	}

	return &Reservation{
		id:              uuid.New(),
		accommodationID: stay.AccommodationID,
		guest:           guest,
		checkInDate:     stay.CheckInDate,
		checkInTime:     stay.CheckInTime,
		checkOutDate:    stay.CheckOutDate,
		checkOutTime:    stay.CheckOutTime,
		guestCount:      stay.GuestCount,
		status:          StatusPending,
		totalPrice:      quote.TotalPrice,
		note:            note,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id, accommodationID uuid.UUID,
	guest Guest,
	checkInDate civil.Date,
	checkInTime availability.TimeOfDay,
	checkOutDate civil.Date,
	checkOutTime availability.TimeOfDay,
	guestCount int,
	status Status,
	totalPrice money.Money,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		accommodationID: accommodationID,
		guest:           guest,
		checkInDate:     checkInDate,
		checkInTime:     checkInTime,
		checkOutDate:    checkOutDate,
		checkOutTime:    checkOutTime,
		guestCount:      guestCount,
		status:          status,
		totalPrice:      totalPrice,
		note:            note,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo moves the reservation along its lifecycle.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) Nights() int {
	return r.checkOutDate.DaysSince(r.checkInDate)
}

// BlockedRange is the interval this reservation occupies while active.
func (r *Reservation) BlockedRange() availability.BlockedRange {
	checkout := r.checkOutTime
	return availability.BlockedRange{
		AccommodationID: r.accommodationID,
		StartDate:       r.checkInDate,
		EndDate:         r.checkOutDate,
		EndTime:         &checkout,
	}
}

func (r *Reservation) ID() uuid.UUID                        { return r.id }
func (r *Reservation) AccommodationID() uuid.UUID           { return r.accommodationID }
func (r *Reservation) Guest() Guest                         { return r.guest }
func (r *Reservation) CheckInDate() civil.Date              { return r.checkInDate }
func (r *Reservation) CheckInTime() availability.TimeOfDay  { return r.checkInTime }
func (r *Reservation) CheckOutDate() civil.Date             { return r.checkOutDate }
func (r *Reservation) CheckOutTime() availability.TimeOfDay { return r.checkOutTime }
func (r *Reservation) GuestCount() int                      { return r.guestCount }
func (r *Reservation) Status() Status                       { return r.status }
func (r *Reservation) TotalPrice() money.Money              { return r.totalPrice }
func (r *Reservation) Note() Note                           { return r.note }
func (r *Reservation) CreatedAt() time.Time                 { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                 { return r.updatedAt }
