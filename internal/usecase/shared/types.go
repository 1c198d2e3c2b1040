package shared

import (
	"time"

	"pousada-booking/internal/domain/accommodation"
	"pousada-booking/internal/domain/availability"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// AccommodationSnapshot is the booking-relevant part of an accommodation row.
type AccommodationSnapshot struct {
	ID                  uuid.UUID
	Name                string
	Capacity            int
	PricePerNightCents  int64
	CleaningBufferHours *float64
}

func (s *AccommodationSnapshot) ToDomain() (*accommodation.Accommodation, error) {
	return accommodation.NewAccommodation(s.ID, s.Name, s.Capacity, s.PricePerNightCents, s.CleaningBufferHours)
}

// Policy holds property-wide booking settings.
type Policy struct {
	VacantFloor availability.TimeOfDay
	Location    *time.Location
}

func DefaultPolicy() Policy {
	return Policy{VacantFloor: availability.DefaultVacantFloor, Location: time.UTC}
}

// Today is the calendar day at the property for the instant now.
func (p Policy) Today(now time.Time) civil.Date {
	if p.Location != nil {
		now = now.In(p.Location)
	}
	return civil.DateOf(now)
}

// Notification kinds written to the outbox.
const (
	NotificationReservationCreated       = "reservation_created"
	NotificationReservationStatusChanged = "reservation_status_changed"
)

type ReservationNotification struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	AccommodationID uuid.UUID `json:"accommodation_id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	CheckInDate     string    `json:"check_in_date"`
	CheckInTime     string    `json:"check_in_time"`
	CheckOutDate    string    `json:"check_out_date"`
	CheckOutTime    string    `json:"check_out_time"`
	GuestCount      int       `json:"guest_count"`
	Status          string    `json:"status"`
	TotalPrice      string    `json:"total_price"`
}
