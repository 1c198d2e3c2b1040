package queries

import (
	"time"

	"pousada-booking/internal/domain/availability"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ReservationView is the admin read model of a reservation.
type ReservationView struct {
	ID                uuid.UUID
	AccommodationID   uuid.UUID
	AccommodationName string
	GuestName         string
	GuestEmail        string
	GuestPhone        string
	CheckInDate       civil.Date
	CheckInTime       availability.TimeOfDay
	CheckOutDate      civil.Date
	CheckOutTime      availability.TimeOfDay
	GuestCount        int
	Status            string
	TotalPriceCents   int64
	Note              *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ReservationFilter struct {
	AccommodationID *uuid.UUID
	Status          *string
	// From keeps reservations whose checkout is on or after this day.
	From   *civil.Date
	Limit  int
	Offset int
}

type ManualBlockView struct {
	ID              uuid.UUID
	AccommodationID uuid.UUID
	StartDate       civil.Date
	EndDate         civil.Date
	Reason          string
	CreatedAt       time.Time
}

// CalendarView lists the days a guest cannot pick, from today onwards.
type CalendarView struct {
	AccommodationID  uuid.UUID
	Today            civil.Date
	FullyBlocked     []civil.Date
	PartiallyBlocked []civil.Date
}

type CheckInTimesView struct {
	AccommodationID uuid.UUID
	Date            civil.Date
	// DateBlocked is set when no stay can start on Date at all.
	DateBlocked bool
	Window      availability.TimeWindow
}

type QuoteView struct {
	Stay  availability.ProposedStay
	Quote availability.Quote
}
