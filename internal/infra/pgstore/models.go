package pgstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Accommodation struct {
	ID                  uuid.UUID
	Name                string
	Capacity            int32
	PricePerNight       pgtype.Numeric
	CleaningBufferHours pgtype.Numeric
}

// BlockedRangeRow is a range as stored. Dates and time are read back as text
// so that parsing stays in the domain.
type BlockedRangeRow struct {
	AccommodationID uuid.UUID
	StartDate       string
	EndDate         string
	EndTime         pgtype.Text
	IsManual        bool
}

type Reservation struct {
	ID                uuid.UUID
	AccommodationID   uuid.UUID
	AccommodationName string
	GuestName         string
	GuestEmail        string
	GuestPhone        string
	CheckInDate       pgtype.Date
	CheckInTime       pgtype.Time
	CheckOutDate      pgtype.Date
	CheckOutTime      pgtype.Time
	GuestCount        int32
	Status            string
	TotalPrice        pgtype.Numeric
	Note              pgtype.Text
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type ManualBlock struct {
	ID              uuid.UUID
	AccommodationID uuid.UUID
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	Reason          string
	CreatedAt       pgtype.Timestamptz
}
