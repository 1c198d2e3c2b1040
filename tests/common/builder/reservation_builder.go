//go:build unit || e2e

package builder

import (
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/domain/money"
	domreservation "pousada-booking/internal/domain/reservation"
	reqdto "pousada-booking/internal/handler/dto/request"
	"pousada-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type ReservationBuilder struct {
	AccommodationID uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckInDate     civil.Date
	CheckInTime     availability.TimeOfDay
	CheckOutDate    civil.Date
	CheckOutTime    availability.TimeOfDay
	GuestCount      int
	PricePerNight   int64
	Note            string
	Now             time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		AccommodationID: uuid.MustParse("0f6c3e1a-7d2b-4c8e-9a41-3b5d2e7f8a90"),
		GuestName:       "Maria Souza",
		GuestEmail:      "maria@example.com",
		GuestPhone:      "+5511987654321",
		CheckInDate:     civil.Date{Year: 2024, Month: time.July, Day: 1},
		CheckInTime:     availability.MustTimeOfDay(14, 0),
		CheckOutDate:    civil.Date{Year: 2024, Month: time.July, Day: 4},
		CheckOutTime:    availability.MustTimeOfDay(11, 0),
		GuestCount:      2,
		PricePerNight:   20000,
		Note:            "Chegamos de carro",
		Now:             time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithGuestEmail(email string) *ReservationBuilder {
	b.GuestEmail = email
	return b
}

func (b *ReservationBuilder) WithGuestPhone(phone string) *ReservationBuilder {
	b.GuestPhone = phone
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut civil.Date) *ReservationBuilder {
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	return b
}

// Build methods
func (b *ReservationBuilder) BuildStay() availability.ProposedStay {
	return availability.ProposedStay{
		AccommodationID: b.AccommodationID,
		CheckInDate:     b.CheckInDate,
		CheckInTime:     b.CheckInTime,
		CheckOutDate:    b.CheckOutDate,
		CheckOutTime:    b.CheckOutTime,
		GuestCount:      b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildQuote() availability.Quote {
	price, _ := money.NewMoney(b.PricePerNight)
	nights := b.CheckOutDate.DaysSince(b.CheckInDate)
	return availability.Quote{
		Nights:        nights,
		PricePerNight: price,
		TotalPrice:    price.Times(nights),
	}
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	guest, err := domreservation.NewGuest(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	note, err := domreservation.NewNote(b.Note)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(b.BuildStay(), b.BuildQuote(), guest, note, b.Now)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		AccommodationID: b.AccommodationID,
		StayRequest:     b.BuildStayRequestDTO(),
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		Note:            b.Note,
	}
}

func (b *ReservationBuilder) BuildStayRequestDTO() reqdto.StayRequest {
	return reqdto.StayRequest{
		CheckInDate:  b.CheckInDate.String(),
		CheckInTime:  b.CheckInTime.String(),
		CheckOutDate: b.CheckOutDate.String(),
		CheckOutTime: b.CheckOutTime.String(),
		GuestCount:   b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildView(id uuid.UUID, status string) *queries.ReservationView {
	quote := b.BuildQuote()
	var note *string
	if b.Note != "" {
		n := b.Note
		note = &n
	}
	return &queries.ReservationView{
		ID:                id,
		AccommodationID:   b.AccommodationID,
		AccommodationName: "Chalé Beira-Mar",
		GuestName:         b.GuestName,
		GuestEmail:        b.GuestEmail,
		GuestPhone:        b.GuestPhone,
		CheckInDate:       b.CheckInDate,
		CheckInTime:       b.CheckInTime,
		CheckOutDate:      b.CheckOutDate,
		CheckOutTime:      b.CheckOutTime,
		GuestCount:        b.GuestCount,
		Status:            status,
		TotalPriceCents:   quote.TotalPrice.Cents(),
		Note:              note,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}
