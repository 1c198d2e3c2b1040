package response

import (
	"time"

	"pousada-booking/internal/domain/money"
	"pousada-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	AccommodationID   uuid.UUID `json:"accommodationId"`
	AccommodationName string    `json:"accommodationName"`
	GuestName         string    `json:"guestName"`
	GuestEmail        string    `json:"guestEmail"`
	GuestPhone        string    `json:"guestPhone"`
	CheckInDate       string    `json:"checkInDate"`
	CheckInTime       string    `json:"checkInTime"`
	CheckOutDate      string    `json:"checkOutDate"`
	CheckOutTime      string    `json:"checkOutTime"`
	GuestCount        int       `json:"guestCount"`
	Status            string    `json:"status"`
	TotalPrice        string    `json:"totalPrice"`
	TotalPriceCents   int64     `json:"totalPriceCents"`
	Note              *string   `json:"note,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                v.ID,
		AccommodationID:   v.AccommodationID,
		AccommodationName: v.AccommodationName,
		GuestName:         v.GuestName,
		GuestEmail:        v.GuestEmail,
		GuestPhone:        v.GuestPhone,
		CheckInDate:       v.CheckInDate.String(),
		CheckInTime:       v.CheckInTime.String(),
		CheckOutDate:      v.CheckOutDate.String(),
		CheckOutTime:      v.CheckOutTime.String(),
		GuestCount:        v.GuestCount,
		Status:            v.Status,
		TotalPrice:        formatCents(v.TotalPriceCents),
		TotalPriceCents:   v.TotalPriceCents,
		Note:              v.Note,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

func formatCents(cents int64) string {
	m, err := money.NewMoney(cents)
	if err != nil {
		return ""
	}
	return m.String()
}
