package response

import (
	"pousada-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type CalendarResponse struct {
	AccommodationID  uuid.UUID `json:"accommodationId"`
	Today            string    `json:"today"`
	FullyBlocked     []string  `json:"fullyBlocked"`
	PartiallyBlocked []string  `json:"partiallyBlocked"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		AccommodationID:  v.AccommodationID,
		Today:            v.Today.String(),
		FullyBlocked:     dateStrings(v.FullyBlocked),
		PartiallyBlocked: dateStrings(v.PartiallyBlocked),
	}
}

type TimeOptionResponse struct {
	Time    string `json:"time"`
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}

type CheckInTimesResponse struct {
	AccommodationID uuid.UUID            `json:"accommodationId"`
	Date            string               `json:"date"`
	DateBlocked     bool                 `json:"dateBlocked"`
	Earliest        string               `json:"earliest"`
	EarliestReason  string               `json:"earliestReason,omitempty"`
	LatestCheckout  *string              `json:"latestCheckout,omitempty"`
	Exhausted       bool                 `json:"exhausted"`
	Options         []TimeOptionResponse `json:"options"`
}

func FromCheckInTimesView(v *queries.CheckInTimesView) *CheckInTimesResponse {
	w := v.Window
	resp := &CheckInTimesResponse{
		AccommodationID: v.AccommodationID,
		Date:            v.Date.String(),
		DateBlocked:     v.DateBlocked,
		Earliest:        w.Earliest.String(),
		EarliestReason:  string(w.EarliestReason),
		Exhausted:       w.Exhausted,
		Options:         make([]TimeOptionResponse, len(w.Options)),
	}
	if w.LatestCheckout != nil {
		s := w.LatestCheckout.String()
		resp.LatestCheckout = &s
	}
	for i, opt := range w.Options {
		resp.Options[i] = TimeOptionResponse{
			Time:    opt.Time.String(),
			Blocked: opt.Blocked,
			Reason:  string(opt.Reason),
		}
	}
	return resp
}

type QuoteResponse struct {
	AccommodationID uuid.UUID `json:"accommodationId"`
	CheckInDate     string    `json:"checkInDate"`
	CheckInTime     string    `json:"checkInTime"`
	CheckOutDate    string    `json:"checkOutDate"`
	CheckOutTime    string    `json:"checkOutTime"`
	GuestCount      int       `json:"guestCount"`
	Nights          int       `json:"nights"`
	PricePerNight   string    `json:"pricePerNight"`
	TotalPrice      string    `json:"totalPrice"`
	TotalPriceCents int64     `json:"totalPriceCents"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		AccommodationID: v.Stay.AccommodationID,
		CheckInDate:     v.Stay.CheckInDate.String(),
		CheckInTime:     v.Stay.CheckInTime.String(),
		CheckOutDate:    v.Stay.CheckOutDate.String(),
		CheckOutTime:    v.Stay.CheckOutTime.String(),
		GuestCount:      v.Stay.GuestCount,
		Nights:          v.Quote.Nights,
		PricePerNight:   v.Quote.PricePerNight.String(),
		TotalPrice:      v.Quote.TotalPrice.String(),
		TotalPriceCents: v.Quote.TotalPrice.Cents(),
	}
}

func dateStrings(ds []civil.Date) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}
