package request

import (
	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/usecase/commands"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// StayRequest is the proposed stay shared by the quote and booking endpoints.
type StayRequest struct {
	CheckInDate  string `json:"checkInDate" binding:"required,isodate"`
	CheckInTime  string `json:"checkInTime" binding:"required,hhmm"`
	CheckOutDate string `json:"checkOutDate" binding:"required,isodate"`
	CheckOutTime string `json:"checkOutTime" binding:"required,hhmm"`
	// GuestCount is range-checked against the unit's capacity, not here.
	GuestCount int `json:"guestCount"`
}

// ToStay converts a bound request. Fields were already checked by the
// binding tags, so errors here mean the tags were bypassed.
func (r StayRequest) ToStay(accommodationID uuid.UUID) (availability.ProposedStay, error) {
	checkIn, err := civil.ParseDate(r.CheckInDate)
	if err != nil {
		return availability.ProposedStay{}, err
	}
	checkOut, err := civil.ParseDate(r.CheckOutDate)
	if err != nil {
		return availability.ProposedStay{}, err
	}
	inTime, err := availability.ParseTimeOfDay(r.CheckInTime)
	if err != nil {
		return availability.ProposedStay{}, err
	}
	outTime, err := availability.ParseTimeOfDay(r.CheckOutTime)
	if err != nil {
		return availability.ProposedStay{}, err
	}

	return availability.ProposedStay{
		AccommodationID: accommodationID,
		CheckInDate:     checkIn,
		CheckInTime:     inTime,
		CheckOutDate:    checkOut,
		CheckOutTime:    outTime,
		GuestCount:      r.GuestCount,
	}, nil
}

type QuoteRequest struct {
	StayRequest
}

type CreateReservationRequest struct {
	AccommodationID uuid.UUID `json:"accommodationId" binding:"required"`
	StayRequest
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail" binding:"required"`
	GuestPhone string `json:"guestPhone" binding:"required"`
	Note       string `json:"note"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	stay, err := r.ToStay(r.AccommodationID)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		Stay:       stay,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Note:       r.Note,
	}, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled concluded"`
}

type ListReservationsQuery struct {
	AccommodationID string `form:"accommodation_id" binding:"omitempty,uuid"`
	Status          string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled concluded"`
	From            string `form:"from" binding:"omitempty,isodate"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset          int    `form:"offset" binding:"omitempty,min=0"`
}
