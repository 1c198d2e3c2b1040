package request

import (
	"pousada-booking/internal/usecase/commands"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type CreateManualBlockRequest struct {
	AccommodationID uuid.UUID `json:"accommodationId" binding:"required"`
	StartDate       string    `json:"startDate" binding:"required,isodate"`
	EndDate         string    `json:"endDate" binding:"required,isodate"`
	Reason          string    `json:"reason" binding:"max=200"`
}

func (r CreateManualBlockRequest) ToInput() (commands.CreateManualBlockInput, error) {
	start, err := civil.ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateManualBlockInput{}, err
	}
	end, err := civil.ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateManualBlockInput{}, err
	}
	return commands.CreateManualBlockInput{
		AccommodationID: r.AccommodationID,
		StartDate:       start,
		EndDate:         end,
		Reason:          r.Reason,
	}, nil
}
