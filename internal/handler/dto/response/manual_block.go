package response

import (
	"time"

	"pousada-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ManualBlockResponse struct {
	ID              uuid.UUID `json:"id"`
	AccommodationID uuid.UUID `json:"accommodationId"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromManualBlockView(v *queries.ManualBlockView) *ManualBlockResponse {
	return &ManualBlockResponse{
		ID:              v.ID,
		AccommodationID: v.AccommodationID,
		StartDate:       v.StartDate.String(),
		EndDate:         v.EndDate.String(),
		Reason:          v.Reason,
		CreatedAt:       v.CreatedAt,
	}
}

func FromManualBlockViews(vs []*queries.ManualBlockView) []*ManualBlockResponse {
	out := make([]*ManualBlockResponse, len(vs))
	for i, v := range vs {
		out[i] = FromManualBlockView(v)
	}
	return out
}
