package api

import (
	"net/http"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/handler/httperr"
	"pousada-booking/internal/handler/validation"
	"pousada-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type validationDetail struct {
	Kind       string  `json:"kind"`
	Date       *string `json:"date,omitempty"`
	TimeReason string  `json:"timeReason,omitempty"`
}

var kindStatus = map[availability.Kind]int{
	availability.KindNotFound:         http.StatusNotFound,
	availability.KindCapacityExceeded: http.StatusUnprocessableEntity,
	availability.KindInvalidRange:     http.StatusUnprocessableEntity,
	availability.KindDateUnavailable:  http.StatusConflict,
	availability.KindTimeUnavailable:  http.StatusConflict,
	availability.KindInvalidInput:     http.StatusBadRequest,
}

// abortWithError maps use case errors onto the JSON error envelope.
func abortWithError(c *gin.Context, err error) {
	if ve, ok := availability.AsValidationError(err); ok {
		status, known := kindStatus[ve.Kind]
		if !known {
			status = http.StatusBadRequest
		}
		detail := validationDetail{Kind: string(ve.Kind), TimeReason: string(ve.TimeReason)}
		if ve.Date != nil {
			d := ve.Date.String()
			detail.Date = &d
		}
		httperr.AbortWithError(c, status, err, ve.Reason, detail)
		return
	}

	switch {
	case errs.Is(err, errs.ErrAccommodationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Accommodation not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrManualBlockNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Manual block not found", nil)
	case errs.Is(err, errs.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrAvailabilityDataCorrupted):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability data is inconsistent", nil)
	case errs.Is(err, errs.ErrStoreUnavailable):
		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking is temporarily unavailable, please try again", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	if fields := validation.FieldErrors(err); fields != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
