package api

import (
	"net/http"

	reqdto "pousada-booking/internal/handler/dto/request"
	resdto "pousada-booking/internal/handler/dto/response"
	"pousada-booking/internal/handler/httperr"
	"pousada-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Availability calendar
// @Description Fully and partially blocked days from today onwards
// @Tags availability
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /accommodations/{id}/availability [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	id, ok := accommodationID(c)
	if !ok {
		return
	}
	view, err := h.q.Calendar(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Check-in times
// @Description Earliest check-in and the 48 half-hour options for a date
// @Tags availability
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CheckInTimesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /accommodations/{id}/check-in-times [get]
func (h *AvailabilityHandler) CheckInTimes(c *gin.Context) {
	id, ok := accommodationID(c)
	if !ok {
		return
	}
	date, err := civil.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter date must be YYYY-MM-DD", nil)
		return
	}
	view, err := h.q.CheckInTimes(c.Request.Context(), id, date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckInTimesView(view))
}

// @Summary Quote a stay
// @Description Validate a proposed stay and price it without booking
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param request body reqdto.QuoteRequest true "Proposed stay"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /accommodations/{id}/quote [post]
func (h *AvailabilityHandler) Quote(c *gin.Context) {
	id, ok := accommodationID(c)
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	stay, err := req.ToStay(id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), stay)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func accommodationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid accommodation id", nil)
		return uuid.Nil, false
	}
	return id, true
}
