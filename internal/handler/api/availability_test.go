//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pousada-booking/internal/domain/availability"
	"pousada-booking/internal/handler/api"
	resdto "pousada-booking/internal/handler/dto/response"
	"pousada-booking/internal/handler/validation"
	"pousada-booking/internal/pkg/errs"
	"pousada-booking/internal/usecase/queries"
	"pousada-booking/tests/common/builder"
	"pousada-booking/tests/common/httptest"
	"pousada-booking/tests/common/testutil"
	queriesmock "pousada-booking/tests/mock/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/accommodations/:id/availability", s.handler.Calendar)
	s.router.GET("/accommodations/:id/check-in-times", s.handler.CheckInTimes)
	s.router.POST("/accommodations/:id/quote", s.handler.Quote)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

// ================================================================================
// TestCalendar
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCalendar() {
	accID := uuid.New()
	path := "/accommodations/" + accID.String() + "/availability"

	s.Run("success: lists fully and partially blocked days", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), accID).Return(&queries.CalendarView{
			AccommodationID:  accID,
			Today:            date(2024, 6, 1),
			FullyBlocked:     []civil.Date{date(2024, 6, 3), date(2024, 6, 4)},
			PartiallyBlocked: []civil.Date{date(2024, 6, 5)},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := resdto.CalendarResponse{
			AccommodationID:  accID,
			Today:            "2024-06-01",
			FullyBlocked:     []string{"2024-06-03", "2024-06-04"},
			PartiallyBlocked: []string{"2024-06-05"},
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("calendar mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: empty lists encode as arrays", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), accID).Return(&queries.CalendarView{
			AccommodationID: accID,
			Today:           date(2024, 6, 1),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"fullyBlocked":[]`)
		s.Contains(rec.Body.String(), `"partiallyBlocked":[]`)
	})

	s.Run("error: 404 for an unknown accommodation", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), accID).Return(nil, errs.ErrAccommodationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Accommodation not found")
	})

	s.Run("error: 400 on a malformed accommodation id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accommodations/chalet/availability", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid accommodation id")
	})

	s.Run("error: 500 when blocked ranges cannot be read", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), accID).
			Return(nil, errs.Mark(errs.New("end before start"), errs.ErrAvailabilityDataCorrupted)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "inconsistent")
	})
}

// ================================================================================
// TestCheckInTimes
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheckInTimes() {
	accID := uuid.New()
	path := "/accommodations/" + accID.String() + "/check-in-times"
	day := date(2024, 6, 5)

	window := availability.TimeWindow{
		Date:           day,
		Earliest:       availability.MustTimeOfDay(16, 0),
		EarliestReason: availability.ReasonCheckoutBuffer,
		Options:        make([]availability.TimeOption, 0, 48),
	}
	checkout := availability.MustTimeOfDay(11, 0)
	window.LatestCheckout = &checkout
	for _, slot := range availability.DaySlots() {
		opt := availability.TimeOption{Time: slot}
		if slot.Before(window.Earliest) {
			opt.Blocked = true
			opt.Reason = availability.ReasonCheckoutBuffer
		}
		window.Options = append(window.Options, opt)
	}

	s.Run("success: returns the window with 48 options", func() {
		s.mockQueries.EXPECT().CheckInTimes(gomock.Any(), accID, day).Return(&queries.CheckInTimesView{
			AccommodationID: accID,
			Date:            day,
			Window:          window,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?date=2024-06-05", nil, "")

		var body resdto.CheckInTimesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("16:00", body.Earliest)
		s.Equal("checkout_buffer", body.EarliestReason)
		s.Require().NotNil(body.LatestCheckout)
		s.Equal("11:00", *body.LatestCheckout)
		s.False(body.DateBlocked)
		s.Require().Len(body.Options, 48)
		s.Equal(resdto.TimeOptionResponse{Time: "15:30", Blocked: true, Reason: "checkout_buffer"}, body.Options[31])
		s.Equal(resdto.TimeOptionResponse{Time: "16:00"}, body.Options[32])
	})

	s.Run("success: a blocked date is flagged", func() {
		s.mockQueries.EXPECT().CheckInTimes(gomock.Any(), accID, day).Return(&queries.CheckInTimesView{
			AccommodationID: accID,
			Date:            day,
			DateBlocked:     true,
			Window:          window,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?date=2024-06-05", nil, "")

		var body resdto.CheckInTimesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.DateBlocked)
	})

	for _, q := range []string{"", "?date=", "?date=05/06/2024", "?date=2024-13-01"} {
		s.Run("error: 400 for date query "+q, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+q, nil, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
		})
	}

	s.Run("error: 503 when the store is down", func() {
		s.mockQueries.EXPECT().CheckInTimes(gomock.Any(), accID, day).
			Return(nil, errs.Mark(errs.New("dial tcp"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?date=2024-06-05", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestQuote() {
	b := builder.NewReservationBuilder()
	path := "/accommodations/" + b.AccommodationID.String() + "/quote"
	reqBody := b.BuildStayRequestDTO()

	s.Run("success: prices the stay", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), b.BuildStay()).Return(&queries.QuoteView{
			Stay:  b.BuildStay(),
			Quote: b.BuildQuote(),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Nights)
		s.Equal("200.00", body.PricePerNight)
		s.Equal("600.00", body.TotalPrice)
		s.Equal(int64(60000), body.TotalPriceCents)
		s.Equal("11:00", body.CheckOutTime)
	})

	s.Run("error: 409 with the reason when the check-in time is taken", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, &availability.ValidationError{
			Kind:       availability.KindTimeUnavailable,
			Reason:     "the unit is being cleaned after the previous checkout",
			Date:       &b.CheckInDate,
			TimeReason: availability.ReasonCheckoutBuffer,
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "being cleaned")
		s.Equal("time_unavailable", errBody.Detail["kind"])
		s.Equal("checkout_buffer", errBody.Detail["timeReason"])
		s.Equal("2024-07-01", errBody.Detail["date"])
	})

	s.Run("error: 422 when the party is too big", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, availability.NewValidationError(availability.KindCapacityExceeded, "this unit sleeps at most 2 guests")).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("guestCount", 5))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, requestMap, "")

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "at most 2")
		s.Equal("capacity_exceeded", errBody.Detail["kind"])
	})

	s.Run("error: 400 when a date is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("checkOutDate", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, requestMap, "")

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Equal("is required", errBody.Detail["checkOutDate"])
	})
}
