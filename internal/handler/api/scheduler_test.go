//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/handler/api"
	resdto "auction-scheduler/internal/handler/dto/response"
	"auction-scheduler/internal/handler/httperr"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/pkg/errs"
	"auction-scheduler/internal/usecase/commands"
	"auction-scheduler/internal/usecase/queries"
	"auction-scheduler/tests/common/builder"
	"auction-scheduler/tests/common/httptest"
	"auction-scheduler/tests/common/testutil"
	commandsmock "auction-scheduler/tests/mock/commands"
	queriesmock "auction-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	today = auction.NewDate(2026, time.October, 15)
	// 23:30 UTC on the 15th is already the 16th in Tokyo.
	lateEvening = time.Date(2026, time.October, 15, 23, 30, 0, 0, time.UTC)
	tokyo       = time.FixedZone("JST", 9*60*60)
)

type SchedulerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSchedulerCommands
	mockQueries  *queriesmock.MockAuctionQueries
	clock        *clock.MockClock
}

func (s *SchedulerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSchedulerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAuctionQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))

	schedulerHandler := api.NewSchedulerHandler(s.mockCommands, s.mockQueries, s.clock, time.UTC)
	auctionHandler := api.NewAuctionHandler(s.mockQueries)

	// Mock operator authentication for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "Unauthorized"))
			return
		}
		c.Next()
	}

	s.router.POST("/api/scheduler/initialize-daily-auctions", authMiddleware, schedulerHandler.InitializeDay)
	s.router.POST("/api/scheduler/progress-auctions", authMiddleware, schedulerHandler.ProgressRound)
	s.router.POST("/api/scheduler/reset-daily", authMiddleware, schedulerHandler.ResetDay)
	s.router.POST("/api/scheduler/reconcile", authMiddleware, schedulerHandler.ReconcileDay)
	s.router.GET("/api/scheduler/current-auctions", schedulerHandler.CurrentAuctions)
	s.router.GET("/api/auctions/:externalId", auctionHandler.Get)
}

func (s *SchedulerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerHandlerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerHandlerTestSuite))
}

// ================================================================================
// TestInitializeDay
// ================================================================================

func (s *SchedulerHandlerTestSuite) TestInitializeDay() {
	url := "/api/scheduler/initialize-daily-auctions"
	body := map[string]any{"masterId": "master-1", "date": "2026-10-15"}

	s.Run("success: returns 201 with three slots", func() {
		slots := builder.StandardDay(today)
		s.mockCommands.EXPECT().InitializeDay(gomock.Any(), today, "master-1").
			Return(&commands.InitializeResult{Date: today, Slots: slots}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var res resdto.InitializeDayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("2026-10-15", res.Date)
		s.Require().Len(res.Slots, 3)
		s.Equal("LIVE", res.Slots[0].Status)
		s.Equal(slots[1].ExternalID(), res.Slots[1].ExternalID)
		s.Len(res.Slots[0].RoundConfig, 3)
	})

	s.Run("success: date defaults to today", func() {
		s.mockCommands.EXPECT().InitializeDay(gomock.Any(), today, "master-1").
			Return(&commands.InitializeResult{Date: today}, nil)

		reqBody := testutil.DtoMap(s.T(), body, testutil.Field("date", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		errCode    string
	}{
		{"missing master id", auction.ErrMissingMasterID, http.StatusBadRequest, httperr.CodeMissingMasterID},
		{"already initialized", auction.ErrAlreadyInitialized, http.StatusConflict, httperr.CodeAlreadyInitialized},
		{"store failure", errs.Mark(errors.New("connection refused"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, httperr.CodeInternal},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().InitializeDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.errCode, "")
		})
	}

	s.Run("error: malformed date", func() {
		reqBody := testutil.DtoMap(s.T(), body, testutil.Field("date", "15/10/2026"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest, "date")
	})

	s.Run("error: malformed json", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest, "")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized, "")
	})
}

// ================================================================================
// TestProgressRound
// ================================================================================

func (s *SchedulerHandlerTestSuite) TestProgressRound() {
	url := "/api/scheduler/progress-auctions"

	s.Run("success: empty body targets today", func() {
		day := builder.StandardDay(today)
		appended := builder.NewSlotBuilder().WithNumber(4).WithTimeSlot("13:00").BuildDomain()
		s.mockCommands.EXPECT().ProgressRound(gomock.Any(), today).Return(&commands.ProgressResult{
			Date: today, Completed: day[0], Live: day[1], NewUpcoming: appended,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var res resdto.ProgressResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(1, res.Completed.AuctionNumber)
		s.Equal(2, res.Live.AuctionNumber)
		s.Equal("13:00", res.NewUpcoming.TimeSlot)
	})

	s.Run("success: today follows the scheduler timezone", func() {
		s.clock.Set(lateEvening)
		defer s.clock.Set(time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))

		handler := api.NewSchedulerHandler(s.mockCommands, s.mockQueries, s.clock, tokyo)
		router := gin.New()
		router.POST(url, handler.ProgressRound)

		s.mockCommands.EXPECT().ProgressRound(gomock.Any(), today.AddDays(1)).
			Return(nil, auction.ErrNoLiveAuction)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeNoLiveAuction, "")
	})

	s.Run("error: no upcoming auction", func() {
		s.mockCommands.EXPECT().ProgressRound(gomock.Any(), today).Return(nil, auction.ErrNoUpcomingAuction)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"date": "2026-10-15"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeNoUpcomingAuction, "")
	})
}

// ================================================================================
// TestResetDay / TestReconcileDay
// ================================================================================

func (s *SchedulerHandlerTestSuite) TestResetDay() {
	s.mockCommands.EXPECT().ResetDay(gomock.Any(), today).
		Return(&commands.ResetResult{Date: today, UpdatedCount: 2, DeletedCount: 5}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/reset-daily", nil, "bearer-token")

	var res resdto.ResetResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(resdto.ResetResponse{Date: "2026-10-15", UpdatedCount: 2, DeletedCount: 5}, res)
}

func (s *SchedulerHandlerTestSuite) TestReconcileDay() {
	promoted := builder.NewSlotBuilder().WithNumber(2).WithStatus(auction.StatusLive).BuildDomain()
	s.mockCommands.EXPECT().ReconcileDay(gomock.Any(), today).
		Return(&commands.ReconcileResult{Date: today, Promoted: promoted}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/reconcile", nil, "bearer-token")

	var res resdto.ReconcileResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.True(res.Changed)
	s.Require().NotNil(res.Promoted)
	s.Equal(promoted.ExternalID(), res.Promoted.ExternalID)
	s.Nil(res.Appended)
	s.Empty(res.Completed)
}

// ================================================================================
// TestCurrentAuctions
// ================================================================================

func (s *SchedulerHandlerTestSuite) TestCurrentAuctions() {
	url := "/api/scheduler/current-auctions"

	s.Run("success: explicit date", func() {
		views := queries.NewSlotViews(builder.StandardDay(today))
		s.mockQueries.EXPECT().ListDay(gomock.Any(), today).
			Return(&queries.DayView{Date: "2026-10-15", Auctions: views, Count: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-10-15", nil, "")

		var res resdto.DayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(3, res.Count)
		s.Equal([]string{"09:00", "10:00", "11:00"}, []string{res.Auctions[0].TimeSlot, res.Auctions[1].TimeSlot, res.Auctions[2].TimeSlot})
	})

	s.Run("success: empty day renders an empty list", func() {
		s.mockQueries.EXPECT().ListDay(gomock.Any(), today).
			Return(&queries.DayView{Date: "2026-10-15", Auctions: []*queries.SlotView{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"date":"2026-10-15","auctions":[],"count":0}`, rec.Body.String())
	})

	s.Run("error: invalid date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=yesterday", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest, "")
	})

	s.Run("error: store failure", func() {
		s.mockQueries.EXPECT().ListDay(gomock.Any(), today).
			Return(nil, errs.Mark(infra.WrapRepoErr("boom", errors.New("io")), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.CodeInternal, "Internal server error")
	})
}

// ================================================================================
// TestGetAuction
// ================================================================================

func (s *SchedulerHandlerTestSuite) TestGetAuction() {
	externalID := uuid.New()

	s.Run("success", func() {
		view := builder.NewSlotBuilder().WithExternalID(externalID).BuildView()
		s.mockQueries.EXPECT().GetByExternalID(gomock.Any(), externalID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/"+externalID.String(), nil, "")

		var res resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(externalID, res.ExternalID)
		s.Equal(view.Name, res.Name)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByExternalID(gomock.Any(), externalID).Return(nil, queries.ErrAuctionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/"+externalID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound, "")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest, "")
	})
}
