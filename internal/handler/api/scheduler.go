package api

import (
	"net/http"
	"time"

	"auction-scheduler/internal/domain/auction"
	reqdto "auction-scheduler/internal/handler/dto/request"
	resdto "auction-scheduler/internal/handler/dto/response"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/usecase/commands"
	"auction-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	cmds  commands.SchedulerCommands
	q     queries.AuctionQueries
	clock clock.Clock
	loc   *time.Location
}

// NewSchedulerHandler resolves "today" from clk in loc whenever a request omits the date.
func NewSchedulerHandler(cmds commands.SchedulerCommands, q queries.AuctionQueries, clk clock.Clock, loc *time.Location) *SchedulerHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SchedulerHandler{cmds: cmds, q: q, clock: clk, loc: loc}
}

func (h *SchedulerHandler) resolveDate(raw string) (auction.Date, error) {
	return reqdto.ResolveDate(raw, h.clock.Now(), h.loc)
}

// bindDay reads the optional {date} body; it aborts the request and returns false on bad input.
func (h *SchedulerHandler) bindDay(c *gin.Context) (auction.Date, bool) {
	var req reqdto.DayRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		abortInvalidRequest(c, err, "Invalid request body")
		return auction.Date{}, false
	}
	date, err := h.resolveDate(req.Date)
	if err != nil {
		abortWithMappedError(c, err)
		return auction.Date{}, false
	}
	return date, true
}

// @Summary Initialize daily auctions
// @Description Seed the day with three auctions (09:00 LIVE, 10:00 and 11:00 UPCOMING)
// @Tags scheduler
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitializeDayRequest true "Initialize request"
// @Success 201 {object} resdto.InitializeDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduler/initialize-daily-auctions [post]
func (h *SchedulerHandler) InitializeDay(c *gin.Context) {
	var req reqdto.InitializeDayRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		abortInvalidRequest(c, err, "Invalid request body")
		return
	}
	date, err := h.resolveDate(req.Date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	result, err := h.cmds.InitializeDay(c.Request.Context(), date, req.MasterID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInitializeResult(result))
}

// @Summary Progress auction round
// @Description Complete the LIVE auction, promote the earliest UPCOMING and append a new UPCOMING three hours later
// @Tags scheduler
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DayRequest false "Target date (defaults to today)"
// @Success 200 {object} resdto.ProgressResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduler/progress-auctions [post]
func (h *SchedulerHandler) ProgressRound(c *gin.Context) {
	date, ok := h.bindDay(c)
	if !ok {
		return
	}
	result, err := h.cmds.ProgressRound(c.Request.Context(), date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgressResult(result))
}

// @Summary Reset daily auctions
// @Description Complete unfinished auctions of earlier days and delete the day's auctions
// @Tags scheduler
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DayRequest false "Target date (defaults to today)"
// @Success 200 {object} resdto.ResetResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduler/reset-daily [post]
func (h *SchedulerHandler) ResetDay(c *gin.Context) {
	date, ok := h.bindDay(c)
	if !ok {
		return
	}
	result, err := h.cmds.ResetDay(c.Request.Context(), date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResetResult(result))
}

// @Summary Reconcile a day
// @Description Repair a day left without exactly one LIVE auction or without an UPCOMING one
// @Tags scheduler
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DayRequest false "Target date (defaults to today)"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduler/reconcile [post]
func (h *SchedulerHandler) ReconcileDay(c *gin.Context) {
	date, ok := h.bindDay(c)
	if !ok {
		return
	}
	result, err := h.cmds.ReconcileDay(c.Request.Context(), date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}

// @Summary Current auctions
// @Description List the auctions of a day ordered by auction number
// @Tags scheduler
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.DayResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/scheduler/current-auctions [get]
func (h *SchedulerHandler) CurrentAuctions(c *gin.Context) {
	date, err := h.resolveDate(c.Query("date"))
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	day, err := h.q.ListDay(c.Request.Context(), date)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayView(day))
}
