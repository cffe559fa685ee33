package api

import (
	"net/http"

	resdto "auction-scheduler/internal/handler/dto/response"
	"auction-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionHandler struct {
	q queries.AuctionQueries
}

func NewAuctionHandler(q queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{q: q}
}

// @Summary Get auction
// @Description Get an auction by its external id
// @Tags auctions
// @Produce json
// @Param externalId path string true "External ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auctions/{externalId} [get]
func (h *AuctionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("externalId"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid external id")
		return
	}
	view, err := h.q.GetByExternalID(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}
