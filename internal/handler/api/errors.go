package api

import (
	"errors"
	"io"
	"net/http"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/handler/httperr"
	"auction-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// schedulerErrorTable is checked in order; the first match wins.
var schedulerErrorTable = []errorMapping{
	{auction.ErrMissingMasterID, http.StatusBadRequest, httperr.CodeMissingMasterID, "masterId is required"},
	{auction.ErrInvalidDate, http.StatusBadRequest, httperr.CodeInvalidRequest, "date must be YYYY-MM-DD"},
	{auction.ErrAlreadyInitialized, http.StatusConflict, httperr.CodeAlreadyInitialized, "Auctions already initialized for date"},
	{auction.ErrNoLiveAuction, http.StatusConflict, httperr.CodeNoLiveAuction, "No live auction for date"},
	{auction.ErrNoUpcomingAuction, http.StatusConflict, httperr.CodeNoUpcomingAuction, "No upcoming auction for date"},
	{errs.ErrAuctionNotFound, http.StatusNotFound, httperr.CodeNotFound, "Auction not found"},
}

func abortWithMappedError(c *gin.Context, err error) {
	for _, m := range schedulerErrorTable {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
}

func abortInvalidRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, msg, nil)
}

// bindOptionalJSON accepts an absent or empty body as the zero request.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
