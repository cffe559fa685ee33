package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes of the API.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMissingMasterID    = "MISSING_MASTER_ID"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeAlreadyInitialized = "ALREADY_INITIALIZED"
	CodeNoLiveAuction      = "NO_LIVE_AUCTION"
	CodeNoUpcomingAuction  = "NO_UPCOMING_AUCTION"
	CodeNotFound           = "NOT_FOUND"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	return Response{Status: status, Error: ErrorBody{Code: code, Message: msg}}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
