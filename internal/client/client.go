// Package client is the HTTP client of the scheduler API used by auctionctl.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	resdto "auction-scheduler/internal/handler/dto/response"
	"auction-scheduler/internal/handler/httperr"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer of the scheduler API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("scheduler api: status %d", e.Status)
	}
	return fmt.Sprintf("scheduler api: %s (%d): %s", e.Code, e.Status, e.Message)
}

type Client struct {
	http *resty.Client
}

// New targets baseURL; token is sent as a bearer token when it is not empty.
func New(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

type dayBody struct {
	Date string `json:"date,omitempty"`
}

type initializeBody struct {
	MasterID string `json:"masterId"`
	Date     string `json:"date,omitempty"`
}

// An empty date means the server's today in every call below.

func (c *Client) InitializeDay(ctx context.Context, date, masterID string) (*resdto.InitializeDayResponse, error) {
	var out resdto.InitializeDayResponse
	err := c.post(ctx, "/api/scheduler/initialize-daily-auctions", initializeBody{MasterID: masterID, Date: date}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProgressRound(ctx context.Context, date string) (*resdto.ProgressResponse, error) {
	var out resdto.ProgressResponse
	if err := c.post(ctx, "/api/scheduler/progress-auctions", dayBody{Date: date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResetDay(ctx context.Context, date string) (*resdto.ResetResponse, error) {
	var out resdto.ResetResponse
	if err := c.post(ctx, "/api/scheduler/reset-daily", dayBody{Date: date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReconcileDay(ctx context.Context, date string) (*resdto.ReconcileResponse, error) {
	var out resdto.ReconcileResponse
	if err := c.post(ctx, "/api/scheduler/reconcile", dayBody{Date: date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentAuctions(ctx context.Context, date string) (*resdto.DayResponse, error) {
	var out resdto.DayResponse
	req := c.http.R().SetContext(ctx).SetResult(&out).SetError(&httperr.Response{})
	if date != "" {
		req.SetQueryParam("date", date)
	}
	resp, err := req.Get("/api/scheduler/current-auctions")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(&httperr.Response{}).
		Post(path)
	return checkResponse(resp, err)
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("scheduler api: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	apiErr := &APIError{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*httperr.Response); ok && body != nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(apiErr.Status)
	}
	return apiErr
}
