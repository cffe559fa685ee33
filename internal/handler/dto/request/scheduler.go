package request

import (
	"strings"
	"time"

	"auction-scheduler/internal/domain/auction"
)

type InitializeDayRequest struct {
	MasterID string `json:"masterId" example:"master-001"`
	Date     string `json:"date" example:"2026-10-15"`
}

// DayRequest is the body of every scheduler call that only targets a date.
type DayRequest struct {
	Date string `json:"date" example:"2026-10-15"`
}

// ResolveDate parses raw, falling back to the calendar day of now in loc when it is blank.
func ResolveDate(raw string, now time.Time, loc *time.Location) (auction.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return auction.DateOf(now, loc), nil
	}
	return auction.ParseDate(raw)
}
