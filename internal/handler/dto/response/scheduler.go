package response

import (
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/usecase/commands"
	"auction-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoundResponse struct {
	Number          int `json:"roundNumber"`
	DurationSeconds int `json:"durationSeconds"`
}

type SlotResponse struct {
	ID            uuid.UUID       `json:"id"`
	MasterID      string          `json:"masterId"`
	AuctionNumber int             `json:"auctionNumber"`
	ExternalID    uuid.UUID       `json:"externalId"`
	TimeSlot      string          `json:"timeSlot"`
	Name          string          `json:"name"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	PrizeValue    int64           `json:"prizeValue"`
	MaxDiscount   int             `json:"maxDiscount"`
	EntryFeeType  string          `json:"entryFeeType"`
	MinEntryFee   int64           `json:"minEntryFee"`
	MaxEntryFee   int64           `json:"maxEntryFee"`
	FeeSplitBoxA  int             `json:"feeSplitBoxA"`
	FeeSplitBoxB  int             `json:"feeSplitBoxB"`
	RoundCount    int             `json:"roundCount"`
	RoundConfig   []RoundResponse `json:"roundConfig"`
	Status        string          `json:"status"`
	ScheduledDate string          `json:"scheduledDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	if v == nil {
		return nil
	}
	res := &SlotResponse{}
	// Copy only fails for nil or non-struct arguments.
	_ = copier.Copy(res, v)
	if res.RoundConfig == nil {
		res.RoundConfig = []RoundResponse{}
	}
	return res
}

func FromSlot(s *auction.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return FromSlotView(queries.NewSlotView(s))
}

func FromSlots(slots []*auction.Slot) []*SlotResponse {
	res := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		res = append(res, FromSlot(s))
	}
	return res
}

type DayResponse struct {
	Date     string          `json:"date"`
	Auctions []*SlotResponse `json:"auctions"`
	Count    int             `json:"count"`
}

func FromDayView(v *queries.DayView) *DayResponse {
	auctions := make([]*SlotResponse, 0, len(v.Auctions))
	for _, a := range v.Auctions {
		auctions = append(auctions, FromSlotView(a))
	}
	return &DayResponse{Date: v.Date, Auctions: auctions, Count: len(auctions)}
}

type InitializeDayResponse struct {
	Date  string          `json:"date"`
	Slots []*SlotResponse `json:"slots"`
}

func FromInitializeResult(r *commands.InitializeResult) *InitializeDayResponse {
	return &InitializeDayResponse{Date: r.Date.String(), Slots: FromSlots(r.Slots)}
}

type ProgressResponse struct {
	Date        string        `json:"date"`
	Completed   *SlotResponse `json:"completed"`
	Live        *SlotResponse `json:"live"`
	NewUpcoming *SlotResponse `json:"newUpcoming"`
}

func FromProgressResult(r *commands.ProgressResult) *ProgressResponse {
	return &ProgressResponse{
		Date:        r.Date.String(),
		Completed:   FromSlot(r.Completed),
		Live:        FromSlot(r.Live),
		NewUpcoming: FromSlot(r.NewUpcoming),
	}
}

type ResetResponse struct {
	Date         string `json:"date"`
	UpdatedCount int64  `json:"updatedCount"`
	DeletedCount int64  `json:"deletedCount"`
}

func FromResetResult(r *commands.ResetResult) *ResetResponse {
	return &ResetResponse{
		Date:         r.Date.String(),
		UpdatedCount: r.UpdatedCount,
		DeletedCount: r.DeletedCount,
	}
}

type ReconcileResponse struct {
	Date      string          `json:"date"`
	Changed   bool            `json:"changed"`
	Completed []*SlotResponse `json:"completed"`
	Promoted  *SlotResponse   `json:"promoted,omitempty"`
	Appended  *SlotResponse   `json:"appended,omitempty"`
}

func FromReconcileResult(r *commands.ReconcileResult) *ReconcileResponse {
	return &ReconcileResponse{
		Date:      r.Date.String(),
		Changed:   r.Changed(),
		Completed: FromSlots(r.Completed),
		Promoted:  FromSlot(r.Promoted),
		Appended:  FromSlot(r.Appended),
	}
}
