package queries

import (
	"context"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAuctionNotFound = errs.ErrAuctionNotFound

type SlotView struct {
	ID            uuid.UUID           `json:"id"`
	MasterID      string              `json:"masterId"`
	AuctionNumber int                 `json:"auctionNumber"`
	ExternalID    uuid.UUID           `json:"externalId"`
	TimeSlot      string              `json:"timeSlot"`
	Name          string              `json:"name"`
	ImageURL      string              `json:"imageUrl"`
	PrizeValue    int64               `json:"prizeValue"`
	MaxDiscount   int                 `json:"maxDiscount"`
	EntryFeeType  string              `json:"entryFeeType"`
	MinEntryFee   int64               `json:"minEntryFee"`
	MaxEntryFee   int64               `json:"maxEntryFee"`
	FeeSplitBoxA  int                 `json:"feeSplitBoxA"`
	FeeSplitBoxB  int                 `json:"feeSplitBoxB"`
	RoundCount    int                 `json:"roundCount"`
	RoundConfig   auction.RoundConfig `json:"roundConfig"`
	Status        string              `json:"status"`
	ScheduledDate string              `json:"scheduledDate"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type DayView struct {
	Date     string      `json:"date"`
	Auctions []*SlotView `json:"auctions"`
	Count    int         `json:"count"`
}

// NewSlotView flattens a slot for read models and API responses.
func NewSlotView(s *auction.Slot) *SlotView {
	t := s.Template()
	return &SlotView{
		ID:            s.ID(),
		MasterID:      s.MasterID(),
		AuctionNumber: s.Number(),
		ExternalID:    s.ExternalID(),
		TimeSlot:      s.TimeSlot().String(),
		Name:          t.Name,
		ImageURL:      t.ImageURL,
		PrizeValue:    t.PrizeValue,
		MaxDiscount:   t.MaxDiscount,
		EntryFeeType:  string(t.EntryFee.Type),
		MinEntryFee:   t.EntryFee.Min,
		MaxEntryFee:   t.EntryFee.Max,
		FeeSplitBoxA:  t.EntryFee.SplitBoxA,
		FeeSplitBoxB:  t.EntryFee.SplitBoxB,
		RoundCount:    t.RoundCount,
		RoundConfig:   t.Rounds.Clone(),
		Status:        s.Status().String(),
		ScheduledDate: s.Date().String(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func NewSlotViews(slots []*auction.Slot) []*SlotView {
	views := make([]*SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, NewSlotView(s))
	}
	return views
}

type AuctionReadStore interface {
	ListByDate(ctx context.Context, date auction.Date) ([]*SlotView, error)
	FindByExternalID(ctx context.Context, externalID uuid.UUID) (*SlotView, error)
}

type AuctionQueries interface {
	ListDay(ctx context.Context, date auction.Date) (*DayView, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID) (*SlotView, error)
}

type auctionQueriesImpl struct {
	store AuctionReadStore
}

func NewAuctionQueries(store AuctionReadStore) AuctionQueries {
	return &auctionQueriesImpl{store: store}
}

func (q *auctionQueriesImpl) ListDay(ctx context.Context, date auction.Date) (*DayView, error) {
	if date.IsZero() {
		return nil, auction.ErrInvalidDate
	}
	views, err := q.store.ListByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*SlotView{}
	}
	return &DayView{Date: date.String(), Auctions: views, Count: len(views)}, nil
}

func (q *auctionQueriesImpl) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByExternalID(ctx, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
