//go:build unit || e2e

package builder

import (
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra/repository/converter"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"
	"auction-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	DefaultDate = auction.NewDate(2026, time.October, 15)
	DefaultNow  = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)
)

type SlotBuilder struct {
	ID         uuid.UUID
	ExternalID uuid.UUID
	MasterID   string
	Number     int
	TimeSlot   string
	Status     auction.Status
	Date       auction.Date
	Template   auction.Template
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:         uuid.New(),
		ExternalID: uuid.New(),
		MasterID:   "master-1",
		Number:     1,
		TimeSlot:   "09:00",
		Status:     auction.StatusUpcoming,
		Date:       DefaultDate,
		Template: auction.Template{
			Name:        "Test Auction",
			PrizeValue:  auction.DefaultPrizeValue,
			MaxDiscount: auction.DefaultMaxDiscount,
			EntryFee: auction.EntryFee{
				Type:      auction.EntryFeeRandom,
				Min:       auction.DefaultMinEntryFee,
				Max:       auction.DefaultMaxEntryFee,
				SplitBoxA: auction.DefaultFeeSplitBoxA,
				SplitBoxB: auction.DefaultFeeSplitBoxB,
			},
			RoundCount: auction.DefaultRoundCount,
			Rounds:     auction.EqualRounds(auction.DefaultRoundCount, 15*time.Minute),
		},
		CreatedAt: DefaultNow,
		UpdatedAt: DefaultNow,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithID(id uuid.UUID) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithExternalID(id uuid.UUID) *SlotBuilder {
	b.ExternalID = id
	return b
}

func (b *SlotBuilder) WithMasterID(id string) *SlotBuilder {
	b.MasterID = id
	return b
}

func (b *SlotBuilder) WithNumber(n int) *SlotBuilder {
	b.Number = n
	return b
}

func (b *SlotBuilder) WithTimeSlot(hhmm string) *SlotBuilder {
	b.TimeSlot = hhmm
	return b
}

func (b *SlotBuilder) WithStatus(s auction.Status) *SlotBuilder {
	b.Status = s
	return b
}

func (b *SlotBuilder) WithDate(d auction.Date) *SlotBuilder {
	b.Date = d
	return b
}

func (b *SlotBuilder) WithName(name string) *SlotBuilder {
	b.Template.Name = name
	return b
}

func (b *SlotBuilder) WithImageURL(url string) *SlotBuilder {
	b.Template.ImageURL = url
	return b
}

func (b *SlotBuilder) WithPrizeValue(v int64) *SlotBuilder {
	b.Template.PrizeValue = v
	return b
}

func (b *SlotBuilder) WithMaxDiscount(v int) *SlotBuilder {
	b.Template.MaxDiscount = v
	return b
}

func (b *SlotBuilder) WithRounds(rc auction.RoundConfig) *SlotBuilder {
	b.Template.Rounds = rc
	b.Template.RoundCount = len(rc)
	return b
}

// WithTemplate replaces the whole template, bypassing the defaults NewSlot would apply.
func (b *SlotBuilder) WithTemplate(t auction.Template) *SlotBuilder {
	b.Template = t
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() *auction.Slot {
	ts, err := auction.ParseTimeSlot(b.TimeSlot)
	if err != nil {
		panic(err)
	}
	return auction.ReconstructSlot(
		b.ID,
		b.MasterID,
		b.Number,
		b.ExternalID,
		ts,
		b.Template,
		b.Status,
		b.Date,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *SlotBuilder) BuildRecord() converter.SlotRecord {
	rec, err := converter.RecordFromSlot(b.BuildDomain())
	if err != nil {
		panic(err)
	}
	return rec
}

func (b *SlotBuilder) BuildRow() sqlc.AuctionSlot {
	p := b.BuildRecord().ToInsertParams()
	return sqlc.AuctionSlot{
		ID:            p.ID,
		MasterID:      p.MasterID,
		AuctionNumber: p.AuctionNumber,
		ExternalID:    p.ExternalID,
		TimeSlot:      p.TimeSlot,
		Name:          p.Name,
		ImageUrl:      p.ImageUrl,
		PrizeValue:    p.PrizeValue,
		MaxDiscount:   p.MaxDiscount,
		EntryFeeType:  p.EntryFeeType,
		MinEntryFee:   p.MinEntryFee,
		MaxEntryFee:   p.MaxEntryFee,
		FeeSplitBoxA:  p.FeeSplitBoxA,
		FeeSplitBoxB:  p.FeeSplitBoxB,
		RoundCount:    p.RoundCount,
		RoundConfig:   p.RoundConfig,
		Status:        p.Status,
		ScheduledDate: p.ScheduledDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return queries.NewSlotView(b.BuildDomain())
}

// StandardDay is a freshly initialized day: #1 LIVE at 09:00, #2 and #3 UPCOMING.
func StandardDay(date auction.Date) []*auction.Slot {
	return []*auction.Slot{
		NewSlotBuilder().WithDate(date).WithNumber(1).WithTimeSlot("09:00").WithStatus(auction.StatusLive).WithName("Auction #1").BuildDomain(),
		NewSlotBuilder().WithDate(date).WithNumber(2).WithTimeSlot("10:00").WithName("Auction #2").BuildDomain(),
		NewSlotBuilder().WithDate(date).WithNumber(3).WithTimeSlot("11:00").WithName("Auction #3").BuildDomain(),
	}
}
