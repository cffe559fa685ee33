package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"auction-scheduler/internal/domain/auction"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"
	"auction-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// SlotRecord is the storage-neutral row shape shared by the PostgreSQL and SQLite stores.
type SlotRecord struct {
	ID            uuid.UUID
	MasterID      string
	AuctionNumber int
	ExternalID    uuid.UUID
	TimeSlot      string
	Name          string
	ImageURL      string
	PrizeValue    int64
	MaxDiscount   int
	EntryFeeType  string
	MinEntryFee   int64
	MaxEntryFee   int64
	FeeSplitBoxA  int
	FeeSplitBoxB  int
	RoundCount    int
	RoundConfig   []byte
	Status        string
	ScheduledDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func RecordFromSlot(s *auction.Slot) (SlotRecord, error) {
	t := s.Template()
	rounds, err := EncodeRounds(t.Rounds)
	if err != nil {
		return SlotRecord{}, err
	}
	return SlotRecord{
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
		RoundConfig:   rounds,
		Status:        s.Status().String(),
		ScheduledDate: s.Date().Time(),
		CreatedAt:     s.CreatedAt().UTC(),
		UpdatedAt:     s.UpdatedAt().UTC(),
	}, nil
}

func (r SlotRecord) ToDomain() (*auction.Slot, error) {
	status, err := auction.ParseStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", r.ID, err)
	}
	ts, err := auction.ParseTimeSlot(r.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", r.ID, err)
	}
	rounds, err := DecodeRounds(r.RoundConfig)
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", r.ID, err)
	}

	template := auction.Template{
		Name:        r.Name,
		ImageURL:    r.ImageURL,
		PrizeValue:  r.PrizeValue,
		MaxDiscount: r.MaxDiscount,
		EntryFee: auction.EntryFee{
			Type:      auction.EntryFeeType(r.EntryFeeType),
			Min:       r.MinEntryFee,
			Max:       r.MaxEntryFee,
			SplitBoxA: r.FeeSplitBoxA,
			SplitBoxB: r.FeeSplitBoxB,
		},
		RoundCount: r.RoundCount,
		Rounds:     rounds,
	}

	return auction.ReconstructSlot(
		r.ID,
		r.MasterID,
		r.AuctionNumber,
		r.ExternalID,
		ts,
		template,
		status,
		auction.DateOf(r.ScheduledDate, time.UTC),
		r.CreatedAt.UTC(),
		r.UpdatedAt.UTC(),
	), nil
}

func RecordFromRow(row sqlc.AuctionSlot) SlotRecord {
	return SlotRecord{
		ID:            row.ID,
		MasterID:      row.MasterID,
		AuctionNumber: int(row.AuctionNumber),
		ExternalID:    row.ExternalID,
		TimeSlot:      row.TimeSlot,
		Name:          row.Name,
		ImageURL:      pgconv.StringFromPgtype(row.ImageUrl),
		PrizeValue:    row.PrizeValue,
		MaxDiscount:   int(row.MaxDiscount),
		EntryFeeType:  row.EntryFeeType,
		MinEntryFee:   row.MinEntryFee,
		MaxEntryFee:   row.MaxEntryFee,
		FeeSplitBoxA:  int(row.FeeSplitBoxA),
		FeeSplitBoxB:  int(row.FeeSplitBoxB),
		RoundCount:    int(row.RoundCount),
		RoundConfig:   row.RoundConfig,
		Status:        row.Status,
		ScheduledDate: pgconv.DateFromPgtype(row.ScheduledDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func (r SlotRecord) ToInsertParams() sqlc.InsertSlotParams {
	return sqlc.InsertSlotParams{
		ID:            r.ID,
		MasterID:      r.MasterID,
		AuctionNumber: int32(r.AuctionNumber), // #nosec G115 -- auction numbers are small positive ints
		ExternalID:    r.ExternalID,
		TimeSlot:      r.TimeSlot,
		Name:          r.Name,
		ImageUrl:      pgconv.StringToPgtype(r.ImageURL),
		PrizeValue:    r.PrizeValue,
		MaxDiscount:   int32(r.MaxDiscount), // #nosec G115
		EntryFeeType:  r.EntryFeeType,
		MinEntryFee:   r.MinEntryFee,
		MaxEntryFee:   r.MaxEntryFee,
		FeeSplitBoxA:  int32(r.FeeSplitBoxA), // #nosec G115
		FeeSplitBoxB:  int32(r.FeeSplitBoxB), // #nosec G115
		RoundCount:    int32(r.RoundCount),   // #nosec G115
		RoundConfig:   r.RoundConfig,
		Status:        r.Status,
		ScheduledDate: pgconv.DateToPgtype(r.ScheduledDate),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

// EncodeRounds always yields a JSON array, "[]" for an empty config.
func EncodeRounds(rc auction.RoundConfig) ([]byte, error) {
	if rc == nil {
		rc = auction.RoundConfig{}
	}
	b, err := json.Marshal(rc)
	if err != nil {
		return nil, fmt.Errorf("encode round config: %w", err)
	}
	return b, nil
}

func DecodeRounds(b []byte) (auction.RoundConfig, error) {
	rc := auction.RoundConfig{}
	if len(b) == 0 {
		return rc, nil
	}
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("decode round config: %w", err)
	}
	if rc == nil {
		rc = auction.RoundConfig{}
	}
	return rc, nil
}
