package auction

import (
	"fmt"
	"time"
)

type EntryFeeType string

const (
	EntryFeeRandom EntryFeeType = "RANDOM"
	EntryFeeFixed  EntryFeeType = "FIXED"
)

// Carry-forward defaults, applied wherever a predecessor value is absent.
const (
	DefaultPrizeValue   int64 = 1000
	DefaultMaxDiscount        = 50
	DefaultMinEntryFee  int64 = 10
	DefaultMaxEntryFee  int64 = 100
	DefaultFeeSplitBoxA       = 50
	DefaultFeeSplitBoxB       = 50
	DefaultRoundCount         = 3
)

// Seeded-day layout.
const (
	initialSlotCount     = 3
	initialRoundDuration = 15 * time.Minute
)

var initialTimeSlots = []TimeSlot{
	mustTimeSlot("09:00"),
	mustTimeSlot("10:00"),
	mustTimeSlot("11:00"),
}

// EntryFee gates later bidding rounds; enforcement happens outside the scheduler.
type EntryFee struct {
	Type      EntryFeeType
	Min       int64
	Max       int64
	SplitBoxA int
	SplitBoxB int
}

// Template is the configuration a slot hands to the slot generated after it.
// Zero values count as absent, except that the fee split is absent only when
// both boxes are zero.
type Template struct {
	Name        string
	ImageURL    string
	PrizeValue  int64
	MaxDiscount int
	EntryFee    EntryFee
	RoundCount  int
	Rounds      RoundConfig
}

func (t Template) WithDefaults() Template {
	out := t
	if out.PrizeValue == 0 {
		out.PrizeValue = DefaultPrizeValue
	}
	if out.MaxDiscount == 0 {
		out.MaxDiscount = DefaultMaxDiscount
	}
	if out.EntryFee.Type == "" {
		out.EntryFee.Type = EntryFeeRandom
	}
	if out.EntryFee.Min == 0 {
		out.EntryFee.Min = DefaultMinEntryFee
	}
	if out.EntryFee.Max == 0 {
		out.EntryFee.Max = DefaultMaxEntryFee
	}
	// The split is one value; a single zero box is a real 0/100 split.
	if out.EntryFee.SplitBoxA == 0 && out.EntryFee.SplitBoxB == 0 {
		out.EntryFee.SplitBoxA = DefaultFeeSplitBoxA
		out.EntryFee.SplitBoxB = DefaultFeeSplitBoxB
	}
	if out.RoundCount == 0 {
		out.RoundCount = DefaultRoundCount
	}
	out.Rounds = out.Rounds.Clone()
	return out
}

func initialTemplate(number int) Template {
	return Template{
		Name:        fmt.Sprintf("Auction #%d", number),
		PrizeValue:  DefaultPrizeValue,
		MaxDiscount: DefaultMaxDiscount,
		EntryFee: EntryFee{
			Type:      EntryFeeRandom,
			Min:       DefaultMinEntryFee,
			Max:       DefaultMaxEntryFee,
			SplitBoxA: DefaultFeeSplitBoxA,
			SplitBoxB: DefaultFeeSplitBoxB,
		},
		RoundCount: DefaultRoundCount,
		Rounds:     EqualRounds(DefaultRoundCount, initialRoundDuration),
	}
}
