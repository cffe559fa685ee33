//go:build unit

package auction_test

import (
	"testing"

	"auction-scheduler/internal/domain/auction"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_WithDefaults(t *testing.T) {
	t.Run("empty template gets every default", func(t *testing.T) {
		got := auction.Template{}.WithDefaults()

		assert.Equal(t, auction.DefaultPrizeValue, got.PrizeValue)
		assert.Equal(t, auction.DefaultMaxDiscount, got.MaxDiscount)
		assert.Equal(t, auction.EntryFeeRandom, got.EntryFee.Type)
		assert.Equal(t, auction.DefaultMinEntryFee, got.EntryFee.Min)
		assert.Equal(t, auction.DefaultMaxEntryFee, got.EntryFee.Max)
		assert.Equal(t, auction.DefaultFeeSplitBoxA, got.EntryFee.SplitBoxA)
		assert.Equal(t, auction.DefaultFeeSplitBoxB, got.EntryFee.SplitBoxB)
		assert.Equal(t, auction.DefaultRoundCount, got.RoundCount)
	})

	t.Run("fee split", func(t *testing.T) {
		tests := []struct {
			name         string
			boxA, boxB   int
			wantA, wantB int
		}{
			{name: "both absent", boxA: 0, boxB: 0, wantA: 50, wantB: 50},
			{name: "all to box B", boxA: 0, boxB: 100, wantA: 0, wantB: 100},
			{name: "all to box A", boxA: 100, boxB: 0, wantA: 100, wantB: 0},
			{name: "uneven", boxA: 30, boxB: 70, wantA: 30, wantB: 70},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				in := auction.Template{EntryFee: auction.EntryFee{SplitBoxA: tc.boxA, SplitBoxB: tc.boxB}}

				got := in.WithDefaults()
				assert.Equal(t, tc.wantA, got.EntryFee.SplitBoxA)
				assert.Equal(t, tc.wantB, got.EntryFee.SplitBoxB)
			})
		}
	})

	t.Run("rounds are copied", func(t *testing.T) {
		rounds := auction.RoundConfig{{Number: 1, DurationSeconds: 600}}
		got := auction.Template{Rounds: rounds}.WithDefaults()

		got.Rounds[0] = auction.Round{Number: 2, DurationSeconds: 1200}
		assert.Equal(t, auction.Round{Number: 1, DurationSeconds: 600}, rounds[0])
	})
}
