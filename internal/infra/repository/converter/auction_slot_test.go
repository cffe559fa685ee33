//go:build unit

package converter_test

import (
	"testing"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra/repository/converter"
	"auction-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRecord_RoundTrip(t *testing.T) {
	slot := builder.NewSlotBuilder().
		WithNumber(7).
		WithTimeSlot("22:30").
		WithStatus(auction.StatusLive).
		WithImageURL("https://cdn.example.com/a.png").
		WithRounds(auction.RoundConfig{{Number: 1, DurationSeconds: 60}}).
		BuildDomain()

	rec, err := converter.RecordFromSlot(slot)
	require.NoError(t, err)
	assert.Equal(t, "22:30", rec.TimeSlot)
	assert.Equal(t, "LIVE", rec.Status)
	assert.JSONEq(t, `[{"roundNumber":1,"durationSeconds":60}]`, string(rec.RoundConfig))

	back, err := rec.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, slot.ID(), back.ID())
	assert.Equal(t, slot.ExternalID(), back.ExternalID())
	assert.Equal(t, slot.Number(), back.Number())
	assert.Equal(t, slot.TimeSlot(), back.TimeSlot())
	assert.Equal(t, slot.Status(), back.Status())
	assert.Equal(t, slot.Date(), back.Date())
	assert.Equal(t, slot.Template(), back.Template())
}

func TestSlotRecord_PgRowRoundTrip(t *testing.T) {
	slot := builder.NewSlotBuilder().WithImageURL("").BuildDomain()

	rec, err := converter.RecordFromSlot(slot)
	require.NoError(t, err)

	params := rec.ToInsertParams()
	assert.False(t, params.ImageUrl.Valid)
	assert.True(t, params.ScheduledDate.Valid)

	row := builder.NewSlotBuilder().BuildRow()
	fromRow := converter.RecordFromRow(row)
	assert.Equal(t, row.ID, fromRow.ID)
	assert.Equal(t, int(row.AuctionNumber), fromRow.AuctionNumber)
	assert.Equal(t, time.UTC, fromRow.ScheduledDate.Location())
}

func TestSlotRecord_ToDomainRejectsCorruptRows(t *testing.T) {
	good, err := converter.RecordFromSlot(builder.NewSlotBuilder().BuildDomain())
	require.NoError(t, err)

	badStatus := good
	badStatus.Status = "PAUSED"
	_, err = badStatus.ToDomain()
	assert.ErrorIs(t, err, auction.ErrInvalidStatus)

	badTime := good
	badTime.TimeSlot = "25:00"
	_, err = badTime.ToDomain()
	assert.ErrorIs(t, err, auction.ErrInvalidTimeSlot)

	badRounds := good
	badRounds.RoundConfig = []byte("{")
	_, err = badRounds.ToDomain()
	assert.Error(t, err)
}

func TestRounds(t *testing.T) {
	b, err := converter.EncodeRounds(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	rc, err := converter.DecodeRounds(nil)
	require.NoError(t, err)
	assert.Equal(t, auction.RoundConfig{}, rc)

	rc, err = converter.DecodeRounds([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, auction.RoundConfig{}, rc)
}
