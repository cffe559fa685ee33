//go:build unit

package sqlite_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/infra/sqlite"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/pkg/config"
	"auction-scheduler/internal/usecase/commands"
	"auction-scheduler/internal/usecase/queries"
	"auction-scheduler/internal/usecase/shared"
	"auction-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today      = auction.NewDate(2026, time.October, 15)
	yesterday  = today.AddDays(-1)
	startOfDay = time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	store    *sqlite.Store
	clock    *clock.MockClock
	commands commands.SchedulerCommands
	queries  queries.AuctionQueries
}

func openStore(t *testing.T) *fixture {
	t.Helper()
	cfg := config.DBConfig{SQLitePath: filepath.Join(t.TempDir(), "auctions.db")}

	store, err := sqlite.Open(context.Background(), cfg.SQLiteDSN())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clk := clock.NewMockClock(startOfDay)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		store:    store,
		clock:    clk,
		commands: commands.NewSchedulerCommands(store, clk, auction.NewPlanner(nil), logger),
		queries:  queries.NewAuctionQueries(store),
	}
}

func statuses(day *queries.DayView) []string {
	out := make([]string, 0, len(day.Auctions))
	for _, a := range day.Auctions {
		out = append(out, a.Status)
	}
	return out
}

func TestStore_DailyLifecycle(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	initRes, err := f.commands.InitializeDay(ctx, today, "master-1")
	require.NoError(t, err)
	require.Len(t, initRes.Slots, 3)

	day, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 3, day.Count)
	assert.Equal(t, []string{"LIVE", "UPCOMING", "UPCOMING"}, statuses(day))
	assert.Equal(t, auction.RoundConfig{{Number: 1, DurationSeconds: 900}, {Number: 2, DurationSeconds: 900}, {Number: 3, DurationSeconds: 900}}, day.Auctions[0].RoundConfig)

	f.clock.Add(time.Hour)
	progress, err := f.commands.ProgressRound(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Completed.Number())
	assert.Equal(t, 2, progress.Live.Number())
	assert.Equal(t, 4, progress.NewUpcoming.Number())
	assert.Equal(t, "13:00", progress.NewUpcoming.TimeSlot().String())

	f.clock.Add(time.Hour)
	_, err = f.commands.ProgressRound(ctx, today)
	require.NoError(t, err)

	day, err = f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []string{"COMPLETED", "COMPLETED", "LIVE", "UPCOMING", "UPCOMING"}, statuses(day))

	live := day.Auctions[2]
	got, err := f.queries.GetByExternalID(ctx, live.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)
	assert.Equal(t, startOfDay.Add(2*time.Hour), got.UpdatedAt)
}

func TestStore_InitializeTwice(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	_, err := f.commands.InitializeDay(ctx, today, "master-1")
	require.NoError(t, err)

	_, err = f.commands.InitializeDay(ctx, today, "master-1")
	assert.ErrorIs(t, err, auction.ErrAlreadyInitialized)

	day, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 3, day.Count)
}

func TestStore_ConcurrentInitialize(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	const workers = 5
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.commands.InitializeDay(ctx, today, "master-1")
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, auction.ErrAlreadyInitialized)
	}
	assert.Equal(t, 1, succeeded)

	day, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 3, day.Count)
}

func TestStore_ResetDay(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	_, err := f.commands.InitializeDay(ctx, yesterday, "master-1")
	require.NoError(t, err)
	_, err = f.commands.InitializeDay(ctx, today, "master-1")
	require.NoError(t, err)

	res, err := f.commands.ResetDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.UpdatedCount)
	assert.Equal(t, int64(3), res.DeletedCount)

	prev, err := f.queries.ListDay(ctx, yesterday)
	require.NoError(t, err)
	assert.Equal(t, []string{"COMPLETED", "COMPLETED", "COMPLETED"}, statuses(prev))

	cur, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, cur.Count)

	// Reset is repeatable and leaves terminal slots alone.
	res, err = f.commands.ResetDay(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, res.UpdatedCount)
	assert.Zero(t, res.DeletedCount)

	_, err = f.commands.InitializeDay(ctx, today, "master-1")
	assert.NoError(t, err)
}

func TestStore_ProgressEmptyDay(t *testing.T) {
	f := openStore(t)

	_, err := f.commands.ProgressRound(context.Background(), today)
	assert.ErrorIs(t, err, auction.ErrNoLiveAuction)
}

func TestStore_ReconcileRepairsDay(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	seed := []*auction.Slot{
		builder.NewSlotBuilder().WithDate(today).WithNumber(1).WithStatus(auction.StatusCompleted).BuildDomain(),
		builder.NewSlotBuilder().WithDate(today).WithNumber(2).WithTimeSlot("10:00").BuildDomain(),
	}
	err := f.store.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range seed {
			if err := tx.Slots().Insert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	res, err := f.commands.ReconcileDay(ctx, today)
	require.NoError(t, err)
	require.NotNil(t, res.Promoted)
	require.NotNil(t, res.Appended)
	assert.Equal(t, 2, res.Promoted.Number())
	assert.Equal(t, "13:00", res.Appended.TimeSlot().String())

	day, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []string{"COMPLETED", "LIVE", "UPCOMING"}, statuses(day))
}

func TestStore_OneLivePerDay(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	err := f.store.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Insert(ctx, builder.NewSlotBuilder().WithNumber(1).WithStatus(auction.StatusLive).BuildDomain()); err != nil {
			return err
		}
		return tx.Slots().Insert(ctx, builder.NewSlotBuilder().WithNumber(2).WithStatus(auction.StatusLive).BuildDomain())
	})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)

	day, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, day.Count, "failed unit must not leave partial writes")
}

func TestStore_RotationRollsBackWhenAppendFails(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	// The appended slot reuses an external id already taken on another day,
	// so the last write of the rotation fails after both status updates ran.
	taken := uuid.New()
	clashing := commands.NewSchedulerCommands(f.store, f.clock,
		auction.NewPlanner(func() uuid.UUID { return taken }),
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, f.store.WithinDay(ctx, yesterday, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Insert(ctx, builder.NewSlotBuilder().WithDate(yesterday).WithExternalID(taken).
			WithStatus(auction.StatusCompleted).BuildDomain())
	}))
	require.NoError(t, f.store.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range builder.StandardDay(today) {
			if err := tx.Slots().Insert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	}))

	before, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)

	f.clock.Add(time.Hour)
	_, err = clashing.ProgressRound(ctx, today)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)

	after, err := f.queries.ListDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []string{"LIVE", "UPCOMING", "UPCOMING"}, statuses(after))
	assert.Equal(t, before.Auctions, after.Auctions)

	// The day still rotates once ids are unique again.
	res, err := f.commands.ProgressRound(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Live.Number())
}

func TestStore_UpdateStatusConflict(t *testing.T) {
	ctx := context.Background()
	f := openStore(t)

	slot := builder.NewSlotBuilder().WithStatus(auction.StatusLive).BuildDomain()
	require.NoError(t, f.store.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Insert(ctx, slot)
	}))

	require.NoError(t, slot.Complete(startOfDay))
	err := f.store.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().UpdateStatus(ctx, slot, auction.StatusUpcoming)
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
}

func TestStore_FindByExternalIDNotFound(t *testing.T) {
	f := openStore(t)

	_, err := f.store.FindByExternalID(context.Background(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	cfg := config.DBConfig{SQLitePath: filepath.Join(t.TempDir(), "auctions.db")}

	store, err := sqlite.Open(ctx, cfg.SQLiteDSN())
	require.NoError(t, err)
	slot := builder.NewSlotBuilder().WithImageURL("").BuildDomain()
	require.NoError(t, store.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Insert(ctx, slot)
	}))
	require.NoError(t, store.Close())

	store, err = sqlite.Open(ctx, cfg.SQLiteDSN())
	require.NoError(t, err)
	defer store.Close()

	views, err := store.ListByDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, slot.ExternalID(), views[0].ExternalID)
	assert.Empty(t, views[0].ImageURL)
}
