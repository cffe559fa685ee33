//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/infra/readstore"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"
	"auction-scheduler/tests/common/builder"
	readstoremock "auction-scheduler/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	testDate            = auction.NewDate(2026, time.October, 15)
)

// =============================================================================
// ListByDate Tests
// =============================================================================

func TestAuctionReadStore_ListByDate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       []sqlc.AuctionSlot
		returnErr  error
		expectLen  int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: day with three slots",
			rows: []sqlc.AuctionSlot{
				builder.NewSlotBuilder().WithNumber(1).WithStatus(auction.StatusLive).BuildRow(),
				builder.NewSlotBuilder().WithNumber(2).WithTimeSlot("10:00").BuildRow(),
				builder.NewSlotBuilder().WithNumber(3).WithTimeSlot("11:00").BuildRow(),
			},
			expectLen: 3,
		},
		{
			name:      "success: empty day",
			rows:      []sqlc.AuctionSlot{},
			expectLen: 0,
		},
		{
			name:       "error: database failure",
			returnErr:  errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockSlotReadQueries(ctrl)
			store := readstore.NewAuctionReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().ListSlotsByDate(ctx, gomock.Any(), gomock.Any()).Return(tc.rows, tc.returnErr)

			views, err := store.ListByDate(ctx, testDate)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Len(t, views, tc.expectLen)
			for i, v := range views {
				assert.Equal(t, tc.rows[i].ExternalID, v.ExternalID)
				assert.Equal(t, "2026-10-15", v.ScheduledDate)
			}
		})
	}
}

// =============================================================================
// FindByExternalID Tests
// =============================================================================

func TestAuctionReadStore_FindByExternalID(t *testing.T) {
	ctx := context.Background()
	externalID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.AuctionSlot
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: slot found",
			row: builder.NewSlotBuilder().WithExternalID(externalID).WithName("Golden Box").
				WithStatus(auction.StatusLive).BuildRow(),
		},
		{
			name:       "error: not found",
			returnErr:  pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			returnErr:  errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockSlotReadQueries(ctrl)
			store := readstore.NewAuctionReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetSlotByExternalID(ctx, gomock.Any(), externalID).Return(tc.row, tc.returnErr)

			view, err := store.FindByExternalID(ctx, externalID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, externalID, view.ExternalID)
			assert.Equal(t, tc.row.Name, view.Name)
			assert.Equal(t, tc.row.Status, view.Status)
		})
	}

	t.Run("error: corrupted row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSlotReadQueries(ctrl)
		store := readstore.NewAuctionReadStore(mockQueries, &mockDBTX{})

		row := builder.NewSlotBuilder().WithExternalID(externalID).BuildRow()
		row.TimeSlot = "25:00"
		mockQueries.EXPECT().GetSlotByExternalID(ctx, gomock.Any(), externalID).Return(row, nil)

		_, err := store.FindByExternalID(ctx, externalID)
		assert.True(t, infra.IsKind(err, infra.KindCorrupted), "got %v", err)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
