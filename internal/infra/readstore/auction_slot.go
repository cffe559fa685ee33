package readstore

import (
	"context"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/infra/repository/converter"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"
	"auction-scheduler/internal/pkg/pgconv"
	"auction-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadQueries interface {
	ListSlotsByDate(ctx context.Context, db sqlc.DBTX, scheduledDate pgtype.Date) ([]sqlc.AuctionSlot, error)
	GetSlotByExternalID(ctx context.Context, db sqlc.DBTX, externalID uuid.UUID) (sqlc.AuctionSlot, error)
}

type AuctionReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewAuctionReadStore(queries SlotReadQueries, db sqlc.DBTX) *AuctionReadStore {
	return &AuctionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuctionReadStore) ListByDate(ctx context.Context, date auction.Date) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListSlotsByDate(ctx, r.db, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auction slots", err)
	}

	views := make([]*queries.SlotView, 0, len(rows))
	for _, row := range rows {
		v, err := toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *AuctionReadStore) FindByExternalID(ctx context.Context, externalID uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByExternalID(ctx, r.db, externalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get auction slot by external id", err)
	}
	return toView(row)
}

func toView(row sqlc.AuctionSlot) (*queries.SlotView, error) {
	s, err := converter.RecordFromRow(row).ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted auction slot row", err, infra.KindCorrupted)
	}
	return queries.NewSlotView(s), nil
}
