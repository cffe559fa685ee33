package repository

import (
	"context"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/infra/repository/converter"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"
	"auction-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SlotWriteQueries interface {
	ListSlotsByDateForUpdate(ctx context.Context, db sqlc.DBTX, scheduledDate pgtype.Date) ([]sqlc.AuctionSlot, error)
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotParams) error
	UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error)
	CompleteStaleSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteStaleSlotsParams) (int64, error)
	DeleteSlotsByDate(ctx context.Context, db sqlc.DBTX, scheduledDate pgtype.Date) (int64, error)
}

// SlotRepository writes auction slots inside a transaction owned by the unit of work.
type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) ListByDate(ctx context.Context, date auction.Date) ([]*auction.Slot, error) {
	rows, err := r.queries.ListSlotsByDateForUpdate(ctx, r.db, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auction slots for update", err)
	}

	slots := make([]*auction.Slot, 0, len(rows))
	for _, row := range rows {
		s, cerr := converter.RecordFromRow(row).ToDomain()
		if cerr != nil {
			return nil, infra.WrapRepoErr("corrupted auction slot row", cerr, infra.KindCorrupted)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *SlotRepository) Insert(ctx context.Context, slot *auction.Slot) error {
	rec, err := converter.RecordFromSlot(slot)
	if err != nil {
		return infra.WrapRepoErr("failed to encode auction slot", err)
	}
	if err := r.queries.InsertSlot(ctx, r.db, rec.ToInsertParams()); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("auction slot violates "+pgconv.ConstraintName(err), err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert auction slot", err)
	}
	return nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, slot *auction.Slot, from auction.Status) error {
	affected, err := r.queries.UpdateSlotStatus(ctx, r.db, sqlc.UpdateSlotStatusParams{
		ID:         slot.ID(),
		Status:     slot.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(slot.UpdatedAt()),
		FromStatus: from.String(),
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("auction slot violates "+pgconv.ConstraintName(err), err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update auction slot status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("auction slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *SlotRepository) CompleteStaleBefore(ctx context.Context, date auction.Date, now time.Time) (int64, error) {
	n, err := r.queries.CompleteStaleSlots(ctx, r.db, sqlc.CompleteStaleSlotsParams{
		ScheduledDate: pgconv.DateToPgtype(date.Time()),
		UpdatedAt:     pgconv.TimeToPgtype(now.UTC()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete stale auction slots", err)
	}
	return n, nil
}

func (r *SlotRepository) DeleteByDate(ctx context.Context, date auction.Date) (int64, error) {
	n, err := r.queries.DeleteSlotsByDate(ctx, r.db, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete auction slots", err)
	}
	return n, nil
}
