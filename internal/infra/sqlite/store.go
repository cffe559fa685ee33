// Package sqlite is the single-file backend of the scheduler. It serves the
// same unit-of-work and read-store ports as the PostgreSQL backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/infra/repository/converter"
	"auction-scheduler/internal/infra/sqlite/migrations"
	"auction-scheduler/internal/pkg/errs"
	"auction-scheduler/internal/usecase/queries"
	"auction-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	dateLayout = "2006-01-02"
	maxRetries = 3
)

type Store struct {
	db *sql.DB
}

// Open opens the database behind dsn and applies the embedded migrations.
// A single connection is kept so write transactions never contend inside the process.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errs.New("sqlite dsn is required")
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errs.Wrap(err, "open sqlite db")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "ping sqlite db")
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "run sqlite migrations")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WithinDay runs fn in an immediate transaction. SQLite takes the database
// write lock at BEGIN, which serializes writers of every day, not only date.
func (s *Store) WithinDay(ctx context.Context, date auction.Date, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := s.runInTx(ctx, fn)
		if err == nil || !isBusy(err) || attempt >= maxRetries {
			return err
		}
		slog.Warn("retrying sqlite transaction", "date", date.String(), "attempt", attempt+1, "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}
}

func (s *Store) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Mark(err, errs.ErrDayLockFailed)
	}

	if err := fn(ctx, &sqliteTx{repo: &slotRepository{q: sqlTx}}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Warn("sqlite rollback failed", "error", rbErr.Error())
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return infra.WrapRepoErr("failed to commit sqlite transaction", err)
	}
	return nil
}

func (s *Store) ListByDate(ctx context.Context, date auction.Date) ([]*queries.SlotView, error) {
	slots, err := listByDate(ctx, s.db, date)
	if err != nil {
		return nil, err
	}
	return queries.NewSlotViews(slots), nil
}

func (s *Store) FindByExternalID(ctx context.Context, externalID uuid.UUID) (*queries.SlotView, error) {
	row := s.db.QueryRowContext(ctx, selectSlots+" WHERE external_id = ?", externalID.String())
	rec, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get auction slot by external id", err)
	}
	slot, err := rec.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted auction slot row", err, infra.KindCorrupted)
	}
	return queries.NewSlotView(slot), nil
}

type sqliteTx struct {
	repo *slotRepository
}

func (t *sqliteTx) Slots() shared.SlotRepository {
	return t.repo
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type slotRepository struct {
	q queryer
}

// ListByDate needs no row locks: the immediate transaction already holds the write lock.
func (r *slotRepository) ListByDate(ctx context.Context, date auction.Date) ([]*auction.Slot, error) {
	return listByDate(ctx, r.q, date)
}

func (r *slotRepository) Insert(ctx context.Context, slot *auction.Slot) error {
	rec, err := converter.RecordFromSlot(slot)
	if err != nil {
		return infra.WrapRepoErr("failed to encode auction slot", err)
	}

	_, err = r.q.ExecContext(ctx, `
INSERT INTO auction_slots (
	id, master_id, auction_number, external_id, time_slot, name, image_url,
	prize_value, max_discount, entry_fee_type, min_entry_fee, max_entry_fee,
	fee_split_box_a, fee_split_box_b, round_count, round_config, status,
	scheduled_date, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.MasterID,
		rec.AuctionNumber,
		rec.ExternalID.String(),
		rec.TimeSlot,
		rec.Name,
		nullString(rec.ImageURL),
		rec.PrizeValue,
		rec.MaxDiscount,
		rec.EntryFeeType,
		rec.MinEntryFee,
		rec.MaxEntryFee,
		rec.FeeSplitBoxA,
		rec.FeeSplitBoxB,
		rec.RoundCount,
		string(rec.RoundConfig),
		rec.Status,
		rec.ScheduledDate.Format(dateLayout),
		rec.CreatedAt.UnixMilli(),
		rec.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		if isConstraint(err) {
			return infra.WrapRepoErr("auction slot violates a unique constraint", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert auction slot", err)
	}
	return nil
}

func (r *slotRepository) UpdateStatus(ctx context.Context, slot *auction.Slot, from auction.Status) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE auction_slots SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		slot.Status().String(), slot.UpdatedAt().UnixMilli(), slot.ID().String(), from.String(),
	)
	if err != nil {
		if isConstraint(err) {
			return infra.WrapRepoErr("auction slot violates a unique constraint", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update auction slot status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return infra.WrapRepoErr("failed to read affected rows", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("auction slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *slotRepository) CompleteStaleBefore(ctx context.Context, date auction.Date, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
UPDATE auction_slots
SET status = 'COMPLETED', updated_at = ?
WHERE scheduled_date < ? AND status IN ('UPCOMING', 'LIVE')`,
		now.UTC().UnixMilli(), date.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete stale auction slots", err)
	}
	return rowsAffected(res)
}

func (r *slotRepository) DeleteByDate(ctx context.Context, date auction.Date) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM auction_slots WHERE scheduled_date = ?`, date.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete auction slots", err)
	}
	return rowsAffected(res)
}

const selectSlots = `
SELECT
	id, master_id, auction_number, external_id, time_slot, name, image_url,
	prize_value, max_discount, entry_fee_type, min_entry_fee, max_entry_fee,
	fee_split_box_a, fee_split_box_b, round_count, round_config, status,
	scheduled_date, created_at, updated_at
FROM auction_slots`

func listByDate(ctx context.Context, q queryer, date auction.Date) ([]*auction.Slot, error) {
	rows, err := q.QueryContext(ctx, selectSlots+" WHERE scheduled_date = ? ORDER BY auction_number", date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auction slots", err)
	}
	defer rows.Close()

	var slots []*auction.Slot
	for rows.Next() {
		rec, err := scanSlot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction slot", err)
		}
		slot, err := rec.ToDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupted auction slot row", err, infra.KindCorrupted)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate auction slots", err)
	}
	return slots, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (converter.SlotRecord, error) {
	var (
		rec                  converter.SlotRecord
		id, externalID       string
		imageURL             sql.NullString
		roundConfig, date    string
		createdAt, updatedAt int64
	)
	if err := row.Scan(
		&id,
		&rec.MasterID,
		&rec.AuctionNumber,
		&externalID,
		&rec.TimeSlot,
		&rec.Name,
		&imageURL,
		&rec.PrizeValue,
		&rec.MaxDiscount,
		&rec.EntryFeeType,
		&rec.MinEntryFee,
		&rec.MaxEntryFee,
		&rec.FeeSplitBoxA,
		&rec.FeeSplitBoxB,
		&rec.RoundCount,
		&roundConfig,
		&rec.Status,
		&date,
		&createdAt,
		&updatedAt,
	); err != nil {
		return converter.SlotRecord{}, err
	}

	var err error
	if rec.ID, err = uuid.Parse(id); err != nil {
		return converter.SlotRecord{}, fmt.Errorf("parse id: %w", err)
	}
	if rec.ExternalID, err = uuid.Parse(externalID); err != nil {
		return converter.SlotRecord{}, fmt.Errorf("parse external id: %w", err)
	}
	if rec.ScheduledDate, err = time.Parse(dateLayout, date); err != nil {
		return converter.SlotRecord{}, fmt.Errorf("parse scheduled date: %w", err)
	}
	rec.ImageURL = imageURL.String
	rec.RoundConfig = []byte(roundConfig)
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return rec, nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read affected rows", err)
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isConstraint(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func isBusy(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}
