package shared

import (
	"context"
	"time"

	"auction-scheduler/internal/domain/auction"
)

type UnitOfWork interface {
	// WithinDay runs fn in one transaction that holds the write lock of date.
	// Writers of the same date are serialized and nothing fn writes is visible
	// unless fn returns nil. Transient serialization failures are retried.
	WithinDay(ctx context.Context, date auction.Date, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
}

type SlotRepository interface {
	// ListByDate returns the day's slots ordered by auction number, locked for the transaction.
	ListByDate(ctx context.Context, date auction.Date) ([]*auction.Slot, error)
	Insert(ctx context.Context, slot *auction.Slot) error
	// UpdateStatus persists slot's current status; it fails with a conflict when
	// the stored status is no longer from.
	UpdateStatus(ctx context.Context, slot *auction.Slot, from auction.Status) error
	// CompleteStaleBefore marks every non-terminal slot scheduled before date as COMPLETED.
	CompleteStaleBefore(ctx context.Context, date auction.Date, now time.Time) (int64, error)
	DeleteByDate(ctx context.Context, date auction.Date) (int64, error)
}
