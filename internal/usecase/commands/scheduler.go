package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/pkg/errs"
	"auction-scheduler/internal/pkg/telemetry"
	"auction-scheduler/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type InitializeResult struct {
	Date  auction.Date
	Slots []*auction.Slot
}

type ProgressResult struct {
	Date        auction.Date
	Completed   *auction.Slot
	Live        *auction.Slot
	NewUpcoming *auction.Slot
}

type ResetResult struct {
	Date         auction.Date
	UpdatedCount int64
	DeletedCount int64
}

type ReconcileResult struct {
	Date      auction.Date
	Completed []*auction.Slot
	Promoted  *auction.Slot
	Appended  *auction.Slot
}

func (r *ReconcileResult) Changed() bool {
	return len(r.Completed) > 0 || r.Promoted != nil || r.Appended != nil
}

type SchedulerCommands interface {
	InitializeDay(ctx context.Context, date auction.Date, masterID string) (*InitializeResult, error)
	ProgressRound(ctx context.Context, date auction.Date) (*ProgressResult, error)
	ResetDay(ctx context.Context, today auction.Date) (*ResetResult, error)
	ReconcileDay(ctx context.Context, date auction.Date) (*ReconcileResult, error)
}

type schedulerCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	planner *auction.Planner
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewSchedulerCommands(uow shared.UnitOfWork, clk clock.Clock, planner *auction.Planner, logger *slog.Logger) SchedulerCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &schedulerCommandsImpl{
		uow:     uow,
		clock:   clk,
		planner: planner,
		logger:  logger,
		tracer:  telemetry.Tracer(),
	}
}

func (uc *schedulerCommandsImpl) InitializeDay(ctx context.Context, date auction.Date, masterID string) (res *InitializeResult, err error) {
	ctx, span := uc.startSpan(ctx, "scheduler.InitializeDay", date)
	defer func() { endSpan(span, err) }()

	masterID = strings.TrimSpace(masterID)
	if masterID == "" {
		return nil, auction.ErrMissingMasterID
	}
	if date.IsZero() {
		return nil, auction.ErrInvalidDate
	}

	var created []*auction.Slot
	err = uc.uow.WithinDay(ctx, date, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Slots().ListByDate(ctx, date)
		if derr != nil {
			return derr
		}

		slots, derr := uc.planner.Initialize(date, masterID, existing, uc.clock.Now())
		if derr != nil {
			return derr
		}
		for _, s := range slots {
			if derr = tx.Slots().Insert(ctx, s); derr != nil {
				// Another writer seeded the day first.
				if infra.IsKind(derr, infra.KindDuplicateKey) {
					return auction.ErrAlreadyInitialized
				}
				return derr
			}
		}
		created = slots
		return nil
	})
	if err != nil {
		err = classify(err)
		uc.logFailure(ctx, "initialize daily auctions failed", date, err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "daily auctions initialized",
		"date", date.String(),
		"master_id", masterID,
		"slots", len(created))
	return &InitializeResult{Date: date, Slots: created}, nil
}

func (uc *schedulerCommandsImpl) ProgressRound(ctx context.Context, date auction.Date) (res *ProgressResult, err error) {
	ctx, span := uc.startSpan(ctx, "scheduler.ProgressRound", date)
	defer func() { endSpan(span, err) }()

	if date.IsZero() {
		return nil, auction.ErrInvalidDate
	}

	var rotation *auction.Rotation
	err = uc.uow.WithinDay(ctx, date, func(ctx context.Context, tx shared.Tx) error {
		day, derr := tx.Slots().ListByDate(ctx, date)
		if derr != nil {
			return derr
		}

		r, derr := uc.planner.Rotate(day, uc.clock.Now())
		if derr != nil {
			return derr
		}

		// Completing first keeps the one-LIVE-per-day index satisfied at every statement.
		if derr = tx.Slots().UpdateStatus(ctx, r.Completed, auction.StatusLive); derr != nil {
			return derr
		}
		if derr = tx.Slots().UpdateStatus(ctx, r.Promoted, auction.StatusUpcoming); derr != nil {
			return derr
		}
		if derr = tx.Slots().Insert(ctx, r.Appended); derr != nil {
			return derr
		}
		rotation = r
		return nil
	})
	if err != nil {
		err = classify(err)
		uc.logFailure(ctx, "auction round progression failed", date, err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "auction round progressed",
		"date", date.String(),
		"completed", rotation.Completed.Number(),
		"live", rotation.Promoted.Number(),
		"new_upcoming", rotation.Appended.Number(),
		"new_upcoming_time", rotation.Appended.TimeSlot().String())
	return &ProgressResult{
		Date:        date,
		Completed:   rotation.Completed,
		Live:        rotation.Promoted,
		NewUpcoming: rotation.Appended,
	}, nil
}

func (uc *schedulerCommandsImpl) ResetDay(ctx context.Context, today auction.Date) (res *ResetResult, err error) {
	ctx, span := uc.startSpan(ctx, "scheduler.ResetDay", today)
	defer func() { endSpan(span, err) }()

	if today.IsZero() {
		return nil, auction.ErrInvalidDate
	}

	result := &ResetResult{Date: today}
	err = uc.uow.WithinDay(ctx, today, func(ctx context.Context, tx shared.Tx) error {
		updated, derr := tx.Slots().CompleteStaleBefore(ctx, today, uc.clock.Now())
		if derr != nil {
			return derr
		}
		deleted, derr := tx.Slots().DeleteByDate(ctx, today)
		if derr != nil {
			return derr
		}
		result.UpdatedCount = updated
		result.DeletedCount = deleted
		return nil
	})
	if err != nil {
		err = classify(err)
		uc.logFailure(ctx, "daily reset failed", today, err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "daily reset completed",
		"date", today.String(),
		"updated_count", result.UpdatedCount,
		"deleted_count", result.DeletedCount)
	return result, nil
}

func (uc *schedulerCommandsImpl) ReconcileDay(ctx context.Context, date auction.Date) (res *ReconcileResult, err error) {
	ctx, span := uc.startSpan(ctx, "scheduler.ReconcileDay", date)
	defer func() { endSpan(span, err) }()

	if date.IsZero() {
		return nil, auction.ErrInvalidDate
	}

	result := &ReconcileResult{Date: date}
	err = uc.uow.WithinDay(ctx, date, func(ctx context.Context, tx shared.Tx) error {
		day, derr := tx.Slots().ListByDate(ctx, date)
		if derr != nil {
			return derr
		}

		r, derr := uc.planner.Reconcile(day, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if r.IsEmpty() {
			return nil
		}

		for _, s := range r.Completed {
			if derr = tx.Slots().UpdateStatus(ctx, s, auction.StatusLive); derr != nil {
				return derr
			}
		}
		if r.Promoted != nil {
			if derr = tx.Slots().UpdateStatus(ctx, r.Promoted, auction.StatusUpcoming); derr != nil {
				return derr
			}
		}
		if r.Appended != nil {
			if derr = tx.Slots().Insert(ctx, r.Appended); derr != nil {
				return derr
			}
		}
		result.Completed = r.Completed
		result.Promoted = r.Promoted
		result.Appended = r.Appended
		return nil
	})
	if err != nil {
		err = classify(err)
		uc.logFailure(ctx, "auction day reconciliation failed", date, err)
		return nil, err
	}

	if result.Changed() {
		uc.logger.WarnContext(ctx, "auction day repaired",
			"date", date.String(),
			"completed", len(result.Completed),
			"promoted", result.Promoted != nil,
			"appended", result.Appended != nil)
	}
	return result, nil
}

var domainErrors = []error{
	auction.ErrMissingMasterID,
	auction.ErrAlreadyInitialized,
	auction.ErrNoLiveAuction,
	auction.ErrNoUpcomingAuction,
	auction.ErrInvalidTransition,
	auction.ErrInvalidDate,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// classify leaves lifecycle outcomes untouched and marks everything else as a store failure.
func classify(err error) error {
	if err == nil || isDomainError(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func (uc *schedulerCommandsImpl) logFailure(ctx context.Context, msg string, date auction.Date, err error) {
	if isDomainError(err) {
		uc.logger.WarnContext(ctx, msg, "date", date.String(), "reason", err.Error())
		return
	}
	uc.logger.ErrorContext(ctx, msg,
		"date", date.String(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 8))
}

func (uc *schedulerCommandsImpl) startSpan(ctx context.Context, name string, date auction.Date) (context.Context, trace.Span) {
	return uc.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("auction.scheduled_date", date.String()),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil && !isDomainError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
