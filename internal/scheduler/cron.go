package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/pkg/config"
	"auction-scheduler/internal/pkg/errs"
	"auction-scheduler/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

var ErrMissingCronMasterID = errs.New("CRON_MASTER_ID is required when cron is enabled")

// Runner drives the daily lifecycle from cron expressions evaluated in the scheduler timezone.
type Runner struct {
	cron   *cron.Cron
	cmds   commands.SchedulerCommands
	clock  clock.Clock
	loc    *time.Location
	cfg    config.CronConfig
	logger *slog.Logger
}

func NewRunner(cfg config.CronConfig, cmds commands.SchedulerCommands, clk clock.Clock, loc *time.Location, logger *slog.Logger) (*Runner, error) {
	if cfg.MasterID == "" {
		return nil, ErrMissingCronMasterID
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}

	cl := cronLogger{logger: logger.With("component", "cron")}
	r := &Runner{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		cmds:   cmds,
		clock:  clk,
		loc:    loc,
		cfg:    cfg,
		logger: logger,
	}

	if _, err := r.cron.AddFunc(cfg.DayStartSpec, func() { r.run("day_start", r.StartDay) }); err != nil {
		return nil, errs.Wrapf(err, "invalid CRON_DAY_START_SPEC %q", cfg.DayStartSpec)
	}
	if _, err := r.cron.AddFunc(cfg.ProgressSpec, func() { r.run("progress", r.Progress) }); err != nil {
		return nil, errs.Wrapf(err, "invalid CRON_PROGRESS_SPEC %q", cfg.ProgressSpec)
	}
	return r, nil
}

func (r *Runner) Start() {
	r.cron.Start()
	r.logger.Info("Cron scheduler started",
		"day_start", r.cfg.DayStartSpec,
		"progress", r.cfg.ProgressSpec,
		"timezone", r.loc.String())
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (r *Runner) Stop(ctx context.Context) error {
	done := r.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) today() auction.Date {
	return auction.DateOf(r.clock.Now(), r.loc)
}

// StartDay clears the day and seeds it again.
func (r *Runner) StartDay(ctx context.Context) error {
	date := r.today()
	reset, err := r.cmds.ResetDay(ctx, date)
	if err != nil {
		return err
	}
	initialized, err := r.cmds.InitializeDay(ctx, date, r.cfg.MasterID)
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Day started",
		"date", date.String(),
		"stale_completed", reset.UpdatedCount,
		"deleted", reset.DeletedCount,
		"slots", len(initialized.Slots))
	return nil
}

func (r *Runner) Progress(ctx context.Context) error {
	date := r.today()
	result, err := r.cmds.ProgressRound(ctx, date)
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Round progressed",
		"date", date.String(),
		"completed", result.Completed.Number(),
		"live", result.Live.Number(),
		"new_upcoming", result.NewUpcoming.TimeSlot().String())
	return nil
}

func (r *Runner) run(job string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.JobTimeout)
	defer cancel()

	err := fn(ctx)
	switch {
	case err == nil:
	case errors.Is(err, auction.ErrNoLiveAuction), errors.Is(err, auction.ErrNoUpcomingAuction):
		r.logger.WarnContext(ctx, "scheduler needs attention", "job", job, "error", err.Error())
	default:
		r.logger.ErrorContext(ctx, "Cron job failed",
			"job", job,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8))
	}
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
