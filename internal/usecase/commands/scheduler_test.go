//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/infra"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/pkg/errs"
	"auction-scheduler/internal/usecase/commands"
	"auction-scheduler/internal/usecase/shared"
	"auction-scheduler/tests/common/builder"
	sharedmock "auction-scheduler/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	testDate = auction.NewDate(2026, time.October, 15)
	testNow  = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
)

type SchedulerCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	repo     *sharedmock.MockSlotRepository
	clock    *clock.MockClock
	commands commands.SchedulerCommands
}

func (s *SchedulerCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.repo = sharedmock.NewMockSlotRepository(s.ctrl)
	s.clock = clock.NewMockClock(testNow)

	s.tx.EXPECT().Slots().Return(s.repo).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewSchedulerCommands(s.uow, s.clock, auction.NewPlanner(nil), logger)
}

func (s *SchedulerCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSchedulerCommandsSuite(t *testing.T) {
	suite.Run(t, new(SchedulerCommandsTestSuite))
}

// expectUnit runs fn against the mocked transaction, as the real unit of work would.
func (s *SchedulerCommandsTestSuite) expectUnit(date auction.Date) {
	s.uow.EXPECT().WithinDay(gomock.Any(), date, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ auction.Date, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

// ================================================================================
// InitializeDay
// ================================================================================

func (s *SchedulerCommandsTestSuite) TestInitializeDay() {
	ctx := context.Background()

	s.Run("success: seeds three slots", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(nil, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		res, err := s.commands.InitializeDay(ctx, testDate, "master-1")
		s.Require().NoError(err)
		s.Require().Len(res.Slots, 3)
		s.Equal(testDate, res.Date)
		s.Equal(auction.StatusLive, res.Slots[0].Status())
		s.Equal("master-1", res.Slots[0].MasterID())
	})

	s.Run("error: already initialized", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).
			Return([]*auction.Slot{builder.NewSlotBuilder().BuildDomain()}, nil)

		_, err := s.commands.InitializeDay(ctx, testDate, "master-1")
		s.ErrorIs(err, auction.ErrAlreadyInitialized)
		s.False(errors.Is(err, errs.ErrDatabaseOperationFailed))
	})

	s.Run("error: concurrent initializer wins the unique key", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(nil, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", errors.New("23505"), infra.KindDuplicateKey))

		_, err := s.commands.InitializeDay(ctx, testDate, "master-1")
		s.ErrorIs(err, auction.ErrAlreadyInitialized)
	})

	s.Run("error: missing master id never opens a transaction", func() {
		_, err := s.commands.InitializeDay(ctx, testDate, "  ")
		s.ErrorIs(err, auction.ErrMissingMasterID)
	})

	s.Run("error: store failure is classified", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(nil, errors.New("connection refused"))

		_, err := s.commands.InitializeDay(ctx, testDate, "master-1")
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
		s.ErrorContains(err, "connection refused")
		s.False(errors.Is(err, auction.ErrAlreadyInitialized))
	})
}

// ================================================================================
// ProgressRound
// ================================================================================

func (s *SchedulerCommandsTestSuite) TestProgressRound() {
	ctx := context.Background()

	s.Run("success: completes, promotes and appends in order", func() {
		day := builder.StandardDay(testDate)
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(day, nil)

		gomock.InOrder(
			s.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), auction.StatusLive).
				DoAndReturn(func(_ context.Context, slot *auction.Slot, _ auction.Status) error {
					s.Equal(day[0].ID(), slot.ID())
					s.Equal(auction.StatusCompleted, slot.Status())
					return nil
				}),
			s.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), auction.StatusUpcoming).
				DoAndReturn(func(_ context.Context, slot *auction.Slot, _ auction.Status) error {
					s.Equal(day[1].ID(), slot.ID())
					s.Equal(auction.StatusLive, slot.Status())
					return nil
				}),
			s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := s.commands.ProgressRound(ctx, testDate)
		s.Require().NoError(err)
		s.Equal(1, res.Completed.Number())
		s.Equal(2, res.Live.Number())
		s.Equal(4, res.NewUpcoming.Number())
		s.Equal("13:00", res.NewUpcoming.TimeSlot().String())
		s.Equal(testNow, res.Live.UpdatedAt())
	})

	s.Run("error: no live auction", func() {
		day := []*auction.Slot{builder.NewSlotBuilder().BuildDomain()}
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(day, nil)

		_, err := s.commands.ProgressRound(ctx, testDate)
		s.ErrorIs(err, auction.ErrNoLiveAuction)
	})

	s.Run("error: no upcoming auction", func() {
		day := []*auction.Slot{builder.NewSlotBuilder().WithStatus(auction.StatusLive).BuildDomain()}
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(day, nil)

		_, err := s.commands.ProgressRound(ctx, testDate)
		s.ErrorIs(err, auction.ErrNoUpcomingAuction)
	})

	s.Run("error: conflicting update aborts the unit", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(builder.StandardDay(testDate), nil)
		s.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), auction.StatusLive).
			Return(infra.WrapRepoErr("changed", nil, infra.KindConflict))

		_, err := s.commands.ProgressRound(ctx, testDate)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
		s.True(infra.IsKind(err, infra.KindConflict))
	})
}

// ================================================================================
// ResetDay
// ================================================================================

func (s *SchedulerCommandsTestSuite) TestResetDay() {
	ctx := context.Background()

	s.Run("success: completes stale slots then deletes today", func() {
		s.expectUnit(testDate)
		gomock.InOrder(
			s.repo.EXPECT().CompleteStaleBefore(gomock.Any(), testDate, testNow).Return(int64(4), nil),
			s.repo.EXPECT().DeleteByDate(gomock.Any(), testDate).Return(int64(3), nil),
		)

		res, err := s.commands.ResetDay(ctx, testDate)
		s.Require().NoError(err)
		s.Equal(int64(4), res.UpdatedCount)
		s.Equal(int64(3), res.DeletedCount)
	})

	s.Run("error: delete failure", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().CompleteStaleBefore(gomock.Any(), testDate, testNow).Return(int64(0), nil)
		s.repo.EXPECT().DeleteByDate(gomock.Any(), testDate).Return(int64(0), errors.New("disk full"))

		_, err := s.commands.ResetDay(ctx, testDate)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("error: zero date", func() {
		_, err := s.commands.ResetDay(ctx, auction.Date{})
		s.ErrorIs(err, auction.ErrInvalidDate)
	})
}

// ================================================================================
// ReconcileDay
// ================================================================================

func (s *SchedulerCommandsTestSuite) TestReconcileDay() {
	ctx := context.Background()

	s.Run("success: healthy day is untouched", func() {
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(builder.StandardDay(testDate), nil)

		res, err := s.commands.ReconcileDay(ctx, testDate)
		s.Require().NoError(err)
		s.False(res.Changed())
	})

	s.Run("success: promotes when nothing is live", func() {
		day := []*auction.Slot{
			builder.NewSlotBuilder().WithNumber(1).WithStatus(auction.StatusCompleted).BuildDomain(),
			builder.NewSlotBuilder().WithNumber(2).WithTimeSlot("10:00").BuildDomain(),
			builder.NewSlotBuilder().WithNumber(3).WithTimeSlot("11:00").BuildDomain(),
		}
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(day, nil)
		s.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), auction.StatusUpcoming).Return(nil)

		res, err := s.commands.ReconcileDay(ctx, testDate)
		s.Require().NoError(err)
		s.True(res.Changed())
		s.Equal(2, res.Promoted.Number())
		s.Nil(res.Appended)
	})

	s.Run("success: completes extra live slots", func() {
		day := []*auction.Slot{
			builder.NewSlotBuilder().WithNumber(1).WithStatus(auction.StatusLive).BuildDomain(),
			builder.NewSlotBuilder().WithNumber(2).WithStatus(auction.StatusLive).WithTimeSlot("10:00").BuildDomain(),
			builder.NewSlotBuilder().WithNumber(3).WithTimeSlot("11:00").BuildDomain(),
		}
		s.expectUnit(testDate)
		s.repo.EXPECT().ListByDate(gomock.Any(), testDate).Return(day, nil)
		s.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), auction.StatusLive).
			DoAndReturn(func(_ context.Context, slot *auction.Slot, _ auction.Status) error {
				s.Equal(1, slot.Number())
				return nil
			})

		res, err := s.commands.ReconcileDay(ctx, testDate)
		s.Require().NoError(err)
		s.Len(res.Completed, 1)
	})
}

func TestReconcileResult_Changed(t *testing.T) {
	assert.False(t, (&commands.ReconcileResult{}).Changed())
	slot := builder.NewSlotBuilder().BuildDomain()
	require.True(t, (&commands.ReconcileResult{Appended: slot}).Changed())
}
