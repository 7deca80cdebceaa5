package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	domaintracking "github.com/pantrychef/v2/internal/domain/tracking"
	"github.com/pantrychef/v2/internal/domain/user"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/pkg/errors"
	"github.com/pantrychef/v2/test/testutils"
)

type TrackingServiceTestSuite struct {
	suite.Suite
	userRepo *testutils.MockUserRepository
	service  inbound.TrackingService
	ctx      context.Context
}

func (s *TrackingServiceTestSuite) SetupTest() {
	s.userRepo = new(testutils.MockUserRepository)
	s.service = NewService(s.userRepo, zap.NewNop())
	s.ctx = context.Background()
}

func TestTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingServiceTestSuite))
}

func (s *TrackingServiceTestSuite) TestUpsert_CreatesEntryWithTargetSnapshot() {
	u := testutils.NewTestUser()
	u.Calories = 2200
	u.Protein = 120

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	date := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	entry, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID:        u.ID,
		Date:          date,
		CaloriesDelta: 650,
		ProteinDelta:  42,
	})

	s.Require().NoError(err)
	s.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), entry.Date)
	s.Equal(650.0, entry.CaloriesConsumed)
	s.Equal(42.0, entry.ProteinConsumed)
	s.Equal(2200.0, entry.CaloriesNeeded)
	s.Equal(120.0, entry.ProteinNeeded)
	s.Nil(entry.Weight)
	s.Len(u.DailyTracking, 1)
}

func (s *TrackingServiceTestSuite) TestUpsert_AccumulatesDeltasOnSameDay() {
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	u := testutils.NewTestUserWithTracking(date)

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	// Different wall-clock time, same UTC calendar day
	entry, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID:        u.ID,
		Date:          time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC),
		CaloriesDelta: 300,
		ProteinDelta:  20,
	})

	s.Require().NoError(err)
	s.Equal(800.0, entry.CaloriesConsumed)
	s.Equal(50.0, entry.ProteinConsumed)
	s.Len(u.DailyTracking, 1, "no second entry for the same calendar day")
}

func (s *TrackingServiceTestSuite) TestUpsert_WeightOverwritesNotAccumulates() {
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	u := testutils.NewTestUserWithTracking(date)
	u.DailyTracking[0].Weight = testutils.Float64Ptr(80)

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	entry, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID: u.ID,
		Date:   date,
		Weight: testutils.Float64Ptr(79.5),
	})

	s.Require().NoError(err)
	s.Require().NotNil(entry.Weight)
	s.Equal(79.5, *entry.Weight)
	s.Equal(500.0, entry.CaloriesConsumed, "zero delta leaves consumption unchanged")
}

func (s *TrackingServiceTestSuite) TestUpsert_AbsentWeightKeepsPrevious() {
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	u := testutils.NewTestUserWithTracking(date)
	u.DailyTracking[0].Weight = testutils.Float64Ptr(80)

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	entry, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID:        u.ID,
		Date:          date,
		CaloriesDelta: 100,
	})

	s.Require().NoError(err)
	s.Require().NotNil(entry.Weight)
	s.Equal(80.0, *entry.Weight)
}

func (s *TrackingServiceTestSuite) TestUpsert_SnapshotSurvivesTargetChange() {
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	u := testutils.NewTestUserWithTracking(date)
	u.Calories = 1800 // target changed after the entry was created

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	entry, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID:        u.ID,
		Date:          date,
		CaloriesDelta: 100,
	})

	s.Require().NoError(err)
	s.Equal(user.DefaultCalories, entry.CaloriesNeeded, "snapshot is not recomputed")
}

func (s *TrackingServiceTestSuite) TestUpsert_NegativeDeltaRejected() {
	_, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID:        uuid.New(),
		Date:          time.Now(),
		CaloriesDelta: -10,
	})

	s.Require().Error(err)
	s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
	s.userRepo.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
}

func (s *TrackingServiceTestSuite) TestUpsert_UserNotFound() {
	id := uuid.New()
	s.userRepo.On("FindByID", s.ctx, id).Return(nil, nil)

	_, err := s.service.Upsert(s.ctx, inbound.UpsertTrackingCommand{
		UserID:        id,
		Date:          time.Now(),
		CaloriesDelta: 100,
	})

	s.Require().Error(err)
	s.Equal(errors.CodeUserNotFound, errors.GetCode(err))
	s.userRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *TrackingServiceTestSuite) TestGet_ExactCalendarMatch() {
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	u := testutils.NewTestUserWithTracking(date)

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)

	entry, err := s.service.Get(s.ctx, u.ID, time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))

	s.Require().NoError(err)
	s.Equal(500.0, entry.CaloriesConsumed)
}

func (s *TrackingServiceTestSuite) TestGet_MissingDayReturnsNotFound() {
	u := testutils.NewTestUserWithTracking(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)

	_, err := s.service.Get(s.ctx, u.ID, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	s.Require().Error(err)
	s.Equal(errors.CodeEntryNotFound, errors.GetCode(err))
}

func (s *TrackingServiceTestSuite) TestRemove_DeletesCalendarDay() {
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	u := testutils.NewTestUserWithTracking(date)

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	err := s.service.Remove(s.ctx, u.ID, date)

	s.Require().NoError(err)
	s.Empty(u.DailyTracking)
}

func (s *TrackingServiceTestSuite) TestRemove_MissingDaySucceeds() {
	u := testutils.NewTestUser()

	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	err := s.service.Remove(s.ctx, u.ID, time.Now())

	s.Require().NoError(err)
}

func TestEntryNormalization(t *testing.T) {
	east := time.FixedZone("UTC+9", 9*3600)
	a := time.Date(2026, 3, 15, 2, 0, 0, 0, east) // 2026-03-14 17:00 UTC
	b := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)

	if !domaintracking.SameCalendarDay(a, b) {
		t.Fatalf("expected %v and %v on the same UTC calendar day", a, b)
	}
}
