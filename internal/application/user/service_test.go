package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	domainuser "github.com/pantrychef/v2/internal/domain/user"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/pkg/errors"
	"github.com/pantrychef/v2/test/testutils"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *testutils.MockUserRepository
	hasher   *testutils.MockPasswordHasher
	tokens   *testutils.MockTokenService
	service  inbound.UserService
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(testutils.MockUserRepository)
	s.hasher = new(testutils.MockPasswordHasher)
	s.tokens = new(testutils.MockTokenService)
	s.service = NewService(s.userRepo, s.hasher, s.tokens, zap.NewNop())
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegister_CreatesUserWithDefaults() {
	s.userRepo.On("FindByEmail", s.ctx, "new@example.com").Return(nil, nil)
	s.hasher.On("Hash", "password123").Return("hashed", nil)
	s.userRepo.On("Create", s.ctx, mock.AnythingOfType("*user.User")).Return(nil)

	dto, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		FirstName: "Jordan",
		LastName:  "Lee",
		Email:     "New@Example.com",
		Password:  "password123",
	})

	s.Require().NoError(err)
	s.Equal("new@example.com", dto.Email, "email is lowercased")
	s.Equal(domainuser.DefaultCalories, dto.Calories)
	s.Equal(domainuser.DefaultProtein, dto.Protein)
	s.True(dto.Active)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateEmailConflicts() {
	existing := testutils.NewTestUser()
	s.userRepo.On("FindByEmail", s.ctx, "test@example.com").Return(existing, nil)

	_, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		FirstName: "Test",
		Email:     "test@example.com",
		Password:  "password123",
	})

	s.Require().Error(err)
	s.Equal(errors.CodeEmailAlreadyExists, errors.GetCode(err))
	s.userRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestRegister_ShortPasswordRejected() {
	_, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		FirstName: "Test",
		Email:     "test@example.com",
		Password:  "short",
	})

	s.Require().Error(err)
	s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
}

func (s *UserServiceTestSuite) TestLogin_Succeeds() {
	u := testutils.NewTestUser()
	s.userRepo.On("FindByEmail", s.ctx, u.Email).Return(u, nil)
	s.hasher.On("Verify", "password123", u.PasswordHash).Return(true)
	s.tokens.On("Issue", u.ID, u.Email).Return("token-abc", int64(900), nil)

	result, err := s.service.Login(s.ctx, u.Email, "password123")

	s.Require().NoError(err)
	s.Equal("token-abc", result.AccessToken)
	s.Equal(int64(900), result.ExpiresIn)
	s.Equal(u.ID, result.User.ID)
}

func (s *UserServiceTestSuite) TestLogin_WrongPasswordAndUnknownEmailLookAlike() {
	u := testutils.NewTestUser()
	s.userRepo.On("FindByEmail", s.ctx, u.Email).Return(u, nil)
	s.hasher.On("Verify", "wrong", u.PasswordHash).Return(false)
	s.userRepo.On("FindByEmail", s.ctx, "ghost@example.com").Return(nil, nil)

	_, errWrong := s.service.Login(s.ctx, u.Email, "wrong")
	_, errGhost := s.service.Login(s.ctx, "ghost@example.com", "whatever")

	s.Require().Error(errWrong)
	s.Require().Error(errGhost)
	s.Equal(errors.GetCode(errWrong), errors.GetCode(errGhost))
	s.Equal(errors.CodeInvalidCredentials, errors.GetCode(errWrong))
}

func (s *UserServiceTestSuite) TestLogin_DeactivatedAccountRejected() {
	u := testutils.NewTestUser()
	u.Active = false
	s.userRepo.On("FindByEmail", s.ctx, u.Email).Return(u, nil)
	s.hasher.On("Verify", "password123", u.PasswordHash).Return(true)

	_, err := s.service.Login(s.ctx, u.Email, "password123")

	s.Require().Error(err)
	s.Equal(errors.CodeUnauthorized, errors.GetCode(err))
	s.tokens.AssertNotCalled(s.T(), "Issue", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestGetByID_UnknownUser() {
	id := uuid.New()
	s.userRepo.On("FindByID", s.ctx, id).Return(nil, nil)

	_, err := s.service.GetByID(s.ctx, id)

	s.Require().Error(err)
	s.Equal(errors.CodeUserNotFound, errors.GetCode(err))
}

func (s *UserServiceTestSuite) TestUpdateProfile_AppliesPresentFieldsOnly() {
	u := testutils.NewTestUser()
	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Save", s.ctx, u).Return(nil)

	calories := 2400.0
	goal := string(domainuser.GoalGainMuscle)
	dto, err := s.service.UpdateProfile(s.ctx, u.ID, inbound.UpdateProfileCommand{
		Calories: &calories,
		Goal:     &goal,
	})

	s.Require().NoError(err)
	s.Equal(2400.0, dto.Calories)
	s.Equal(goal, dto.Goal)
	s.Equal("Test", dto.FirstName, "absent fields untouched")
	s.Equal(domainuser.DefaultProtein, dto.Protein)
}

func (s *UserServiceTestSuite) TestUpdateProfile_InvalidEnumRejectedBeforeMutation() {
	u := testutils.NewTestUser()

	bogus := "Extremely active"
	_, err := s.service.UpdateProfile(s.ctx, u.ID, inbound.UpdateProfileCommand{
		ActivityLevel: &bogus,
	})

	s.Require().Error(err)
	s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
	s.userRepo.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
	s.userRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateProfile_InvertedRangeRejected() {
	r := [2]float64{2500, 2000}
	_, err := s.service.UpdateProfile(s.ctx, uuid.New(), inbound.UpdateProfileCommand{
		CaloriesRange: &r,
	})

	s.Require().Error(err)
	s.Equal(errors.CodeValidationFailed, errors.GetCode(err))
}

func (s *UserServiceTestSuite) TestDelete_RemovesAccount() {
	u := testutils.NewTestUser()
	s.userRepo.On("FindByID", s.ctx, u.ID).Return(u, nil)
	s.userRepo.On("Delete", s.ctx, u.ID).Return(nil)

	err := s.service.Delete(s.ctx, u.ID)

	s.Require().NoError(err)
	s.userRepo.AssertExpectations(s.T())
}
