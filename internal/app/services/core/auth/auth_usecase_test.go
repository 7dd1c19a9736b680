package auth

import (
	"context"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func newTestAuthUsecase(userRepo *mockUserRepository, redisRepo *mockRedisRepository) *authUsecase {
	internalConfig := &config.InternalConfig{
		JWT:   config.JWT{Secret: "test-secret", ExpTimeInHour: 1, SessionExpiredTimeInHour: 24},
		Leave: config.Leave{AnnualAllocationDays: 25},
	}
	return NewAuthUsecase(userRepo, redisRepo, new(mockSessionService), internalConfig).(*authUsecase)
}

func TestRegisterUser(t *testing.T) {
	t.Run("creates a user with the default role and allocation", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		uc := newTestAuthUsecase(userRepo, new(mockRedisRepository))

		userRepo.On("FindByEmail", mock.Anything, "marie@larib.fr").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.LaribRoleUser &&
				user.LeaveAllocationDays == 25 &&
				utils.CheckPasswordHash("S3cure!pass", user.Password)
		})).Return("user-1", nil)

		result, err := uc.RegisterUser(context.Background(), &requests.Register{
			Email:     "marie@larib.fr",
			Password:  "S3cure!pass",
			FirstName: "Marie",
			LastName:  "Curie",
		})

		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
		assert.Equal(t, "marie@larib.fr", result.Email)
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		uc := newTestAuthUsecase(userRepo, new(mockRedisRepository))

		userRepo.On("FindByEmail", mock.Anything, "marie@larib.fr").Return(&models.User{ID: "user-1"}, nil)

		_, err := uc.RegisterUser(context.Background(), &requests.Register{
			Email:    "marie@larib.fr",
			Password: "S3cure!pass",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLoginUser(t *testing.T) {
	hashedPassword, err := utils.HashPassword("S3cure!pass")
	assert.NoError(t, err)

	existingUser := &models.User{
		ID:       "user-1",
		Email:    "marie@larib.fr",
		Password: hashedPassword,
		Role:     constvars.LaribRoleUser,
	}

	t.Run("stores a session and returns a parseable token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		redisRepo := new(mockRedisRepository)
		uc := newTestAuthUsecase(userRepo, redisRepo)

		userRepo.On("FindByEmail", mock.Anything, "marie@larib.fr").Return(existingUser, nil)
		redisRepo.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*models.Session"), 24*time.Hour).Return(nil)

		result, err := uc.LoginUser(context.Background(), &requests.Login{
			Email:    "marie@larib.fr",
			Password: "S3cure!pass",
		})

		assert.NoError(t, err)
		sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		redisRepo.AssertCalled(t, "Set", mock.Anything, sessionID, mock.Anything, 24*time.Hour)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		redisRepo := new(mockRedisRepository)
		uc := newTestAuthUsecase(userRepo, redisRepo)

		userRepo.On("FindByEmail", mock.Anything, "marie@larib.fr").Return(existingUser, nil)

		_, err := uc.LoginUser(context.Background(), &requests.Login{
			Email:    "marie@larib.fr",
			Password: "wrong",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown email the same way", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		uc := newTestAuthUsecase(userRepo, new(mockRedisRepository))

		userRepo.On("FindByEmail", mock.Anything, "ghost@larib.fr").Return(nil, nil)

		_, err := uc.LoginUser(context.Background(), &requests.Login{
			Email:    "ghost@larib.fr",
			Password: "whatever",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestLogoutUser(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	uc := newTestAuthUsecase(new(mockUserRepository), redisRepo)

	redisRepo.On("Delete", mock.Anything, "session-1").Return(nil)

	err := uc.LogoutUser(context.Background(), "session-1")
	assert.NoError(t, err)
	redisRepo.AssertExpectations(t)
}
