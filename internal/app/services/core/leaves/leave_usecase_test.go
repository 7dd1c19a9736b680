package leaves

import (
	"context"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/workdays"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockLeaveRepository struct {
	mock.Mock
}

func (m *mockLeaveRepository) CreateLeave(ctx context.Context, leaveModel *models.LeaveRequest) (string, error) {
	args := m.Called(ctx, leaveModel)
	return args.String(0), args.Error(1)
}

func (m *mockLeaveRepository) FindByID(ctx context.Context, leaveID string) (*models.LeaveRequest, error) {
	args := m.Called(ctx, leaveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaveRequest), args.Error(1)
}

func (m *mockLeaveRepository) FindByUserID(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaveRequest), args.Error(1)
}

func (m *mockLeaveRepository) FindAll(ctx context.Context) ([]models.LeaveRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaveRequest), args.Error(1)
}

func (m *mockLeaveRepository) FindApprovedByUserID(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaveRequest), args.Error(1)
}

func (m *mockLeaveRepository) UpdateLeave(ctx context.Context, leaveModel *models.LeaveRequest) error {
	args := m.Called(ctx, leaveModel)
	return args.Error(0)
}

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

type mockMailerQueue struct {
	mock.Mock
}

func (m *mockMailerQueue) PublishLeaveEvent(ctx context.Context, message *contracts.LeaveEventMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type stubHolidaySource struct {
	holidays workdays.HolidayMap
}

func (s *stubHolidaySource) GetHolidays(ctx context.Context) workdays.HolidayMap {
	return s.holidays
}

type leaveUsecaseFixture struct {
	leaveRepo *mockLeaveRepository
	userRepo  *mockUserRepository
	sessions  *mockSessionService
	mailer    *mockMailerQueue
	usecase   contracts.LeaveUsecase
}

func newLeaveUsecaseFixture(holidays workdays.HolidayMap) *leaveUsecaseFixture {
	f := &leaveUsecaseFixture{
		leaveRepo: new(mockLeaveRepository),
		userRepo:  new(mockUserRepository),
		sessions:  new(mockSessionService),
		mailer:    new(mockMailerQueue),
	}
	internalConfig := &config.InternalConfig{
		Leave: config.Leave{AnnualAllocationDays: 25},
	}
	f.usecase = NewLeaveUsecase(
		zap.NewNop(),
		f.leaveRepo,
		f.userRepo,
		f.sessions,
		&stubHolidaySource{holidays: holidays},
		f.mailer,
		internalConfig,
	)
	return f
}

func userSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		UserID:    "user-1",
		Email:     "marie@larib.fr",
		Role:      constvars.LaribRoleUser,
	}
}

func adminSession() *models.Session {
	return &models.Session{
		SessionID: "session-2",
		UserID:    "admin-1",
		Email:     "chief@larib.fr",
		Role:      constvars.LaribRoleAdmin,
	}
}

func TestSubmitLeaveRequest(t *testing.T) {
	holidays := workdays.HolidayMap{"2024-01-01": "Jour de l'an"}

	t.Run("charges working days excluding weekends and holidays", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.userRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", LeaveAllocationDays: 25}, nil)
		f.leaveRepo.On("FindApprovedByUserID", mock.Anything, "user-1").Return([]models.LeaveRequest{}, nil)
		f.leaveRepo.On("CreateLeave", mock.Anything, mock.AnythingOfType("*models.LeaveRequest")).Return("leave-1", nil)
		f.mailer.On("PublishLeaveEvent", mock.Anything, mock.AnythingOfType("*contracts.LeaveEventMessage")).Return(nil)

		// Mon 2024-01-01 is a holiday, Sat/Sun excluded: 4 chargeable days.
		result, err := f.usecase.SubmitLeaveRequest(context.Background(), "sd", &requests.SubmitLeave{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-07",
			Reason:    "winter break",
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, result.WorkingDays)
		assert.Equal(t, constvars.LeaveStatusPending, result.Status)
		assert.Equal(t, "leave-1", result.LeaveID)
		assert.Equal(t, "marie@larib.fr", result.UserEmail)

		f.mailer.AssertCalled(t, "PublishLeaveEvent", mock.Anything, mock.MatchedBy(func(msg *contracts.LeaveEventMessage) bool {
			return msg.Event == constvars.LeaveEventSubmitted && msg.LeaveID == "leave-1" && msg.WorkingDays == 4
		}))
	})

	t.Run("rejects a range with zero working days", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)

		// Sat 2024-01-06 through Sun 2024-01-07.
		_, err := f.usecase.SubmitLeaveRequest(context.Background(), "sd", &requests.SubmitLeave{
			StartDate: "2024-01-06",
			EndDate:   "2024-01-07",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientLeaveEmptyRange, customErr.ClientMessage)
		f.leaveRepo.AssertNotCalled(t, "CreateLeave", mock.Anything, mock.Anything)
	})

	t.Run("rejects an inverted range as empty", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)

		_, err := f.usecase.SubmitLeaveRequest(context.Background(), "sd", &requests.SubmitLeave{
			StartDate: "2024-01-10",
			EndDate:   "2024-01-08",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientLeaveEmptyRange, customErr.ClientMessage)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)

		_, err := f.usecase.SubmitLeaveRequest(context.Background(), "sd", &requests.SubmitLeave{
			StartDate: "01/02/2024",
			EndDate:   "2024-02-05",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidDate, customErr.ClientMessage)
	})

	t.Run("rejects when the balance is insufficient", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.userRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", LeaveAllocationDays: 25}, nil)
		f.leaveRepo.On("FindApprovedByUserID", mock.Anything, "user-1").Return([]models.LeaveRequest{
			{WorkingDays: 15},
			{WorkingDays: 8},
		}, nil)

		// 23 days already approved leaves room for 2, asking for 5 (Mon-Fri).
		_, err := f.usecase.SubmitLeaveRequest(context.Background(), "sd", &requests.SubmitLeave{
			StartDate: "2024-02-05",
			EndDate:   "2024-02-09",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientLeaveInsufficientBalance, customErr.ClientMessage)
		f.leaveRepo.AssertNotCalled(t, "CreateLeave", mock.Anything, mock.Anything)
	})

	t.Run("broker failure does not fail the request", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.userRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", LeaveAllocationDays: 25}, nil)
		f.leaveRepo.On("FindApprovedByUserID", mock.Anything, "user-1").Return([]models.LeaveRequest{}, nil)
		f.leaveRepo.On("CreateLeave", mock.Anything, mock.AnythingOfType("*models.LeaveRequest")).Return("leave-1", nil)
		f.mailer.On("PublishLeaveEvent", mock.Anything, mock.AnythingOfType("*contracts.LeaveEventMessage")).
			Return(exceptions.ErrRabbitMQPublish(nil))

		result, err := f.usecase.SubmitLeaveRequest(context.Background(), "sd", &requests.SubmitLeave{
			StartDate: "2024-02-05",
			EndDate:   "2024-02-09",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, result.WorkingDays)
	})
}

func TestApproveLeave(t *testing.T) {
	holidays := workdays.HolidayMap{"2024-05-01": "Fête du Travail", "2024-05-08": "Victoire 1945"}

	pendingLeave := func() *models.LeaveRequest {
		return &models.LeaveRequest{
			ID:          "leave-1",
			UserID:      "user-1",
			UserEmail:   "marie@larib.fr",
			StartDate:   "2024-05-01",
			EndDate:     "2024-05-10",
			WorkingDays: 8,
			Status:      constvars.LeaveStatusPending,
		}
	}

	t.Run("recomputes the charge against the current holiday snapshot", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(adminSession(), nil)
		f.leaveRepo.On("FindByID", mock.Anything, "leave-1").Return(pendingLeave(), nil)
		f.userRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", LeaveAllocationDays: 25}, nil)
		f.leaveRepo.On("FindApprovedByUserID", mock.Anything, "user-1").Return([]models.LeaveRequest{}, nil)
		f.leaveRepo.On("UpdateLeave", mock.Anything, mock.AnythingOfType("*models.LeaveRequest")).Return(nil)
		f.mailer.On("PublishLeaveEvent", mock.Anything, mock.AnythingOfType("*contracts.LeaveEventMessage")).Return(nil)

		result, err := f.usecase.ApproveLeave(context.Background(), "sd", "leave-1", &requests.ReviewLeave{Comment: "enjoy"})

		assert.NoError(t, err)
		// 2024-05-01..10: two holidays on weekdays, one weekend, 6 chargeable.
		assert.Equal(t, 6, result.WorkingDays)
		assert.Equal(t, constvars.LeaveStatusApproved, result.Status)
		assert.Equal(t, "admin-1", result.ReviewedBy)
		assert.Equal(t, "enjoy", result.ReviewComment)

		f.mailer.AssertCalled(t, "PublishLeaveEvent", mock.Anything, mock.MatchedBy(func(msg *contracts.LeaveEventMessage) bool {
			return msg.Event == constvars.LeaveEventApproved && msg.ReviewedBy == "admin-1"
		}))
	})

	t.Run("denies non-admin reviewers", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)

		_, err := f.usecase.ApproveLeave(context.Background(), "sd", "leave-1", &requests.ReviewLeave{})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("refuses a leave that is not pending", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		approved := pendingLeave()
		approved.Status = constvars.LeaveStatusApproved
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(adminSession(), nil)
		f.leaveRepo.On("FindByID", mock.Anything, "leave-1").Return(approved, nil)

		_, err := f.usecase.ApproveLeave(context.Background(), "sd", "leave-1", &requests.ReviewLeave{})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("refuses a missing leave", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(adminSession(), nil)
		f.leaveRepo.On("FindByID", mock.Anything, "nope").Return(nil, nil)

		_, err := f.usecase.ApproveLeave(context.Background(), "sd", "nope", &requests.ReviewLeave{})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRejectLeave(t *testing.T) {
	f := newLeaveUsecaseFixture(workdays.HolidayMap{})
	pending := &models.LeaveRequest{
		ID:        "leave-1",
		UserID:    "user-1",
		UserEmail: "marie@larib.fr",
		StartDate: "2024-03-04",
		EndDate:   "2024-03-08",
		Status:    constvars.LeaveStatusPending,
	}
	f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(adminSession(), nil)
	f.leaveRepo.On("FindByID", mock.Anything, "leave-1").Return(pending, nil)
	f.leaveRepo.On("UpdateLeave", mock.Anything, mock.AnythingOfType("*models.LeaveRequest")).Return(nil)
	f.mailer.On("PublishLeaveEvent", mock.Anything, mock.AnythingOfType("*contracts.LeaveEventMessage")).Return(nil)

	result, err := f.usecase.RejectLeave(context.Background(), "sd", "leave-1", &requests.ReviewLeave{Comment: "short staffed"})

	assert.NoError(t, err)
	assert.Equal(t, constvars.LeaveStatusRejected, result.Status)
	assert.Equal(t, "short staffed", result.ReviewComment)
	f.mailer.AssertCalled(t, "PublishLeaveEvent", mock.Anything, mock.MatchedBy(func(msg *contracts.LeaveEventMessage) bool {
		return msg.Event == constvars.LeaveEventRejected
	}))
}

func TestCancelLeave(t *testing.T) {
	pendingOwned := func() *models.LeaveRequest {
		return &models.LeaveRequest{
			ID:     "leave-1",
			UserID: "user-1",
			Status: constvars.LeaveStatusPending,
		}
	}

	t.Run("owner cancels a pending request", func(t *testing.T) {
		f := newLeaveUsecaseFixture(workdays.HolidayMap{})
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.leaveRepo.On("FindByID", mock.Anything, "leave-1").Return(pendingOwned(), nil)
		f.leaveRepo.On("UpdateLeave", mock.Anything, mock.MatchedBy(func(leave *models.LeaveRequest) bool {
			return leave.Status == constvars.LeaveStatusCancelled
		})).Return(nil)

		err := f.usecase.CancelLeave(context.Background(), "sd", "leave-1")
		assert.NoError(t, err)
	})

	t.Run("denies cancelling someone else's request", func(t *testing.T) {
		f := newLeaveUsecaseFixture(workdays.HolidayMap{})
		other := pendingOwned()
		other.UserID = "user-2"
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.leaveRepo.On("FindByID", mock.Anything, "leave-1").Return(other, nil)

		err := f.usecase.CancelLeave(context.Background(), "sd", "leave-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("refuses once the request was reviewed", func(t *testing.T) {
		f := newLeaveUsecaseFixture(workdays.HolidayMap{})
		reviewed := pendingOwned()
		reviewed.Status = constvars.LeaveStatusRejected
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.leaveRepo.On("FindByID", mock.Anything, "leave-1").Return(reviewed, nil)

		err := f.usecase.CancelLeave(context.Background(), "sd", "leave-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestListLeaves(t *testing.T) {
	t.Run("admin sees every request", func(t *testing.T) {
		f := newLeaveUsecaseFixture(workdays.HolidayMap{})
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(adminSession(), nil)
		f.leaveRepo.On("FindAll", mock.Anything).Return([]models.LeaveRequest{
			{ID: "leave-1", UserID: "user-1"},
			{ID: "leave-2", UserID: "user-2"},
		}, nil)

		result, err := f.usecase.ListLeaves(context.Background(), "sd")
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("user only sees their own", func(t *testing.T) {
		f := newLeaveUsecaseFixture(workdays.HolidayMap{})
		f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
		f.leaveRepo.On("FindByUserID", mock.Anything, "user-1").Return([]models.LeaveRequest{
			{ID: "leave-1", UserID: "user-1"},
		}, nil)

		result, err := f.usecase.ListLeaves(context.Background(), "sd")
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "leave-1", result[0].LeaveID)
		f.leaveRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestGetLeaveBalance(t *testing.T) {
	f := newLeaveUsecaseFixture(workdays.HolidayMap{})
	f.sessions.On("ParseSessionData", mock.Anything, "sd").Return(userSession(), nil)
	f.userRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", LeaveAllocationDays: 25}, nil)
	f.leaveRepo.On("FindApprovedByUserID", mock.Anything, "user-1").Return([]models.LeaveRequest{
		{WorkingDays: 5},
		{WorkingDays: 3},
	}, nil)

	result, err := f.usecase.GetLeaveBalance(context.Background(), "sd")

	assert.NoError(t, err)
	assert.Equal(t, 25, result.AllocationDays)
	assert.Equal(t, 8, result.UsedDays)
	assert.Equal(t, 17, result.RemainingDays)
}

func TestGetExcludedDays(t *testing.T) {
	holidays := workdays.HolidayMap{
		"2024-01-01": "Jour de l'an",
		"2024-11-03": "Fête imaginaire", // Sunday: tallied as weekend, not holiday
	}

	t.Run("breaks down weekends and holidays", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)

		result, err := f.usecase.GetExcludedDays(context.Background(), &requests.ExcludedDays{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-07",
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, result.WorkingDays)
		assert.Equal(t, 2, result.WeekendCount)
		assert.Len(t, result.Holidays, 1)
		assert.Equal(t, "Jour de l'an", result.Holidays[0].Name)
	})

	t.Run("counts a weekend holiday once", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)

		result, err := f.usecase.GetExcludedDays(context.Background(), &requests.ExcludedDays{
			StartDate: "2024-11-01",
			EndDate:   "2024-11-08",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.WeekendCount)
		assert.Empty(t, result.Holidays)
	})

	t.Run("rejects a malformed start date", func(t *testing.T) {
		f := newLeaveUsecaseFixture(holidays)

		_, err := f.usecase.GetExcludedDays(context.Background(), &requests.ExcludedDays{
			StartDate: "not-a-date",
			EndDate:   "2024-01-07",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestGetHolidaysForYear(t *testing.T) {
	holidays := workdays.HolidayMap{
		"2024-01-01": "Jour de l'an",
		"2024-07-14": "Fête nationale",
		"2025-01-01": "Jour de l'an",
	}
	f := newLeaveUsecaseFixture(holidays)

	result, err := f.usecase.GetHolidaysForYear(context.Background(), 2024)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "2024-01-01", result[0].Date)
	assert.Equal(t, "2024-07-14", result[1].Date)
}

func TestGetHolidayCalendar(t *testing.T) {
	holidays := workdays.HolidayMap{
		"2024-12-25": "Noël",
		"2025-01-01": "Jour de l'an",
		"2026-01-01": "Jour de l'an",
	}
	f := newLeaveUsecaseFixture(holidays)

	result, err := f.usecase.GetHolidayCalendar(context.Background(), 2024, 2025)

	assert.NoError(t, err)
	assert.Equal(t, 2024, result.StartYear)
	assert.Equal(t, 2025, result.EndYear)
	assert.Equal(t, []string{"2024-12-25", "2025-01-01"}, result.Dates)
}
