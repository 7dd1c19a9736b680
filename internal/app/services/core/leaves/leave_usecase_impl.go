package leaves

import (
	"context"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/workdays"
	"time"

	"go.uber.org/zap"
)

type leaveUsecase struct {
	Log             *zap.Logger
	LeaveRepository contracts.LeaveRepository
	UserRepository  contracts.UserRepository
	SessionService  contracts.SessionService
	HolidaySource   contracts.HolidaySource
	MailerQueue     contracts.MailerQueue
	InternalConfig  *config.InternalConfig
}

func NewLeaveUsecase(
	logger *zap.Logger,
	leaveRepository contracts.LeaveRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	holidaySource contracts.HolidaySource,
	mailerQueue contracts.MailerQueue,
	internalConfig *config.InternalConfig,
) contracts.LeaveUsecase {
	return &leaveUsecase{
		Log:             logger,
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
		SessionService:  sessionService,
		HolidaySource:   holidaySource,
		MailerQueue:     mailerQueue,
		InternalConfig:  internalConfig,
	}
}

func (uc *leaveUsecase) SubmitLeaveRequest(ctx context.Context, sessionData string, request *requests.SubmitLeave) (*responses.LeaveRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	start, err := workdays.ParseDate(request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := workdays.ParseDate(request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	// One snapshot per request: the charge and the balance check must agree
	// even if the cache refreshes mid-flight.
	snapshot := uc.HolidaySource.GetHolidays(ctx)
	workingDays := workdays.CountWorkingDays(start, end, snapshot)
	if workingDays == 0 {
		return nil, exceptions.ErrLeaveEmptyRange(nil)
	}

	remaining, err := uc.remainingBalance(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if workingDays > remaining {
		return nil, exceptions.ErrLeaveInsufficientBalance(nil)
	}

	now := time.Now()
	leaveModel := &models.LeaveRequest{
		UserID:      session.UserID,
		UserEmail:   session.Email,
		StartDate:   start.ISO(),
		EndDate:     end.ISO(),
		WorkingDays: workingDays,
		Reason:      request.Reason,
		Status:      constvars.LeaveStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	leaveID, err := uc.LeaveRepository.CreateLeave(ctx, leaveModel)
	if err != nil {
		return nil, err
	}
	leaveModel.ID = leaveID

	uc.publishLeaveEvent(ctx, constvars.LeaveEventSubmitted, leaveModel)

	return buildLeaveResponse(leaveModel), nil
}

func (uc *leaveUsecase) GetLeaveByID(ctx context.Context, sessionData, leaveID string) (*responses.LeaveRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	leaveModel, err := uc.LeaveRepository.FindByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if leaveModel == nil {
		return nil, exceptions.ErrLeaveNotFound(nil)
	}
	if session.Role != constvars.LaribRoleAdmin && leaveModel.UserID != session.UserID {
		return nil, exceptions.ErrPermissionDenied(nil)
	}

	return buildLeaveResponse(leaveModel), nil
}

func (uc *leaveUsecase) ListLeaves(ctx context.Context, sessionData string) ([]responses.LeaveRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var leaveModels []models.LeaveRequest
	if session.Role == constvars.LaribRoleAdmin {
		leaveModels, err = uc.LeaveRepository.FindAll(ctx)
	} else {
		leaveModels, err = uc.LeaveRepository.FindByUserID(ctx, session.UserID)
	}
	if err != nil {
		return nil, err
	}

	leaveResponses := make([]responses.LeaveRequest, 0, len(leaveModels))
	for i := range leaveModels {
		leaveResponses = append(leaveResponses, *buildLeaveResponse(&leaveModels[i]))
	}
	return leaveResponses, nil
}

func (uc *leaveUsecase) ApproveLeave(ctx context.Context, sessionData, leaveID string, request *requests.ReviewLeave) (*responses.LeaveRequest, error) {
	session, leaveModel, err := uc.loadPendingForReview(ctx, sessionData, leaveID)
	if err != nil {
		return nil, err
	}

	start, err := workdays.ParseDate(leaveModel.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := workdays.ParseDate(leaveModel.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	// The holiday feed may have changed since submission, so the charge is
	// recomputed against a fresh snapshot before it becomes final.
	snapshot := uc.HolidaySource.GetHolidays(ctx)
	workingDays := workdays.CountWorkingDays(start, end, snapshot)
	if workingDays == 0 {
		return nil, exceptions.ErrLeaveEmptyRange(nil)
	}

	remaining, err := uc.remainingBalance(ctx, leaveModel.UserID)
	if err != nil {
		return nil, err
	}
	if workingDays > remaining {
		return nil, exceptions.ErrLeaveInsufficientBalance(nil)
	}

	leaveModel.WorkingDays = workingDays
	leaveModel.Status = constvars.LeaveStatusApproved
	leaveModel.ReviewedBy = session.UserID
	leaveModel.ReviewComment = request.Comment
	leaveModel.UpdatedAt = time.Now()

	err = uc.LeaveRepository.UpdateLeave(ctx, leaveModel)
	if err != nil {
		return nil, err
	}

	uc.publishLeaveEvent(ctx, constvars.LeaveEventApproved, leaveModel)

	return buildLeaveResponse(leaveModel), nil
}

func (uc *leaveUsecase) RejectLeave(ctx context.Context, sessionData, leaveID string, request *requests.ReviewLeave) (*responses.LeaveRequest, error) {
	session, leaveModel, err := uc.loadPendingForReview(ctx, sessionData, leaveID)
	if err != nil {
		return nil, err
	}

	leaveModel.Status = constvars.LeaveStatusRejected
	leaveModel.ReviewedBy = session.UserID
	leaveModel.ReviewComment = request.Comment
	leaveModel.UpdatedAt = time.Now()

	err = uc.LeaveRepository.UpdateLeave(ctx, leaveModel)
	if err != nil {
		return nil, err
	}

	uc.publishLeaveEvent(ctx, constvars.LeaveEventRejected, leaveModel)

	return buildLeaveResponse(leaveModel), nil
}

func (uc *leaveUsecase) CancelLeave(ctx context.Context, sessionData, leaveID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	leaveModel, err := uc.LeaveRepository.FindByID(ctx, leaveID)
	if err != nil {
		return err
	}
	if leaveModel == nil {
		return exceptions.ErrLeaveNotFound(nil)
	}
	if leaveModel.UserID != session.UserID {
		return exceptions.ErrPermissionDenied(nil)
	}
	if leaveModel.Status != constvars.LeaveStatusPending {
		return exceptions.ErrLeaveNotPending(nil)
	}

	leaveModel.Status = constvars.LeaveStatusCancelled
	leaveModel.UpdatedAt = time.Now()

	return uc.LeaveRepository.UpdateLeave(ctx, leaveModel)
}

func (uc *leaveUsecase) GetLeaveBalance(ctx context.Context, sessionData string) (*responses.LeaveBalance, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	allocation, used, err := uc.balanceParts(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return &responses.LeaveBalance{
		AllocationDays: allocation,
		UsedDays:       used,
		RemainingDays:  allocation - used,
	}, nil
}

func (uc *leaveUsecase) GetExcludedDays(ctx context.Context, request *requests.ExcludedDays) (*responses.ExcludedDays, error) {
	start, err := workdays.ParseDate(request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := workdays.ParseDate(request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	snapshot := uc.HolidaySource.GetHolidays(ctx)
	info := workdays.ExcludedDaysInfo(start, end, snapshot)

	return &responses.ExcludedDays{
		StartDate:    start.ISO(),
		EndDate:      end.ISO(),
		WorkingDays:  workdays.CountWorkingDays(start, end, snapshot),
		WeekendCount: info.WeekendCount,
		Holidays:     info.Holidays,
	}, nil
}

func (uc *leaveUsecase) GetHolidaysForYear(ctx context.Context, year int) ([]responses.Holiday, error) {
	snapshot := uc.HolidaySource.GetHolidays(ctx)

	holidays := workdays.HolidaysForYear(snapshot, year)
	result := make([]responses.Holiday, 0, len(holidays))
	for _, holiday := range holidays {
		result = append(result, responses.Holiday{
			Date: holiday.Date.ISO(),
			Name: holiday.Name,
		})
	}
	return result, nil
}

func (uc *leaveUsecase) GetHolidayCalendar(ctx context.Context, startYear, endYear int) (*responses.HolidayCalendar, error) {
	snapshot := uc.HolidaySource.GetHolidays(ctx)

	dates := workdays.HolidayDatesForCalendar(snapshot, startYear, endYear)
	isoDates := make([]string, 0, len(dates))
	for _, d := range dates {
		isoDates = append(isoDates, d.ISO())
	}

	return &responses.HolidayCalendar{
		StartYear: startYear,
		EndYear:   endYear,
		Dates:     isoDates,
	}, nil
}

func (uc *leaveUsecase) loadPendingForReview(ctx context.Context, sessionData, leaveID string) (*models.Session, *models.LeaveRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}
	if session.Role != constvars.LaribRoleAdmin {
		return nil, nil, exceptions.ErrPermissionDenied(nil)
	}

	leaveModel, err := uc.LeaveRepository.FindByID(ctx, leaveID)
	if err != nil {
		return nil, nil, err
	}
	if leaveModel == nil {
		return nil, nil, exceptions.ErrLeaveNotFound(nil)
	}
	if leaveModel.Status != constvars.LeaveStatusPending {
		return nil, nil, exceptions.ErrLeaveNotPending(nil)
	}
	return session, leaveModel, nil
}

func (uc *leaveUsecase) balanceParts(ctx context.Context, userID string) (allocation, used int, err error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	if user == nil {
		return 0, 0, exceptions.ErrUserNotExist(nil)
	}

	allocation = user.LeaveAllocationDays
	if allocation == 0 {
		allocation = uc.InternalConfig.Leave.AnnualAllocationDays
	}

	approved, err := uc.LeaveRepository.FindApprovedByUserID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	for i := range approved {
		used += approved[i].WorkingDays
	}
	return allocation, used, nil
}

func (uc *leaveUsecase) remainingBalance(ctx context.Context, userID string) (int, error) {
	allocation, used, err := uc.balanceParts(ctx, userID)
	if err != nil {
		return 0, err
	}
	return allocation - used, nil
}

// publishLeaveEvent notifies the mailer queue. Delivery is best effort: a
// broker failure must not fail the request that triggered it.
func (uc *leaveUsecase) publishLeaveEvent(ctx context.Context, event string, leaveModel *models.LeaveRequest) {
	message := &contracts.LeaveEventMessage{
		Event:       event,
		LeaveID:     leaveModel.ID,
		UserEmail:   leaveModel.UserEmail,
		StartDate:   leaveModel.StartDate,
		EndDate:     leaveModel.EndDate,
		WorkingDays: leaveModel.WorkingDays,
		ReviewedBy:  leaveModel.ReviewedBy,
	}
	if err := uc.MailerQueue.PublishLeaveEvent(ctx, message); err != nil {
		uc.Log.Error("failed to publish leave event",
			zap.String("event", event),
			zap.String("leave_id", leaveModel.ID),
			zap.Error(err),
		)
	}
}

func buildLeaveResponse(leaveModel *models.LeaveRequest) *responses.LeaveRequest {
	return &responses.LeaveRequest{
		LeaveID:       leaveModel.ID,
		UserID:        leaveModel.UserID,
		UserEmail:     leaveModel.UserEmail,
		StartDate:     leaveModel.StartDate,
		EndDate:       leaveModel.EndDate,
		WorkingDays:   leaveModel.WorkingDays,
		Reason:        leaveModel.Reason,
		Status:        leaveModel.Status,
		ReviewedBy:    leaveModel.ReviewedBy,
		ReviewComment: leaveModel.ReviewComment,
	}
}
