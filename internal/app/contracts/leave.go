package contracts

import (
	"context"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
)

type LeaveUsecase interface {
	SubmitLeaveRequest(ctx context.Context, sessionData string, request *requests.SubmitLeave) (*responses.LeaveRequest, error)
	GetLeaveByID(ctx context.Context, sessionData, leaveID string) (*responses.LeaveRequest, error)
	ListLeaves(ctx context.Context, sessionData string) ([]responses.LeaveRequest, error)
	ApproveLeave(ctx context.Context, sessionData, leaveID string, request *requests.ReviewLeave) (*responses.LeaveRequest, error)
	RejectLeave(ctx context.Context, sessionData, leaveID string, request *requests.ReviewLeave) (*responses.LeaveRequest, error)
	CancelLeave(ctx context.Context, sessionData, leaveID string) error
	GetLeaveBalance(ctx context.Context, sessionData string) (*responses.LeaveBalance, error)
	GetExcludedDays(ctx context.Context, request *requests.ExcludedDays) (*responses.ExcludedDays, error)
	GetHolidaysForYear(ctx context.Context, year int) ([]responses.Holiday, error)
	GetHolidayCalendar(ctx context.Context, startYear, endYear int) (*responses.HolidayCalendar, error)
}

type LeaveRepository interface {
	CreateLeave(ctx context.Context, leaveModel *models.LeaveRequest) (leaveID string, err error)
	FindByID(ctx context.Context, leaveID string) (*models.LeaveRequest, error)
	FindByUserID(ctx context.Context, userID string) ([]models.LeaveRequest, error)
	FindAll(ctx context.Context) ([]models.LeaveRequest, error)
	FindApprovedByUserID(ctx context.Context, userID string) ([]models.LeaveRequest, error)
	UpdateLeave(ctx context.Context, leaveModel *models.LeaveRequest) error
}
