package leaves

import (
	"context"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LeaveController struct {
	Log          *zap.Logger
	LeaveUsecase contracts.LeaveUsecase
}

func NewLeaveController(logger *zap.Logger, leaveUsecase contracts.LeaveUsecase) *LeaveController {
	return &LeaveController{
		Log:          logger,
		LeaveUsecase: leaveUsecase,
	}
}

func (ctrl *LeaveController) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitLeave)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.SubmitLeaveRequest(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LeaveSubmittedSuccess, result)
}

func (ctrl *LeaveController) GetLeave(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveID")
	if leaveID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "leaveID"))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.GetLeaveByID(ctx, sessionData, leaveID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLeaveSuccess, result)
}

func (ctrl *LeaveController) ListLeaves(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.ListLeaves(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListLeavesSuccess, result)
}

func (ctrl *LeaveController) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	ctrl.reviewLeave(w, r, ctrl.LeaveUsecase.ApproveLeave, constvars.LeaveApprovedSuccess)
}

func (ctrl *LeaveController) RejectLeave(w http.ResponseWriter, r *http.Request) {
	ctrl.reviewLeave(w, r, ctrl.LeaveUsecase.RejectLeave, constvars.LeaveRejectedSuccess)
}

func (ctrl *LeaveController) CancelLeave(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveID")
	if leaveID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "leaveID"))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.LeaveUsecase.CancelLeave(ctx, sessionData, leaveID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LeaveCancelledSuccess, nil)
}

func (ctrl *LeaveController) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.GetLeaveBalance(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLeaveBalanceSuccess, result)
}

func (ctrl *LeaveController) GetExcludedDays(w http.ResponseWriter, r *http.Request) {
	request := &requests.ExcludedDays{
		StartDate: r.URL.Query().Get("start"),
		EndDate:   r.URL.Query().Get("end"),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.GetExcludedDays(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExcludedDaysSuccess, result)
}

func (ctrl *LeaveController) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "year"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.GetHolidaysForYear(ctx, year)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHolidaysSuccess, result)
}

func (ctrl *LeaveController) GetHolidayCalendar(w http.ResponseWriter, r *http.Request) {
	startYear, err := strconv.Atoi(r.URL.Query().Get("startYear"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "startYear"))
		return
	}
	endYear, err := strconv.Atoi(r.URL.Query().Get("endYear"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "endYear"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.LeaveUsecase.GetHolidayCalendar(ctx, startYear, endYear)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHolidayDatesSuccess, result)
}

type reviewFunc func(ctx context.Context, sessionData, leaveID string, request *requests.ReviewLeave) (*responses.LeaveRequest, error)

func (ctrl *LeaveController) reviewLeave(w http.ResponseWriter, r *http.Request, review reviewFunc, successMessage string) {
	leaveID := chi.URLParam(r, "leaveID")
	if leaveID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "leaveID"))
		return
	}

	request := new(requests.ReviewLeave)
	if r.Body != nil && r.ContentLength > 0 {
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := review(ctx, sessionData, leaveID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}
