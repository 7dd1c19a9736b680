package cases

import (
	"context"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CaseController struct {
	Log         *zap.Logger
	CaseUsecase contracts.CaseUsecase
}

func NewCaseController(logger *zap.Logger, caseUsecase contracts.CaseUsecase) *CaseController {
	return &CaseController{
		Log:         logger,
		CaseUsecase: caseUsecase,
	}
}

func (ctrl *CaseController) CreateCase(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCase)
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

	result, err := ctrl.CaseUsecase.CreateCase(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CaseCreatedSuccess, result)
}

func (ctrl *CaseController) GetCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "caseID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.GetCaseByID(ctx, caseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCaseSuccess, result)
}

func (ctrl *CaseController) ListCases(w http.ResponseWriter, r *http.Request) {
	filter := &requests.ListCases{
		Examination: r.URL.Query().Get("examination"),
		Difficulty:  r.URL.Query().Get("difficulty"),
	}

	err := utils.ValidateStruct(filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.ListCases(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListCasesSuccess, result)
}

func (ctrl *CaseController) UpdateCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "caseID"))
		return
	}

	request := new(requests.UpdateCase)
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

	result, err := ctrl.CaseUsecase.UpdateCase(ctx, sessionData, caseID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CaseUpdatedSuccess, result)
}

func (ctrl *CaseController) DeleteCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "caseID"))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.CaseUsecase.DeleteCase(ctx, sessionData, caseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CaseDeletedSuccess, nil)
}

func (ctrl *CaseController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "caseID"))
		return
	}

	err := r.ParseMultipartForm(32 << 20)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("attachment")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.UploadAttachment(ctx, sessionData, caseID, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CaseAttachmentUploadSuccess, result)
}

func (ctrl *CaseController) GetAttachmentURL(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "caseID"))
		return
	}

	objectName := chi.URLParam(r, "object")
	if objectName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "object"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.GetAttachmentURL(ctx, caseID, objectName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CaseAttachmentURLSuccess, result)
}
