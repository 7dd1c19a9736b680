package cases

import (
	"context"
	"io"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/utils"
	"mime/multipart"
	"path/filepath"
	"time"
)

type caseUsecase struct {
	CaseRepository contracts.CaseRepository
	SessionService contracts.SessionService
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	DriverConfig   *config.DriverConfig
}

func NewCaseUsecase(
	caseRepository contracts.CaseRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
) contracts.CaseUsecase {
	return &caseUsecase{
		CaseRepository: caseRepository,
		SessionService: sessionService,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
}

func (uc *caseUsecase) CreateCase(ctx context.Context, sessionData string, request *requests.CreateCase) (*responses.ClinicalCase, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	caseModel := &models.ClinicalCase{
		Title:       request.Title,
		Description: request.Description,
		Examination: request.Examination,
		Difficulty:  request.Difficulty,
		Diagnosis:   request.Diagnosis,
		Tags:        request.Tags,
		CreatedBy:   session.UserID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	caseID, err := uc.CaseRepository.CreateCase(ctx, caseModel)
	if err != nil {
		return nil, err
	}
	caseModel.ID = caseID

	return buildCaseResponse(caseModel), nil
}

func (uc *caseUsecase) GetCaseByID(ctx context.Context, caseID string) (*responses.ClinicalCase, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	return buildCaseResponse(caseModel), nil
}

func (uc *caseUsecase) ListCases(ctx context.Context, filter *requests.ListCases) ([]responses.ClinicalCase, error) {
	caseModels, err := uc.CaseRepository.FindAll(ctx, filter.Examination, filter.Difficulty)
	if err != nil {
		return nil, err
	}

	caseResponses := make([]responses.ClinicalCase, 0, len(caseModels))
	for i := range caseModels {
		caseResponses = append(caseResponses, *buildCaseResponse(&caseModels[i]))
	}
	return caseResponses, nil
}

func (uc *caseUsecase) UpdateCase(ctx context.Context, sessionData, caseID string, request *requests.UpdateCase) (*responses.ClinicalCase, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	if session.Role != constvars.LaribRoleAdmin && caseModel.CreatedBy != session.UserID {
		return nil, exceptions.ErrPermissionDenied(nil)
	}

	if request.Title != "" {
		caseModel.Title = request.Title
	}
	if request.Description != "" {
		caseModel.Description = request.Description
	}
	if request.Examination != "" {
		caseModel.Examination = request.Examination
	}
	if request.Difficulty != "" {
		caseModel.Difficulty = request.Difficulty
	}
	if request.Diagnosis != "" {
		caseModel.Diagnosis = request.Diagnosis
	}
	if request.Tags != nil {
		caseModel.Tags = request.Tags
	}
	caseModel.UpdatedAt = time.Now()

	err = uc.CaseRepository.UpdateCase(ctx, caseModel)
	if err != nil {
		return nil, err
	}
	return buildCaseResponse(caseModel), nil
}

func (uc *caseUsecase) DeleteCase(ctx context.Context, sessionData, caseID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return err
	}
	if caseModel == nil {
		return exceptions.ErrCaseNotFound(nil)
	}
	if session.Role != constvars.LaribRoleAdmin && caseModel.CreatedBy != session.UserID {
		return exceptions.ErrPermissionDenied(nil)
	}

	return uc.CaseRepository.DeleteByID(ctx, caseID)
}

func (uc *caseUsecase) UploadAttachment(ctx context.Context, sessionData, caseID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.CaseAttachment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	if session.Role != constvars.LaribRoleAdmin && caseModel.CreatedBy != session.UserID {
		return nil, exceptions.ErrPermissionDenied(nil)
	}

	maxSize := uc.InternalConfig.App.CaseAttachmentMaxSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientFileTooLarge, constvars.ErrDevInvalidInput)
	}

	objectName := utils.GenerateObjectName("case", caseID, filepath.Ext(fileHeader.Filename))
	bucketName := uc.DriverConfig.Minio.BucketName

	_, err = uc.MinioStorage.UploadFile(ctx, file, fileHeader, bucketName, objectName)
	if err != nil {
		return nil, err
	}

	attachment := models.CaseAttachment{
		ObjectName:  objectName,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
	}
	caseModel.Attachments = append(caseModel.Attachments, attachment)
	caseModel.UpdatedAt = time.Now()

	err = uc.CaseRepository.UpdateCase(ctx, caseModel)
	if err != nil {
		return nil, err
	}

	return &responses.CaseAttachment{
		ObjectName:  attachment.ObjectName,
		FileName:    attachment.FileName,
		ContentType: attachment.ContentType,
		Size:        attachment.Size,
	}, nil
}

func (uc *caseUsecase) GetAttachmentURL(ctx context.Context, caseID, objectName string) (*responses.CaseAttachmentURL, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	found := false
	for i := range caseModel.Attachments {
		if caseModel.Attachments[i].ObjectName == objectName {
			found = true
			break
		}
	}
	if !found {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	expiry := time.Duration(uc.InternalConfig.App.PresignedURLExpiryInHours) * time.Hour
	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.CaseAttachmentURL{
		ObjectName: objectName,
		URL:        url,
	}, nil
}

func buildCaseResponse(caseModel *models.ClinicalCase) *responses.ClinicalCase {
	attachments := make([]responses.CaseAttachment, 0, len(caseModel.Attachments))
	for i := range caseModel.Attachments {
		attachments = append(attachments, responses.CaseAttachment{
			ObjectName:  caseModel.Attachments[i].ObjectName,
			FileName:    caseModel.Attachments[i].FileName,
			ContentType: caseModel.Attachments[i].ContentType,
			Size:        caseModel.Attachments[i].Size,
		})
	}

	return &responses.ClinicalCase{
		CaseID:      caseModel.ID,
		Title:       caseModel.Title,
		Description: caseModel.Description,
		Examination: caseModel.Examination,
		Difficulty:  caseModel.Difficulty,
		Diagnosis:   caseModel.Diagnosis,
		Tags:        caseModel.Tags,
		Attachments: attachments,
		CreatedBy:   caseModel.CreatedBy,
	}
}
