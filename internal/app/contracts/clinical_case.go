package contracts

import (
	"context"
	"io"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
	"mime/multipart"
)

type CaseUsecase interface {
	CreateCase(ctx context.Context, sessionData string, request *requests.CreateCase) (*responses.ClinicalCase, error)
	GetCaseByID(ctx context.Context, caseID string) (*responses.ClinicalCase, error)
	ListCases(ctx context.Context, filter *requests.ListCases) ([]responses.ClinicalCase, error)
	UpdateCase(ctx context.Context, sessionData, caseID string, request *requests.UpdateCase) (*responses.ClinicalCase, error)
	DeleteCase(ctx context.Context, sessionData, caseID string) error
	UploadAttachment(ctx context.Context, sessionData, caseID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.CaseAttachment, error)
	GetAttachmentURL(ctx context.Context, caseID, objectName string) (*responses.CaseAttachmentURL, error)
}

type CaseRepository interface {
	CreateCase(ctx context.Context, caseModel *models.ClinicalCase) (caseID string, err error)
	FindByID(ctx context.Context, caseID string) (*models.ClinicalCase, error)
	FindAll(ctx context.Context, examination, difficulty string) ([]models.ClinicalCase, error)
	UpdateCase(ctx context.Context, caseModel *models.ClinicalCase) error
	DeleteByID(ctx context.Context, caseID string) error
}
