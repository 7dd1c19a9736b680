package contracts

import (
	"context"
	"io"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
	"mime/multipart"
)

type UserUsecase interface {
	GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error)
	UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error)
	UploadAvatarBySession(ctx context.Context, sessionData string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.AvatarUpload, error)
	ListUsers(ctx context.Context, sessionData string) ([]responses.UserProfile, error)
	UpdateUserRole(ctx context.Context, sessionData, userID string, request *requests.UpdateUserRole) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
