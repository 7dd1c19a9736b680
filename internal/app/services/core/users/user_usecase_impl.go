package users

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

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	DriverConfig   *config.DriverConfig
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existingUser, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return uc.buildProfileResponse(ctx, existingUser)
}

func (uc *userUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existingUser, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Email != "" && request.Email != existingUser.Email {
		conflictingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if conflictingUser != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		existingUser.Email = request.Email
	}
	if request.FirstName != "" {
		existingUser.FirstName = request.FirstName
	}
	if request.LastName != "" {
		existingUser.LastName = request.LastName
	}
	existingUser.UpdatedAt = time.Now()

	err = uc.UserRepository.UpdateUser(ctx, existingUser)
	if err != nil {
		return nil, err
	}

	return uc.buildProfileResponse(ctx, existingUser)
}

func (uc *userUsecase) UploadAvatarBySession(ctx context.Context, sessionData string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.AvatarUpload, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existingUser, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	maxSize := uc.InternalConfig.App.AvatarMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientFileTooLarge, constvars.ErrDevInvalidInput)
	}

	objectName := utils.GenerateObjectName("avatar", session.UserID, filepath.Ext(fileHeader.Filename))
	bucketName := uc.DriverConfig.Minio.BucketName

	_, err = uc.MinioStorage.UploadFile(ctx, file, fileHeader, bucketName, objectName)
	if err != nil {
		return nil, err
	}

	existingUser.AvatarObjectName = objectName
	existingUser.UpdatedAt = time.Now()
	err = uc.UserRepository.UpdateUser(ctx, existingUser)
	if err != nil {
		return nil, err
	}

	avatarURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, uc.presignedExpiry())
	if err != nil {
		return nil, err
	}

	return &responses.AvatarUpload{
		ObjectName: objectName,
		AvatarURL:  avatarURL,
	}, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context, sessionData string) ([]responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.LaribRoleAdmin {
		return nil, exceptions.ErrPermissionDenied(nil)
	}

	userModels, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]responses.UserProfile, 0, len(userModels))
	for i := range userModels {
		profiles = append(profiles, responses.UserProfile{
			UserID:              userModels[i].ID,
			Email:               userModels[i].Email,
			FirstName:           userModels[i].FirstName,
			LastName:            userModels[i].LastName,
			Role:                userModels[i].Role,
			LeaveAllocationDays: userModels[i].LeaveAllocationDays,
		})
	}
	return profiles, nil
}

func (uc *userUsecase) UpdateUserRole(ctx context.Context, sessionData, userID string, request *requests.UpdateUserRole) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.LaribRoleAdmin {
		return nil, exceptions.ErrPermissionDenied(nil)
	}

	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	existingUser.Role = request.Role
	if request.LeaveAllocationDays > 0 {
		existingUser.LeaveAllocationDays = request.LeaveAllocationDays
	}
	existingUser.UpdatedAt = time.Now()

	err = uc.UserRepository.UpdateUser(ctx, existingUser)
	if err != nil {
		return nil, err
	}

	return uc.buildProfileResponse(ctx, existingUser)
}

func (uc *userUsecase) buildProfileResponse(ctx context.Context, userModel *models.User) (*responses.UserProfile, error) {
	profile := &responses.UserProfile{
		UserID:              userModel.ID,
		Email:               userModel.Email,
		FirstName:           userModel.FirstName,
		LastName:            userModel.LastName,
		Role:                userModel.Role,
		LeaveAllocationDays: userModel.LeaveAllocationDays,
	}

	if userModel.AvatarObjectName != "" {
		avatarURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, userModel.AvatarObjectName, uc.presignedExpiry())
		if err != nil {
			return nil, err
		}
		profile.AvatarURL = avatarURL
	}
	return profile, nil
}

func (uc *userUsecase) presignedExpiry() time.Duration {
	return time.Duration(uc.InternalConfig.App.PresignedURLExpiryInHours) * time.Hour
}
