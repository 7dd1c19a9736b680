package auth

import (
	"context"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/app/models"
	"larib-portal/internal/pkg/constvars"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
	"larib-portal/internal/pkg/exceptions"
	"larib-portal/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		Email:               request.Email,
		Password:            hashedPassword,
		FirstName:           request.FirstName,
		LastName:            request.LastName,
		Role:                constvars.LaribRoleUser,
		LeaveAllocationDays: uc.InternalConfig.Leave.AnnualAllocationDays,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		UserID: userID,
		Email:  request.Email,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, existingUser.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.JWT.SessionExpiredTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    existingUser.ID,
		Email:     existingUser.Email,
		Role:      existingUser.Role,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}

	err = uc.RedisRepository.Set(ctx, session.SessionID, session, sessionExpiry)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, sessionID)
}

func (uc *authUsecase) GetSessionProfile(ctx context.Context, sessionData string) (*responses.SessionProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	return &responses.SessionProfile{
		UserID: session.UserID,
		Email:  session.Email,
		Role:   session.Role,
	}, nil
}
