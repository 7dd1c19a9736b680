package contracts

import (
	"context"
	"larib-portal/internal/pkg/dto/requests"
	"larib-portal/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.Register) (*responses.Register, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionID string) error
	GetSessionProfile(ctx context.Context, sessionData string) (*responses.SessionProfile, error)
}
