package usecases

import (
	"context"

	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokens: tokens, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	pair, err := uc.tokens.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
