package usecases

import (
	"context"
	"strings"

	"deskhub/internal/domain/agent"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginResult struct {
	AgentID      uint
	Username     string
	DisplayName  string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	agentRepo agent.Repository
	hasher    PasswordHasher
	tokens    TokenService
	logger    logger.Interface
}

func NewLoginUseCase(
	agentRepo agent.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		agentRepo: agentRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	existing, err := uc.agentRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to look up agent", "error", err)
		return nil, err
	}

	// One generic answer for unknown user, wrong password and disabled
	// account; nothing leaks about which it was.
	if existing == nil || !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}
	if err := uc.hasher.Verify(existing.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "username", username, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	pair, err := uc.tokens.Generate(existing.ID(), existing.Username(), existing.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "agent_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("agent logged in", "agent_id", existing.ID(), "username", username)

	return &LoginResult{
		AgentID:      existing.ID(),
		Username:     existing.Username(),
		DisplayName:  existing.DisplayName(),
		Role:         existing.Role().String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
