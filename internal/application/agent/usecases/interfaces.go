package usecases

import "context"

// PasswordHasher abstracts the bcrypt implementation in infrastructure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenPair is an access/refresh token pair issued at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues and refreshes the console's JWT tokens.
type TokenService interface {
	Generate(agentID uint, username, role string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}
