package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/application/agent/usecases"
	"deskhub/internal/interfaces/http/handlers/testutil"
	"deskhub/internal/shared/errors"
)

type mockLoginExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

func (m *mockLoginExecutor) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockRefreshExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error)
}

func (m *mockRefreshExecutor) Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns tokens on valid credentials", func(t *testing.T) {
		loginUC := &mockLoginExecutor{
			executeFn: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
				assert.Equal(t, "mgarcia", cmd.Username)
				assert.Equal(t, "s3cretpass", cmd.Password)
				return &usecases.LoginResult{
					AgentID:      7,
					Username:     "mgarcia",
					DisplayName:  "Maria Garcia",
					Role:         "agent",
					AccessToken:  "access-token",
					RefreshToken: "refresh-token",
					ExpiresIn:    900,
				}, nil
			},
		}
		handler := NewAuthHandler(loginUC, &mockRefreshExecutor{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "mgarcia",
			"password": "s3cretpass",
		})
		handler.Login(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)

		var data loginResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, uint(7), data.AgentID)
		assert.Equal(t, "access-token", data.AccessToken)
		assert.Equal(t, "refresh-token", data.RefreshToken)
		assert.Equal(t, int64(900), data.ExpiresIn)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		handler := NewAuthHandler(&mockLoginExecutor{}, &mockRefreshExecutor{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "mgarcia",
		})
		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("propagates unauthorized errors", func(t *testing.T) {
		loginUC := &mockLoginExecutor{
			executeFn: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
				return nil, errors.NewUnauthorizedError("invalid credentials")
			},
		}
		handler := NewAuthHandler(loginUC, &mockRefreshExecutor{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "mgarcia",
			"password": "wrong",
		})
		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("rotates the token pair", func(t *testing.T) {
		refreshUC := &mockRefreshExecutor{
			executeFn: func(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error) {
				assert.Equal(t, "old-refresh", cmd.RefreshToken)
				return &usecases.RefreshTokenResult{
					AccessToken:  "new-access",
					RefreshToken: "new-refresh",
					ExpiresIn:    900,
				}, nil
			},
		}
		handler := NewAuthHandler(&mockLoginExecutor{}, refreshUC, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/refresh", map[string]string{
			"refresh_token": "old-refresh",
		})
		handler.Refresh(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("rejects an expired refresh token", func(t *testing.T) {
		refreshUC := &mockRefreshExecutor{
			executeFn: func(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error) {
				return nil, errors.NewUnauthorizedError("refresh token expired")
			},
		}
		handler := NewAuthHandler(&mockLoginExecutor{}, refreshUC, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/refresh", map[string]string{
			"refresh_token": "stale",
		})
		handler.Refresh(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
