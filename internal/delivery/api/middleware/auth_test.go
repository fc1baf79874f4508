package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zembil/internal/domain/entity"
	"zembil/internal/domain/service"
	servicemocks "zembil/internal/mocks/service"
	usecasemocks "zembil/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func claimsFor(subject string, role entity.Role) *service.Claims {
	return &service.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
			ID:      "jti-1",
		},
	}
}

func newAuthRequest(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokens *servicemocks.MockTokenService, auth *usecasemocks.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:   "invalid signature",
			header: "Bearer bad",
			setup: func(tokens *servicemocks.MockTokenService, _ *usecasemocks.MockAuthUsecase) {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "malformed subject",
			header: "Bearer odd",
			setup: func(tokens *servicemocks.MockTokenService, _ *usecasemocks.MockAuthUsecase) {
				tokens.EXPECT().ValidateToken("odd").Return(claimsFor("abc", entity.RoleUser), nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "revoked token",
			header: "Bearer old",
			setup: func(tokens *servicemocks.MockTokenService, auth *usecasemocks.MockAuthUsecase) {
				tokens.EXPECT().ValidateToken("old").Return(claimsFor("7", entity.RoleUser), nil)
				auth.EXPECT().IsTokenRevoked(mock.Anything, "jti-1").Return(true, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_REVOKED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := servicemocks.NewMockTokenService(t)
			auth := usecasemocks.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(tokens, auth)
			}

			m := NewAuthMiddleware(tokens, auth)
			c, rec := newAuthRequest(tt.header)

			called := false
			err := m.Authenticate(func(echo.Context) error {
				called = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestAuthenticate_SetsCaller(t *testing.T) {
	tokens := servicemocks.NewMockTokenService(t)
	auth := usecasemocks.NewMockAuthUsecase(t)
	tokens.EXPECT().ValidateToken("good").Return(claimsFor("7", entity.RoleAdmin), nil)
	auth.EXPECT().IsTokenRevoked(mock.Anything, "jti-1").Return(false, nil)

	m := NewAuthMiddleware(tokens, auth)
	c, _ := newAuthRequest("Bearer good")

	err := m.Authenticate(func(c echo.Context) error {
		userID, err := GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uint(7), userID)

		role, ok := GetRole(c)
		assert.True(t, ok)
		assert.Equal(t, entity.RoleAdmin, role)
		assert.Equal(t, "jti-1", GetTokenID(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
}

func TestAuthenticate_RevocationLookupFails(t *testing.T) {
	tokens := servicemocks.NewMockTokenService(t)
	auth := usecasemocks.NewMockAuthUsecase(t)
	tokens.EXPECT().ValidateToken("good").Return(claimsFor("7", entity.RoleUser), nil)
	auth.EXPECT().IsTokenRevoked(mock.Anything, "jti-1").Return(false, errors.New("db down"))

	m := NewAuthMiddleware(tokens, auth)
	c, _ := newAuthRequest("Bearer good")

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	assert.EqualError(t, err, "db down")
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthRequest("")
		c.Set(contextKeyRole, entity.RoleAdmin)

		err := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		c, rec := newAuthRequest("")
		c.Set(contextKeyRole, entity.RoleUser)

		err := m.RequireRole(entity.RoleAdmin)(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})

	t.Run("unauthenticated is forbidden", func(t *testing.T) {
		c, rec := newAuthRequest("")

		err := m.RequireRole(entity.RoleAdmin)(func(echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetUserID_Unauthenticated(t *testing.T) {
	c, _ := newAuthRequest("")

	_, err := GetUserID(c)

	assert.Error(t, err)
}
