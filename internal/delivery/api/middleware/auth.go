package middleware

import (
	"log/slog"
	"strings"

	"zembil/internal/delivery/api/response"
	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Keys of the authenticated caller in echo.Context.
const (
	contextKeyUserID  = "userID"
	contextKeyRole    = "role"
	contextKeyTokenID = "tokenID"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate rejects requests without a valid, unrevoked bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		userID, err := claims.UserID()
		if err != nil || !claims.Role.IsValid() {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		revoked, err := m.authUC.IsTokenRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return err
		}
		if revoked {
			return response.HandleAppError(c, domainerrors.ErrTokenRevoked)
		}

		SetCaller(c, userID, claims.Role, claims.ID)

		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), slog.Uint64("user_id", uint64(userID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole only admits callers with the given role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok || !role.Satisfies(requiredRole) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// SetCaller records the authenticated caller on the request.
func SetCaller(c echo.Context, userID uint, role entity.Role, tokenID string) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyRole, role)
	c.Set(contextKeyTokenID, tokenID)
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (uint, error) {
	userID, ok := c.Get(contextKeyUserID).(uint)
	if !ok || userID == 0 {
		return 0, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

// GetRole returns the authenticated caller's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}

// GetTokenID returns the jti of the access token the request carried.
func GetTokenID(c echo.Context) string {
	id, _ := c.Get(contextKeyTokenID).(string)

	return id
}
