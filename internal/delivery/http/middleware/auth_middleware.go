package middleware

import (
	"strings"

	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyCurrentUser is where Authenticate stores the resolved user on the
// echo context.
const ContextKeyCurrentUser = "currentUser"

// AuthMiddleware guards routes behind a bearer access token.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the Authorization header and loads the active user
// behind the token. Every failure mode returns the same generic 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		user, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(ContextKeyCurrentUser, user)

		return next(c)
	}
}

// CurrentUser returns the user placed on the context by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyCurrentUser).(*entity.User)

	return user, ok
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}

	return token, true
}
