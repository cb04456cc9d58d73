// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mediatrack/config"
	"mediatrack/internal/delivery/http/middleware"
	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/service"
	"mediatrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tokenResponse is the login and refresh response body. The refresh token
// travels only in the cookie, never in the body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// userResponse is the public view of a user. The password hash never leaves
// the server.
type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Login:     user.Login,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	tokenSvc service.TokenService
	cookie   *config.CookieConfig
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		tokenSvc: tokenSvc,
		cookie:   cfg.Cookie,
		logger:   logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles the credential exchange. The username field accepts either
// the login or the email. On success the access token goes in the body and
// the refresh token in an HTTP-only cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	pair, err := h.auth.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, pair.RefreshToken)

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   pair.TokenType,
	})
}

// Refresh rotates the refresh token presented in the cookie and returns a
// fresh access token. The body carries no input.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(h.cookie.Name)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthorized
	}

	pair, err := h.auth.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, pair.RefreshToken)

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   pair.TokenType,
	})
}

// Logout revokes the caller's session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.auth.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// Me returns the public view of the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// setRefreshCookie installs the refresh token cookie, scoped to the auth
// routes, living exactly as long as the token itself.
func (h *AuthHandler) setRefreshCookie(c echo.Context, refreshToken string) {
	c.SetCookie(h.buildCookie(refreshToken, h.tokenSvc.RefreshTokenDuration()))
}

// clearRefreshCookie expires the cookie immediately.
func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(h.buildCookie("", -time.Second))
}

func (h *AuthHandler) buildCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     h.cookie.Path,
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: h.cookie.HTTPOnly,
		Secure:   h.cookie.Secure,
		SameSite: sameSiteMode(h.cookie.SameSite),
	}
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
