package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mediatrack/internal/delivery/http/middleware"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxListLimit caps one directory page.
const maxListLimit = 100

// UserHandler holds dependencies for user directory handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns a page of the user directory. The caller is excluded
// from their own listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	input := &usecase.ListUsersInput{
		Search:      c.QueryParam("search"),
		Limit:       queryInt(c, "limit", 20),
		Offset:      queryInt(c, "offset", 0),
		RequesterID: requester.ID,
	}
	if input.Limit < 1 || input.Limit > maxListLimit {
		input.Limit = 20
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	users, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]userResponse, 0, len(users))
	for _, user := range users {
		views = append(views, toUserResponse(user))
	}

	return c.JSON(http.StatusOK, views)
}

// UpdateMe applies a partial profile update to the caller's own account.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), requester.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetUser returns one user by id, or 404.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
