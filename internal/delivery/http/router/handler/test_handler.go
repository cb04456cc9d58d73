package handler

import (
	"net/http"

	"mediatrack/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid bearer access token
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"status": "unauthenticated"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "authenticated",
		"userID": user.ID,
		"login":  user.Login,
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "public",
	})
}
