// Package response renders the unified error envelope.
package response

import (
	"net/http"

	deliverycontext "mediatrack/internal/delivery/context"
	domainerrors "mediatrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Error writes an error envelope with the given status, business code and
// message. The request id always rides along so clients can quote it.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError renders a domain error using its embedded HTTP mapping.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalError renders the generic 500 envelope. The cause stays in the logs.
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
