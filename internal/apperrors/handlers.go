package apperrors

import (
	"agenda_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure variant of the API envelope.
type ErrorResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

// HandleError serializes an error into the response envelope. Internal
// faults are logged with the request correlation id; the client gets
// the opaque message plus that id, never the cause or a stack trace.
func HandleError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	resp := ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
	}

	if appErr.Code == CodeInternalError {
		correlationID := logger.GetRequestID(ctx)
		resp.CorrelationID = correlationID
		logger.CtxWithError(ctx, "Internal error", unwrapOrSelf(appErr),
			"correlation_id", correlationID,
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.HTTPCode, resp)
}

func unwrapOrSelf(appErr *AppError) error {
	if appErr.Err != nil {
		return appErr.Err
	}
	return appErr
}
