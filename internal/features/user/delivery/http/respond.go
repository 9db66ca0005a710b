package http

import (
	"net/http"

	apperrors "ashen-backend/internal/common/errors"
	"ashen-backend/internal/common/logger"
	"ashen-backend/internal/common/middleware"

	"github.com/gin-gonic/gin"
)

// respondError converts an error to an HTTP status and JSON body at
// the handler boundary. Internal causes are logged but not exposed.
func respondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
	}
	appErr.WithRequestID(middleware.GetRequestID(c))

	if appErr.IsInternal() {
		logger.Error().
			Str("request_id", appErr.RequestID).
			Str("path", c.Request.URL.Path).
			Err(appErr).
			Msg("Request failed")
	}

	body := gin.H{"error": appErr.Message, "code": appErr.Code}
	if len(appErr.Details) > 0 && !appErr.IsInternal() {
		body["details"] = appErr.Details
	}

	c.AbortWithStatusJSON(statusCode(appErr), body)
}

func statusCode(appErr *apperrors.AppError) int {
	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
