package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockpulse/internal/domain/dto"
	"stockpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON response, when no handler
// has written one already.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", err))
}

// AbortWithError stops request processing and writes a standardized error
// body with the given status code.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.Header("Content-Type", "application/json")
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
