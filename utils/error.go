package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innflow/services/engine"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// EngineError maps a typed booking engine error onto an HTTP response.
// The kind tells API consumers whether to fix configuration, retry, or
// contact support.
func EngineError(c *gin.Context, err error) {
	logger := GetLogger()

	var confErr *engine.ConfigurationError
	var availErr *engine.AvailabilityError
	var bookErr *engine.BookingError

	switch {
	case errors.As(err, &confErr):
		logger.Warn("configuration error", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: confErr.Error(), Kind: "configuration",
		})
	case errors.As(err, &availErr):
		logger.Warn("availability error", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Message: availErr.Error(), Kind: "availability",
		})
	case errors.As(err, &bookErr):
		logger.Error("booking error", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Message: bookErr.Error(), Kind: "booking",
		})
	default:
		logger.Error("booking engine error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(), Kind: "engine",
		})
	}
}
