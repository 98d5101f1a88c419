package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/exprc/exprc/utils"
)

// NewRequestId attaches a fresh request id to the request context and to the
// request-scoped logger, so every log line of one request can be correlated.
func NewRequestId(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.NewString()

		ctx := utils.StoreRequestIdInContext(c.Request.Context(), requestId)
		requestLogger := logger.With(slog.String("request_id", requestId))
		ctx = utils.StoreLoggerInContext(ctx, requestLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", requestId)
		c.Next()
	}
}
