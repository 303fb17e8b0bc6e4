package middleware

import (
	"context"
	"yatube/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceMiddleware 给每个请求分配链路 ID。上游带了 X-Trace-ID 就沿用，
// 否则生成一个，并回写到响应头方便排查。
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Set(logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), logger.TraceIDKey, traceID))
		c.Header("X-Trace-ID", traceID)

		c.Next()
	}
}
