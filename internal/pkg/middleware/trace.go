package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceHeader 链路追踪ID的请求/响应头
const TraceHeader = "X-Trace-ID"

// traceKey gin context 中存放追踪ID的键
const traceKey = "traceID"

// TraceMiddleware 透传上游带来的追踪ID，没有则生成一个
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(traceKey, traceID)
		c.Header(TraceHeader, traceID)

		c.Next()
	}
}

// TraceID 从 gin context 取出当前请求的追踪ID
func TraceID(c *gin.Context) string {
	return c.GetString(traceKey)
}
