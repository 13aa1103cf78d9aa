package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderRequestID = "X-Request-Id"

	ctxRequestID = "request_id"
)

func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		if status >= 500 {
			level = logger.ErrorLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(ctxRequestID)),
			logger.String("trace_id", traceIDFromContext(c.Request.Context())),
			logger.String("error", c.GetString("error")),
		)
	}
}

func traceIDFromContext(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}
