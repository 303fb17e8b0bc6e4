package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求链路 ID 在 Context 和 gin.Keys 里共用的键名
const TraceIDKey = "trace_id"

// ContextHandler 在每条日志上带出 ctx 里的 trace_id，
// 一次请求里 handler、service、gorm 的日志由它串起来。
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
