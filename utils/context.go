package utils

import (
	"context"
	"log/slog"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
	ContextKeyRequestId
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreRequestIdInContext(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestId, requestId)
}

func RequestIdFromContext(ctx context.Context) string {
	requestId, _ := ctx.Value(ContextKeyRequestId).(string)
	return requestId
}
