package utils

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext_falls_back_to_default(t *testing.T) {
	assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))
}

func TestLoggerFromContext_round_trip(t *testing.T) {
	logger := slog.New(NewLocalDevHandler(io.Discard))
	ctx := StoreLoggerInContext(context.Background(), logger)

	assert.Equal(t, logger, LoggerFromContext(ctx))
}

func TestRequestIdFromContext(t *testing.T) {
	assert.Equal(t, "", RequestIdFromContext(context.Background()))

	ctx := StoreRequestIdInContext(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIdFromContext(ctx))
}
