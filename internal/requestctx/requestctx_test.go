package requestctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestLoggerFallsBackToNop(t *testing.T) {
	assert.NotNil(t, Logger(context.Background()))

	logger := zap.NewExample()
	assert.Same(t, logger, Logger(WithLogger(context.Background(), logger)))
}
