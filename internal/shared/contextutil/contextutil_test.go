package contextutil_test

import (
	"context"
	"testing"

	"go-talent/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()

	t.Run("from context", func(t *testing.T) {
		l := zap.NewExample().Named("scoped")
		ctx := contextutil.WithLogger(context.Background(), l)
		assert.Same(t, l, contextutil.GetLogger(ctx, fallback))
	})

	t.Run("fallback", func(t *testing.T) {
		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
