package shutdown_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobly/internal/pkg/logging"
	"jobly/internal/pkg/shutdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stoppableFunc func(ctx context.Context) error

func (f stoppableFunc) Shutdown(ctx context.Context) error {
	return f(ctx)
}

func TestStop(t *testing.T) {
	t.Run("passes a deadline", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		var hadDeadline bool

		shutdown.Stop(stoppableFunc(func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		}), time.Second, logging.NewFromZap(zap.New(core)))

		assert.True(t, hadDeadline)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "graceful shutdown completed successfully", logs.All()[0].Message)
	})

	t.Run("logs failures as warnings", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)

		shutdown.Stop(stoppableFunc(func(context.Context) error {
			return errors.New("server busy")
		}), time.Second, logging.NewFromZap(zap.New(core)))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})
}
