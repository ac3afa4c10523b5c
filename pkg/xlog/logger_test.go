package xlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mulled-tools/mulled/pkg/xlog"
)

func newBufferLogger(lvl slog.Level) (*xlog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	c := xlog.NewConfig()
	c.Level = lvl
	c.Writer = buf
	return xlog.New(c), buf
}

func TestLoggerLevel(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	logger.Infof("visible %d", 2)
	assert.Contains(t, buf.String(), "visible 2")
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	assert.False(t, logger.Enabled(slog.LevelDebug))
	logger.SetLevel(slog.LevelDebug)
	assert.True(t, logger.Enabled(slog.LevelDebug))

	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLoggerWith(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.With("image", "mulled-v2-abc").Info("checked")
	assert.Contains(t, buf.String(), "image=mulled-v2-abc")
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, xlog.Default(), xlog.FromContext(t.Context()))

	logger, buf := newBufferLogger(slog.LevelInfo)
	xlog.SetDefault(logger)
	defer xlog.SetDefault(xlog.New(xlog.NewConfig()))

	ctx := xlog.WithContext(t.Context(), "component", "registry")
	xlog.C(ctx).Info("hello")
	assert.Contains(t, buf.String(), "component=registry")
}
