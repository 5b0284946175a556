package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(&filteringHandler{
		underlying: slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
}

func TestFilteringHandlerSections(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newTestLogger(buf)

	logger.Debug("no section")
	assert.Empty(t, buf.String())

	logger.With("section", "scope").Debug("bound section")
	assert.Contains(t, buf.String(), "bound section")
	assert.Contains(t, buf.String(), "section=scope")

	buf.Reset()
	logger.Debug("record section", "section", "parser")
	assert.Contains(t, buf.String(), "record section")

	buf.Reset()
	logger.With("section", "backend").Info("unknown section")
	assert.Empty(t, buf.String())

	logger.Warn("warnings always pass")
	assert.Contains(t, buf.String(), "warnings always pass")
}
