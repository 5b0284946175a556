package ast

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogRendersOnlyEmittedRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	on := &AtomicFormula{Predicate: Name{Value: "on"}, Terms: []Term{&Variable{Value: "?x"}, &Name{Value: "a"}}}

	logger.Debug("dropped", "atom", Slog(on))
	assert.Empty(t, buf.String())

	logger.Info("kept", "atom", Slog(on))
	assert.Contains(t, buf.String(), `atom="(on ?x a)"`)

	assert.Equal(t, Show(on), Slog(on).LogValue().String())
	assert.Equal(t, "nil", Slog(nil).LogValue().String())
}
