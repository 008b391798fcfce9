package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("evaluating 2 platforms")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("registry document shadowed")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error_Plain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(errors.New("boom"))

	g := goldie.New(t)
	g.Assert(t, "error_plain", buf.Bytes())
}

func TestLogger_Error_Chain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(errors.New("connection refused"), "failed to open registry"))

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_Error_NestedChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	// Two zerr layers with a plain error at the root: each layer renders
	// its own message, the root renders its full text.
	err := zerr.Wrap(zerr.Wrap(errors.New("dial tcp: connection refused"), "open platform table"), "failed to open registry")
	lg.Error(err)

	want := "✗ Error: failed to open registry\n\n" +
		"  Caused by:\n" +
		"    → open platform table\n" +
		"    → dial tcp: connection refused\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("evaluation complete")
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"msg":"evaluation complete"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)

	buf.Reset()
	lg.Error(errors.New("boom"))
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogger_SetOutputNil(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	lg := logger.New().(*logger.Logger)

	// A nil writer falls back to stderr without panicking.
	lg.SetOutput(nil)
	lg.Info("still alive")
}
