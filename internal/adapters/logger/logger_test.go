package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/crackingshells/hatch-registry/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("added version 1.0.0 to package weather")

	g := goldie.New(t)
	g.Assert(t, "logger_info", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Warn("dependency modified but not present")

	g := goldie.New(t)
	g.Assert(t, "logger_warn", buf.Bytes())
}

func TestLogger_Error_PlainError(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(errors.New("something broke"))

	g := goldie.New(t)
	g.Assert(t, "logger_error_plain", buf.Bytes())
}

func TestLogger_Error_ChainRendersCauses(t *testing.T) {
	l, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("file does not exist"), "failed to read registry document"), "failed to load registry")
	l.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_Error_NilIsSilent(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.Bytes())
}

func TestLogger_JSONMode(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Info("indexed repository")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"indexed repository"`)
}

func TestLogger_JSONMode_Error(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "boom")
}
