package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangel/go-configure/log/fields"
	"github.com/zhangel/go-configure/log/level"
)

type ctxKey struct{}

func TestStreamLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewStreamLogger(buf, level.InfoLevel)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.WithLevel(level.DebugLevel).Debug("now shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO]")
	assert.Contains(t, lines[0], "msg:shown 2")
	assert.Contains(t, lines[1], "[DEBUG]")
	assert.Equal(t, level.InfoLevel, l.LogLevel())
}

func TestLoggerFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewStreamLogger(buf, level.TraceLevel).
		WithField("section", "workflow").
		WithFields(fields.Fields{{K: "pass", V: 2}})

	l.Warn("reparse")
	assert.Contains(t, buf.String(), "section:workflow pass:2 msg:reparse")
}

func TestLoggerContextFields(t *testing.T) {
	RegisterCtxFieldProvider(func(ctx context.Context) fields.Fields {
		if v, ok := ctx.Value(ctxKey{}).(string); ok {
			return fields.Fields{{K: "run", V: v}}
		}
		return nil
	})

	buf := &bytes.Buffer{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "r1")
	NewStreamLogger(buf, level.TraceLevel).WithContext(ctx).Info("started")
	assert.Contains(t, buf.String(), "run:r1 msg:started")
}

func TestNewLoggerRequiresEncoderAndWriter(t *testing.T) {
	_, err := NewLogger()
	assert.Error(t, err)

	_, err = NewLogger(WithLevelName("loud"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in     string
		expect level.Level
		ok     bool
	}{
		{"info", level.InfoLevel, true},
		{"WARNING", level.WarnLevel, true},
		{" debug ", level.DebugLevel, true},
		{"none", level.None, true},
		{"verbose", level.None, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			l, err := level.ParseLevel(c.in)
			assert.Equal(t, c.expect, l)
			assert.Equal(t, c.ok, err == nil)
		})
	}
}

func TestConsoleLoggerLevelName(t *testing.T) {
	l, err := NewConsoleLogger(false, WithLevelName("error"))()
	require.NoError(t, err)
	assert.Equal(t, level.ErrorLevel, l.LogLevel())

	_, err = NewConsoleLogger(false, WithLevelName("loud"))()
	assert.Error(t, err)
}
