package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLoggerFrom(zap.New(core))

	l.Debugf("frame %d", 1)
	l.Infof("API listening on %s", "127.0.0.1:8086")
	l.Warningf("Read %s failed", "sim/a")
	l.Error("boom")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "API listening on 127.0.0.1:8086", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewZapLogger("loud")
	assert.Error(t, err)
}

func TestGoplaneLevel(t *testing.T) {
	assert.Equal(t, "warning", goplaneLevel("warn"))
	for _, level := range []string{"debug", "info", "error"} {
		assert.Equal(t, level, goplaneLevel(level))
	}
}
