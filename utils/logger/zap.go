package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger backs Logger with zap for runs outside the sim.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

func NewZapLogger(level string) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return ZapLogger{sugar: l.Sugar()}, nil
}

// NewZapLoggerFrom wraps an existing zap logger, e.g. zaptest's.
func NewZapLoggerFrom(l *zap.Logger) Logger {
	return ZapLogger{sugar: l.Sugar()}
}

func (z ZapLogger) Infof(format string, a ...interface{}) {
	z.sugar.Infof(format, a...)
}

func (z ZapLogger) Info(msg string) {
	z.sugar.Info(msg)
}

func (z ZapLogger) Debugf(format string, a ...interface{}) {
	z.sugar.Debugf(format, a...)
}

func (z ZapLogger) Debug(msg string) {
	z.sugar.Debug(msg)
}

func (z ZapLogger) Errorf(format string, a ...interface{}) {
	z.sugar.Errorf(format, a...)
}

func (z ZapLogger) Error(msg string) {
	z.sugar.Error(msg)
}

func (z ZapLogger) Warningf(format string, a ...interface{}) {
	z.sugar.Warnf(format, a...)
}

func (z ZapLogger) Warning(msg string) {
	z.sugar.Warn(msg)
}

func (z ZapLogger) Sync() error {
	return z.sugar.Sync()
}
