// Package logsetup configures console logging from a command line verbosity counter.
package logsetup

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.ytsaurus.tech/library/go/core/log"
	zaplog "go.ytsaurus.tech/library/go/core/log/zap"
)

// Level converts verbosity to logging level.
//
// Zero verbosity logs warnings. Every -v lowers the threshold by one step
// down to trace, every -q raises it up to fatal.
func Level(verbosity int) log.Level {
	switch {
	case verbosity >= 3:
		return log.TraceLevel
	case verbosity == 2:
		return log.DebugLevel
	case verbosity == 1:
		return log.InfoLevel
	case verbosity == 0:
		return log.WarnLevel
	case verbosity == -1:
		return log.ErrorLevel
	default:
		return log.FatalLevel
	}
}

func zapLevel(lvl log.Level) zapcore.Level {
	switch lvl {
	case log.TraceLevel, log.DebugLevel:
		return zapcore.DebugLevel
	case log.InfoLevel:
		return zapcore.InfoLevel
	case log.WarnLevel:
		return zapcore.WarnLevel
	case log.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

// New returns stderr console logger.
func New(verbosity int) (*zaplog.Logger, error) {
	config := zaplog.ConsoleConfig(Level(verbosity))
	config.OutputPaths = []string{"stderr"}

	l, err := zaplog.New(config)
	if err != nil {
		return nil, err
	}

	if verbosity != 0 {
		l.Info("Logging configured", log.Int("verbosity", verbosity), log.String("level", Level(verbosity).String()))
	}
	return l, nil
}

// Must is like New but panics on error.
func Must(verbosity int) *zaplog.Logger {
	l, err := New(verbosity)
	if err != nil {
		panic(fmt.Sprintf("failed to configure logger: %+v", err))
	}
	return l
}

// NewWriter returns console logger writing to w.
func NewWriter(w io.Writer, verbosity int) *zaplog.Logger {
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	l := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoder),
			zapcore.AddSync(w),
			zapLevel(Level(verbosity)),
		),
		zap.AddCallerSkip(1))

	return &zaplog.Logger{L: l}
}
