// Package logging provides the severity logger used across deemon and the
// zap-backed implementation that writes the daily log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/digitalec/deemon/internal/messages"
)

// Logger records a message at a severity level.
type Logger interface {
	Log(level zapcore.Level, msg string, fields ...zap.Field)
}

type zapLogger struct {
	l *zap.Logger
}

// FromZap adapts a *zap.Logger to Logger. A nil logger discards everything.
func FromZap(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return zapLogger{l: l}
}

// Nop returns a Logger that discards all entries.
func Nop() Logger {
	return zapLogger{l: zap.NewNop()}
}

func (z zapLogger) Log(level zapcore.Level, msg string, fields ...zap.Field) {
	if ce := z.l.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

// Open builds a logger that appends JSON lines to path at or above level.
// The parent directory must already exist. The returned close func flushes
// and closes the file.
func Open(path string, level zapcore.Level) (*zap.Logger, func() error, error) {
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf(messages.LoggingOpenFmt, path, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	logger := zap.New(core)

	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

// Console builds a human-readable logger writing to w, used for progress
// notices while the log file is unavailable.
func Console(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
