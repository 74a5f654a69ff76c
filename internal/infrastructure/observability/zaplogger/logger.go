// Package zaplogger adapts zap to the observability.Logger port.
package zaplogger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logger struct{ l *zap.Logger }

// New builds a JSON logger on stdout with the given fields bound to every
// entry. When LOG_FILE is set the output is duplicated to that file for
// local debugging. Logger construction happens once at startup, so a
// failure here panics rather than returning an error.
func New(fixed ...observability.Field) observability.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		f, err := openLogFile(logFile)
		if err != nil {
			panic(fmt.Errorf("prepare log file: %w", err))
		}
		sinks = append(sinks, zapcore.AddSync(f))
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(enc),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)

	l := zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stdout)))
	if len(fixed) > 0 {
		l = l.With(toZapFields(fixed)...)
	}
	return &logger{l: l}
}

func (z *logger) With(fields ...observability.Field) observability.Logger {
	if len(fields) == 0 {
		return &logger{l: z.l}
	}
	return &logger{l: z.l.With(toZapFields(fields)...)}
}

func (z *logger) Debug(msg string, fields ...observability.Field) {
	z.l.Debug(msg, toZapFields(fields)...)
}
func (z *logger) Info(msg string, fields ...observability.Field) {
	z.l.Info(msg, toZapFields(fields)...)
}
func (z *logger) Warn(msg string, fields ...observability.Field) {
	z.l.Warn(msg, toZapFields(fields)...)
}
func (z *logger) Error(msg string, fields ...observability.Field) {
	z.l.Error(msg, toZapFields(fields)...)
}

// Sync flushes any buffered entries. Called once on shutdown.
func (z *logger) Sync() error {
	return z.l.Sync()
}

func toZapFields(fs []observability.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fs))
	for _, f := range fs {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
