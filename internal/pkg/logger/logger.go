// Package logger adapts zap to the ports.Logger seam.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"reword/internal/ports"
)

// ZapLogger routes the application's operational log through zap.
type ZapLogger struct {
	log *zap.Logger
}

// NewZap builds a production zap logger writing to stderr. Verbose enables
// debug-level output.
func NewZap(verbose bool) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{log: log}, nil
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() {
	_ = l.log.Sync()
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	zfields := toZapFields(fields)
	if err != nil {
		zfields = append(zfields, zap.Error(err))
	}
	l.log.Error(msg, zfields...)
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

var _ ports.Logger = (*ZapLogger)(nil)
