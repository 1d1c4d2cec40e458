package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the report pipeline.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
	Sync() error
}

// ZapLogger wraps zap behind the Logger interface.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds a json zap logger at the given level. Log lines go to
// stderr so they never interleave with the report text on stdout.
func NewZapLogger(level string) (Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: logger}, nil
}

// extractFields pulls the report run fields out of the context.
func (l *ZapLogger) extractFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0)

	if runID, ok := ctx.Value("run_id").(string); ok && runID != "" {
		fields = append(fields, zap.String("run_id", runID))
	}

	if section, ok := ctx.Value("section").(string); ok && section != "" {
		fields = append(fields, zap.String("section", section))
	}

	return fields
}

func (l *ZapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	fields := l.extractFields(ctx)
	l.logger.Debug(fmt.Sprintf(format, args...), fields...)
}

func (l *ZapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	fields := l.extractFields(ctx)
	l.logger.Info(fmt.Sprintf(format, args...), fields...)
}

func (l *ZapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	fields := l.extractFields(ctx)
	l.logger.Warn(fmt.Sprintf(format, args...), fields...)
}

func (l *ZapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	fields := l.extractFields(ctx)
	l.logger.Error(fmt.Sprintf(format, args...), fields...)
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
