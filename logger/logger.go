package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/railyard-cli/railyard/sym"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
)

func init() {
	// Safe no-op logger at package load time so early callers don't panic
	// before Initialize() runs.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger for the given CLI verbosity
// (the count of -v flags). Output is human-readable and colored; there
// is no machine format — the tool is interactive by nature.
func Initialize(verbosity int) error {
	zapLogger := zap.New(
		zapcore.NewCore(
			newConsoleEncoder(),
			zapcore.AddSync(os.Stderr),
			VerbosityToLevel(verbosity),
		),
	)
	Logger = zapLogger.Sugar()
	return nil
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		Logger.Sync()
	}
}

// WithStage returns a logger named after the pipeline stage and carrying
// its glyph as a structured field. The name comes from sym.StageNames, so
// the component column in log lines can never disagree with the glyph.
func WithStage(glyph string) *zap.SugaredLogger {
	return Logger.Named(sym.StageNames[glyph]).With(FieldStage, glyph)
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
