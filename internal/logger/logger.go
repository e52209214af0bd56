// Package logger provides structured logging for Monkey Explorer using zap.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/monkeyexplorer/internal/config"
)

const defaultLevel = zapcore.WarnLevel

// Logger wraps zap.SugaredLogger with catalog context helpers.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a Logger from configuration.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	core := zapcore.NewCore(
		buildEncoder(cfg.Format),
		buildWriters(cfg.Output),
		parseLevel(cfg.Level),
	)
	return wrap(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))), nil
}

// NewDefault creates a Logger at warn level writing text to stderr.
func NewDefault() *Logger {
	logger, _ := New(&config.LoggingConfig{Level: "warn", Format: "text", Output: "stderr"})
	return logger
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) *Logger {
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

// parseLevel maps a configured level name to a zap level.
// Unknown and empty names fall back to warn.
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil || level == "" {
		return defaultLevel
	}
	switch lvl {
	case zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel:
		return lvl
	}
	return defaultLevel
}

// buildEncoder returns a JSON encoder for "json" and a colored console
// encoder for anything else.
func buildEncoder(format string) zapcore.Encoder {
	if format == "json" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "time"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	return zapcore.NewConsoleEncoder(cfg)
}

// buildWriters resolves the output target. Logs default to stderr so they
// stay out of the interactive screen; an unopenable file also falls back
// to stderr.
func buildWriters(output string) zapcore.WriteSyncer {
	switch output {
	case "stderr", "":
		return zapcore.Lock(os.Stderr)
	case "stdout":
		return zapcore.Lock(os.Stdout)
	}

	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(file)
}

func (l *Logger) with(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...), base: l.base}
}

// WithSession tags entries with the session ID.
func (l *Logger) WithSession(sessionID string) *Logger {
	return l.with("session", sessionID)
}

// WithMonkey tags entries with a monkey name.
func (l *Logger) WithMonkey(name string) *Logger {
	return l.with("monkey", name)
}

// WithQuery tags entries with the user's search text, for lookups that
// did not resolve to a monkey.
func (l *Logger) WithQuery(query string) *Logger {
	return l.with("query", query)
}

// WithCommand tags entries with the CLI command name.
func (l *Logger) WithCommand(name string) *Logger {
	return l.with("command", name)
}

// WithFields returns a Logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return l.with(args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
