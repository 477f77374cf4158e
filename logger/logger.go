package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging interface used across the application.
// Kept as an interface so a different backend can be swapped in.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields is the common type for structured log fields.
type Fields map[string]any

// Log is the global logger instance. It works at info level even before
// InitFromEnv is called.
var Log Logger = NewLogger("info")

// InitFromEnv reads the log level from the given environment variable key
// and reinitializes the global logger. Empty or unknown values fall back to info.
func InitFromEnv(envKey string) {
	level := strings.ToLower(os.Getenv(envKey))
	if level == "" {
		level = "info"
	}
	Init(level)
}

// Init reinitializes the global logger with the given level name.
func Init(level string) {
	Log = NewLogger(level)
}

// NewLogger creates a gookit/slog based logger at the given level.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	logger := slog.NewWithHandlers(h)
	return logger
}

// withServiceName enriches fields with service_name from SERVICE_NAME.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			fields["service_name"] = sn
		}
	}
	return fields
}

// InfoWithFields emits a JSON log line with structured top-level fields
// (request_id, span_id, service_name and friends).
func InfoWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Info(msg)
		return
	}
	Log.Info(msg)
}

func DebugWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Debug(msg)
		return
	}
	Log.Debug(msg)
}

func WarnWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Warn(msg)
		return
	}
	Log.Warn(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Error(msg)
		return
	}
	Log.Error(msg)
}
