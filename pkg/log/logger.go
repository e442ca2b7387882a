package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents logging verbosity
type Level int

const (
	ErrorLevel Level = iota
	InfoLevel
	DebugLevel
	TraceLevel
)

var levelNames = map[Level]string{
	ErrorLevel: "error",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

// zapTraceLevel sits below zap's Debug level
const zapTraceLevel = zapcore.DebugLevel - 1

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// zapLevel maps l to the lowest zap level it shows. Warnings are shown at every
// verbosity, so ErrorLevel enables zap's Warn level.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case ErrorLevel:
		return zapcore.WarnLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case DebugLevel:
		return zapcore.DebugLevel
	default:
		return zapTraceLevel
	}
}

// Logger provides leveled logging to a single writer (stderr for the CLI, so that
// stdout only carries the report).
type Logger struct {
	level  Level
	logger *zap.Logger
}

// New creates a logger that writes messages at or above level to w
func New(level Level, w io.Writer) *Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeLevel,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level.zapLevel()),
	)

	return &Logger{
		level:  level,
		logger: zap.New(core),
	}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == zapTraceLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}

// Level returns the logger's verbosity
func (l *Logger) Level() Level {
	return l.level
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.logger.Sync()
}

// log writes a log message
func (l *Logger) log(level zapcore.Level, format string, args ...interface{}) {
	if ce := l.logger.Check(level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(zapcore.ErrorLevel, format, args...)
}

// Warning logs a warning message (always shown)
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(zapcore.WarnLevel, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(zapcore.InfoLevel, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(zapcore.DebugLevel, format, args...)
}

// Trace logs a trace message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.log(zapTraceLevel, format, args...)
}

// ParseLevel parses a string into a log level
func ParseLevel(s string) (Level, error) {
	switch s {
	case "error":
		return ErrorLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level: %s (valid: error, info, debug, trace)", s)
	}
}
