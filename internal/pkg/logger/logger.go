package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config represents logger configuration
type Config struct {
	Level  LogLevel
	Pretty bool
	Output io.Writer
}

var defaultLogger zerolog.Logger

// Configure replaces the global logger. Unknown levels fall back to info.
func Configure(config Config) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(config.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = out
	if config.Pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	defaultLogger = zerolog.New(w).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

func Debug() *zerolog.Event { return defaultLogger.Debug() }
func Info() *zerolog.Event  { return defaultLogger.Info() }
func Warn() *zerolog.Event  { return defaultLogger.Warn() }
func Error() *zerolog.Event { return defaultLogger.Error() }
func Fatal() *zerolog.Event { return defaultLogger.Fatal() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
