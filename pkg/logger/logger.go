package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log = newLogger("development", os.Stderr)
}

// Init configures the global logger for an environment. Development gets a
// console writer at debug level; everything else gets JSON at info level.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(env, os.Stderr)
}

// SetOutput redirects the global logger, keeping the environment's format.
func SetOutput(env string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(env, w)
}

func newLogger(env string, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	out := w
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	case "test":
		level = zerolog.WarnLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) {
	write(zerolog.DebugLevel, msg, args)
}

func Info(msg string, args ...any) {
	write(zerolog.InfoLevel, msg, args)
}

func Warn(msg string, args ...any) {
	write(zerolog.WarnLevel, msg, args)
}

func Error(msg string, args ...any) {
	write(zerolog.ErrorLevel, msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	write(zerolog.FatalLevel, msg, args)
}

func write(level zerolog.Level, msg string, args []any) {
	mu.RLock()
	l := log
	mu.RUnlock()

	ev := l.WithLevel(level)
	if ev == nil {
		return
	}
	fields(ev, args).Msg(msg)

	if level == zerolog.FatalLevel {
		os.Exit(1)
	}
}

// fields accepts key/value pairs. A bare error is attached as the error
// field, and a dangling value is kept under "extra".
func fields(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			ev = ev.Err(err)
			continue
		}
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			ev = ev.Interface("extra", args[i])
			continue
		}
		i++
		switch v := args[i].(type) {
		case error:
			ev = ev.AnErr(key, v)
		case fmt.Stringer:
			ev = ev.Stringer(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}
