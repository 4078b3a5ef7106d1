package xlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewText(LevelInfo))
}

func Debug(msg string, fields ...slog.Attr) {
	Default().Debug(msg, fields...)
}

func Info(msg string, fields ...slog.Attr) {
	Default().Info(msg, fields...)
}

func Warn(msg string, fields ...slog.Attr) {
	Default().Warn(msg, fields...)
}
func Error(msg string, fields ...slog.Attr) {
	Default().Error(msg, fields...)
}

type Logger struct {
	json bool
	w    io.Writer
	s    *slog.Logger
}

const (
	LevelDebug slog.Level = slog.LevelDebug
	LevelInfo  slog.Level = slog.LevelInfo
	LevelWarn  slog.Level = slog.LevelWarn
	LevelError slog.Level = slog.LevelError
)

var (
	Int     = slog.Int
	Any     = slog.Any
	Bool    = slog.Bool
	Int64   = slog.Int64
	Uint64  = slog.Uint64
	String  = slog.String
	Float64 = slog.Float64
)

func Err(e error) slog.Attr {
	return slog.Any("error", e)
}
func Path(path string) slog.Attr {
	return slog.String("path", path)
}
func Backing(name string) slog.Attr {
	return slog.String("backing", name)
}
func Bits(n int) slog.Attr {
	return slog.Int("bits", n)
}
func Type(v any) slog.Attr {
	return slog.String("type", fmt.Sprintf("%T", v))
}

// ParseLevel maps debug, info, warn and error to their levels. Anything else
// is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func With(args ...any) *Logger {
	return Default().With(args...)
}
func WithLevel(level slog.Level) *Logger {
	return Default().WithLevel(level)
}

// New logs to w, as JSON when json is set and as text otherwise.
func New(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return &Logger{s: slog.New(slog.NewJSONHandler(w, opts)), w: w, json: true}
	}
	return &Logger{s: slog.New(slog.NewTextHandler(w, opts)), w: w}
}
func NewText(level slog.Level) *Logger {
	return New(os.Stderr, level, false)
}
func NewJSON(level slog.Level) *Logger {
	return New(os.Stderr, level, true)
}
func Discard() *Logger {
	return &Logger{s: slog.New(slog.DiscardHandler), w: io.Discard}
}

func Default() *Logger {
	return defaultLogger.Load()
}
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}
func (l *Logger) With(args ...any) *Logger {
	return &Logger{s: l.s.With(args...), w: l.w, json: l.json}
}
func (l *Logger) WithLevel(level slog.Level) *Logger {
	return New(l.w, level, l.json)
}
func (l *Logger) Enabled(level slog.Level) bool {
	return l.s.Enabled(context.Background(), level)
}
func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelDebug, msg, fields...)
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelInfo, msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelWarn, msg, fields...)
}
func (l *Logger) Error(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelError, msg, fields...)
}
