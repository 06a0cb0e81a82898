// Package logger wires log/slog for ydt: a styled console handler on
// stderr, an optional JSONL file, and redaction of credential material.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"golang.org/x/term"
)

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

const redacted = "[REDACTED]"

var (
	globalLogger *slog.Logger
	isTerminal   = term.IsTerminal
	console      = os.Stderr
)

// Keys that always carry credential material or signed request fields.
var sensitiveKeys = map[string]bool{
	"app_secret":    true,
	"appsecret":     true,
	"authorization": true,
	"curtime":       true,
	"password":      true,
	"salt":          true,
	"sign":          true,
	"signature":     true,
}

var sensitiveKeySubstrings = []string{"secret", "password", "token", "sign"}

var sensitiveValuePatterns = []*regexp.Regexp{
	// Full SHA-256 digests (request signatures).
	regexp.MustCompile(`\b[0-9a-f]{64}\b`),
	// Encoded request parameters that carry the signature or secret.
	regexp.MustCompile(`(?i)\b(sign|app_?secret)=[^&\s]+`),
	regexp.MustCompile(`(?i)\b(app[_-]?secret|secret)\b\s*[:=]\s*\S+`),
}

// RedactAttr is a slog.ReplaceAttr function that blanks attributes whose
// key or value looks like a secret, salt or signature.
func RedactAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	if isSensitiveKey(a.Key) || isSensitiveValue(a.Value) {
		return slog.String(a.Key, redacted)
	}
	return a
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	if sensitiveKeys[key] {
		return true
	}
	for _, sub := range sensitiveKeySubstrings {
		if strings.Contains(key, sub) {
			return true
		}
	}
	return false
}

func isSensitiveValue(v slog.Value) bool {
	var s string
	if v.Kind() == slog.KindString {
		s = v.String()
	} else {
		s = fmt.Sprint(v.Any())
	}
	if s == "" {
		return false
	}
	for _, re := range sensitiveValuePatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func init() {
	// Lookup output goes to stdout; stderr stays quiet unless something is wrong.
	Init(LevelWarn, nil)
}

// Init replaces the global logger. Records at level or above go to stderr;
// when logFile is non-nil they are also written to it as JSON lines and the
// console output is left unstyled.
func Init(level slog.Level, logFile io.Writer) {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: RedactAttr,
	}

	styled := logFile == nil && isTerminal(int(console.Fd()))
	var handler slog.Handler = NewConsoleHandler(console, opts, styled)
	if logFile != nil {
		handler = fanout{handler, slog.NewJSONHandler(logFile, opts)}
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func Debug(msg string, args ...any) { globalLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { globalLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { globalLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { globalLogger.Error(msg, args...) }
