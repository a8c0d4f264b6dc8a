// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable, following the conventions of the npm "debug" package.
//
// Loggers are created with a namespace such as "cli:resolve" and emit to
// stderr only when the namespace matches a pattern in DEBUG. Patterns are
// comma-separated, support a trailing "*" wildcard, and may be negated with a
// leading "-":
//
//	DEBUG=*                  enable everything
//	DEBUG=resolver:*         enable the resolver namespace
//	DEBUG=cli:*,resolver:*   enable multiple namespaces
//	DEBUG=*,-cli:github      enable everything except cli:github
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	last time.Time
}

// New creates a logger for the given namespace. Whether the logger is enabled
// is decided once at creation time from the DEBUG environment variable.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   matches(namespace, os.Getenv("DEBUG")),
	}
}

// Enabled reports whether messages from this logger are emitted.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf formats a message with fmt.Sprintf semantics and emits it.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print concatenates its arguments with fmt.Sprint semantics and emits them.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	elapsed := time.Duration(0)
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()

	fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, elapsed)
}

// matches reports whether namespace is selected by the DEBUG pattern list.
// Negated patterns ("-name") take precedence over positive ones.
func matches(namespace, patterns string) bool {
	if patterns == "" {
		return false
	}

	enabled := false
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		negate := strings.HasPrefix(pattern, "-")
		if negate {
			pattern = pattern[1:]
		}

		if !matchPattern(namespace, pattern) {
			continue
		}
		if negate {
			return false
		}
		enabled = true
	}
	return enabled
}

func matchPattern(namespace, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return namespace == pattern
}
