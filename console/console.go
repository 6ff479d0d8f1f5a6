//go:build !js || !wasm

// Package console is the logging facade used by components and the runtime.
// Under wasm it writes to the browser console; native builds route through log/slog.
package console

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by native builds. A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func current() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Log writes args at info level.
func Log(args ...any) {
	current().Info(join(args))
}

// Debug writes args at debug level.
func Debug(args ...any) {
	current().Debug(join(args))
}

// Warn writes args at warn level.
func Warn(args ...any) {
	current().Warn(join(args))
}

// Error writes args at error level.
func Error(args ...any) {
	current().Error(join(args))
}

// join mirrors console.log argument spacing.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
