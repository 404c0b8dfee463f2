package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	InfoLogFile  = "search.log"
	ErrorLogFile = "error.log"
)

var (
	infoLogger  *slog.Logger
	errorLogger *slog.Logger
)

// Init opens the info and error log files under dir
func Init(dir string) error {
	infoFile, err := os.OpenFile(filepath.Join(dir, InfoLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", InfoLogFile, err)
	}

	errorFile, err := os.OpenFile(filepath.Join(dir, ErrorLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		infoFile.Close()
		return fmt.Errorf("failed to open %s: %w", ErrorLogFile, err)
	}

	SetInfoOutput(infoFile)
	SetErrorOutput(errorFile)
	return nil
}

// Info logs an info-level message
func Info(ctx context.Context, msg string, args ...any) {
	if infoLogger == nil {
		return
	}
	infoLogger.InfoContext(ctx, msg, args...)
}

// Error logs an error-level message
func Error(ctx context.Context, msg string, args ...any) {
	if errorLogger == nil {
		return
	}
	errorLogger.ErrorContext(ctx, msg, args...)
}

// SetInfoOutput sets a custom writer for info logs (useful for testing)
func SetInfoOutput(w io.Writer) {
	infoLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetErrorOutput sets a custom writer for error logs (useful for testing)
func SetErrorOutput(w io.Writer) {
	errorLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Reset drops both loggers; subsequent calls are no-ops until Init or Set*Output
func Reset() {
	infoLogger = nil
	errorLogger = nil
}

// Logger forwards to the package-level loggers, so it can be handed to
// components that take a logging capability.
type Logger struct{}

func (Logger) Info(ctx context.Context, msg string, args ...any) {
	Info(ctx, msg, args...)
}

func (Logger) Error(ctx context.Context, msg string, args ...any) {
	Error(ctx, msg, args...)
}
