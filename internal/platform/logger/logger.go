// Package logger provides structured logging for the game core.
// Every store action and simulation result should be traceable through this.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger provides leveled logging with a game-event hook.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a new logger instance.
func NewLogger() *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stdout, "[CORNER-INFO] ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "[CORNER-WARN] ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "[CORNER-ERROR] ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Event logs a specific game event for the activity trail.
func (l *Logger) Event(eventType string, actorID string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Actor:%s | %s", eventType, actorID, details)
}

// Eventf is Event with formatting.
func (l *Logger) Eventf(eventType string, actorID string, format string, args ...any) {
	l.Event(eventType, actorID, fmt.Sprintf(format, args...))
}
