// Package testlogger provides a recording logger implementation for testing
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// LogEntry represents a single recorded log entry
type LogEntry struct {
	Level   string
	Message string
}

// TestLogger implements log.Logger and records every message so tests can
// assert on log output
type TestLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ log.Logger = (*TestLogger)(nil)

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{
		entries: make([]LogEntry, 0),
	}
}

func (l *TestLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{
		Level:   level,
		Message: msg,
	})
}

func (l *TestLogger) Debug(args ...any)                 { l.record("DEBUG", fmt.Sprint(args...)) }
func (l *TestLogger) Debugf(format string, args ...any) { l.record("DEBUG", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Debugln(args ...any)               { l.record("DEBUG", fmt.Sprintln(args...)) }
func (l *TestLogger) Info(args ...any)                  { l.record("INFO", fmt.Sprint(args...)) }
func (l *TestLogger) Infof(format string, args ...any)  { l.record("INFO", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Infoln(args ...any)                { l.record("INFO", fmt.Sprintln(args...)) }
func (l *TestLogger) Warn(args ...any)                  { l.record("WARN", fmt.Sprint(args...)) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.record("WARN", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Warnln(args ...any)                { l.record("WARN", fmt.Sprintln(args...)) }
func (l *TestLogger) Error(args ...any)                 { l.record("ERROR", fmt.Sprint(args...)) }
func (l *TestLogger) Errorf(format string, args ...any) { l.record("ERROR", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Errorln(args ...any)               { l.record("ERROR", fmt.Sprintln(args...)) }
func (l *TestLogger) Fatal(args ...any)                 { l.record("FATAL", fmt.Sprint(args...)) }
func (l *TestLogger) Fatalf(format string, args ...any) { l.record("FATAL", fmt.Sprintf(format, args...)) }
func (l *TestLogger) Fatalln(args ...any)               { l.record("FATAL", fmt.Sprintln(args...)) }

// WithFields implements log.Logger
func (l *TestLogger) WithFields(fields ...any) log.Logger {
	// Fields are not tracked; messages are enough for assertions
	return l
}

// WithDefaultMessageTemplate implements log.Logger
func (l *TestLogger) WithDefaultMessageTemplate(template string) log.Logger {
	return l
}

// Sync implements log.Logger
func (l *TestLogger) Sync() error {
	return nil
}

// GetEntries returns all recorded log entries
func (l *TestLogger) GetEntries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// Clear discards all recorded log entries
func (l *TestLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]LogEntry, 0)
}

// Count returns the number of entries recorded at the given level
func (l *TestLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0

	for _, entry := range l.entries {
		if entry.Level == level {
			count++
		}
	}

	return count
}

// Contains returns true if an entry at the given level contains all the given strings
func (l *TestLogger) Contains(level string, substrings ...string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.entries {
		if entry.Level != level {
			continue
		}

		allFound := true

		for _, s := range substrings {
			if !strings.Contains(entry.Message, s) {
				allFound = false
				break
			}
		}

		if allFound {
			return true
		}
	}

	return false
}
