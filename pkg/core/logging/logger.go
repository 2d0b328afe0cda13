// ============================================================================
// meinLERNWERK (mLW) - Go Lernwerkstatt
// ============================================================================
//
// Package:     logging
// Description: Structured key-value logger with text and JSON output
// Author:      Mike Stoffels with Claude
// Created:     2026-08-16
// License:     MIT
// ============================================================================

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Format represents the log output format
type Format int

const (
	// FormatText renders human-readable single-line entries (default)
	FormatText Format = iota

	// FormatJSON renders one JSON object per line
	FormatJSON
)

// ParseFormat converts a string format to a Format, defaulting to text
func ParseFormat(format string) Format {
	if format == "json" {
		return FormatJSON
	}
	return FormatText
}

// Logger is a leveled, structured logger. Derived loggers share the
// output writer and its mutex.
type Logger struct {
	name   string
	level  Level
	format Format
	output io.Writer
	fields map[string]interface{}
	mu     *sync.Mutex
}

// Config holds configuration for creating loggers
type Config struct {
	// Logger name, included in every entry
	Name string

	// Log level (debug, info, warn, error)
	Level string

	// Output format ("text" or "json", default: text)
	Format string

	// Output destination (default: stdout)
	Output io.Writer
}

// DefaultConfig returns a default configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	return &Logger{
		name:   cfg.Name,
		level:  ParseLevel(cfg.Level),
		format: ParseFormat(cfg.Format),
		output: output,
		fields: make(map[string]interface{}),
		mu:     &sync.Mutex{},
	}
}

// New creates a new logger with default configuration
func New(name string) *Logger {
	return NewWithConfig(DefaultConfig(name))
}

// WithLevel returns a copy of the logger with the given level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithOutput returns a copy of the logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// With returns a copy of the logger with persistent key-value fields
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	clone := l.clone()
	for k, v := range toFields(keysAndValues...) {
		clone.fields[k] = v
	}
	return clone
}

// WithRunID returns a copy of the logger tagged with a fresh run ID
func (l *Logger) WithRunID() *Logger {
	return l.With("run_id", uuid.NewString())
}

// Debug logs a debug message with optional key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message with optional key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message with optional key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message with optional key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

// log renders and writes a single entry
func (l *Logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	for k, v := range toFields(keysAndValues...) {
		fields[k] = v
	}

	now := time.Now().Format(time.RFC3339)

	var line []byte
	switch l.format {
	case FormatJSON:
		entry := map[string]interface{}{
			"timestamp": now,
			"level":     level.String(),
			"logger":    l.name,
			"message":   msg,
		}
		for k, v := range fields {
			entry[k] = v
		}
		encoded, err := json.Marshal(entry)
		if err != nil {
			return
		}
		line = append(encoded, '\n')
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%s] %s: %s", now, strings.ToUpper(level.String()), l.name, msg)

		// Stable field order for readable output
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
		b.WriteByte('\n')
		line = []byte(b.String())
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(line)
}

// clone creates a copy sharing output and mutex
func (l *Logger) clone() *Logger {
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}

	return &Logger{
		name:   l.name,
		level:  l.level,
		format: l.format,
		output: l.output,
		fields: fields,
		mu:     l.mu,
	}
}

// toFields converts key-value pairs to a field map
func toFields(keysAndValues ...interface{}) map[string]interface{} {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(map[string]interface{})
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
