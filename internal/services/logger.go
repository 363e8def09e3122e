// File: internal/services/logger.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Logger defines the common logging interface for all services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// LogLevel represents different logging levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StandardLogger writes leveled key-value logs, as JSON in production and
// human-readable during development.
type StandardLogger struct {
	logger     *log.Logger
	level      LogLevel
	service    string
	structured bool
}

// NewStandardLogger creates a logger for the named service. Level and format
// come from LOG_LEVEL and ENV.
func NewStandardLogger(service string) *StandardLogger {
	l := &StandardLogger{
		logger:  log.New(os.Stderr, "", 0),
		level:   LogLevelInfo,
		service: service,
	}
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		l.level = LogLevelDebug
	case "WARN":
		l.level = LogLevelWarn
	case "ERROR":
		l.level = LogLevelError
	}
	if strings.ToLower(os.Getenv("ENV")) == "production" {
		l.structured = true
	}
	return l
}

func (l *StandardLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LogLevelInfo, msg, keysAndValues...)
}

func (l *StandardLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LogLevelError, msg, keysAndValues...)
}

func (l *StandardLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LogLevelDebug, msg, keysAndValues...)
}

func (l *StandardLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LogLevelWarn, msg, keysAndValues...)
}

func (l *StandardLogger) log(level LogLevel, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if l.structured {
		entry := map[string]interface{}{
			"timestamp": timestamp,
			"level":     level.String(),
			"service":   l.service,
			"message":   msg,
		}
		if len(keysAndValues) > 1 {
			fields := make(map[string]interface{})
			for i := 0; i+1 < len(keysAndValues); i += 2 {
				if key, ok := keysAndValues[i].(string); ok {
					fields[key] = fmt.Sprintf("%v", keysAndValues[i+1])
				}
			}
			entry["fields"] = fields
		}
		raw, _ := json.Marshal(entry)
		l.logger.Println(string(raw))
		return
	}

	var kv strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		kv.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	l.logger.Printf("[%s] %s [%s] %s%s", timestamp, level.String(), l.service, msg, kv.String())
}

// NoOpLogger discards everything; used in tests.
type NoOpLogger struct{}

func (NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}

// NewLogger returns the logger appropriate for the current environment.
func NewLogger(service string) Logger {
	if os.Getenv("GO_ENV") == "test" {
		return NoOpLogger{}
	}
	return NewStandardLogger(service)
}
