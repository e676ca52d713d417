// Package logging is a small leveled wrapper over the standard log package
// for the CLI and batch driver. Info output goes to stdout for user-facing
// progress; debug, warn and error lines go through log with a level prefix.
package logging

import (
	"fmt"
	"log"
)

// Log levels, least to most severe.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var currentLevel = levelRank[LevelInfo]

// SetLevel sets the global logging level. Unknown levels fall back to info.
func SetLevel(level string) {
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	currentLevel = rank
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	if currentLevel <= levelRank[LevelDebug] {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Info prints a user-facing progress message.
func Info(format string, args ...interface{}) {
	if currentLevel <= levelRank[LevelInfo] {
		fmt.Printf(format+"\n", args...)
	}
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	if currentLevel <= levelRank[LevelWarn] {
		log.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	if currentLevel <= levelRank[LevelError] {
		log.Printf("[ERROR] "+format, args...)
	}
}
