package logger

import (
	"fmt"
	"os"
	"strings"
)

// Category identifies the severity of a log message.
type Category int

const (
	// Info marks informational messages.
	Info Category = iota
	// Warning marks recoverable anomalies.
	Warning
	// Error marks failures.
	Error
	// Fatal marks unrecoverable failures.
	Fatal
)

// Categories returns all supported categories in severity order.
func Categories() []Category {
	return []Category{Info, Warning, Error, Fatal}
}

// String returns the canonical upper-case name of the category.
func (c Category) String() string {
	switch c {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory maps a case-insensitive category name to its Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return Info, nil
	case "WARNING":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// OpenMode selects how a file destination is opened.
type OpenMode int

const (
	// Truncate discards any existing file content before writing.
	Truncate OpenMode = iota
	// Append preserves existing content and writes after it.
	Append
)

func (m OpenMode) flags() int {
	if m == Append {
		return os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	return os.O_CREATE | os.O_WRONLY | os.O_TRUNC
}
