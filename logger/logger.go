package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/valyala/bytebufferpool"
)

// noCopy trips go vet's copylocks check when embedded in a struct that
// must not be copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Logger formats categorized log messages and either buffers them in
// memory or writes them straight to a destination. Each instance owns
// its own enable flags, headers, separator, newline sequence and buffer.
//
// A Logger is not safe for concurrent use; callers needing that must
// provide their own locking. Instances must not be copied after first
// use (the buffer and maps would be shared between the copies).
type Logger struct {
	noCopy noCopy

	enabled map[Category]bool
	headers map[Category]string

	separator string
	newline   string

	buffer []string
}

// New returns a Logger with every category enabled, default headers
// ("[INFO]", "[WARNING]", "[ERROR]", "[FATAL]"), separator " - " and
// newline "\n".
func New() *Logger {
	return &Logger{
		enabled: map[Category]bool{
			Info:    true,
			Warning: true,
			Error:   true,
			Fatal:   true,
		},
		headers: map[Category]string{
			Info:    "[INFO]",
			Warning: "[WARNING]",
			Error:   "[ERROR]",
			Fatal:   "[FATAL]",
		},
		separator: " - ",
		newline:   "\n",
	}
}

// NewWithCapacity returns a Logger like New but with room for at least
// n buffered messages before the buffer reallocates.
func NewWithCapacity(n int) *Logger {
	l := New()
	l.buffer = make([]string, 0, n)
	return l
}

// SetEnabled enables or disables a single category.
func (l *Logger) SetEnabled(c Category, enabled bool) {
	l.enabled[c] = enabled
}

// SetEnabledAll enables or disables every category at once.
func (l *Logger) SetEnabledAll(enabled bool) {
	for c := range l.enabled {
		l.enabled[c] = enabled
	}
}

// IsEnabled reports whether the category is currently enabled.
func (l *Logger) IsEnabled(c Category) bool {
	return l.enabled[c]
}

// SetHeader replaces the header written in front of messages of the
// given category.
func (l *Logger) SetHeader(c Category, header string) {
	l.headers[c] = header
}

// Header returns the current header for the category.
func (l *Logger) Header(c Category) string {
	return l.headers[c]
}

// SetSeparator replaces the text written between header and message.
func (l *Logger) SetSeparator(sep string) {
	l.separator = sep
}

// Separator returns the current separator.
func (l *Logger) Separator() string {
	return l.separator
}

// SetNewline replaces the sequence appended after each written message.
// Buffered messages are stored without a newline, so changing it here
// also changes the sequence used by a later Dump.
func (l *Logger) SetNewline(nl string) {
	l.newline = nl
}

// Newline returns the current newline sequence.
func (l *Logger) Newline() string {
	return l.newline
}

// Log buffers a message. The buffered entry is the header, separator
// and message concatenated at call time; later header or separator
// changes do not reformat it. Disabled categories are dropped.
func (l *Logger) Log(c Category, message string) {
	if !l.enabled[c] {
		return
	}
	l.buffer = append(l.buffer, l.headers[c]+l.separator+message)
}

// LogTo writes a single message to w immediately, bypassing the buffer.
// Disabled categories are dropped and report no error. The line is
// assembled first so w sees exactly one Write per message.
func (l *Logger) LogTo(c Category, message string, w io.Writer) error {
	if !l.enabled[c] {
		return nil
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(l.headers[c])
	buf.WriteString(l.separator)
	buf.WriteString(message)
	buf.WriteString(l.newline)
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// LogFile writes a single message to the named file, opened in the
// given mode for the duration of the call. A disabled category is a
// no-op that does not touch the file and reports no error.
func (l *Logger) LogFile(c Category, message string, path string, mode OpenMode) error {
	if !l.enabled[c] {
		return nil
	}
	f, err := os.OpenFile(path, mode.flags(), 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	werr := l.LogTo(c, message, f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

// Dump writes every buffered message to w in insertion order, each
// followed by the current newline sequence, then clears the buffer.
// The buffer is cleared even if the destination fails mid-write; there
// is no partial-write rollback.
func (l *Logger) Dump(w io.Writer) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, line := range l.buffer {
		buf.WriteString(line)
		buf.WriteString(l.newline)
	}
	l.buffer = l.buffer[:0]

	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}

// DumpFile dumps the buffer to the named file, opened in the given
// mode. If the file cannot be opened the buffer is left untouched so
// the caller can fix the path and retry without losing messages. Once
// the open succeeds the buffer is cleared, as with Dump.
func (l *Logger) DumpFile(path string, mode OpenMode) error {
	f, err := os.OpenFile(path, mode.flags(), 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	werr := l.Dump(f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
