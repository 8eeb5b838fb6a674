package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/valyala/bytebufferpool"
)

// Process-wide state for the package-level logging functions. Unlike a
// Logger instance the headers and separator are fixed; only the enable
// flags and the newline sequence can change. A single mutex guards the
// flags, the newline and every write, so the package-level API is safe
// for concurrent use.
var (
	globalMu      sync.Mutex
	globalEnabled = map[Category]bool{
		Info:    true,
		Warning: true,
		Error:   true,
		Fatal:   true,
	}
	globalNewline = "\n"
)

// globalPrefix is the fixed header+separator token used by the
// package-level API.
func globalPrefix(c Category) string {
	switch c {
	case Info:
		return "[INFO] - "
	case Warning:
		return "[WARNING] - "
	case Error:
		return "[ERROR] - "
	case Fatal:
		return "[FATAL] - "
	default:
		return ""
	}
}

// SetGlobalEnabled enables or disables a category for the package-level
// logging functions.
func SetGlobalEnabled(c Category, enabled bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalEnabled[c] = enabled
}

// SetGlobalEnabledAll enables or disables every category at once for
// the package-level logging functions.
func SetGlobalEnabledAll(enabled bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	for c := range globalEnabled {
		globalEnabled[c] = enabled
	}
}

// GlobalEnabled reports whether the category is enabled for the
// package-level logging functions.
func GlobalEnabled(c Category) bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalEnabled[c]
}

// SetGlobalNewline replaces the newline sequence used by the
// package-level logging functions.
func SetGlobalNewline(nl string) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalNewline = nl
}

// GlobalNewline returns the newline sequence used by the package-level
// logging functions.
func GlobalNewline() string {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalNewline
}

// GlobalLog writes a single message to w immediately using the fixed
// "[CATEGORY] - " prefix. Disabled categories are dropped and report no
// error. There is no buffered counterpart at package level.
func GlobalLog(c Category, message string, w io.Writer) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalWrite(c, message, w)
}

// GlobalLogFile writes a single message to the named file, opened in
// the given mode for the duration of the call. A disabled category is a
// no-op that does not touch the file and reports no error.
func GlobalLogFile(c Category, message string, path string, mode OpenMode) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if !globalEnabled[c] {
		return nil
	}
	f, err := os.OpenFile(path, mode.flags(), 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	werr := globalWrite(c, message, f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

// globalWrite assembles and writes one line. Callers hold globalMu.
func globalWrite(c Category, message string, w io.Writer) error {
	if !globalEnabled[c] {
		return nil
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(globalPrefix(c))
	buf.WriteString(message)
	buf.WriteString(globalNewline)
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
