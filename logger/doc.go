// Package logger provides a small categorized logger with
// customizable formatting and an optional in-memory buffer.
//
// # Categories
//
// Messages carry one of four categories (Info, Warning, Error, Fatal)
// which can be individually enabled or disabled. All categories are
// enabled by default.
//
// # Message format
//
// Every written line is the concatenation of HEADER, SEPARATOR, MESSAGE
// and NEWLINE. On a Logger instance all three surrounding pieces are
// customizable per instance; the defaults are "[CATEGORY]", " - " and
// "\n".
//
// # Buffered and immediate logging
//
// A Logger instance can buffer messages and flush them later in one
// shot, or write each message straight to an io.Writer or a file:
//
//	l := logger.New()
//	l.Log(logger.Warning, "disk low")      // buffered
//	l.Dump(os.Stderr)                      // flush: "[WARNING] - disk low\n"
//
//	l.LogTo(logger.Info, "ready", os.Stdout)             // immediate
//	l.LogFile(logger.Error, "boom", "app.log", logger.Append)
//
// Buffered entries are frozen at Log time: changing a header or the
// separator afterwards does not rewrite them. The newline sequence is
// applied at flush time, so it can still be changed before a Dump.
//
// Dumping to a file that cannot be opened leaves the buffer intact so
// the call can be retried; every other dump clears the buffer.
//
// # Package-level logging
//
// For call sites that do not want to carry an instance around, the
// package exposes the same immediate-write behavior through shared
// process-wide state with a fixed "[CATEGORY] - " prefix:
//
//	logger.SetGlobalEnabled(logger.Info, false)
//	logger.GlobalLog(logger.Error, "boom", os.Stderr)
//
// The package-level functions are guarded by a single mutex and safe
// for concurrent use. Logger instances are not; they need external
// locking when shared between goroutines.
package logger
