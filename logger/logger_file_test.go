package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unopenablePath returns a path whose parent directory does not exist,
// so opening it fails regardless of the user running the tests.
func unopenablePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", "out.log")
}

func TestLogFile_WritesSingleLine(t *testing.T) {
	l := New()
	path := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, l.LogFile(Error, "boom", path, Truncate))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[ERROR] - boom\n", string(content))
}

func TestLogFile_AppendKeepsExistingContent(t *testing.T) {
	l := New()
	path := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, l.LogFile(Info, "one", path, Truncate))
	require.NoError(t, l.LogFile(Info, "two", path, Append))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] - one\n[INFO] - two\n", string(content))
}

func TestLogFile_TruncateDiscardsExistingContent(t *testing.T) {
	l := New()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0644))

	require.NoError(t, l.LogFile(Warning, "fresh", path, Truncate))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[WARNING] - fresh\n", string(content))
}

func TestLogFile_OpenFailureReturnsError(t *testing.T) {
	l := New()

	err := l.LogFile(Error, "x", unopenablePath(t), Truncate)

	assert.Error(t, err)
}

func TestLogFile_DisabledCategorySkipsOpen(t *testing.T) {
	l := New()
	l.SetEnabled(Info, false)
	path := filepath.Join(t.TempDir(), "untouched.log")

	// Succeeds without writing anything: the file is never opened.
	require.NoError(t, l.LogFile(Info, "ignored", path, Truncate))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "disabled category must not create the file")

	// Even an unopenable path succeeds when the category is disabled.
	assert.NoError(t, l.LogFile(Info, "ignored", unopenablePath(t), Truncate))
}

func TestDumpFile_WritesAllLinesAndClears(t *testing.T) {
	l := New()
	l.Log(Info, "first")
	l.Log(Fatal, "second")
	path := filepath.Join(t.TempDir(), "dump.log")

	require.NoError(t, l.DumpFile(path, Truncate))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] - first\n[FATAL] - second\n", string(content))
	assert.Empty(t, l.buffer)
}

func TestDumpFile_AppendMode(t *testing.T) {
	l := New()
	path := filepath.Join(t.TempDir(), "dump.log")

	l.Log(Info, "batch one")
	require.NoError(t, l.DumpFile(path, Truncate))

	l.Log(Info, "batch two")
	require.NoError(t, l.DumpFile(path, Append))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] - batch one\n[INFO] - batch two\n", string(content))
}

func TestDumpFile_OpenFailureKeepsBuffer(t *testing.T) {
	l := New()
	l.Log(Warning, "precious")
	l.Log(Error, "also precious")

	err := l.DumpFile(unopenablePath(t), Truncate)

	require.Error(t, err)
	require.Len(t, l.buffer, 2, "a failed open must not lose buffered messages")
	assert.Equal(t, "[WARNING] - precious", l.buffer[0])
	assert.Equal(t, "[ERROR] - also precious", l.buffer[1])

	// The messages are still there for a retry on a good path.
	path := filepath.Join(t.TempDir(), "retry.log")
	require.NoError(t, l.DumpFile(path, Truncate))

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "[WARNING] - precious\n[ERROR] - also precious\n", string(content))
	assert.Empty(t, l.buffer)
}

func TestDumpFile_EmptyBufferStillOpensFile(t *testing.T) {
	l := New()
	path := filepath.Join(t.TempDir(), "empty.log")

	require.NoError(t, l.DumpFile(path, Truncate))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}
