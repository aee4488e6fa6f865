package klog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRecord(t *testing.T) {
	stamp := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	withLoc := formatRecord(stamp, SeverityWarning, "low disk", Location{File: "scan.go", Line: 12})
	require.Equal(t, "2025-03-14 09:26:53 [WARNING] scan.go:12: low disk", withLoc)

	withoutLoc := formatRecord(stamp, SeverityInfo, "started", Location{})
	require.Equal(t, "2025-03-14 09:26:53 [INFO] started", withoutLoc)
}

func TestFileHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.log")
	h, st := NewFileHandler(path)
	require.True(t, st.Ok())
	defer func() { require.True(t, h.Close().Ok()) }()

	require.NoError(t, h.Write(SeverityInfo, "first", Location{}))
	require.NoError(t, h.Write(SeverityError, "second", Location{File: "a.go", Line: 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "[INFO] first")
	require.Contains(t, lines[1], "[ERROR] a.go:3: second")
}

func TestFileHandler_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.log")

	h, st := NewFileHandler(path)
	require.True(t, st.Ok())
	require.NoError(t, h.Write(SeverityInfo, "run one", Location{}))
	require.True(t, h.Close().Ok())

	h, st = NewFileHandler(path)
	require.True(t, st.Ok())
	require.NoError(t, h.Write(SeverityInfo, "run two", Location{}))
	require.True(t, h.Close().Ok())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "run one")
	require.Contains(t, string(data), "run two")
}

func TestNewFileHandler_BadPath(t *testing.T) {
	_, st := NewFileHandler(filepath.Join(t.TempDir(), "missing", "prog.log"))

	require.False(t, st.Ok())
}

func TestNewConsoleHandler_Writes(t *testing.T) {
	h := NewConsoleHandler()

	require.NoError(t, h.Write(SeverityInfo, "console smoke test", Location{}))
	require.NoError(t, h.Write(SeverityFatal, "fatal smoke test", Location{File: "x.go", Line: 1}))
}
