package kpath

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/urban233/kern-comm-lib/status"
)

func memPath(t *testing.T, p string) Path {
	t.Helper()
	return NewOn(memfs.New(), p)
}

func TestAccessors(t *testing.T) {
	p := memPath(t, "/data/reports/summary.tar.gz")

	require.Equal(t, "/data/reports/summary.tar.gz", p.String())
	require.Equal(t, "summary.tar.gz", p.Name())
	require.Equal(t, ".gz", p.Suffix())
	require.Equal(t, "summary.tar", p.Stem())
	require.Equal(t, "/data/reports", p.Parent().String())
}

func TestJoin(t *testing.T) {
	p := memPath(t, "/data")

	require.Equal(t, "/data/a/b.txt", p.Join("a", "b.txt").String())
}

func TestExists(t *testing.T) {
	p := memPath(t, "/ghost.txt")

	res := p.Exists()
	require.True(t, res.Ok())
	require.False(t, res.Value())

	require.True(t, p.WriteText("boo", ModeOwnerRWOthersR).Ok())
	res = p.Exists()
	require.True(t, res.Ok())
	require.True(t, res.Value())
}

func TestWriteReadRoundTrip(t *testing.T) {
	p := memPath(t, "/notes/today.txt")

	require.True(t, p.WriteText("buy milk", ModeOwnerRWOthersR).Ok())

	text := p.ReadText()
	require.True(t, text.Ok())
	require.Equal(t, "buy milk", text.Value())

	raw := p.ReadBytes()
	require.True(t, raw.Ok())
	require.Equal(t, []byte("buy milk"), raw.Value())
}

func TestReadBytes_Missing(t *testing.T) {
	res := memPath(t, "/absent.bin").ReadBytes()

	require.False(t, res.Ok())
	require.Equal(t, status.CodeFileNotFound, res.Status().Code())
}

func TestIsFileIsDir(t *testing.T) {
	fs := memfs.New()
	file := NewOn(fs, "/dir/file.txt")
	dir := NewOn(fs, "/dir")
	require.True(t, file.WriteText("x", ModeOwnerRWOthersR).Ok())

	require.True(t, file.IsFile().Value())
	require.False(t, file.IsDir().Value())
	require.True(t, dir.IsDir().Value())
	require.False(t, dir.IsFile().Value())

	missing := NewOn(fs, "/nope")
	require.False(t, missing.IsFile().Value())
	require.False(t, missing.IsDir().Value())
}

func TestMkDir(t *testing.T) {
	fs := memfs.New()
	p := NewOn(fs, "/a/b/c")

	st := p.MkDir(ModeOwnerRWXOthersRX, true, false)
	require.True(t, st.Ok())
	require.True(t, p.IsDir().Value())
}

func TestMkDir_ExistingDirectory(t *testing.T) {
	fs := memfs.New()
	p := NewOn(fs, "/existing")
	require.True(t, p.MkDir(ModeOwnerRWXOthersRX, true, false).Ok())

	st := p.MkDir(ModeOwnerRWXOthersRX, true, false)
	require.False(t, st.Ok())
	require.Equal(t, status.CodeAlreadyExists, st.Code())
	require.Contains(t, st.Message(), "/existing")

	require.True(t, p.MkDir(ModeOwnerRWXOthersRX, true, true).Ok())
}

func TestMkDir_MissingParent(t *testing.T) {
	fs := memfs.New()
	p := NewOn(fs, "/no/parent/here")

	st := p.MkDir(ModeOwnerRWXOthersRX, false, false)
	require.False(t, st.Ok())
}

func TestRemove(t *testing.T) {
	p := memPath(t, "/junk.txt")
	require.True(t, p.WriteText("x", ModeOwnerRWOthersR).Ok())

	require.True(t, p.Remove().Ok())
	require.False(t, p.Exists().Value())
}

func TestRemoveAll(t *testing.T) {
	fs := memfs.New()
	root := NewOn(fs, "/tree")
	require.True(t, NewOn(fs, "/tree/a/deep/file.txt").WriteText("x", ModeOwnerRWOthersR).Ok())
	require.True(t, NewOn(fs, "/tree/b.txt").WriteText("y", ModeOwnerRWOthersR).Ok())

	require.True(t, root.RemoveAll().Ok())
	require.False(t, root.Exists().Value())

	// Removing a non-existent tree is not an error.
	require.True(t, root.RemoveAll().Ok())
}

func TestRename(t *testing.T) {
	fs := memfs.New()
	src := NewOn(fs, "/old.txt")
	dst := NewOn(fs, "/new.txt")
	require.True(t, src.WriteText("content", ModeOwnerRWOthersR).Ok())

	require.True(t, src.Rename(dst).Ok())
	require.False(t, src.Exists().Value())
	require.Equal(t, "content", dst.ReadText().Value())
}

func TestReadDir(t *testing.T) {
	fs := memfs.New()
	dir := NewOn(fs, "/docs")
	require.True(t, NewOn(fs, "/docs/a.txt").WriteText("a", ModeOwnerRWOthersR).Ok())
	require.True(t, NewOn(fs, "/docs/b.txt").WriteText("b", ModeOwnerRWOthersR).Ok())

	res := dir.ReadDir()
	require.True(t, res.Ok())

	var names []string
	for _, entry := range res.Value() {
		names = append(names, entry.Name())
	}
	require.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)
}

func TestReadDir_Missing(t *testing.T) {
	res := memPath(t, "/void").ReadDir()

	require.False(t, res.Ok())
}

func TestTouch(t *testing.T) {
	p := memPath(t, "/touched.txt")

	require.True(t, p.Touch(ModeOwnerRWOthersR).Ok())
	require.True(t, p.Exists().Value())
	require.True(t, p.IsFile().Value())

	// Touching an existing file leaves its contents alone.
	require.True(t, p.WriteText("keep me", ModeOwnerRWOthersR).Ok())
	require.True(t, p.Touch(ModeOwnerRWOthersR).Ok())
	require.Equal(t, "keep me", p.ReadText().Value())
}

func TestWriteTruncates(t *testing.T) {
	p := memPath(t, "/log.txt")

	require.True(t, p.WriteText("a longer first version", ModeOwnerRWOthersR).Ok())
	require.True(t, p.WriteText("short", ModeOwnerRWOthersR).Ok())
	require.Equal(t, "short", p.ReadText().Value())
}
