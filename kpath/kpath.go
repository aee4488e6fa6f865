package kpath

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/urban233/kern-comm-lib/check"
	"github.com/urban233/kern-comm-lib/status"
)

// Mode holds the permission presets for filesystem operations.
type Mode fs.FileMode

const (
	// ModeAllRWX grants read, write, and execute to everyone.
	ModeAllRWX Mode = 0o777
	// ModeAllRW grants read and write to everyone.
	ModeAllRW Mode = 0o666
	// ModeOwnerRWXOthersRX grants full access to the owner, read and execute to others.
	ModeOwnerRWXOthersRX Mode = 0o755
	// ModeOnlyOwnerRWX grants full access to the owner only.
	ModeOnlyOwnerRWX Mode = 0o700
	// ModeOwnerRWOthersR grants read and write to the owner, read to others.
	ModeOwnerRWOthersR Mode = 0o644
	// ModeOnlyOwnerRW grants read and write to the owner only.
	ModeOnlyOwnerRW Mode = 0o600
	// ModeAllR grants read to everyone.
	ModeAllR Mode = 0o444
	// ModeOnlyOwnerR grants read to the owner only.
	ModeOnlyOwnerR Mode = 0o400
)

// Path wraps a filesystem path with exception-free operations: every fallible
// operation returns a Status or StatusOr instead of an error, so Path can be
// used as a drop-in vocabulary for code written against the status contract.
//
// Path is a value type; operations that derive new paths return new values.
// The backend is a billy filesystem, the local one by default, which also
// makes in-memory backends available for tests.
type Path struct {
	fs   billy.Filesystem
	path string
}

// New creates a Path on the local filesystem.
func New(p string) Path {
	return Path{fs: osfs.New("/"), path: p}
}

// NewOn creates a Path on the given billy filesystem.
// A nil filesystem is an invariant violation.
func NewOn(filesys billy.Filesystem, p string) Path {
	check.NotNil(filesys)
	return Path{fs: filesys, path: p}
}

// String returns the path as a string.
func (p Path) String() string {
	return p.path
}

// Name returns the final path element.
func (p Path) Name() string {
	return path.Base(p.path)
}

// Parent returns the parent directory as a Path on the same backend.
func (p Path) Parent() Path {
	return Path{fs: p.fs, path: path.Dir(p.path)}
}

// Suffix returns the file extension including the dot, or an empty string.
func (p Path) Suffix() string {
	return path.Ext(p.path)
}

// Stem returns the final path element without its extension.
func (p Path) Stem() string {
	name := p.Name()
	return strings.TrimSuffix(name, path.Ext(name))
}

// Join appends path elements and returns the result on the same backend.
func (p Path) Join(elems ...string) Path {
	return Path{fs: p.fs, path: path.Join(append([]string{p.path}, elems...)...)}
}

// Exists reports whether the path exists.
// Stat failures other than non-existence surface as the failure arm.
func (p Path) Exists() status.StatusOr[bool] {
	_, err := p.fs.Stat(p.path)
	if err == nil {
		return status.Of(true)
	}
	if os.IsNotExist(err) {
		return status.Of(false)
	}
	return status.FromStatus[bool](status.FromError(err))
}

// IsFile reports whether the path exists and is a regular file.
func (p Path) IsFile() status.StatusOr[bool] {
	info, err := p.fs.Stat(p.path)
	if err == nil {
		return status.Of(info.Mode().IsRegular())
	}
	if os.IsNotExist(err) {
		return status.Of(false)
	}
	return status.FromStatus[bool](status.FromError(err))
}

// IsDir reports whether the path exists and is a directory.
func (p Path) IsDir() status.StatusOr[bool] {
	info, err := p.fs.Stat(p.path)
	if err == nil {
		return status.Of(info.IsDir())
	}
	if os.IsNotExist(err) {
		return status.Of(false)
	}
	return status.FromStatus[bool](status.FromError(err))
}

// MkDir creates the directory at the path.
//
// With parents, missing ancestors are created as needed. Without it, a
// missing parent fails with the translated stat error. An existing directory
// fails with CodeAlreadyExists unless existOK is set.
func (p Path) MkDir(mode Mode, parents bool, existOK bool) status.Status {
	if _, err := p.fs.Stat(p.path); err == nil {
		if existOK {
			return status.OK()
		}
		return status.Newf(status.CodeAlreadyExists, "directory already exists: %s", p.path)
	}
	if !parents {
		parent := path.Dir(p.path)
		if parent != "." && parent != "/" {
			if _, err := p.fs.Stat(parent); err != nil {
				return status.FromError(err)
			}
		}
	}
	return status.FromError(p.fs.MkdirAll(p.path, fs.FileMode(mode)))
}

// Remove removes the file or empty directory at the path.
func (p Path) Remove() status.Status {
	return status.FromError(p.fs.Remove(p.path))
}

// RemoveAll removes the path and any children it contains.
// A non-existent path is not an error.
func (p Path) RemoveAll() status.Status {
	return status.FromError(util.RemoveAll(p.fs, p.path))
}

// Rename moves the path to target on the same backend.
func (p Path) Rename(target Path) status.Status {
	return status.FromError(p.fs.Rename(p.path, target.path))
}

// ReadBytes reads the whole file.
func (p Path) ReadBytes() status.StatusOr[[]byte] {
	return status.DoVal(func() ([]byte, error) {
		f, err := p.fs.Open(p.path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return io.ReadAll(f)
	})
}

// ReadText reads the whole file as a string.
func (p Path) ReadText() status.StatusOr[string] {
	data := p.ReadBytes()
	if !data.Ok() {
		return status.FromStatus[string](data.Status())
	}
	return status.Of(string(data.Value()))
}

// WriteBytes writes data to the file, creating or truncating it.
func (p Path) WriteBytes(data []byte, mode Mode) status.Status {
	return status.Do(func() error {
		f, err := p.fs.OpenFile(p.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.FileMode(mode))
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}

// WriteText writes text to the file, creating or truncating it.
func (p Path) WriteText(text string, mode Mode) status.Status {
	return p.WriteBytes([]byte(text), mode)
}

// ReadDir lists the directory entries as Paths on the same backend.
func (p Path) ReadDir() status.StatusOr[[]Path] {
	infos, err := p.fs.ReadDir(p.path)
	if err != nil {
		return status.FromStatus[[]Path](status.FromError(err))
	}
	entries := make([]Path, len(infos))
	for i, info := range infos {
		entries[i] = p.Join(info.Name())
	}
	return status.Of(entries)
}

// Touch creates an empty file if the path does not exist and leaves an
// existing file untouched.
func (p Path) Touch(mode Mode) status.Status {
	exists := p.Exists()
	if !exists.Ok() {
		return exists.Status()
	}
	if exists.Value() {
		return status.OK()
	}
	return status.Do(func() error {
		f, err := p.fs.OpenFile(p.path, os.O_WRONLY|os.O_CREATE, fs.FileMode(mode))
		if err != nil {
			return err
		}
		return f.Close()
	})
}
