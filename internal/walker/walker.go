// Package walker provides a lazy, physical, depth-first traversal of a
// filesystem tree. Symlinks are never followed when descending, the
// walk is consumed exactly once, and closing the walk surfaces any
// failure to release its directory handles.
package walker

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrClosed is returned by Next once the walk has been closed.
var ErrClosed = errors.New("walk already closed")

// Entry is one object produced by the walk.
type Entry struct {
	Path string
	// Type holds the type bits of the entry, as reported without
	// following symlinks.
	Type fs.FileMode
	// Err is set when the entry is a directory that could not be
	// opened for descent. The entry itself is still produced; its
	// children are skipped and the walk continues with the siblings.
	Err error
}

// Walker is a non-restartable cursor over a filesystem tree. Next
// returns io.EOF once the tree is exhausted; any other error
// terminates the iteration. Directories that cannot be opened for
// descent are still produced, with Entry.Err set. Close must be called
// exactly once.
type Walker interface {
	Next() (*Entry, error)
	Close() error
}

type treeWalker struct {
	root   *Entry
	stack  []*os.File
	closed bool
}

// Open starts a pre-order walk rooted at root. The root itself is the
// first entry produced.
func Open(root string) (Walker, error) {
	fi, err := os.Lstat(root)
	if err != nil {
		return nil, err
	}
	return &treeWalker{root: &Entry{Path: root, Type: fi.Mode().Type()}}, nil
}

func (w *treeWalker) Next() (*Entry, error) {
	if w.closed {
		return nil, ErrClosed
	}

	if w.root != nil {
		entry := w.root
		w.root = nil
		if entry.Type.IsDir() {
			entry.Err = w.descend(entry.Path)
		}
		return entry, nil
	}

	for len(w.stack) > 0 {
		dir := w.stack[len(w.stack)-1]
		ents, err := dir.ReadDir(1)
		if errors.Is(err, io.EOF) {
			w.stack = w.stack[:len(w.stack)-1]
			if err := dir.Close(); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		ent := ents[0]
		entry := &Entry{
			Path: filepath.Join(dir.Name(), ent.Name()),
			Type: ent.Type(),
		}
		if ent.IsDir() {
			entry.Err = w.descend(entry.Path)
		}
		return entry, nil
	}

	return nil, io.EOF
}

// descend pushes a directory onto the walk stack. The directory is
// opened O_NOFOLLOW so that a path swapped for a symlink between the
// readdir and the open cannot redirect the walk.
func (w *treeWalker) descend(path string) error {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_NOFOLLOW|unix.O_CLOEXEC, 0)
	if err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	w.stack = append(w.stack, os.NewFile(uintptr(fd), path))
	return nil
}

func (w *treeWalker) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	var first error
	for _, dir := range w.stack {
		if err := dir.Close(); err != nil && first == nil {
			first = err
		}
	}
	w.stack = nil
	return first
}
