package relabel

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// object is an existing filesystem object under relabeling. When the
// object could be opened, fd is the authoritative way to query and set
// its label; for symlinks no descriptor can be opened without
// following them, so the path form is used instead. haveFD is explicit
// rather than inferred from the descriptor value, which can
// legitimately be zero.
type object struct {
	path   string
	fd     int
	haveFD bool
	mode   uint32
}

// openObject prepares path for relabeling. Symlinks are detected up
// front and handled through path-based access; everything else is
// opened read-only without following, and its mode re-read through the
// descriptor in case the path changed underneath us.
func openObject(path string) (*object, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return &object{path: path, mode: uint32(st.Mode)}, nil
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOFOLLOW|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &object{path: path, fd: fd, haveFD: true, mode: uint32(st.Mode)}, nil
}

func (o *object) close() {
	if o.haveFD {
		unix.Close(o.fd)
		o.haveFD = false
	}
}

func (o *object) label(p policyLabeler) (string, error) {
	if o.haveFD {
		return p.FDLabel(o.fd)
	}
	return p.FileLabel(o.path, false)
}

func (o *object) setLabel(p policyLabeler, label string) error {
	if o.haveFD {
		return p.SetFDLabel(o.fd, label)
	}
	return p.SetFileLabel(o.path, label)
}

// policyLabeler is the slice of the policy engine an object needs to
// read and write its own label.
type policyLabeler interface {
	FileLabel(path string, follow bool) (string, error)
	FDLabel(fd int) (string, error)
	SetFileLabel(path, label string) error
	SetFDLabel(fd int, label string) error
}

// RelabelObject corrects the label of the existing object at path.
// With preserve set, the process's current creation label is copied
// onto the object verbatim. Otherwise the object keeps its on-disk
// user, role and range and only its type is replaced by the
// default-label database's answer for this path and mode. Symlinks are
// never followed; the object itself is always the one relabeled.
func (r *Restorer) RelabelObject(path string, preserve bool) error {
	if !r.policy.Enabled() {
		logrus.Debugf("Policy engine disabled, not relabeling %s", path)
		return nil
	}

	if preserve {
		label, err := r.policy.CreationLabel()
		if err != nil {
			return fmt.Errorf("get creation label: %w", err)
		}
		if err := r.policy.SetFileLabel(path, label); err != nil {
			return fmt.Errorf("set label of %s to %s: %w", path, label, err)
		}
		return nil
	}

	obj, err := openObject(path)
	if err != nil {
		return err
	}
	defer obj.close()

	pattern, err := r.matcher.Match(path, obj.mode)
	if err != nil {
		return fmt.Errorf("look up default label of %s: %w", path, err)
	}

	current, err := obj.label(r.policy)
	if err != nil {
		return fmt.Errorf("get label of %s: %w", path, err)
	}

	label, err := MergeType(current, pattern)
	if err != nil {
		return err
	}

	if err := obj.setLabel(r.policy, label); err != nil {
		return fmt.Errorf("set label of %s to %s: %w", path, label, err)
	}
	logrus.Debugf("Relabeled %s from %s to %s", path, current, label)
	return nil
}
