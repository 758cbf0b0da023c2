// Package policy wraps the label-based security policy engine of the
// running system. All label queries and label installs the rest of the
// repository performs go through the Policy interface, so that the
// policy engine stays mockable in tests and replaceable on systems
// without SELinux.
package policy

import "errors"

// ErrNotSupported is returned by every Policy operation on platforms
// without SELinux support.
var ErrNotSupported = errors.New("selinux is not supported on this platform")

// Policy is the interface to the loaded security policy.
type Policy interface {
	// Enabled reports whether the policy engine is active on this system.
	Enabled() bool

	// ProcessLabel returns the label of the current process.
	ProcessLabel() (string, error)

	// FileLabel returns the label of the object at path. With follow
	// set, a symlink at path is dereferenced first.
	FileLabel(path string, follow bool) (string, error)

	// FDLabel returns the label of the object behind an open descriptor.
	FDLabel(fd int) (string, error)

	// SetFileLabel sets the label of the object at path. Symlinks are
	// never followed.
	SetFileLabel(path, label string) error

	// SetFDLabel sets the label of the object behind an open descriptor.
	SetFDLabel(fd int, label string) error

	// CreationLabel returns the label the kernel applies to filesystem
	// objects created by this process. Empty means policy default.
	CreationLabel() (string, error)

	// SetCreationLabel tells the kernel to apply label to all filesystem
	// objects subsequently created by this process.
	SetCreationLabel(label string) error

	// ComputeCreate asks the policy what label an object of the given
	// class would receive if a process labeled source created it inside
	// an object labeled target.
	ComputeCreate(source, target, class string) (string, error)
}

// New returns the Policy implementation for the running system.
func New() Policy {
	return &selinuxPolicy{}
}
