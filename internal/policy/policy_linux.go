//go:build linux
// +build linux

package policy

import (
	"strings"

	selinux "github.com/opencontainers/selinux/go-selinux"
	"golang.org/x/sys/unix"
)

// xattrNameSelinux is the extended attribute the kernel stores object
// labels under.
const xattrNameSelinux = "security.selinux"

type selinuxPolicy struct{}

func (*selinuxPolicy) Enabled() bool {
	return selinux.GetEnabled()
}

func (*selinuxPolicy) ProcessLabel() (string, error) {
	return selinux.CurrentLabel()
}

func (*selinuxPolicy) FileLabel(path string, follow bool) (string, error) {
	if follow {
		return getxattr(func(buf []byte) (int, error) {
			return unix.Getxattr(path, xattrNameSelinux, buf)
		})
	}
	return getxattr(func(buf []byte) (int, error) {
		return unix.Lgetxattr(path, xattrNameSelinux, buf)
	})
}

func (*selinuxPolicy) FDLabel(fd int) (string, error) {
	return getxattr(func(buf []byte) (int, error) {
		return unix.Fgetxattr(fd, xattrNameSelinux, buf)
	})
}

func (*selinuxPolicy) SetFileLabel(path, label string) error {
	return unix.Lsetxattr(path, xattrNameSelinux, []byte(label), 0)
}

func (*selinuxPolicy) SetFDLabel(fd int, label string) error {
	return unix.Fsetxattr(fd, xattrNameSelinux, []byte(label), 0)
}

func (*selinuxPolicy) CreationLabel() (string, error) {
	return selinux.FSCreateLabel()
}

func (*selinuxPolicy) SetCreationLabel(label string) error {
	return selinux.SetFSCreateLabel(label)
}

func (*selinuxPolicy) ComputeCreate(source, target, class string) (string, error) {
	return selinux.ComputeCreateContext(source, target, class)
}

// getxattr reads an extended attribute whose size is not known up
// front. It retries with the reported size as long as the buffer turns
// out to be too small.
func getxattr(get func([]byte) (int, error)) (string, error) {
	buf := make([]byte, 128)
	for {
		n, err := get(buf)
		if err == unix.ERANGE {
			if n, err = get(nil); err != nil {
				return "", err
			}
			buf = make([]byte, n)
			continue
		}
		if err != nil {
			return "", err
		}
		// The kernel may include a trailing NUL in the value.
		return strings.TrimRight(string(buf[:n]), "\x00"), nil
	}
}
