//go:build !linux
// +build !linux

package policy

type selinuxPolicy struct{}

func (*selinuxPolicy) Enabled() bool {
	return false
}

func (*selinuxPolicy) ProcessLabel() (string, error) {
	return "", ErrNotSupported
}

func (*selinuxPolicy) FileLabel(path string, follow bool) (string, error) {
	return "", ErrNotSupported
}

func (*selinuxPolicy) FDLabel(fd int) (string, error) {
	return "", ErrNotSupported
}

func (*selinuxPolicy) SetFileLabel(path, label string) error {
	return ErrNotSupported
}

func (*selinuxPolicy) SetFDLabel(fd int, label string) error {
	return ErrNotSupported
}

func (*selinuxPolicy) CreationLabel() (string, error) {
	return "", ErrNotSupported
}

func (*selinuxPolicy) SetCreationLabel(label string) error {
	return ErrNotSupported
}

func (*selinuxPolicy) ComputeCreate(source, target, class string) (string, error) {
	return "", ErrNotSupported
}
