package relabel

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SetDefaultCreationLabel tells the kernel to label every filesystem
// object the process subsequently creates the way an object at path
// with the given mode should be labeled. The default-label database
// supplies the type; user, role and range come from the policy
// transition for the current process. The process creation-label state
// is only touched once both lookups have succeeded.
func (r *Restorer) SetDefaultCreationLabel(path string, mode uint32) error {
	if !r.policy.Enabled() {
		logrus.Debugf("Policy engine disabled, not setting a creation label for %s", path)
		return nil
	}

	pattern, err := r.matcher.Match(path, mode)
	if err != nil {
		return fmt.Errorf("look up default label of %s: %w", path, err)
	}

	transition, err := r.CreatedLabel(path, mode)
	if err != nil {
		return err
	}

	label, err := MergeType(transition, pattern)
	if err != nil {
		return err
	}

	if err := r.policy.SetCreationLabel(label); err != nil {
		return fmt.Errorf("set creation label to %s: %w", label, err)
	}
	logrus.Debugf("Creation label for %s set to %s", path, label)
	return nil
}
