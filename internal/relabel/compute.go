package relabel

import (
	"fmt"
	"path/filepath"
)

// CreatedLabel computes the label a filesystem object of the given
// mode would receive if the current process created it at path. The
// transition is derived from the process label, the label of the
// parent directory and the object class; the object itself does not
// have to exist.
func (r *Restorer) CreatedLabel(path string, mode uint32) (string, error) {
	source, err := r.policy.ProcessLabel()
	if err != nil {
		return "", fmt.Errorf("get process label: %w", err)
	}

	parent := filepath.Dir(path)
	target, err := r.policy.FileLabel(parent, true)
	if err != nil {
		return "", fmt.Errorf("get label of %s: %w", parent, err)
	}

	class, err := SecurityClass(mode)
	if err != nil {
		return "", err
	}

	label, err := r.policy.ComputeCreate(source, target, class)
	if err != nil {
		return "", fmt.Errorf("compute creation label for %s: %w", path, err)
	}
	return label, nil
}
