// Package relabel computes and applies security labels to filesystem
// objects. It derives the label a newly created object should receive
// from the creating process, the parent directory and the object
// class, installs process-wide creation labels, and restores the
// labels of existing objects, optionally over a whole tree.
package relabel

import (
	"errors"

	"github.com/optionalg/coreutils/internal/matcher"
	"github.com/optionalg/coreutils/internal/policy"
	"github.com/optionalg/coreutils/internal/walker"
)

var (
	// ErrInvalidMode is returned when file mode bits match no known
	// object class.
	ErrInvalidMode = errors.New("file mode matches no object class")

	// ErrMergeUnavailable is returned when one of the two labels needed
	// for a type merge cannot be parsed.
	ErrMergeUnavailable = errors.New("label unavailable for merge")
)

// Restorer ties the policy engine and the default-label database
// together into the label computation and restoration operations.
type Restorer struct {
	policy  policy.Policy
	matcher matcher.Matcher
	walk    func(root string) (walker.Walker, error)
}

// New creates a Restorer on top of the given policy engine and
// default-label database.
func New(p policy.Policy, m matcher.Matcher) *Restorer {
	return &Restorer{
		policy:  p,
		matcher: m,
		walk:    walker.Open,
	}
}
