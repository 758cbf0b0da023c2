// Package matcher resolves filesystem paths to the default security
// label the policy expects objects at that path to carry.
package matcher

import "errors"

// ErrNoMatch is returned when the database holds no label for a path,
// either because no pattern matched or because the matching entry
// explicitly declares the path unlabeled.
var ErrNoMatch = errors.New("no matching default label entry")

// Matcher looks up the default label for a path and file mode.
type Matcher interface {
	Match(path string, mode uint32) (string, error)
}
