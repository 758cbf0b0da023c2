package relabel

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Failure records one object whose relabel failed during a tree
// restoration.
type Failure struct {
	Path string
	Err  error
}

// Outcome aggregates the result of a restoration. Per-object failures
// and failures of the walk itself are tracked separately; either kind
// makes the whole outcome unsuccessful.
type Outcome struct {
	failures []Failure
	walkErr  error
}

// Succeeded reports whether every visited object was relabeled and the
// walk itself ran to completion.
func (o *Outcome) Succeeded() bool {
	return o.walkErr == nil && len(o.failures) == 0
}

// Failures returns the objects whose relabel failed.
func (o *Outcome) Failures() []Failure {
	return o.failures
}

// WalkErr returns the structural walk failure, if any.
func (o *Outcome) WalkErr() error {
	return o.walkErr
}

func (o *Outcome) record(path string, err error) {
	o.failures = append(o.failures, Failure{Path: path, Err: err})
}

// Restore corrects the label of the object at path, or, with recurse
// set, of every object reachable from path by physical descent. A
// failing object does not stop the walk; it is recorded in the outcome
// and iteration continues. With preserve set the process's current
// creation label is applied instead of the policy-computed one.
func (r *Restorer) Restore(path string, recurse, preserve bool) *Outcome {
	outcome := &Outcome{}

	if !recurse {
		if err := r.RelabelObject(path, preserve); err != nil {
			logrus.Errorf("Relabeling %s: %v", path, err)
			outcome.record(path, err)
		}
		return outcome
	}

	walk, err := r.walk(path)
	if err != nil {
		logrus.Errorf("Walking %s: %v", path, err)
		outcome.walkErr = fmt.Errorf("open walk of %s: %w", path, err)
		return outcome
	}

	for {
		entry, err := walk.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logrus.Errorf("Walking %s: %v", path, err)
			outcome.walkErr = fmt.Errorf("walk %s: %w", path, err)
			break
		}
		if entry.Err != nil {
			// Unreadable directory: relabel the directory itself, note
			// that its children stay unvisited and move on.
			logrus.Errorf("Descending into %s: %v", entry.Path, entry.Err)
			outcome.record(entry.Path, entry.Err)
		}
		if err := r.RelabelObject(entry.Path, preserve); err != nil {
			logrus.Errorf("Relabeling %s: %v", entry.Path, err)
			outcome.record(entry.Path, err)
		}
	}

	if err := walk.Close(); err != nil {
		logrus.Errorf("Closing walk of %s: %v", path, err)
		if outcome.walkErr == nil {
			outcome.walkErr = fmt.Errorf("close walk of %s: %w", path, err)
		}
	}
	return outcome
}
