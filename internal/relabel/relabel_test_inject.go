//go:build test
// +build test

// All *_inject.go files are meant to be used by tests only. Purpose of this
// files is to provide a way to inject mocked data into the current setup.

package relabel

import "github.com/optionalg/coreutils/internal/walker"

func (r *Restorer) SetWalkFunc(walk func(root string) (walker.Walker, error)) {
	r.walk = walk
}
