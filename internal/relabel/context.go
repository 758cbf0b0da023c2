package relabel

import (
	"fmt"

	selinux "github.com/opencontainers/selinux/go-selinux"
)

// MergeType returns base with its type component replaced by the type
// component of donor. User, role and sensitivity range of base are
// left untouched.
func MergeType(base, donor string) (string, error) {
	bctx, err := selinux.NewContext(base)
	if err != nil {
		return "", fmt.Errorf("%w: parse %q: %v", ErrMergeUnavailable, base, err)
	}
	dctx, err := selinux.NewContext(donor)
	if err != nil {
		return "", fmt.Errorf("%w: parse %q: %v", ErrMergeUnavailable, donor, err)
	}
	bctx["type"] = dctx["type"]
	return bctx.Get(), nil
}
