package relabel

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SecurityClass translates file mode bits into the policy object class
// an object of that mode belongs to.
func SecurityClass(mode uint32) (string, error) {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return "file", nil
	case unix.S_IFDIR:
		return "dir", nil
	case unix.S_IFCHR:
		return "chr_file", nil
	case unix.S_IFBLK:
		return "blk_file", nil
	case unix.S_IFIFO:
		return "fifo_file", nil
	case unix.S_IFLNK:
		return "lnk_file", nil
	case unix.S_IFSOCK:
		return "sock_file", nil
	}
	return "", fmt.Errorf("%w: %#o", ErrInvalidMode, mode)
}
