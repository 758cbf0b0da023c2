package matcher

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/sys/unix"
)

// noLabel marks entries whose paths must stay unlabeled.
const noLabel = "<<none>>"

// fileTypes maps the optional file-type flag of a file_contexts entry
// to the mode bits it constrains the entry to.
var fileTypes = map[string]uint32{
	"--": unix.S_IFREG,
	"-d": unix.S_IFDIR,
	"-c": unix.S_IFCHR,
	"-b": unix.S_IFBLK,
	"-p": unix.S_IFIFO,
	"-l": unix.S_IFLNK,
	"-s": unix.S_IFSOCK,
}

type contextEntry struct {
	regex *regexp.Regexp
	mode  uint32 // 0 means any file type
	label string // empty for <<none>>
}

// FileContexts is a Matcher backed by a file_contexts database. Entries
// are kept in file order and the last matching entry wins. This relies
// on the file_contexts convention of listing more specific patterns
// later in the file; no stem or regex specificity is computed, so a
// database violating that ordering resolves differently than libselinux
// would.
type FileContexts struct {
	path    string
	entries []contextEntry
}

// Load parses the file_contexts database at path.
func Load(path string) (*FileContexts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file contexts: %w", err)
	}
	defer f.Close()

	fc := &FileContexts{path: path}
	s := bufio.NewScanner(f)
	lineno := 0
	for s.Scan() {
		lineno++
		entry, err := parseLine(s.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		if entry != nil {
			fc.entries = append(fc.entries, *entry)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return fc, nil
}

func parseLine(line string) (*contextEntry, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	fields := strings.Fields(line)
	entry := contextEntry{}
	var pattern, label string
	switch len(fields) {
	case 2:
		pattern, label = fields[0], fields[1]
	case 3:
		mode, ok := fileTypes[fields[1]]
		if !ok {
			return nil, fmt.Errorf("unknown file type flag %q", fields[1])
		}
		pattern, entry.mode, label = fields[0], mode, fields[2]
	default:
		return nil, fmt.Errorf("malformed entry %q", line)
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	entry.regex = re
	if label != noLabel {
		entry.label = label
	}
	return &entry, nil
}

// Match returns the default label for path, constrained by the file
// type bits of mode.
func (fc *FileContexts) Match(path string, mode uint32) (string, error) {
	var found *contextEntry
	for i := range fc.entries {
		e := &fc.entries[i]
		if e.mode != 0 && e.mode != mode&unix.S_IFMT {
			continue
		}
		if e.regex.MatchString(path) {
			found = e
		}
	}
	if found == nil {
		return "", fmt.Errorf("%w for %s", ErrNoMatch, path)
	}
	if found.label == "" {
		return "", fmt.Errorf("%w: %s is explicitly unlabeled", ErrNoMatch, path)
	}
	return found.label, nil
}
