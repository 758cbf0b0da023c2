package walker_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/optionalg/coreutils/internal/walker"
)

var _ = t.Describe("Walker", func() {
	// collect drains the walk and returns every produced path.
	collect := func(w walker.Walker) []string {
		paths := []string{}
		for {
			entry, err := w.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			Expect(err).ToNot(HaveOccurred())
			paths = append(paths, entry.Path)
		}
		return paths
	}

	write := func(path string) {
		Expect(os.WriteFile(path, []byte("x"), 0o644)).To(Succeed())
	}

	It("should produce every entry exactly once, root first", func() {
		// Given
		root := t.MustTempDir("walker-tree-")
		Expect(os.MkdirAll(filepath.Join(root, "sub", "deeper"), 0o755)).To(Succeed())
		write(filepath.Join(root, "a"))
		write(filepath.Join(root, "sub", "b"))
		write(filepath.Join(root, "sub", "deeper", "c"))

		// When
		w, err := walker.Open(root)
		Expect(err).ToNot(HaveOccurred())
		paths := collect(w)

		// Then
		Expect(w.Close()).To(Succeed())
		Expect(paths[0]).To(Equal(root))
		Expect(paths).To(ConsistOf(
			root,
			filepath.Join(root, "a"),
			filepath.Join(root, "sub"),
			filepath.Join(root, "sub", "b"),
			filepath.Join(root, "sub", "deeper"),
			filepath.Join(root, "sub", "deeper", "c"),
		))
	})

	It("should not descend into symlinked directories", func() {
		// Given
		root := t.MustTempDir("walker-symlink-")
		outside := t.MustTempDir("walker-outside-")
		write(filepath.Join(outside, "unreachable"))
		Expect(os.Symlink(outside, filepath.Join(root, "link"))).To(Succeed())

		// When
		w, err := walker.Open(root)
		Expect(err).ToNot(HaveOccurred())
		paths := collect(w)

		// Then
		Expect(w.Close()).To(Succeed())
		Expect(paths).To(ConsistOf(root, filepath.Join(root, "link")))
	})

	It("should walk a single file root", func() {
		// Given
		root := t.MustTempFile("walker-file-")

		// When
		w, err := walker.Open(root)
		Expect(err).ToNot(HaveOccurred())
		paths := collect(w)

		// Then
		Expect(w.Close()).To(Succeed())
		Expect(paths).To(ConsistOf(root))
	})

	It("should report the type of each entry without following symlinks", func() {
		// Given
		root := t.MustTempDir("walker-types-")
		write(filepath.Join(root, "file"))
		Expect(os.Symlink("file", filepath.Join(root, "link"))).To(Succeed())

		// When
		w, err := walker.Open(root)
		Expect(err).ToNot(HaveOccurred())

		types := map[string]os.FileMode{}
		for {
			entry, err := w.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			Expect(err).ToNot(HaveOccurred())
			types[entry.Path] = entry.Type
		}

		// Then
		Expect(w.Close()).To(Succeed())
		Expect(types[root].IsDir()).To(BeTrue())
		Expect(types[filepath.Join(root, "file")].IsRegular()).To(BeTrue())
		Expect(types[filepath.Join(root, "link")] & os.ModeSymlink).
			To(Equal(os.ModeSymlink))
	})

	It("should produce an unreadable directory and continue with its siblings", func() {
		if os.Geteuid() == 0 {
			Skip("directory permissions are not enforced for root")
		}

		// Given
		root := t.MustTempDir("walker-unreadable-")
		locked := filepath.Join(root, "a_locked")
		Expect(os.Mkdir(locked, 0o755)).To(Succeed())
		write(filepath.Join(locked, "unreachable"))
		write(filepath.Join(root, "z_sibling"))
		Expect(os.Chmod(locked, 0o000)).To(Succeed())
		defer os.Chmod(locked, 0o755)

		// When
		w, err := walker.Open(root)
		Expect(err).ToNot(HaveOccurred())

		paths := []string{}
		var lockedErr error
		for {
			entry, err := w.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			Expect(err).ToNot(HaveOccurred())
			paths = append(paths, entry.Path)
			if entry.Path == locked {
				lockedErr = entry.Err
			} else {
				Expect(entry.Err).ToNot(HaveOccurred())
			}
		}

		// Then
		Expect(w.Close()).To(Succeed())
		Expect(lockedErr).To(HaveOccurred())
		Expect(paths).To(ConsistOf(root, locked, filepath.Join(root, "z_sibling")))
	})

	It("should fail to open a walk of a missing root", func() {
		// Given
		// When
		w, err := walker.Open("/definitely/not/existing")

		// Then
		Expect(err).To(HaveOccurred())
		Expect(w).To(BeNil())
	})

	It("should refuse use after close", func() {
		// Given
		root := t.MustTempDir("walker-closed-")
		w, err := walker.Open(root)
		Expect(err).ToNot(HaveOccurred())
		Expect(w.Close()).To(Succeed())

		// When
		entry, err := w.Next()

		// Then
		Expect(err).To(MatchError(walker.ErrClosed))
		Expect(entry).To(BeNil())
		Expect(w.Close()).To(MatchError(walker.ErrClosed))
	})
})
