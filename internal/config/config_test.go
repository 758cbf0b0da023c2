package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/optionalg/coreutils/internal/config"
)

var _ = t.Describe("Config", func() {
	var sut *config.Config

	BeforeEach(func() {
		sut = config.Default()
		Expect(sut).NotTo(BeNil())
	})

	Describe("Default", func() {
		It("should be valid", func() {
			// Given
			// When
			err := sut.Validate()

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(sut.FileContexts).To(Equal(config.DefaultFileContexts))
		})
	})

	Describe("Validate", func() {
		It("should fail on an unknown log level", func() {
			// Given
			sut.LogLevel = "loud"

			// When
			err := sut.Validate()

			// Then
			Expect(err).To(HaveOccurred())
		})

		It("should fail on an unknown log format", func() {
			// Given
			sut.LogFormat = "xml"

			// When
			err := sut.Validate()

			// Then
			Expect(err).To(HaveOccurred())
		})

		It("should fail on a relative file contexts path", func() {
			// Given
			sut.FileContexts = "contexts/file_contexts"

			// When
			err := sut.Validate()

			// Then
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ToFile", func() {
		It("should succeed and be loadable again", func() {
			// Given
			path := filepath.Join(t.MustTempDir("config-"), "selabel.toml")
			sut.LogLevel = "debug"
			Expect(sut.ToFile(path)).To(Succeed())

			// When
			loaded := config.Default()
			err := loaded.UpdateFromFile(path)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(loaded.LogLevel).To(Equal("debug"))
		})
	})

	Describe("UpdateFromFile", func() {
		It("should overlay only the keys set in the file", func() {
			// Given
			path := t.MustTempFile("config-partial-")
			Expect(os.WriteFile(path, []byte("log_level = \"trace\"\n"), 0o644)).
				To(Succeed())

			// When
			err := sut.UpdateFromFile(path)

			// Then
			Expect(err).ToNot(HaveOccurred())
			Expect(sut.LogLevel).To(Equal("trace"))
			Expect(sut.FileContexts).To(Equal(config.DefaultFileContexts))
		})

		It("should fail on a missing file", func() {
			// Given
			// When
			err := sut.UpdateFromFile("/definitely/not/existing")

			// Then
			Expect(err).To(HaveOccurred())
		})

		It("should fail on malformed TOML", func() {
			// Given
			path := t.MustTempFile("config-malformed-")
			Expect(os.WriteFile(path, []byte("log_level = [\n"), 0o644)).To(Succeed())

			// When
			err := sut.UpdateFromFile(path)

			// Then
			Expect(err).To(HaveOccurred())
		})
	})
})
