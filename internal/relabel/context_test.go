package relabel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/optionalg/coreutils/internal/relabel"
)

var _ = t.Describe("MergeType", func() {
	It("should replace only the type component", func() {
		// Given
		base := "staff_u:staff_r:user_home_t:s0-s0"
		donor := "system_u:object_r:etc_t:s1"

		// When
		res, err := relabel.MergeType(base, donor)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal("staff_u:staff_r:etc_t:s0-s0"))
	})

	It("should keep the base untouched when types already agree", func() {
		// Given
		base := "system_u:object_r:etc_t:s0"

		// When
		res, err := relabel.MergeType(base, base)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(base))
	})

	It("should fail when the base label does not parse", func() {
		// Given
		// When
		res, err := relabel.MergeType("garbage", "system_u:object_r:etc_t:s0")

		// Then
		Expect(err).To(MatchError(relabel.ErrMergeUnavailable))
		Expect(res).To(BeEmpty())
	})

	It("should fail when the donor label does not parse", func() {
		// Given
		// When
		res, err := relabel.MergeType("system_u:object_r:etc_t:s0", "garbage")

		// Then
		Expect(err).To(MatchError(relabel.ErrMergeUnavailable))
		Expect(res).To(BeEmpty())
	})
})
