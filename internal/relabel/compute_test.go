package relabel_test

import (
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sys/unix"

	"github.com/optionalg/coreutils/internal/relabel"
	matchermock "github.com/optionalg/coreutils/test/mocks/matcher"
	policymock "github.com/optionalg/coreutils/test/mocks/policy"
)

var _ = t.Describe("CreatedLabel", func() {
	var (
		policyMock  *policymock.MockPolicy
		matcherMock *matchermock.MockMatcher
		sut         *relabel.Restorer
	)

	const (
		processLabel = "staff_u:staff_r:staff_t:s0"
		parentLabel  = "system_u:object_r:etc_t:s0"
		createdLabel = "staff_u:object_r:etc_t:s0"
	)

	BeforeEach(func() {
		policyMock = policymock.NewMockPolicy(mockCtrl)
		matcherMock = matchermock.NewMockMatcher(mockCtrl)
		sut = relabel.New(policyMock, matcherMock)
	})

	It("should combine process label, parent label and class", func() {
		// Given
		gomock.InOrder(
			policyMock.EXPECT().ProcessLabel().Return(processLabel, nil),
			policyMock.EXPECT().FileLabel("/etc", true).Return(parentLabel, nil),
			policyMock.EXPECT().ComputeCreate(processLabel, parentLabel, "file").
				Return(createdLabel, nil),
		)

		// When
		res, err := sut.CreatedLabel("/etc/passwd", unix.S_IFREG|0o644)

		// Then
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(createdLabel))
	})

	It("should fail when the process label is unavailable", func() {
		// Given
		gomock.InOrder(
			policyMock.EXPECT().ProcessLabel().Return("", errors.New("no label")),
		)

		// When
		res, err := sut.CreatedLabel("/etc/passwd", unix.S_IFREG)

		// Then
		Expect(err).To(HaveOccurred())
		Expect(res).To(BeEmpty())
	})

	It("should fail when the parent label is unavailable", func() {
		// Given
		gomock.InOrder(
			policyMock.EXPECT().ProcessLabel().Return(processLabel, nil),
			policyMock.EXPECT().FileLabel("/etc", true).Return("", errors.New("no label")),
		)

		// When
		res, err := sut.CreatedLabel("/etc/passwd", unix.S_IFREG)

		// Then
		Expect(err).To(HaveOccurred())
		Expect(res).To(BeEmpty())
	})

	It("should fail for an unknown object class without querying the policy", func() {
		// Given
		gomock.InOrder(
			policyMock.EXPECT().ProcessLabel().Return(processLabel, nil),
			policyMock.EXPECT().FileLabel("/etc", true).Return(parentLabel, nil),
		)

		// When
		res, err := sut.CreatedLabel("/etc/passwd", 0)

		// Then
		Expect(err).To(MatchError(relabel.ErrInvalidMode))
		Expect(res).To(BeEmpty())
	})

	It("should fail when the policy refuses the transition", func() {
		// Given
		gomock.InOrder(
			policyMock.EXPECT().ProcessLabel().Return(processLabel, nil),
			policyMock.EXPECT().FileLabel("/etc", true).Return(parentLabel, nil),
			policyMock.EXPECT().ComputeCreate(processLabel, parentLabel, "file").
				Return("", errors.New("refused")),
		)

		// When
		res, err := sut.CreatedLabel("/etc/passwd", unix.S_IFREG)

		// Then
		Expect(err).To(HaveOccurred())
		Expect(res).To(BeEmpty())
	})
})
