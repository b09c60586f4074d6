package lsys_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/growlab/internal/lsys"
)

var _ = Describe("Expand", func() {
	It("returns the axiom for zero iterations", func() {
		rules := lsys.Rules{'F': "FF"}
		s, err := lsys.Expand("F+F", rules, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("F+F"))
	})

	It("leaves the axiom unchanged under an empty rule table", func() {
		for n := 0; n <= 4; n++ {
			s, err := lsys.Expand("F[+F]X", lsys.Rules{}, n)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal("F[+F]X"))
		}
	})

	It("rewrites every symbol per generation in order", func() {
		rules := lsys.Rules{'F': "F+G"}
		s, err := lsys.Expand("FF", rules, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("F+GF+G"))
	})

	It("passes inert symbols through unchanged", func() {
		rules := lsys.Rules{'F': "FF"}
		s, err := lsys.Expand("F[+F]", rules, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal("FF[+FF]"))
	})

	It("grows the algae system along the Fibonacci sequence", func() {
		rules := lsys.Rules{'A': "AB", 'B': "A"}
		want := []int{1, 2, 3, 5, 8}
		for n, l := range want {
			s, err := lsys.Expand("A", rules, n)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(HaveLen(l), "generation %d", n)
		}
	})

	It("is deterministic", func() {
		rules := lsys.Rules{'F': "F[+F]F[-F]F"}
		a, err := lsys.Expand("F", rules, 4)
		Expect(err).NotTo(HaveOccurred())
		b, err := lsys.Expand("F", rules, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("rejects a negative iteration count", func() {
		_, err := lsys.Expand("F", lsys.Rules{}, -1)
		Expect(err).To(MatchError(lsys.ErrInvalidIterations))
	})

	It("enforces the length cap", func() {
		rules := lsys.Rules{'F': "FFFF"}
		_, err := lsys.ExpandBounded("F", rules, 10, 1000)
		Expect(err).To(MatchError(lsys.ErrExpansionTooLarge))
	})

	It("ignores the cap when disabled", func() {
		rules := lsys.Rules{'F': "FF"}
		s, err := lsys.ExpandBounded("F", rules, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(HaveLen(1024))
	})
})

var _ = Describe("Lengths", func() {
	It("matches Expand generation by generation", func() {
		rules := lsys.Rules{'F': "F[+F]F[-F]F"}
		lengths := lsys.Lengths("F", rules, 3)
		Expect(lengths).To(HaveLen(4))
		for n, l := range lengths {
			s, err := lsys.Expand("F", rules, n)
			Expect(err).NotTo(HaveOccurred())
			Expect(l).To(Equal(len([]rune(s))), "generation %d", n)
		}
	})

	It("reports the algae sequence without building strings", func() {
		rules := lsys.Rules{'A': "AB", 'B': "A"}
		Expect(lsys.Lengths("A", rules, 4)).To(Equal([]int{1, 2, 3, 5, 8}))
	})
})
