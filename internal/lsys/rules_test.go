package lsys_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/growlab/internal/lsys"
)

var _ = Describe("ParseRules", func() {
	It("parses a single rule", func() {
		rules, err := lsys.ParseRules("F=F+F")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(HaveLen(1))
		Expect(rules['F']).To(Equal("F+F"))
	})

	It("parses multiple rules across lines", func() {
		rules, err := lsys.ParseRules("A=AB\nB=A")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(Equal(lsys.Rules{'A': "AB", 'B': "A"}))
	})

	It("skips blank lines and comments", func() {
		rules, err := lsys.ParseRules("\n# koch island\nF=F+F-F-F+F\n\n  # trailing comment\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(HaveLen(1))
	})

	It("trims whitespace around both sides", func() {
		rules, err := lsys.ParseRules("  F  =  F[+F]  ")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules['F']).To(Equal("F[+F]"))
	})

	It("lets the last duplicate LHS win", func() {
		rules, err := lsys.ParseRules("F=A\nF=B")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules['F']).To(Equal("B"))
	})

	It("allows an empty replacement", func() {
		rules, err := lsys.ParseRules("F=")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules['F']).To(Equal(""))
	})

	It("rejects a line without a separator", func() {
		_, err := lsys.ParseRules("FFF")
		Expect(err).To(MatchError(lsys.ErrMalformedRule))
	})

	It("rejects a multi-symbol LHS", func() {
		_, err := lsys.ParseRules("AB=C")
		Expect(err).To(MatchError(lsys.ErrMalformedRule))
	})

	It("rejects an empty LHS", func() {
		_, err := lsys.ParseRules("=C")
		Expect(err).To(MatchError(lsys.ErrMalformedRule))
	})

	It("reports the offending line number", func() {
		_, err := lsys.ParseRules("F=FF\nbroken")
		var ruleErr *lsys.RuleError
		Expect(errors.As(err, &ruleErr)).To(BeTrue())
		Expect(ruleErr.Line).To(Equal(2))
		Expect(ruleErr.Raw).To(Equal("broken"))
	})

	It("returns an empty table for empty text", func() {
		rules, err := lsys.ParseRules("")
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(BeEmpty())
	})
})

var _ = Describe("Replacement", func() {
	It("falls back to the identity rule", func() {
		rules := lsys.Rules{'F': "FF"}
		Expect(rules.Replacement('F')).To(Equal("FF"))
		Expect(rules.Replacement('X')).To(Equal("X"))
	})
})
