package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Name", func() {
	It("should parse name", func() {
		name := ParseName("Bus[0].Client[3]")
		Expect(name.Tokens[0].ElemName).To(Equal("Bus"))
		Expect(name.Tokens[0].Index).To(Equal([]int{0}))
		Expect(name.Tokens[1].ElemName).To(Equal("Client"))
		Expect(name.Tokens[1].Index).To(Equal([]int{3}))
	})

	It("should panic if the name is empty", func() {
		Expect(func() { NameMustBeValid("") }).To(Panic())
	})

	It("should panic if name includes underscore", func() {
		Expect(func() { NameMustBeValid("Bus_0") }).To(Panic())
	})

	It("should panic if name is not capitalized CamelCase", func() {
		Expect(func() { NameMustBeValid("bus0") }).To(Panic())
	})

	It("should have paired square brackets", func() {
		Expect(func() { NameMustBeValid("Bus[0") }).To(Panic())
		Expect(func() { NameMustBeValid("Bus0]") }).To(Panic())
	})

	It("should panic if element name is empty", func() {
		Expect(func() { NameMustBeValid("Bus..0") }).To(Panic())
	})

	It("should build name", func() {
		Expect(BuildName("", "Bus")).To(Equal("Bus"))
		Expect(BuildName("Bus", "Client")).To(Equal("Bus.Client"))
	})

	It("should build name with index", func() {
		Expect(BuildNameWithIndex("", "Client", 0)).To(Equal("Client[0]"))
		Expect(BuildNameWithIndex("Bus", "Client", 2)).To(Equal("Bus.Client[2]"))
	})
})
