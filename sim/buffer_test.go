package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Buffer", func() {
	var buf Buffer

	BeforeEach(func() {
		buf = NewBuffer("Buf", 2)
	})

	It("should push and pop in fifo order", func() {
		Expect(buf.CanPush()).To(BeTrue())
		buf.Push(1)
		buf.Push(2)
		Expect(buf.CanPush()).To(BeFalse())

		Expect(buf.Peek()).To(Equal(1))
		Expect(buf.Pop()).To(Equal(1))
		Expect(buf.Pop()).To(Equal(2))
		Expect(buf.Pop()).To(BeNil())
	})

	It("should panic on overflow", func() {
		buf.Push(1)
		buf.Push(2)
		Expect(func() { buf.Push(3) }).To(Panic())
	})

	It("should report size and capacity", func() {
		buf.Push(1)
		Expect(buf.Size()).To(Equal(1))
		Expect(buf.Capacity()).To(Equal(2))

		buf.Clear()
		Expect(buf.Size()).To(Equal(0))
	})
})
