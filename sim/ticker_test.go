package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Ticking Component", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		ticker   *MockTicker
		tc       *TickingComponent
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		ticker = NewMockTicker(mockCtrl)
		tc = NewTickingComponent("TC", engine, ticker)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should tick again when the ticker makes progress in a tick", func() {
		engine.EXPECT().CurrentCycle().Return(VCycle(10))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e TickEvent) {
				Expect(e.Cycle()).To(Equal(VCycle(11)))
			})
		ticker.EXPECT().Tick().Return(true)

		tc.Handle(MakeTickEvent(tc, 10))
	})

	It("should not tick if there is another tick scheduled in the future", func() {
		engine.EXPECT().CurrentCycle().Return(VCycle(10)).AnyTimes()
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e TickEvent) {
				Expect(e.Cycle()).To(Equal(VCycle(11)))
			})
		ticker.EXPECT().Tick().Return(true).Times(2)

		tc.Handle(MakeTickEvent(tc, 10))
		tc.Handle(MakeTickEvent(tc, 10))
	})

	It("should stop ticking when the ticker makes no progress", func() {
		engine.EXPECT().CurrentCycle().Times(0)
		ticker.EXPECT().Tick().Return(false)

		tc.Handle(MakeTickEvent(tc, 10))
	})

	It("should schedule the first tick at the current cycle with TickNow", func() {
		engine.EXPECT().CurrentCycle().Return(VCycle(10))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e TickEvent) {
				Expect(e.Cycle()).To(Equal(VCycle(10)))
			})

		tc.TickNow()
	})
})
