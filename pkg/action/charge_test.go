package action_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/teslamotors/ble-vehicle-core/pkg/action"
)

var _ = Describe("Charge", func() {
	Describe("SetChargingEnabled", func() {
		It("starts charging", func() {
			a := action.SetChargingEnabled(true)
			Expect(a).ToNot(BeNil())
			Expect(a.ChargingStartStopAction).ToNot(BeNil())
			Expect(a.ChargingStartStopAction.Start).To(BeTrue())
			Expect(a.ChargingStartStopAction.Stop).To(BeFalse())
		})

		It("stops charging", func() {
			a := action.SetChargingEnabled(false)
			Expect(a.ChargingStartStopAction.Start).To(BeFalse())
			Expect(a.ChargingStartStopAction.Stop).To(BeTrue())
		})
	})

	Describe("SetChargingAmps", func() {
		It("returns the requested amps", func() {
			a := action.SetChargingAmps(32)
			Expect(a.SetChargingAmpsAction).ToNot(BeNil())
			Expect(a.SetChargingAmpsAction.ChargingAmps).To(Equal(int32(32)))
		})
	})

	Describe("SetChargingLimit", func() {
		It("returns the requested percent", func() {
			a := action.SetChargingLimit(80)
			Expect(a.ChargingSetLimitAction).ToNot(BeNil())
			Expect(a.ChargingSetLimitAction.Percent).To(Equal(int32(80)))
		})
	})

	Describe("UnlockChargePort", func() {
		It("requests the charge port open", func() {
			a := action.UnlockChargePort()
			Expect(a.ChargePortDoorOpen).ToNot(BeNil())
		})
	})
})
