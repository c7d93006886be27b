package action_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/teslamotors/ble-vehicle-core/pkg/action"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/keys"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
)

var _ = Describe("RKE Actions", func() {
	Describe("WakeVehicle", func() {
		It("returns the wake action", func() {
			msg := action.WakeVehicle()
			Expect(msg).ToNot(BeNil())
			Expect(msg.RKEAction).ToNot(BeNil())
			Expect(*msg.RKEAction).To(Equal(vcsec.RKEAction_E_RKE_ACTION_WAKE_VEHICLE))
		})
	})

	Describe("PollVCSECStatus", func() {
		It("requests status", func() {
			msg := action.PollVCSECStatus()
			Expect(msg.InformationRequest).ToNot(BeNil())
			Expect(msg.InformationRequest.InformationRequestType).To(Equal(vcsec.InformationRequestType_INFORMATION_REQUEST_TYPE_GET_STATUS))
		})
	})

	Describe("StartPairing", func() {
		It("builds a whitelist-add request with the given role", func() {
			pub := []byte{0x04, 0x01, 0x02}
			msg := action.StartPairing(pub, keys.Role_ROLE_DRIVER, vcsec.KeyFormFactor_KEY_FORM_FACTOR_ANDROID_DEVICE)
			Expect(msg.WhitelistOperation).ToNot(BeNil())
			op := msg.WhitelistOperation.AddKeyToWhitelistAndAddPermissions
			Expect(op).ToNot(BeNil())
			Expect(op.Key.PublicKeyRaw).To(Equal(pub))
			Expect(op.KeyRole).To(Equal(keys.Role_ROLE_DRIVER))
			Expect(msg.WhitelistOperation.MetadataForKey.KeyFormFactor).To(Equal(vcsec.KeyFormFactor_KEY_FORM_FACTOR_ANDROID_DEVICE))
		})
	})
})
