package action

import (
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/keys"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
)

// WakeVehicle builds the VCSEC command that rouses a sleeping vehicle. It is
// the only RKE-class action the core issues; locks, drive-enable and the
// rest of the keyfob surface are out of scope.
func WakeVehicle() *vcsec.UnsignedMessage {
	action := vcsec.RKEAction_E_RKE_ACTION_WAKE_VEHICLE
	return &vcsec.UnsignedMessage{RKEAction: &action}
}

// PollVCSECStatus builds the VCSEC command that requests the vehicle's
// current lock/sleep status without side effects.
func PollVCSECStatus() *vcsec.UnsignedMessage {
	return &vcsec.UnsignedMessage{
		InformationRequest: &vcsec.InformationRequest{
			InformationRequestType: vcsec.InformationRequestType_INFORMATION_REQUEST_TYPE_GET_STATUS,
		},
	}
}

// StartPairing builds the whitelist-add (PRESENT_KEY) command that enrolls
// localPublicKey on the vehicle under the given role.
func StartPairing(localPublicKey []byte, role keys.Role, formFactor vcsec.KeyFormFactor) *vcsec.UnsignedMessage {
	return &vcsec.UnsignedMessage{
		WhitelistOperation: &vcsec.WhitelistOperation{
			AddKeyToWhitelistAndAddPermissions: &vcsec.PermissionChange{
				Key:     &vcsec.PublicKey{PublicKeyRaw: localPublicKey},
				KeyRole: role,
			},
			MetadataForKey: &vcsec.KeyMetadata{KeyFormFactor: formFactor},
		},
	}
}
