// Package vcsec reproduces the subset of vcsec.proto (the Vehicle Security
// Controller schema) that this client exercises: whitelist (key enrollment)
// operations, RKE actions, status polling, and the vehicle's status/command
// acknowledgement payloads.
//
// See the package doc comment on protocol/wire for why these types are
// hand-authored rather than protoc-generated.
package vcsec

import (
	verror "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/errors"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/keys"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/wire"
)

type RKEAction_E int32

const (
	RKEAction_E_RKE_ACTION_UNLOCK              RKEAction_E = 0
	RKEAction_E_RKE_ACTION_LOCK                RKEAction_E = 1
	RKEAction_E_RKE_ACTION_REMOTE_DRIVE        RKEAction_E = 2
	RKEAction_E_RKE_ACTION_WAKE_VEHICLE        RKEAction_E = 3
	RKEAction_E_RKE_ACTION_AUTO_SECURE_VEHICLE RKEAction_E = 4
	RKEAction_E_RKE_ACTION_OPEN_CHARGE_PORT    RKEAction_E = 5
	RKEAction_E_RKE_ACTION_CLOSE_CHARGE_PORT   RKEAction_E = 6
)

type OperationStatus_E int32

const (
	OperationStatus_E_OPERATIONSTATUS_OK    OperationStatus_E = 0
	OperationStatus_E_OPERATIONSTATUS_WAIT  OperationStatus_E = 1
	OperationStatus_E_OPERATIONSTATUS_ERROR OperationStatus_E = 2
)

type WhitelistOperationInformation_E int32

const (
	WhitelistOperationInformation_E_WHITELISTOPERATION_INFORMATION_NONE                WhitelistOperationInformation_E = 0
	WhitelistOperationInformation_E_WHITELISTOPERATION_INFORMATION_TOO_MANY_KEYS       WhitelistOperationInformation_E = 1
	WhitelistOperationInformation_E_WHITELISTOPERATION_INFORMATION_INVALID_PUBKEY      WhitelistOperationInformation_E = 2
	WhitelistOperationInformation_E_WHITELISTOPERATION_INFORMATION_ALREADY_WHITELISTED WhitelistOperationInformation_E = 3
)

type KeyFormFactor int32

const (
	KeyFormFactor_KEY_FORM_FACTOR_UNKNOWN          KeyFormFactor = 0
	KeyFormFactor_KEY_FORM_FACTOR_NFC_CARD         KeyFormFactor = 1
	KeyFormFactor_KEY_FORM_FACTOR_ANDROID_DEVICE   KeyFormFactor = 2
	KeyFormFactor_KEY_FORM_FACTOR_IOS_DEVICE       KeyFormFactor = 3
	KeyFormFactor_KEY_FORM_FACTOR_CLOUD_KEY        KeyFormFactor = 4
)

type InformationRequestType int32

const (
	InformationRequestType_INFORMATION_REQUEST_TYPE_GET_STATUS         InformationRequestType = 0
	InformationRequestType_INFORMATION_REQUEST_TYPE_GET_WHITELIST_INFO InformationRequestType = 1
)

type VehicleLockState_E int32

const (
	VehicleLockState_E_VEHICLELOCKSTATE_UNLOCKED VehicleLockState_E = 0
	VehicleLockState_E_VEHICLELOCKSTATE_LOCKED   VehicleLockState_E = 1
)

type VehicleSleepStatus_E int32

const (
	VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_UNKNOWN VehicleSleepStatus_E = 0
	VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_AWAKE   VehicleSleepStatus_E = 1
	VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_ASLEEP  VehicleSleepStatus_E = 2
)

// PublicKey carries a raw SEC1 uncompressed EC point.
type PublicKey struct {
	PublicKeyRaw []byte
}

func (m *PublicKey) Marshal() []byte {
	var buf []byte
	buf = wire.AppendBytesField(buf, 1, m.PublicKeyRaw)
	return buf
}

// KeyMetadata tags an enrolled key with the device form factor that presented it.
type KeyMetadata struct {
	KeyFormFactor KeyFormFactor
}

func (m *KeyMetadata) Marshal() []byte {
	var buf []byte
	buf = wire.AppendUint32Field(buf, 1, uint32(m.KeyFormFactor))
	return buf
}

// PermissionChange describes a whitelist add together with the role to grant.
type PermissionChange struct {
	Key     *PublicKey
	KeyRole keys.Role
}

func (m *PermissionChange) Marshal() []byte {
	var buf []byte
	if m.Key != nil {
		buf = wire.AppendBytesField(buf, 1, m.Key.Marshal())
	}
	buf = wire.AppendUint32Field(buf, 2, uint32(m.KeyRole))
	return buf
}

// WhitelistOperation is the oneof of whitelist-mutating sub-messages.
type WhitelistOperation struct {
	AddKeyToWhitelistAndAddPermissions *PermissionChange
	MetadataForKey                     *KeyMetadata
}

func (m *WhitelistOperation) Marshal() []byte {
	var buf []byte
	if m.AddKeyToWhitelistAndAddPermissions != nil {
		buf = wire.AppendBytesField(buf, 1, m.AddKeyToWhitelistAndAddPermissions.Marshal())
	}
	if m.MetadataForKey != nil {
		buf = wire.AppendBytesField(buf, 2, m.MetadataForKey.Marshal())
	}
	return buf
}

// InformationRequest asks VCSEC for its current status or whitelist info.
type InformationRequest struct {
	InformationRequestType InformationRequestType
	KeySlot                *uint32
}

func (m *InformationRequest) Marshal() []byte {
	var buf []byte
	buf = wire.AppendUint32Field(buf, 1, uint32(m.InformationRequestType))
	if m.KeySlot != nil {
		buf = wire.AppendUint32Field(buf, 2, *m.KeySlot)
	}
	return buf
}

// UnsignedMessage is the top-level oneof VCSEC accepts for unauthenticated
// (PRESENT_KEY or plain) requests: whitelist ops, RKE actions and status polls.
type UnsignedMessage struct {
	WhitelistOperation  *WhitelistOperation
	RKEAction           *RKEAction_E
	InformationRequest  *InformationRequest
}

func (m *UnsignedMessage) Marshal() ([]byte, error) {
	var buf []byte
	if m.WhitelistOperation != nil {
		buf = wire.AppendBytesField(buf, 1, m.WhitelistOperation.Marshal())
	}
	if m.RKEAction != nil {
		buf = wire.AppendUint32Field(buf, 2, uint32(*m.RKEAction))
	}
	if m.InformationRequest != nil {
		buf = wire.AppendBytesField(buf, 3, m.InformationRequest.Marshal())
	}
	return buf, nil
}

// WhitelistOperationStatus reports the outcome of an AddKeyToWhitelist request.
type WhitelistOperationStatus struct {
	WhitelistOperationInformation WhitelistOperationInformation_E
}

func (s *WhitelistOperationStatus) GetWhitelistOperationInformation() WhitelistOperationInformation_E {
	if s == nil {
		return WhitelistOperationInformation_E_WHITELISTOPERATION_INFORMATION_NONE
	}
	return s.WhitelistOperationInformation
}

// CommandStatus reports whether VCSEC accepted and executed a command.
type CommandStatus struct {
	OperationStatus          OperationStatus_E
	WhitelistOperationStatus *WhitelistOperationStatus
	SignedMessageStatus      *SignedMessageStatus
}

func (c *CommandStatus) GetOperationStatus() OperationStatus_E {
	if c == nil {
		return OperationStatus_E_OPERATIONSTATUS_OK
	}
	return c.OperationStatus
}

func (c *CommandStatus) GetWhitelistOperationStatus() *WhitelistOperationStatus {
	if c == nil {
		return nil
	}
	return c.WhitelistOperationStatus
}

func (c *CommandStatus) GetSignedMessageStatus() *SignedMessageStatus {
	if c == nil {
		return nil
	}
	return c.SignedMessageStatus
}

// SignedMessageStatus mirrors the universal envelope's fault field for
// VCSEC's own (legacy) signed-message acknowledgement path.
type SignedMessageStatus struct {
	OperationStatus OperationStatus_E
}

// VehicleStatus reports coarse vehicle state: lock state and sleep status,
// the two fields the command engine's wake-wait logic inspects.
type VehicleStatus struct {
	VehicleLockState   VehicleLockState_E
	VehicleSleepStatus VehicleSleepStatus_E
	ClosureStatuses    *ClosureStatuses
}

// ClosureStatuses reports whether any closure (door/trunk/frunk) data is
// present; receiving detailed closure data implies the vehicle is awake even
// before VehicleSleepStatus flips, matching the real protocol's behavior.
type ClosureStatuses struct {
	Populated bool
}

func (c *ClosureStatuses) GetPopulated() bool {
	if c == nil {
		return false
	}
	return c.Populated
}

func (v *VehicleStatus) GetVehicleSleepStatus() VehicleSleepStatus_E {
	if v == nil {
		return VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_UNKNOWN
	}
	return v.VehicleSleepStatus
}

func (v *VehicleStatus) GetClosureStatuses() *ClosureStatuses {
	if v == nil {
		return nil
	}
	return v.ClosureStatuses
}

// FromVCSECMessage is the top-level message VCSEC sends back. Only one of
// the fields below is populated.
type FromVCSECMessage struct {
	CommandStatus *CommandStatus
	VehicleStatus *VehicleStatus
	NominalError  *verror.NominalError
}

func (m *FromVCSECMessage) GetCommandStatus() *CommandStatus {
	if m == nil {
		return nil
	}
	return m.CommandStatus
}

func (m *FromVCSECMessage) GetVehicleStatus() *VehicleStatus {
	if m == nil {
		return nil
	}
	return m.VehicleStatus
}

func (m *FromVCSECMessage) GetNominalError() *verror.NominalError {
	if m == nil {
		return nil
	}
	return m.NominalError
}

// Unmarshal decodes buf into m. Unknown fields are ignored, per the codec's
// parsing discipline.
func (m *FromVCSECMessage) Unmarshal(buf []byte) error {
	return wire.Each(buf, func(f wire.Field) error {
		switch f.Num {
		case 1: // command_status
			cs := &CommandStatus{}
			if err := unmarshalCommandStatus(f.Bytes, cs); err != nil {
				return err
			}
			m.CommandStatus = cs
		case 2: // vehicle_status
			vs := &VehicleStatus{}
			if err := unmarshalVehicleStatus(f.Bytes, vs); err != nil {
				return err
			}
			m.VehicleStatus = vs
		case 3: // nominal_error
			m.NominalError = verror.Unmarshal(f.Bytes)
		}
		return nil
	})
}

func unmarshalCommandStatus(buf []byte, cs *CommandStatus) error {
	return wire.Each(buf, func(f wire.Field) error {
		switch f.Num {
		case 1:
			cs.OperationStatus = OperationStatus_E(f.Varint)
		case 2:
			wos := &WhitelistOperationStatus{}
			_ = wire.Each(f.Bytes, func(inner wire.Field) error {
				if inner.Num == 1 {
					wos.WhitelistOperationInformation = WhitelistOperationInformation_E(inner.Varint)
				}
				return nil
			})
			cs.WhitelistOperationStatus = wos
		case 3:
			cs.SignedMessageStatus = &SignedMessageStatus{}
			_ = wire.Each(f.Bytes, func(inner wire.Field) error {
				if inner.Num == 1 {
					cs.SignedMessageStatus.OperationStatus = OperationStatus_E(inner.Varint)
				}
				return nil
			})
		}
		return nil
	})
}

func unmarshalVehicleStatus(buf []byte, vs *VehicleStatus) error {
	return wire.Each(buf, func(f wire.Field) error {
		switch f.Num {
		case 1:
			vs.VehicleLockState = VehicleLockState_E(f.Varint)
		case 2:
			vs.VehicleSleepStatus = VehicleSleepStatus_E(f.Varint)
		case 3:
			vs.ClosureStatuses = &ClosureStatuses{Populated: len(f.Bytes) > 0}
		}
		return nil
	})
}

// SignatureType_E identifies how a ToVCSECMessage.SignedMessage is
// authenticated. Only PRESENT_KEY is used by this client: the legacy
// whitelist envelope that bootstraps a brand-new key onto the vehicle,
// authenticated by the owner tapping a physical key card rather than by a
// session signature.
type SignatureType_E int32

const (
	SignatureType_E_SIGNATURE_TYPE_PRESENT_KEY SignatureType_E = 1
)

// SignedMessage wraps an UnsignedMessage's encoded bytes for the PRESENT_KEY
// whitelist-add bootstrap. There is no session counter, key id, or AES-GCM
// tag: the vehicle authenticates this exchange out of band, by physical key
// presentation.
type SignedMessage struct {
	SignatureType          SignatureType_E
	ProtobufMessageAsBytes []byte
}

func (m *SignedMessage) Marshal() []byte {
	var buf []byte
	buf = wire.AppendUint32Field(buf, 1, uint32(m.SignatureType))
	buf = wire.AppendBytesField(buf, 2, m.ProtobufMessageAsBytes)
	return buf
}

// ToVCSECMessage is the legacy, session-less envelope used only for the
// initial whitelist-add handshake, carried directly over the BLE framer
// without a RoutableMessage wrapper.
type ToVCSECMessage struct {
	SignedMessage   *SignedMessage
	UnsignedMessage *UnsignedMessage
}

func (m *ToVCSECMessage) Marshal() ([]byte, error) {
	var buf []byte
	if m.SignedMessage != nil {
		buf = wire.AppendBytesField(buf, 1, m.SignedMessage.Marshal())
	}
	if m.UnsignedMessage != nil {
		inner, err := m.UnsignedMessage.Marshal()
		if err != nil {
			return nil, err
		}
		buf = wire.AppendBytesField(buf, 2, inner)
	}
	return buf, nil
}
