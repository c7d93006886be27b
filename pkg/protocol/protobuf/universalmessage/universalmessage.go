// Package universalmessage reproduces the subset of universal_message.proto
// this client needs: the RoutableMessage envelope that wraps every payload
// exchanged with a vehicle, regardless of domain.
//
// See the package doc comment on protocol/wire for why these types are
// hand-authored rather than protoc-generated.
package universalmessage

import (
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/wire"
	"google.golang.org/protobuf/proto"
)

type Domain int32

const (
	Domain_DOMAIN_BROADCAST        Domain = 0
	Domain_DOMAIN_VEHICLE_SECURITY Domain = 2
	Domain_DOMAIN_INFOTAINMENT     Domain = 3
)

func (d Domain) String() string {
	switch d {
	case Domain_DOMAIN_VEHICLE_SECURITY:
		return "DOMAIN_VEHICLE_SECURITY"
	case Domain_DOMAIN_INFOTAINMENT:
		return "DOMAIN_INFOTAINMENT"
	default:
		return "DOMAIN_BROADCAST"
	}
}

type MessageFault_E int32

const (
	MessageFault_E_MESSAGEFAULT_ERROR_NONE                                 MessageFault_E = 0
	MessageFault_E_MESSAGEFAULT_ERROR_BUSY                                 MessageFault_E = 1
	MessageFault_E_MESSAGEFAULT_ERROR_TIMEOUT                              MessageFault_E = 2
	MessageFault_E_MESSAGEFAULT_ERROR_UNKNOWN_KEY_ID                       MessageFault_E = 3
	MessageFault_E_MESSAGEFAULT_ERROR_INACTIVE_KEY                         MessageFault_E = 4
	MessageFault_E_MESSAGEFAULT_ERROR_INVALID_SIGNATURE                    MessageFault_E = 5
	MessageFault_E_MESSAGEFAULT_ERROR_INVALID_TOKEN_OR_COUNTER             MessageFault_E = 6
	MessageFault_E_MESSAGEFAULT_ERROR_INSUFFICIENT_PRIVILEGES              MessageFault_E = 7
	MessageFault_E_MESSAGEFAULT_ERROR_INVALID_DOMAINS                      MessageFault_E = 8
	MessageFault_E_MESSAGEFAULT_ERROR_INVALID_COMMAND                      MessageFault_E = 9
	MessageFault_E_MESSAGEFAULT_ERROR_DECODING                             MessageFault_E = 10
	MessageFault_E_MESSAGEFAULT_ERROR_INTERNAL                             MessageFault_E = 11
	MessageFault_E_MESSAGEFAULT_ERROR_WRONG_PERSONALIZATION                MessageFault_E = 12
	MessageFault_E_MESSAGEFAULT_ERROR_BAD_PARAMETER                        MessageFault_E = 13
	MessageFault_E_MESSAGEFAULT_ERROR_KEYCHAIN_IS_FULL                     MessageFault_E = 14
	MessageFault_E_MESSAGEFAULT_ERROR_INCORRECT_EPOCH                      MessageFault_E = 15
	MessageFault_E_MESSAGEFAULT_ERROR_IV_INCORRECT_LENGTH                  MessageFault_E = 16
	MessageFault_E_MESSAGEFAULT_ERROR_TIME_EXPIRED                         MessageFault_E = 17
	MessageFault_E_MESSAGEFAULT_ERROR_NOT_PROVISIONED_WITH_IDENTITY        MessageFault_E = 18
	MessageFault_E_MESSAGEFAULT_ERROR_COULD_NOT_HASH_METADATA              MessageFault_E = 19
	MessageFault_E_MESSAGEFAULT_ERROR_TIME_TO_LIVE_TOO_LONG                MessageFault_E = 20
	MessageFault_E_MESSAGEFAULT_ERROR_REMOTE_ACCESS_DISABLED               MessageFault_E = 21
	MessageFault_E_MESSAGEFAULT_ERROR_REMOTE_SERVICE_ACCESS_DISABLED       MessageFault_E = 22
	MessageFault_E_MESSAGEFAULT_ERROR_COMMAND_REQUIRES_ACCOUNT_CREDENTIALS MessageFault_E = 23
)

var MessageFault_E_name = map[int32]string{
	0:  "MESSAGEFAULT_ERROR_NONE",
	1:  "MESSAGEFAULT_ERROR_BUSY",
	2:  "MESSAGEFAULT_ERROR_TIMEOUT",
	3:  "MESSAGEFAULT_ERROR_UNKNOWN_KEY_ID",
	4:  "MESSAGEFAULT_ERROR_INACTIVE_KEY",
	5:  "MESSAGEFAULT_ERROR_INVALID_SIGNATURE",
	6:  "MESSAGEFAULT_ERROR_INVALID_TOKEN_OR_COUNTER",
	7:  "MESSAGEFAULT_ERROR_INSUFFICIENT_PRIVILEGES",
	8:  "MESSAGEFAULT_ERROR_INVALID_DOMAINS",
	9:  "MESSAGEFAULT_ERROR_INVALID_COMMAND",
	10: "MESSAGEFAULT_ERROR_DECODING",
	11: "MESSAGEFAULT_ERROR_INTERNAL",
	12: "MESSAGEFAULT_ERROR_WRONG_PERSONALIZATION",
	13: "MESSAGEFAULT_ERROR_BAD_PARAMETER",
	14: "MESSAGEFAULT_ERROR_KEYCHAIN_IS_FULL",
	15: "MESSAGEFAULT_ERROR_INCORRECT_EPOCH",
	16: "MESSAGEFAULT_ERROR_IV_INCORRECT_LENGTH",
	17: "MESSAGEFAULT_ERROR_TIME_EXPIRED",
	18: "MESSAGEFAULT_ERROR_NOT_PROVISIONED_WITH_IDENTITY",
	19: "MESSAGEFAULT_ERROR_COULD_NOT_HASH_METADATA",
	20: "MESSAGEFAULT_ERROR_TIME_TO_LIVE_TOO_LONG",
	21: "MESSAGEFAULT_ERROR_REMOTE_ACCESS_DISABLED",
	22: "MESSAGEFAULT_ERROR_REMOTE_SERVICE_ACCESS_DISABLED",
	23: "MESSAGEFAULT_ERROR_COMMAND_REQUIRES_ACCOUNT_CREDENTIALS",
}

func (f MessageFault_E) String() string {
	if s, ok := MessageFault_E_name[int32(f)]; ok {
		return s
	}
	return "MESSAGEFAULT_ERROR_UNKNOWN"
}

type OperationStatus_E int32

const (
	OperationStatus_E_OPERATIONSTATUS_OK    OperationStatus_E = 0
	OperationStatus_E_OPERATIONSTATUS_WAIT  OperationStatus_E = 1
	OperationStatus_E_OPERATIONSTATUS_ERROR OperationStatus_E = 2
)

// Destination addresses either a domain on the vehicle or a routing address
// on the phone/app side. Only domain addressing is used by this client.
type Destination struct {
	Domain *Domain
}

// GetDomain returns the addressed domain, or DOMAIN_BROADCAST if d or its
// Domain field is nil.
func (d *Destination) GetDomain() Domain {
	if d == nil || d.Domain == nil {
		return Domain_DOMAIN_BROADCAST
	}
	return *d.Domain
}

func (d *Destination) marshalInto(buf []byte, fieldNum int) []byte {
	if d == nil || d.Domain == nil {
		return buf
	}
	var inner []byte
	inner = wire.AppendUint32Field(inner, 1, uint32(*d.Domain))
	return wire.AppendBytesField(buf, fieldNum, inner)
}

// SessionInfoRequest asks a domain for a fresh SessionInfo handshake,
// identifying the requester by its ephemeral ECDH public key.
type SessionInfoRequest struct {
	PublicKey []byte
}

func (m *SessionInfoRequest) Marshal() []byte {
	var buf []byte
	buf = wire.AppendBytesField(buf, 1, m.PublicKey)
	return buf
}

// MessageStatus is the status sub-message the vehicle attaches to command
// acknowledgements and SessionInfo errors.
type MessageStatus struct {
	SignedMessageFault MessageFault_E
	OperationStatus    OperationStatus_E
}

func (m *MessageStatus) GetSignedMessageFault() MessageFault_E {
	if m == nil {
		return MessageFault_E_MESSAGEFAULT_ERROR_NONE
	}
	return m.SignedMessageFault
}

func (m *MessageStatus) GetOperationStatus() OperationStatus_E {
	if m == nil {
		return OperationStatus_E_OPERATIONSTATUS_OK
	}
	return m.OperationStatus
}

func unmarshalMessageStatus(buf []byte) *MessageStatus {
	ms := &MessageStatus{}
	_ = wire.Each(buf, func(f wire.Field) error {
		switch f.Num {
		case 1:
			ms.SignedMessageFault = MessageFault_E(f.Varint)
		case 2:
			ms.OperationStatus = OperationStatus_E(f.Varint)
		}
		return nil
	})
	return ms
}

// RoutableMessage is the outer envelope carried over the BLE framer for
// every request and response, regardless of domain.
type RoutableMessage struct {
	ToDestination   *Destination
	FromDestination *Destination

	// Payload oneof.
	ProtobufMessageAsBytes []byte
	SessionInfoRequest     *SessionInfoRequest
	SessionInfo            []byte // opaque signatures.SessionInfo bytes

	SignatureData *signatures.SignatureData
	RequestUuid   []byte
	Uuid          []byte
	Flags         uint32

	SignedMessageStatus *MessageStatus
}

func domainDestination(d Domain) *Destination {
	dd := d
	return &Destination{Domain: &dd}
}

// NewToDomain builds an envelope addressed to the given vehicle domain.
func NewToDomain(domain Domain) *RoutableMessage {
	return &RoutableMessage{ToDestination: domainDestination(domain)}
}

func (m *RoutableMessage) Marshal() ([]byte, error) {
	var buf []byte
	buf = m.ToDestination.marshalInto(buf, 1)
	buf = m.FromDestination.marshalInto(buf, 2)
	switch {
	case m.ProtobufMessageAsBytes != nil:
		buf = wire.AppendBytesField(buf, 3, m.ProtobufMessageAsBytes)
	case m.SessionInfoRequest != nil:
		buf = wire.AppendBytesField(buf, 6, m.SessionInfoRequest.Marshal())
	case m.SessionInfo != nil:
		buf = wire.AppendBytesField(buf, 7, m.SessionInfo)
	}
	if m.SignatureData != nil {
		sigBytes, err := proto.Marshal(m.SignatureData)
		if err != nil {
			return nil, err
		}
		buf = wire.AppendBytesField(buf, 5, sigBytes)
	}
	buf = wire.AppendBytesField(buf, 9, m.RequestUuid)
	buf = wire.AppendBytesField(buf, 10, m.Uuid)
	buf = wire.AppendUint32Field(buf, 11, m.Flags)
	if m.SignedMessageStatus != nil {
		var inner []byte
		inner = wire.AppendUint32Field(inner, 1, uint32(m.SignedMessageStatus.SignedMessageFault))
		inner = wire.AppendUint32Field(inner, 2, uint32(m.SignedMessageStatus.OperationStatus))
		buf = wire.AppendBytesField(buf, 12, inner)
	}
	return buf, nil
}

func unmarshalDestination(buf []byte) *Destination {
	d := &Destination{}
	_ = wire.Each(buf, func(f wire.Field) error {
		if f.Num == 1 {
			dom := Domain(f.Varint)
			d.Domain = &dom
		}
		return nil
	})
	return d
}

// Unmarshal decodes buf, a serialized RoutableMessage, into m.
func (m *RoutableMessage) Unmarshal(buf []byte) error {
	return wire.Each(buf, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m.ToDestination = unmarshalDestination(f.Bytes)
		case 2:
			m.FromDestination = unmarshalDestination(f.Bytes)
		case 3:
			m.ProtobufMessageAsBytes = append([]byte(nil), f.Bytes...)
		case 5:
			sig := &signatures.SignatureData{}
			if err := proto.Unmarshal(f.Bytes, sig); err != nil {
				return err
			}
			m.SignatureData = sig
		case 6:
			req := &SessionInfoRequest{}
			_ = wire.Each(f.Bytes, func(inner wire.Field) error {
				if inner.Num == 1 {
					req.PublicKey = append([]byte(nil), inner.Bytes...)
				}
				return nil
			})
			m.SessionInfoRequest = req
		case 7:
			m.SessionInfo = append([]byte(nil), f.Bytes...)
		case 9:
			m.RequestUuid = append([]byte(nil), f.Bytes...)
		case 10:
			m.Uuid = append([]byte(nil), f.Bytes...)
		case 11:
			m.Flags = uint32(f.Varint)
		case 12:
			m.SignedMessageStatus = unmarshalMessageStatus(f.Bytes)
		}
		return nil
	})
}

func (m *RoutableMessage) GetSignedMessageStatus() *MessageStatus {
	if m == nil {
		return nil
	}
	return m.SignedMessageStatus
}

func (m *RoutableMessage) GetSessionInfo() []byte {
	if m == nil {
		return nil
	}
	return m.SessionInfo
}
