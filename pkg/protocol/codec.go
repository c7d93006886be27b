package protocol

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"
	universal "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/universalmessage"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
)

// LatencyBudget bounds how far into the future a signed command's expires_at
// is set, relative to the controller's current estimate of vehicle time.
const LatencyBudget = 5 * time.Second

var (
	errSessionNotValid  = errors.New("protocol: no valid session for domain")
	errMissingFrom      = errors.New("protocol: response missing from_destination")
	errMissingTo        = errors.New("protocol: response missing to_destination")
	errBadRequestUUID   = errors.New("protocol: request_uuid must be 0 or 16 bytes")
	errUnsignedResponse = errors.New("protocol: encrypted payload missing AES-GCM signature data")
)

func newRequestUUID() ([]byte, error) {
	uuid := make([]byte, 16)
	if _, err := rand.Read(uuid); err != nil {
		return nil, fmt.Errorf("generate request uuid: %w", err)
	}
	return uuid, nil
}

// BuildSessionInfoRequest builds the envelope that asks domain for a fresh
// SessionInfo handshake, identifying the controller by its long-term public
// key.
func (r *Registry) BuildSessionInfoRequest(domain Domain) (*universal.RoutableMessage, error) {
	uuid, err := newRequestUUID()
	if err != nil {
		return nil, err
	}
	msg := universal.NewToDomain(domain)
	msg.RequestUuid = uuid
	msg.SessionInfoRequest = &universal.SessionInfoRequest{
		PublicKey: r.localKey.PublicBytes(),
	}
	return msg, nil
}

// BuildSignedCommand seals payload, the already-marshaled domain-specific
// command, into a RoutableMessage addressed to domain and signed with that
// domain's session. The domain's session must be valid; the session counter
// is advanced as a side effect.
func (r *Registry) BuildSignedCommand(domain Domain, payload []byte) (*universal.RoutableMessage, error) {
	s := r.Get(domain)
	if !s.IsValid() {
		return nil, errSessionNotValid
	}

	counter := s.NextCounter()
	expiresAt := s.VehicleNow() + uint32(LatencyBudget/time.Second)
	epoch := append([]byte(nil), s.epoch...)

	params := authentication.SealParams{
		HasDomain:       true,
		Domain:          byte(domain),
		Personalization: r.vin,
		Epoch:           epoch,
		ExpiresAt:       expiresAt,
		Counter:         counter,
	}
	nonce, ciphertext, tag, err := authentication.SealGCM(s.cryptoSession, params, payload)
	if err != nil {
		return nil, fmt.Errorf("seal command: %w", err)
	}

	uuid, err := newRequestUUID()
	if err != nil {
		return nil, err
	}

	msg := universal.NewToDomain(domain)
	msg.RequestUuid = uuid
	msg.ProtobufMessageAsBytes = ciphertext
	msg.SignatureData = &signatures.SignatureData{
		SignerIdentity: &signatures.KeyIdentity{
			IdentityType: &signatures.KeyIdentity_PublicKey{
				PublicKey: s.cryptoSession.LocalPublicBytes(),
			},
		},
		SigType: &signatures.SignatureData_AES_GCM_PersonalizedData{
			AES_GCM_PersonalizedData: &signatures.AES_GCM_Personalized_Signature_Data{
				Epoch:     epoch,
				Nonce:     nonce,
				Counter:   counter,
				ExpiresAt: expiresAt,
				Tag:       tag,
			},
		},
	}
	return msg, nil
}

// BuildWhitelistBootstrap builds the legacy, session-less VCSEC envelope used
// to add a brand-new key to the vehicle's whitelist. The vehicle accepts this
// only when the owner has just tapped a physical key card; there is no
// cryptographic signature to produce, only the PRESENT_KEY assertion.
func BuildWhitelistBootstrap(unsigned *vcsec.UnsignedMessage) ([]byte, error) {
	inner, err := unsigned.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal whitelist operation: %w", err)
	}
	envelope := &vcsec.ToVCSECMessage{
		SignedMessage: &vcsec.SignedMessage{
			SignatureType:           vcsec.SignatureType_E_SIGNATURE_TYPE_PRESENT_KEY,
			ProtobufMessageAsBytes: inner,
		},
	}
	return envelope.Marshal()
}

// ParseIncoming decodes raw, a serialized RoutableMessage, validates it per
// the protocol's envelope rules, and performs the codec-level authentication
// steps: SessionInfo handoff to the registry, and AES-GCM-personalized
// decryption of an encrypted command response. The returned RoutableMessage
// should still be passed to GetError to interpret application-level status.
// plaintext is nil when the message carries no application payload (a bare
// ack, a SessionInfo exchange, or an error status).
func (r *Registry) ParseIncoming(raw []byte) (*universal.RoutableMessage, []byte, error) {
	msg := &universal.RoutableMessage{}
	if err := msg.Unmarshal(raw); err != nil {
		return nil, nil, fmt.Errorf("parse response: %w", err)
	}
	if msg.FromDestination == nil {
		return nil, nil, errMissingFrom
	}
	if msg.ToDestination == nil {
		return nil, nil, errMissingTo
	}
	if n := len(msg.RequestUuid); n != 0 && n != 16 {
		return nil, nil, errBadRequestUUID
	}

	domain := msg.FromDestination.GetDomain()

	if encoded := msg.GetSessionInfo(); encoded != nil {
		var info signatures.SessionInfo
		if err := proto.Unmarshal(encoded, &info); err != nil {
			return msg, nil, fmt.Errorf("parse session info: %w", err)
		}
		if _, err := r.ApplySessionInfo(domain, &info); err != nil {
			return msg, nil, err
		}
		return msg, nil, nil
	}

	if msg.GetSignedMessageStatus().GetOperationStatus() == universal.OperationStatus_E_OPERATIONSTATUS_ERROR {
		r.Invalidate(domain)
	}

	if msg.ProtobufMessageAsBytes == nil {
		return msg, nil, nil
	}

	gcmData := msg.SignatureData.GetAES_GCM_PersonalizedData()
	if gcmData == nil {
		return msg, nil, errUnsignedResponse
	}

	s := r.Get(domain)
	if !s.IsValid() {
		return msg, nil, errSessionNotValid
	}

	params := authentication.SealParams{
		HasDomain:       true,
		Domain:          byte(domain),
		Personalization: r.vin,
		Epoch:           gcmData.GetEpoch(),
		ExpiresAt:       gcmData.GetExpiresAt(),
		Counter:         gcmData.GetCounter(),
	}
	plaintext, err := authentication.OpenGCM(s.cryptoSession, params, gcmData.GetNonce(), msg.ProtobufMessageAsBytes, gcmData.GetTag())
	if err != nil {
		return msg, nil, fmt.Errorf("open command response: %w", err)
	}
	return msg, plaintext, nil
}
