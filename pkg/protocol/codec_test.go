package protocol

import (
	"crypto/rand"
	"testing"

	"google.golang.org/protobuf/proto"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"
	universal "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/universalmessage"
)

// handshake wires up a controller Registry and a bare vehicle-side Session
// that share a session key, mirroring the SessionInfo exchange without
// needing a real vehicle: both sides run the same ECDH exchange against
// each other's public key, so their derived session keys match.
func handshake(t *testing.T, vin string, domain Domain) (*Registry, *Session) {
	t.Helper()
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	vehicleKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("vehicle key: %v", err)
	}
	epoch := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	controllerRegistry := NewRegistry(controllerKey)
	controllerRegistry.SetVIN(vin)
	if _, err := controllerRegistry.ApplySessionInfo(domain, &signatures.SessionInfo{
		Counter:   1,
		PublicKey: vehicleKey.PublicBytes(),
		Epoch:     epoch,
		ClockTime: 0,
	}); err != nil {
		t.Fatalf("controller ApplySessionInfo: %v", err)
	}

	vehicleSession := &Session{}
	if _, err := vehicleSession.applySessionInfo(vehicleKey, &signatures.SessionInfo{
		Counter:   1,
		PublicKey: controllerKey.PublicBytes(),
		Epoch:     epoch,
		ClockTime: 0,
	}); err != nil {
		t.Fatalf("vehicle applySessionInfo: %v", err)
	}

	return controllerRegistry, vehicleSession
}

func TestBuildSignedCommandOpenGCMRoundTrip(t *testing.T) {
	const vin = "5YJSA1E2XNF000001"
	controllerRegistry, vehicleSession := handshake(t, vin, DomainVCSEC)

	payload := []byte("wake up")
	msg, err := controllerRegistry.BuildSignedCommand(DomainVCSEC, payload)
	if err != nil {
		t.Fatalf("BuildSignedCommand: %v", err)
	}

	gcmData := msg.SignatureData.GetAES_GCM_PersonalizedData()
	if gcmData == nil {
		t.Fatalf("missing AES-GCM signature data")
	}
	params := authentication.SealParams{
		HasDomain:       true,
		Domain:          byte(DomainVCSEC),
		Personalization: []byte(vin),
		Epoch:           gcmData.GetEpoch(),
		ExpiresAt:       gcmData.GetExpiresAt(),
		Counter:         gcmData.GetCounter(),
	}
	plaintext, err := authentication.OpenGCM(vehicleSession.cryptoSession, params, gcmData.GetNonce(), msg.ProtobufMessageAsBytes, gcmData.GetTag())
	if err != nil {
		t.Fatalf("OpenGCM: %v", err)
	}
	if string(plaintext) != string(payload) {
		t.Errorf("round-tripped payload = %q, want %q", plaintext, payload)
	}
}

func TestBuildSignedCommandRequiresValidSession(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	r := NewRegistry(controllerKey)
	r.SetVIN("5YJSA1E2XNF000001")
	if _, err := r.BuildSignedCommand(DomainVCSEC, []byte("x")); err != errSessionNotValid {
		t.Errorf("err = %v, want errSessionNotValid", err)
	}
}

func TestParseIncomingSessionInfoHandoff(t *testing.T) {
	const vin = "5YJSA1E2XNF000001"
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	vehicleKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("vehicle key: %v", err)
	}
	r := NewRegistry(controllerKey)
	r.SetVIN(vin)

	info := &signatures.SessionInfo{
		Counter:   1,
		PublicKey: vehicleKey.PublicBytes(),
		Epoch:     []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		ClockTime: 42,
	}
	encoded, err := proto.Marshal(info)
	if err != nil {
		t.Fatalf("proto.Marshal: %v", err)
	}

	domain := universal.Domain(DomainVCSEC)
	reply := &universal.RoutableMessage{
		ToDestination:   &universal.Destination{Domain: &domain},
		FromDestination: &universal.Destination{Domain: &domain},
		SessionInfo:     encoded,
	}
	raw, err := reply.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if r.IsAuthenticated(DomainVCSEC) {
		t.Fatalf("registry should start unauthenticated")
	}
	if _, _, err := r.ParseIncoming(raw); err != nil {
		t.Fatalf("ParseIncoming: %v", err)
	}
	if !r.IsAuthenticated(DomainVCSEC) {
		t.Errorf("ParseIncoming should hand the SessionInfo off to the registry")
	}
}

func TestParseIncomingRejectsMissingFromDestination(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	r := NewRegistry(controllerKey)
	r.SetVIN("5YJSA1E2XNF000001")

	domain := universal.Domain(DomainVCSEC)
	reply := &universal.RoutableMessage{
		ToDestination: &universal.Destination{Domain: &domain},
	}
	raw, err := reply.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, _, err := r.ParseIncoming(raw); err != errMissingFrom {
		t.Errorf("err = %v, want errMissingFrom", err)
	}
}

func TestParseIncomingInvalidatesOnErrorStatus(t *testing.T) {
	const vin = "5YJSA1E2XNF000001"
	controllerRegistry, _ := handshake(t, vin, DomainVCSEC)
	if !controllerRegistry.IsAuthenticated(DomainVCSEC) {
		t.Fatalf("setup: expected authenticated session")
	}

	domain := universal.Domain(DomainVCSEC)
	reply := &universal.RoutableMessage{
		ToDestination:   &universal.Destination{Domain: &domain},
		FromDestination: &universal.Destination{Domain: &domain},
		SignedMessageStatus: &universal.MessageStatus{
			OperationStatus: universal.OperationStatus_E_OPERATIONSTATUS_ERROR,
		},
	}
	raw, err := reply.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, _, err := controllerRegistry.ParseIncoming(raw); err != nil {
		t.Fatalf("ParseIncoming: %v", err)
	}
	if controllerRegistry.IsAuthenticated(DomainVCSEC) {
		t.Errorf("an OPERATIONSTATUS_ERROR reply should invalidate the session")
	}
}
