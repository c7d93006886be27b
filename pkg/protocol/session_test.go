package protocol

import (
	"crypto/rand"
	"testing"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"
)

func mustLocalKey(t *testing.T) authentication.ECDHPrivateKey {
	t.Helper()
	key, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("NewECDHPrivateKey: %v", err)
	}
	return key
}

func mustPeerPublicBytes(t *testing.T) []byte {
	t.Helper()
	return mustLocalKey(t).PublicBytes()
}

func TestApplySessionInfoFirstHandshakeIsEpochReset(t *testing.T) {
	s := &Session{}
	localKey := mustLocalKey(t)
	info := &signatures.SessionInfo{
		Counter:   1,
		PublicKey: mustPeerPublicBytes(t),
		Epoch:     []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		ClockTime: 100,
	}
	result, err := s.applySessionInfo(localKey, info)
	if err != nil {
		t.Fatalf("applySessionInfo: %v", err)
	}
	if result != SessionUpdateEpochReset {
		t.Errorf("result = %v, want SessionUpdateEpochReset", result)
	}
	if !s.IsValid() {
		t.Errorf("session should be valid after first handshake")
	}
	if s.Counter() != 1 {
		t.Errorf("counter = %d, want 1", s.Counter())
	}
}

func TestApplySessionInfoCounterAdvances(t *testing.T) {
	s := &Session{}
	localKey := mustLocalKey(t)
	epoch := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	peerKey := mustPeerPublicBytes(t)

	if _, err := s.applySessionInfo(localKey, &signatures.SessionInfo{
		Counter: 5, PublicKey: peerKey, Epoch: epoch, ClockTime: 100,
	}); err != nil {
		t.Fatalf("initial applySessionInfo: %v", err)
	}

	result, err := s.applySessionInfo(localKey, &signatures.SessionInfo{
		Counter: 6, PublicKey: peerKey, Epoch: epoch, ClockTime: 101,
	})
	if err != nil {
		t.Fatalf("applySessionInfo: %v", err)
	}
	if result != SessionUpdateOK {
		t.Errorf("result = %v, want SessionUpdateOK", result)
	}
	if s.Counter() != 6 {
		t.Errorf("counter = %d, want 6", s.Counter())
	}
}

func TestApplySessionInfoCounterRegressionIsForceAccepted(t *testing.T) {
	s := &Session{}
	localKey := mustLocalKey(t)
	epoch := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	peerKey := mustPeerPublicBytes(t)

	if _, err := s.applySessionInfo(localKey, &signatures.SessionInfo{
		Counter: 10, PublicKey: peerKey, Epoch: epoch, ClockTime: 100,
	}); err != nil {
		t.Fatalf("initial applySessionInfo: %v", err)
	}

	result, err := s.applySessionInfo(localKey, &signatures.SessionInfo{
		Counter: 3, PublicKey: peerKey, Epoch: epoch, ClockTime: 105,
	})
	if err != nil {
		t.Fatalf("applySessionInfo: %v", err)
	}
	if result != SessionUpdateCounterRegression {
		t.Errorf("result = %v, want SessionUpdateCounterRegression", result)
	}
	// The vehicle's counter is the source of truth even when it moves
	// backwards -- the session must accept it rather than reject the update.
	if s.Counter() != 3 {
		t.Errorf("counter = %d, want 3 (vehicle value force-accepted)", s.Counter())
	}
	if !s.IsValid() {
		t.Errorf("session should remain valid after a counter regression")
	}
}

func TestApplySessionInfoEpochChangeResets(t *testing.T) {
	s := &Session{}
	localKey := mustLocalKey(t)
	peerKey := mustPeerPublicBytes(t)

	if _, err := s.applySessionInfo(localKey, &signatures.SessionInfo{
		Counter: 50, PublicKey: peerKey, Epoch: []byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, ClockTime: 100,
	}); err != nil {
		t.Fatalf("initial applySessionInfo: %v", err)
	}

	result, err := s.applySessionInfo(localKey, &signatures.SessionInfo{
		Counter: 1, PublicKey: peerKey, Epoch: []byte{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, ClockTime: 101,
	})
	if err != nil {
		t.Fatalf("applySessionInfo: %v", err)
	}
	if result != SessionUpdateEpochReset {
		t.Errorf("result = %v, want SessionUpdateEpochReset", result)
	}
	if s.Counter() != 1 {
		t.Errorf("counter = %d, want 1 (reset on new epoch even though lower than previous)", s.Counter())
	}
}

func TestRegistryIsAuthenticated(t *testing.T) {
	localKey := mustLocalKey(t)
	r := NewRegistry(localKey)
	r.SetVIN("5YJSA1E2XNF000001")

	if r.IsAuthenticated(DomainVCSEC) {
		t.Errorf("fresh registry should not be authenticated")
	}

	info := &signatures.SessionInfo{
		Counter:   1,
		PublicKey: mustPeerPublicBytes(t),
		Epoch:     []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		ClockTime: 10,
	}
	if _, err := r.ApplySessionInfo(DomainVCSEC, info); err != nil {
		t.Fatalf("ApplySessionInfo: %v", err)
	}
	if !r.IsAuthenticated(DomainVCSEC) {
		t.Errorf("registry should be authenticated after ApplySessionInfo")
	}
	if r.IsAuthenticated(DomainInfotainment) {
		t.Errorf("authenticating VCSEC must not authenticate INFOTAINMENT")
	}

	r.Invalidate(DomainVCSEC)
	if r.IsAuthenticated(DomainVCSEC) {
		t.Errorf("session should not be authenticated after Invalidate")
	}
	if r.Get(DomainVCSEC).Counter() != 1 {
		t.Errorf("Invalidate must preserve counter state")
	}
}

func TestKeyIDStability(t *testing.T) {
	pub := mustPeerPublicBytes(t)
	a := KeyID(pub)
	b := KeyID(pub)
	if a != b {
		t.Errorf("KeyID is not deterministic: %x != %x", a, b)
	}
}
