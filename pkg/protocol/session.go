package protocol

import (
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/internal/log"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"
)

// Session holds the cryptographic and anti-replay state this controller
// keeps for one domain (VCSEC or INFOTAINMENT). A zero-value Session is
// valid and simply unauthenticated.
type Session struct {
	localPrivateKey authentication.ECDHPrivateKey

	peerPublicKey []byte
	cryptoSession authentication.Session
	counter       uint32
	epoch         []byte
	timeZero      time.Time
	isValid       bool

	// ClockDrift is the last observed difference between this controller's
	// wall clock and the vehicle's reported clock_time, kept for diagnostics
	// across reconnects.
	ClockDrift time.Duration
}

// IsValid reports whether the session has an accepted SessionInfo on file.
func (s *Session) IsValid() bool {
	return s != nil && s.isValid
}

// Counter returns the last counter value recorded for this session.
func (s *Session) Counter() uint32 {
	return s.counter
}

// Epoch returns the session's current epoch identifier, or nil if none has
// been established.
func (s *Session) Epoch() []byte {
	return s.epoch
}

// NextCounter advances and returns the counter to use for the next outbound
// signed message.
func (s *Session) NextCounter() uint32 {
	s.counter++
	return s.counter
}

// VehicleNow returns the controller's best estimate of the vehicle's local
// clock, derived from the last accepted SessionInfo's time_zero.
func (s *Session) VehicleNow() uint32 {
	if s.timeZero.IsZero() {
		return 0
	}
	return uint32(time.Since(s.timeZero) / time.Second)
}

// Invalidate clears is_valid while preserving counter and peer key state, so
// the session can resume without losing anti-replay guarantees once a fresh
// SessionInfo is accepted.
func (s *Session) Invalidate() {
	s.isValid = false
}

// SessionUpdateResult reports which branch of apply_session_info fired.
type SessionUpdateResult int

const (
	SessionUpdateOK SessionUpdateResult = iota
	SessionUpdateCounterRegression
	SessionUpdateEpochReset
)

// ApplySessionInfo folds a vehicle-provided SessionInfo into the session per
// the registry's three-branch rule: an epoch change resets unconditionally; a
// counter at or above ours advances normally; a counter behind ours is
// force-accepted because the vehicle is the anti-replay source of truth.
func (s *Session) applySessionInfo(localKey authentication.ECDHPrivateKey, info *signatures.SessionInfo) (SessionUpdateResult, error) {
	result := SessionUpdateOK
	switch {
	case s.epoch == nil || !bytesEqual(info.GetEpoch(), s.epoch):
		result = SessionUpdateEpochReset
	case info.GetCounter() < s.counter:
		result = SessionUpdateCounterRegression
		log.Warning("session counter moved backwards (%d -> %d); trusting vehicle", s.counter, info.GetCounter())
	}

	if result != SessionUpdateCounterRegression || !bytesEqual(info.GetPublicKey(), s.peerPublicKey) {
		cryptoSession, err := localKey.Exchange(info.GetPublicKey())
		if err != nil {
			return result, fmt.Errorf("session info: %w", err)
		}
		s.cryptoSession = cryptoSession
		s.peerPublicKey = append([]byte(nil), info.GetPublicKey()...)
	}

	s.localPrivateKey = localKey
	s.epoch = append([]byte(nil), info.GetEpoch()...)
	s.counter = info.GetCounter()
	s.timeZero = time.Now().Add(-time.Second * time.Duration(info.GetClockTime()))
	s.ClockDrift = time.Since(s.timeZero) - time.Duration(info.GetClockTime())*time.Second
	s.isValid = true
	return result, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// KeyID derives the 4-byte key identifier the protocol uses to reference a
// public key in metadata: the first four bytes of SHA-1(public key).
func KeyID(publicKeySEC1 []byte) [4]byte {
	digest := sha1.Sum(publicKeySEC1)
	var id [4]byte
	copy(id[:], digest[:4])
	return id
}

// Registry owns one Session per domain for the lifetime of a vehicle
// connection.
type Registry struct {
	sessions map[Domain]*Session
	localKey authentication.ECDHPrivateKey
	vin      []byte
}

// NewRegistry creates an empty session registry bound to the controller's
// long-term private key.
func NewRegistry(localKey authentication.ECDHPrivateKey) *Registry {
	return &Registry{
		sessions: make(map[Domain]*Session),
		localKey: localKey,
	}
}

// SetVIN records the vehicle identification number used as the
// "personalization" field in signed-message metadata. It must be set before
// any command is signed.
func (r *Registry) SetVIN(vin string) {
	r.vin = []byte(vin)
}

// Get returns the Session for domain, creating a zero-value one on first
// access. The returned pointer is infallible and stable for the registry's
// lifetime.
func (r *Registry) Get(domain Domain) *Session {
	s, ok := r.sessions[domain]
	if !ok {
		s = &Session{}
		r.sessions[domain] = s
	}
	return s
}

// IsAuthenticated reports whether domain has a currently valid session.
func (r *Registry) IsAuthenticated(domain Domain) bool {
	return r.Get(domain).IsValid()
}

// ApplySessionInfo folds a vehicle SessionInfo response into the named
// domain's session.
func (r *Registry) ApplySessionInfo(domain Domain, info *signatures.SessionInfo) (SessionUpdateResult, error) {
	return r.Get(domain).applySessionInfo(r.localKey, info)
}

// Invalidate clears is_valid for domain without discarding counter/epoch
// state.
func (r *Registry) Invalidate(domain Domain) {
	r.Get(domain).Invalidate()
}
