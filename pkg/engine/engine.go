// Package engine implements the command state machine: a single-threaded,
// cooperatively scheduled core that turns high-level requests (wake the
// vehicle, set the charge limit, poll status) into signed, chunked BLE
// payloads, and turns the vehicle's chunked responses back into results.
//
// The engine never blocks and never starts a goroutine. A host drives it by
// calling Tick() on its own schedule, feeding inbound notify payloads to
// OnBytesReceived, and draining outbound chunks with TakeNextChunk (or the
// Drain convenience method, for hosts that have a transport.Writer handy).
// This mirrors the teacher's internal/dispatcher in spirit -- session
// bring-up, retry-on-timeout, FIFO command ordering -- but replaces its
// goroutine-and-channel plumbing with an explicit state machine so the core
// can run on a host that has no scheduler to spare, such as a BLE-only
// microcontroller relay.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/internal/log"
	"github.com/teslamotors/ble-vehicle-core/pkg/action"
	"github.com/teslamotors/ble-vehicle-core/pkg/ble/framer"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/carserver"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/keys"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
	"github.com/teslamotors/ble-vehicle-core/pkg/store"
	"github.com/teslamotors/ble-vehicle-core/pkg/transport"
)

// Tunables governing the command lifecycle. These mirror the teacher's
// dispatcher timeouts, widened slightly for BLE's higher per-hop latency.
const (
	// MaxLatency is how long the engine waits for a reply to one outbound
	// message (a SessionInfoRequest, a wake, a signed command) before it
	// resends.
	MaxLatency = 4 * time.Second
	// CommandTimeout bounds a command's total lifetime from submission,
	// across every phase and retry, before it fails outright.
	CommandTimeout = 30 * time.Second
	// MaxRetries bounds how many times the engine resends within a single
	// phase (auth, wake, or the command itself) before giving up on it.
	MaxRetries = 5
	// MaxQueueSize bounds how many commands may be outstanding at once.
	MaxQueueSize = 20
)

// ErrQueueFull is returned by a submission method when MaxQueueSize commands
// are already outstanding.
var ErrQueueFull = errors.New("engine: command queue full")

// Command is one outstanding request working its way through the state
// machine. Exactly one of payload (a signed, domain-routed command) or
// rawEnvelope (the session-less PRESENT_KEY bootstrap) is set.
type Command struct {
	label           string
	domain          protocol.Domain
	bootstrap       bool
	expectsResponse bool
	isPoll          bool

	payload     func() ([]byte, error)
	rawEnvelope func() ([]byte, error)

	state      State
	enqueuedAt time.Time
	subStart   time.Time
	retries    int

	handle *Handle
}

// Engine is the command core. It owns one session per domain, the BLE
// reassembly buffer, the outbound chunk queue, and the FIFO of commands
// awaiting dispatch. The zero value is not usable; construct with New.
type Engine struct {
	vin      string
	localKey authentication.ECDHPrivateKey
	registry *protocol.Registry
	store    store.Store

	reassembler framer.Reassembler
	pending     [][]byte
	outbox      [][]byte
	mtu         int

	queue []*Command

	asleep bool

	poll *PollScheduler

	onEvent func(Event)
}

// New constructs an Engine for the vehicle identified by vin, authenticating
// with localKey. st may be nil, in which case session bytes are simply not
// persisted (fine for a short-lived process; a long-running host should pass
// a store.Store so reconnects can skip a redundant handshake diagnostic).
func New(vin string, localKey authentication.ECDHPrivateKey, st store.Store) *Engine {
	registry := protocol.NewRegistry(localKey)
	registry.SetVIN(vin)
	return &Engine{
		vin:      vin,
		localKey: localKey,
		registry: registry,
		store:    st,
		mtu:      framer.DefaultChunkSize,
		asleep:   true, // unknown at startup; treated as asleep so the first infotainment command wakes first
	}
}

// SetMTU records the negotiated GATT MTU so outbound messages are chunked to
// fit. Hosts call this once after ATT MTU exchange; until then the engine
// chunks to framer.DefaultChunkSize.
func (e *Engine) SetMTU(n int) {
	if n > 2 {
		e.mtu = n
	}
}

// SetEventHandler installs fn to receive status and completion events as
// they occur. Passing nil disables event delivery; command results are
// always available through the Handle returned at submission regardless.
func (e *Engine) SetEventHandler(fn func(Event)) {
	e.onEvent = fn
}

// EnableStatusPolling turns on the supplemental VCSEC status poll: Tick will
// inject a poll_vcsec_status command whenever sched says it's due and no
// user command is outstanding. Pass nil to use NewPollScheduler's defaults.
func (e *Engine) EnableStatusPolling(sched *PollScheduler) {
	if sched == nil {
		sched = NewPollScheduler()
	}
	e.poll = sched
}

// VIN returns the vehicle identification number this engine was constructed
// with.
func (e *Engine) VIN() string {
	return e.vin
}

// QueueLen reports how many commands, including the one currently in
// flight, are outstanding.
func (e *Engine) QueueLen() int {
	return len(e.queue)
}

func (e *Engine) submit(cmd *Command) (*Handle, error) {
	if len(e.queue) >= MaxQueueSize {
		return nil, ErrQueueFull
	}
	now := time.Now()
	cmd.handle = newHandle()
	cmd.enqueuedAt = now
	cmd.state = StateIdle
	e.queue = append(e.queue, cmd)
	if e.poll != nil && !cmd.isPoll {
		e.poll.NoteActivity(now)
	}
	return cmd.handle, nil
}

// WakeVehicle rouses a sleeping vehicle over VCSEC.
func (e *Engine) WakeVehicle() (*Handle, error) {
	msg := action.WakeVehicle()
	return e.submit(&Command{
		label:           "wake_vehicle",
		domain:          protocol.DomainVCSEC,
		expectsResponse: true,
		payload:         msg.Marshal,
	})
}

// PollVCSECStatus requests the vehicle's lock and sleep status. It works
// even while infotainment is asleep.
func (e *Engine) PollVCSECStatus() (*Handle, error) {
	msg := action.PollVCSECStatus()
	return e.submit(&Command{
		label:           "poll_vcsec_status",
		domain:          protocol.DomainVCSEC,
		expectsResponse: true,
		payload:         msg.Marshal,
	})
}

// PollInfotainment requests the given vehicle data fields (e.g.
// carserver.VehicleDataField_CHARGE_STATE). This wakes the vehicle first if
// it's asleep.
func (e *Engine) PollInfotainment(fields ...carserver.VehicleDataField) (*Handle, error) {
	req := action.PollInfotainment(fields...)
	act := &carserver.Action{VehicleAction: &carserver.VehicleAction{GetVehicleData: req}}
	return e.submit(&Command{
		label:           "poll_infotainment",
		domain:          protocol.DomainInfotainment,
		expectsResponse: true,
		payload:         act.Marshal,
	})
}

// SetChargingEnabled starts or stops charging.
func (e *Engine) SetChargingEnabled(enabled bool) (*Handle, error) {
	act := &carserver.Action{VehicleAction: action.SetChargingEnabled(enabled)}
	return e.submit(&Command{
		label:           "set_charging_enabled",
		domain:          protocol.DomainInfotainment,
		expectsResponse: true,
		payload:         act.Marshal,
	})
}

// SetChargingAmps sets the vehicle's maximum charge current, in amps.
func (e *Engine) SetChargingAmps(amps int32) (*Handle, error) {
	act := &carserver.Action{VehicleAction: action.SetChargingAmps(amps)}
	return e.submit(&Command{
		label:           "set_charging_amps",
		domain:          protocol.DomainInfotainment,
		expectsResponse: true,
		payload:         act.Marshal,
	})
}

// SetChargingLimit sets the vehicle's charge limit, as a percentage of full
// capacity.
func (e *Engine) SetChargingLimit(percent int32) (*Handle, error) {
	act := &carserver.Action{VehicleAction: action.SetChargingLimit(percent)}
	return e.submit(&Command{
		label:           "set_charging_limit",
		domain:          protocol.DomainInfotainment,
		expectsResponse: true,
		payload:         act.Marshal,
	})
}

// UnlockChargePort opens the charge port door.
func (e *Engine) UnlockChargePort() (*Handle, error) {
	act := &carserver.Action{VehicleAction: action.UnlockChargePort()}
	return e.submit(&Command{
		label:           "unlock_charge_port",
		domain:          protocol.DomainInfotainment,
		expectsResponse: true,
		payload:         act.Marshal,
	})
}

// StartPairing enrolls this engine's own public key on the vehicle's
// whitelist under role, via the legacy PRESENT_KEY bootstrap. The vehicle
// only accepts this immediately after the owner taps a physical key card; it
// requires no session and carries no response the engine waits for -- same
// as the teacher's SendAddKeyRequest, the Handle settles as soon as the
// request is transmitted.
func (e *Engine) StartPairing(role keys.Role, formFactor vcsec.KeyFormFactor) (*Handle, error) {
	unsigned := action.StartPairing(e.localKey.PublicBytes(), role, formFactor)
	return e.submit(&Command{
		label:     "start_pairing",
		domain:    protocol.DomainVCSEC,
		bootstrap: true,
		rawEnvelope: func() ([]byte, error) {
			return protocol.BuildWhitelistBootstrap(unsigned)
		},
	})
}

// Tick advances the state machine by one step, using the current time. A
// host should call this on a regular cadence (e.g. every 100ms) and also
// after OnBytesReceived, since a response can unblock a command without any
// further time passing.
func (e *Engine) Tick() {
	e.tick(time.Now())
}

func (e *Engine) tick(now time.Time) {
	e.dispatchPending(now)
	for len(e.queue) > 0 {
		if !e.stepCommand(e.queue[0], now) {
			break
		}
	}
	e.maybeEnqueuePoll(now)
}

func (e *Engine) maybeEnqueuePoll(now time.Time) {
	if e.poll == nil || len(e.queue) > 0 {
		return
	}
	if !e.poll.Due(now, e.asleep) {
		return
	}
	msg := action.PollVCSECStatus()
	e.queue = append(e.queue, &Command{
		label:           "poll_vcsec_status",
		domain:          protocol.DomainVCSEC,
		expectsResponse: true,
		isPoll:          true,
		payload:         msg.Marshal,
		handle:          newHandle(),
		enqueuedAt:      now,
		state:           StateIdle,
	})
}

// OnBytesReceived hands the engine a chunk of bytes the transport just read
// off the notify characteristic. It only reassembles and queues complete
// messages; Tick (or the next OnBytesReceived call, since a message that
// completes a frame may immediately resolve a waiting command) performs the
// actual protocol work.
func (e *Engine) OnBytesReceived(chunk []byte) {
	e.reassembler.Push(chunk)
	for {
		msg, ok, err := e.reassembler.Next()
		if err != nil {
			log.Warning("engine: %v", err)
			continue
		}
		if !ok {
			return
		}
		e.pending = append(e.pending, msg)
	}
}

// TakeNextChunk returns the next outbound chunk ready for the transport, or
// ok=false if the outbox is empty. Each chunk is already sized to fit the
// negotiated MTU (see SetMTU).
func (e *Engine) TakeNextChunk() ([]byte, bool) {
	if len(e.outbox) == 0 {
		return nil, false
	}
	chunk := e.outbox[0]
	e.outbox = e.outbox[1:]
	return chunk, true
}

// Drain writes every currently queued outbound chunk to w, stopping at the
// first write error (which it returns without discarding the remaining
// chunks -- they stay queued for the next Drain or TakeNextChunk call). It's
// a convenience for hosts that have a transport.Writer and don't need finer
// control over the write loop.
func (e *Engine) Drain(w transport.Writer) error {
	e.SetMTU(w.MTU())
	for len(e.outbox) > 0 {
		chunk := e.outbox[0]
		if err := w.WriteChunk(chunk); err != nil {
			return fmt.Errorf("engine: write chunk: %w", err)
		}
		e.outbox = e.outbox[1:]
	}
	return nil
}

// OnConnected resets framing state for a fresh BLE connection. Call this
// once a GATT connection (and notify subscription) is established.
func (e *Engine) OnConnected() {
	e.reassembler.Reset()
}

// OnDisconnected clears the command queue and the reassembly buffer and
// fails every outstanding command. Sessions are deliberately left untouched:
// the vehicle's own session state hasn't changed just because the BLE link
// dropped, so a reconnect can resume signing with the existing counter and
// epoch instead of forcing a fresh SessionInfo handshake. The head command
// may have already reached the vehicle, so it is marked as possibly-succeeded;
// the rest were never sent.
func (e *Engine) OnDisconnected() {
	e.reassembler.Reset()
	e.outbox = nil
	e.pending = nil
	first := true
	for len(e.queue) > 0 {
		head := e.queue[0]
		mayHaveSucceeded := first && (head.state == StateAwaitingResponse || head.state == StateAwaitingWakeResp)
		first = false
		e.failHead(protocol.NewError("transport disconnected", mayHaveSucceeded, true))
	}
}
