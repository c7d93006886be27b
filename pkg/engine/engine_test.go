package engine

import (
	"crypto/rand"
	"testing"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/teslamotors/ble-vehicle-core/internal/authentication"
	"github.com/teslamotors/ble-vehicle-core/pkg/ble/framer"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/signatures"
	universal "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/universalmessage"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/wire"
	"github.com/teslamotors/ble-vehicle-core/pkg/store"
)

const testVIN = "5YJ3E1EA7KF000316"

var testEpoch = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

// fakeVehicle stands in for the real vehicle on the other end of the BLE
// link: it watches what the engine puts in its outbox, answers
// SessionInfoRequests, and signs scripted replies to commands using the same
// ECDH handshake technique as protocol/codec_test.go, so the resulting
// session key matches the engine's controller-side session exactly.
type fakeVehicle struct {
	t        *testing.T
	key      authentication.ECDHPrivateKey
	registry *protocol.Registry
	counter  map[protocol.Domain]uint32
	reply    func(domain protocol.Domain, plaintext []byte) []byte // plaintext to seal back, nil to ignore
}

func newFakeVehicle(t *testing.T) *fakeVehicle {
	t.Helper()
	key, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("vehicle key: %v", err)
	}
	registry := protocol.NewRegistry(key)
	registry.SetVIN(testVIN)
	return &fakeVehicle{
		t:        t,
		key:      key,
		registry: registry,
		counter:  make(map[protocol.Domain]uint32),
	}
}

// pump drains e's outbox, reassembles it into RoutableMessages, answers every
// SessionInfoRequest, and feeds any scripted reply back for signed commands.
// It repeats until the outbox stops producing anything new.
func (v *fakeVehicle) pump(e *Engine, controllerPub []byte) {
	var reassembler framer.Reassembler
	for {
		chunk, ok := e.TakeNextChunk()
		if !ok {
			return
		}
		reassembler.Push(chunk)
		for {
			raw, ok, err := reassembler.Next()
			if err != nil {
				v.t.Fatalf("reassemble outbound: %v", err)
			}
			if !ok {
				break
			}
			v.handle(e, raw, controllerPub)
		}
	}
}

func (v *fakeVehicle) handle(e *Engine, raw []byte, controllerPub []byte) {
	msg := &universal.RoutableMessage{}
	if err := msg.Unmarshal(raw); err != nil {
		v.t.Fatalf("unmarshal outbound: %v", err)
	}
	domain := msg.ToDestination.GetDomain()

	if msg.SessionInfoRequest != nil {
		v.counter[domain]++
		info := &signatures.SessionInfo{
			Counter:   v.counter[domain],
			PublicKey: v.key.PublicBytes(),
			Epoch:     testEpoch,
			ClockTime: 0,
		}
		if _, err := v.registry.ApplySessionInfo(domain, &signatures.SessionInfo{
			Counter:   v.counter[domain],
			PublicKey: controllerPub,
			Epoch:     testEpoch,
			ClockTime: 0,
		}); err != nil {
			v.t.Fatalf("vehicle ApplySessionInfo: %v", err)
		}
		encoded, err := proto.Marshal(info)
		if err != nil {
			v.t.Fatalf("marshal session info: %v", err)
		}
		reply := &universal.RoutableMessage{
			ToDestination:   msg.ToDestination,
			FromDestination: msg.ToDestination,
			SessionInfo:     encoded,
		}
		v.deliver(e, reply)
		return
	}

	if msg.ProtobufMessageAsBytes != nil {
		if v.reply == nil {
			return
		}
		plaintext := v.reply(domain, msg.ProtobufMessageAsBytes)
		if plaintext == nil {
			return
		}
		signed, err := v.registry.BuildSignedCommand(domain, plaintext)
		if err != nil {
			v.t.Fatalf("vehicle BuildSignedCommand: %v", err)
		}
		signed.FromDestination = msg.ToDestination
		v.deliver(e, signed)
	}
}

func (v *fakeVehicle) deliver(e *Engine, msg *universal.RoutableMessage) {
	raw, err := msg.Marshal()
	if err != nil {
		v.t.Fatalf("marshal inbound: %v", err)
	}
	for _, chunk := range framer.Fragment(raw, framer.DefaultChunkSize) {
		e.OnBytesReceived(chunk)
	}
}

// runUntilDone ticks e and pumps the fake vehicle's responses until h settles
// or the wall clock budget (simulated via an advancing fake "now") is spent.
func runUntilDone(t *testing.T, e *Engine, v *fakeVehicle, controllerPub []byte, h *Handle) Result {
	t.Helper()
	now := time.Now()
	for i := 0; i < 200; i++ {
		e.tick(now)
		v.pump(e, controllerPub)
		select {
		case <-h.Done():
			return h.Result()
		default:
		}
		now = now.Add(50 * time.Millisecond)
	}
	t.Fatalf("command did not settle within simulated budget")
	return Result{}
}

func vehicleStatusAwake() []byte {
	var vs []byte
	vs = wire.AppendUint32Field(vs, 2, uint32(vcsec.VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_AWAKE))
	var from []byte
	from = wire.AppendBytesField(from, 2, vs)
	return from
}

func actionStatusOK() []byte {
	return wire.AppendPresenceField(nil, 2)
}

func actionStatusError(reason string) []byte {
	var as []byte
	as = wire.AppendUint32Field(as, 1, uint32(1)) // OPERATIONSTATUS_ERROR
	as = wire.AppendBytesField(as, 2, []byte(reason))
	return wire.AppendBytesField(nil, 2, as)
}

func TestColdWake(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	e := New(testVIN, controllerKey, nil)
	v := newFakeVehicle(t)
	v.reply = func(domain protocol.Domain, _ []byte) []byte {
		if domain == protocol.DomainVCSEC {
			return vehicleStatusAwake()
		}
		return nil
	}

	h, err := e.WakeVehicle()
	if err != nil {
		t.Fatalf("WakeVehicle: %v", err)
	}

	res := runUntilDone(t, e, v, controllerKey.PublicBytes(), h)
	if res.Err != nil {
		t.Fatalf("wake command failed: %v", res.Err)
	}
	if e.asleep {
		t.Errorf("engine should have observed the vehicle as awake")
	}
	if !e.registry.IsAuthenticated(protocol.DomainVCSEC) {
		t.Errorf("VCSEC session should be authenticated after the handshake")
	}
}

func TestChargeAmpsFromAsleep(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	e := New(testVIN, controllerKey, nil)
	v := newFakeVehicle(t)
	v.reply = func(domain protocol.Domain, _ []byte) []byte {
		switch domain {
		case protocol.DomainVCSEC:
			return vehicleStatusAwake()
		case protocol.DomainInfotainment:
			return actionStatusOK()
		}
		return nil
	}

	if !e.asleep {
		t.Fatalf("setup: engine should start presuming the vehicle asleep")
	}

	h, err := e.SetChargingAmps(24)
	if err != nil {
		t.Fatalf("SetChargingAmps: %v", err)
	}

	res := runUntilDone(t, e, v, controllerKey.PublicBytes(), h)
	if res.Err != nil {
		t.Fatalf("set_charging_amps failed: %v", res.Err)
	}
	if res.ActionStatus == nil {
		t.Fatalf("expected an ActionStatus result")
	}
	if !e.registry.IsAuthenticated(protocol.DomainInfotainment) {
		t.Errorf("INFOTAINMENT session should be authenticated")
	}
}

func TestVehicleErrorInvalidatesInfotainmentSession(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	e := New(testVIN, controllerKey, nil)
	v := newFakeVehicle(t)
	v.reply = func(domain protocol.Domain, _ []byte) []byte {
		switch domain {
		case protocol.DomainVCSEC:
			return vehicleStatusAwake()
		case protocol.DomainInfotainment:
			return actionStatusOK()
		}
		return nil
	}

	// Get both sessions authenticated first with an innocuous command.
	h, err := e.PollInfotainment()
	if err != nil {
		t.Fatalf("PollInfotainment: %v", err)
	}
	if res := runUntilDone(t, e, v, controllerKey.PublicBytes(), h); res.Err != nil {
		t.Fatalf("setup poll failed: %v", res.Err)
	}
	if !e.registry.IsAuthenticated(protocol.DomainInfotainment) {
		t.Fatalf("setup: expected an authenticated infotainment session")
	}

	// Now issue a command whose (simulated) response is a vehicle-side
	// OPERATIONSTATUS_ERROR at the envelope level.
	h2, err := e.SetChargingEnabled(true)
	if err != nil {
		t.Fatalf("SetChargingEnabled: %v", err)
	}
	now := time.Now()
	for i := 0; i < 50; i++ {
		e.tick(now)

		var reassembler framer.Reassembler
		for {
			chunk, ok := e.TakeNextChunk()
			if !ok {
				break
			}
			reassembler.Push(chunk)
			for {
				raw, ok, err := reassembler.Next()
				if err != nil {
					t.Fatalf("reassemble: %v", err)
				}
				if !ok {
					break
				}
				msg := &universal.RoutableMessage{}
				if err := msg.Unmarshal(raw); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if msg.ProtobufMessageAsBytes == nil {
					continue
				}
				errMsg := &universal.RoutableMessage{
					ToDestination:   msg.ToDestination,
					FromDestination: msg.ToDestination,
					SignedMessageStatus: &universal.MessageStatus{
						OperationStatus: universal.OperationStatus_E_OPERATIONSTATUS_ERROR,
					},
				}
				v.deliver(e, errMsg)
			}
		}

		select {
		case <-h2.Done():
			res := h2.Result()
			if res.Err == nil {
				t.Fatalf("expected command to fail on vehicle error status")
			}
			if e.registry.IsAuthenticated(protocol.DomainInfotainment) {
				t.Errorf("an OPERATIONSTATUS_ERROR reply should invalidate the infotainment session")
			}
			return
		default:
		}
		now = now.Add(50 * time.Millisecond)
	}
	t.Fatalf("command did not settle")
}

func TestSubmitRejectsBeyondMaxQueueSize(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	e := New(testVIN, controllerKey, nil)
	for i := 0; i < MaxQueueSize; i++ {
		if _, err := e.PollVCSECStatus(); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if _, err := e.PollVCSECStatus(); err != ErrQueueFull {
		t.Errorf("err = %v, want ErrQueueFull", err)
	}
}

func TestCommandFailsAfterCommandTimeout(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	e := New(testVIN, controllerKey, nil)
	h, err := e.PollVCSECStatus()
	if err != nil {
		t.Fatalf("PollVCSECStatus: %v", err)
	}

	now := time.Now()
	e.tick(now) // moves Idle -> AwaitingVCSECAuth and sends the request
	select {
	case <-h.Done():
		t.Fatalf("command settled before any response arrived")
	default:
	}

	now = now.Add(CommandTimeout + time.Second)
	e.tick(now)

	select {
	case <-h.Done():
	default:
		t.Fatalf("expected command to fail once CommandTimeout elapsed")
	}
	if h.Result().Err == nil {
		t.Errorf("expected a timeout error")
	}
}

func TestOnDisconnectedPreservesSessionsClearsQueue(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	e := New(testVIN, controllerKey, nil)
	v := newFakeVehicle(t)
	v.reply = func(domain protocol.Domain, _ []byte) []byte {
		if domain == protocol.DomainVCSEC {
			return vehicleStatusAwake()
		}
		return nil
	}
	h, err := e.WakeVehicle()
	if err != nil {
		t.Fatalf("WakeVehicle: %v", err)
	}
	if res := runUntilDone(t, e, v, controllerKey.PublicBytes(), h); res.Err != nil {
		t.Fatalf("wake failed: %v", res.Err)
	}
	if !e.registry.IsAuthenticated(protocol.DomainVCSEC) {
		t.Fatalf("setup: expected authenticated VCSEC session")
	}

	h2, err := e.PollVCSECStatus()
	if err != nil {
		t.Fatalf("PollVCSECStatus: %v", err)
	}
	e.tick(time.Now())

	e.OnDisconnected()

	if e.QueueLen() != 0 {
		t.Errorf("OnDisconnected should clear the queue, QueueLen() = %d", e.QueueLen())
	}
	select {
	case <-h2.Done():
		if h2.Result().Err == nil {
			t.Errorf("expected the in-flight command to fail on disconnect")
		}
	default:
		t.Errorf("in-flight command should settle on disconnect")
	}
	if !e.registry.IsAuthenticated(protocol.DomainVCSEC) {
		t.Errorf("OnDisconnected must not invalidate sessions")
	}
}

func TestStoreReceivesSessionInfoOnHandshake(t *testing.T) {
	controllerKey, err := authentication.NewECDHPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("controller key: %v", err)
	}
	mem := store.NewMemoryStore()
	e := New(testVIN, controllerKey, mem)
	v := newFakeVehicle(t)
	v.reply = func(domain protocol.Domain, _ []byte) []byte {
		if domain == protocol.DomainVCSEC {
			return vehicleStatusAwake()
		}
		return nil
	}
	h, err := e.WakeVehicle()
	if err != nil {
		t.Fatalf("WakeVehicle: %v", err)
	}
	if res := runUntilDone(t, e, v, controllerKey.PublicBytes(), h); res.Err != nil {
		t.Fatalf("wake failed: %v", res.Err)
	}
	if _, err := mem.Load(store.KeySessionVCSEC); err != nil {
		t.Errorf("expected VCSEC session info to be persisted: %v", err)
	}
}
