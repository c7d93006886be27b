package engine

import (
	"fmt"
	"time"

	"github.com/teslamotors/ble-vehicle-core/internal/log"
	"github.com/teslamotors/ble-vehicle-core/pkg/action"
	"github.com/teslamotors/ble-vehicle-core/pkg/ble/framer"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/carserver"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
	"github.com/teslamotors/ble-vehicle-core/pkg/store"
)

// stepCommand advances cmd by one state transition. It returns true if the
// queue should be re-examined immediately (cmd finished, or moved to a new
// state without needing to wait on the network), false if cmd is now
// blocked on a timer or a response and tick should stop for this call.
func (e *Engine) stepCommand(cmd *Command, now time.Time) bool {
	if now.Sub(cmd.enqueuedAt) > CommandTimeout {
		e.failHead(protocol.NewError(fmt.Sprintf("%s: timed out", cmd.label), cmd.state == StateAwaitingResponse, false))
		return true
	}

	switch cmd.state {
	case StateIdle:
		cmd.state = e.nextIdleState(cmd)
		cmd.subStart = now
		return true

	case StateAwaitingVCSECAuth:
		cmd.retries = 0
		if err := e.sendSessionInfoRequest(protocol.DomainVCSEC); err != nil {
			e.failHead(err)
			return true
		}
		cmd.state = StateAwaitingVCSECAuthResp
		cmd.subStart = now
		return false

	case StateAwaitingVCSECAuthResp:
		if e.registry.IsAuthenticated(protocol.DomainVCSEC) {
			cmd.state = StateIdle
			return true
		}
		return e.retryPhase(cmd, now, func() error { return e.sendSessionInfoRequest(protocol.DomainVCSEC) })

	case StateAwaitingWake:
		cmd.retries = 0
		if err := e.sendWake(); err != nil {
			e.failHead(err)
			return true
		}
		cmd.state = StateAwaitingWakeResp
		cmd.subStart = now
		return false

	case StateAwaitingWakeResp:
		if !e.asleep {
			cmd.state = StateIdle
			return true
		}
		return e.retryPhase(cmd, now, e.sendWake)

	case StateAwaitingInfotainmentAuth:
		cmd.retries = 0
		if err := e.sendSessionInfoRequest(protocol.DomainInfotainment); err != nil {
			e.failHead(err)
			return true
		}
		cmd.state = StateAwaitingInfotainmentAuthResp
		cmd.subStart = now
		return false

	case StateAwaitingInfotainmentAuthResp:
		if e.registry.IsAuthenticated(protocol.DomainInfotainment) {
			cmd.state = StateIdle
			return true
		}
		return e.retryPhase(cmd, now, func() error { return e.sendSessionInfoRequest(protocol.DomainInfotainment) })

	case StateReady:
		cmd.retries = 0
		if err := e.transmitCommand(cmd); err != nil {
			e.failHead(err)
			return true
		}
		if !cmd.expectsResponse {
			e.completeHead(Result{})
			return true
		}
		cmd.state = StateAwaitingResponse
		cmd.subStart = now
		return false

	case StateAwaitingResponse:
		return e.retryPhase(cmd, now, func() error { return e.transmitCommand(cmd) })
	}
	return false
}

// nextIdleState computes which prerequisite, if any, cmd still needs before
// it can be sent: VCSEC authentication, then (for INFOTAINMENT commands) a
// wake and INFOTAINMENT authentication.
func (e *Engine) nextIdleState(cmd *Command) State {
	if cmd.bootstrap {
		return StateReady
	}
	switch cmd.domain {
	case protocol.DomainVCSEC:
		if !e.registry.IsAuthenticated(protocol.DomainVCSEC) {
			return StateAwaitingVCSECAuth
		}
		return StateReady
	case protocol.DomainInfotainment:
		if !e.registry.IsAuthenticated(protocol.DomainVCSEC) {
			return StateAwaitingVCSECAuth
		}
		if e.asleep {
			return StateAwaitingWake
		}
		if !e.registry.IsAuthenticated(protocol.DomainInfotainment) {
			return StateAwaitingInfotainmentAuth
		}
		return StateReady
	default:
		return StateReady
	}
}

// retryPhase implements the MaxLatency/MaxRetries policy shared by every
// waiting sub-state: if less than MaxLatency has elapsed since the last send
// in this phase, keep waiting; otherwise resend, up to MaxRetries times,
// after which the command fails.
func (e *Engine) retryPhase(cmd *Command, now time.Time, resend func() error) bool {
	if now.Sub(cmd.subStart) < MaxLatency {
		return false
	}
	cmd.retries++
	if cmd.retries > MaxRetries {
		e.failHead(protocol.NewError(fmt.Sprintf("%s: no response after %d attempts", cmd.label, cmd.retries), false, false))
		return true
	}
	if err := resend(); err != nil {
		e.failHead(err)
		return true
	}
	cmd.subStart = now
	return false
}

func (e *Engine) sendSessionInfoRequest(domain protocol.Domain) error {
	msg, err := e.registry.BuildSessionInfoRequest(domain)
	if err != nil {
		return err
	}
	raw, err := msg.Marshal()
	if err != nil {
		return err
	}
	e.enqueueChunks(raw)
	return nil
}

func (e *Engine) sendWake() error {
	msg := action.WakeVehicle()
	plaintext, err := msg.Marshal()
	if err != nil {
		return err
	}
	signed, err := e.registry.BuildSignedCommand(protocol.DomainVCSEC, plaintext)
	if err != nil {
		return err
	}
	raw, err := signed.Marshal()
	if err != nil {
		return err
	}
	e.enqueueChunks(raw)
	return nil
}

func (e *Engine) transmitCommand(cmd *Command) error {
	var raw []byte
	var err error
	if cmd.bootstrap {
		raw, err = cmd.rawEnvelope()
	} else {
		var plaintext []byte
		if plaintext, err = cmd.payload(); err == nil {
			var signed interface{ Marshal() ([]byte, error) }
			signed, err = e.registry.BuildSignedCommand(cmd.domain, plaintext)
			if err == nil {
				raw, err = signed.Marshal()
			}
		}
	}
	if err != nil {
		return err
	}
	e.enqueueChunks(raw)
	return nil
}

func (e *Engine) enqueueChunks(raw []byte) {
	e.outbox = append(e.outbox, framer.Fragment(raw, e.mtu)...)
}

func (e *Engine) completeHead(res Result) {
	if len(e.queue) == 0 {
		return
	}
	cmd := e.queue[0]
	e.queue = e.queue[1:]
	cmd.handle.complete(res)
	if e.onEvent != nil {
		e.onEvent(Event{Kind: EventCommandCompleted, Label: cmd.label, Result: res})
	}
}

func (e *Engine) failHead(err error) {
	if len(e.queue) == 0 {
		return
	}
	cmd := e.queue[0]
	e.queue = e.queue[1:]
	res := Result{Err: err}
	cmd.handle.complete(res)
	if e.onEvent != nil {
		e.onEvent(Event{Kind: EventCommandFailed, Label: cmd.label, Result: res})
	}
}

func (e *Engine) headIfAwaitingResponse(domain protocol.Domain) *Command {
	if len(e.queue) == 0 {
		return nil
	}
	head := e.queue[0]
	if head.state == StateAwaitingResponse && head.domain == domain {
		return head
	}
	return nil
}

// dispatchPending drains every fully reassembled inbound message, folding
// session handshakes into the registry and domain responses into whichever
// command is waiting on them.
func (e *Engine) dispatchPending(now time.Time) {
	_ = now
	for len(e.pending) > 0 {
		raw := e.pending[0]
		e.pending = e.pending[1:]
		e.dispatchOne(raw)
	}
}

func (e *Engine) dispatchOne(raw []byte) {
	msg, plaintext, err := e.registry.ParseIncoming(raw)
	if err != nil {
		log.Warning("engine: discarding unparseable response: %v", err)
		return
	}
	domain := msg.FromDestination.GetDomain()

	if sessionInfo := msg.GetSessionInfo(); sessionInfo != nil {
		if e.store != nil {
			if key := sessionStoreKey(domain); key != "" {
				if err := e.store.Save(key, sessionInfo); err != nil {
					log.Warning("engine: persist session for %s: %v", domain, err)
				}
			}
		}
		return
	}

	if appErr := protocol.GetError(msg); appErr != nil {
		head := e.headIfAwaitingResponse(domain)
		if head == nil {
			return
		}
		if protocol.Temporary(appErr) {
			log.Warning("engine: %s: %v, will retry", head.label, appErr)
			return
		}
		e.failHead(appErr)
		return
	}

	if plaintext == nil {
		return
	}

	switch domain {
	case protocol.DomainVCSEC:
		e.dispatchVCSEC(plaintext)
	case protocol.DomainInfotainment:
		e.dispatchInfotainment(plaintext)
	}
}

func (e *Engine) dispatchVCSEC(plaintext []byte) {
	var reply vcsec.FromVCSECMessage
	if err := reply.Unmarshal(plaintext); err != nil {
		log.Warning("engine: unmarshal vcsec response: %v", err)
		return
	}

	if vs := reply.GetVehicleStatus(); vs != nil {
		e.updateSleepState(vs)
		if e.onEvent != nil {
			e.onEvent(Event{Kind: EventVehicleStatus, VehicleStatus: vs})
		}
	}

	head := e.headIfAwaitingResponse(protocol.DomainVCSEC)
	if head == nil {
		return
	}

	if nerr := reply.GetNominalError(); nerr != nil {
		e.failHead(&protocol.NominalVCSECError{Details: nerr})
		return
	}
	if cs := reply.GetCommandStatus(); cs != nil {
		if cs.GetOperationStatus() != vcsec.OperationStatus_E_OPERATIONSTATUS_OK {
			e.failHead(&protocol.KeychainError{Code: cs.GetWhitelistOperationStatus().GetWhitelistOperationInformation()})
			return
		}
		e.completeHead(Result{VehicleStatus: reply.GetVehicleStatus()})
		return
	}
	if vs := reply.GetVehicleStatus(); vs != nil {
		e.completeHead(Result{VehicleStatus: vs})
	}
}

func (e *Engine) dispatchInfotainment(plaintext []byte) {
	var resp carserver.Response
	if err := resp.Unmarshal(plaintext); err != nil {
		log.Warning("engine: unmarshal infotainment response: %v", err)
		return
	}
	head := e.headIfAwaitingResponse(protocol.DomainInfotainment)
	if head == nil {
		return
	}
	if vd := resp.GetVehicleData(); vd != nil {
		e.completeHead(Result{VehicleData: vd})
		return
	}
	if as := resp.GetActionStatus(); as != nil {
		if as.Result != carserver.OperationStatus_E_OPERATIONSTATUS_OK {
			e.failHead(fmt.Errorf("vehicle rejected %s: %s", head.label, as.ResultReason))
			return
		}
		e.completeHead(Result{ActionStatus: as})
		return
	}
	e.completeHead(Result{})
}

func (e *Engine) updateSleepState(vs *vcsec.VehicleStatus) {
	switch {
	case vs.GetClosureStatuses().GetPopulated():
		e.asleep = false
	case vs.GetVehicleSleepStatus() == vcsec.VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_AWAKE:
		e.asleep = false
	case vs.GetVehicleSleepStatus() == vcsec.VehicleSleepStatus_E_VEHICLE_SLEEP_STATUS_ASLEEP:
		e.asleep = true
	}
}

func sessionStoreKey(domain protocol.Domain) string {
	switch domain {
	case protocol.DomainVCSEC:
		return store.KeySessionVCSEC
	case protocol.DomainInfotainment:
		return store.KeySessionInfotainment
	}
	return ""
}
