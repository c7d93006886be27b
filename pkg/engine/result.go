package engine

import (
	"context"

	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/carserver"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/vcsec"
)

// State enumerates the phases a single Command passes through on its way
// from Idle to completion. A command only ever moves forward or back to
// Idle to re-evaluate its prerequisites; it never skips a phase.
type State int

const (
	StateIdle State = iota
	StateAwaitingVCSECAuth
	StateAwaitingVCSECAuthResp
	StateAwaitingWake
	StateAwaitingWakeResp
	StateAwaitingInfotainmentAuth
	StateAwaitingInfotainmentAuthResp
	StateReady
	StateAwaitingResponse
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingVCSECAuth:
		return "awaiting_vcsec_auth"
	case StateAwaitingVCSECAuthResp:
		return "awaiting_vcsec_auth_resp"
	case StateAwaitingWake:
		return "awaiting_wake"
	case StateAwaitingWakeResp:
		return "awaiting_wake_resp"
	case StateAwaitingInfotainmentAuth:
		return "awaiting_infotainment_auth"
	case StateAwaitingInfotainmentAuthResp:
		return "awaiting_infotainment_auth_resp"
	case StateReady:
		return "ready"
	case StateAwaitingResponse:
		return "awaiting_response"
	default:
		return "unknown"
	}
}

// Result is what a Command settles with: either an error, or whichever
// domain-specific payload its response carried.
type Result struct {
	Err           error
	VehicleStatus *vcsec.VehicleStatus
	ActionStatus  *carserver.ActionStatus
	VehicleData   *carserver.VehicleData
}

// Handle is the host's receipt for a submitted command. The engine is
// single-threaded and never starts a goroutine; Handle.done is closed from
// inside Tick or OnBytesReceived, on whichever call observes the command's
// terminal condition.
type Handle struct {
	done   chan struct{}
	result Result
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func (h *Handle) complete(r Result) {
	h.result = r
	close(h.done)
}

// Done reports completion. A host loop that drives Tick() from a single
// goroutine can simply check this after each call; a host that wants to
// block can select on it alongside a context.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Result returns the command's outcome. It is only meaningful once Done is
// closed; reading it earlier returns the zero Result.
func (h *Handle) Result() Result {
	return h.result
}

// Wait blocks until the command settles or ctx is cancelled. Callers still
// need to be pumping Tick()/OnBytesReceived() from elsewhere (or a transport
// goroutine feeding them) for Wait to ever return by completion rather than
// by ctx.
func (h *Handle) Wait(ctx context.Context) (Result, error) {
	select {
	case <-h.done:
		return h.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// EventKind categorizes an Event delivered through the engine's optional
// event handler.
type EventKind int

const (
	EventVehicleStatus EventKind = iota
	EventCommandCompleted
	EventCommandFailed
)

// Event is pushed to the handler set via SetEventHandler. Status events fire
// whenever a VCSEC status arrives, independent of whether any command is
// waiting on it; completion events mirror what each command's Handle already
// reports, for hosts that prefer a single callback over polling handles.
type Event struct {
	Kind          EventKind
	Label         string
	VehicleStatus *vcsec.VehicleStatus
	Result        Result
}
