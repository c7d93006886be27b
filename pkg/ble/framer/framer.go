// Package framer implements the BLE length-prefix wire framing this client
// uses to carry a serialized RoutableMessage (or the legacy ToVCSECMessage
// bootstrap) over a fixed-MTU GATT characteristic: a 2-byte big-endian
// length prefix followed by that many bytes, split into chunks no larger
// than the negotiated MTU.
//
// Grounded directly in the teacher's pkg/connector/ble/conn.Connection and
// pkg/connector/ble.Connection, which both implement the identical
// prefix-then-chunk scheme inline; this package pulls that logic out into a
// standalone, transport-agnostic pair of types so the command engine can
// drive it without depending on a concrete BLE stack.
package framer

import (
	"fmt"

	"github.com/teslamotors/ble-vehicle-core/internal/log"
)

// MaxMessageSize is the largest framed message this client will assemble or
// accept, matching the vehicle's own limit.
const MaxMessageSize = 1024

// DefaultChunkSize is the maximum payload size of a single BLE write,
// matching the smallest MTU a central can assume without negotiation.
const DefaultChunkSize = 20

// ErrOverflow indicates an inbound message's declared length exceeds
// MaxMessageSize; the reassembly buffer is always discarded alongside it.
var errOverflow = fmt.Errorf("framer: declared message length exceeds %d bytes", MaxMessageSize)

// Fragment splits a serialized message into ≤chunkSize byte chunks prefixed
// by a 2-byte big-endian length header. The caller is expected to hand each
// returned chunk to the transport in order; chunkSize must be at least 3 so
// every chunk carries at least one payload byte alongside headroom for the
// length prefix on the first chunk.
func Fragment(message []byte, chunkSize int) [][]byte {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	framed := make([]byte, 0, len(message)+2)
	framed = append(framed, byte(len(message)>>8), byte(len(message)))
	framed = append(framed, message...)

	var chunks [][]byte
	for len(framed) > 0 {
		n := chunkSize
		if n > len(framed) {
			n = len(framed)
		}
		chunks = append(chunks, framed[:n])
		framed = framed[n:]
	}
	return chunks
}

// Reassembler accumulates inbound BLE chunks into complete framed messages.
// It is not safe for concurrent use; the engine that owns it runs
// single-threaded. The zero value is ready to use.
type Reassembler struct {
	buf []byte
}

// Reset discards any partially received message, used on transport
// disconnect per §4.5's "reassembly state is per connection".
func (r *Reassembler) Reset() {
	r.buf = nil
}

// Push appends an inbound chunk to the reassembly buffer. Call Next
// afterward, in a loop, to pull out every message the new data completed;
// a single chunk can complete more than one frame if several small
// messages arrived back to back.
func (r *Reassembler) Push(chunk []byte) {
	r.buf = append(r.buf, chunk...)
}

// Next extracts one complete message (length prefix stripped) from the
// buffer if enough bytes have arrived, reporting ok == false when no full
// message is available yet. Next reports an error only for unrecoverable
// conditions (overflow); the buffer has already been discarded by the time
// it returns, so the caller need not call Reset itself.
func (r *Reassembler) Next() ([]byte, bool, error) {
	if len(r.buf) < 2 {
		return nil, false, nil
	}
	length := int(r.buf[0])<<8 | int(r.buf[1])
	if length+2 > MaxMessageSize {
		log.Warning("framer: discarding %d-byte buffer after declared length %d exceeds max", len(r.buf), length)
		r.buf = nil
		return nil, false, errOverflow
	}
	if len(r.buf) < length+2 {
		return nil, false, nil
	}
	msg := append([]byte(nil), r.buf[2:2+length]...)
	r.buf = r.buf[2+length:]
	return msg, true, nil
}

// Len reports the number of bytes currently buffered awaiting reassembly,
// for diagnostics.
func (r *Reassembler) Len() int {
	return len(r.buf)
}
