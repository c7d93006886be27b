// Package transport defines the external BLE central collaborator this
// core depends on but does not implement end to end: connection
// establishment, GATT characteristic discovery, and notify-subscription
// plumbing stay the host's responsibility (spec §1's "deliberately out of
// scope"). The core only needs a place to write outbound chunks and a
// callback through which the host can hand it inbound notify payloads.
package transport

import "time"

//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=mock_transport.go -package=transport

// Writer is the minimal capability the command engine needs from a
// connected BLE central: write one already-chunked payload (≤ the
// negotiated MTU) to the vehicle's write characteristic
// (00000212-b2d1-43f0-9b88-960cebf8b91e). Implementations should not block
// past a reasonable deadline; the engine treats a write failure as a
// transport error and retries at the command layer (spec §7).
type Writer interface {
	// WriteChunk sends one already-framed, already-chunked payload.
	WriteChunk(chunk []byte) error

	// MTU reports the maximum chunk size this Writer currently accepts.
	// The framer consults this to size outbound fragments; hosts that have
	// not yet negotiated an MTU should return framer.DefaultChunkSize (20).
	MTU() int
}

// RetryInterval is how long the engine waits between retrying a send after
// a transient Writer error, mirroring the teacher connector's
// RetryInterval() contract (pkg/connector.Connector).
const RetryInterval = time.Second

// Beacon describes a discovered vehicle advertisement, returned by a scan.
// Hosts that implement their own central driver can ignore this type
// entirely; it exists only so the bundled blecentral adapter and CLI share
// one shape.
type Beacon struct {
	Address     string
	LocalName   string
	RSSI        int16
	Connectable bool
}
