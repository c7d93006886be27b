// Package blecentral implements transport.Writer against a real BLE
// central using github.com/go-ble/ble, Tesla's three fixed GATT UUIDs, and
// this module's own fragmenter/reassembler (pkg/ble/framer). It is the
// desktop/HCI half of the "BLE central driver" collaborator spec.md leaves
// external to the core; on Linux it drives /sys/class/bluetooth HCI
// adapters, and on macOS/Windows it uses go-ble's CoreBluetooth and WinRT
// backends respectively (pulling in the cbgo indirect dependency on
// Darwin).
//
// Grounded directly in the teacher's pkg/connector/ble.Connection
// (tryToConnect, rx/flush, Send's block-length chunking): the scan/connect/
// discover/subscribe sequence below is that file's, adapted to deliver
// bytes to an OnNotify callback (so pkg/engine can own the reassembly
// buffer itself, per spec.md's "ReassemblyBuffer is per connection, owned
// by the core") instead of buffering internally.
package blecentral

import (
	"context"
	"fmt"
	"time"

	"github.com/go-ble/ble"

	"github.com/teslamotors/ble-vehicle-core/internal/log"
	"github.com/teslamotors/ble-vehicle-core/pkg/protocol"
	"github.com/teslamotors/ble-vehicle-core/pkg/transport"
)

// Fixed GATT identifiers the vehicle exposes; see spec.md §6.
var (
	VehicleServiceUUID = ble.MustParse("00000211-b2d1-43f0-9b88-960cebf8b91e")
	ReadNotifyUUID     = ble.MustParse("00000213-b2d1-43f0-9b88-960cebf8b91e")
	WriteUUID          = ble.MustParse("00000212-b2d1-43f0-9b88-960cebf8b91e")
)

const maxBLEMessageSize = 1024

var ErrMaxConnectionsExceeded = protocol.NewError("the vehicle is already connected to the maximum number of BLE devices", false, false)

// OnNotify is invoked, synchronously, with each raw notify payload the
// vehicle sends on ReadNotifyUUID. Implementations should not block; the
// intended caller is an engine.Engine's OnBytesReceived.
type OnNotify func(chunk []byte)

// Connection is a live BLE central connection to one vehicle, implementing
// transport.Writer.
type Connection struct {
	client    ble.Client
	txChar    *ble.Characteristic
	blockSize int
}

var _ transport.Writer = (*Connection)(nil)

// Dial scans for a vehicle advertising localName (see
// protocol.AdvertisementName), connects, discovers the fixed vehicle
// service and its two characteristics, and subscribes to notifications,
// delivering every inbound payload to onNotify.
func Dial(ctx context.Context, device ble.Device, localName string, onNotify OnNotify) (*Connection, error) {
	beacon, err := scan(ctx, device, localName)
	if err != nil {
		return nil, fmt.Errorf("blecentral: scan: %w", err)
	}
	if !beacon.Connectable {
		return nil, ErrMaxConnectionsExceeded
	}

	log.Debug("Dialing %s (%s)...", beacon.Addr(), localName)
	client, err := device.Dial(ctx, beacon.Addr())
	if err != nil {
		return nil, fmt.Errorf("blecentral: dial: %w", err)
	}

	services, err := client.DiscoverServices([]ble.UUID{VehicleServiceUUID})
	if err != nil || len(services) == 0 {
		return nil, fmt.Errorf("blecentral: discover service: %w", err)
	}

	chars, err := client.DiscoverCharacteristics([]ble.UUID{WriteUUID, ReadNotifyUUID}, services[0])
	if err != nil {
		return nil, fmt.Errorf("blecentral: discover characteristics: %w", err)
	}

	conn := &Connection{client: client}
	var rxChar *ble.Characteristic
	for _, c := range chars {
		switch {
		case c.UUID.Equal(WriteUUID):
			conn.txChar = c
		case c.UUID.Equal(ReadNotifyUUID):
			rxChar = c
		}
		if _, err := client.DiscoverDescriptors(nil, c); err != nil {
			return nil, fmt.Errorf("blecentral: discover descriptors: %w", err)
		}
	}
	if conn.txChar == nil || rxChar == nil {
		return nil, fmt.Errorf("blecentral: vehicle did not expose the expected characteristics")
	}

	if err := client.Subscribe(rxChar, true, func(p []byte) {
		log.Debug("blecentral RX: %02x", p)
		onNotify(p)
	}); err != nil {
		return nil, fmt.Errorf("blecentral: subscribe: %w", err)
	}

	mtu, err := client.ExchangeMTU(ble.MaxMTU)
	if err != nil {
		log.Warning("blecentral: MTU exchange failed, falling back to default: %s", err)
		conn.blockSize = ble.DefaultMTU - 3
	} else {
		conn.blockSize = mtu - 3
		if conn.blockSize > maxBLEMessageSize {
			conn.blockSize = maxBLEMessageSize
		}
	}
	log.Info("blecentral: connected, block size %d", conn.blockSize)
	return conn, nil
}

func scan(ctx context.Context, device ble.Device, localName string) (ble.Advertisement, error) {
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	found := make(chan ble.Advertisement, 1)
	err := device.Scan(scanCtx, false, func(a ble.Advertisement) {
		if a.LocalName() != localName {
			return
		}
		select {
		case found <- a:
			cancel()
		default:
		}
	})
	if err != nil && scanCtx.Err() == nil {
		return nil, err
	}
	select {
	case a := <-found:
		return a, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// WriteChunk implements transport.Writer.
func (c *Connection) WriteChunk(chunk []byte) error {
	return c.client.WriteCharacteristic(c.txChar, chunk, false)
}

// MTU implements transport.Writer.
func (c *Connection) MTU() int {
	return c.blockSize
}

// Close tears down the GATT connection.
func (c *Connection) Close() error {
	_ = c.client.ClearSubscriptions()
	return c.client.CancelConnection()
}

// RetryInterval is how long a caller should wait between reconnection
// attempts after a failed Dial.
func RetryInterval() time.Duration { return transport.RetryInterval }
