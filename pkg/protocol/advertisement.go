package protocol

import (
	"crypto/sha1"
	"fmt"
)

// AdvertisementName returns the BLE local name a vehicle advertises under
// for the given VIN: "S" followed by the hex encoding of the first eight
// bytes of SHA-1(vin), followed by "C". Grounded in the ESPHome
// tesla_ble_vehicle component's utils.cpp helper of the same shape, and
// matching the teacher's pkg/connector/ble.VehicleLocalName.
func AdvertisementName(vin string) string {
	digest := sha1.Sum([]byte(vin))
	return fmt.Sprintf("S%02xC", digest[:8])
}
