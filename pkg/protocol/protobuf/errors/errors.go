// Package errors reproduces the subset of errors.proto this client needs:
// the generic error codes VCSEC attaches to a NominalError report when it
// authenticated a command but could not carry it out.
package errors

import "github.com/teslamotors/ble-vehicle-core/pkg/protocol/protobuf/wire"

type GenericError_E int32

const (
	GenericError_E_GENERICERROR_NONE                                        GenericError_E = 0
	GenericError_E_GENERICERROR_MUST_WAKE_UP                                GenericError_E = 1
	GenericError_E_GENERICERROR_NOT_APPLICABLE_DUE_TO_NON_ENGINEERING_BUILD GenericError_E = 2
	GenericError_E_GENERICERROR_NO_SUCH_KEY                                 GenericError_E = 3
	GenericError_E_GENERICERROR_REQUEST_SYSTEM_UNAVAILABLE                  GenericError_E = 4
	GenericError_E_GENERICERROR_INTERNAL                                    GenericError_E = 5
	GenericError_E_GENERICERROR_VEHICLE_NOT_IN_PARK                         GenericError_E = 6
	GenericError_E_GENERICERROR_INVALID_SESSION                             GenericError_E = 7
)

var genericErrorName = map[int32]string{
	0: "GENERICERROR_NONE",
	1: "GENERICERROR_MUST_WAKE_UP",
	2: "GENERICERROR_NOT_APPLICABLE_DUE_TO_NON_ENGINEERING_BUILD",
	3: "GENERICERROR_NO_SUCH_KEY",
	4: "GENERICERROR_REQUEST_SYSTEM_UNAVAILABLE",
	5: "GENERICERROR_INTERNAL",
	6: "GENERICERROR_VEHICLE_NOT_IN_PARK",
	7: "GENERICERROR_INVALID_SESSION",
}

func (e GenericError_E) String() string {
	if s, ok := genericErrorName[int32(e)]; ok {
		return s
	}
	return "GENERICERROR_UNKNOWN"
}

// NominalError is VCSEC's report that it authenticated a request but could
// not execute it, together with the reason.
type NominalError struct {
	GenericError GenericError_E
}

func (n *NominalError) GetGenericError() GenericError_E {
	if n == nil {
		return GenericError_E_GENERICERROR_NONE
	}
	return n.GenericError
}

func (n *NominalError) Marshal() []byte {
	var buf []byte
	buf = wire.AppendUint32Field(buf, 1, uint32(n.GenericError))
	return buf
}

func Unmarshal(buf []byte) *NominalError {
	n := &NominalError{}
	_ = wire.Each(buf, func(f wire.Field) error {
		if f.Num == 1 {
			n.GenericError = GenericError_E(f.Varint)
		}
		return nil
	})
	return n
}
