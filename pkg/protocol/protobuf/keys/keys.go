// Package keys reproduces the subset of keys.proto this client needs: the
// Role enum used when enrolling a new key on a vehicle's whitelist.
package keys

// Role identifies the privileges granted to an enrolled key.
type Role int32

const (
	Role_ROLE_UNKNOWN         Role = 0
	Role_ROLE_OWNER           Role = 1
	Role_ROLE_DRIVER          Role = 2
	Role_ROLE_FM_DRIVER       Role = 3
	Role_ROLE_VEHICLE_MONITOR Role = 4
)

var Role_name = map[int32]string{
	0: "ROLE_UNKNOWN",
	1: "ROLE_OWNER",
	2: "ROLE_DRIVER",
	3: "ROLE_FM_DRIVER",
	4: "ROLE_VEHICLE_MONITOR",
}

func (r Role) String() string {
	if s, ok := Role_name[int32(r)]; ok {
		return s
	}
	return "ROLE_UNKNOWN"
}
