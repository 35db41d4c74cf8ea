package stuff

import (
	"fmt"
	"math"
)

// Uint128 is the 128-bit backend, built from two uint64 limbs since Go
// has no native 128-bit integer. Hi holds the most significant bits.
type Uint128 struct {
	Hi, Lo uint64
}

func (Uint128) FromAddr(addr uintptr) (Uint128, bool) {
	return Uint128{Lo: uint64(addr)}, true
}

func (u Uint128) Addr() (uintptr, bool) {
	if u.Hi != 0 || uint64(uintptr(u.Lo)) != u.Lo {
		return 0, false
	}
	return uintptr(u.Lo), true
}

func (Uint128) MaxValue() Uint128 {
	return Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
}

func (u Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}
