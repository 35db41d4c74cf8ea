package stuff

import "fmt"

// Sentinel is the reference tagging strategy: it reserves the backend's
// maximum value as the single tag meaning "other present". Every other
// backend value is an address, stored as-is.
//
// The other type O must carry no state of its own; Extract rebuilds it
// from its zero value, so its identity is implied entirely by the
// strategy instantiation. Marker structs are the intended use.
//
// Known limitation: an address numerically equal to the backend's
// maximum is indistinguishable from the tag and extracts as the other
// variant. Callers adopt this strategy on the convention that the
// all-ones value is never a legitimate address.
type Sentinel[B Backend[B], O any] struct{}

func (Sentinel[B, O]) StuffOther(O) B {
	var zero B
	return zero.MaxValue()
}

func (Sentinel[B, O]) Extract(data B) Unstuffed[O] {
	if data == data.MaxValue() {
		var other O
		return UnstuffedOther(other)
	}
	addr, ok := data.Addr()
	if !ok {
		panic(fmt.Sprintf("stuff: backend value %v does not fit an address", data))
	}
	return UnstuffedAddr[O](addr)
}

func (Sentinel[B, O]) StuffAddr(addr uintptr) B {
	var zero B
	b, ok := zero.FromAddr(addr)
	if !ok {
		panic(fmt.Sprintf("stuff: address 0x%x does not fit the backend", addr))
	}
	return b
}

// Per-width instantiations of the sentinel strategy. The decision logic
// is identical; only the reserved constant differs.
type (
	SentinelWord[O any] = Sentinel[Word, O]
	Sentinel64[O any]   = Sentinel[Uint64, O]
	Sentinel128[O any]  = Sentinel[Uint128, O]
)

var _ Strategy[Uint64, struct{}] = Sentinel64[struct{}]{}
