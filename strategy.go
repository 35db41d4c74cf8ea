package stuff

import "fmt"

// Strategy describes how addresses and other values of type O are packed
// into a backend integer B. Strategies are stateless marker types; the
// choice of strategy is made per call site through the type parameters,
// with no runtime dispatch.
//
// Implementations must uphold the round-trip contract:
// Extract(StuffAddr(a)) yields address a for every address the strategy
// does not reserve, and Extract(StuffOther(o)) yields o by value.
type Strategy[B Backend[B], O any] interface {
	// StuffOther packs an other value into the backend. Infallible.
	StuffOther(other O) B

	// Extract recovers the address or the other value from data.
	//
	// data must have been produced by this strategy's StuffOther or
	// StuffAddr. Extract does not and cannot verify this; passing any
	// other value yields an unspecified result.
	Extract(data B) Unstuffed[O]

	// StuffAddr packs a raw address into the backend. It may transform
	// the address as long as Extract inverts the transform. Panics when
	// addr does not fit the backend's width, which means the backend was
	// chosen too narrow for the platform.
	StuffAddr(addr uintptr) B
}

// Identity is the default strategy: no tagging occurs and every backend
// value is read back as an address. Its other type is struct{}, which
// stuffs to the backend's zero value and extracts as address zero.
type Identity[B Backend[B]] struct{}

func (Identity[B]) StuffOther(struct{}) B {
	var zero B
	return zero
}

func (Identity[B]) Extract(data B) Unstuffed[struct{}] {
	addr, ok := data.Addr()
	if !ok {
		// unreachable for backends no wider than an address
		panic(fmt.Sprintf("stuff: backend value %v does not fit an address", data))
	}
	return UnstuffedAddr[struct{}](addr)
}

func (Identity[B]) StuffAddr(addr uintptr) B {
	var zero B
	b, ok := zero.FromAddr(addr)
	if !ok {
		panic(fmt.Sprintf("stuff: address 0x%x does not fit the backend", addr))
	}
	return b
}

var _ Strategy[Word, struct{}] = Identity[Word]{}
