package stuff

import "fmt"

// Unstuffed is the result of extracting a backend value: either a machine
// address or an other value of type O, never both. The zero Unstuffed is
// the address variant holding address zero.
type Unstuffed[O any] struct {
	addr    uintptr
	other   O
	isOther bool
}

// UnstuffedAddr returns the address variant.
func UnstuffedAddr[O any](addr uintptr) Unstuffed[O] {
	return Unstuffed[O]{addr: addr}
}

// UnstuffedOther returns the other variant.
func UnstuffedOther[O any](other O) Unstuffed[O] {
	return Unstuffed[O]{other: other, isOther: true}
}

// Addr returns the address and true when u holds the address variant.
func (u Unstuffed[O]) Addr() (uintptr, bool) {
	return u.addr, !u.isOther
}

// Other returns the other value and true when u holds the other variant.
func (u Unstuffed[O]) Other() (O, bool) {
	return u.other, u.isOther
}

// IsOther reports whether u holds the other variant.
func (u Unstuffed[O]) IsOther() bool { return u.isOther }

func (u Unstuffed[O]) String() string {
	if u.isOther {
		return fmt.Sprintf("Other(%v)", u.other)
	}
	return fmt.Sprintf("Addr(0x%x)", u.addr)
}
