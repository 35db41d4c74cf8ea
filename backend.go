package stuff

import "math"

// Backend describes the fixed-width unsigned integers that can serve as
// storage for a stuffed value. It is a self-referential constraint: a
// concrete backend B implements Backend[B].
//
// A backend must be at least as wide as the platform's addresses for the
// strategies in this package to stuff addresses into it; FromAddr reports
// when an address does not fit.
type Backend[B any] interface {
	comparable

	// FromAddr widens addr into the backend. ok is false when addr has
	// bits beyond the backend's width. The receiver is only a type
	// anchor; its value is ignored.
	FromAddr(addr uintptr) (_ B, ok bool)

	// Addr narrows the value back to address width. ok is false when the
	// value has bits beyond what a uintptr can hold.
	Addr() (_ uintptr, ok bool)

	// MaxValue returns the largest representable backend value.
	MaxValue() B
}

// Word is the pointer-width backend.
type Word uintptr

func (Word) FromAddr(addr uintptr) (Word, bool) { return Word(addr), true }

func (w Word) Addr() (uintptr, bool) { return uintptr(w), true }

func (Word) MaxValue() Word { return ^Word(0) }

// Uint64 is the 64-bit backend.
type Uint64 uint64

func (Uint64) FromAddr(addr uintptr) (Uint64, bool) { return Uint64(addr), true }

func (u Uint64) Addr() (uintptr, bool) {
	// only narrowing on 32-bit platforms; the conversion round-trips
	// exactly when the value fits.
	if uint64(uintptr(u)) != uint64(u) {
		return 0, false
	}
	return uintptr(u), true
}

func (Uint64) MaxValue() Uint64 { return math.MaxUint64 }

// Backend embeds comparable, so it can only appear in constraint
// position; assert the implementations through a constrained helper.
func assertBackend[B Backend[B]]() {}

var (
	_ = assertBackend[Word]
	_ = assertBackend[Uint64]
	_ = assertBackend[Uint128]
)
