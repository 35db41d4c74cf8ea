package stuff

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortBackend is deliberately narrower than an address, to reach the
// overflow panic that real backends never trigger.
type shortBackend uint16

func (shortBackend) FromAddr(addr uintptr) (shortBackend, bool) {
	if addr > math.MaxUint16 {
		return 0, false
	}
	return shortBackend(addr), true
}

func (s shortBackend) Addr() (uintptr, bool) { return uintptr(s), true }

func (shortBackend) MaxValue() shortBackend { return math.MaxUint16 }

func TestIdentityRoundTrip(t *testing.T) {
	condition := func(a uint64) bool {
		addr := uintptr(a)
		s := Identity[Word]{}
		got, ok := s.Extract(s.StuffAddr(addr)).Addr()
		return ok && got == addr
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestIdentityStuffOther(t *testing.T) {
	s := Identity[Uint64]{}
	data := s.StuffOther(struct{}{})
	assert.Equal(t, Uint64(0), data)

	// no tagging: the zero value reads back as address zero
	addr, ok := s.Extract(data).Addr()
	require.True(t, ok)
	assert.Equal(t, uintptr(0), addr)
}

func TestIdentityAllBackends(t *testing.T) {
	const addr = uintptr(0x7f00_1000)

	got, ok := Identity[Word]{}.Extract(Identity[Word]{}.StuffAddr(addr)).Addr()
	require.True(t, ok)
	assert.Equal(t, addr, got)

	got, ok = Identity[Uint64]{}.Extract(Identity[Uint64]{}.StuffAddr(addr)).Addr()
	require.True(t, ok)
	assert.Equal(t, addr, got)

	got, ok = Identity[Uint128]{}.Extract(Identity[Uint128]{}.StuffAddr(addr)).Addr()
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestStuffAddrOverflowPanics(t *testing.T) {
	require.Panics(t, func() {
		Identity[shortBackend]{}.StuffAddr(0x10000)
	})
	require.Panics(t, func() {
		Sentinel[shortBackend, struct{}]{}.StuffAddr(0x10000)
	})

	// no silent wraparound below the limit either
	s := Sentinel[shortBackend, struct{}]{}
	addr, ok := s.Extract(s.StuffAddr(0xbeef)).Addr()
	require.True(t, ok)
	assert.Equal(t, uintptr(0xbeef), addr)
}
