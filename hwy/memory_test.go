package hwy

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func iota8(base float32) []float32 {
	s := make([]float32, Lanes)
	for i := range s {
		s[i] = base + float32(i)
	}
	return s
}

func TestLoadStore(t *testing.T) {
	src := iota8(1)
	var dst [Lanes]float32
	Load(src).Store(dst[:])
	for i, got := range dst {
		if got != src[i] {
			t.Errorf("lane %d: got %v, want %v", i, got, src[i])
		}
	}
}

func TestLoadNZeroesTail(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	for count := 0; count <= Lanes; count++ {
		v := LoadN(src[:count], count)
		for i := range Lanes {
			want := float32(0)
			if i < count {
				want = src[i]
			}
			if v.v[i] != want || math.Signbit(float64(v.v[i])) {
				t.Errorf("count=%d lane %d: got %v, want %v", count, i, v.v[i], want)
			}
		}
	}
}

func TestStoreNWritesExactCount(t *testing.T) {
	const sentinel = float32(-99)
	v := Of(10, 11, 12, 13, 14, 15, 16, 17)
	for count := 0; count <= Lanes; count++ {
		dst := make([]float32, Lanes+1)
		for i := range dst {
			dst[i] = sentinel
		}
		v.StoreN(dst, count)
		for i, got := range dst {
			want := sentinel
			if i < count {
				want = float32(10 + i)
			}
			if got != want {
				t.Errorf("count=%d index %d: got %v, want %v", count, i, got, want)
			}
		}
	}
}

// A 3-element buffer must be enough for a 3-lane store.
func TestStoreNShortBuffer(t *testing.T) {
	dst := make([]float32, 3)
	Set(4).StoreN(dst, 3)
	require.Equal(t, []float32{4, 4, 4}, dst)
}

func TestBytesUnaligned(t *testing.T) {
	buf := make([]byte, 1+4*Lanes+1)
	for i := range Lanes {
		binary.NativeEndian.PutUint32(buf[1+4*i:], math.Float32bits(float32(i)*1.5))
	}

	v := LoadBytes(buf[1:], 5)
	want := Of(0, 1.5, 3, 4.5, 6, 0, 0, 0)
	require.Equal(t, want, v)

	out := make([]byte, 1+4*Lanes+1)
	for i := range out {
		out[i] = 0xAB
	}
	Of(1, 2, 3, 4, 5, 6, 7, 8).StoreBytes(out[1:], 3)
	require.Equal(t, byte(0xAB), out[0])
	for i := range 3 {
		got := math.Float32frombits(binary.NativeEndian.Uint32(out[1+4*i:]))
		require.Equal(t, float32(i+1), got)
	}
	for _, b := range out[1+4*3:] {
		require.Equal(t, byte(0xAB), b)
	}
}

func TestPtrRoundTrip(t *testing.T) {
	src := iota8(-3)
	v := LoadPtr(unsafe.Pointer(&src[0]), Lanes)
	require.Equal(t, Load(src), v)

	dst := make([]float32, Lanes)
	v.StorePtr(unsafe.Pointer(&dst[0]), 6)
	require.Equal(t, []float32{-3, -2, -1, 0, 1, 2, 0, 0}, dst)

	require.Equal(t, Zero(), LoadPtr(nil, 0))
	v.StorePtr(nil, 0)
}

func TestCountOutOfRangePanics(t *testing.T) {
	buf := make([]float32, 16)
	require.PanicsWithValue(t, "hwy: count 9 out of range [0, 8]", func() { LoadN(buf, 9) })
	require.PanicsWithValue(t, "hwy: count -1 out of range [0, 8]", func() { Zero().StoreN(buf, -1) })
	require.Panics(t, func() { LoadBytes(make([]byte, 64), 12) })
	require.Panics(t, func() { SetN(Zero(), Zero(), 9) })
}

func TestProcessWithTail(t *testing.T) {
	for size := range 20 {
		var full []int
		tailOffset, tailCount := -1, 0
		ProcessWithTail(size,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tailOffset, tailCount = offset, count },
		)
		if len(full) != size/Lanes {
			t.Errorf("size=%d: %d full vectors, want %d", size, len(full), size/Lanes)
		}
		if size%Lanes == 0 {
			if tailOffset != -1 {
				t.Errorf("size=%d: unexpected tail call", size)
			}
			continue
		}
		if tailOffset != size/Lanes*Lanes || tailCount != size%Lanes {
			t.Errorf("size=%d: tail(%d, %d)", size, tailOffset, tailCount)
		}
	}
}

func TestProcessWithTailNoMask(t *testing.T) {
	var offsets []int
	ProcessWithTailNoMask(19, func(offset int) { offsets = append(offsets, offset) })
	require.Equal(t, []int{0, 8, 11}, offsets)
	require.Panics(t, func() { ProcessWithTailNoMask(7, func(int) {}) })
}

func TestAlignedSize(t *testing.T) {
	for _, tc := range []struct{ size, want int }{{0, 0}, {1, 8}, {8, 8}, {9, 16}, {17, 24}} {
		if got := AlignedSize(tc.size); got != tc.want {
			t.Errorf("AlignedSize(%d) = %d, want %d", tc.size, got, tc.want)
		}
		if IsAligned(tc.size) != (tc.size == tc.want) {
			t.Errorf("IsAligned(%d) = %v", tc.size, IsAligned(tc.size))
		}
	}
}

func TestTailMask(t *testing.T) {
	require.Equal(t, uint8(0), TailMask(-2).MaskBits())
	require.Equal(t, uint8(0b111), TailMask(3).MaskBits())
	require.Equal(t, uint8(0xFF), TailMask(12).MaskBits())
}
