package ucal_test

import (
	"math"
	"testing"

	"github.com/nwtime/ucal"
)

func TestDivGMGrid(t *testing.T) {
	// d must be normalized: 2^31 <= d < 2^32. v is floor((2^64-1)/d) - 2^32.
	const d uint32 = 0xa8c00000
	v := uint32((uint64(0xffffffffffffffff) / uint64(d)) - (uint64(1) << 32))

	u1s := []uint32{0, 1, d - 1, d / 2}
	u0s := []uint32{0, 1, math.MaxUint32, d}

	for _, u1 := range u1s {
		for _, u0 := range u0s {
			qr := ucal.DivGM(u1, u0, d, v)
			dividend := uint64(u1)<<32 | uint64(u0)
			want := dividend / uint64(d)
			wantR := dividend % uint64(d)
			if uint64(qr.Q) != want || uint64(qr.R) != wantR {
				t.Errorf("DivGM(%d,%d,%d,%d) = {%d,%d}, want {%d,%d}",
					u1, u0, d, v, qr.Q, qr.R, want, wantR)
			}
		}
	}
}

func TestMod7(t *testing.T) {
	for x := int32(-20); x <= 20; x++ {
		r := ucal.Mod7(x)
		if r < 0 || r > 6 {
			t.Fatalf("Mod7(%d) = %d, out of [0,6]", x, r)
		}
		// mathematical mod7, computed via a known-non-negative shift
		want := (x%7 + 7) % 7
		if r != want {
			t.Errorf("Mod7(%d) = %d, want %d", x, r, want)
		}
	}
}

func TestAddSubMod7(t *testing.T) {
	for a := int32(-10); a <= 10; a++ {
		for b := int32(-10); b <= 10; b++ {
			got := ucal.AddMod7(a, b)
			want := ucal.Mod7(a + b)
			if got != want {
				t.Errorf("AddMod7(%d,%d) = %d, want %d", a, b, got, want)
			}
			got = ucal.SubMod7(a, b)
			want = ucal.Mod7(a - b)
			if got != want {
				t.Errorf("SubMod7(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestAsr(t *testing.T) {
	for _, v := range []int32{-17, -1, 0, 1, 17, math.MinInt32, math.MaxInt32} {
		for s := uint(0); s < 32; s++ {
			got := ucal.Asr32(v, s)
			want := int32(math.Floor(float64(v) / math.Pow(2, float64(s))))
			if got != want {
				t.Errorf("Asr32(%d,%d) = %d, want %d", v, s, got, want)
			}
		}
	}
}
