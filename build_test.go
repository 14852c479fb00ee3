package ucal_test

import (
	"testing"

	"github.com/nwtime/ucal"
)

func TestBuildDateRdn(t *testing.T) {
	for _, tt := range []struct {
		in string
		ok bool
		y  int16
		m  int16
		d  int16
	}{
		{"Aug  1 2026", true, 2026, 8, 1},
		{"Jan 15 1999", true, 1999, 1, 15},
		{"Dec 31 2099", true, 2099, 12, 31},
		{"Xyz  1 2026", false, 0, 0, 0},
		{"Aug 32 2026", false, 0, 0, 0},
		{"Aug  1 1969", false, 0, 0, 0},
		{"Aug  1", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	} {
		t.Run(tt.in, func(t *testing.T) {
			rdn, ok := ucal.BuildDateRdn(tt.in)
			if ok != tt.ok {
				t.Fatalf("BuildDateRdn(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			want := ucal.DateToRdnGD(tt.y, tt.m, tt.d)
			if rdn != want {
				t.Errorf("BuildDateRdn(%q) = %d, want %d", tt.in, rdn, want)
			}
		})
	}
}

func TestBuildDateRdnSingleDigitDay(t *testing.T) {
	// The C __DATE__ macro pads single-digit days with a leading space,
	// which splitBuildDate must still treat as a single field boundary.
	rdn, ok := ucal.BuildDateRdn("Feb  5 2026")
	if !ok {
		t.Fatal("BuildDateRdn failed on single-digit padded day")
	}
	want := ucal.DateToRdnGD(2026, 2, 5)
	if rdn != want {
		t.Errorf("BuildDateRdn(single-digit day) = %d, want %d", rdn, want)
	}
}
