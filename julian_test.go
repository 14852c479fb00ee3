package ucal_test

import (
	"testing"

	"github.com/nwtime/ucal"
)

func TestRellezJD(t *testing.T) {
	year, err := ucal.RellezJD(82, 10, 4, uint16(ucal.Thursday), 1500)
	if err != nil {
		t.Fatalf("RellezJD returned error: %v", err)
	}
	if year != 1582 {
		t.Errorf("RellezJD(82,10,4,Thu,1500) = %d, want 1582", year)
	}
}

func TestRellezJDLeapFebruary(t *testing.T) {
	// Julian 1984-02-29 is a real leap day (falls on Tuesday); RellezJD
	// must accept it rather than rejecting it as an out-of-range day.
	year, err := ucal.RellezJD(84, 2, 29, uint16(ucal.Tuesday), 1900)
	if err != nil {
		t.Fatalf("RellezJD(84,2,29,Tue,1900) returned error: %v", err)
	}
	if year != 1984 {
		t.Errorf("RellezJD(84,2,29,Tue,1900) = %d, want 1984", year)
	}
}

func TestRdnToDateJDRoundTrip(t *testing.T) {
	for _, rdn := range []int32{-5000000, -1, 0, 1, 730486, 5000000} {
		cd, ok := ucal.RdnToDateJD(rdn)
		if !ok {
			t.Fatalf("RdnToDateJD(%d) reported overflow unexpectedly", rdn)
		}
		back := ucal.DateToRdnJD(cd.Year, int16(cd.Month), int16(cd.MDay))
		if back != rdn {
			t.Errorf("round-trip %d -> %+v -> %d, want %d", rdn, cd, back, rdn)
		}
	}
}

func TestIsLeapYearJD(t *testing.T) {
	for _, tt := range []struct {
		year int32
		leap bool
	}{
		{1900, true}, // Julian has no centennial exception
		{2000, true},
		{2001, false},
		{4, true},
	} {
		if got := ucal.IsLeapYearJD(tt.year); got != tt.leap {
			t.Errorf("IsLeapYearJD(%d) = %v, want %v", tt.year, got, tt.leap)
		}
	}
}
