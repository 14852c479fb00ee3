package ucal_test

import (
	"fmt"
	"testing"

	"github.com/nwtime/ucal"
)

func TestDateToRdnGD(t *testing.T) {
	for _, tt := range []struct {
		year  int16
		month ucal.Month
		day   int16
		rdn   int32
	}{
		{2001, ucal.January, 1, 5*146097 + 1},
		{1970, ucal.January, 1, ucal.RdnUnix},
	} {
		t.Run(fmt.Sprint(tt.year), func(t *testing.T) {
			if got := ucal.DateToRdnGD(tt.year, int16(tt.month), tt.day); got != tt.rdn {
				t.Errorf("DateToRdnGD(%d,%d,%d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.rdn)
			}
		})
	}
}

func TestGregorianRdnScenario1(t *testing.T) {
	const want = 5*146097 + 1
	if got := ucal.DateToRdnGD(2001, 1, 1); got != want {
		t.Fatalf("DateToRdnGD(2001,1,1) = %d, want %d", got, want)
	}
	if want != 730486 {
		t.Fatalf("sanity: 5*146097+1 = %d, want 730486", want)
	}

	cd, ok := ucal.RdnToDateGD(want)
	if !ok {
		t.Fatal("RdnToDateGD overflowed unexpectedly")
	}
	if cd.Year != 2001 || cd.Month != ucal.January || cd.MDay != 1 || cd.DOW != ucal.Monday {
		t.Errorf("RdnToDateGD(%d) = %+v, want {2001 January 1 Monday ...}", want, cd)
	}
}

func TestCalendarReformParity(t *testing.T) {
	g := ucal.DateToRdnGD(1582, 10, 15)
	j5 := ucal.DateToRdnJD(1582, 10, 5)
	j4 := ucal.DateToRdnJD(1582, 10, 4)
	if g != j5 {
		t.Errorf("DateToRdnGD(1582,10,15) = %d, DateToRdnJD(1582,10,5) = %d, want equal", g, j5)
	}
	if g != j4+1 {
		t.Errorf("DateToRdnGD(1582,10,15) = %d, DateToRdnJD(1582,10,4)+1 = %d, want equal", g, j4+1)
	}
}

func TestRellezGD(t *testing.T) {
	year, err := ucal.RellezGD(82, 10, 15, uint16(ucal.Friday), 1500)
	if err != nil {
		t.Fatalf("RellezGD returned error: %v", err)
	}
	if year != 1582 {
		t.Errorf("RellezGD(82,10,15,Fri,1500) = %d, want 1582", year)
	}
}

func TestRellezGDLeapFebruary(t *testing.T) {
	// 1984-02-29 is a real leap day (falls on Wednesday); RellezGD must
	// accept it rather than rejecting it as an out-of-range day.
	year, err := ucal.RellezGD(84, 2, 29, uint16(ucal.Wednesday), 1900)
	if err != nil {
		t.Fatalf("RellezGD(84,2,29,Wed,1900) returned error: %v", err)
	}
	if year != 1984 {
		t.Errorf("RellezGD(84,2,29,Wed,1900) = %d, want 1984", year)
	}
}

func TestRdnToDateGDRoundTrip(t *testing.T) {
	for _, rdn := range []int32{-5000000, -1, 0, 1, ucal.RdnUnix, 730486, 5000000} {
		cd, ok := ucal.RdnToDateGD(rdn)
		if !ok {
			t.Fatalf("RdnToDateGD(%d) reported overflow unexpectedly", rdn)
		}
		back := ucal.DateToRdnGD(cd.Year, int16(cd.Month), int16(cd.MDay))
		if back != rdn {
			t.Errorf("round-trip %d -> %+v -> %d, want %d", rdn, cd, back, rdn)
		}
	}
}

func TestYearStartGDLeapSpacing(t *testing.T) {
	for y := int16(-200); y < 200; y++ {
		delta := ucal.YearStartGD(y+1) - ucal.YearStartGD(y)
		wantLeap := ucal.IsLeapYearGD(int32(y))
		if wantLeap && delta != 366 {
			t.Errorf("year %d is leap but YearStartGD delta = %d", y, delta)
		}
		if !wantLeap && delta != 365 {
			t.Errorf("year %d is not leap but YearStartGD delta = %d", y, delta)
		}
	}
}
