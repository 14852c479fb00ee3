package ucal_test

import (
	"testing"

	"github.com/nwtime/ucal"
)

func TestCivilDateString(t *testing.T) {
	cd := ucal.GregorianOf(2001, ucal.January, 1)
	if got, want := cd.String(), "2001-01-01 Monday"; got != want {
		t.Errorf("CivilDate.String() = %q, want %q", got, want)
	}
}

func TestJulianOfReformEve(t *testing.T) {
	// spec.md scenario 3: 1582-10-04 Julian is the day before the reform.
	cd := ucal.JulianOf(1582, ucal.October, 4)
	if cd.Year != 1582 || cd.Month != ucal.October || cd.MDay != 4 {
		t.Errorf("JulianOf(1582,Oct,4) = %+v", cd)
	}
}

func TestWeekDateString(t *testing.T) {
	wd := ucal.ISOWeekOf(2024, 1, ucal.Monday)
	if got, want := wd.String(), "2024-W01-1"; got != want {
		t.Errorf("WeekDate.String() = %q, want %q", got, want)
	}
}

func TestCivilTimeStringTrimsZeroFraction(t *testing.T) {
	ct := ucal.CivilTime{Hour: 13, Minute: 45, Second: 30}
	if got, want := ct.String(), "13:45:30"; got != want {
		t.Errorf("CivilTime.String() = %q, want %q", got, want)
	}
}

func TestCivilTimeStringWithFraction(t *testing.T) {
	ct := ucal.CivilTime{Hour: 13, Minute: 45, Second: 30, Nsec: 500000000}
	if got, want := ct.String(), "13:45:30.500000000"; got != want {
		t.Errorf("CivilTime.String() = %q, want %q", got, want)
	}
}

func TestGregorianOfHandlesBoundaryYear(t *testing.T) {
	// int16's max year round-trips cleanly; GregorianOf must not panic here.
	cd := ucal.GregorianOf(32767, ucal.December, 31)
	if cd.Year != 32767 || cd.Month != ucal.December || cd.MDay != 31 {
		t.Errorf("GregorianOf(32767,Dec,31) = %+v", cd)
	}
}

func TestISOWeekOfHandlesWeek53(t *testing.T) {
	// 2020 is a leap year starting on Wednesday, so it has a 53rd ISO week.
	wd := ucal.ISOWeekOf(2020, 53, ucal.Sunday)
	if wd.Year != 2020 || wd.Week != 53 || wd.DOW != ucal.Sunday {
		t.Errorf("ISOWeekOf(2020,53,Sunday) = %+v", wd)
	}
}
