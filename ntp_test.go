package ucal_test

import (
	"testing"

	"github.com/nwtime/ucal"
)

func TestNtpEpochRoundTripZeroPivot(t *testing.T) {
	if got := ucal.NtpToTime(ucal.TimeToNtp(0), 0); got != 0 {
		t.Errorf("NtpToTime(TimeToNtp(0), 0) = %d, want 0", got)
	}
}

func TestNtpEpochRoundTripLargePivot(t *testing.T) {
	// pivot = RDN(2024-08-18)*86400 - rdnUNIX*86400, i.e. a Unix second count
	// in 2024, still below 2^31, so NTP second 0 unfolds into the next NTP
	// era (2036) rather than back to 1900.
	rdn2024 := ucal.DateToRdnGD(2024, 8, 18)
	pivot := int64(rdn2024-ucal.RdnUnix) * 86400

	got := ucal.NtpToTime(0, pivot)

	rdn1900 := ucal.RdnNTP
	want := int64(rdn1900-ucal.RdnUnix)*86400 + (int64(1) << 32)
	if got != want {
		t.Errorf("NtpToTime(0, %d) = %d, want %d", pivot, got, want)
	}
	if back := ucal.TimeToNtp(got); back != 0 {
		t.Errorf("TimeToNtp(%d) = %d, want 0", got, back)
	}
}
