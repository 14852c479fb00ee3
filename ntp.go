package ucal

// NTP time-scale mapping, spec.md §4.7. Grounded on
// original_source/include/ucal/ntpdate.h and src/ntpdate.c. The C original
// falls back to time(NULL) when no pivot is supplied; that fallback is a
// concession to convenience this library does not make, since it performs no
// I/O of any kind — callers must always supply an explicit pivot.

// TimeToNtp maps a POSIX second count onto the NTP time scale (mod 2^32).
func TimeToNtp(tt int64) uint32 {
	return uint32(tt) - SysPhiNTP
}

// NtpToTime maps a 32-bit NTP seconds value, of undefined era, back onto the
// POSIX time scale, choosing the representative in [pivot-2^31, pivot+2^31)
// nearest the given pivot. For a pivot below 2^31 the window is [0, 2^32)
// instead, so the result is never before the POSIX epoch.
func NtpToTime(secs uint32, pivot int64) int64 {
	var tbase int64
	if pivot > 0x7fffffff {
		tbase = pivot - 0x80000000
	}

	u := secs + SysPhiNTP
	u -= uint32(tbase)
	return tbase + int64(u)
}
