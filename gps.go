package ucal

import "math"

// GPS/GNSS raw time-stamp handling, spec.md §4.8. Grounded on
// original_source/include/ucal/gpsdate.h and src/gpsdate.c. As with ntp.go,
// the "no base given -> use current system time" fallback the C original
// offers for GpsMapRaw2 is not carried over, since this library performs no
// I/O; callers always supply an explicit base.

// GpsRaw is a packed raw GPS time stamp: a 10-bit week number within the
// current GPS era and a 20-bit time-in-week in seconds.
type GpsRaw struct {
	W uint16 // GPS week, [0,1023]
	T uint32 // time in week, seconds, [0,604799]
}

// GpsMapTime maps a POSIX time value, corrected by a caller-supplied leap
// second offset ls, into a raw GPS time stamp.
func GpsMapTime(tt int64, ls int16) GpsRaw {
	secs := int32(tt % (1024 * 604800))
	secs -= int32(SysPhiGPS)
	secs += int32(ls)

	qr := DivFloorI32(secs, 604800)
	return GpsRaw{W: uint16(uint32(qr.Q) & 1023), T: qr.R}
}

// GpsMapRaw1 unfolds a raw GPS time stamp into an RDN and time-of-day, by
// remapping the day count into the 1024-week period starting at baseRdn
// (clamped up to rdnGPS). Reports ErrRange via LastError and clamps the
// returned day to math.MaxInt32 on overflow.
func GpsMapRaw1(w uint16, t uint32, ls int16, baseRdn int32) I32DivT {
	clearLastError()
	dt := SubDivFloorI32(int32(t), int32(ls), 86400)

	days := int32((uint32(w)&1023)*7) + dt.Q + PhiGPS

	if baseRdn < RdnGPS {
		baseRdn = RdnGPS
	}

	rem := SubDivFloorI32(days+1, baseRdn, 7*1024).R

	if rem > uint32(math.MaxInt32)-uint32(baseRdn) {
		setLastError(rangeErr("gps: unfolded RDN overflows int32"))
		dt.Q = math.MaxInt32
	} else {
		dt.Q = baseRdn + int32(rem)
	}
	return dt
}

// GpsMapRaw2 unfolds a raw GPS time stamp into a POSIX time value, choosing
// the representative in the 1024-week cycle starting at base (clamped up to
// sysPhiGPS), i.e. the result lies in [base, base+1024*604800).
func GpsMapRaw2(w uint16, t uint32, ls int16, base int64) int64 {
	const wcycle = int32(604800)
	const fcycle = int64(604800) * 1024

	secs := int32(uint32(w)&1023)*wcycle + int32(t) - int32(ls) + int32(SysPhiGPS)

	tbase := base
	if tbase < int64(SysPhiGPS) {
		tbase = int64(SysPhiGPS)
	}

	r := int64(secs) - tbase
	q := floorDivInt64(r, fcycle)
	rem := int32(r - q*fcycle)

	return tbase + int64(rem)
}

// GpsRemapRdn remaps rdn into the 1024-week period starting at baseRdn.
// Reports ErrRange via LastError and clamps to math.MaxInt32 on overflow.
func GpsRemapRdn(rdn, baseRdn int32) int32 {
	clearLastError()
	qr := SubDivFloorI32(rdn, baseRdn, 1024*7)
	if qr.R > uint32(math.MaxInt32)-uint32(baseRdn) {
		setLastError(rangeErr("gps: remapped RDN overflows int32"))
		return math.MaxInt32
	}
	return baseRdn + int32(qr.R)
}

// GpsFullYear reconstructs a full calendar year from a possibly 2-digit GPS
// year. Years >= 1980 are returned unchanged. Otherwise, if wd is a valid
// weekday (in [1,7]), inverse Zeller's congruence is tried first to recover a
// year in [1980,2379]; failing that (or with wd unknown), the year is mapped
// by a fixed 1980..2079 split.
func GpsFullYear(y int16, m, d, wd int8) int16 {
	if y >= 1980 {
		return y
	}

	yy := int16(DivFloorI32(int32(y), 100).R)
	if wd >= 1 && wd <= 7 {
		if z, err := RellezGD(uint16(yy), uint16(m), uint16(d), uint16(wd), 1980); err == nil && z >= 1980 {
			return z
		}
	}
	if yy >= 80 {
		return yy + 1900
	}
	return yy + 2000
}

// GpsDateUnfold unfolds a (possibly truncated-year, possibly weekday-tagged)
// GPS calendar date into the RDN of the 1024-week period starting at
// baseday. The date is not validated: a date/weekday combination that is
// impossible in the Gregorian calendar falls back to GpsFullYear's fixed
// year split and is still unfolded. On overflow it returns math.MaxInt32
// and reports ErrRange via LastError, as GpsRemapRdn does.
func GpsDateUnfold(y int16, m, d, wd int8, baseday int32) int32 {
	full := GpsFullYear(y, m, d, wd)
	rdn := DateToRdnGD(full, int16(m), int16(d))
	return GpsRemapRdn(rdn, baseday)
}
