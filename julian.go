package ucal

import "math"

// Julian civil calendar, spec.md §4.3. Mirrors gregorian.go with simpler
// leap-year arithmetic. Grounded on original_source/src/julian.c.

// IsLeapYearJD reports whether y is a leap year in the proleptic Julian
// calendar (every 4th year, no centennial exception).
func IsLeapYearJD(y int32) bool {
	return y%4 == 0
}

// LeapDaysInYearsJD returns the number of leap days elapsed over ey years
// since the Julian epoch.
func LeapDaysInYearsJD(ey int32) int32 {
	return Asr32(ey, 2)
}

// DaysToYearsJD splits an RDN (Julian) into elapsed years (Q) and the 0-based
// day-of-year (R), reporting the leap-year flag.
func DaysToYearsJD(rdn int32) (yd I32DivT, leap bool) {
	n := int64(rdn)*4 + 7
	qy := floorDivInt64(n, 1461)
	sday := uint32(n - qy*1461)

	sday |= 3
	leap = uint32(qy)&3 == 3

	return I32DivT{Q: int32(qy), R: sday >> 2}, leap
}

// RdnToDateJD converts an RDN to a Julian CivilDate. Returns false if the
// resulting year overflows the 16-bit year range.
func RdnToDateJD(rdn int32) (CivilDate, bool) {
	yd, leap := DaysToYearsJD(rdn)
	year := int64(yd.Q) + 1
	if year < -32768 || year > 32767 {
		return CivilDate{}, false
	}

	md := DaysToMonth(yd.R, leap)
	return CivilDate{
		Year:  int16(year),
		DOY:   int16(yd.R + 1),
		DOW:   Weekday(SubMod7(rdn, 1) + 1),
		Leap:  leap,
		Month: Month(md.Q + 1),
		MDay:  int8(md.R + 1),
	}, true
}

// DateToRdnJD converts a Julian y/m/d to an RDN.
func DateToRdnJD(y, m, d int16) int32 {
	em := MonthsToDays(m)
	ey := int64(y) - 1 + int64(em.Q)
	return int32(ey*365 + int64(LeapDaysInYearsJD(int32(ey))) + int64(em.R) + int64(d) - 308)
}

// YearStartJD returns the RDN of 1 January of Julian year y.
func YearStartJD(y int16) int32 {
	ey := int32(y) - 1
	return ey*365 + LeapDaysInYearsJD(ey) + 1
}

// RellezJD inverts Zeller's congruence for the Julian calendar over a
// 700-year period (the LCM of the 100-year century length and the 7-day
// week).
func RellezJD(y, m, d, w uint16, ybase int16) (int16, error) {
	yy, mm, dd, ww := uint32(y)%100, uint32(m), uint32(d)-1, uint32(w)%7
	if mm < 1 || mm > 12 || dd > 32 {
		return math.MinInt16, invalidErr("rellez: month or day out of range")
	}

	mm += 9
	if mm >= 12 {
		mm -= 12
	} else if yy--; yy > 100 {
		yy += 100
	}

	leapIdx := 0
	if (yy+1)&3 == 0 {
		leapIdx = 1
	}
	if dd >= uint32(sdtab[leapIdx][mm]) {
		return math.MinInt16, invalidErr("rellez: day out of range for month")
	}

	dd += yy + (yy >> 2)
	dd += (mm*83 + 16) >> 5

	c := (dd + 7 + uint32(Monday) - ww) % 7

	if mm > 9 {
		if yy++; yy >= 100 {
			yy -= 100
			c = (c + 1) % 7
		}
	}
	yy += c * 100

	rem := SubDivFloorI32(int32(yy), int32(ybase), 700).R
	if rem > uint32(math.MaxInt16)-uint32(ybase) {
		return math.MinInt16, rangeErr("rellez: remapped year overflows int16")
	}
	return ybase + int16(rem), nil
}
