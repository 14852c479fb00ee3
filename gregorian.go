package ucal

import "math"

// Gregorian civil calendar, spec.md §4.2. Grounded on
// original_source/src/gregorian.c; the size_t-vs-Granlund-Möller branch in the
// C original (to cope with 32-bit size_t) collapses here to plain int64
// arithmetic, since Go always has a native 64-bit integer type.

// IsLeapYearGD reports whether y is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYearGD(y int32) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// LeapDaysInYearsGD returns the number of leap days elapsed over ey years
// since the Gregorian epoch, well-defined for negative ey under floor
// convention.
func LeapDaysInYearsGD(ey int32) int32 {
	return int32(floorDivInt64(int64(ey), 4) - floorDivInt64(int64(ey), 100) + floorDivInt64(int64(ey), 400))
}

func floorDivInt64(n, d int64) int64 {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// DaysToYearsGD splits an RDN into elapsed years since the epoch (Q) and the
// 0-based day-of-year (R), reporting the leap-year flag for that year.
func DaysToYearsGD(rdn int32) (yd I32DivT, leap bool) {
	n := int64(rdn)*4 - 1
	qc := floorDivInt64(n, 146097)
	sday := uint32(n - qc*146097)

	sday |= 3
	qy := sday / 1461
	sday -= qy * 1461

	leap = (qy&3 == 3) && (qy <= 96+uint32(qc&3))
	return I32DivT{Q: int32(qc)*100 + int32(qy), R: sday >> 2}, leap
}

// RdnToDateGD converts an RDN to a Gregorian CivilDate. It returns false if
// the resulting year overflows the 16-bit year range.
func RdnToDateGD(rdn int32) (CivilDate, bool) {
	yd, leap := DaysToYearsGD(rdn)
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

// DateToRdnGD converts a Gregorian y/m/d to an RDN. The caller is responsible
// for validating the date; out-of-range month/day values are folded through
// the shifted calendar the same way the C original does.
func DateToRdnGD(y, m, d int16) int32 {
	em := MonthsToDays(m)
	ey := int64(y) - 1 + int64(em.Q)
	return int32(ey*365 + int64(LeapDaysInYearsGD(int32(ey))) + int64(em.R) + int64(d) - 306)
}

// YearStartGD returns the RDN of 1 January of year y.
func YearStartGD(y int16) int32 {
	ey := int32(y) - 1
	return ey*365 + LeapDaysInYearsGD(ey) + 1
}

// RellezGD inverts Zeller's congruence: given a 2-digit year, month, day and
// weekday, recover the full year in [ybase, ybase+399] consistent with the
// given weekday. Returns math.MinInt16 with an Invalid error if the input is
// out of range or no century in the range produces that weekday for that
// date, or math.MinInt16 with a Range error if the remapped year overflows
// int16.
func RellezGD(y, m, d, w uint16, ybase int16) (int16, error) {
	// Widened to uint32 throughout: the century-shift multiply below (by
	// 0x12493) overflows uint16 long before it overflows uint32, the same way
	// the C original relies on integer promotion to widen uint16_t operands
	// to (at least) 32 bits before the multiply.
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

	if yy == 99 && mm == 11 && dd == 28 {
		if ww != uint32(Tuesday)%7 {
			return math.MinInt16, invalidErr("rellez: quadricentennial leap day must be a Tuesday")
		}
	} else {
		leapIdx := 0
		if (yy+1)&3 == 0 {
			leapIdx = 1
		}
		if dd >= uint32(sdtab[leapIdx][mm]) {
			return math.MinInt16, invalidErr("rellez: day out of range for month")
		}
	}

	dd += yy + (yy >> 2)
	dd += (mm*83 + 16) >> 5

	c := ((dd + 7 + uint32(Wednesday) - ww) * 0x12493 >> 14) & 7
	if c >= 4 {
		return math.MinInt16, invalidErr("rellez: no solution for given weekday")
	}

	if mm > 9 {
		if yy++; yy >= 100 {
			yy -= 100
			c = (c + 1) & 3
		}
	}
	yy += c * 100

	rem := SubDivFloorI32(int32(yy), int32(ybase), 400).R
	if rem > uint32(math.MaxInt16)-uint32(ybase) {
		return math.MinInt16, rangeErr("rellez: remapped year overflows int16")
	}
	return ybase + int16(rem), nil
}
