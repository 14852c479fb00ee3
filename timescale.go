package ucal

// Day/time-of-day splitting and the Unix time_t bridge, spec.md §4.6.
// Grounded on original_source/src/common.c (ucal_TimeToDays, ucal_TimeToRdn,
// ucal_DayTimeSplit, ucal_DayTimeMerge). The C original branches on whether
// time_t fits in a machine register to choose between a single native
// division and a chained Granlund-Möller division; Go's int64 always covers
// time_t's range, so only the Granlund-Möller path is needed, and it is
// exercised unconditionally rather than as a 32-bit fallback.

// secsPerDayD, secsPerDayV and secsPerDayS are the normalized divisor,
// reciprocal and shift for dividing by 86400 via DivGM64: 86400 << 15 ==
// 0xa8c00000 brings the divisor into the required [2^31,2^32) range.
const (
	secsPerDayD uint32 = 0xa8c00000
	secsPerDayV uint32 = 0x845c8a0c
	secsPerDayS uint   = 15
)

// TimeToDays splits a Unix time_t value into elapsed days since the epoch
// (Q) and the second-of-day (R, in [0,86400)).
func TimeToDays(tt int64) I64DivT {
	return DivGM64(tt, secsPerDayD, secsPerDayV, secsPerDayS)
}

// TimeToRdn splits a Unix time_t value into its RDN (Q) and second-of-day
// (R, in [0,86400)).
func TimeToRdn(tt int64) I64DivT {
	qr := TimeToDays(tt)
	qr.Q += int64(RdnUnix)
	return qr
}

// DayTimeSplit splits a day-relative second count dt, adjusted by a UTC
// offset ofs (seconds east of UTC), into a CivilTime and a signed day carry:
// floor((dt+ofs)/86400) days, with the CivilTime holding the remainder.
func DayTimeSplit(dt, ofs int32) (CivilTime, int32) {
	qr := SubDivFloorI32(dt, -ofs, 86400)

	m := qr.R / 60
	h := m / 60

	return CivilTime{
		Second: int8(qr.R - m*60),
		Minute: int8(m - h*60),
		Hour:   int8(h),
	}, qr.Q
}

// DayTimeMerge folds an hour/minute/second triple into a single
// day-relative second count, without range-checking the inputs.
func DayTimeMerge(h, m, s int16) int32 {
	return (int32(h)*60+int32(m))*60 + int32(s)
}
