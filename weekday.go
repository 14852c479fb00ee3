package ucal

import "math"

// Nearest-weekday search, spec.md §4.5. Grounded on
// original_source/src/common.c's ucal_WdGT/WdGE/WdLE/WdLT/WdNear. These are
// the "errno-style" operations of spec.md §9: overflow is reported both by
// clamping the return value to math.MaxInt32/math.MinInt32 and by recording
// an ErrRange *Error retrievable via LastError, mirroring the C original's
// use of errno instead of a second return value.

func checkedAdd(rdn int32, shift int64) int32 {
	if int64(rdn)+shift > math.MaxInt32 {
		setLastError(rangeErr("weekday: result overflows RDN range"))
		return math.MaxInt32
	}
	return int32(int64(rdn) + shift)
}

func checkedSub(rdn int32, shift int64) int32 {
	if int64(rdn)-shift < math.MinInt32 {
		setLastError(rangeErr("weekday: result underflows RDN range"))
		return math.MinInt32
	}
	return int32(int64(rdn) - shift)
}

// WdGT returns the RDN of the first occurrence of weekday wd strictly after
// rdn.
func WdGT(rdn int32, wd Weekday) int32 {
	clearLastError()
	shift := int64(SubMod7(int32(wd)-1, rdn)) + 1
	return checkedAdd(rdn, shift)
}

// WdGE returns the RDN of the first occurrence of weekday wd on or after rdn.
func WdGE(rdn int32, wd Weekday) int32 {
	clearLastError()
	shift := int64(SubMod7(int32(wd), rdn))
	return checkedAdd(rdn, shift)
}

// WdLE returns the RDN of the last occurrence of weekday wd on or before rdn.
func WdLE(rdn int32, wd Weekday) int32 {
	clearLastError()
	shift := int64(SubMod7(rdn, int32(wd)))
	return checkedSub(rdn, shift)
}

// WdLT returns the RDN of the last occurrence of weekday wd strictly before
// rdn.
func WdLT(rdn int32, wd Weekday) int32 {
	clearLastError()
	shift := int64(SubMod7(rdn, int32(wd)+1)) + 1
	return checkedSub(rdn, shift)
}

// WdNear returns the RDN of the occurrence of weekday wd nearest to rdn,
// within 3 days, preferring the earlier occurrence on a tie to match the
// direction the search is conducted from the sign of rdn.
func WdNear(rdn int32, wd Weekday) int32 {
	if rdn < 0 {
		return WdLE(rdn+3, wd)
	}
	return WdGE(rdn-3, wd)
}
