package ucal

// Shared month-length tables and the shifted-calendar helpers both the
// Gregorian and Julian day kernels build on. Grounded on
// original_source/src/common.c (_ucal_mdtab, _ucal_sdtab, ucal_DaysToMonth,
// ucal_MonthsToDays).

// mdtab holds the regular (January-first), zero-based month lengths, indexed
// [isLeap][month-1].
var mdtab = [2][12]uint8{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// sdtab holds the shifted (March-first), zero-based month lengths used by
// the inverse-Zeller validation, indexed [isLeap][shiftedMonth-1].
var sdtab = [2][12]uint8{
	{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28},
	{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 29},
}

// DaysToMonth splits elapsed days in a year (0-based) into a 0-based elapsed
// month and the remaining 0-based day of month, using the unshifted
// (January-first) calendar; it therefore needs the leap-year indicator.
func DaysToMonth(ed uint32, isLeap bool) I32DivT {
	skipdays := uint32(1)
	if !isLeap {
		skipdays = 2
	}
	if ed >= 61-skipdays {
		ed += skipdays
	}
	m := (ed*67 + 32) >> 11
	ed -= (m*489 + 8) >> 4
	return I32DivT{Q: int32(m), R: ed}
}

// MonthsToDays shifts a calendar month to the March-first calendar, returning
// the (possibly negative) year carry in Q and the accumulated days at the
// start of that shifted month in R.
func MonthsToDays(m int16) I32DivT {
	em := int32(m) + 9
	qm := em / 12
	rm := em % 12
	if rm < 0 {
		rm += 12
		qm--
	}
	return I32DivT{Q: qm, R: uint32((979*rm + 16) >> 5)}
}
