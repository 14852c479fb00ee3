package ucal

import "fmt"

// CivilDate is the expanded, human-readable form of a day count: a calendar
// year/month/day together with its derived day-of-year, day-of-week and
// leap-year fields. Grounded on spec.md §3's CivilDate record and on the
// teacher's LocalDate split between a compact integer form (the RDN) and an
// expanded value type.
type CivilDate struct {
	Year  int16
	DOY   int16
	DOW   Weekday
	Leap  bool
	Month Month
	MDay  int8
}

// String renders d as "2006-01-02 Monday".
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %s", d.Year, int(d.Month), d.MDay, d.DOW)
}

// GregorianOf returns the CivilDate for year/month/day in the proleptic
// Gregorian calendar. It panics if the date overflows the representable year
// range; use DateToRdnGD and RdnToDateGD directly to avoid panicking.
func GregorianOf(year int16, month Month, day int8) CivilDate {
	rdn := DateToRdnGD(year, int16(month), int16(day))
	cd, ok := RdnToDateGD(rdn)
	if !ok {
		panic("ucal: date overflows representable year range")
	}
	return cd
}

// JulianOf returns the CivilDate for year/month/day in the proleptic Julian
// calendar. It panics if the date overflows the representable year range.
func JulianOf(year int16, month Month, day int8) CivilDate {
	rdn := DateToRdnJD(year, int16(month), int16(day))
	cd, ok := RdnToDateJD(rdn)
	if !ok {
		panic("ucal: date overflows representable year range")
	}
	return cd
}

// WeekDate is the ISO-8601 week-calendar form of a day count: a week-year,
// a week number in [1,53] and a day of week. Grounded on spec.md §3's
// WeekDate record and original_source/src/isoweek.c.
type WeekDate struct {
	Year int16
	Week int16
	DOW  Weekday
}

// String renders w as "2006-W01-1".
func (w WeekDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", w.Year, w.Week, int(w.DOW))
}

// ISOWeekOf returns the WeekDate for the given ISO week-year, week and day of
// week. It panics if the result overflows the representable year range.
func ISOWeekOf(year, week int16, dow Weekday) WeekDate {
	rdn := DateToRdnWD(year, week, int16(dow))
	wd, ok := RdnToDateWD(rdn)
	if !ok {
		panic("ucal: date overflows representable year range")
	}
	return wd
}

// CivilTime is a time-of-day split into hour, minute, second and nanosecond,
// always relative to some day count (an RDN) held alongside it by the caller.
// Grounded on spec.md §3's CivilTime record and
// original_source/src/common.c's day/time split helpers.
type CivilTime struct {
	Hour   int8
	Minute int8
	Second int8
	Nsec   int32
}

// String renders t as "15:04:05.000000000", trimming the fraction when zero.
func (t CivilTime) String() string {
	if t.Nsec == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nsec)
}
