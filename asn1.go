package ucal

// ASN.1 UTCTime (tag 23) and GeneralizedTime (tag 24) timestamp parsing,
// spec.md §4.10. Grounded on original_source/src/tsdecode.c
// (_ucal_pdgroups, _ucal_ptzo, _ucal_validate, _ucal_mktime, _ucal_mklocal,
// ucal_decASN1UtcTime23, ucal_decASN1GenTime24).
//
// The original resolves a timestamp with no zone suffix by feeding a
// broken-down time through the platform's tzdata-backed mktime(), trying
// AUTO/STD/DST in turn. This library never loads time-zone data, so that
// step is a caller-supplied hook instead: a LocalResolver turns a
// broken-down local time into a Unix second count however the caller sees
// fit (e.g. by evaluating a PosixZone with GetInfoLocal2Utc).

// LocalResolver resolves a broken-down local date/time with no explicit UTC
// offset into a Unix second count. It returns ok=false if the caller cannot
// resolve it (parsing then fails, mirroring mktime's error behavior). When
// the parsers are given a nil LocalResolver, zone-less fields are read as UTC.
type LocalResolver func(year int16, month, day, hour, minute, second int8) (int64, bool)

// Timestamp is the result of parsing an ASN.1 time value: a Unix second
// count and the sub-second remainder in nanoseconds.
type Timestamp struct {
	Sec  int64
	Nsec uint32
}

func pdgroups(adg []uint8, ndig int, s string, pos int, end int) (int, int) {
	if end-pos > ndig {
		end = pos + ndig
	}
	cdi := 0
	for pos < end && isDigit(s[pos]) {
		xch := uint8(s[pos] - '0')
		pos++
		if cdi&1 != 0 {
			adg[cdi>>1] = adg[cdi>>1]*10 + xch
		} else {
			adg[cdi>>1] = xch
		}
		cdi++
	}
	return cdi, pos
}

// ptzo parses a trailing ASN.1 zone offset: "Z", or "+HHMM"/"-HHMM".
func ptzo(s string, pos int, end int) (int, int, bool) {
	if pos == end {
		return 0, pos, false
	}
	switch s[pos] {
	case 'Z':
		return 0, pos + 1, true
	case '+', '-':
		neg := s[pos] == '-'
		var tzo [2]uint8
		n, next := pdgroups(tzo[:], 4, s, pos+1, end)
		if n != 4 || tzo[0] > 23 || tzo[1] > 59 {
			return 0, pos, false
		}
		v := int(tzo[0])*60 + int(tzo[1])
		if neg {
			v = -v
		}
		return v, next, true
	default:
		return 0, pos, false
	}
}

func validateAsn1(year int, adg []uint8) bool {
	mon, day := adg[0], adg[1]
	if year < -32768 || year > 32767 || mon < 1 || mon > 12 {
		return false
	}
	if day < 1 || int(day) > int(mdtab[boolToIdx(IsLeapYearGD(int32(year)))][mon-1]) {
		return false
	}
	if adg[2] > 23 || adg[3] > 59 || adg[4] > 60 {
		return false
	}
	return true
}

func boolToIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}

func mkTimeAsn1(year int, adg []uint8, nsec uint32, tzo int) (Timestamp, bool) {
	if !validateAsn1(year, adg) {
		return Timestamp{}, false
	}
	h, m, s := uint32(adg[2]), uint32(adg[3]), uint32(adg[4])

	sec := int64((h*60+m)*60 + s)
	sec += int64(DateToRdnGD(int16(year), int16(adg[0]), int16(adg[1]))-RdnUnix) * 86400

	for nsec >= pow10_9 {
		sec++
		nsec -= pow10_9
	}
	sec -= int64(tzo) * 60
	return Timestamp{Sec: sec, Nsec: nsec}, true
}

func mkLocalAsn1(resolve LocalResolver, year int, adg []uint8, nsec uint32) (Timestamp, bool) {
	if resolve == nil {
		return mkTimeAsn1(year, adg, nsec, 0)
	}
	if !validateAsn1(year, adg) {
		return Timestamp{}, false
	}
	sec, ok := resolve(int16(year), int8(adg[0]), int8(adg[1]), int8(adg[2]), int8(adg[3]), int8(adg[4]))
	if !ok {
		return Timestamp{}, false
	}
	for nsec >= pow10_9 {
		sec++
		nsec -= pow10_9
	}
	return Timestamp{Sec: sec, Nsec: nsec}, true
}

// DecASN1UtcTime23 parses an ASN.1 UTCTime (tag 23) value: YYMMDDHHMM[SS][Z
// | +-HHMM], with the year's century chosen as the one nearest ybase that
// yields the same last two digits (the year lands in [ybase-50, ybase+49]).
// If the string carries no explicit zone,
// resolve is used to map the broken-down local time to a Unix timestamp.
func DecASN1UtcTime23(s string, resolve LocalResolver, ybase int16) (Timestamp, bool) {
	var adg [6]uint8
	n, pos := pdgroups(adg[:], 12, s, 0, len(s))

	switch n {
	case 10:
		adg[5] = 0
	case 12:
		// full precision, nothing to patch
	default:
		return Timestamp{}, false
	}

	frc, pos2 := DecNano(s, pos)
	pos = pos2
	ylo := int32(ybase) - 50
	y := int(ylo) + int(SubDivFloorI32(int32(adg[0]), ylo, 100).R)

	if pos == len(s) {
		return mkLocalAsn1(resolve, y, adg[1:], frc)
	}
	if tzo, _, ok := ptzo(s, pos, len(s)); ok {
		return mkTimeAsn1(y, adg[1:], frc, tzo)
	}
	return Timestamp{}, false
}

// DecASN1GenTime24 parses an ASN.1 GeneralizedTime (tag 24) value:
// YYYYMMDDHHMM[SS][.fraction][Z | +-HHMM]. If the string carries no
// explicit zone, resolve is used to map the broken-down local time to a
// Unix timestamp.
func DecASN1GenTime24(s string, resolve LocalResolver) (Timestamp, bool) {
	var adg [7]uint8
	n, pos := pdgroups(adg[:], 14, s, 0, len(s))

	switch n {
	case 10:
		adg[5] = 0
		adg[6] = 0
	case 12:
		adg[6] = 0
	case 14:
		// full precision, nothing to patch
	default:
		return Timestamp{}, false
	}

	frc, pos2 := DecNano(s, pos)
	pos = pos2
	y := int(adg[0])*100 + int(adg[1])

	if pos == len(s) {
		return mkLocalAsn1(resolve, y, adg[2:], frc)
	}
	if tzo, _, ok := ptzo(s, pos, len(s)); ok {
		return mkTimeAsn1(y, adg[2:], frc, tzo)
	}
	return Timestamp{}, false
}
