package ucal

// BuildDateRdn, spec.md §4 supplement. Grounded on
// original_source/src/common.c (parseDate/ucal_BuildDateRdn), which parses a
// compiler-supplied __DATE__-shaped string ("Mon DD YYYY") into an RDN. The
// compiler-macro extraction itself is out of scope per spec.md §2; this
// keeps only the string-to-RDN half, for a caller that already has such a
// string (e.g. its own build-time constant).

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// BuildDateRdn parses a date of the form "Mon DD YYYY" (the shape of the
// C __DATE__ macro, e.g. "Aug  1 2026") into an RDN. Returns false if str
// does not match that shape or the date is not a valid Gregorian date in
// [1970,9999].
func BuildDateRdn(str string) (int32, bool) {
	fields := splitBuildDate(str)
	if len(fields) != 3 {
		return 0, false
	}

	month := int16(-1)
	for i, abbr := range monthAbbrev {
		if fields[0] == abbr {
			month = int16(i + 1)
			break
		}
	}
	if month < 0 {
		return 0, false
	}

	day, ok := parseUintStrict(fields[1])
	if !ok || day < 1 || day > 31 {
		return 0, false
	}
	year, ok := parseUintStrict(fields[2])
	if !ok || year < 1970 || year > 9999 {
		return 0, false
	}
	if day > int(mdtab[boolToIdx(IsLeapYearGD(int32(year)))][month-1]) {
		return 0, false
	}

	return DateToRdnGD(int16(year), month, int16(day)), true
}

func splitBuildDate(s string) []string {
	var fields []string
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		start := i
		for i < len(s) && s[i] != ' ' {
			i++
		}
		if i > start {
			fields = append(fields, s[start:i])
		}
	}
	return fields
}

func parseUintStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}
