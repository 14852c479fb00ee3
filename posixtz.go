package ucal

// POSIX time-zone string parsing and UTC<->local conversion, spec.md §4.9.
// Grounded on original_source/include/ucal/tzposix.h and src/tzposix.c.

// PosixRule is a single POSIX TZ transition rule: either a fixed month/day
// (WDay == 0, MDMW is the day of month, Month always 1 for the plain 'n'
// day-of-year form, in which case MDMW is the 0-based day of year plus one),
// a Julian day-of-year (WDay == 0, Month/MDMW hold the real calendar month
// and day derived from that day number), or a week-of-month/weekday rule
// (WDay in [1,7], MDMW the week number in [1,5] with 5 meaning "last").
type PosixRule struct {
	Month int8
	MDMW  int16
	WDay  Weekday
	TTLoc int16 // transition time, minutes since local midnight
}

// PosixZone is a parsed POSIX time-zone specification: one or two named
// zones (standard and, if present, daylight-saving), their UTC offsets in
// minutes (UTC minus STD/DST local time; negative east of Greenwich), and the two
// transition rules bounding the daylight-saving period. A zone with no DST
// component has a zero StdRule.Month/DstRule.Month.
type PosixZone struct {
	StdName string
	DstName string
	StdOffs int16
	DstOffs int16
	StdRule PosixRule
	DstRule PosixRule
}

type tzParser struct {
	s   string
	pos int
}

func (p *tzParser) peek() int {
	if p.pos >= len(p.s) {
		return -1
	}
	return int(p.s[p.pos])
}

func (p *tzParser) parseChar(ch byte) bool {
	if p.pos >= len(p.s) {
		return false
	}
	if p.s[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

func isUpper(c int) bool  { return c >= 'A' && c <= 'Z' }
func isDigitB(c int) bool { return c >= '0' && c <= '9' }

func (p *tzParser) parseName() (string, bool) {
	c := p.peek()
	head := p.pos
	if c == '<' {
		p.pos++
		for p.pos < len(p.s) {
			c = int(p.s[p.pos])
			if c == '>' {
				name := p.s[head+1 : p.pos]
				p.pos++
				return name, true
			}
			if c == '<' {
				break
			}
			p.pos++
		}
		p.pos = head
		return "", false
	}
	if isUpper(c) {
		for p.pos < len(p.s) && isUpper(int(p.s[p.pos])) {
			p.pos++
		}
		if p.pos-head >= 3 {
			return p.s[head:p.pos], true
		}
	}
	p.pos = head
	return "", false
}

// parseSign consumes an optional leading sign. defRes is the result when no
// sign character is present at all.
func (p *tzParser) parseSign(defRes bool) (neg bool, ok bool) {
	switch p.peek() {
	case '-':
		neg = true
		fallthrough
	case '+':
		p.pos++
		defRes = true
	}
	return neg, defRes
}

// parseNum parses an unsigned decimal number, stopping once the accumulator
// reaches 100 or a non-digit is seen. Fails if no digit was consumed.
func (p *tzParser) parseNum() (int, bool) {
	tmp := 0
	ok := false
	for tmp < 100 && isDigitB(p.peek()) {
		tmp = 10*tmp + (p.peek() - '0')
		p.pos++
		ok = true
	}
	return tmp, ok
}

// parseTime parses an H[:M[:S]] time value. The sign is optional in both
// zone-offset and rule-transition-time contexts, defaulting to positive when
// absent; isRuleTime only widens the valid hour range from [0,24) to
// [0,168). In both contexts minutes must be below 60 and seconds must be 0.
func (p *tzParser) parseTime(isRuleTime bool) (int16, bool) {
	neg, ok := p.parseSign(true)
	var hms [3]int
	if ok {
		var v int
		v, ok = p.parseNum()
		hms[0] = v
		idx := 0
		for ok {
			idx++
			if idx >= 3 || !p.parseChar(':') {
				break
			}
			v, ok = p.parseNum()
			hms[idx] = v
		}
	}
	if ok {
		limit := 24
		if isRuleTime {
			limit = 168
		}
		ok = hms[0] < limit && hms[1] < 60 && hms[2] == 0
	}
	val := 0
	if ok {
		val = 60*hms[0] + hms[1]
	}
	if neg {
		val = -val
	}
	return int16(val), ok
}

func (p *tzParser) parseRule() (PosixRule, bool) {
	var rule PosixRule
	ok := false
	switch c := p.peek(); {
	case c == 'M':
		p.pos++
		var month, week, wday int
		ok = true
		if v, k := p.parseNum(); k {
			month = v
		} else {
			ok = false
		}
		ok = ok && p.parseChar('.')
		if v, k := p.parseNum(); ok && k {
			week = v
		} else {
			ok = false
		}
		ok = ok && p.parseChar('.')
		if v, k := p.parseNum(); ok && k {
			wday = v
		} else {
			ok = false
		}
		ok = ok && month >= 1 && month <= 12 && week >= 1 && week <= 5 && wday <= 7
		if ok {
			rule.Month = int8(month)
			rule.MDMW = int16(week)
			rule.WDay = Weekday((wday+6)%7 + 1)
		}
	case c == 'J':
		p.pos++
		if isDigitB(p.peek()) {
			if v, k := p.parseNum(); k && v >= 1 && v <= 365 {
				yd := DaysToMonth(uint32(v-1), false)
				rule.Month = int8(yd.Q + 1)
				rule.MDMW = int16(yd.R + 1)
				rule.WDay = 0
				ok = true
			}
		}
	case isDigitB(c):
		if v, k := p.parseNum(); k && v <= 365 {
			rule.Month = 1
			rule.MDMW = int16(v + 1)
			rule.WDay = 0
			ok = true
		}
	}
	if ok && p.parseChar('/') {
		rule.TTLoc, ok = p.parseTime(true)
	} else {
		rule.TTLoc = 120
	}
	return rule, ok
}

// ParsePosixZone parses a POSIX TZ-style string (with the GNU <quoted-name>
// extension) starting at the beginning of s. It returns the parsed zone, the
// number of bytes of s consumed, and whether parsing succeeded. Parsing may
// succeed without consuming the whole string, since several trailing
// components are optional; check the consumed length if that matters.
func ParsePosixZone(s string) (PosixZone, int, bool) {
	var zone PosixZone
	p := &tzParser{s: s}

	ok := false
	if name, k := p.parseName(); k {
		zone.StdName = name
		if off, k := p.parseTime(false); k {
			zone.StdOffs = off
			ok = true
		}
	}
	if !ok {
		return zone, p.pos, false
	}

	if name, k := p.parseName(); k {
		zone.DstName = name

		// US-default DST rules: 2nd Sunday in March for the STD->DST
		// transition, 1st Sunday in November for DST->STD, both at 02:00
		// local wallclock. Either or both may be overwritten below.
		zone.DstRule = PosixRule{Month: 3, MDMW: 2, WDay: Sunday, TTLoc: 120}
		zone.StdRule = PosixRule{Month: 11, MDMW: 1, WDay: Sunday, TTLoc: 120}

		switch c := p.peek(); {
		case c == '+' || c == '-' || isDigitB(c):
			zone.DstOffs, ok = p.parseTime(false)
		default:
			zone.DstOffs = zone.StdOffs - 60
			ok = true
		}

		if ok && p.peek() == ',' {
			ok = p.parseChar(',')
			if ok {
				zone.DstRule, ok = p.parseRule()
			}
			ok = ok && p.parseChar(',')
			if ok {
				zone.StdRule, ok = p.parseRule()
			}
		}

		// The all-year-DST special case: a dst rule of "J1/0" marks a zone
		// that is in DST permanently, with no STD period at all.
		if ok && zone.DstRule.Month == 1 && zone.DstRule.MDMW == 1 &&
			zone.DstRule.WDay == 0 && zone.DstRule.TTLoc == 0 {
			zone.StdRule = PosixRule{}
		}
	}

	return zone, p.pos, ok
}

// ConvCtx caches, for one POSIX zone and one calendar year, the transition
// instants needed to answer UTC<->local conversion queries, recomputing the
// frame only when a query falls outside the cached year (with a day of
// slack on either side). It is not safe for concurrent use by multiple
// goroutines without external synchronization; independent ConvCtx values
// over the same zone may be used concurrently.
type ConvCtx struct {
	zone      *PosixZone
	trLoBound int64
	trHiBound int64
	ttDST     int64
	ttSTD     int64
}

// NewConvCtx returns a ConvCtx over the given zone, with an empty cache.
func NewConvCtx(zone *PosixZone) *ConvCtx {
	return &ConvCtx{zone: zone}
}

func dm2s(days int32, mins int32) int64 {
	return 60 * (int64(days)*1440 + int64(mins))
}

// evalRule evaluates a transition rule for a given calendar year, returning
// the RDN of the transition day.
func evalRule(rule PosixRule, year int16) int32 {
	if rule.WDay != 0 {
		if rule.MDMW == 5 {
			rdn := DateToRdnGD(year, int16(rule.Month)+1, 0)
			return WdLE(rdn, rule.WDay)
		}
		rdn := DateToRdnGD(year, int16(rule.Month), 1)
		rdn = WdGE(rdn, rule.WDay)
		return rdn + int32(rule.MDMW-1)*7
	}
	return DateToRdnGD(year, int16(rule.Month), rule.MDMW)
}

const epochYear = 1970

func (ctx *ConvCtx) update(tsfrom int64) {
	// A zero (never computed) frame has equal bounds and is never reused.
	if ctx.trLoBound < ctx.trHiBound &&
		tsfrom >= ctx.trLoBound-86400 && tsfrom < ctx.trHiBound+86400 {
		return
	}

	year := tsfrom / 31556952
	if tsfrom < year*31556952 {
		year--
	}
	year += epochYear

	ystart := YearStartGD(int16(year)) - RdnUnix
	ysnext := YearStartGD(int16(year+1)) - RdnUnix
	dayDST := evalRule(ctx.zone.DstRule, int16(year)) - RdnUnix
	daySTD := evalRule(ctx.zone.StdRule, int16(year)) - RdnUnix

	ctx.trLoBound = dm2s(ystart, int32(min(ctx.zone.StdOffs, ctx.zone.DstOffs)))
	ctx.trHiBound = dm2s(ysnext, int32(max(ctx.zone.StdOffs, ctx.zone.DstOffs)))
	ctx.ttDST = dm2s(dayDST, int32(ctx.zone.DstRule.TTLoc)+int32(ctx.zone.StdOffs))
	ctx.ttSTD = dm2s(daySTD, int32(ctx.zone.StdRule.TTLoc)+int32(ctx.zone.DstOffs))
}

// CvtHint disambiguates a local->UTC conversion that falls in the spring
// discontinuity (an omitted local time range) or the autumn discontinuity
// (a repeated local time range).
type CvtHint int

const (
	HintNone CvtHint = iota
	HintSTD
	HintDST
	HintHrA
	HintHrB
)

// ConvInfo is the result of a UTC<->local conversion query: whether the
// queried instant falls in daylight-saving time, whether it falls in the
// pre- or post-transition overlap hour, and the offset (in seconds) to add
// to go from the query's native scale to the other.
type ConvInfo struct {
	IsDst bool
	IsHrA bool
	IsHrB bool
	Offs  int32
}

// GetInfoUtc2Local returns the conversion info for mapping a UTC instant to
// local time. This can never fail for a well-formed zone.
func GetInfoUtc2Local(ctx *ConvCtx, tsfrom int64) ConvInfo {
	tzi := ctx.zone
	var info ConvInfo

	switch {
	case tzi.DstRule.Month == 0:
		info.Offs = -int32(tzi.StdOffs) * 60
	case tzi.StdRule.Month == 0:
		info.Offs = -int32(tzi.DstOffs) * 60
		info.IsDst = true
	default:
		ctx.update(tsfrom)

		if ctx.ttDST < ctx.ttSTD {
			info.IsDst = tsfrom >= ctx.ttDST && tsfrom < ctx.ttSTD
		} else {
			info.IsDst = tsfrom >= ctx.ttDST || tsfrom < ctx.ttSTD
		}
		if info.IsDst {
			info.Offs = -int32(tzi.DstOffs) * 60
		} else {
			info.Offs = -int32(tzi.StdOffs) * 60
		}

		var ttCrit int64
		var ttDiff int32
		if tzi.StdOffs >= tzi.DstOffs {
			ttCrit = ctx.ttSTD
			ttDiff = int32(tzi.StdOffs-tzi.DstOffs) * 60
		} else {
			ttCrit = ctx.ttDST
			ttDiff = int32(tzi.DstOffs-tzi.StdOffs) * 60
		}
		info.IsHrA = ttCrit-int64(ttDiff) <= tsfrom && tsfrom < ttCrit
		info.IsHrB = ttCrit <= tsfrom && tsfrom < ttCrit+int64(ttDiff)
	}
	return info
}

// GetInfoLocal2Utc returns the conversion info for mapping a local instant
// to UTC, using hint to disambiguate a local timestamp that falls in the
// spring gap or the autumn overlap. Returns false if the timestamp is
// ambiguous/invalid and hint does not resolve it (HintNone).
func GetInfoLocal2Utc(ctx *ConvCtx, tsfrom int64, hint CvtHint) (ConvInfo, bool) {
	tzi := ctx.zone
	var info ConvInfo

	switch {
	case tzi.DstRule.Month == 0:
		info.Offs = int32(tzi.StdOffs) * 60
		return info, true
	case tzi.StdRule.Month == 0:
		info.Offs = int32(tzi.DstOffs) * 60
		info.IsDst = true
		return info, true
	}

	ctx.update(tsfrom + int64(tzi.StdOffs)*60)

	ttDstA := ctx.ttDST - int64(tzi.StdOffs)*60
	ttDstB := ctx.ttDST - int64(tzi.DstOffs)*60
	ttStdA := ctx.ttSTD - int64(tzi.DstOffs)*60
	ttStdB := ctx.ttSTD - int64(tzi.StdOffs)*60
	if ttDstA > ttDstB {
		ttDstA, ttDstB = ttDstB, ttDstA
	} else {
		ttStdA, ttStdB = ttStdB, ttStdA
	}

	switch {
	case tsfrom >= ttDstA && tsfrom < ttDstB:
		// The hour flags are set only when this range is a repeated
		// (overlap) hour, not an omitted (gap) one.
		overlap := tzi.DstOffs > tzi.StdOffs
		switch hint {
		case HintSTD, HintHrA:
			info.IsDst, info.IsHrA = false, overlap
		case HintDST, HintHrB:
			info.IsDst, info.IsHrB = true, overlap
		default:
			return ConvInfo{}, false
		}
	case tsfrom >= ttStdA && tsfrom < ttStdB:
		overlap := tzi.StdOffs > tzi.DstOffs
		switch hint {
		case HintSTD, HintHrB:
			info.IsDst, info.IsHrB = false, overlap
		case HintDST, HintHrA:
			info.IsDst, info.IsHrA = true, overlap
		default:
			return ConvInfo{}, false
		}
	case ctx.ttDST < ctx.ttSTD:
		info.IsDst = tsfrom >= ttDstB && tsfrom < ttStdA
	default:
		info.IsDst = tsfrom >= ttDstB || tsfrom < ttStdA
	}

	if info.IsDst {
		info.Offs = int32(tzi.DstOffs) * 60
	} else {
		info.Offs = int32(tzi.StdOffs) * 60
	}
	return info, true
}

// GetInfoLocal2Utc_alt resolves an ambiguous local->UTC conversion by
// picking, among the valid UTC candidates, the one nearest to but not after
// pivot; it works well when producer and consumer clocks are roughly in
// sync. If both candidates lie after pivot, the earlier one is picked. It
// never sets IsHrA/IsHrB, and never fails.
func GetInfoLocal2Utc_alt(ctx *ConvCtx, tsfrom, pivot int64) ConvInfo {
	tzi := ctx.zone
	var info ConvInfo

	switch {
	case tzi.DstRule.Month == 0:
		info.Offs = int32(tzi.StdOffs) * 60
		return info
	case tzi.StdRule.Month == 0:
		info.Offs = int32(tzi.DstOffs) * 60
		info.IsDst = true
		return info
	}

	ctx.update(tsfrom + int64(tzi.StdOffs)*60)

	ttDstA := ctx.ttDST - int64(tzi.StdOffs)*60
	ttDstB := ctx.ttDST - int64(tzi.DstOffs)*60
	ttStdA := ctx.ttSTD - int64(tzi.DstOffs)*60
	ttStdB := ctx.ttSTD - int64(tzi.StdOffs)*60
	if ttDstA > ttDstB {
		ttDstA, ttDstB = ttDstB, ttDstA
	} else {
		ttStdA, ttStdB = ttStdB, ttStdA
	}

	ambiguous := (tsfrom >= ttDstA && tsfrom < ttDstB) || (tsfrom >= ttStdA && tsfrom < ttStdB)
	if !ambiguous {
		switch {
		case ctx.ttDST < ctx.ttSTD:
			info.IsDst = tsfrom >= ttDstB && tsfrom < ttStdA
		default:
			info.IsDst = tsfrom >= ttDstB || tsfrom < ttStdA
		}
		if info.IsDst {
			info.Offs = int32(tzi.DstOffs) * 60
		} else {
			info.Offs = int32(tzi.StdOffs) * 60
		}
		return info
	}

	utcSTD := tsfrom - int64(tzi.StdOffs)*60
	utcDST := tsfrom - int64(tzi.DstOffs)*60

	stdOK := utcSTD <= pivot
	dstOK := utcDST <= pivot
	var pickDst bool
	switch {
	case stdOK && dstOK:
		pickDst = utcDST > utcSTD
	case dstOK:
		pickDst = true
	case stdOK:
		pickDst = false
	default:
		pickDst = utcDST < utcSTD
	}

	info.IsDst = pickDst
	if pickDst {
		info.Offs = int32(tzi.DstOffs) * 60
	} else {
		info.Offs = int32(tzi.StdOffs) * 60
	}
	return info
}

// AlignedLocalRange computes the [lo,hi) UTC range, such that lo <= tsfrom <
// hi, of the local-time-aligned period of the given length (in seconds, up
// to one week) and phase shift phi containing tsfrom; the range is clamped
// so it never straddles a DST/STD transition that it would otherwise cross.
// Returns false if period is out of range.
func AlignedLocalRange(ctx *ConvCtx, tsfrom int64, period, phi int32) (lo, hi int64, info ConvInfo, ok bool) {
	if period <= 0 || period > 7*86400 {
		return 0, 0, ConvInfo{}, false
	}
	info = GetInfoUtc2Local(ctx, tsfrom)

	csoff := int32((tsfrom+int64(info.Offs)+int64(phi))%int64(period))
	if csoff < 0 {
		csoff += period
	}
	lo = tsfrom - int64(csoff)
	hi = lo + int64(period)

	tzi := ctx.zone
	if tzi.DstRule.Month != 0 && tzi.StdRule.Month != 0 {
		if lo < ctx.ttDST && tsfrom >= ctx.ttDST {
			lo = ctx.ttDST
		}
		if lo < ctx.ttSTD && tsfrom >= ctx.ttSTD {
			lo = ctx.ttSTD
		}
		if hi > ctx.ttDST && tsfrom < ctx.ttDST {
			hi = ctx.ttDST
		}
		if hi > ctx.ttSTD && tsfrom < ctx.ttSTD {
			hi = ctx.ttSTD
		}
	}
	return lo, hi, info, true
}
