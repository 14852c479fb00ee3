package ucal

// Decimal-fraction decoding, spec.md §4.10. Grounded on
// original_source/src/tsdecode.c (ucal_decNano_raw/ucal_decNano,
// ucal_decFrac_raw/ucal_decFrac).

var pow10tab = [9]uint32{
	100000000, 10000000, 1000000,
	100000, 10000, 1000,
	100, 10, 1,
}

const pow10_9 = uint32(1000000000)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// DecNanoRaw parses a run of decimal digits in s[pos:] as a fractional
// second, rounding (half-to-even on a tie) to nanosecond resolution. It
// returns the parsed value and the position just past the consumed digits.
// Digits beyond the 10th only affect the tie-break, never the value itself.
func DecNanoRaw(s string, pos int) (uint32, int) {
	var nsec uint32
	rnd, nch := 0, 0

	for pos < len(s) && isDigit(s[pos]) {
		xch := int(s[pos] - '0')
		pos++
		nch++
		if nch < 10 {
			nsec = nsec*10 + uint32(xch)
		} else if nch == 10 {
			rnd = xch
		} else if rnd == 5 {
			if xch != 0 {
				rnd++
			}
		}
	}

	if nch > 0 && nch < 9 {
		nsec *= pow10tab[nch-1]
	} else {
		if rnd == 5 && nsec&1 != 0 {
			rnd++
		}
		if rnd > 5 {
			nsec++
		}
	}
	return nsec, pos
}

// DecNano parses an optional ".fraction" of a second, starting at s[pos].
// Returns 0 if pos does not point at a '.'.
func DecNano(s string, pos int) (uint32, int) {
	if pos >= len(s) || s[pos] != '.' {
		return 0, pos
	}
	return DecNanoRaw(s, pos+1)
}

// DecFracRaw parses a run of decimal digits in s[pos:] as a Q0.32 binary
// fraction: U32DivT.R holds the fraction itself (0 <= r < 2^32 representing
// [0,1)) and U32DivT.Q is 1 if rounding carried out past 1.0, 0 otherwise.
// Rounding is to nearest, ties to even; digits beyond the 24th only
// influence the tie-break, through a sticky "dropped nonzero digit" bit.
func DecFracRaw(s string, pos int) (U32DivT, int) {
	const d uint32 = 0xbebc2000 // 3200000000, normalized divisor for /10^8
	const v uint32 = 0x5798ee23

	start := pos
	lnz := pos
	for pos < len(s) && isDigit(s[pos]) {
		if s[pos] != '0' {
			lnz = pos + 1
		}
		pos++
	}
	end := lnz

	drop := false
	if end-start > 24 {
		drop = true
		end = start + 24
	}

	var q, r, xrem uint32
	cur := end
	for cur != start {
		nch := ((cur - start - 1) & 7) + 1
		cur -= nch

		grp := uint32(0)
		for i := 0; i < nch; i++ {
			grp = grp*10 + uint32(s[cur+i]-'0')
		}
		grp *= pow10tab[nch]

		r = (grp << 5) | (q >> 27)
		q = (q << 5) | (xrem >> 27)
		drop = drop || (xrem<<5) != 0

		qr := DivGM(r, q, d, v)
		q = qr.Q
		r = qr.R
		xrem = r
	}

	frac := q
	var carry uint32
	switch {
	case xrem > d>>1:
		frac++
		if frac == 0 {
			carry = 1
		}
	case xrem < d>>1:
		// round down, nothing to do
	case frac&1 != 0 || drop:
		frac++
		if frac == 0 {
			carry = 1
		}
	}
	return U32DivT{Q: carry, R: frac}, pos
}

// DecFrac parses an optional ".fraction" as a Q0.32 binary fraction,
// starting at s[pos]. Returns a zero U32DivT if pos does not point at '.'.
func DecFrac(s string, pos int) (U32DivT, int) {
	if pos >= len(s) || s[pos] != '.' {
		return U32DivT{}, pos
	}
	return DecFracRaw(s, pos+1)
}
