package karatsuba

// Digits is an unsigned decimal integer of arbitrary size, stored most
// significant digit first:
//
//	x = x[0]*10^(n-1) + x[1]*10^(n-2) + ... + x[n-1]
//
// with 0 <= x[i] <= 9. A Digits is normalized if it contains no leading
// zeros; the normalized representation of 0 is Digits{0}. Values returned by
// the arithmetic methods are always normalized. An empty or nil Digits is
// treated as 0.
type Digits []uint8

// nextPow2 returns the smallest power of two >= n, or 1 if n <= 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Normalize returns a copy of d with the leading zeros stripped.
func (d Digits) Normalize() Digits {
	i := 0
	for i < len(d) && d[i] == 0 {
		i++
	}
	if i == len(d) {
		return Digits{0}
	}
	out := make(Digits, len(d)-i)
	copy(out, d[i:])
	return out
}

// normLen returns the number of significant digits in d, without allocating.
// Zero has one significant digit.
func (d Digits) normLen() int {
	for i, v := range d {
		if v != 0 {
			return len(d) - i
		}
	}
	return 1
}

// significant returns the subslice of d with the leading zeros skipped. It
// aliases d and must not be returned to a caller.
func (d Digits) significant() Digits {
	n := d.normLen()
	if n > len(d) {
		return Digits{0}
	}
	return d[len(d)-n:]
}

// Pad returns a copy of d left-padded with zeros until it is length digits
// long. Pad never truncates; if d is already at least length digits long, an
// unmodified copy is returned.
func (d Digits) Pad(length int) Digits {
	if len(d) >= length {
		out := make(Digits, len(d))
		copy(out, d)
		return out
	}
	out := make(Digits, length)
	copy(out[length-len(d):], d)
	return out
}

// MulPow10 returns d*10^k, by appending k zero digits. Zero is returned as
// Digits{0} regardless of k. MulPow10 panics if k is negative.
func (d Digits) MulPow10(k int) Digits {
	if k < 0 {
		panic("karatsuba: negative power of ten")
	}
	if d.IsZero() {
		return Digits{0}
	}
	sig := d.significant()
	out := make(Digits, len(sig)+k)
	copy(out, sig)
	return out
}

func (d Digits) IsZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of significant decimal digits in d. Zero has a
// length of 1.
func (d Digits) Len() int { return d.normLen() }

// Cmp compares the magnitudes of d and n and returns:
//
//	-1 if d <  n
//	 0 if d == n
//	+1 if d >  n
//
// Leading zeros are ignored.
func (d Digits) Cmp(n Digits) int {
	a, b := d.significant(), n.significant()
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func (d Digits) Equal(n Digits) bool            { return d.Cmp(n) == 0 }
func (d Digits) GreaterThan(n Digits) bool      { return d.Cmp(n) > 0 }
func (d Digits) GreaterOrEqualTo(n Digits) bool { return d.Cmp(n) >= 0 }
func (d Digits) LessThan(n Digits) bool         { return d.Cmp(n) < 0 }
func (d Digits) LessOrEqualTo(n Digits) bool    { return d.Cmp(n) <= 0 }
