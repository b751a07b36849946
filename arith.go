package karatsuba

// addDigits returns a+b, right-aligned, working from the least significant
// digit up. The result may have a leading zero if there was no final carry.
func addDigits(a, b Digits) Digits {
	la, lb := len(a), len(b)
	n := la
	if lb > n {
		n = lb
	}

	out := make(Digits, n+1)
	var carry uint8
	for i := 0; i < n; i++ {
		var da, db uint8
		if i < la {
			da = a[la-1-i]
		}
		if i < lb {
			db = b[lb-1-i]
		}
		sum := da + db + carry
		if sum >= 10 {
			sum -= 10
			carry = 1
		} else {
			carry = 0
		}
		out[n-i] = sum
	}
	out[0] = carry
	return out
}

// subDigits returns a-b, right-aligned, working from the least significant
// digit up. a must be >= b in magnitude; if it isn't, the result is garbage.
func subDigits(a, b Digits) Digits {
	la, lb := len(a), len(b)
	n := la
	if lb > n {
		n = lb
	}

	out := make(Digits, n)
	var borrow uint8
	for i := 0; i < n; i++ {
		var da, db uint8
		if i < la {
			da = a[la-1-i]
		}
		if i < lb {
			db = b[lb-1-i]
		}

		// performance tweak: compare before subtracting to stay unsigned.
		if da >= db+borrow {
			out[n-1-i] = da - db - borrow
			borrow = 0
		} else {
			out[n-1-i] = da + 10 - db - borrow
			borrow = 1
		}
	}
	return out
}

// Add returns d+n.
func (d Digits) Add(n Digits) Digits {
	return addDigits(d, n).Normalize()
}

// Sub returns d-n. Digits cannot represent negative values, so if n > d, Sub
// panics. See SubSat for a variant that clamps to zero instead.
func (d Digits) Sub(n Digits) Digits {
	if d.LessThan(n) {
		panic("karatsuba: subtraction underflow")
	}
	return subDigits(d, n).Normalize()
}

// SubSat returns d-n, or 0 if n > d.
//
// The clamp hides genuine underflow; only use SubSat when a result of zero
// is what you want for n > d. Use Sub if the caller guarantees d >= n.
func (d Digits) SubSat(n Digits) Digits {
	if d.LessThan(n) {
		return Digits{0}
	}
	return subDigits(d, n).Normalize()
}
