package karatsuba

type RandSource interface {
	Uint64() uint64
}

// RandDigits generates a random Digits of up to n significant digits from an
// external source. The number of digits is chosen uniformly first, so short
// values are as likely as long ones.
func RandDigits(source RandSource, n int) Digits {
	if n <= 0 {
		return Digits{0}
	}
	ln := int(source.Uint64() % uint64(n+1))
	if ln == 0 {
		return Digits{0}
	}

	out := make(Digits, ln)
	for i := range out {
		out[i] = uint8(source.Uint64() % 10)
	}
	if out[0] == 0 {
		out[0] = 1 + uint8(source.Uint64()%9)
	}
	return out
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Digits) Digits {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Digits) Digits {
	if a.Cmp(b) >= 0 {
		return a.Normalize()
	}
	return b.Normalize()
}

func Smaller(a, b Digits) Digits {
	if a.Cmp(b) <= 0 {
		return a.Normalize()
	}
	return b.Normalize()
}
