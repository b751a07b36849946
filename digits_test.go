package karatsuba

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestNextPow2(t *testing.T) {
	for _, tc := range []struct {
		in, out int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{127, 128},
		{128, 128},
		{129, 256},
	} {
		t.Run(fmt.Sprintf("%d=%d", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustExact(tc.out, nextPow2(tc.in))
		})
	}
}

func TestDigitsNormalize(t *testing.T) {
	for idx, tc := range []struct {
		in  Digits
		out Digits
	}{
		{nil, Digits{0}},
		{Digits{}, Digits{0}},
		{ds("0"), ds("0")},
		{ds("0000"), ds("0")},
		{ds("0001"), ds("1")},
		{ds("1000"), ds("1000")},
		{ds("0102030"), ds("102030")},
		{ds("9"), ds("9")},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.in.Normalize()
			tt.MustEqual(tc.out, result)

			// idempotent:
			tt.MustEqual(result, result.Normalize())
		})
	}
}

func TestDigitsNormalizeRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		ln := globalRNG.Intn(30)
		v := make(Digits, ln)
		for j := range v {
			// Bias towards zeros so there are plenty of leading ones:
			if globalRNG.Intn(3) > 0 {
				v[j] = uint8(globalRNG.Intn(10))
			}
		}

		n := v.Normalize()
		tt.MustEqual(n, n.Normalize())
		tt.MustAssert(len(n) >= 1)
		tt.MustAssert(n[0] != 0 || len(n) == 1, "leading zero in %v", n)
		tt.MustExact(0, v.Cmp(n))
	}
}

func TestDigitsNormalizeDoesNotAlias(t *testing.T) {
	tt := assert.WrapTB(t)
	in := ds("0123")
	out := in.Normalize()
	out[0] = 9
	tt.MustEqual(ds("0123"), in)
}

func TestDigitsPad(t *testing.T) {
	for idx, tc := range []struct {
		in  Digits
		ln  int
		out Digits
	}{
		{ds("1"), 1, ds("1")},
		{ds("1"), 4, ds("0001")},
		{ds("123"), 4, ds("0123")},
		{ds("12345"), 4, ds("12345")}, // never truncates
		{ds("0012"), 2, ds("0012")},   // never normalizes
		{Digits{}, 2, ds("00")},
		{nil, 1, ds("0")},
	} {
		t.Run(fmt.Sprintf("%d/%v,%d", idx, tc.in, tc.ln), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.Pad(tc.ln))
		})
	}
}

func TestDigitsPadReturnsCopy(t *testing.T) {
	tt := assert.WrapTB(t)
	in := ds("1234")
	out := in.Pad(2)
	out[0] = 9
	tt.MustEqual(ds("1234"), in)
}

func TestDigitsMulPow10(t *testing.T) {
	for idx, tc := range []struct {
		in  Digits
		k   int
		out Digits
	}{
		{ds("1"), 0, ds("1")},
		{ds("1"), 3, ds("1000")},
		{ds("123"), 2, ds("12300")},
		{ds("00123"), 2, ds("12300")},
		{ds("0"), 5, ds("0")},
		{ds("0000"), 5, ds("0")},
		{nil, 3, ds("0")},
	} {
		t.Run(fmt.Sprintf("%d/%v*10^%d", idx, tc.in, tc.k), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.MulPow10(tc.k))
		})
	}
}

func TestDigitsMulPow10ScaleLaw(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		v := RandDigits(globalRNG, 30).Pad(globalRNG.Intn(40))
		k := globalRNG.Intn(20)

		expected := "0"
		if !v.IsZero() {
			expected = v.Normalize().String() + strings.Repeat("0", k)
		}
		tt.MustEqual(expected, v.MulPow10(k).String(), "%v * 10^%d", v, k)
	}
}

func TestDigitsMulPow10NegativePanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustEqual("karatsuba: negative power of ten", recover())
	}()
	ds("1").MulPow10(-1)
}

func TestDigitsCmp(t *testing.T) {
	for _, tc := range []struct {
		a, b Digits
		out  int
	}{
		{ds("0"), ds("0"), 0},
		{nil, ds("0"), 0},
		{ds("000"), Digits{}, 0},
		{ds("1"), ds("0"), 1},
		{ds("0"), ds("1"), -1},
		{ds("10"), ds("9"), 1},
		{ds("9"), ds("10"), -1},
		{ds("0009"), ds("10"), -1},
		{ds("123"), ds("0123"), 0},
		{ds("123"), ds("124"), -1},
		{ds("124"), ds("123"), 1},
		{ds("5678"), ds("1234"), 1},
	} {
		t.Run(fmt.Sprintf("%v<=>%v=%d", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustExact(tc.out, tc.a.Cmp(tc.b))
			tt.MustExact(tc.out == 0, tc.a.Equal(tc.b))
			tt.MustExact(tc.out < 0, tc.a.LessThan(tc.b))
			tt.MustExact(tc.out <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustExact(tc.out > 0, tc.a.GreaterThan(tc.b))
			tt.MustExact(tc.out >= 0, tc.a.GreaterOrEqualTo(tc.b))
		})
	}
}

func TestDigitsLen(t *testing.T) {
	for _, tc := range []struct {
		in  Digits
		out int
	}{
		{nil, 1},
		{ds("0"), 1},
		{ds("000"), 1},
		{ds("007"), 1},
		{ds("1234"), 4},
		{ds("01234"), 4},
	} {
		t.Run(fmt.Sprintf("len(%v)=%d", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustExact(tc.out, tc.in.Len())
		})
	}
}

func TestDigitsIsZero(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(Digits(nil).IsZero())
	tt.MustAssert(ds("0").IsZero())
	tt.MustAssert(ds("0000").IsZero())
	tt.MustAssert(!ds("0001").IsZero())
	tt.MustAssert(!ds("10").IsZero())
}
