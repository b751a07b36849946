package karatsuba

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"
)

var (
	ErrEmpty        = errors.New("karatsuba: empty input")
	ErrNegative     = errors.New("karatsuba: negative values are not supported")
	ErrInvalidDigit = errors.New("karatsuba: invalid decimal digit")
)

// ParseError is returned by FromString and FromDigits when the input is not
// a well formed non-negative decimal integer. Err is one of ErrEmpty,
// ErrNegative or ErrInvalidDigit.
type ParseError struct {
	Input  string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Input, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

func FromUint32(v uint32) Digits { return FromUint64(uint64(v)) }
func FromUint16(v uint16) Digits { return FromUint64(uint64(v)) }
func FromUint8(v uint8) Digits   { return FromUint64(uint64(v)) }

// FromUint64 creates a normalized Digits from a uint64. 0 becomes Digits{0}.
func FromUint64(v uint64) Digits {
	if v == 0 {
		return Digits{0}
	}

	// math.MaxUint64 has 20 decimal digits:
	var scratch [20]uint8
	i := len(scratch)
	for v > 0 {
		i--
		scratch[i] = uint8(v % 10)
		v /= 10
	}
	out := make(Digits, len(scratch)-i)
	copy(out, scratch[i:])
	return out
}

// FromU128 creates a Digits from a num.U128.
func FromU128(v num.U128) Digits {
	if v.IsUint64() {
		return FromUint64(v.AsUint64())
	}
	return fromDecimal(v.String())
}

// FromUint256 creates a Digits from a uint256.Int. A nil v is treated as 0.
func FromUint256(v *uint256.Int) Digits {
	if v == nil {
		return Digits{0}
	}
	if v.IsUint64() {
		return FromUint64(v.Uint64())
	}
	return fromDecimal(v.Dec())
}

// FromBigInt creates a Digits from a big.Int. Digits cannot be negative, so
// negative values return 0 and set accurate to 'false'.
func FromBigInt(v *big.Int) (out Digits, accurate bool) {
	if v.Sign() < 0 {
		return Digits{0}, false
	}
	if v.IsUint64() {
		return FromUint64(v.Uint64()), true
	}
	return fromDecimal(v.Text(10)), true
}

// FromString creates a Digits from a decimal string. A single leading '+' is
// permitted, as are leading zeros. Anything else that isn't an ASCII digit,
// including whitespace and digit separators, is rejected.
func FromString(s string) (Digits, error) {
	body, offset := s, 0
	if len(body) > 0 {
		switch body[0] {
		case '+':
			body, offset = body[1:], 1
		case '-':
			return nil, &ParseError{Input: s, Offset: 0, Err: ErrNegative}
		}
	}
	if len(body) == 0 {
		return nil, &ParseError{Input: s, Offset: offset, Err: ErrEmpty}
	}

	for i := 0; i < len(body); i++ {
		if c := body[i]; c < '0' || c > '9' {
			return nil, &ParseError{Input: s, Offset: offset + i, Err: ErrInvalidDigit}
		}
	}
	return fromDecimal(body), nil
}

// FromDigits validates a slice of digit values, most significant first, and
// returns a normalized copy. Every element must be in the range 0-9.
func FromDigits(ds []uint8) (Digits, error) {
	if len(ds) == 0 {
		return nil, &ParseError{Input: fmt.Sprint(ds), Err: ErrEmpty}
	}
	for i, v := range ds {
		if v > 9 {
			return nil, &ParseError{Input: fmt.Sprint(ds), Offset: i, Err: ErrInvalidDigit}
		}
	}
	return Digits(ds).Normalize(), nil
}

// fromDecimal converts a string already known to contain only ASCII digits.
func fromDecimal(s string) Digits {
	out := make(Digits, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i] - '0'
	}
	return out.Normalize()
}

// String returns the digits of d, most significant first, with no sign or
// grouping. Leading zeros are preserved; call Normalize first if they are
// unwanted.
func (d Digits) String() string {
	if len(d) == 0 {
		return "0"
	}
	out := make([]byte, len(d))
	for i, v := range d {
		out[i] = '0' + v
	}
	return string(out)
}

func (d Digits) AsBigInt() *big.Int {
	var b big.Int
	b.SetString(d.Normalize().String(), 10)
	return &b
}

// AsU128 converts d to a num.U128. Overflow truncates to num.MaxU128 and sets
// accurate to 'false'.
func (d Digits) AsU128() (out num.U128, accurate bool) {
	if d.IsUint64() {
		return num.U128From64(d.AsUint64()), true
	}
	return num.U128FromBigInt(d.AsBigInt())
}

// AsUint256 converts d to a uint256.Int. If d does not fit, the result is
// truncated and inRange is 'false'.
func (d Digits) AsUint256() (out *uint256.Int, inRange bool) {
	if d.IsUint64() {
		return uint256.NewInt(d.AsUint64()), true
	}
	out, overflow := uint256.FromBig(d.AsBigInt())
	return out, !overflow
}

// AsUint64 truncates d to fit in a uint64. Values outside the range will
// overflow. See IsUint64() if you want to check before you convert.
func (d Digits) AsUint64() (v uint64) {
	for _, x := range d {
		v = v*10 + uint64(x)
	}
	return v
}

// IsUint64 reports whether d can be represented as a uint64.
func (d Digits) IsUint64() bool {
	return d.Cmp(maxUint64Digits) <= 0
}

func (d Digits) MarshalText() ([]byte, error) {
	return []byte(d.Normalize().String()), nil
}

func (d *Digits) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Digits) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Normalize().String() + `"`), nil
}

func (d *Digits) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("karatsuba: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
