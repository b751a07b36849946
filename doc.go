/*
Package karatsuba provides arbitrary-precision, non-negative decimal integers
(Digits) and multiplies them using Karatsuba's divide-and-conquer algorithm.

Digits are value types; all operations return new values and never modify
their receiver or arguments.

Simple example:

	x, _ := FromString("1234")
	y, _ := FromString("5678")
	fmt.Println(x.Mul(y))
	// Output: 7006652

Digits can be created from a variety of sources:

	FromUint64(v uint64) Digits
	FromUint32(v uint32) Digits
	FromUint16(v uint16) Digits
	FromUint8(v uint8) Digits
	FromU128(v num.U128) Digits
	FromUint256(v *uint256.Int) Digits
	FromBigInt(v *big.Int) (out Digits, accurate bool)
	FromString(s string) (Digits, error)
	FromDigits(ds []uint8) (Digits, error)

Only the conversion functions validate their input. The arithmetic methods
assume every element of a Digits is in the range 0-9; constructing a Digits
by hand with other values is a programming error.

Subtraction comes in two flavours because Digits cannot be negative. Sub
panics if the result would underflow, SubSat clamps the result to zero.

Digits support the following formatting and marshalling interfaces:

	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package karatsuba
