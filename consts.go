package karatsuba

const maxUint64 = 1<<64 - 1

// maxUint64Digits is math.MaxUint64, 18446744073709551615:
var maxUint64Digits = FromUint64(maxUint64)
