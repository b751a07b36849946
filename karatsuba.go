package karatsuba

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Mul returns x*y.
//
// Both operands are padded to the same power-of-two length so they can be
// split evenly in half at every level of the recursion. Each level computes
// three half-size products (ac, bd and (a+b)(c+d)) rather than four.
func Mul(x, y Digits) Digits {
	n := nextPow2(max(len(x), len(y)))
	return mul(x.Pad(n), y.Pad(n))
}

// Mul returns d*n. See Mul.
func (d Digits) Mul(n Digits) Digits {
	return Mul(d, n)
}

// mul expects x and y to have the same power-of-two length.
func mul(x, y Digits) Digits {
	n := len(x)
	if n == 1 {
		return FromUint64(uint64(x[0]) * uint64(y[0]))
	}

	a, b, c, d, p, q := split(x, y)
	ac := mul(a, c)
	bd := mul(b, d)
	pq := mul(p, q)
	return combine(ac, bd, pq, n)
}

// split divides x into its high half a and low half b, and y into c and d.
// p = a+b and q = c+d are returned padded to a common power-of-two length,
// which may be the same as len(x) if either sum carried.
//
// a, b, c and d alias x and y.
func split(x, y Digits) (a, b, c, d, p, q Digits) {
	half := len(x) / 2
	a, b = x[:half], x[half:]
	c, d = y[:half], y[half:]

	p, q = a.Add(b), c.Add(d)
	pqLen := nextPow2(max(len(p), len(q)))
	return a, b, c, d, p.Pad(pqLen), q.Pad(pqLen)
}

// combine returns ac*10^n + (pq-ac-bd)*10^(n/2) + bd.
func combine(ac, bd, pq Digits, n int) Digits {
	// pq >= ac+bd always holds for non-negative halves. Sub panics if a
	// padding or splitting bug ever breaks that.
	adbc := pq.Sub(ac.Add(bd))

	return ac.MulPow10(n).Add(adbc.MulPow10(n / 2)).Add(bd)
}

// MulConcurrent returns x*y, computing the three sub-products of the top
// depth levels of the recursion concurrently. Below depth, the sequential
// algorithm used by Mul takes over. If depth <= 0, MulConcurrent is
// equivalent to Mul.
//
// ctx is checked before each concurrent level. If it is cancelled, the
// context's error is returned and the product is discarded.
func MulConcurrent(ctx context.Context, x, y Digits, depth int) (Digits, error) {
	n := nextPow2(max(len(x), len(y)))
	return mulConcurrent(ctx, x.Pad(n), y.Pad(n), depth)
}

func mulConcurrent(ctx context.Context, x, y Digits, depth int) (Digits, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(x)
	if depth <= 0 || n == 1 {
		return mul(x, y), nil
	}

	a, b, c, d, p, q := split(x, y)

	var ac, bd, pq Digits
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ac, err = mulConcurrent(gctx, a, c, depth-1)
		return err
	})
	g.Go(func() (err error) {
		bd, err = mulConcurrent(gctx, b, d, depth-1)
		return err
	})
	g.Go(func() (err error) {
		pq, err = mulConcurrent(gctx, p, q, depth-1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return combine(ac, bd, pq, n), nil
}
