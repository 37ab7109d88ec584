package zq

import (
	"math/big"
	"math/bits"
)

// trim strips leading zero coefficients.
func trim(p []uint64) []uint64 {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

// Deg returns the degree of p, with -1 for the zero polynomial.
func Deg(p []uint64) int {
	return len(trim(p)) - 1
}

// Reduce maps integer coefficients into the field, trimming the result.
// A nil entry is treated as zero.
func (f *Field) Reduce(coeffs []*big.Int) []uint64 {

	out := make([]uint64, len(coeffs))
	tmp := new(big.Int)

	for i, c := range coeffs {
		if c != nil {
			out[i] = tmp.Mod(c, f.bigP).Uint64()
		}
	}

	return trim(out)
}

// Add returns a + b.
func (f *Field) Add(a, b []uint64) []uint64 {

	if len(a) < len(b) {
		a, b = b, a
	}

	c := make([]uint64, len(a))
	copy(c, a)
	for i := range b {
		c[i] = CRed(c[i]+b[i], f.P)
	}

	return trim(c)
}

// Sub returns a - b.
func (f *Field) Sub(a, b []uint64) []uint64 {

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	c := make([]uint64, n)
	for i := range c {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		c[i] = CRed(ai+f.P-bi, f.P)
	}

	return trim(c)
}

// Neg returns -a.
func (f *Field) Neg(a []uint64) []uint64 {
	return f.Sub(nil, a)
}

// MulScalar returns c * a for a scalar c.
func (f *Field) MulScalar(a []uint64, c uint64) []uint64 {

	c = BRedAdd(c, f.P, f.brc)

	out := make([]uint64, len(a))
	for i := range a {
		out[i] = BRed(a[i], c, f.P, f.brc)
	}

	return trim(out)
}

// Mul returns a * b by schoolbook convolution with lazy 128-bit accumulation.
// It panics if the product degree exceeds MaxDegree.
func (f *Field) Mul(a, b []uint64) []uint64 {

	a, b = trim(a), trim(b)

	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	if len(a)+len(b)-1 > MaxDegree+1 {
		panic("zq: product degree exceeds MaxDegree")
	}

	c := make([]uint64, len(a)+len(b)-1)

	for k := range c {

		i0 := 0
		if k >= len(b) {
			i0 = k - len(b) + 1
		}
		i1 := k
		if i1 > len(a)-1 {
			i1 = len(a) - 1
		}

		var hi, lo, carry uint64
		for i := i0; i <= i1; i++ {
			phi, plo := bits.Mul64(a[i], b[k-i])
			lo, carry = bits.Add64(lo, plo, 0)
			hi += phi + carry
		}

		c[k] = f.reduce128(hi, lo)
	}

	return trim(c)
}

// DivMod returns the quotient and remainder of the division of a by b.
// It panics on division by the zero polynomial.
func (f *Field) DivMod(a, b []uint64) (quo, rem []uint64) {

	b = trim(b)
	if len(b) == 0 {
		panic("zq: division by zero polynomial")
	}

	rem = append([]uint64(nil), trim(a)...)
	if len(rem) < len(b) {
		return nil, rem
	}

	inv := f.InvCoeff(b[len(b)-1])
	quo = make([]uint64, len(rem)-len(b)+1)

	for len(rem) >= len(b) {

		d := len(rem) - len(b)
		c := BRed(rem[len(rem)-1], inv, f.P, f.brc)
		quo[d] = c

		for i := range b {
			t := BRed(c, b[i], f.P, f.brc)
			rem[d+i] = CRed(rem[d+i]+f.P-t, f.P)
		}

		rem = trim(rem)
	}

	return quo, rem
}

// Mod returns the remainder of the division of a by b.
func (f *Field) Mod(a, b []uint64) []uint64 {
	_, rem := f.DivMod(a, b)
	return rem
}

// MakeMonic scales p so that its leading coefficient is one.
func (f *Field) MakeMonic(p []uint64) []uint64 {

	p = trim(p)
	if len(p) == 0 || p[len(p)-1] == 1 {
		return p
	}

	return f.MulScalar(p, f.InvCoeff(p[len(p)-1]))
}

// Gcd returns the monic greatest common divisor of a and b.
func (f *Field) Gcd(a, b []uint64) []uint64 {

	a = append([]uint64(nil), trim(a)...)
	b = append([]uint64(nil), trim(b)...)

	for len(b) > 0 {
		_, r := f.DivMod(a, b)
		a, b = b, r
	}

	return f.MakeMonic(a)
}

// PowMod returns g^e mod m for a non-negative big integer exponent.
func (f *Field) PowMod(g []uint64, e *big.Int, m []uint64) []uint64 {

	r := []uint64{1}
	g = f.Mod(g, m)

	for i := e.BitLen() - 1; i >= 0; i-- {
		r = f.Mod(f.Mul(r, r), m)
		if e.Bit(i) == 1 {
			r = f.Mod(f.Mul(r, g), m)
		}
	}

	return r
}

// Derivative returns the formal derivative of p. In characteristic p the
// derivative of x^i vanishes whenever the field characteristic divides i.
func (f *Field) Derivative(a []uint64) []uint64 {

	a = trim(a)
	if len(a) <= 1 {
		return nil
	}

	d := make([]uint64, len(a)-1)
	for i := 1; i < len(a); i++ {
		d[i-1] = BRed(a[i], uint64(i)%f.P, f.P, f.brc)
	}

	return trim(d)
}

// Equal returns true if a and b are the same polynomial.
func Equal(a, b []uint64) bool {

	a, b = trim(a), trim(b)

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
