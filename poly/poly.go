// Package poly defines the data model shared by the analyzer and the algebra
// oracles: integer-coefficient polynomials, moduli and factorization
// descriptors. All values are immutable once constructed.
package poly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Errors wrapped by constructors and oracle implementations. They are matched
// with errors.Is.
var (
	ErrInvalidPolynomial = errors.New("invalid polynomial")
	ErrInvalidModulus    = errors.New("invalid modulus")
	ErrOracleFailure     = errors.New("oracle failure")
)

// Poly is a dense integer-coefficient polynomial with non-zero leading
// coefficient. The coefficient of x^i is stored at index i.
type Poly struct {
	coeffs []*big.Int
}

// NewPoly returns the polynomial whose coefficient of x^i is coeffs[i].
// A nil entry is treated as zero. The slice is deep-copied.
// The polynomial must have degree at least 1 and a non-zero leading
// coefficient, otherwise an error wrapping ErrInvalidPolynomial is returned.
func NewPoly(coeffs []*big.Int) (*Poly, error) {

	if len(coeffs) < 2 {
		return nil, fmt.Errorf("%w: degree must be at least 1", ErrInvalidPolynomial)
	}

	lead := coeffs[len(coeffs)-1]
	if lead == nil || lead.Sign() == 0 {
		return nil, fmt.Errorf("%w: leading coefficient is zero", ErrInvalidPolynomial)
	}

	c := make([]*big.Int, len(coeffs))
	for i := range coeffs {
		if coeffs[i] == nil {
			c[i] = new(big.Int)
		} else {
			c[i] = new(big.Int).Set(coeffs[i])
		}
	}

	return &Poly{coeffs: c}, nil
}

// NewPolyFromInt64 is a convenience constructor over int64 coefficients.
func NewPolyFromInt64(coeffs []int64) (*Poly, error) {
	c := make([]*big.Int, len(coeffs))
	for i := range coeffs {
		c[i] = big.NewInt(coeffs[i])
	}
	return NewPoly(c)
}

// NewPolyFromMap returns the polynomial of the given degree whose coefficient
// of x^i is coeffs[i]. Exponents outside [0, degree] or a missing/zero leading
// coefficient make the mapping inconsistent with the degree and return an
// error wrapping ErrInvalidPolynomial.
func NewPolyFromMap(degree int, coeffs map[int]*big.Int) (*Poly, error) {

	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be at least 1", ErrInvalidPolynomial)
	}

	c := make([]*big.Int, degree+1)
	for e, v := range coeffs {
		if e < 0 || e > degree {
			return nil, fmt.Errorf("%w: exponent %d outside [0, %d]", ErrInvalidPolynomial, e, degree)
		}
		c[e] = v
	}

	return NewPoly(c)
}

// Degree returns the degree of the polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns a copy of the coefficient of x^i. Exponents outside
// [0, Degree()] return zero.
func (p *Poly) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Int)
	}
	return new(big.Int).Set(p.coeffs[i])
}

// Coeffs returns a deep copy of the coefficient slice.
func (p *Poly) Coeffs() []*big.Int {
	c := make([]*big.Int, len(p.coeffs))
	for i := range p.coeffs {
		c[i] = new(big.Int).Set(p.coeffs[i])
	}
	return c
}

// LeadingCoeff returns a copy of the leading coefficient.
func (p *Poly) LeadingCoeff() *big.Int {
	return new(big.Int).Set(p.coeffs[len(p.coeffs)-1])
}

// IsMonic returns true if the leading coefficient is one.
func (p *Poly) IsMonic() bool {
	return p.coeffs[len(p.coeffs)-1].Cmp(big.NewInt(1)) == 0
}

// Evaluate returns p(x) using Horner's rule.
func (p *Poly) Evaluate(x *big.Int) (y *big.Int) {
	y = new(big.Int)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.coeffs[i])
	}
	return
}

// Equal returns true if p and q have identical coefficients.
func (p *Poly) Equal(q *Poly) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders the polynomial in the usual sparse notation, e.g.
// "x^761 - x - 1".
func (p *Poly) String() string {

	var sb strings.Builder

	one := big.NewInt(1)
	abs := new(big.Int)

	for i := len(p.coeffs) - 1; i >= 0; i-- {

		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}

		if sb.Len() == 0 {
			if c.Sign() < 0 {
				sb.WriteString("-")
			}
		} else {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}

		abs.Abs(c)
		switch {
		case i == 0:
			sb.WriteString(abs.String())
		case abs.Cmp(one) != 0:
			sb.WriteString(abs.String())
			fallthrough
		default:
			sb.WriteString("x")
			if i > 1 {
				fmt.Fprintf(&sb, "^%d", i)
			}
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
