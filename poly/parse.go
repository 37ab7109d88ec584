package poly

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// NewPolyFromString parses a polynomial in sparse notation, e.g.
// "x^256 + 1", "x^761 - x - 1" or "3x^2 - 2x + 5". Terms may appear in any
// order; coefficients of repeated exponents are summed.
func NewPolyFromString(s string) (*Poly, error) {

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "*", "")
	if s == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPolynomial)
	}

	// split into signed terms
	var terms []string
	start := 0
	for i := 1; i < len(s); i++ {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != '^' {
			terms = append(terms, s[start:i])
			start = i
		}
	}
	terms = append(terms, s[start:])

	coeffs := map[int]*big.Int{}
	degree := 0

	for _, t := range terms {

		neg := false
		switch {
		case strings.HasPrefix(t, "+"):
			t = t[1:]
		case strings.HasPrefix(t, "-"):
			neg = true
			t = t[1:]
		}

		if t == "" {
			return nil, fmt.Errorf("%w: dangling sign", ErrInvalidPolynomial)
		}

		var cstr, estr string
		if i := strings.IndexByte(t, 'x'); i < 0 {
			cstr, estr = t, ""
		} else {
			cstr = t[:i]
			rest := t[i+1:]
			switch {
			case rest == "":
				estr = "1"
			case strings.HasPrefix(rest, "^"):
				estr = rest[1:]
			default:
				return nil, fmt.Errorf("%w: malformed term %q", ErrInvalidPolynomial, t)
			}
		}

		c := big.NewInt(1)
		if cstr != "" {
			if _, ok := c.SetString(cstr, 10); !ok {
				return nil, fmt.Errorf("%w: malformed coefficient %q", ErrInvalidPolynomial, cstr)
			}
		}
		if neg {
			c.Neg(c)
		}

		e := 0
		if estr != "" {
			var err error
			if e, err = strconv.Atoi(estr); err != nil || e < 0 {
				return nil, fmt.Errorf("%w: malformed exponent %q", ErrInvalidPolynomial, estr)
			}
		}

		if coeffs[e] == nil {
			coeffs[e] = new(big.Int)
		}
		coeffs[e].Add(coeffs[e], c)

		if e > degree {
			degree = e
		}
	}

	// coefficients may have cancelled at the top
	for degree > 0 && (coeffs[degree] == nil || coeffs[degree].Sign() == 0) {
		delete(coeffs, degree)
		degree--
	}

	return NewPolyFromMap(degree, coeffs)
}

// MustParse is NewPolyFromString that panics on error. For tests and examples.
func MustParse(s string) *Poly {
	p, err := NewPolyFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}
