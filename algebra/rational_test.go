package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ringsafety/poly"
)

func TestIsIrreducibleOverRationals(t *testing.T) {

	r := NewRational()

	testCases := []struct {
		expr        string
		irreducible bool
	}{
		{"x + 5", true},
		{"x^2 + 1", true},
		{"x^2 - 1", false},
		{"x^2 - 2", true},
		{"2x^2 + 4x + 2", false}, // (x+1)^2 up to content
		{"x^3 - 2", true},
		{"x^3 + x", false},
		{"x^4 + 1", true},
		{"x^256 + 1", true},
		{"x^512 + 1", true},
		{"x^12 + 1", false},  // 12 is not a power of two
		{"x^761 - x - 1", true},
		{"x^653 - x - 1", true},
		{"x^5 - 2", true},    // Eisenstein at 2
		{"2x^5 - 10x + 5", true}, // Eisenstein at 5
		{"x^4 - 1", false},
		{"3x^4 + 6", true},   // Eisenstein after removing the content
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			irreducible, err := r.IsIrreducibleOverRationals(poly.MustParse(tc.expr))
			require.NoError(t, err)
			require.Equal(t, tc.irreducible, irreducible)
		})
	}
}

func TestIsIrreducibleUndecided(t *testing.T) {

	r := NewRational()

	// (x^2+1)(x^2+x+1) has no rational root, no Eisenstein prime and a
	// factorization pattern no certificate rules out
	_, err := r.IsIrreducibleOverRationals(poly.MustParse("x^4 + x^3 + 2x^2 + x + 1"))
	require.ErrorIs(t, err, poly.ErrOracleFailure)

	// (x^2+2)^2 is rootless and every mod-p pattern admits a degree-2
	// factor, so no certificate applies
	_, err = r.IsIrreducibleOverRationals(poly.MustParse("x^4 + 4x^2 + 4"))
	require.ErrorIs(t, err, poly.ErrOracleFailure)

	_, err = r.IsIrreducibleOverRationals(nil)
	require.ErrorIs(t, err, poly.ErrInvalidPolynomial)
}

func TestFactorOverRationals(t *testing.T) {

	r := NewRational()

	t.Run("Roots", func(t *testing.T) {

		// x^4 - 1 = (x-1)(x+1)(x^2+1)
		factors, err := r.FactorOverRationals(poly.MustParse("x^4 - 1"))
		require.NoError(t, err)
		require.Len(t, factors, 3)

		product := big.NewInt(1)
		degree := 0
		for _, f := range factors {
			for i := 0; i < f.Multiplicity; i++ {
				product.Mul(product, f.Factor.Evaluate(big.NewInt(3)))
				degree += f.Factor.Degree()
			}
		}

		// the product of the factors evaluates like the input
		require.Equal(t, poly.MustParse("x^4 - 1").Evaluate(big.NewInt(3)), product)
		require.Equal(t, 4, degree)
	})

	t.Run("RepeatedRoot", func(t *testing.T) {

		// (x+1)^2 (x-2)
		factors, err := r.FactorOverRationals(poly.MustParse("x^3 - 3x - 2"))
		require.NoError(t, err)
		require.Len(t, factors, 2)

		byMult := map[int]string{}
		for _, f := range factors {
			byMult[f.Multiplicity] = f.Factor.String()
		}
		require.Equal(t, "x + 1", byMult[2])
		require.Equal(t, "x - 2", byMult[1])
	})

	t.Run("FractionalRoot", func(t *testing.T) {

		// 2x^2 - 3x + 1 = (2x - 1)(x - 1)
		factors, err := r.FactorOverRationals(poly.MustParse("2x^2 - 3x + 1"))
		require.NoError(t, err)
		require.Len(t, factors, 2)
	})

	t.Run("CyclotomicPattern", func(t *testing.T) {

		// x^12 + 1 = (x^4 + 1)(x^8 - x^4 + 1)
		factors, err := r.FactorOverRationals(poly.MustParse("x^12 + 1"))
		require.NoError(t, err)
		require.Len(t, factors, 2)
		require.Equal(t, "x^4 + 1", factors[0].Factor.String())
		require.Equal(t, "x^8 - x^4 + 1", factors[1].Factor.String())
	})

	t.Run("Irreducible", func(t *testing.T) {

		p := poly.MustParse("x^256 + 1")
		factors, err := r.FactorOverRationals(p)
		require.NoError(t, err)
		require.Len(t, factors, 1)
		require.True(t, factors[0].Factor.Equal(p))
	})

	t.Run("Undecided", func(t *testing.T) {

		_, err := r.FactorOverRationals(poly.MustParse("x^4 + x^3 + 2x^2 + x + 1"))
		require.ErrorIs(t, err, poly.ErrOracleFailure)
	})
}
