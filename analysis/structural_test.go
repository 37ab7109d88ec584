package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ringsafety/poly"
)

func TestStructuralCheck(t *testing.T) {

	t.Run("MonicWitness", func(t *testing.T) {
		p := poly.MustParse("x^256 + 1")
		flagged, witnesses := StructuralCheck(p, nil)
		require.True(t, flagged)
		require.Len(t, witnesses, 1)
		require.Equal(t, uint64(2), witnesses[0].Prime)
		require.Equal(t, 256, witnesses[0].Exponent)
	})

	t.Run("WitnessPerCoefficient", func(t *testing.T) {
		// 4x^3 + 2x^2 + x - 5: exponents 2 and 3 are even so their
		// first missing prime is 3, exponent 1 misses 2. The constant
		// term is never inspected.
		p := poly.MustParse("4x^3 + 2x^2 + x - 5")
		flagged, witnesses := StructuralCheck(p, nil)
		require.True(t, flagged)
		require.Len(t, witnesses, 3)
		require.Equal(t, uint64(2), witnesses[0].Prime)
		require.Equal(t, 1, witnesses[0].Exponent)
		require.Equal(t, uint64(3), witnesses[1].Prime)
		require.Equal(t, 2, witnesses[1].Exponent)
		require.Equal(t, uint64(3), witnesses[2].Prime)
		require.Equal(t, 3, witnesses[2].Exponent)
	})

	t.Run("NoWitnessWithinTable", func(t *testing.T) {
		// 9699690 = 2*3*5*7*11*13*17*19 defeats the whole default
		// table, so the check reports nothing even though larger
		// primes would witness.
		p := poly.MustParse("9699690x^2 + 9699690x + 1")
		flagged, witnesses := StructuralCheck(p, nil)
		require.False(t, flagged)
		require.Empty(t, witnesses)
	})

	t.Run("CustomPrimes", func(t *testing.T) {
		p := poly.MustParse("9699690x^2 + 9699690x + 1")
		flagged, witnesses := StructuralCheck(p, []uint64{23})
		require.True(t, flagged)
		require.Len(t, witnesses, 2)
		require.Equal(t, uint64(23), witnesses[0].Prime)
	})

	t.Run("ZeroCoefficientsSkipped", func(t *testing.T) {
		p := poly.MustParse("x^761 - x - 1")
		flagged, witnesses := StructuralCheck(p, nil)
		require.True(t, flagged)
		require.Len(t, witnesses, 2)
	})
}
