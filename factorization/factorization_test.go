package factorization_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ringsafety/factorization"
)

func TestIsPrime(t *testing.T) {
	// 2^64 - 59 is prime
	require.True(t, factorization.IsPrime(new(big.Int).SetUint64(0xffffffffffffffc5)))
	// 2^64 + 13 is prime
	bigPrime, _ := new(big.Int).SetString("18446744073709551629", 10)
	require.True(t, factorization.IsPrime(bigPrime))
	// 2^64 - 1 is not prime
	require.False(t, factorization.IsPrime(new(big.Int).SetUint64(0xffffffffffffffff)))
}

func TestPrimesUpTo(t *testing.T) {
	require.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19}, factorization.PrimesUpTo(19))
	require.Nil(t, factorization.PrimesUpTo(1))
}

func TestGetFactors(t *testing.T) {

	t.Run("GetFactors", func(t *testing.T) {
		// 4590 = 2 * 3^3 * 5 * 17
		factors := factorization.GetFactors(big.NewInt(4590))
		require.Equal(t, []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5), big.NewInt(17)}, factors)

		// 3328 = 2^8 * 13
		factors = factorization.GetFactors(big.NewInt(3328))
		require.Equal(t, []*big.Int{big.NewInt(2), big.NewInt(13)}, factors)

		// semiprime beyond the trial-division bound
		m := new(big.Int).Mul(big.NewInt(1000003), big.NewInt(1000033))
		require.True(t, checkFactorization(new(big.Int).Set(m), factorization.GetFactors(m)))
	})

	t.Run("PollardRho", func(t *testing.T) {
		m := new(big.Int).Mul(big.NewInt(1000003), big.NewInt(1000033))
		require.True(t, new(big.Int).Mod(m, factorization.GetFactorPollardRho(m)).Sign() == 0)
	})

	t.Run("ECM", func(t *testing.T) {
		m := new(big.Int).Mul(big.NewInt(10007), big.NewInt(10009))
		f := factorization.GetFactorECM(m)
		require.True(t, new(big.Int).Mod(m, f).Sign() == 0)
		require.True(t, f.Cmp(big.NewInt(1)) > 0 && f.Cmp(m) < 0)
	})
}

func checkFactorization(p *big.Int, factors []*big.Int) bool {
	zero := new(big.Int)
	for _, factor := range factors {
		for new(big.Int).Mod(p, factor).Cmp(zero) == 0 {
			p.Quo(p, factor)
		}
	}

	return p.Cmp(new(big.Int).SetUint64(1)) == 0
}
