package factorization

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tuneinsight/ringsafety/utils/sampling"
)

// Weierstrass is an elliptic curve y^2 = x^3 + ax + b mod N.
type Weierstrass struct {
	A, B, N *big.Int
}

// Point represents an elliptic curve point in standard coordinates.
// The point at infinity is represented by (0, 1).
type Point struct {
	X, Y *big.Int
}

// Infinity returns the point-at-infinity sentinel.
func Infinity() Point {
	return Point{X: new(big.Int), Y: big.NewInt(1)}
}

// IsInfinity returns true if P is the point-at-infinity sentinel.
func (P Point) IsInfinity() bool {
	return P.X.Sign() == 0 && P.Y.Cmp(big.NewInt(1)) == 0
}

// NonInvertibleError reports a slope denominator that is not invertible
// modulo N. Its GCD with N is a divisor of N; when proper, the elliptic-curve
// method has found a factor.
type NonInvertibleError struct {
	GCD *big.Int
}

func (e NonInvertibleError) Error() string {
	return fmt.Sprintf("non-invertible denominator: gcd with modulus is %s", e.GCD)
}

// Add adds two Weierstrass points together with respect to the underlying
// Weierstrass curve. This method does not check if the points lie on the
// underlying curve. It returns a NonInvertibleError when the slope
// denominator shares a factor with N.
func (w *Weierstrass) Add(P, Q Point) (Point, error) {

	xR, yR := new(big.Int), new(big.Int)

	if P.IsInfinity() {
		return Point{xR.Set(Q.X), yR.Set(Q.Y)}, nil
	}

	if Q.IsInfinity() {
		return Point{xR.Set(P.X), yR.Set(P.Y)}, nil
	}

	xP, yP := P.X, P.Y
	xQ, yQ := Q.X, Q.Y

	N := w.N

	// P + (-P) = infinity
	if xP.Cmp(xQ) == 0 && yP.Cmp(new(big.Int).Sub(N, yQ)) == 0 {
		return Infinity(), nil
	}

	S := new(big.Int) // slope
	den := new(big.Int)

	if xP.Cmp(xQ) != 0 {
		// S = (yQ-yP)/(xQ-xP)
		S.Sub(yQ, yP)
		den.Sub(xQ, xP)
	} else {
		// S = (3*(xP^2) + a)/(2*yP)
		S.Mul(xP, xP)
		S.Mod(S, N)
		S.Mul(S, big.NewInt(3))
		S.Add(S, w.A)
		den.Add(yP, yP)
	}

	den.Mod(den, N)

	g := new(big.Int).GCD(nil, nil, new(big.Int).Set(den), N)
	if g.Cmp(big.NewInt(1)) != 0 {
		return Point{}, NonInvertibleError{GCD: g}
	}

	den.ModInverse(den, N)
	S.Mul(S, den)
	S.Mod(S, N)

	// s^2 - xP - xQ
	xR.Mul(S, S)
	xR.Mod(xR, N)
	xR.Sub(xR, xP)
	xR.Sub(xR, xQ)
	xR.Mod(xR, N)

	// s*(xP-xR)-yP
	yR.Sub(xP, xR)
	yR.Mul(yR, S)
	yR.Mod(yR, N)
	yR.Sub(yR, yP)
	yR.Mod(yR, N)

	return Point{X: xR, Y: yR}, nil
}

// ScalarMul returns [k]P on the underlying curve by double-and-add.
func (w *Weierstrass) ScalarMul(P Point, k uint64) (Point, error) {

	R := Infinity()

	var err error
	for ; k > 0; k >>= 1 {

		if k&1 == 1 {
			if R, err = w.Add(R, P); err != nil {
				return Point{}, err
			}
		}

		if P, err = w.Add(P, P); err != nil {
			return Point{}, err
		}
	}

	return R, nil
}

// NewRandomWeierstrassCurve generates a new random Weierstrass curve modulo N,
// along with a random point that lies on the curve.
func NewRandomWeierstrassCurve(N *big.Int) (Weierstrass, Point) {

	var A, B, xG, yG *big.Int
	for {

		// Select random values for A, xG and yG
		A = sampling.RandInt(N)
		xG = sampling.RandInt(N)
		yG = sampling.RandInt(N)

		// Deduces B from Y^2 = X^3 + A * X + B evaluated at point (xG, yG)
		yGpow2 := new(big.Int).Mul(yG, yG)
		yGpow2.Mod(yGpow2, N)

		xGpow3 := new(big.Int).Mul(xG, xG)
		xGpow3.Mod(xGpow3, N)
		xGpow3.Add(xGpow3, A)
		xGpow3.Mul(xGpow3, xG)
		xGpow3.Mod(xGpow3, N)

		B = new(big.Int).Sub(yGpow2, xGpow3) // B = yG^2 - xG*(xG^2 + A)
		B.Mod(B, N)

		// Checks that 4A^3 + 27B^2 != 0
		fourACube := new(big.Int).Add(A, A)
		fourACube.Mul(fourACube, fourACube)
		fourACube.Mod(fourACube, N)
		fourACube.Mul(fourACube, A)

		twentySevenBSquare := new(big.Int).Mul(B, B)
		twentySevenBSquare.Mod(twentySevenBSquare, N)
		twentySevenBSquare.Mul(twentySevenBSquare, big.NewInt(27))
		twentySevenBSquare.Mod(twentySevenBSquare, N)

		jInvariantQuotient := new(big.Int).Add(fourACube, twentySevenBSquare)
		jInvariantQuotient.Mod(jInvariantQuotient, N)

		if jInvariantQuotient.Sign() != 0 && new(big.Int).GCD(nil, nil, N, jInvariantQuotient).Cmp(big.NewInt(1)) == 0 {
			return Weierstrass{
				A: A,
				B: B,
				N: N,
			}, Point{X: xG, Y: yG}
		}
	}
}

// GetFactorECM returns a non-trivial factor of the composite n using stage
// one of Lenstra's elliptic-curve method, drawing random curves until the
// group order of one of them is smooth enough.
func GetFactorECM(n *big.Int) (factor *big.Int) {

	for B1 := uint64(1000); ; B1 <<= 2 {

		primes := PrimesUpTo(B1)

		for curve := 0; curve < 64; curve++ {

			w, P := NewRandomWeierstrassCurve(n)

			var err error
			for _, p := range primes {

				// largest power of p below B1
				pk := p
				for pk <= B1/p {
					pk *= p
				}

				if P, err = w.ScalarMul(P, pk); err != nil {

					var nie NonInvertibleError
					if errors.As(err, &nie) && nie.GCD.Cmp(one) > 0 && nie.GCD.Cmp(n) < 0 {
						return nie.GCD
					}

					break // next curve
				}

				if P.IsInfinity() {
					break
				}
			}
		}
	}
}
