// Package binom provides exact binomial coefficients and binomial tail
// probabilities.
package binom

import (
	"math"
	"math/big"
)

// Coefficient returns C(n, k) computed exactly in arbitrary-precision
// integer arithmetic.
func Coefficient(n, k int) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(k))
}

// Tail returns P(X > t) for X ~ Binomial(n, p), i.e. the sum over
// k in (t, n] of C(n,k) * p^k * (1-p)^(n-k). The empty sum, t >= n,
// is exactly zero.
//
// Coefficients are taken exact before multiplying into the floating
// point power terms, so the sum stays accurate for n into the hundreds.
func Tail(n, t int, p float64) float64 {
	tail := 0.0
	for k := t + 1; k <= n; k++ {
		c, _ := new(big.Float).SetInt(Coefficient(n, k)).Float64()
		tail += c * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	return tail
}
