package qecc

import "github.com/alan-christopher/qecc/go/qecc/binom"

// BlockError approximates the probability that a code correcting up to t
// errors of each type on n qubits suffers an uncorrectable error, given
// a per-qubit depolarizing rate p.
//
// X and Z errors are taken to occur independently, each with probability
// p/2 per qubit. The probability of an uncorrectable X-error pattern is
// the tail of a Binomial(n, p/2) distribution above t, and likewise for
// Z; the returned value is the sum of the two contributions. Note that
// this is a union bound, not a true union probability: it overestimates,
// and for large p on weak codes it can exceed 1.
func BlockError(n, t int, p float64) (float64, error) {
	if err := checkArgs(n, t, p); err != nil {
		return 0, err
	}
	return 2 * binom.Tail(n, t, p/2), nil
}
