// Package qecc estimates logical block error probabilities for CSS-type
// quantum error-correcting codes under a depolarizing noise model.
//
// The model is deliberately simple: a code with parameters [[n,k,d]] is
// assumed to correct up to t = floor((d-1)/2) Pauli X and Z errors
// independently, with each qubit suffering an X or Z error with
// probability p/2. Correlations between error types and degeneracy are
// ignored. For more accurate estimates, replace the threshold check with
// a full decoder.
package qecc

import "fmt"

var (
	DefaultTrials  = 10000
	DefaultWorkers = 1
)

// A Code holds the [[n,k,d]] parameters of a quantum code: n physical
// qubits encoding k logical qubits at minimum distance d.
type Code struct {
	N, K, D int
}

// T returns the number of errors of each type the code is assumed to
// correct, floor((d-1)/2).
func (c Code) T() int {
	return (c.D - 1) / 2
}

// checkArgs rejects parameter combinations for which the binomial tail
// and the failure predicate are not meaningful.
func checkArgs(n, t int, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("p must be a probability in [0, 1], got %v", p)
	}
	if n < 0 {
		return fmt.Errorf("n must be non-negative, got %d", n)
	}
	if t < 0 || t > n {
		return fmt.Errorf("t must be in [0, n], got t=%d with n=%d", t, n)
	}
	return nil
}
