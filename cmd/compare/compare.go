// compare.go estimates logical block error rates for each entry in the
// cartesian product of a collection of candidate codes and physical error
// rates, running both the analytic binomial-tail approximation and a
// Monte Carlo sampler per combination, and outputs a CSV of the results.
package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alan-christopher/qecc/go/qecc"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/rand"
)

var (
	codes = flag.StringSlice("codes", []string{"255,33,21", "25,1,5", "128,32,8"},
		"The [[n,k,d]] parameters of the codes to compare, as comma-separated triples.")
	ps = flag.Float64Slice("ps", []float64{0.01, 0.03, 0.05},
		"The per-qubit depolarizing error rates to evaluate each code at.")
	trials  = flag.Int("trials", qecc.DefaultTrials, "The number of Monte Carlo trials per (code, p) combination.")
	workers = flag.Int("workers", 1, "The number of goroutines to split Monte Carlo trials across.")
	seed    = flag.Uint64("seed", 42, "The seed for the Monte Carlo sampler.")
)

const (
	header   = "N, K, D, T, P, Analytic, MonteCarlo, Fidelity"
	lineTmpl = "{{.N}}, {{.K}}, {{.D}}, {{.T}}, {{.P}}, {{.Analytic}}, {{.MonteCarlo}}, {{.Fidelity}}\n"
)

// A Result packages together the estimates for a single (code, p)
// combination for easy formatting.
type Result struct {
	N, K, D, T int
	P          float64
	Analytic   float64
	MonteCarlo float64
	Fidelity   float64
}

func main() {
	flag.Parse()
	sampler, err := qecc.NewSampler(qecc.SamplerOpts{
		Rand:    rand.New(rand.NewSource(*seed)),
		Workers: *workers,
	})
	if err != nil {
		log.Fatalf("Constructing sampler: %v", err)
	}
	fmt.Println(header)
	tmpl := template.Must(template.New("line").Parse(lineTmpl))
	for _, cs := range *codes {
		code, err := parseCode(cs)
		if err != nil {
			log.Fatalf("Parsing code %q: %v", cs, err)
		}
		for _, p := range *ps {
			r, err := estimate(sampler, code, p)
			if err != nil {
				log.Fatalf("Estimating (code: %v, p: %f): %v", code, p, err)
			}
			tmpl.Execute(os.Stdout, r)
		}
	}
}

func parseCode(s string) (qecc.Code, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return qecc.Code{}, fmt.Errorf("want an n,k,d triple, got %q", s)
	}
	var vals [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return qecc.Code{}, err
		}
		vals[i] = v
	}
	return qecc.Code{N: vals[0], K: vals[1], D: vals[2]}, nil
}

func estimate(s *qecc.Sampler, c qecc.Code, p float64) (Result, error) {
	t := c.T()
	approx, err := qecc.BlockError(c.N, t, p)
	if err != nil {
		return Result{}, err
	}
	mc, err := s.BlockError(c.N, t, p, *trials)
	if err != nil {
		return Result{}, err
	}
	return Result{
		N: c.N, K: c.K, D: c.D, T: t, P: p,
		Analytic:   approx,
		MonteCarlo: mc,
		Fidelity:   1 - approx,
	}, nil
}
