package binom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestCoefficient(t *testing.T) {
	tcs := []struct {
		n, k int
		want string
	}{
		{0, 0, "1"},
		{5, 2, "10"},
		{10, 0, "1"},
		{10, 10, "1"},
		{25, 3, "2300"},
		// Large enough to overflow int64 arithmetic by many digits.
		{255, 10, "267934565633045025"},
		{255, 127, "2884329411724603169044874178931143443870105850987581016304218283632259375395"},
	}

	for _, tc := range tcs {
		if got := Coefficient(tc.n, tc.k).String(); got != tc.want {
			t.Errorf("Coefficient(%d, %d) == %s, want %s", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestTail(t *testing.T) {
	tcs := []struct {
		name    string
		n, tMax int
		p       float64
		want    float64
	}{{
		name: "golden small",
		n:    10, tMax: 1, p: 0.1,
		want: 0.26390107090000015,
	}, {
		name: "golden surface code channel",
		n:    25, tMax: 2, p: 0.025,
		want: 0.02383474525238843,
	}, {
		name: "golden large n",
		n:    255, tMax: 10, p: 0.015,
		want: 0.0018453051585028092,
	}, {
		name: "fair coin",
		n:    6, tMax: 2, p: 0.5,
		want: 0.65625,
	}, {
		name: "empty sum",
		n:    10, tMax: 10, p: 0.3,
		want: 0,
	}, {
		name: "threshold beyond n",
		n:    5, tMax: 9, p: 0.3,
		want: 0,
	}, {
		name: "p zero",
		n:    40, tMax: 3, p: 0,
		want: 0,
	}, {
		name: "n zero",
		n:    0, tMax: 0, p: 0.3,
		want: 0,
	}}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Tail(tc.n, tc.tMax, tc.p)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Tail(%d, %d, %v) == %v, want %v", tc.n, tc.tMax, tc.p, got, tc.want)
			}
		})
	}
}

// The tail sum should agree with gonum's regularized-incomplete-beta
// binomial CDF, 1 - P(X <= t), to well within that routine's accuracy.
func TestTailMatchesBinomialCDF(t *testing.T) {
	tcs := []struct {
		n, tMax int
		p       float64
	}{
		{20, 4, 0.3},
		{40, 10, 0.15},
		{12, 3, 0.5},
		{100, 7, 0.05},
	}

	for _, tc := range tcs {
		b := distuv.Binomial{N: float64(tc.n), P: tc.p}
		want := 1 - b.CDF(float64(tc.tMax))
		got := Tail(tc.n, tc.tMax, tc.p)
		if math.Abs(got-want) > 1e-8 {
			t.Errorf("Tail(%d, %d, %v) == %v, want %v per gonum CDF", tc.n, tc.tMax, tc.p, got, want)
		}
	}
}
