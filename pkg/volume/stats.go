package volume

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the sample distribution of a volume. It is computed once
// per volume (and can be cached across runs keyed by file identity).
type Stats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	P01    float64 `json:"p01"`
	P05    float64 `json:"p05"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
}

// ComputeStats scans the full sample grid and returns distribution summary
// statistics. The quantiles are empirical, computed over a sorted copy of
// the samples.
func ComputeStats(v *Volume) Stats {
	sorted := make([]float64, len(v.samples))
	copy(sorted, v.samples)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(v.samples, nil)

	q := func(p float64) float64 {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	return Stats{
		Min:    v.globalMin,
		Max:    v.globalMax,
		Mean:   mean,
		StdDev: std,
		P01:    q(0.01),
		P05:    q(0.05),
		P50:    q(0.50),
		P95:    q(0.95),
		P99:    q(0.99),
	}
}

// AutoWindow returns a display window spanning the central mass of the
// distribution (1st to 99th percentile). Outlier samples no longer stretch
// the window, which is usually what makes a freshly loaded scan look flat.
func (s Stats) AutoWindow() (min, max float64) {
	return s.P01, s.P99
}
