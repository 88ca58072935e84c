package analyze

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"datalens/domain/report"
	"datalens/domain/table"
)

// correlationPrecision is the rounding applied to matrix entries.
const correlationPrecision = 4

// Correlation computes the pairwise Pearson matrix over the given numeric
// columns. names preserves dataset column order; cells maps each name to its
// full-length cell column. Each pair uses only rows where both cells are
// numbers (pairwise-complete observations). Returns nil with fewer than two
// numeric columns.
//
// A constant (zero variance) column has no defined correlation with
// anything; its entries are emitted as 0.0 rather than failing the matrix.
// Non-degenerate diagonals are exactly 1.0.
func Correlation(names []string, cells map[string][]table.Value) *report.CorrelationMatrix {
	if len(names) < 2 {
		return nil
	}

	n := len(names)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := pairwiseCorrelation(cells[names[i]], cells[names[j]])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	out := &report.CorrelationMatrix{
		Columns: make([]string, n),
		Matrix:  matrix,
	}
	copy(out.Columns, names)
	return out
}

// pairwiseCorrelation computes Pearson's r over rows where both columns hold
// numbers. Degenerate pairs (under two complete rows, or zero variance on
// either side) yield 0.0.
func pairwiseCorrelation(a, b []table.Value) float64 {
	var x, y []float64
	for i := range a {
		if i >= len(b) {
			break
		}
		if a[i].IsNumber() && b[i].IsNumber() {
			x = append(x, a[i].AsFloat64())
			y = append(y, b[i].AsFloat64())
		}
	}

	if len(x) < 2 || hasZeroVariance(x) || hasZeroVariance(y) {
		return 0.0
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0.0
	}
	return roundTo(r, correlationPrecision)
}

// hasZeroVariance checks if a variable has essentially zero variance.
func hasZeroVariance(values []float64) bool {
	if len(values) < 2 {
		return true
	}
	first := values[0]
	for _, v := range values[1:] {
		if math.Abs(v-first) > 1e-10 {
			return false
		}
	}
	return true
}
