package analyze

import (
	"math"
	"sort"

	"datalens/domain/report"
)

// Outlier fence parameters.
const (
	// iqrFenceFactor is the classic 1.5x interquartile-range multiplier.
	iqrFenceFactor = 1.5
	// minOutlierSamples is the smallest sample for which quartiles are
	// defined; below it detection is skipped and zero outliers reported.
	minOutlierSamples = 4
	// maxOutlierRows caps how many flagged rows are listed in the report.
	maxOutlierRows = 5
	// outlierValuePrecision is the rounding applied to reported values.
	outlierValuePrecision = 4
)

// Quantile computes the p-th quantile (p in [0,1]) of values using linear
// interpolation between order statistics, the NumPy default method. The
// input is not modified.
func Quantile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Fence is the IQR-based outlier fence for a numeric sample.
type Fence struct {
	Q1    float64
	Q3    float64
	Lower float64
	Upper float64
}

// NewFence computes quartiles and the 1.5x IQR fence. It reports ok=false
// when the sample is too small for quartiles to be defined.
func NewFence(values []float64) (Fence, bool) {
	if len(values) < minOutlierSamples {
		return Fence{}, false
	}
	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr := q3 - q1
	return Fence{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - iqrFenceFactor*iqr,
		Upper: q3 + iqrFenceFactor*iqr,
	}, true
}

// Outside reports whether v lies strictly outside the fence.
func (f Fence) Outside(v float64) bool {
	return v < f.Lower || v > f.Upper
}

// DetectOutliers flags the values of a numeric column strictly outside the
// 1.5x IQR fence. values and rows are parallel slices in dataset row order
// (rows are 0-based dataset indexes; reported row numbers are 1-based, the
// way a spreadsheet user counts). With fewer than minOutlierSamples values
// the fence is undefined and a zero-outlier report is returned.
func DetectOutliers(values []float64, rows []int) *report.OutlierReport {
	fence, ok := NewFence(values)
	if !ok {
		return &report.OutlierReport{Total: 0, Rows: []report.OutlierRow{}}
	}

	out := &report.OutlierReport{
		Rows:           []report.OutlierRow{},
		LowerThreshold: fence.Lower,
		UpperThreshold: fence.Upper,
	}
	for i, v := range values {
		if !fence.Outside(v) {
			continue
		}
		out.Total++
		if len(out.Rows) < maxOutlierRows {
			out.Rows = append(out.Rows, report.OutlierRow{
				Row:   rows[i] + 1,
				Value: roundTo(v, outlierValuePrecision),
			})
		}
	}
	return out
}
