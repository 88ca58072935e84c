package analyze

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"datalens/domain/report"
)

// Chart aggregation constants.
const (
	// minHistogramBins / maxHistogramBins clamp the bin-count rule.
	minHistogramBins = 5
	maxHistogramBins = 50
	// sqrtRuleCap caps the sqrt fallback used when the IQR is zero.
	sqrtRuleCap = 30
	// maxBarCategories is how many distinct values a bar chart keeps.
	maxBarCategories = 15
)

// Histogram builds the chart aggregate for a numeric column: equal-width
// bins over [min, max], each labeled by its range, with the last bin
// inclusive of the maximum.
func Histogram(values []float64, colName string) *report.ChartAggregate {
	if len(values) == 0 {
		return nil
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	chart := &report.ChartAggregate{
		Type:   "histogram",
		Title:  fmt.Sprintf("Distribution of %s", colName),
		XLabel: colName,
		YLabel: "Frequency",
	}

	if min == max {
		chart.Labels = []string{formatEdge(min)}
		chart.Values = []int{len(values)}
		return chart
	}

	bins := histogramBinCount(values, min, max)
	width := (max - min) / float64(bins)

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1 // max lands in the last bin
		}
		counts[idx]++
	}

	labels := make([]string, bins)
	for i := 0; i < bins; i++ {
		lo := min + float64(i)*width
		hi := lo + width
		labels[i] = fmt.Sprintf("%s - %s", formatEdge(lo), formatEdge(hi))
	}

	chart.Labels = labels
	chart.Values = counts
	return chart
}

// histogramBinCount picks the bin count with the Freedman-Diaconis rule,
// falling back to the square-root rule when the IQR is zero, clamped to
// [minHistogramBins, maxHistogramBins].
func histogramBinCount(values []float64, min, max float64) int {
	n := len(values)
	iqr := Quantile(values, 0.75) - Quantile(values, 0.25)

	var bins int
	if iqr > 0 {
		width := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		bins = int(math.Ceil((max - min) / width))
	} else {
		bins = int(math.Sqrt(float64(n)))
		if bins > sqrtRuleCap {
			bins = sqrtRuleCap
		}
	}

	if bins < minHistogramBins {
		bins = minHistogramBins
	}
	if bins > maxHistogramBins {
		bins = maxHistogramBins
	}
	return bins
}

// BarChart builds the value-count aggregate for a categorical column: the
// top maxBarCategories distinct values by descending count. Ties keep first
// appearance order so reruns are deterministic. Labels carry the full value;
// truncation is a display concern.
func BarChart(values []string, colName string) *report.ChartAggregate {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make(map[string]int)
	var distinct []string
	for i, v := range values {
		if _, seen := counts[v]; !seen {
			order[v] = i
			distinct = append(distinct, v)
		}
		counts[v]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return order[distinct[i]] < order[distinct[j]]
	})

	if len(distinct) > maxBarCategories {
		distinct = distinct[:maxBarCategories]
	}

	chart := &report.ChartAggregate{
		Type:   "bar",
		Title:  fmt.Sprintf("Value Counts of %s", colName),
		XLabel: colName,
		YLabel: "Count",
		Labels: make([]string, len(distinct)),
		Values: make([]int, len(distinct)),
	}
	for i, v := range distinct {
		chart.Labels[i] = v
		chart.Values[i] = counts[v]
	}
	return chart
}

// BoxPlot builds the five-number summary for a numeric column. The whiskers
// are the most extreme values inside the outlier fence, consistent with
// DetectOutliers. Undefined below minOutlierSamples values.
func BoxPlot(values []float64) *report.BoxPlotSummary {
	fence, ok := NewFence(values)
	if !ok {
		return nil
	}

	whiskerLo := math.Inf(1)
	whiskerHi := math.Inf(-1)
	outliers := []float64{}
	for _, v := range values {
		if fence.Outside(v) {
			outliers = append(outliers, roundTo(v, outlierValuePrecision))
			continue
		}
		if v < whiskerLo {
			whiskerLo = v
		}
		if v > whiskerHi {
			whiskerHi = v
		}
	}

	return &report.BoxPlotSummary{
		Min:      whiskerLo,
		Q1:       fence.Q1,
		Median:   Quantile(values, 0.5),
		Q3:       fence.Q3,
		Max:      whiskerHi,
		Outliers: outliers,
	}
}

// formatEdge renders a bin edge compactly (whole numbers without decimals).
func formatEdge(v float64) string {
	r := roundTo(v, displayPrecision)
	if r == math.Trunc(r) {
		return fmt.Sprintf("%.0f", r)
	}
	return fmt.Sprintf("%.2f", r)
}
