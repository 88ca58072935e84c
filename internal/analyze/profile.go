package analyze

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"datalens/domain/report"
	"datalens/domain/table"
)

// displayPrecision is the number of decimals stats are rounded to.
const displayPrecision = 2

// dateDisplayFormat is the ISO-like format for date stats.
const dateDisplayFormat = "2006-01-02"

// NumericStats computes the numeric summary for a column's non-missing
// values. Standard deviation is the sample deviation (n-1); with fewer than
// two values it degrades to 0 instead of failing.
func NumericStats(values []float64) *report.ColumnStats {
	if len(values) == 0 {
		return nil
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)

	std := 0.0
	if len(values) >= 2 {
		if s, err := stats.StandardDeviationSample(values); err == nil {
			std = s
		}
	}

	return &report.ColumnStats{
		Min:    roundPtr(min),
		Max:    roundPtr(max),
		Mean:   roundPtr(mean),
		Median: roundPtr(median),
		Std:    roundPtr(std),
	}
}

// DateStats computes the min/max summary for a date column. Only dates are
// considered; other cells were already counted as misclassified noise.
func DateStats(cells []table.Value) *report.ColumnStats {
	var min, max time.Time
	found := false
	for _, c := range cells {
		if !c.IsDate() {
			continue
		}
		t := c.AsDate()
		if !found {
			min, max = t, t
			found = true
			continue
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	if !found {
		return nil
	}
	return &report.ColumnStats{
		MinDate: min.Format(dateDisplayFormat),
		MaxDate: max.Format(dateDisplayFormat),
	}
}

// NumericValues extracts the non-missing numbers of a column in row order,
// paired with their original row indexes.
func NumericValues(cells []table.Value) (values []float64, rows []int) {
	for i, c := range cells {
		if c.IsNumber() {
			values = append(values, c.AsFloat64())
			rows = append(rows, i)
		}
	}
	return values, rows
}

// TextValues extracts the non-missing display strings of a column in row order.
func TextValues(cells []table.Value) []string {
	var out []string
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		out = append(out, c.String())
	}
	return out
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func roundPtr(v float64) *float64 {
	r := roundTo(v, displayPrecision)
	return &r
}
