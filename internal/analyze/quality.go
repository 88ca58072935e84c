package analyze

import "datalens/domain/report"

// errorQualityDiscount halves the score of columns whose profiling failed;
// their cells may be present but cannot be trusted.
const errorQualityDiscount = 0.5

// ColumnQuality scores one column in [0, 100] as the percentage of
// non-missing cells, discounted when the column errored.
func ColumnQuality(missing, rows int, errored bool) float64 {
	if rows == 0 {
		return 0.0
	}
	q := 100.0 * float64(rows-missing) / float64(rows)
	if errored {
		q *= errorQualityDiscount
	}
	return roundTo(q, displayPrecision)
}

// OverallQuality scores the whole dataset in [0, 100] as the percentage of
// non-missing cells across all columns.
func OverallQuality(totalMissing, totalCells int) *report.DataQuality {
	overall := 0.0
	if totalCells > 0 {
		overall = roundTo(100.0*(1.0-float64(totalMissing)/float64(totalCells)), displayPrecision)
	}
	return &report.DataQuality{
		Overall:      overall,
		TotalMissing: totalMissing,
		TotalCells:   totalCells,
	}
}
