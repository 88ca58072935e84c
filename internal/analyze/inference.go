package analyze

import (
	"strings"

	"datalens/domain/report"
	"datalens/domain/table"
)

// Classification thresholds. Fixed constants so runs are reproducible; see
// DESIGN.md for how they were chosen.
const (
	// numericThreshold is the minimum share of non-missing cells that must
	// be numbers for a column to classify as Numerical.
	numericThreshold = 0.95
	// dateThreshold is the minimum share of non-missing cells that must be
	// dates for a column to classify as Date.
	dateThreshold = 0.90
	// idUniqueRatio is the unique/non-missing ratio above which an
	// identifier-like column is skipped.
	idUniqueRatio = 0.95
)

// SkipReasonAllMissing marks columns with zero non-missing cells.
const SkipReasonAllMissing = "all values missing"

// SkipReasonIdentifier marks high-cardinality identifier-like columns.
const SkipReasonIdentifier = "high-cardinality identifier-like column"

// Inference is the outcome of classifying one column.
type Inference struct {
	Category   report.Category
	DType      string
	SkipReason string
}

// InferColumn classifies a column from its already-typed cells. The
// heuristic is ordered and the first match wins:
//
//  1. almost-entirely numeric -> Numerical
//  2. almost-entirely dates   -> Date
//  3. identifier-like         -> Skipped
//  4. everything else         -> Categorical
//
// Boolean-looking numeric columns (exactly two distinct values) classify as
// Categorical so mean/std are never computed on encodings like 0/1.
func InferColumn(name string, cells []table.Value) Inference {
	var numbers, dates, nonMissing int
	allWhole := true
	for _, c := range cells {
		switch {
		case c.IsMissing():
			continue
		case c.IsNumber():
			numbers++
			if v := c.AsFloat64(); v != float64(int64(v)) {
				allWhole = false
			}
		case c.IsDate():
			dates++
		}
		nonMissing++
	}

	if nonMissing == 0 {
		return Inference{Category: report.CategorySkipped, DType: "object", SkipReason: SkipReasonAllMissing}
	}

	unique := countUnique(cells)

	if float64(numbers)/float64(nonMissing) >= numericThreshold {
		if unique == 2 {
			return Inference{Category: report.CategoryCategorical, DType: "object"}
		}
		dtype := "float64"
		if allWhole {
			dtype = "int64"
		}
		return Inference{Category: report.CategoryNumerical, DType: dtype}
	}

	if float64(dates)/float64(nonMissing) >= dateThreshold {
		return Inference{Category: report.CategoryDate, DType: "datetime64"}
	}

	ratio := float64(unique) / float64(nonMissing)
	if ratio > idUniqueRatio && (nameLooksIdentifier(name) || unique == nonMissing) {
		return Inference{Category: report.CategorySkipped, DType: "object", SkipReason: SkipReasonIdentifier}
	}

	return Inference{Category: report.CategoryCategorical, DType: "object"}
}

// countUnique counts distinct non-missing display values in a column.
func countUnique(cells []table.Value) int {
	seen := make(map[string]struct{})
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		seen[c.String()] = struct{}{}
	}
	return len(seen)
}

// countMissing counts cells equal to the missing marker.
func countMissing(cells []table.Value) int {
	n := 0
	for _, c := range cells {
		if c.IsMissing() {
			n++
		}
	}
	return n
}

// nameLooksIdentifier reports whether a column name hints at an identifier.
// Matching is token-based ("order id", "user_key") plus a lowercase "id"
// suffix to catch camelCase names like "userId".
func nameLooksIdentifier(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return false
	}
	hints := map[string]bool{"id": true, "uuid": true, "guid": true, "key": true}
	for _, tok := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if hints[tok] {
			return true
		}
	}
	return strings.HasSuffix(lower, "id")
}
