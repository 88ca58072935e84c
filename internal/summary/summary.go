// Package summary renders a human-readable digest of an analysis report,
// as markdown and as HTML for the web UI.
package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"datalens/domain/report"
)

// Markdown builds a markdown digest of the analysis result: dataset shape,
// overall quality, per-column headlines, and the strongest correlation.
func Markdown(name string, result *report.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Analysis of %s\n\n", name)

	if !result.Valid {
		fmt.Fprintf(&b, "**Invalid dataset.** %s\n", result.Message)
		return b.String()
	}

	fmt.Fprintf(&b, "%d rows, %d columns.", result.Rows, result.Columns)
	if result.DataQuality != nil {
		fmt.Fprintf(&b, " Overall data quality: **%.2f%%** (%d of %d cells missing).",
			result.DataQuality.Overall, result.DataQuality.TotalMissing, result.DataQuality.TotalCells)
	}
	b.WriteString("\n\n## Columns\n\n")

	for _, col := range result.ColumnAnalysis {
		b.WriteString(columnLine(col))
	}

	if result.Correlation != nil {
		if line := strongestPair(result.Correlation); line != "" {
			b.WriteString("\n## Correlation\n\n")
			b.WriteString(line)
		}
	}

	for _, msg := range result.LogMessages {
		fmt.Fprintf(&b, "\n> %s\n", msg)
	}

	return b.String()
}

// HTML renders the markdown digest to an HTML fragment.
func HTML(name string, result *report.AnalysisResult) string {
	md := Markdown(name, result)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer))
}

func columnLine(col report.ColumnAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **%s** (%s, %s): %d unique, %d missing, quality %.2f%%",
		col.Name, col.Category, col.DType, col.Unique, col.Missing, col.Quality)

	switch col.Category {
	case report.CategoryNumerical:
		if col.Stats != nil && col.Stats.Mean != nil {
			fmt.Fprintf(&b, "; mean %.2f, median %.2f, std %.2f",
				*col.Stats.Mean, *col.Stats.Median, *col.Stats.Std)
		}
		if col.Outliers != nil && col.Outliers.Total > 0 {
			fmt.Fprintf(&b, "; %d outlier(s)", col.Outliers.Total)
		}
	case report.CategoryDate:
		if col.Stats != nil {
			fmt.Fprintf(&b, "; range %s to %s", col.Stats.MinDate, col.Stats.MaxDate)
		}
	case report.CategorySkipped:
		fmt.Fprintf(&b, "; skipped: %s", col.SkipReason)
	case report.CategoryError:
		fmt.Fprintf(&b, "; error: %s", col.Error)
	}

	b.WriteString("\n")
	return b.String()
}

// strongestPair reports the off-diagonal pair with the largest absolute
// correlation.
func strongestPair(corr *report.CorrelationMatrix) string {
	best := 0.0
	bi, bj := -1, -1
	for i := range corr.Matrix {
		for j := i + 1; j < len(corr.Matrix[i]); j++ {
			if math.Abs(corr.Matrix[i][j]) > math.Abs(best) {
				best = corr.Matrix[i][j]
				bi, bj = i, j
			}
		}
	}
	if bi < 0 {
		return ""
	}
	return fmt.Sprintf("Strongest pair: **%s** vs **%s** (r = %.4f).\n",
		corr.Columns[bi], corr.Columns[bj], best)
}
