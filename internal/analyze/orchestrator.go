package analyze

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"datalens/domain/report"
	"datalens/domain/table"
	"datalens/internal"
)

// previewRows is how many leading rows the report previews.
const previewRows = 5

// Report-level messages. Kept stable because clients surface them verbatim.
const (
	msgInvalidDataset = "Please upload the file in a correct format"
	msgValidDataset   = "Uploaded file is in correct format"
)

// Orchestrator runs the full analysis pipeline over one dataset: classify
// each column, profile it by category, then aggregate correlation and
// quality. Column profiling is independent per column and runs on a bounded
// worker pool; correlation and quality join after all columns finish.
type Orchestrator struct {
	workers int
	logger  *internal.Logger
}

// NewOrchestrator creates an orchestrator with the given worker count.
func NewOrchestrator(workers int) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{workers: workers, logger: internal.DefaultLogger}
}

// Analyze produces the complete report for a dataset. Every declared column
// gets exactly one entry, in declared order, even when its profiling fails;
// only an empty dataset short-circuits (valid:false, no per-column work).
// Cancellation is honored at column granularity: in-flight columns finish,
// queued ones are abandoned and the context error is returned.
func (o *Orchestrator) Analyze(ctx context.Context, ds *table.Dataset) (*report.AnalysisResult, error) {
	if ds == nil || ds.IsEmpty() {
		o.logger.Warn("[Analyze] rejected empty dataset")
		result := &report.AnalysisResult{
			Valid:          false,
			Message:        msgInvalidDataset,
			ColumnAnalysis: []report.ColumnAnalysis{},
		}
		if ds != nil {
			result.Rows = ds.RowCount()
			result.Columns = ds.ColumnCount()
			result.SheetNames = ds.SheetNames
		}
		return result, nil
	}

	columns := ds.Columns()
	rows := ds.RowCount()
	o.logger.Info("[Analyze] starting: %d rows x %d columns", rows, len(columns))

	cellsByName := make(map[string][]table.Value, len(columns))
	for _, name := range columns {
		cells, _ := ds.Column(name)
		cellsByName[name] = cells
	}

	result := &report.AnalysisResult{
		Valid:          true,
		Message:        msgValidDataset,
		Rows:           rows,
		Columns:        len(columns),
		PreviewColumns: columns,
		Preview:        buildPreview(columns, cellsByName, rows),
		SheetNames:     ds.SheetNames,
	}

	entries := make([]report.ColumnAnalysis, len(columns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, name := range columns {
		i, name := i, name
		g.Go(func() error {
			// Abort between columns, never mid-profile.
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			entries[i] = o.analyzeColumn(name, cellsByName[name], rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.ColumnAnalysis = entries

	// Join point: dataset-level aggregates need every column's outcome.
	numericNames := make([]string, 0, len(columns))
	totalMissing := 0
	for i, name := range columns {
		totalMissing += entries[i].Missing
		if entries[i].Category == report.CategoryNumerical {
			numericNames = append(numericNames, name)
		}
	}

	if len(numericNames) >= 2 {
		result.Correlation = Correlation(numericNames, cellsByName)
	} else {
		result.LogMessages = append(result.LogMessages, noNumericMessage(ds))
	}

	result.DataQuality = OverallQuality(totalMissing, rows*len(columns))

	o.logger.Info("[Analyze] done: %d numeric columns, overall quality %.2f%%",
		len(numericNames), result.DataQuality.Overall)
	return result, nil
}

// analyzeColumn classifies one column and dispatches the category-specific
// profiling. A panic anywhere in the profiling path is isolated into an
// Error entry so the rest of the analysis proceeds.
func (o *Orchestrator) analyzeColumn(name string, cells []table.Value, rows int) (entry report.ColumnAnalysis) {
	entry = report.ColumnAnalysis{
		Name:    name,
		Missing: countMissing(cells),
		Unique:  countUnique(cells),
	}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("[Analyze] column %q failed: %v", name, r)
			entry.Category = report.CategoryError
			entry.DType = "object"
			entry.Error = fmt.Sprintf("column analysis failed: %v", r)
			entry.Stats, entry.Chart, entry.BoxPlot, entry.Outliers = nil, nil, nil, nil
		}
		entry.Quality = ColumnQuality(entry.Missing, rows, entry.Category == report.CategoryError)
	}()

	inf := InferColumn(name, cells)
	entry.Category = inf.Category
	entry.DType = inf.DType
	entry.SkipReason = inf.SkipReason

	switch inf.Category {
	case report.CategoryNumerical:
		values, valueRows := NumericValues(cells)
		entry.Stats = NumericStats(values)
		entry.Chart = Histogram(values, name)
		entry.BoxPlot = BoxPlot(values)
		entry.Outliers = DetectOutliers(values, valueRows)
	case report.CategoryDate:
		entry.Stats = DateStats(cells)
	case report.CategoryCategorical:
		entry.Chart = BarChart(TextValues(cells), name)
	case report.CategorySkipped:
		// Unique and missing counts only; nothing to chart.
	}

	return entry
}

// buildPreview renders the first previewRows rows as display strings keyed
// by column name, in declared column order.
func buildPreview(columns []string, cells map[string][]table.Value, rows int) []map[string]string {
	n := rows
	if n > previewRows {
		n = previewRows
	}
	preview := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		row := make(map[string]string, len(columns))
		for _, name := range columns {
			row[name] = cells[name][i].String()
		}
		preview[i] = row
	}
	return preview
}

func noNumericMessage(ds *table.Dataset) string {
	if ds.SheetName != "" {
		return fmt.Sprintf("sheet %s has no numeric columns to correlate", ds.SheetName)
	}
	return "dataset has fewer than two numeric columns; correlation skipped"
}
