package report

import "time"

// Category classifies a column's semantic type. The set is closed: every
// column lands in exactly one category and the orchestrator dispatches
// profiling on it.
type Category string

const (
	CategoryNumerical   Category = "Numerical"
	CategoryCategorical Category = "Categorical"
	CategoryDate        Category = "Date"
	CategorySkipped     Category = "Skipped"
	CategoryError       Category = "Error"
)

// ColumnStats holds the category-specific numeric summary. Numeric columns
// carry the full set; date columns carry only formatted min/max.
type ColumnStats struct {
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Mean   *float64 `json:"mean,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Std    *float64 `json:"std,omitempty"`

	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
}

// OutlierRow is one flagged value paired with its original row number
// (1-based, the way a spreadsheet user counts data rows).
type OutlierRow struct {
	Row   int     `json:"row"`
	Value float64 `json:"value"`
}

// OutlierReport summarizes the IQR fence for a numeric column. Rows holds at
// most the first 5 outliers by row index; Total counts all of them, and the
// thresholds are always present so clients can draw the fence.
type OutlierReport struct {
	Total          int          `json:"total"`
	Rows           []OutlierRow `json:"rows"`
	LowerThreshold float64      `json:"lower_threshold"`
	UpperThreshold float64      `json:"upper_threshold"`
}

// ChartAggregate carries everything a client needs to render a histogram or
// bar chart without further computation.
type ChartAggregate struct {
	Type   string   `json:"type"` // "histogram" or "bar"
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Title  string   `json:"title"`
	XLabel string   `json:"x_label"`
	YLabel string   `json:"y_label"`
}

// BoxPlotSummary gives the five-number summary for a numeric column. Min and
// Max are the whiskers (most extreme non-outlier values), consistent with
// the outlier fence.
type BoxPlotSummary struct {
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers"`
}

// ColumnAnalysis is the per-column report entry. Exactly one exists per
// declared column regardless of per-column failures.
type ColumnAnalysis struct {
	Name       string          `json:"name"`
	Category   Category        `json:"category"`
	DType      string          `json:"dtype"`
	Unique     int             `json:"unique"`
	Missing    int             `json:"missing"`
	Quality    float64         `json:"quality"`
	Stats      *ColumnStats    `json:"stats,omitempty"`
	Chart      *ChartAggregate `json:"chart,omitempty"`
	BoxPlot    *BoxPlotSummary `json:"boxplot,omitempty"`
	Outliers   *OutlierReport  `json:"outliers,omitempty"`
	Error      string          `json:"error,omitempty"`
	SkipReason string          `json:"skip_reason,omitempty"`
}

// CorrelationMatrix is the pairwise Pearson matrix over numeric columns,
// symmetric with a unit diagonal.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Matrix  [][]float64 `json:"matrix"`
}

// DataQuality is the dataset-wide completeness summary.
type DataQuality struct {
	Overall      float64 `json:"overall"`
	TotalMissing int     `json:"total_missing"`
	TotalCells   int     `json:"total_cells"`
}

// AnalysisResult is the full report for one analysis request.
type AnalysisResult struct {
	Valid          bool                `json:"valid"`
	Message        string              `json:"message"`
	Rows           int                 `json:"rows"`
	Columns        int                 `json:"columns"`
	PreviewColumns []string            `json:"preview_columns"`
	Preview        []map[string]string `json:"preview"`
	ColumnAnalysis []ColumnAnalysis    `json:"column_analysis"`
	DataQuality    *DataQuality        `json:"data_quality,omitempty"`
	Correlation    *CorrelationMatrix  `json:"correlation,omitempty"`
	SheetNames     []string            `json:"sheet_names,omitempty"`
	LogMessages    []string            `json:"log_messages,omitempty"`
}

// StoredReport wraps an AnalysisResult persisted by the report repository.
type StoredReport struct {
	ID        string          `json:"id"`
	Filename  string          `json:"filename"`
	Rows      int             `json:"rows"`
	Columns   int             `json:"columns"`
	Quality   float64         `json:"quality"`
	Result    *AnalysisResult `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}
