package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datalens/domain/table"
	"datalens/internal"
	apperrors "datalens/internal/errors"
)

// SupportedExtensions lists the file types the reader accepts. Legacy .xls
// is not readable by the workbook library and is rejected up front.
var SupportedExtensions = map[string]bool{
	".csv":  true,
	".tsv":  true,
	".xlsx": true,
	".xlsm": true,
}

// FileReader reads CSV, TSV and Excel files into datasets. It implements
// ports.DatasetReader.
type FileReader struct {
	logger *internal.Logger
}

// NewFileReader creates a reader for all supported formats.
func NewFileReader() *FileReader {
	return &FileReader{logger: internal.DefaultLogger}
}

// Read loads the file at path, dispatching on its extension.
func (r *FileReader) Read(ctx context.Context, path string) (*table.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NotFound(fmt.Sprintf("file %s", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExtensions[ext] {
		return nil, apperrors.UnsupportedFormat(ext)
	}

	r.logger.Info("[Ingest] reading %s file: %s", ext, filepath.Base(path))

	switch ext {
	case ".csv":
		return r.readDelimited(path, ',')
	case ".tsv":
		return r.readDelimited(path, '\t')
	default:
		return r.readWorkbook(path)
	}
}

// readDelimited reads a CSV or TSV file: header row first, every following
// row is data.
func (r *FileReader) readDelimited(path string, delimiter rune) (*table.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.IngestError("failed to open file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // tolerate ragged rows; pad below

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.IngestError("failed to parse file", err)
	}

	ds, err := datasetFromRows(rows)
	if err != nil {
		return nil, err
	}
	ds.SourceName = filepath.Base(path)
	return ds, nil
}

// datasetFromRows converts header+data string rows into a typed dataset.
// Short rows are padded with missing cells, long rows truncated to the
// header width.
func datasetFromRows(rows [][]string) (*table.Dataset, error) {
	if len(rows) == 0 {
		return nil, apperrors.EmptyDataset("file has no rows")
	}

	columns := uniqueHeaders(rows[0])
	dataRows := rows[1:]

	cells := make(map[string][]table.Value, len(columns))
	for _, name := range columns {
		cells[name] = make([]table.Value, 0, len(dataRows))
	}

	for _, row := range dataRows {
		for i, name := range columns {
			if i < len(row) {
				cells[name] = append(cells[name], CoerceCell(row[i]))
			} else {
				cells[name] = append(cells[name], table.NewMissingValue())
			}
		}
	}

	ds, err := table.NewDataset(columns, cells)
	if err != nil {
		return nil, apperrors.IngestError("failed to build dataset", err)
	}
	return ds, nil
}

// uniqueHeaders trims header names, names blank headers, and disambiguates
// duplicates with a numeric suffix.
func uniqueHeaders(header []string) []string {
	seen := make(map[string]int, len(header))
	out := make([]string, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}
