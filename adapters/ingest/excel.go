package ingest

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"datalens/domain/table"
	apperrors "datalens/internal/errors"
)

// readWorkbook reads the first sheet of an Excel workbook. The remaining
// sheet names are recorded on the dataset so the report can surface them.
func (r *FileReader) readWorkbook(path string) (*table.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.IngestError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.EmptyDataset("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.IngestError("failed to read sheet "+sheet, err)
	}
	r.logger.Info("[Ingest] sheet %q read (%d rows, %d sheets in workbook)", sheet, len(rows), len(sheets))

	ds, err := datasetFromRows(rows)
	if err != nil {
		return nil, err
	}
	ds.SourceName = filepath.Base(path)
	ds.SheetName = sheet
	ds.SheetNames = sheets
	return ds, nil
}
