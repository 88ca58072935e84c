package ports

import (
	"context"

	"datalens/domain/table"
)

// DatasetReader materializes a tabular file into an in-memory Dataset. The
// reader owns format detection and cell coercion; analysis never sees raw
// bytes or ambiguous strings.
type DatasetReader interface {
	// Read loads the file at path into a Dataset. For multi-sheet
	// workbooks the first sheet is read and all sheet names are recorded
	// on the dataset.
	Read(ctx context.Context, path string) (*table.Dataset, error)
}
