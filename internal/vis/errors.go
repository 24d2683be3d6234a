package vis

import "errors"

// Invalid-input errors. All are returned before a figure is created.
var (
	ErrUnsupportedStructure = errors.New("structure is not a Mesh or PointCloud")
	ErrNoStructures         = errors.New("no structures to plot")
	ErrEmptyBatch           = errors.New("no data is provided with at least one element")
	ErrBatchSizeMismatch    = errors.New("invalid batch size")
	ErrSubplotTitleCount    = errors.New("invalid number of subplot titles")
	ErrInvalidOption        = errors.New("invalid option")
)
