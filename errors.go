package pitchdeck

import "errors"

// Sentinel errors for library operations.
var (
	ErrAssetMissing     = errors.New("asset missing")
	ErrInvalidAsset     = errors.New("asset cannot be used")
	ErrWriteFailed      = errors.New("write failed")
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrRender           = errors.New("render failed")

	// Option validation errors.
	ErrInvalidOption = errors.New("invalid option")
)
