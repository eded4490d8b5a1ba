package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrAssetMissing indicates an expected image file does not exist.
	ErrAssetMissing = errors.New("asset not found")

	// ErrInvalidAssetName indicates the asset name is empty, absolute, or
	// escapes its directory.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrUnsupportedImage indicates the file is not a decodable PNG or JPEG.
	ErrUnsupportedImage = errors.New("unsupported image")

	// ErrImageTooLarge indicates the file exceeds the loader's size limit.
	ErrImageTooLarge = errors.New("image too large")
)
