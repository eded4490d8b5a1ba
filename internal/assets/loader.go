package assets

// ImageLoader defines the contract for reading an image by path.
// Implementations may read from disk, an embedded filesystem, or memory.
type ImageLoader interface {
	// LoadImage reads and decodes the header of the image at path.
	// Returns ErrAssetMissing if the file does not exist.
	// Returns ErrUnsupportedImage if the content is not PNG or JPEG.
	LoadImage(path string) (*Image, error)
}
