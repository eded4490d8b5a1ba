// Package assets resolves and decodes the input images of a deck.
//
// # Loader Architecture
//
//	ImageLoader (interface)
//	    │
//	    ├── FilesystemLoader  - named images inside an asset directory
//	    └── FileLoader        - any path, used for generated charts
//
// FilesystemLoader resolves names such as "hero.png" against a base
// directory, with path traversal protection and symlink resolution.
// Resolve looks up every image a deck needs and reports all missing files at
// once, each error naming the path that was expected.
//
// # Directory Structure
//
//	{basePath}/
//	├── hero.png
//	├── mockup.png
//	└── architecture.png
//
// # Formats
//
// PNG and JPEG are accepted. Only the header is decoded to learn the pixel
// size; the bytes are embedded in the presentation unchanged.
package assets
