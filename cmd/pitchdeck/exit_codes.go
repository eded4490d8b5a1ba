package main

import (
	"errors"
	"os"

	pitchdeck "github.com/alnah/go-pitchdeck"
	"github.com/alnah/go-pitchdeck/internal/config"
	"github.com/alnah/go-pitchdeck/internal/pptx"
)

// Exit codes for pitchdeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Deck generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or dataset
	ExitIO      = 3 // Asset missing, write failure, unreadable file
	ExitRender  = 4 // Chart or slide rendering failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, pitchdeck.ErrRender) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, pitchdeck.ErrAssetMissing) ||
		errors.Is(err, pitchdeck.ErrInvalidAsset) ||
		errors.Is(err, pitchdeck.ErrWriteFailed) ||
		errors.Is(err, pptx.ErrRead) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pitchdeck.ErrInvalidOption) ||
		errors.Is(err, pitchdeck.ErrMalformedDataset) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
