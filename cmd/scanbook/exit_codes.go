package main

import (
	"errors"
	"os"

	scanbook "github.com/mtoscano/scanbook"
	"github.com/mtoscano/scanbook/internal/config"
)

// Exit codes for the scanbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Viewer generated
	ExitGeneral = 1 // General error, including the zero-match condition
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors (PDF companion)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, scanbook.ErrBrowserConnect) ||
		errors.Is(err, scanbook.ErrPageCreate) ||
		errors.Is(err, scanbook.ErrPageLoad) ||
		errors.Is(err, scanbook.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, scanbook.ErrReadImageDir) ||
		errors.Is(err, scanbook.ErrReadTextDir) ||
		errors.Is(err, scanbook.ErrReadImage) ||
		errors.Is(err, scanbook.ErrReadText) ||
		errors.Is(err, ErrNotADir) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, scanbook.ErrNoPages) ||
		errors.Is(err, ErrNoInput) {
		return ExitUsage
	}

	return ExitGeneral
}
