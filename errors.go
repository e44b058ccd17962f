package scanbook

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoPages        = errors.New("no image/text pairs to embed")
	ErrReadImageDir   = errors.New("cannot read image directory")
	ErrReadTextDir    = errors.New("cannot read text directory")
	ErrReadImage      = errors.New("failed to read image file")
	ErrReadText       = errors.New("failed to read text file")
	ErrMarkdownRender = errors.New("markdown rendering failed")

	// Browser errors for the optional PDF companion.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
