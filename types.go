package scanbook

import "time"

// Page is one matched image/text unit. Name carries the image file's
// original stem casing for display; matching itself is case-insensitive.
// Pages are created by DiscoverPages and consumed once by Generate.
type Page struct {
	Name      string
	ImagePath string
	TextPath  string
}

// Input contains generation parameters.
type Input struct {
	Pages    []Page // ordered pair list (required, non-empty)
	Title    string // viewer title (default: DefaultTitle)
	Lang     string // document language tag (default: "en")
	Markdown bool   // render transcriptions as Markdown instead of plain text
	PDF      bool   // also render the print-oriented PDF companion
}

// Result holds the generated artifacts.
type Result struct {
	HTML []byte
	PDF  []byte // nil unless Input.PDF was set
}

// DefaultTitle is used when Input.Title is empty.
const DefaultTitle = "Transcription Viewer"

// defaultLang is used when Input.Lang is empty.
const defaultLang = "en"

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout bounds PDF rendering when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("scanbook: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithProgress registers a callback invoked before each page is
// processed, with 1-based position, total count, and display name.
func WithProgress(fn func(done, total int, name string)) Option {
	return func(s *Service) {
		s.progress = fn
	}
}

// WithClock overrides the time source used for the generation stamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
