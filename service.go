package scanbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mtoscano/scanbook/internal/assets"
)

// Service orchestrates the page-embedding pipeline.
type Service struct {
	cfg      serviceConfig
	markdown *markdownRenderer
	pdf      pdfConverter
	progress func(done, total int, name string)
	now      func() time.Time
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{timeout: defaultTimeout},
		markdown: newMarkdownRenderer(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate embeds every page into the viewer document and returns the
// result. Pages are processed one at a time: read, encode/decode,
// escape, append. Only the cumulative output buffer is held across
// pages, never the source file handles.
//
// Any single unreadable image or text aborts the whole run with the
// offending page named in the error; an incomplete viewer would be worse
// than no output.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if len(input.Pages) == 0 {
		return nil, ErrNoPages
	}

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}
	lang := input.Lang
	if lang == "" {
		lang = defaultLang
	}

	var entries strings.Builder
	var printBody strings.Builder
	total := len(input.Pages)

	for i, page := range input.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.progress != nil {
			s.progress(i+1, total, page.Name)
		}

		imageURI, err := ReadImageDataURI(page.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.Name, err)
		}

		text, err := ReadTextFile(page.TextPath)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.Name, err)
		}

		var body, fragment string
		if input.Markdown {
			fragment, err = s.markdown.Render(ctx, text)
			if err != nil {
				return nil, fmt.Errorf("page %s: %w", page.Name, err)
			}
			// The fragment is already markup; it only needs the
			// script-literal layer.
			body = EscapeTemplateLiteral(fragment)
		} else {
			body = EscapePageText(text)
		}

		writePageEntry(&entries, i, page.Name, imageURI, body)
		if input.PDF {
			writePrintSection(&printBody, page.Name, imageURI, fragment, text, input.Markdown)
		}
	}

	viewer := assets.RenderViewer(assets.ViewerData{
		Title:     title,
		Lang:      lang,
		Pages:     entries.String(),
		Generated: s.now().Format("2006-01-02"),
	})
	result := &Result{HTML: []byte(viewer)}

	if input.PDF {
		printDoc := assets.RenderPrint(assets.PrintData{
			Title: title,
			Lang:  lang,
			Body:  printBody.String(),
		})
		pdfBytes, err := s.pdf.ToPDF(ctx, printDoc)
		if err != nil {
			return nil, fmt.Errorf("rendering PDF companion: %w", err)
		}
		result.PDF = pdfBytes
	}

	return result, nil
}

// Close releases resources (headless Chrome browser, if one was started).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// writePageEntry appends one record to the embedded script array. The
// display name gets only the markup escaping pass: it is inserted as a
// template-literal value, not as a quoted-and-escaped script string.
// The text is already doubly escaped by the caller.
func writePageEntry(b *strings.Builder, index int, name, imageURI, text string) {
	if index > 0 {
		b.WriteString(",\n")
	}
	b.WriteString("  {\n    name: `")
	b.WriteString(EscapeHTML(name))
	b.WriteString("`,\n    image: \"")
	b.WriteString(imageURI)
	b.WriteString("\",\n    text: `")
	b.WriteString(text)
	b.WriteString("`\n  }")
}
