package scanbook

import (
	"bytes"
	"context"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownRenderer converts transcription Markdown to HTML fragments
// using goldmark (pure Go).
type markdownRenderer struct {
	md goldmark.Markdown
}

// newMarkdownRenderer creates a markdownRenderer with GFM extensions and
// syntax highlighting. Highlighting uses inline styles so the generated
// artifact stays self-contained without a stylesheet.
func newMarkdownRenderer() *markdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Transcriptions are line-oriented
			html.WithXHTML(),
			// WithUnsafe() intentionally NOT used: raw HTML in a
			// transcription must not reach the artifact unescaped.
		),
	)
	return &markdownRenderer{md: md}
}

// Render converts Markdown content to an HTML fragment. The fragment is
// inserted into the viewer as markup, so it receives only the
// script-literal escaping layer afterwards.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *markdownRenderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
