package scanbook

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakePDFConverter records the print document instead of driving a browser.
type fakePDFConverter struct {
	gotHTML string
	output  []byte
	err     error
	closed  bool
}

func (f *fakePDFConverter) ToPDF(_ context.Context, htmlContent string) ([]byte, error) {
	f.gotHTML = htmlContent
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func (f *fakePDFConverter) Close() error {
	f.closed = true
	return nil
}

// makePage writes an image/text pair into fresh temp dirs and returns the
// assembled record.
func makePage(t *testing.T, name string, image []byte, text string) Page {
	t.Helper()
	dir := t.TempDir()
	imagePath := filepath.Join(dir, name+".jpg")
	textPath := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(imagePath, image, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return Page{Name: name, ImagePath: imagePath, TextPath: textPath}
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	s := New(opts...)
	s.pdf = &fakePDFConverter{output: []byte("%PDF-fake")}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestServiceGenerate_EmbedsPages(t *testing.T) {
	t.Parallel()

	image := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	fixed := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	s := newTestService(t, WithClock(func() time.Time { return fixed }))
	result, err := s.Generate(context.Background(), Input{
		Pages: []Page{
			makePage(t, "pagina_001", image, "primer folio"),
			makePage(t, "pagina_002", image, "segundo folio"),
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := string(result.HTML)
	wantContains := []string{
		"<title>" + DefaultTitle + "</title>",
		`lang="en"`,
		"data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image),
		"name: `pagina_001`",
		"name: `pagina_002`",
		"primer folio",
		"segundo folio",
		"2026-01-02",
	}
	for _, want := range wantContains {
		if !strings.Contains(html, want) {
			t.Errorf("viewer missing %q", want)
		}
	}
	if strings.Contains(html, "{{") {
		t.Errorf("viewer has unexpanded placeholder:\n%s", html[:200])
	}
	if result.PDF != nil {
		t.Error("PDF bytes present without PDF mode")
	}
}

func TestServiceGenerate_TitleAndLang(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	result, err := s.Generate(context.Background(), Input{
		Pages: []Page{makePage(t, "p1", []byte{0x01}, "x")},
		Title: `Archivo <Municipal> "1842"`,
		Lang:  "es",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "Archivo &lt;Municipal&gt;") {
		t.Error("title should be HTML-escaped in the viewer")
	}
	if strings.Contains(html, "<Municipal>") {
		t.Error("raw title markup leaked into the viewer")
	}
	if !strings.Contains(html, `lang="es"`) {
		t.Error("lang attribute should carry the configured language")
	}
}

func TestServiceGenerate_NoPages(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	if _, err := s.Generate(context.Background(), Input{}); !errors.Is(err, ErrNoPages) {
		t.Errorf("err = %v, want ErrNoPages", err)
	}
}

func TestServiceGenerate_MissingImageFatal(t *testing.T) {
	t.Parallel()

	page := makePage(t, "pagina_009", []byte{0x01}, "texto")
	page.ImagePath = filepath.Join(t.TempDir(), "gone.jpg")

	s := newTestService(t)
	_, err := s.Generate(context.Background(), Input{Pages: []Page{page}})
	if !errors.Is(err, ErrReadImage) {
		t.Fatalf("err = %v, want ErrReadImage", err)
	}
	if !strings.Contains(err.Error(), "pagina_009") {
		t.Errorf("error %q should name the failing page", err)
	}
}

func TestServiceGenerate_TextEscaping(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	result, err := s.Generate(context.Background(), Input{
		Pages: []Page{makePage(t, "p1", []byte{0x01}, "`${evil}` <b>")},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "\\`\\${evil}\\` &lt;b&gt;") {
		t.Errorf("transcription not doubly escaped:\n%s", html)
	}
}

func TestServiceGenerate_Markdown(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	result, err := s.Generate(context.Background(), Input{
		Pages:    []Page{makePage(t, "p1", []byte{0x01}, "# Folio 12\n\n*margen*")},
		Markdown: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "<h1>Folio 12</h1>") {
		t.Error("markdown heading not rendered into the entry")
	}
	if !strings.Contains(html, "<em>margen</em>") {
		t.Error("markdown emphasis not rendered into the entry")
	}
}

func TestServiceGenerate_PDFCompanion(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{output: []byte("%PDF-fake")}
	s := New()
	s.pdf = fake
	t.Cleanup(func() { s.Close() })

	result, err := s.Generate(context.Background(), Input{
		Pages: []Page{makePage(t, "pagina_001", []byte{0x01}, "texto & más")},
		Title: "Legajo 7",
		PDF:   true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(result.PDF) != "%PDF-fake" {
		t.Errorf("PDF = %q, want converter output", result.PDF)
	}
	for _, want := range []string{
		`<section class="page">`,
		"<h2>pagina_001</h2>",
		"<pre>texto &amp; más</pre>",
		"<h1>Legajo 7</h1>",
	} {
		if !strings.Contains(fake.gotHTML, want) {
			t.Errorf("print document missing %q", want)
		}
	}
}

func TestServiceGenerate_PDFError(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{err: fmt.Errorf("%w: no chrome", ErrBrowserConnect)}
	s := New()
	s.pdf = fake
	t.Cleanup(func() { s.Close() })

	_, err := s.Generate(context.Background(), Input{
		Pages: []Page{makePage(t, "p1", []byte{0x01}, "x")},
		PDF:   true,
	})
	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("err = %v, want ErrBrowserConnect", err)
	}
}

func TestServiceGenerate_Progress(t *testing.T) {
	t.Parallel()

	var calls []string
	s := newTestService(t, WithProgress(func(done, total int, name string) {
		calls = append(calls, fmt.Sprintf("%d/%d %s", done, total, name))
	}))

	_, err := s.Generate(context.Background(), Input{
		Pages: []Page{
			makePage(t, "a", []byte{0x01}, "x"),
			makePage(t, "b", []byte{0x01}, "y"),
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []string{"1/2 a", "2/2 b"}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestServiceGenerate_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestService(t)
	_, err := s.Generate(ctx, Input{
		Pages: []Page{makePage(t, "p1", []byte{0x01}, "x")},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestService_Close(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{}
	s := New()
	s.pdf = fake

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fake.closed {
		t.Error("Close should release the converter")
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) should panic")
		}
	}()
	New(WithTimeout(0))
}
