package scanbook

import (
	"strings"
	"testing"
)

func TestWritePrintSection_Plain(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	writePrintSection(&b, "folio <1>", "data:image/jpeg;base64,AQ==", "", "texto & <raro>", false)
	got := b.String()

	for _, want := range []string{
		`<section class="page">`,
		"<h2>folio &lt;1&gt;</h2>",
		`<img src="data:image/jpeg;base64,AQ==" alt="folio &lt;1&gt;">`,
		"<pre>texto &amp; &lt;raro&gt;</pre>",
		"</section>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("section missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<raro>") {
		t.Errorf("raw text markup leaked:\n%s", got)
	}
}

func TestWritePrintSection_Markdown(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	fragment := "<h1>Folio</h1>\n<p>ya es markup</p>\n"
	writePrintSection(&b, "p1", "data:image/jpeg;base64,AQ==", fragment, "# Folio\n\nya es markup", true)
	got := b.String()

	if !strings.Contains(got, `<div class="transcription">`) {
		t.Errorf("markdown section missing transcription wrapper:\n%s", got)
	}
	if !strings.Contains(got, fragment) {
		t.Errorf("rendered fragment should pass through verbatim:\n%s", got)
	}
	if strings.Contains(got, "<pre>") {
		t.Errorf("markdown mode must not fall back to <pre>:\n%s", got)
	}
}

func TestWritePrintSection_Appends(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	writePrintSection(&b, "a", "data:image/jpeg;base64,AQ==", "", "uno", false)
	writePrintSection(&b, "b", "data:image/jpeg;base64,AQ==", "", "dos", false)

	if got := strings.Count(b.String(), `<section class="page">`); got != 2 {
		t.Errorf("sections = %d, want 2", got)
	}
}
