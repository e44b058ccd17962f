package scanbook

import "strings"

// writePrintSection appends one page to the print document body: heading,
// image, transcription. In markdown mode the rendered fragment is used
// as-is; otherwise the raw text is HTML-escaped into a <pre> block.
func writePrintSection(b *strings.Builder, name, imageURI, fragment, text string, markdown bool) {
	b.WriteString(`<section class="page">` + "\n<h2>")
	b.WriteString(EscapeHTML(name))
	b.WriteString("</h2>\n<img src=\"")
	b.WriteString(imageURI)
	b.WriteString(`" alt="`)
	b.WriteString(EscapeHTML(name))
	b.WriteString("\">\n")
	if markdown {
		b.WriteString(`<div class="transcription">` + "\n")
		b.WriteString(fragment)
		b.WriteString("</div>\n")
	} else {
		b.WriteString("<pre>")
		b.WriteString(EscapeHTML(text))
		b.WriteString("</pre>\n")
	}
	b.WriteString("</section>\n")
}
