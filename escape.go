package scanbook

import (
	"html"
	"strings"
)

// templateLiteralEscaper escapes the characters that are structurally
// significant inside a backtick-delimited script string: backslash,
// backtick, and the interpolation trigger. strings.Replacer substitutes
// in a single simultaneous pass, so the backslashes it inserts are never
// themselves re-escaped.
var templateLiteralEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`$`, `\$`,
)

// EscapeHTML escapes markup-significant characters (&, <, >, quotes) so
// text renders as literal content instead of markup structure.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// EscapeTemplateLiteral makes s safe for embedding inside a
// backtick-delimited script string literal.
func EscapeTemplateLiteral(s string) string {
	return templateLiteralEscaper.Replace(s)
}

// EscapePageText applies both escaping layers in order: markup first,
// then script literal. The result renders back to the original text when
// the script layer is parsed and the markup layer is displayed.
func EscapePageText(s string) string {
	return EscapeTemplateLiteral(EscapeHTML(s))
}
