// Package assets holds the fixed presentation templates embedded into
// the binary. The templates carry no pairing or escaping logic; they are
// opaque documents with named placeholder tokens filled in by the
// assembler.
package assets

import (
	"embed"
	"html"
	"strings"
)

//go:embed templates/*
var templates embed.FS

// Placeholder tokens recognized in the embedded templates.
const (
	tokenTitle     = "{{TITLE}}"
	tokenLang      = "{{LANG}}"
	tokenPages     = "{{PAGES}}"
	tokenBody      = "{{BODY}}"
	tokenGenerated = "{{GENERATED}}"
)

var (
	viewerTemplate = mustTemplate("viewer.html")
	printTemplate  = mustTemplate("print.html")
)

// mustTemplate loads an embedded template by file name.
// Panics if the template is missing (programmer error).
func mustTemplate(name string) string {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		panic("assets: missing embedded template " + name + ": " + err.Error())
	}
	return string(content)
}

// ViewerData fills the viewer template. Pages is the pre-escaped script
// array body and is inserted verbatim; Title, Lang, and Generated are
// HTML-escaped here.
type ViewerData struct {
	Title     string
	Lang      string
	Pages     string
	Generated string
}

// RenderViewer injects d into the viewer template.
//
// Placeholder substitution is plain string replacement rather than
// html/template: the Pages payload is already escaped for its dual
// markup/script context, and context-aware template escaping would
// corrupt it.
func RenderViewer(d ViewerData) string {
	return strings.NewReplacer(
		tokenTitle, html.EscapeString(d.Title),
		tokenLang, html.EscapeString(d.Lang),
		tokenPages, d.Pages,
		tokenGenerated, html.EscapeString(d.Generated),
	).Replace(viewerTemplate)
}

// PrintData fills the print template. Body is pre-rendered page markup
// and is inserted verbatim.
type PrintData struct {
	Title string
	Lang  string
	Body  string
}

// RenderPrint injects d into the print template.
func RenderPrint(d PrintData) string {
	return strings.NewReplacer(
		tokenTitle, html.EscapeString(d.Title),
		tokenLang, html.EscapeString(d.Lang),
		tokenBody, d.Body,
	).Replace(printTemplate)
}
