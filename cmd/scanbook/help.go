package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: scanbook [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bind scanned-page JPEG images and matching transcription .txt files")
	fmt.Fprintln(w, "into one self-contained HTML viewer. Files pair by base name,")
	fmt.Fprintln(w, "case-insensitively: page_001.jpg <-> page_001.txt.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --images <dir>     Directory with scanned JPEG images")
	fmt.Fprintln(w, "  -t, --texts <dir>      Directory with transcription .txt files")
	fmt.Fprintln(w, "                         Both are prompted for when omitted on a terminal.")
	fmt.Fprintln(w, "  -o, --output <path>    Output file (default viewer.html)")
	fmt.Fprintln(w, "  -c, --config <path>    Config file (default ~/.config/scanbook/config.yaml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Viewer:")
	fmt.Fprintln(w, "      --title <s>        Viewer title")
	fmt.Fprintln(w, "      --lang <s>         Document language tag (default en)")
	fmt.Fprintln(w, "      --markdown         Render transcriptions as Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF companion:")
	fmt.Fprintln(w, "      --pdf              Also render a print-oriented PDF (needs Chrome/Chromium)")
	fmt.Fprintln(w, "      --timeout <d>      PDF render budget, e.g. 90s (default 60s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed progress")
	fmt.Fprintln(w, "      --version          Show version and exit")
}
