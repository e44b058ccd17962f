// Package scanbook binds a directory of scanned-page JPEG images and a
// directory of matching transcription text files into one self-contained
// HTML viewer.
//
// # Quick Start
//
// Discover the image/text pairs, then generate the artifact:
//
//	pages, err := scanbook.DiscoverPages("scans/", "transcriptions/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := scanbook.New()
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, scanbook.Input{Pages: pages})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("viewer.html", result.HTML, 0644)
//
// # Pairing
//
// Images (.jpg/.jpeg) and texts (.txt) are matched case-insensitively by
// file stem: pagina_001.JPG pairs with pagina_001.txt. Files without a
// partner on the other side are silently dropped, and when two image
// files collapse to the same lower-cased stem the lexicographically last
// one wins. The resulting page order is sorted by the lower-cased stem
// and is identical across runs and platforms.
//
// # Embedding
//
// Each image is embedded byte-for-byte as a base64 data URI. Each
// transcription is decoded with a UTF-8 -> ISO-8859-1 -> Windows-1252
// fallback chain (decoding never fails), escaped for HTML display, and
// escaped again for inclusion inside a backtick-delimited script string.
// The generated document needs no external resources and opens offline
// in any browser.
//
// # Options
//
// Input.Markdown renders transcriptions as Markdown (GFM plus syntax
// highlighting) instead of plain text. Input.PDF additionally renders a
// print-oriented PDF companion through headless Chrome; see
// WithTimeout for the render budget. PDF generation requires
// Chrome/Chromium — go-rod downloads a managed Chromium on first run,
// or set ROD_BROWSER_BIN to use an existing binary and ROD_NO_SANDBOX=1
// inside containers.
package scanbook
