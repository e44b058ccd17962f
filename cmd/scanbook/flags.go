package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line options.
type cliFlags struct {
	images   string
	texts    string
	output   string
	title    string
	lang     string
	markdown bool
	pdf      bool
	timeout  time.Duration
	config   string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses args (without the program name).
// Returns flag.ErrHelp when -h/--help was requested.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("scanbook", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // usage is printed by main

	f := &cliFlags{}
	fs.StringVarP(&f.images, "images", "i", "", "directory with scanned JPEG images")
	fs.StringVarP(&f.texts, "texts", "t", "", "directory with transcription .txt files")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default viewer.html)")
	fs.StringVar(&f.title, "title", "", "viewer title")
	fs.StringVar(&f.lang, "lang", "", "document language tag (default en)")
	fs.BoolVar(&f.markdown, "markdown", false, "render transcriptions as Markdown")
	fs.BoolVar(&f.pdf, "pdf", false, "also render a print-oriented PDF companion")
	fs.DurationVar(&f.timeout, "timeout", 0, "PDF render budget (default 60s)")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
