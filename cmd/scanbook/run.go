package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"

	scanbook "github.com/mtoscano/scanbook"
	"github.com/mtoscano/scanbook/internal/config"
	"github.com/mtoscano/scanbook/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input directories specified")
	ErrNotADir     = errors.New("not a directory")
	ErrNoMatches   = errors.New("no matching image/text pairs found")
	ErrWriteOutput = errors.New("failed to write output file")
)

// defaultOutputName is used when neither flag nor config names the output.
const defaultOutputName = "viewer.html"

// summaryListLimit caps the pair listing in the default (non-verbose) summary.
const summaryListLimit = 5

// generator is the interface for the generation service.
type generator interface {
	Generate(ctx context.Context, input scanbook.Input) (*scanbook.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ generator = (*scanbook.Service)(nil)

// newService is swapped in tests to avoid constructing a browser-backed service.
var newService = func(opts ...scanbook.Option) generator { return scanbook.New(opts...) }

// run orchestrates the generation process: config, directory resolution,
// pairing, generation, atomic write.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	imageDir, textDir, err := resolveDirs(cfg, env)
	if err != nil {
		return err
	}

	pages, err := scanbook.DiscoverPages(imageDir, textDir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w between %s and %s%s",
			ErrNoMatches, imageDir, textDir, hints.ForNoMatches())
	}

	printSummary(env.Stderr, pages, flags.quiet, flags.verbose)

	opts := []scanbook.Option{scanbook.WithClock(env.Now)}
	if t := resolveTimeout(flags, cfg); t > 0 {
		opts = append(opts, scanbook.WithTimeout(t))
	}
	if !flags.quiet {
		progressOut := env.Stderr
		opts = append(opts, scanbook.WithProgress(func(done, total int, name string) {
			fmt.Fprintf(progressOut, "  processing %d/%d: %s\n", done, total, name)
		}))
	}

	svc := newService(opts...)
	defer func() { _ = svc.Close() }()

	result, err := svc.Generate(ctx, scanbook.Input{
		Pages:    pages,
		Title:    cfg.Viewer.Title,
		Lang:     cfg.Viewer.Lang,
		Markdown: cfg.Viewer.Markdown,
		PDF:      cfg.PDF.Enabled,
	})
	if err != nil {
		if errors.Is(err, scanbook.ErrBrowserConnect) {
			return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
		}
		return err
	}

	outPath := resolveOutputPath(cfg.Output.Path)
	if err := atomic.WriteFile(outPath, bytes.NewReader(result.HTML)); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, outPath, err, hints.ForOutputDirectory())
	}
	report(env.Stdout, outPath, len(result.HTML), len(pages), flags.quiet)

	if result.PDF != nil {
		pdfPath := pdfOutputPath(outPath)
		if err := atomic.WriteFile(pdfPath, bytes.NewReader(result.PDF)); err != nil {
			return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, pdfPath, err, hints.ForOutputDirectory())
		}
		report(env.Stdout, pdfPath, len(result.PDF), len(pages), flags.quiet)
	}

	return nil
}

// loadConfig loads an explicit config path, or the default user config
// when one exists. No config at all is fine.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadConfig(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			defaultPath, _ := config.DefaultConfigPath()
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound([]string{defaultPath}))
		}
		return cfg, err
	}

	if defaultPath, ok := config.DefaultConfigPath(); ok {
		return config.LoadConfig(defaultPath)
	}
	return config.DefaultConfig(), nil
}

// mergeFlags overlays CLI flags onto the config. CLI wins.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.images != "" {
		cfg.Input.ImageDir = flags.images
	}
	if flags.texts != "" {
		cfg.Input.TextDir = flags.texts
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.title != "" {
		cfg.Viewer.Title = flags.title
	}
	if flags.lang != "" {
		cfg.Viewer.Lang = flags.lang
	}
	if flags.markdown {
		cfg.Viewer.Markdown = true
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}
}

// resolveTimeout picks the PDF render budget: flag, then config, then zero
// (library default).
func resolveTimeout(flags *cliFlags, cfg *config.Config) time.Duration {
	if flags.timeout > 0 {
		return flags.timeout
	}
	if cfg.PDF.Timeout != "" {
		// Validated by config.Validate; parse error cannot occur here.
		if d, err := time.ParseDuration(cfg.PDF.Timeout); err == nil {
			return d
		}
	}
	return 0
}

// resolveDirs determines the image and text directories. Missing ones are
// prompted for on a terminal; otherwise the run fails with a usage error.
// Directories given via flag or config must exist.
func resolveDirs(cfg *config.Config, env *Environment) (imageDir, textDir string, err error) {
	prompter := newPrompter(env)

	imageDir, err = resolveDir(cfg.Input.ImageDir, "Directory with JPG images", prompter)
	if err != nil {
		return "", "", err
	}
	textDir, err = resolveDir(cfg.Input.TextDir, "Directory with TXT files", prompter)
	if err != nil {
		return "", "", err
	}
	return imageDir, textDir, nil
}

// printSummary lists the discovered pairs. Verbose lists all of them.
func printSummary(w io.Writer, pages []scanbook.Page, quiet, verbose bool) {
	if quiet {
		return
	}
	fmt.Fprintf(w, "Found %d image/text pairs:\n", len(pages))
	limit := len(pages)
	if !verbose && limit > summaryListLimit {
		limit = summaryListLimit
	}
	for _, p := range pages[:limit] {
		fmt.Fprintf(w, "  %s\n", p.Name)
	}
	if rest := len(pages) - limit; rest > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", rest)
	}
}

// report prints the per-artifact result line.
func report(w io.Writer, path string, size, pages int, quiet bool) {
	if quiet {
		return
	}
	fmt.Fprintf(w, "Created %s (%s, %d pages)\n", path, humanize.Bytes(uint64(size)), pages)
}

// resolveOutputPath applies the default name and ensures an .html extension.
func resolveOutputPath(path string) string {
	if path == "" {
		return defaultOutputName
	}
	if !strings.EqualFold(filepath.Ext(path), ".html") {
		return path + ".html"
	}
	return path
}

// pdfOutputPath returns the PDF path corresponding to an HTML path.
func pdfOutputPath(htmlPath string) string {
	ext := filepath.Ext(htmlPath)
	return strings.TrimSuffix(htmlPath, ext) + ".pdf"
}
