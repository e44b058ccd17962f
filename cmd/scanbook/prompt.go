package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mtoscano/scanbook/internal/fileutil"
)

// prompter asks the operator for directory paths on a terminal.
type prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(env *Environment) *prompter {
	return &prompter{
		in:          bufio.NewReader(env.Stdin),
		out:         env.Stderr,
		interactive: env.Interactive,
	}
}

// resolveDir validates a configured directory, or prompts for one when
// none was configured.
func resolveDir(configured, label string, p *prompter) (string, error) {
	if configured != "" {
		if !fileutil.DirExists(configured) {
			return "", fmt.Errorf("%w: %s", ErrNotADir, configured)
		}
		return configured, nil
	}
	if !p.interactive {
		return "", fmt.Errorf("%w: use --images and --texts, or run on a terminal", ErrNoInput)
	}
	return p.promptDir(label)
}

// promptDir asks until the operator provides an existing directory.
// Invalid paths are reported and re-prompted, not fatal.
func (p *prompter) promptDir(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.in.ReadString('\n')
		dir := cleanPromptPath(line)
		if fileutil.DirExists(dir) {
			return dir, nil
		}
		if err != nil {
			// EOF or read failure with no valid answer left.
			return "", fmt.Errorf("%w: %v", ErrNoInput, err)
		}
		fmt.Fprintf(p.out, "  error: %q is not a valid directory, try again\n", dir)
	}
}

// cleanPromptPath normalizes a pasted or drag-and-dropped path: trims
// whitespace, strips wrapping quotes, and undoes shell escaping of spaces.
func cleanPromptPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `'"`)
	return strings.ReplaceAll(s, `\ `, " ")
}
