package scanbook

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension sets for discovery. Matching is case-insensitive and
// non-recursive.
var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true}
	textExtensions  = map[string]bool{".txt": true}
)

// DiscoverPages scans imageDir for JPEG files and textDir for text files
// and pairs them by lower-cased file stem. The result is sorted by that
// key, so page order is identical across runs and platforms.
//
// Two policies are deliberate, not defects: files whose stem appears on
// only one side are silently dropped, and when two image files collapse
// to the same lower-cased stem the lexicographically last filename wins
// (os.ReadDir returns entries sorted by name).
//
// Zero matches is a valid outcome and returns an empty slice; the caller
// decides whether that is fatal.
func DiscoverPages(imageDir, textDir string) ([]Page, error) {
	images, stems, err := scanDir(imageDir, imageExtensions)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrReadImageDir, imageDir, err)
	}

	texts, _, err := scanDir(textDir, textExtensions)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrReadTextDir, textDir, err)
	}

	keys := make([]string, 0, len(images))
	for key := range images {
		if _, ok := texts[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	pages := make([]Page, 0, len(keys))
	for _, key := range keys {
		pages = append(pages, Page{
			Name:      stems[key],
			ImagePath: images[key],
			TextPath:  texts[key],
		})
	}
	return pages, nil
}

// scanDir maps lower-cased stems to full paths for files in dir whose
// extension is in exts. stems maps the same keys to the original-case
// stem. Subdirectories are not entered.
func scanDir(dir string, exts map[string]bool) (paths, stems map[string]string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	paths = make(map[string]string, len(entries))
	stems = make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !exts[strings.ToLower(ext)] {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		key := strings.ToLower(stem)
		// Later entries overwrite earlier ones: documented policy.
		paths[key] = filepath.Join(dir, name)
		stems[key] = stem
	}
	return paths, stems, nil
}
