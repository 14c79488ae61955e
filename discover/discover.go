package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Files expands the given paths into a deduplicated list of HTML files.
// Plain file arguments are taken as-is (whatever their extension — the
// user named them explicitly); directory arguments contribute their HTML
// files, descending into subdirectories only when recursive is set.
func Files(paths []string, recursive bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			add(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if !recursive && path != p {
					return filepath.SkipDir
				}
				return nil
			}
			if IsHTMLFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}

	return files, nil
}
