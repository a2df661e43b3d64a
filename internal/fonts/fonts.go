// Package fonts locates TTF/OTF files for the console and debug overlays.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the font file extensions considered by Scan.
var Exts = []string{".ttf", ".otf"}

// Dirs returns the directories searched for fonts, relative to the process working directory.
func Dirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// Scan returns slash-separated paths of all font files under dir, relative to dir.
// A missing dir yields no paths and no error.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores so "Fira Mono" matches "FiraMono-Regular.ttf".
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find returns the full path of the first font under dirs whose relative path
// contains name, ignoring case and separators. A "Regular" face wins when
// several match. Returns os.ErrNotExist when nothing matches.
func Find(dirs []string, name string) (string, error) {
	norm := normalize(name)
	if norm == "" {
		return "", os.ErrNotExist
	}
	var matches []string
	for _, dir := range dirs {
		list, err := Scan(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
