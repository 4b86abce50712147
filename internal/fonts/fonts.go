package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the font file extensions the renderer can load.
var Exts = []string{".ttf", ".otf"}

// SearchDirs are tried in order so fonts are found whether run from the repo root or cmd/demo.
var SearchDirs = []string{"assets/fonts", "../../assets/fonts"}

// Scan returns font files under dir as slash-separated paths relative to dir.
// A missing dir yields no files and no error.
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

// normalize lowercases and drops spaces, dashes, underscores and the extension.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, e := range Exts {
		s = strings.TrimSuffix(s, e)
	}
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Locate finds a font file whose relative path contains search (fuzzy: case, spaces,
// dashes and underscores ignored). dirs defaults to SearchDirs. When several match,
// a "Regular" face wins, then the shortest path.
func Locate(search string, dirs ...string) (string, error) {
	want := normalize(search)
	if want == "" {
		return "", os.ErrNotExist
	}
	if len(dirs) == 0 {
		dirs = SearchDirs
	}
	best := ""
	bestRegular := false
	for _, dir := range dirs {
		files, err := Scan(dir)
		if err != nil {
			continue
		}
		for _, rel := range files {
			if !strings.Contains(normalize(rel), want) {
				continue
			}
			full := filepath.Join(dir, filepath.FromSlash(rel))
			regular := strings.Contains(strings.ToLower(rel), "regular")
			switch {
			case best == "",
				regular && !bestRegular,
				regular == bestRegular && len(full) < len(best):
				best, bestRegular = full, regular
			}
		}
		if best != "" {
			return best, nil
		}
	}
	return "", os.ErrNotExist
}
