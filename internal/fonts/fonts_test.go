package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func fontTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScan(t *testing.T) {
	root := fontTree(t, "Inter/Inter-Regular.ttf", "Inter/OFL.txt", "Mono.OTF")
	got, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(got)
	if want := []string{"Inter/Inter-Regular.ttf", "Mono.OTF"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
	if got, err := Scan(filepath.Join(root, "missing")); err != nil || len(got) != 0 {
		t.Errorf("Scan(missing) = %v, %v", got, err)
	}
}

func TestLocate(t *testing.T) {
	root := fontTree(t,
		"Inter/Inter-Bold.ttf",
		"Inter/Inter-Regular.ttf",
		"Google_Sans_Code/GoogleSansCode-Italic.ttf",
	)
	tests := []struct {
		search string
		want   string
	}{
		{"inter", "Inter/Inter-Regular.ttf"},
		{"Inter Bold", "Inter/Inter-Bold.ttf"},
		{"google sans", "Google_Sans_Code/GoogleSansCode-Italic.ttf"},
		{"Inter-Bold.ttf", "Inter/Inter-Bold.ttf"},
	}
	for _, tt := range tests {
		got, err := Locate(tt.search, root)
		if err != nil {
			t.Errorf("Locate(%q): %v", tt.search, err)
			continue
		}
		if want := filepath.Join(root, filepath.FromSlash(tt.want)); got != want {
			t.Errorf("Locate(%q) = %s, want %s", tt.search, got, want)
		}
	}
	if _, err := Locate("comic", root); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Locate(comic) err = %v", err)
	}
	if _, err := Locate("  ", root); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Locate(blank) err = %v", err)
	}
}
