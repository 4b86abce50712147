package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const fetchTimeout = 60 * time.Second

// fetch downloads rawURL into destDir and returns the saved path. The file name is the
// URL path's base name plus a short key of the full URL; the extension comes from the
// URL or, failing that, the Content-Type. An existing file with the same name is reused
// without a request.
func fetch(ctx context.Context, client *http.Client, rawURL, destDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	base := cacheName(u, rawURL)
	ext := strings.ToLower(path.Ext(u.Path))
	if ext != "" && IsSupported(ext) {
		saved := filepath.Join(destDir, base+ext)
		if _, err := os.Stat(saved); err == nil {
			return saved, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}
	if !IsSupported(ext) {
		ext = extensionFromContentType(resp.Header.Get("Content-Type"))
	}
	if ext == "" {
		return "", fmt.Errorf("fetch %s: %w", rawURL, ErrUnsupported)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	saved := filepath.Join(destDir, base+ext)
	tmp, err := os.CreateTemp(destDir, base+"-*.part")
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("fetch: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("fetch: %w", err)
	}
	if err := os.Rename(tmp.Name(), saved); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("fetch: %w", err)
	}
	return saved, nil
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "model/gltf-binary":
		return ".glb"
	case "model/gltf+json":
		return ".gltf"
	case "model/obj":
		return ".obj"
	}
	return ""
}

// cacheName keys the cached file on the whole URL, query included, so two sources that
// share a base name never collide.
func cacheName(u *url.URL, rawURL string) string {
	key := uuid.NewSHA1(uuid.NameSpaceURL, []byte(rawURL)).String()[:8]
	return sanitizeFilename(strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))) + "-" + key
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == "_" {
		return "model"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
