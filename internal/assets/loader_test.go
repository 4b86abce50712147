package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"scene-demo/internal/logger"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("glTF"), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func pathUploader(p string) (any, error) { return "handle:" + filepath.Base(p), nil }

func TestLoadLocalFileCallsOnLoadFromPoll(t *testing.T) {
	src := touch(t, t.TempDir(), "robot.glb")
	l := NewLoader(pathUploader, t.TempDir(), logger.Discard())

	var got Loaded
	loaded := false
	l.Load(context.Background(), src, func(r Loaded) { got = r; loaded = true }, func(err error) {
		t.Errorf("onError: %v", err)
	})
	if l.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", l.Pending())
	}
	l.Wait()
	if loaded {
		t.Fatal("callback ran before Poll")
	}
	if n := l.Poll(); n != 1 {
		t.Fatalf("Poll() = %d, want 1", n)
	}
	if !loaded || got.Handle != "handle:robot.glb" || got.Path != src {
		t.Errorf("loaded = %v, result = %+v", loaded, got)
	}
	if l.Pending() != 0 || l.Poll() != 0 {
		t.Error("load delivered twice")
	}
}

func TestLoadFailuresGoToOnError(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		src    string
		upload Uploader
		target error
	}{
		{"missing file", filepath.Join(dir, "none.glb"), pathUploader, os.ErrNotExist},
		{"unsupported", touch(t, dir, "notes.txt"), pathUploader, ErrUnsupported},
		{"empty", "", pathUploader, nil},
		{"upload fails", touch(t, dir, "bad.glb"), func(string) (any, error) { return nil, errors.New("gpu") }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(tt.upload, dir, logger.Discard())
			var gotErr error
			l.Load(context.Background(), tt.src, func(Loaded) { t.Error("onLoad called") }, func(err error) { gotErr = err })
			l.Wait()
			l.Poll()
			if gotErr == nil {
				t.Fatal("onError not called")
			}
			if tt.target != nil && !errors.Is(gotErr, tt.target) {
				t.Errorf("err = %v, want %v", gotErr, tt.target)
			}
		})
	}
}

func TestPollPanicFailsOnlyThatLoad(t *testing.T) {
	dir := t.TempDir()
	upload := func(p string) (any, error) {
		if filepath.Base(p) == "boom.glb" {
			panic("gpu lost")
		}
		return pathUploader(p)
	}
	l := NewLoader(upload, dir, logger.Discard())

	var loaded []string
	var failed []error
	for _, name := range []string{"a.glb", "boom.glb", "b.glb"} {
		l.Load(context.Background(), touch(t, dir, name), func(r Loaded) {
			loaded = append(loaded, filepath.Base(r.Path))
		}, func(err error) { failed = append(failed, err) })
	}
	l.Wait()
	if n := l.Poll(); n != 3 {
		t.Fatalf("Poll() = %d, want 3", n)
	}
	if len(loaded) != 2 {
		t.Errorf("loaded = %v, want the two good models", loaded)
	}
	if len(failed) != 1 || !strings.Contains(failed[0].Error(), "gpu lost") {
		t.Errorf("failures = %v", failed)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d after Poll", l.Pending())
	}
}

func TestLoadRemoteDownloadsOnceIntoCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("glTF-binary"))
	}))
	defer srv.Close()

	cache := t.TempDir()
	l := NewLoader(pathUploader, cache, logger.Discard())
	l.SetHTTPClient(srv.Client())

	var paths []string
	for i := 0; i < 2; i++ {
		l.Load(context.Background(), srv.URL+"/models/Fox.glb?v=1", func(r Loaded) { paths = append(paths, r.Path) }, func(err error) {
			t.Errorf("onError: %v", err)
		})
		l.Wait()
		l.Poll()
	}
	if len(paths) != 2 || paths[0] != paths[1] {
		t.Fatalf("paths = %v, want the same cached file twice", paths)
	}
	want := paths[0]
	if filepath.Dir(want) != cache || !strings.HasPrefix(filepath.Base(want), "Fox-") || filepath.Ext(want) != ".glb" {
		t.Errorf("cached as %s", want)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
	data, err := os.ReadFile(want)
	if err != nil || string(data) != "glTF-binary" {
		t.Errorf("cached file = %q, %v", data, err)
	}
}

func TestFetchUsesContentTypeWhenURLHasNoExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf+json; charset=utf-8")
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	p, err := fetch(context.Background(), srv.Client(), srv.URL+"/scene", t.TempDir())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if name := filepath.Base(p); !strings.HasPrefix(name, "scene-") || filepath.Ext(name) != ".gltf" {
		t.Errorf("saved as %s", p)
	}
}

func TestFetchKeysCacheOnFullURL(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(r.URL.String()))
	}))
	defer srv.Close()

	cache := t.TempDir()
	urls := []string{
		srv.URL + "/a/Fox.glb",
		srv.URL + "/b/Fox.glb",
		srv.URL + "/a/Fox.glb?v=2",
	}
	seen := map[string]bool{}
	for _, u := range urls {
		p, err := fetch(context.Background(), srv.Client(), u, cache)
		if err != nil {
			t.Fatalf("fetch %s: %v", u, err)
		}
		if seen[p] {
			t.Errorf("%s reused cached file %s", u, p)
		}
		seen[p] = true
		data, _ := os.ReadFile(p)
		if want := strings.TrimPrefix(u, srv.URL); string(data) != want {
			t.Errorf("%s cached %q, want %q", u, data, want)
		}
	}
	if atomic.LoadInt32(&hits) != int32(len(urls)) {
		t.Errorf("server hit %d times, want %d", hits, len(urls))
	}
}

func TestFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.glb") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	if _, err := fetch(context.Background(), srv.Client(), srv.URL+"/missing.glb", t.TempDir()); err == nil {
		t.Error("404 did not fail")
	}
	_, err := fetch(context.Background(), srv.Client(), srv.URL+"/page", t.TempDir())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("html page err = %v, want ErrUnsupported", err)
	}
}

func TestFetchHonoursCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fetch(ctx, srv.Client(), srv.URL+"/a.glb", t.TempDir()); err == nil {
		t.Error("fetch with cancelled context succeeded")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Fox":          "Fox",
		"my model (1)": "my_model_1_",
		"":             "model",
		"/":            "model",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
