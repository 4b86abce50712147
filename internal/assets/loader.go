package assets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"scene-demo/internal/logger"
)

// ErrUnsupported is returned for files the model uploader cannot read.
var ErrUnsupported = errors.New("unsupported model format")

var supported = map[string]bool{
	".glb":  true,
	".gltf": true,
	".iqm":  true,
	".m3d":  true,
	".obj":  true,
}

// IsSupported reports whether ext (with dot, any case) is a loadable model format.
func IsSupported(ext string) bool {
	return supported[strings.ToLower(ext)]
}

// Uploader turns a local model file into a renderer handle. It runs on the frame-loop
// goroutine because GPU resources must be created on the thread that owns the GL context.
type Uploader func(path string) (any, error)

// Loaded is passed to the success callback.
type Loaded struct {
	Source string
	Path   string
	Handle any
}

type result struct {
	source  string
	path    string
	err     error
	onLoad  func(Loaded)
	onError func(error)
}

// Loader resolves model sources in the background and finishes them on the frame loop.
// Failures are logged and abandoned; nothing is retried.
type Loader struct {
	upload   Uploader
	cacheDir string
	client   *http.Client
	log      *logger.Logger

	mu      sync.Mutex
	done    []result
	pending int
	wg      sync.WaitGroup
}

// NewLoader returns a loader that downloads remote sources into cacheDir and hands
// resolved files to upload.
func NewLoader(upload Uploader, cacheDir string, log *logger.Logger) *Loader {
	return &Loader{
		upload:   upload,
		cacheDir: cacheDir,
		client:   &http.Client{},
		log:      log,
	}
}

// SetHTTPClient replaces the client used for remote sources.
func (l *Loader) SetHTTPClient(c *http.Client) {
	l.client = c
}

// Load starts resolving src (a local path or http(s) URL) and returns immediately.
// Exactly one of onLoad or onError is called later from Poll. Either may be nil.
func (l *Loader) Load(ctx context.Context, src string, onLoad func(Loaded), onError func(error)) {
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		p, err := l.resolve(ctx, src)
		l.mu.Lock()
		l.done = append(l.done, result{source: src, path: p, err: err, onLoad: onLoad, onError: onError})
		l.mu.Unlock()
	}()
}

// Pending returns how many loads have not yet been delivered by Poll.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Wait blocks until every started load has resolved (not necessarily been polled).
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Poll uploads finished loads and runs their callbacks. Call once per tick from the
// frame loop. Loads are taken off the queue one at a time; a panic in an upload or
// onLoad fails only that load and is reported through onError. It returns the number
// of loads delivered.
func (l *Loader) Poll() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.done) == 0 {
			l.mu.Unlock()
			return n
		}
		r := l.done[0]
		l.done = l.done[1:]
		l.pending--
		l.mu.Unlock()

		n++
		if err := l.deliver(r); err != nil {
			l.log.With("source", r.source).Errorf("model load failed: %v", err)
			if r.onError != nil {
				r.onError(err)
			}
		}
	}
}

func (l *Loader) deliver(r result) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: panic: %v", r.source, p)
		}
	}()
	if r.err != nil {
		return r.err
	}
	handle, err := l.upload(r.path)
	if err != nil {
		return fmt.Errorf("upload %s: %w", r.path, err)
	}
	l.log.With("source", r.source).Infof("model loaded from %s", r.path)
	if r.onLoad != nil {
		r.onLoad(Loaded{Source: r.source, Path: r.path, Handle: handle})
	}
	return nil
}

func (l *Loader) resolve(ctx context.Context, src string) (string, error) {
	if src == "" {
		return "", errors.New("empty model source")
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return fetch(ctx, l.client, src, l.cacheDir)
	}
	if !IsSupported(filepath.Ext(src)) {
		return "", fmt.Errorf("%s: %w", src, ErrUnsupported)
	}
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("model: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("model: %s is a directory", src)
	}
	return src, nil
}
