package challenge

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// LoaderOptions configures a catalog Loader.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS
	// HTTPClient backs SourceKindURL sources. When nil, URL loading is
	// enabled only if AllowHTTPFallback is set.
	HTTPClient *http.Client
	// AllowHTTPFallback builds a default client when HTTPClient is nil.
	AllowHTTPFallback bool
	// RequestTimeout bounds each URL fetch.
	RequestTimeout time.Duration
}

// Loader fetches raw catalog documents from file, fs.FS, or HTTP sources.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// NewLoader constructs a Loader from pre-resolved options.
func NewLoader(options LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the raw document bytes for the provided source.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if l == nil {
		return nil, errors.New("challenge loader: loader is nil")
	}
	if src == nil {
		return nil, errors.New("challenge loader: source is nil")
	}

	switch src.Kind() {
	case SourceKindFile:
		return loadFile(ctx, src.Location())
	case SourceKindFS:
		return loadFromFS(ctx, l.fs, src.Location())
	case SourceKindURL:
		if !l.allowHTTP {
			return nil, errors.New("challenge loader: http support disabled")
		}
		return loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		return nil, errors.New("challenge loader: unsupported source kind")
	}
}

// LoadCatalog loads, validates, and parses a catalog document in one call.
func (l *Loader) LoadCatalog(ctx context.Context, src Source) (Catalog, error) {
	raw, err := l.Load(ctx, src)
	if err != nil {
		return Catalog{}, err
	}
	return ParseCatalog(raw)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("challenge loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func loadFromFS(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, errors.New("challenge loader: file system is not configured")
	}
	if name == "" {
		return nil, errors.New("challenge loader: fs entry name is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return fs.ReadFile(fsys, name)
}

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("challenge loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("challenge loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("challenge loader: unexpected status " + resp.Status)
	}

	return io.ReadAll(resp.Body)
}
