package loaders

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves the raw text of one data resource by its fixed path.
// The campaign sheets are an immutable data lake: the same path always
// yields the same bytes for the lifetime of a deployment, which is what
// makes the load-once caches below safe.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// HTTPFetcher fetches resources from a static file host.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (string, error) {
	url := f.BaseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %v", url, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", url, err)
	}
	return string(body), nil
}

// FileFetcher reads resources from a local data directory. Used when the
// sheets are baked into the deployment image, and by tests.
type FileFetcher struct {
	Dir string
}

func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{Dir: dir}
}

func (f *FileFetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full := filepath.Join(f.Dir, filepath.FromSlash(strings.TrimLeft(path, "/")))
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", full, err)
	}
	return string(data), nil
}
