package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// Source resolves the raw workbook bytes.
type Source interface {
	// Fetch returns the current bytes of the workbook.
	Fetch(ctx context.Context) ([]byte, error)
	// Describe names the source for logs and errors.
	Describe() string
}

// LocalFile reads the workbook from disk.
type LocalFile struct {
	Path string
}

// Fetch reads the file as it currently is on disk.
func (s LocalFile) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return data, nil
}

// Describe returns the file path.
func (s LocalFile) Describe() string {
	return s.Path
}

// RemoteBlob downloads the workbook from a blob URL. Every fetch must observe
// the current bytes: freshness is governed by the cache manager's TTL, so any
// transport-level caching (CDN, proxy) is defeated with no-store headers and
// a unique query string per request.
type RemoteBlob struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// Fetch downloads the blob with cache busting and a bounded timeout.
func (s RemoteBlob) Fetch(ctx context.Context) ([]byte, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("%s?t=%d&n=%s", s.URL, time.Now().UnixMilli(), uuid.NewString())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate, max-age=0")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Expires", "0")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrSourceUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return data, nil
}

// Describe returns the blob URL.
func (s RemoteBlob) Describe() string {
	return s.URL
}
