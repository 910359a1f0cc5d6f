// Package feed retrieves raw feed documents and extracts job items from them.
package feed

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"
)

const fetchTimeout = 15 * time.Second

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch downloads one feed and returns its body as text. Every failure mode
// (transport error, timeout, non-2xx status) is logged and reported as an
// empty document: the caller treats it the same as a feed with zero items.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		log.Printf("[feed] bad feed URL %s: %v", sourceURL, err)
		return ""
	}
	req.Header.Set("User-Agent", "gigradar/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("[feed] fetch %s failed: %v", sourceURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[feed] fetch %s returned status %d", sourceURL, resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[feed] reading %s body failed: %v", sourceURL, err)
		return ""
	}
	return string(body)
}
