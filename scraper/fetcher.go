package scraper

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seoagent/config"
	"seoagent/types"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves raw HTML over HTTP. It never retries; retry policy
// belongs to the orchestrator.
type Fetcher struct {
	client  *http.Client
	sizeCap int64
}

// NewFetcher builds a fetcher with a hardened transport and per-request
// timeout.
func NewFetcher() *Fetcher {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.FetchTimeout,
		},
		sizeCap: config.MaxFetchBytes,
	}
}

// Fetch retrieves the HTML body of rawURL. Network failures, timeouts and
// non-success statuses all surface as *types.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", types.NewValidationError("url", "not an absolute http(s) URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &types.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &types.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &types.FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.sizeCap))
	if err != nil {
		return "", &types.FetchError{URL: rawURL, Err: err}
	}

	html := string(body)
	if len(strings.TrimSpace(html)) < config.MinContentLength {
		return "", &types.ParseError{URL: rawURL, Reason: "empty or near-empty response body"}
	}
	return html, nil
}
