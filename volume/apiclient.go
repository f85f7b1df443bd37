package volume

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"seoagent/config"
	"seoagent/types"
)

// APIClient queries a keyword-research HTTP endpoint for real volume data.
// The endpoint is expected to answer
// GET {base}?term=<term>&range=<week|month|year> with {"volume": <int>}.
type APIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: config.VolumeTimeout},
	}
}

func (a *APIClient) Volume(ctx context.Context, term string, tr types.TimeRange) (int, error) {
	q := url.Values{}
	q.Set("term", term)
	q.Set("range", string(tr))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, types.NewUpstreamError("volume lookup", err)
	}
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, types.NewUpstreamError("volume lookup", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, types.NewUpstreamError("volume lookup",
			fmt.Errorf("http status %d for term %q", resp.StatusCode, term))
	}

	var parsed struct {
		Volume int `json:"volume"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, types.NewUpstreamError("volume lookup", err)
	}
	if parsed.Volume < 0 {
		return 0, nil
	}
	return parsed.Volume, nil
}
