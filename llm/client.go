// Package llm is the single transport to the language model. Four prompt
// contracts ride on it: keyword extraction, capability classification,
// competitor page location, and content rewriting. Callers own their
// prompts; this package owns the wire.
package llm

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"strings"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"seoagent/config"
	"seoagent/types"
)

// Completion is one request to the model.
type Completion struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Client abstracts the language model so tests can substitute deterministic
// fakes. Model-backed output is never assumed deterministic.
type Client interface {
	Complete(ctx context.Context, req Completion) (string, error)
}

// CohereClient implements Client using the Cohere Chat API.
type CohereClient struct {
	client *cohereclient.Client
	model  string
}

// NewCohereClient builds a Cohere-backed client. The HTTP client forces
// HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere edge.
func NewCohereClient(apiKey, model string) (*CohereClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("cohere api key is required")
	}
	httpClient := &http.Client{
		Timeout: config.LLMTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereClient{client: client, model: model}, nil
}

func (c *CohereClient) Complete(ctx context.Context, req Completion) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.LLMTimeout)
	defer cancel()

	chatReq := &cohere.ChatRequest{
		Message: req.Prompt,
	}
	if c.model != "" {
		chatReq.Model = &c.model
	}
	if req.System != "" {
		chatReq.Preamble = &req.System
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = &req.MaxTokens
	}
	if req.Temperature > 0 {
		chatReq.Temperature = &req.Temperature
	}

	resp, err := c.client.Chat(ctx, chatReq)
	if err != nil {
		return "", types.NewUpstreamError("llm complete", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", types.NewUpstreamError("llm complete", errors.New("model returned empty response"))
	}
	return resp.Text, nil
}
