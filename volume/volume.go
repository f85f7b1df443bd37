// Package volume looks up search-volume metrics for keyword terms.
package volume

import (
	"context"
	"log"

	"seoagent/config"
	"seoagent/llm"
	"seoagent/types"
)

// Service abstracts a term → search volume lookup for a time range.
// Implementations return a non-negative integer; callers treat errors as
// volume 0 and keep the term.
type Service interface {
	Volume(ctx context.Context, term string, tr types.TimeRange) (int, error)
}

// NewService picks a provider from configuration: the HTTP API when an
// endpoint is configured, otherwise the LLM estimator. A Redis address adds
// a read-through cache in front of either.
func NewService(cfg *config.Config, model llm.Client) Service {
	var svc Service
	if cfg.VolumeAPIURL != "" {
		svc = NewAPIClient(cfg.VolumeAPIURL, cfg.VolumeAPIKey)
		log.Printf("[volume] Using HTTP volume provider: %s", cfg.VolumeAPIURL)
	} else {
		svc = NewEstimator(model)
		log.Printf("[volume] No VOLUME_API_URL configured; using model-backed estimator")
	}
	if cfg.RedisAddr != "" {
		svc = NewCache(cfg.RedisAddr, svc)
		log.Printf("[volume] Redis volume cache enabled: %s", cfg.RedisAddr)
	}
	return svc
}
