package volume

import (
	"context"
	"errors"
	"fmt"

	"seoagent/llm"
	"seoagent/types"
)

// Estimator asks the language model for a search-volume estimate. It exists
// for deployments without a paid volume API; estimates are coarse but keep
// the ranking meaningful.
type Estimator struct {
	model llm.Client
}

func NewEstimator(model llm.Client) *Estimator {
	return &Estimator{model: model}
}

type estimateReply struct {
	Volume *int `json:"volume"`
}

func (e *Estimator) Volume(ctx context.Context, term string, tr types.TimeRange) (int, error) {
	prompt := fmt.Sprintf(`Estimate the %sly Google search volume for the keyword %q in the US market.

Return ONLY valid JSON:
{"volume": <integer>}`, tr, term)

	reply, err := e.model.Complete(ctx, llm.Completion{
		System:      "You are an SEO research tool. Return ONLY valid JSON.",
		Prompt:      prompt,
		MaxTokens:   100,
		Temperature: 0.2,
	})
	if err != nil {
		return 0, err
	}

	var parsed estimateReply
	if err := llm.DecodeReply(reply, &parsed); err != nil {
		return 0, types.NewUpstreamError("volume estimate", err)
	}
	if parsed.Volume == nil {
		return 0, types.NewUpstreamError("volume estimate", errors.New("model returned no volume"))
	}
	if *parsed.Volume < 0 {
		return 0, nil
	}
	return *parsed.Volume, nil
}
