// Package capability classifies what a page is about and locates the
// equivalent page on competitor sites.
package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"seoagent/config"
	"seoagent/llm"
	"seoagent/types"
)

// Fetcher retrieves raw HTML for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Matcher identifies a page's capability and finds comparable competitor
// pages. Candidate URLs from the model are verified with a real fetch
// before being trusted.
type Matcher struct {
	model   llm.Client
	fetcher Fetcher
	feeds   *feedScanner
}

func NewMatcher(model llm.Client, fetcher Fetcher) *Matcher {
	return &Matcher{
		model:   model,
		fetcher: fetcher,
		feeds:   newFeedScanner(),
	}
}

type capabilityReply struct {
	Capability struct {
		Label       string `json:"label"`
		Description string `json:"description"`
	} `json:"capability"`
}

// Identify asks the model for the primary functional capability the page
// demonstrates. Output is model-backed and not guaranteed deterministic;
// the only guarantee is a non-empty label/description or a
// ClassificationError.
func (m *Matcher) Identify(ctx context.Context, content types.PageContent) (types.Capability, error) {
	headings, _ := json.Marshal(content.Headings)

	prompt := fmt.Sprintf(`You are an expert at understanding technical documentation and product features.

ARTICLE URL: %s
ARTICLE TITLE: %s

ARTICLE HEADINGS:
%s

ARTICLE CONTENT (excerpt):
%s

TASK: Identify the MAIN CAPABILITY or FEATURE this article is about.

Examples of capabilities:
- "Form Validation" - configuring validation rules for form fields
- "Conditional Logic" - showing/hiding fields based on conditions
- "PDF Generation" - converting forms to PDF documents
- "Workflow Automation" - automating processes after submission

Return ONLY valid JSON:
{"capability": {"label": "Short capability name (2-4 words)", "description": "One sentence description of what this capability does"}}`,
		content.URL, content.Title, headings, content.Excerpt(config.ExtractionExcerptSize))

	reply, err := m.model.Complete(ctx, llm.Completion{
		System:      "You are a product analyst expert. Identify the core capability from documentation. Return ONLY valid JSON.",
		Prompt:      prompt,
		MaxTokens:   500,
		Temperature: 0.2,
	})
	if err != nil {
		return types.Capability{}, err
	}

	var parsed capabilityReply
	if err := llm.DecodeReply(reply, &parsed); err != nil {
		return types.Capability{}, &types.ClassificationError{Reason: err.Error()}
	}

	label := strings.TrimSpace(parsed.Capability.Label)
	description := strings.TrimSpace(parsed.Capability.Description)
	if label == "" || description == "" {
		return types.Capability{}, &types.ClassificationError{Reason: "model returned an empty capability"}
	}

	return types.Capability{Label: label, Description: description}, nil
}

type locateReply struct {
	FeatureName  string   `json:"feature_name"`
	ProbableURLs []string `json:"probable_urls"`
}

// Locate finds the competitor page most likely to cover the capability.
// Returns types.ErrNotFound when no candidate survives verification; that
// is a normal outcome, not a failure.
func (m *Matcher) Locate(ctx context.Context, competitor types.Competitor, cap types.Capability) (string, error) {
	candidates, err := m.candidateURLs(ctx, competitor, cap)
	if err != nil {
		log.Printf("[capability] Candidate generation failed for %s: %v (trying feed scan)", competitor.Name, err)
	}

	for _, candidate := range candidates {
		if !sameSite(candidate, competitor.BaseURL) {
			continue
		}
		if m.verify(ctx, candidate) {
			return candidate, nil
		}
	}

	// Secondary strategy: the competitor's blog/changelog feeds often cover
	// feature pages the model cannot guess URLs for.
	if feedURL := m.feeds.findEntry(ctx, competitor, cap); feedURL != "" {
		if m.verify(ctx, feedURL) {
			return feedURL, nil
		}
	}

	return "", types.ErrNotFound
}

func (m *Matcher) candidateURLs(ctx context.Context, competitor types.Competitor, cap types.Capability) ([]string, error) {
	base := strings.TrimRight(competitor.BaseURL, "/")

	prompt := fmt.Sprintf(`You are an expert at understanding competitor websites and their URL structures.

CAPABILITY TO FIND: %s
DESCRIPTION: %s

COMPETITOR: %s
COMPETITOR BASE URL: %s

TASK: Generate the most likely URLs where %s would document this capability. Consider common help/docs/features URL patterns and how %s likely names this feature.

Return ONLY valid JSON:
{"feature_name": "what %s calls this feature", "probable_urls": ["%s/path1", "%s/path2", "%s/path3"]}`,
		cap.Label, cap.Description,
		competitor.Name, competitor.BaseURL,
		competitor.Name, competitor.Name, competitor.Name,
		base, base, base)

	reply, err := m.model.Complete(ctx, llm.Completion{
		System:      fmt.Sprintf("You are an expert at finding equivalent features on competitor websites. Generate realistic URLs for %s. Return ONLY valid JSON.", competitor.Name),
		Prompt:      prompt,
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	var parsed locateReply
	if err := llm.DecodeReply(reply, &parsed); err != nil {
		return nil, types.NewUpstreamError("competitor page location", err)
	}

	const maxCandidates = 5
	if len(parsed.ProbableURLs) > maxCandidates {
		parsed.ProbableURLs = parsed.ProbableURLs[:maxCandidates]
	}
	return parsed.ProbableURLs, nil
}

// verify confirms a candidate URL actually serves usable content.
func (m *Matcher) verify(ctx context.Context, candidate string) bool {
	if _, err := m.fetcher.Fetch(ctx, candidate); err != nil {
		return false
	}
	return true
}

// sameSite reports whether candidate is on the competitor's registered host
// or an obvious subdomain of it (help., docs., support., www.).
func sameSite(candidate, baseURL string) bool {
	cu, err := url.Parse(candidate)
	if err != nil || cu.Host == "" {
		return false
	}
	bu, err := url.Parse(baseURL)
	if err != nil || bu.Host == "" {
		return false
	}
	ch := strings.TrimPrefix(strings.ToLower(cu.Host), "www.")
	bh := strings.TrimPrefix(strings.ToLower(bu.Host), "www.")
	return ch == bh || strings.HasSuffix(ch, "."+bh)
}
