// Package keywords extracts keyword candidates from pages and merges
// subject and competitor keyword sets into a ranked suggestion list.
package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"seoagent/config"
	"seoagent/llm"
	"seoagent/scraper"
	"seoagent/types"
	"seoagent/volume"
)

// Fetcher retrieves raw HTML for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor turns a URL into page content plus volume-enriched keyword
// records. Fetch, parse and model extraction are strictly sequential;
// volume lookups fan out through a bounded worker pool.
type Extractor struct {
	fetcher  Fetcher
	model    llm.Client
	volumes  volume.Service
	excluded []string
}

func NewExtractor(fetcher Fetcher, model llm.Client, volumes volume.Service, excludedTerms []string) *Extractor {
	return &Extractor{
		fetcher:  fetcher,
		model:    model,
		volumes:  volumes,
		excluded: excludedTerms,
	}
}

// Extract fetches and parses url, asks the model for salient keyword
// phrases, and enriches each with its search volume. Missing or failed
// volume lookups keep the term with volume 0.
func (e *Extractor) Extract(ctx context.Context, url string, tr types.TimeRange) (types.PageContent, []types.KeywordRecord, error) {
	html, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return types.PageContent{}, nil, err
	}

	content, err := scraper.Extract(html, url)
	if err != nil {
		return types.PageContent{}, nil, err
	}

	records, err := e.ExtractFromContent(ctx, content, tr)
	if err != nil {
		return types.PageContent{}, nil, err
	}
	return content, records, nil
}

// ExtractFromContent runs keyword extraction over already-parsed content.
func (e *Extractor) ExtractFromContent(ctx context.Context, content types.PageContent, tr types.TimeRange) ([]types.KeywordRecord, error) {
	phrases, err := e.extractPhrases(ctx, content)
	if err != nil {
		return nil, err
	}

	records := make([]types.KeywordRecord, 0, len(phrases))
	seen := make(map[string]bool, len(phrases))
	for _, phrase := range phrases {
		term := types.NormalizeTerm(phrase)
		if term == "" || seen[term] || e.isExcluded(term) {
			continue
		}
		seen[term] = true
		records = append(records, types.KeywordRecord{Term: term})
	}

	e.enrichVolumes(ctx, records, tr)
	return records, nil
}

type phraseReply struct {
	Keywords []string `json:"keywords"`
}

func (e *Extractor) extractPhrases(ctx context.Context, content types.PageContent) ([]string, error) {
	headings, _ := json.Marshal(content.Headings)

	prompt := fmt.Sprintf(`You are an SEO expert. Analyze this article and extract REAL, GOOGLE-SEARCHABLE keywords.

ARTICLE URL: %s
ARTICLE TITLE: %s

ARTICLE HEADINGS:
%s

ARTICLE CONTENT:
%s

TASK: Extract up to %d keywords that:
1. ARE ACTUALLY PRESENT in the article (title, headings, or content)
2. Are REAL search terms people actually type into Google
3. Are generic industry terms that can be used across products
4. Are NOUNS or NOUN PHRASES only - DO NOT include verbs
5. DO NOT include first-party product names

Return ONLY valid JSON:
{"keywords": ["keyword one", "keyword two"]}`,
		content.URL, content.Title, headings, content.Excerpt(config.ExtractionExcerptSize), config.MaxArticleKeywords)

	reply, err := e.model.Complete(ctx, llm.Completion{
		System:      "You are an SEO expert. Extract ONLY nouns and noun phrases as keywords. NO VERBS. Return ONLY valid JSON.",
		Prompt:      prompt,
		MaxTokens:   1000,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var parsed phraseReply
	if err := llm.DecodeReply(reply, &parsed); err != nil {
		return nil, types.NewUpstreamError("keyword extraction", err)
	}
	if len(parsed.Keywords) == 0 {
		return nil, types.NewUpstreamError("keyword extraction", llm.ErrMalformedReply)
	}
	if len(parsed.Keywords) > config.MaxArticleKeywords {
		parsed.Keywords = parsed.Keywords[:config.MaxArticleKeywords]
	}
	return parsed.Keywords, nil
}

// enrichVolumes looks up the volume of each record through a worker pool.
func (e *Extractor) enrichVolumes(ctx context.Context, records []types.KeywordRecord, tr types.TimeRange) {
	var wg sync.WaitGroup
	jobs := make(chan int, len(records))

	for w := 0; w < config.VolumeWorkerCount; w++ {
		go func() {
			for i := range jobs {
				records[i].Volume = e.lookupVolume(ctx, records[i].Term, tr)
				wg.Done()
			}
		}()
	}

	for i := range records {
		wg.Add(1)
		jobs <- i
	}

	wg.Wait()
	close(jobs)
}

// lookupVolume retries once at the single-call level; a second failure is
// absorbed as volume 0 so the term is retained.
func (e *Extractor) lookupVolume(ctx context.Context, term string, tr types.TimeRange) int {
	for attempt := 0; attempt < 2; attempt++ {
		if ctx.Err() != nil {
			return 0
		}
		vctx, cancel := context.WithTimeout(ctx, config.VolumeTimeout)
		n, err := e.volumes.Volume(vctx, term, tr)
		cancel()
		if err == nil {
			if n < 0 {
				return 0
			}
			return n
		}
		if attempt == 1 {
			log.Printf("[keywords] Volume lookup failed for %q: %v (keeping with volume 0)", term, err)
		}
	}
	return 0
}

func (e *Extractor) isExcluded(term string) bool {
	for _, excluded := range e.excluded {
		if strings.Contains(term, excluded) {
			return true
		}
	}
	return false
}
