// Package orchestrator sequences the four pipeline stages for a full
// analysis request: competitor discovery, keyword extraction, competitive
// merge/rank, and keyword-guided rewriting.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"seoagent/competitors"
	"seoagent/config"
	"seoagent/keywords"
	"seoagent/types"
)

// PageExtractor turns a URL into page content and keyword records.
type PageExtractor interface {
	Extract(ctx context.Context, url string, tr types.TimeRange) (types.PageContent, []types.KeywordRecord, error)
}

// Matcher classifies a page's capability and locates competitor equivalents.
type Matcher interface {
	Identify(ctx context.Context, content types.PageContent) (types.Capability, error)
	Locate(ctx context.Context, competitor types.Competitor, cap types.Capability) (string, error)
}

// ContentRewriter rewrites prose around target keywords.
type ContentRewriter interface {
	Rewrite(ctx context.Context, content string, targetKeywords []string, tone string) (types.RewriteResult, error)
}

// Publisher receives completed analyses. Optional; nil disables publishing.
type Publisher interface {
	Publish(ctx context.Context, result types.AnalysisResult) error
}

// Orchestrator owns the analysis pipeline. It holds no per-request state;
// one instance serves concurrent requests.
type Orchestrator struct {
	directory   *competitors.Directory
	extractor   PageExtractor
	matcher     Matcher
	rewriter    ContentRewriter
	publisher   Publisher
	urlPatterns map[string]*regexp.Regexp
}

func New(directory *competitors.Directory, extractor PageExtractor, matcher Matcher, rw ContentRewriter, publisher Publisher, urlPatterns map[string]*regexp.Regexp) *Orchestrator {
	return &Orchestrator{
		directory:   directory,
		extractor:   extractor,
		matcher:     matcher,
		rewriter:    rw,
		publisher:   publisher,
		urlPatterns: urlPatterns,
	}
}

// Products lists known product identifiers in configuration order.
func (o *Orchestrator) Products() []string {
	return o.directory.Products()
}

// Competitors lists a product's competitors in configuration order.
func (o *Orchestrator) Competitors(product string) ([]types.Competitor, error) {
	return o.directory.Lookup(product)
}

// Analyze runs the full pipeline. Failures before the competitor fan-out
// (subject fetch/parse/extraction, capability classification) are fatal;
// per-competitor failures are absorbed into warnings and the request still
// succeeds whenever the subject extraction did.
func (o *Orchestrator) Analyze(ctx context.Context, req types.AnalysisRequest) (types.AnalysisResult, error) {
	if err := o.validate(req); err != nil {
		return types.AnalysisResult{}, err
	}

	comps, err := o.directory.Lookup(req.Product)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	log.Printf("[orchestrator] Analyzing %s (product=%s, range=%s, competitors=%d)",
		req.URL, req.Product, req.TimeRange, len(comps))

	content, subjectKeywords, err := o.extractor.Extract(ctx, req.URL, req.TimeRange)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	log.Printf("[orchestrator] Subject extraction: %d keywords from %q", len(subjectKeywords), content.Title)

	cap, err := o.matcher.Identify(ctx, content)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	log.Printf("[orchestrator] Capability identified: %s", cap.Label)

	perCompetitor, warnings := o.analyzeCompetitors(ctx, comps, cap, req.TimeRange)
	if ctx.Err() != nil {
		return types.AnalysisResult{}, types.NewUpstreamError("analyze", ctx.Err())
	}

	article, competitor, suggested := keywords.MergeAndRank(subjectKeywords, perCompetitor)

	result := types.AnalysisResult{
		URL:                req.URL,
		Product:            req.Product,
		Title:              content.Title,
		Capability:         cap,
		ArticleKeywords:    article,
		CompetitorKeywords: competitor,
		SuggestedKeywords:  suggested,
		Warnings:           warnings,
		AnalyzedAt:         time.Now().UTC(),
	}

	o.publish(result)

	log.Printf("[orchestrator] Analysis complete: %d article, %d competitor, %d suggested keywords, %d warning(s)",
		len(article), len(competitor), len(suggested), len(warnings))
	return result, nil
}

// Rewrite runs the content rewriting stage directly.
func (o *Orchestrator) Rewrite(ctx context.Context, req types.RewriteRequest) (types.RewriteResult, error) {
	return o.rewriter.Rewrite(ctx, req.Content, req.TargetKeywords, req.Tone)
}

type competitorOutcome struct {
	records []types.KeywordRecord
	warning string
}

// analyzeCompetitors runs the locate+fetch+extract sub-pipeline for every
// competitor through a bounded worker pool. Each sub-pipeline is bounded by
// its own stage timeout so one slow competitor cannot stall the analysis.
func (o *Orchestrator) analyzeCompetitors(ctx context.Context, comps []types.Competitor, cap types.Capability, tr types.TimeRange) (map[string][]types.KeywordRecord, []string) {
	outcomes := make([]competitorOutcome, len(comps))

	var wg sync.WaitGroup
	jobs := make(chan int, len(comps))

	workerCount := config.CompetitorWorkerCount
	if workerCount > len(comps) {
		workerCount = len(comps)
	}
	for w := 0; w < workerCount; w++ {
		go func() {
			for i := range jobs {
				outcomes[i] = o.analyzeCompetitor(ctx, comps[i], cap, tr)
				wg.Done()
			}
		}()
	}

	for i := range comps {
		wg.Add(1)
		jobs <- i
	}
	wg.Wait()
	close(jobs)

	perCompetitor := make(map[string][]types.KeywordRecord, len(comps))
	var warnings []string
	for i, outcome := range outcomes {
		if outcome.warning != "" {
			warnings = append(warnings, outcome.warning)
			continue
		}
		perCompetitor[comps[i].Name] = outcome.records
	}
	return perCompetitor, warnings
}

func (o *Orchestrator) analyzeCompetitor(ctx context.Context, comp types.Competitor, cap types.Capability, tr types.TimeRange) competitorOutcome {
	cctx, cancel := context.WithTimeout(ctx, config.CompetitorStageTimeout)
	defer cancel()

	pageURL, err := o.matcher.Locate(cctx, comp, cap)
	if err != nil {
		if err == types.ErrNotFound {
			log.Printf("[orchestrator] %s: no page covering %q, skipping", comp.Name, cap.Label)
			return competitorOutcome{warning: fmt.Sprintf("%s skipped: no page found for capability %q", comp.Name, cap.Label)}
		}
		log.Printf("[orchestrator] %s: locate failed: %v", comp.Name, err)
		return competitorOutcome{warning: fmt.Sprintf("%s skipped: page location failed: %v", comp.Name, err)}
	}

	_, records, err := o.extractor.Extract(cctx, pageURL, tr)
	if err != nil {
		log.Printf("[orchestrator] %s: extraction failed for %s: %v", comp.Name, pageURL, err)
		return competitorOutcome{warning: fmt.Sprintf("%s skipped: extraction failed: %v", comp.Name, err)}
	}

	log.Printf("[orchestrator] %s: %d keywords from %s", comp.Name, len(records), pageURL)
	return competitorOutcome{records: records}
}

// publish hands the completed result to the optional publisher without
// blocking the response.
func (o *Orchestrator) publish(result types.AnalysisResult) {
	if o.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := o.publisher.Publish(ctx, result); err != nil {
			log.Printf("[orchestrator] Result publish failed for %s: %v", result.URL, err)
		}
	}()
}

func (o *Orchestrator) validate(req types.AnalysisRequest) error {
	if !types.ValidTimeRange(req.TimeRange) {
		return types.NewValidationError("time_range", "must be week, month, or year")
	}
	pattern, ok := o.urlPatterns[req.Product]
	if !ok {
		return types.NewValidationError("product", "unknown product "+req.Product)
	}
	if !pattern.MatchString(req.URL) {
		return types.NewValidationError("url", "does not match the documentation path for product "+req.Product)
	}
	return nil
}
