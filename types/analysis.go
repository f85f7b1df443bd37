package types

import "time"

// Competitor is a single competitor site for a product. Instances are owned
// by the competitor directory and never mutated.
type Competitor struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
}

// PageContent is the readable content extracted from one fetched page.
// Produced fresh per fetch and discarded after keyword extraction.
type PageContent struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	BodyText string   `json:"body_text"`
	Headings []string `json:"headings"`
}

// Excerpt returns at most n characters of the body text.
func (p PageContent) Excerpt(n int) string {
	if len(p.BodyText) <= n {
		return p.BodyText
	}
	return p.BodyText[:n]
}

// Capability is the functional theme a page demonstrates, used to find
// comparable competitor content. It lives only within one analysis call.
type Capability struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// AnalysisRequest is a full keyword analysis request.
type AnalysisRequest struct {
	URL       string    `json:"url"`
	Product   string    `json:"product"`
	TimeRange TimeRange `json:"time_range"`
}

// AnalysisResult is the assembled outcome of one analysis request.
// Immutable after assembly; Warnings records competitors that were excluded
// and why.
type AnalysisResult struct {
	URL                string          `json:"url"`
	Product            string          `json:"product"`
	Title              string          `json:"title"`
	Capability         Capability      `json:"capability"`
	ArticleKeywords    []KeywordRecord `json:"article_keywords"`
	CompetitorKeywords []KeywordRecord `json:"competitor_keywords"`
	SuggestedKeywords  []KeywordRecord `json:"suggested_keywords"`
	Warnings           []string        `json:"warnings,omitempty"`
	AnalyzedAt         time.Time       `json:"analyzed_at"`
}

// RewriteRequest asks for content to be rewritten around target keywords.
type RewriteRequest struct {
	Content        string   `json:"content"`
	TargetKeywords []string `json:"target_keywords"`
	Tone           string   `json:"tone"`
}

// RewriteResult is the reassembled rewrite output. KeywordDensity maps each
// target keyword to its percentage density in the rewritten text.
type RewriteResult struct {
	RewrittenContent string             `json:"rewritten_content"`
	KeywordsUsed     []string           `json:"keywords_used"`
	Tone             string             `json:"tone"`
	ChunkCount       int                `json:"chunk_count"`
	KeywordDensity   map[string]float64 `json:"keyword_density,omitempty"`
	Warnings         []string           `json:"warnings,omitempty"`
}
