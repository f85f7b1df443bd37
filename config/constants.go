package config

import "time"

// Pipeline Concurrency Constants
const (
	// CompetitorWorkerCount bounds how many competitor sub-pipelines run at once
	CompetitorWorkerCount = 3

	// VolumeWorkerCount bounds concurrent search-volume lookups for one page
	VolumeWorkerCount = 4

	// CompetitorStageTimeout bounds one competitor's locate+fetch+extract pipeline
	CompetitorStageTimeout = 90 * time.Second
)

// External Call Timeouts
const (
	// FetchTimeout is the per-request timeout for page fetches
	FetchTimeout = 30 * time.Second

	// LLMTimeout is the per-request timeout for language model calls
	LLMTimeout = 120 * time.Second

	// VolumeTimeout is the per-request timeout for search-volume lookups
	VolumeTimeout = 15 * time.Second
)

// Content Extraction Constants
const (
	// MaxFetchBytes caps how much of a response body is read
	MaxFetchBytes = 2 << 20

	// MinContentLength is the minimum extractable text for a usable page
	MinContentLength = 100

	// MaxHeadings caps how many headings are kept per page
	MaxHeadings = 30

	// ExtractionExcerptSize bounds the body text sent to the model for
	// keyword extraction and capability classification
	ExtractionExcerptSize = 4000
)

// Keyword Constants
const (
	// MaxArticleKeywords is how many keywords are requested per page
	MaxArticleKeywords = 10

	// MaxSuggestedKeywords caps the merged suggestion list
	MaxSuggestedKeywords = 10

	// MaxRewriteKeywords is the most target keywords one rewrite accepts
	MaxRewriteKeywords = 3
)

// Rewrite Constants
const (
	// DefaultRewriteChunkSize is the chunking threshold in characters.
	// Tunable via REWRITE_CHUNK_SIZE; chunks never split a sentence.
	DefaultRewriteChunkSize = 4000

	// RewriteChunkAttempts is how many times one chunk is sent to the model
	// before it is passed through unmodified
	RewriteChunkAttempts = 2

	// DefaultTone is used when a rewrite request omits the tone
	DefaultTone = "professional"
)

// Cache Constants
const (
	// VolumeCacheTTL is how long cached search volumes stay fresh
	VolumeCacheTTL = 6 * time.Hour
)
