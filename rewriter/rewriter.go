// Package rewriter rewrites prose to naturally embed target keywords at a
// requested tone, chunk by chunk.
package rewriter

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"

	"seoagent/config"
	"seoagent/llm"
	"seoagent/types"
)

// Rewriter splits long input into sentence-safe chunks, rewrites each
// through the language model, and reassembles the output in order.
type Rewriter struct {
	model     llm.Client
	chunkSize int
}

func New(model llm.Client, chunkSize int) *Rewriter {
	if chunkSize <= 0 {
		chunkSize = config.DefaultRewriteChunkSize
	}
	return &Rewriter{model: model, chunkSize: chunkSize}
}

// Rewrite rewrites content around at most three target keywords. An empty
// keyword list is a tone-only rewrite. A chunk the model returns empty or
// unchanged is retried once, then passed through unmodified with a warning;
// only total model unavailability fails the whole call.
func (r *Rewriter) Rewrite(ctx context.Context, content string, targetKeywords []string, tone string) (types.RewriteResult, error) {
	if strings.TrimSpace(content) == "" {
		return types.RewriteResult{}, types.NewValidationError("content", "no content provided")
	}
	if len(targetKeywords) > config.MaxRewriteKeywords {
		return types.RewriteResult{}, types.NewValidationError("target_keywords",
			fmt.Sprintf("at most %d keywords allowed, got %d", config.MaxRewriteKeywords, len(targetKeywords)))
	}
	if tone == "" {
		tone = config.DefaultTone
	}

	chunks := splitChunks(content, r.chunkSize)

	var (
		rewritten     = make([]string, 0, len(chunks))
		warnings      []string
		successCount  int
		upstreamFails int
		lastErr       error
	)

	for i, chunk := range chunks {
		out, err := r.rewriteChunk(ctx, chunk, targetKeywords, tone)
		if err != nil {
			if ctx.Err() != nil {
				return types.RewriteResult{}, types.NewUpstreamError("rewrite", ctx.Err())
			}
			upstreamFails++
			lastErr = err
			log.Printf("[rewriter] Chunk %d/%d failed, passing through: %v", i+1, len(chunks), err)
			rewritten = append(rewritten, chunk)
			warnings = append(warnings, fmt.Sprintf("chunk %d passed through unmodified: %v", i+1, err))
			continue
		}
		if out == "" {
			rewritten = append(rewritten, chunk)
			warnings = append(warnings, fmt.Sprintf("chunk %d passed through unmodified: model returned it unchanged", i+1))
			continue
		}
		successCount++
		rewritten = append(rewritten, out)
	}

	// Every chunk hitting a transport failure means the model service is
	// down, not that individual chunks degraded.
	if successCount == 0 && upstreamFails == len(chunks) && len(chunks) > 0 {
		return types.RewriteResult{}, types.NewUpstreamError("rewrite service unavailable", lastErr)
	}

	combined := strings.Join(rewritten, "\n\n")

	return types.RewriteResult{
		RewrittenContent: combined,
		KeywordsUsed:     append([]string(nil), targetKeywords...),
		Tone:             tone,
		ChunkCount:       len(chunks),
		KeywordDensity:   keywordDensity(combined, targetKeywords),
		Warnings:         warnings,
	}, nil
}

// rewriteChunk returns the rewritten chunk, "" when the model kept
// returning it empty/unchanged, or an error on transport failure.
func (r *Rewriter) rewriteChunk(ctx context.Context, chunk string, keywords []string, tone string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < config.RewriteChunkAttempts; attempt++ {
		reply, err := r.model.Complete(ctx, llm.Completion{
			System:      "You are an SEO writer. Rewrite the given text with keywords integrated. Output ONLY the rewritten text - no explanations, no metadata.",
			Prompt:      buildRewritePrompt(chunk, keywords, tone),
			MaxTokens:   4096,
			Temperature: 0.5,
		})
		if err != nil {
			lastErr = err
			continue
		}
		out := llm.StripFences(reply)
		if out == "" || foldWhitespace(out) == foldWhitespace(chunk) {
			continue
		}
		return out, nil
	}
	return "", lastErr
}

func buildRewritePrompt(chunk string, keywords []string, tone string) string {
	var sb strings.Builder
	if len(keywords) > 0 {
		quoted := make([]string, len(keywords))
		for i, kw := range keywords {
			quoted[i] = fmt.Sprintf("%q", kw)
		}
		fmt.Fprintf(&sb, "Rewrite this text for SEO. Integrate these keywords naturally: %s\n\n", strings.Join(quoted, ", "))
	} else {
		sb.WriteString("Rewrite this text adjusting only the tone.\n\n")
	}
	fmt.Fprintf(&sb, `RULES:
- Preserve the meaning and ALL original information
- Do not fabricate facts
- Maintain a %s tone
- Output ONLY the rewritten text

TEXT TO REWRITE:
%s`, tone, chunk)
	return sb.String()
}

var spaceRe = regexp.MustCompile(`\s+`)

func foldWhitespace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// keywordDensity reports each keyword's share of the rewritten text as a
// percentage, weighted by the keyword's own word count.
func keywordDensity(content string, keywords []string) map[string]float64 {
	if len(keywords) == 0 {
		return nil
	}
	wordCount := len(strings.Fields(content))
	lower := strings.ToLower(content)

	density := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		if wordCount == 0 {
			density[kw] = 0
			continue
		}
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		occurrences := len(pattern.FindAllStringIndex(lower, -1))
		kwWords := len(strings.Fields(kw))
		density[kw] = math.Round(float64(occurrences*kwWords)/float64(wordCount)*100*100) / 100
	}
	return density
}
