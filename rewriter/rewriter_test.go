package rewriter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"seoagent/llm"
	"seoagent/types"
)

// scriptedModel rewrites by prefixing the chunk, or misbehaves on demand.
type scriptedModel struct {
	err       error
	echoInput bool
	calls     int
}

func (s *scriptedModel) Complete(ctx context.Context, c llm.Completion) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	chunk := extractChunk(c.Prompt)
	if s.echoInput {
		return chunk, nil
	}
	return "Rewritten: " + chunk, nil
}

func extractChunk(prompt string) string {
	const marker = "TEXT TO REWRITE:\n"
	if i := strings.Index(prompt, marker); i >= 0 {
		return prompt[i+len(marker):]
	}
	return prompt
}

func TestRewriteEmbedsKeywords(t *testing.T) {
	model := &scriptedModel{}
	r := New(model, 4000)

	result, err := r.Rewrite(context.Background(), "Build forms faster with drag and drop.", []string{"form builder"}, "professional")
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	if !strings.HasPrefix(result.RewrittenContent, "Rewritten: ") {
		t.Errorf("content not rewritten: %q", result.RewrittenContent)
	}
	if result.ChunkCount != 1 {
		t.Errorf("ChunkCount=%d, want 1", result.ChunkCount)
	}
	if result.Tone != "professional" {
		t.Errorf("Tone=%q, want professional", result.Tone)
	}
	if len(result.KeywordsUsed) != 1 || result.KeywordsUsed[0] != "form builder" {
		t.Errorf("KeywordsUsed=%v, want [form builder]", result.KeywordsUsed)
	}
}

func TestRewriteRejectsEmptyContent(t *testing.T) {
	r := New(&scriptedModel{}, 4000)
	_, err := r.Rewrite(context.Background(), "   ", []string{"form builder"}, "")
	if !types.IsValidation(err) {
		t.Fatalf("expected validation error for empty content, got %v", err)
	}
}

func TestRewriteRejectsTooManyKeywords(t *testing.T) {
	r := New(&scriptedModel{}, 4000)
	_, err := r.Rewrite(context.Background(), "Some content.", []string{"a", "b", "c", "d"}, "")
	if !types.IsValidation(err) {
		t.Fatalf("expected validation error for 4 keywords, got %v", err)
	}
}

func TestRewriteToneOnlyWithNoKeywords(t *testing.T) {
	r := New(&scriptedModel{}, 4000)
	result, err := r.Rewrite(context.Background(), "Some content here.", nil, "")
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if result.Tone != "professional" {
		t.Errorf("empty tone defaulted to %q, want professional", result.Tone)
	}
	if result.KeywordDensity != nil {
		t.Errorf("expected nil density with no keywords, got %v", result.KeywordDensity)
	}
}

func TestRewritePassesThroughUnchangedChunks(t *testing.T) {
	model := &scriptedModel{echoInput: true}
	r := New(model, 4000)

	content := "The model keeps returning this exact text."
	result, err := r.Rewrite(context.Background(), content, []string{"seo"}, "casual")
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	if result.RewrittenContent != content {
		t.Errorf("degraded chunk should pass through unchanged, got %q", result.RewrittenContent)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
	// One retry per chunk before giving up.
	if model.calls != 2 {
		t.Errorf("model called %d times, want 2", model.calls)
	}
}

func TestRewriteServiceUnavailable(t *testing.T) {
	model := &scriptedModel{err: errors.New("connection refused")}
	r := New(model, 4000)

	_, err := r.Rewrite(context.Background(), "Any content at all.", nil, "")
	if err == nil {
		t.Fatal("expected error when every chunk fails with a transport error")
	}
	var ue *types.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
}

func TestRewriteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := &scriptedModel{err: context.Canceled}
	r := New(model, 4000)

	_, err := r.Rewrite(ctx, "Any content at all.", nil, "")
	if err == nil {
		t.Fatal("expected error on cancelled context")
	}
}

func TestKeywordDensity(t *testing.T) {
	content := "A form builder speeds up work. The form builder also validates input. Forms matter."
	density := keywordDensity(content, []string{"form builder"})

	// 2 occurrences x 2 words per keyword over 14 words.
	got := density["form builder"]
	if got < 28.5 || got > 28.6 {
		t.Errorf("density=%v, want ~28.57", got)
	}
}

func TestKeywordDensityNoMatches(t *testing.T) {
	density := keywordDensity("Nothing relevant here.", []string{"form builder"})
	if density["form builder"] != 0 {
		t.Errorf("density=%v, want 0", density["form builder"])
	}
}
