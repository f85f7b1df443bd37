package llm

import "testing"

type keywordsPayload struct {
	Keywords []string `json:"keywords"`
}

func TestDecodeReplyPlainJSON(t *testing.T) {
	var parsed keywordsPayload
	if err := DecodeReply(`{"keywords": ["online form"]}`, &parsed); err != nil {
		t.Fatalf("DecodeReply failed: %v", err)
	}
	if len(parsed.Keywords) != 1 || parsed.Keywords[0] != "online form" {
		t.Errorf("parsed %v, want [online form]", parsed.Keywords)
	}
}

func TestDecodeReplyJSONWrappedInProse(t *testing.T) {
	reply := "Sure! Here are the keywords you asked for:\n\n" +
		"```json\n{\"keywords\": [\"form builder\", \"survey tool\"]}\n```\n\nLet me know if you need more."
	var parsed keywordsPayload
	if err := DecodeReply(reply, &parsed); err != nil {
		t.Fatalf("DecodeReply failed: %v", err)
	}
	if len(parsed.Keywords) != 2 {
		t.Errorf("parsed %v, want 2 keywords", parsed.Keywords)
	}
}

func TestDecodeReplyNoJSON(t *testing.T) {
	var parsed keywordsPayload
	if err := DecodeReply("I cannot help with that.", &parsed); err != ErrMalformedReply {
		t.Fatalf("expected ErrMalformedReply, got %v", err)
	}
}

func TestDecodeReplyInvalidJSON(t *testing.T) {
	var parsed keywordsPayload
	if err := DecodeReply(`{"keywords": [unquoted]}`, &parsed); err != ErrMalformedReply {
		t.Fatalf("expected ErrMalformedReply, got %v", err)
	}
}

func TestStripFencesWithLanguageTag(t *testing.T) {
	got := StripFences("```markdown\nRewritten text here.\n```")
	if got != "Rewritten text here." {
		t.Errorf("got %q", got)
	}
}

func TestStripFencesPlainText(t *testing.T) {
	got := StripFences("  Rewritten text here.  ")
	if got != "Rewritten text here." {
		t.Errorf("got %q", got)
	}
}
