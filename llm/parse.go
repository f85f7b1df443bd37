package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedReply reports a model response that carried no decodable JSON
// object.
var ErrMalformedReply = errors.New("model reply contained no valid JSON object")

// DecodeReply extracts the outermost JSON object from a model reply and
// unmarshals it into v. Models wrap JSON in prose or markdown fences often
// enough that a plain Unmarshal is not reliable.
func DecodeReply(reply string, v any) error {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return ErrMalformedReply
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), v); err != nil {
		return ErrMalformedReply
	}
	return nil
}

// StripFences removes a surrounding markdown code fence from a model reply,
// if present. Used for plain-text contracts like rewriting.
func StripFences(reply string) string {
	out := strings.TrimSpace(reply)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	lines := strings.Split(out, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
