package rewriter

import (
	"regexp"
	"strings"
)

var (
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	sentenceRe  = regexp.MustCompile(`(?s)(.*?[.!?])(?:\s+|$)`)
)

// splitChunks splits content into segments of at most maxSize characters.
// Paragraph boundaries are preferred, then sentence boundaries; a sentence
// is never split unless it alone exceeds maxSize, in which case it breaks
// at word boundaries.
func splitChunks(content string, maxSize int) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if len(content) <= maxSize {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
	}

	for _, paragraph := range paragraphRe.Split(content, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(paragraph)+2 > maxSize {
			flush()
		}

		if len(paragraph) <= maxSize {
			if current.Len() > 0 {
				current.WriteString("\n\n")
			}
			current.WriteString(paragraph)
			continue
		}

		// Paragraph alone exceeds the limit: pack sentence by sentence.
		flush()
		for _, sentence := range splitSentences(paragraph) {
			if current.Len() > 0 && current.Len()+len(sentence)+1 > maxSize {
				flush()
			}
			if len(sentence) > maxSize {
				flush()
				chunks = append(chunks, splitWords(sentence, maxSize)...)
				continue
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(sentence)
		}
		flush()
	}
	flush()

	return chunks
}

func splitSentences(paragraph string) []string {
	matches := sentenceRe.FindAllStringSubmatch(paragraph, -1)
	if len(matches) == 0 {
		return []string{paragraph}
	}
	var sentences []string
	consumed := 0
	for _, m := range matches {
		s := strings.TrimSpace(m[1])
		if s != "" {
			sentences = append(sentences, s)
		}
		consumed += len(m[0])
	}
	// Trailing text without terminal punctuation is its own sentence.
	if rest := strings.TrimSpace(paragraph[consumed:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// splitWords force-splits an oversized sentence at word boundaries.
func splitWords(sentence string, maxSize int) []string {
	var chunks []string
	var current strings.Builder
	for _, word := range strings.Fields(sentence) {
		if current.Len() > 0 && current.Len()+len(word)+1 > maxSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
