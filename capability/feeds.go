package capability

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"

	"seoagent/types"
)

// Feed paths worth probing on a competitor site, in priority order.
var feedPaths = []string{
	"/blog/feed",
	"/blog/rss.xml",
	"/feed",
	"/rss.xml",
}

const maxFeedEntries = 50

// feedScanner scans a competitor's RSS/Atom feeds for an entry covering a
// capability. Used as the fallback location strategy when no model-proposed
// URL verifies.
type feedScanner struct {
	parser *gofeed.Parser
}

func newFeedScanner() *feedScanner {
	return &feedScanner{parser: gofeed.NewParser()}
}

// findEntry returns the link of the first feed entry whose title or
// description mentions the capability, or "" when nothing matches. Feed
// fetch failures are silent: most sites simply have no feed.
func (f *feedScanner) findEntry(ctx context.Context, competitor types.Competitor, cap types.Capability) string {
	terms := capabilityTerms(cap)
	if len(terms) == 0 {
		return ""
	}

	base := strings.TrimRight(competitor.BaseURL, "/")
	for _, path := range feedPaths {
		feed, err := f.parser.ParseURLWithContext(base+path, ctx)
		if err != nil || feed == nil {
			continue
		}
		items := feed.Items
		if len(items) > maxFeedEntries {
			items = items[:maxFeedEntries]
		}
		for _, item := range items {
			if item == nil || item.Link == "" {
				continue
			}
			haystack := strings.ToLower(item.Title + " " + item.Description)
			if matchesAll(haystack, terms) {
				return item.Link
			}
		}
	}
	return ""
}

// capabilityTerms lowers the capability label into match words, dropping
// single-character noise.
func capabilityTerms(cap types.Capability) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(cap.Label)) {
		if len(w) > 1 {
			terms = append(terms, w)
		}
	}
	return terms
}

func matchesAll(haystack string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}
