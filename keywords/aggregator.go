package keywords

import (
	"sort"

	"seoagent/config"
	"seoagent/types"
)

// MergeAndRank merges the subject page's keywords with every competitor
// keyword set and produces the bounded suggestion list.
//
// Precedence on duplicate normalized terms: higher volume wins; on a volume
// tie the subject-sourced record wins. The final ranking is descending by
// volume with ties broken by insertion order, subject records inserted
// before competitor records. Article and competitor lists are returned
// deduplicated within their own group, independent of the merged top list.
func MergeAndRank(subject []types.KeywordRecord, perCompetitor map[string][]types.KeywordRecord) (article, competitor, suggested []types.KeywordRecord) {
	article = dedupeGroup(tag(subject, types.SourceSubject, ""))

	// Competitor names iterate in sorted order so the merge is
	// deterministic regardless of map ordering.
	names := make([]string, 0, len(perCompetitor))
	for name := range perCompetitor {
		names = append(names, name)
	}
	sort.Strings(names)

	var flattened []types.KeywordRecord
	for _, name := range names {
		flattened = append(flattened, tag(perCompetitor[name], types.SourceCompetitor, name)...)
	}
	competitor = dedupeGroup(flattened)

	union := dedupeUnion(article, competitor)
	sort.SliceStable(union, func(i, j int) bool {
		return union[i].Volume > union[j].Volume
	})

	if len(union) > config.MaxSuggestedKeywords {
		union = union[:config.MaxSuggestedKeywords]
	}
	suggested = union

	return article, competitor, suggested
}

func tag(records []types.KeywordRecord, source types.KeywordSource, competitorName string) []types.KeywordRecord {
	out := make([]types.KeywordRecord, len(records))
	for i, r := range records {
		r.Term = types.NormalizeTerm(r.Term)
		r.Source = source
		if source == types.SourceCompetitor && r.CompetitorName == "" {
			r.CompetitorName = competitorName
		}
		if r.Volume < 0 {
			r.Volume = 0
		}
		out[i] = r
	}
	return out
}

// dedupeGroup removes duplicate terms within one source group, keeping the
// higher-volume record and the first attribution on ties.
func dedupeGroup(records []types.KeywordRecord) []types.KeywordRecord {
	out := make([]types.KeywordRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, r := range records {
		if r.Term == "" {
			continue
		}
		if i, ok := index[r.Term]; ok {
			if r.Volume > out[i].Volume {
				out[i] = r
			}
			continue
		}
		index[r.Term] = len(out)
		out = append(out, r)
	}
	return out
}

// dedupeUnion merges the two groups preserving insertion order: subject
// first, so a later competitor record only displaces a subject record when
// its volume is strictly higher. Source attribution of the winner survives
// for traceability.
func dedupeUnion(subject, competitor []types.KeywordRecord) []types.KeywordRecord {
	out := make([]types.KeywordRecord, 0, len(subject)+len(competitor))
	index := make(map[string]int, len(subject)+len(competitor))
	for _, r := range subject {
		index[r.Term] = len(out)
		out = append(out, r)
	}
	for _, r := range competitor {
		if i, ok := index[r.Term]; ok {
			if r.Volume > out[i].Volume {
				out[i] = r
			}
			continue
		}
		index[r.Term] = len(out)
		out = append(out, r)
	}
	return out
}
