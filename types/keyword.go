package types

import "strings"

// TimeRange is the averaging window used when querying search volume.
type TimeRange string

const (
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
)

// ValidTimeRange reports whether tr is one of the supported windows.
func ValidTimeRange(tr TimeRange) bool {
	switch tr {
	case TimeRangeWeek, TimeRangeMonth, TimeRangeYear:
		return true
	}
	return false
}

// KeywordSource identifies where a keyword record originated.
type KeywordSource string

const (
	SourceSubject    KeywordSource = "subject"
	SourceCompetitor KeywordSource = "competitor"
)

// KeywordRecord is a single keyword candidate with its search-volume metric.
// Uniqueness is defined by the normalized Term.
type KeywordRecord struct {
	Term           string        `json:"term"`
	Volume         int           `json:"volume"`
	Source         KeywordSource `json:"source"`
	CompetitorName string        `json:"competitor_name,omitempty"`
}

// NormalizeTerm folds case and collapses interior whitespace so that
// "Form  Builder" and "form builder" dedupe to the same record.
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}
