package model

// FilterMode selects which slice of the inbox a view shows. It combines
// conjunctively with an optional free-text query.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterUnread   FilterMode = "unread"
	FilterStarred  FilterMode = "starred"
	FilterResolved FilterMode = "resolved"
)

// ParseFilterMode maps a request string onto a FilterMode. An empty string
// means no filtering.
func ParseFilterMode(s string) (FilterMode, bool) {
	if s == "" {
		return FilterAll, true
	}
	switch FilterMode(s) {
	case FilterAll, FilterUnread, FilterStarred, FilterResolved:
		return FilterMode(s), true
	}
	return "", false
}

// SentimentStats is a derived snapshot of sentiment counts over the current
// inbox contents. It is recomputed on demand and never stored, so it cannot
// drift from the source collection.
type SentimentStats struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}
