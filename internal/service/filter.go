package service

import (
	"strings"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
)

// FilterEmails derives a view over the inbox: the mode predicate AND, when
// query is non-empty, a case-insensitive substring match against any of
// from, subject and content. It preserves input order and never sorts. The
// result is non-nil even when empty, so an empty view is distinguishable
// from one that has not loaded.
func FilterEmails(emails []*model.Email, mode model.FilterMode, query string) []*model.Email {
	q := strings.ToLower(query)

	result := make([]*model.Email, 0, len(emails))
	for _, email := range emails {
		if !matchesMode(email, mode) {
			continue
		}
		if q != "" && !matchesQuery(email, q) {
			continue
		}
		result = append(result, email)
	}
	return result
}

func matchesMode(email *model.Email, mode model.FilterMode) bool {
	switch mode {
	case model.FilterUnread:
		return !email.IsRead
	case model.FilterStarred:
		return email.IsStarred
	case model.FilterResolved:
		return email.IsResolved
	default:
		return true
	}
}

func matchesQuery(email *model.Email, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(email.From), loweredQuery) ||
		strings.Contains(strings.ToLower(email.Subject), loweredQuery) ||
		strings.Contains(strings.ToLower(email.Content), loweredQuery)
}
