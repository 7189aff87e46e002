package service

import (
	"testing"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureEmails() []*model.Email {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	first := model.NewEmail("maria.santos@acmecorp.com", "Login trouble", "Cannot access the dashboard", model.SentimentNeutral, base)
	first.IsRead = true

	second := model.NewEmail("billing@cloudnest.com", "Invoice question", "The March invoice looks wrong", model.SentimentNegative, base.Add(time.Minute))
	second.IsStarred = true

	third := model.NewEmail("t.okafor@gmail.com", "Thanks!", "Everything works great now", model.SentimentPositive, base.Add(2*time.Minute))
	third.IsRead = true
	third.IsResolved = true

	fourth := model.NewEmail("dev.team@stackpoint.dev", "Webhook failures", "Our INVOICE webhook stopped firing", model.SentimentNegative, base.Add(3*time.Minute))

	return []*model.Email{first, second, third, fourth}
}

func TestFilterAll(t *testing.T) {
	emails := fixtureEmails()
	assert.Equal(t, emails, FilterEmails(emails, model.FilterAll, ""))
}

func TestFilterModes(t *testing.T) {
	emails := fixtureEmails()

	unread := FilterEmails(emails, model.FilterUnread, "")
	require.Len(t, unread, 2)
	for _, email := range unread {
		assert.False(t, email.IsRead)
	}

	starred := FilterEmails(emails, model.FilterStarred, "")
	require.Len(t, starred, 1)
	assert.True(t, starred[0].IsStarred)

	resolved := FilterEmails(emails, model.FilterResolved, "")
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].IsResolved)
}

func TestFilterQueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	emails := fixtureEmails()

	// Matches subject of one email and content of another
	matched := FilterEmails(emails, model.FilterAll, "invoice")
	require.Len(t, matched, 2)
	assert.Equal(t, "Invoice question", matched[0].Subject)
	assert.Equal(t, "Webhook failures", matched[1].Subject)

	// From-field match
	bySender := FilterEmails(emails, model.FilterAll, "ACMECORP")
	require.Len(t, bySender, 1)
	assert.Equal(t, "maria.santos@acmecorp.com", bySender[0].From)
}

func TestFilterCombinesModeAndQueryConjunctively(t *testing.T) {
	emails := fixtureEmails()

	matched := FilterEmails(emails, model.FilterUnread, "invoice")
	require.Len(t, matched, 2)
	for _, email := range matched {
		assert.False(t, email.IsRead)
	}
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	emails := fixtureEmails()

	matched := FilterEmails(emails, model.FilterAll, "no such text anywhere")
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestFilterIsIdempotent(t *testing.T) {
	emails := fixtureEmails()

	once := FilterEmails(emails, model.FilterUnread, "invoice")
	twice := FilterEmails(once, model.FilterUnread, "invoice")
	assert.Equal(t, once, twice)
}

func TestFilterUnreadAndReadPartitionTheInbox(t *testing.T) {
	emails := fixtureEmails()

	unread := FilterEmails(emails, model.FilterUnread, "")

	read := make([]*model.Email, 0, len(emails))
	for _, email := range emails {
		if email.IsRead {
			read = append(read, email)
		}
	}

	assert.Equal(t, len(emails), len(unread)+len(read))

	union := make(map[string]bool)
	for _, email := range append(unread, read...) {
		assert.False(t, union[email.ID], "email %s appears in both partitions", email.ID)
		union[email.ID] = true
	}
	assert.Len(t, union, len(emails))
}

func TestFilterPreservesOrder(t *testing.T) {
	emails := fixtureEmails()

	matched := FilterEmails(emails, model.FilterAll, "o")
	for i := 1; i < len(matched); i++ {
		assert.True(t, indexOf(emails, matched[i-1]) < indexOf(emails, matched[i]))
	}
}

func indexOf(emails []*model.Email, target *model.Email) int {
	for i, email := range emails {
		if email.ID == target.ID {
			return i
		}
	}
	return -1
}
