package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/corpus"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository/memory"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/sentiment"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

var filterModes = []model.FilterMode{
	model.FilterAll, model.FilterUnread, model.FilterStarred, model.FilterResolved,
}

func generateCorpus(seed int64, n int) []*model.Email {
	manual := clock.NewManual(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	generator := corpus.NewGenerator(rand.New(rand.NewSource(seed)), manual)
	return generator.Generate(n)
}

func sameEmails(a, b []*model.Email) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// Filtering any corpus twice with the same mode and query yields the same
// view as filtering it once.
func TestProperty_FilterIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("filter_idempotent", prop.ForAll(
		func(seed int64, n int, modeIdx int, query string) bool {
			emails := generateCorpus(seed, n)
			mode := filterModes[modeIdx]

			once := FilterEmails(emails, mode, query)
			twice := FilterEmails(once, mode, query)
			return sameEmails(once, twice)
		},
		gen.Int64(),
		gen.IntRange(0, 40),
		gen.IntRange(0, len(filterModes)-1),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// The unread view and its read complement partition the inbox: together they
// rebuild the original set with no duplicates.
func TestProperty_UnreadReadPartition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("unread_read_partition", prop.ForAll(
		func(seed int64, n int) bool {
			emails := generateCorpus(seed, n)

			unread := FilterEmails(emails, model.FilterUnread, "")
			for _, email := range unread {
				if email.IsRead {
					return false
				}
			}

			seen := make(map[string]bool)
			for _, email := range unread {
				seen[email.ID] = true
			}
			for _, email := range emails {
				if email.IsRead {
					if seen[email.ID] {
						return false
					}
					seen[email.ID] = true
				}
			}
			return len(seen) == len(emails)
		},
		gen.Int64(),
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}

// Toggling any flag twice restores the email's original state.
func TestProperty_ToggleInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("toggle_involution", prop.ForAll(
		func(seed int64, fieldIdx int) bool {
			ctx := context.Background()
			manual := clock.NewManual(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
			repo := memory.NewInMemoryInboxRepository()
			generator := corpus.NewGenerator(rand.New(rand.NewSource(seed)), manual)
			svc := NewInboxService(repo, generator, zap.NewNop())

			emails, err := svc.Refresh(ctx, 1)
			if err != nil || len(emails) != 1 {
				return false
			}
			email := emails[0]
			field := []model.ToggleField{model.FieldRead, model.FieldResolved, model.FieldStarred}[fieldIdx]

			read, resolved, starred := email.IsRead, email.IsResolved, email.IsStarred

			if _, err := svc.Toggle(ctx, email.ID, field); err != nil {
				return false
			}
			if _, err := svc.Toggle(ctx, email.ID, field); err != nil {
				return false
			}

			restored, err := repo.FindByID(ctx, email.ID)
			if err != nil {
				return false
			}
			return restored.IsRead == read &&
				restored.IsResolved == resolved &&
				restored.IsStarred == starred
		},
		gen.Int64(),
		gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}

// The classifier is a pure function of its input.
func TestProperty_ClassifierDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("classify_deterministic", prop.ForAll(
		func(text string) bool {
			return sentiment.Classify(text) == sentiment.Classify(text)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
