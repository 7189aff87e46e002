package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/corpus"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInboxService(seed int64) (InboxService, *memory.InMemoryInboxRepository, *clock.Manual) {
	manual := clock.NewManual(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	repo := memory.NewInMemoryInboxRepository()
	generator := corpus.NewGenerator(rand.New(rand.NewSource(seed)), manual)
	return NewInboxService(repo, generator, zap.NewNop()), repo, manual
}

func addFixture(t *testing.T, repo *memory.InMemoryInboxRepository) *model.Email {
	t.Helper()
	email := model.NewEmail("sender@example.com", "subject", "content", model.SentimentNeutral, time.Now())
	require.NoError(t, repo.Add(context.Background(), email))
	return email
}

func TestToggleIsAnInvolution(t *testing.T) {
	svc, repo, _ := newTestInboxService(1)
	ctx := context.Background()
	email := addFixture(t, repo)

	for _, field := range []model.ToggleField{model.FieldRead, model.FieldResolved, model.FieldStarred} {
		before, err := repo.FindByID(ctx, email.ID)
		require.NoError(t, err)
		original := flagValue(before, field)

		_, err = svc.Toggle(ctx, email.ID, field)
		require.NoError(t, err)
		flipped, _ := repo.FindByID(ctx, email.ID)
		assert.Equal(t, !original, flagValue(flipped, field))

		_, err = svc.Toggle(ctx, email.ID, field)
		require.NoError(t, err)
		restored, _ := repo.FindByID(ctx, email.ID)
		assert.Equal(t, original, flagValue(restored, field), "double toggle of %s must restore the original value", field)
	}
}

func flagValue(email *model.Email, field model.ToggleField) bool {
	switch field {
	case model.FieldRead:
		return email.IsRead
	case model.FieldResolved:
		return email.IsResolved
	default:
		return email.IsStarred
	}
}

func TestToggleFlagsAreIndependent(t *testing.T) {
	svc, repo, _ := newTestInboxService(2)
	ctx := context.Background()
	email := addFixture(t, repo)

	_, err := svc.Toggle(ctx, email.ID, model.FieldStarred)
	require.NoError(t, err)

	stored, _ := repo.FindByID(ctx, email.ID)
	assert.True(t, stored.IsStarred)
	assert.False(t, stored.IsRead)
	assert.False(t, stored.IsResolved)
}

func TestToggleUnknownID(t *testing.T) {
	svc, _, _ := newTestInboxService(3)

	_, err := svc.Toggle(context.Background(), "missing", model.FieldRead)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestToggleRejectsUnknownField(t *testing.T) {
	svc, repo, _ := newTestInboxService(4)
	email := addFixture(t, repo)

	_, err := svc.Toggle(context.Background(), email.ID, model.ToggleField("archived"))

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSelectMarksUnreadEmailReadExactlyOnce(t *testing.T) {
	svc, repo, _ := newTestInboxService(5)
	ctx := context.Background()
	email := addFixture(t, repo)
	require.False(t, email.IsRead)

	selected, err := svc.Select(ctx, email.ID)
	require.NoError(t, err)
	assert.True(t, selected.IsRead)

	// Selecting an already-read email leaves it read
	again, err := svc.Select(ctx, email.ID)
	require.NoError(t, err)
	assert.True(t, again.IsRead)
}

func TestSelectUnknownID(t *testing.T) {
	svc, _, _ := newTestInboxService(6)

	_, err := svc.Select(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnreadCountIsRecomputed(t *testing.T) {
	svc, repo, _ := newTestInboxService(7)
	ctx := context.Background()

	first := addFixture(t, repo)
	addFixture(t, repo)

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.Select(ctx, first.ID)
	require.NoError(t, err)

	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStatsMatchStoredSentiments(t *testing.T) {
	svc, repo, _ := newTestInboxService(8)
	ctx := context.Background()

	sentiments := []model.Sentiment{
		model.SentimentPositive, model.SentimentPositive,
		model.SentimentNegative,
		model.SentimentNeutral, model.SentimentNeutral, model.SentimentNeutral,
	}
	for _, s := range sentiments {
		email := model.NewEmail("a@b.c", "s", "c", s, time.Now())
		require.NoError(t, repo.Add(ctx, email))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SentimentStats{Positive: 2, Neutral: 3, Negative: 1}, stats)
}

func TestRefreshAppendsWithoutRemoving(t *testing.T) {
	svc, repo, _ := newTestInboxService(9)
	ctx := context.Background()

	existing := addFixture(t, repo)

	generated, err := svc.Refresh(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, generated, 10)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 11)
	assert.Equal(t, existing.ID, all[0].ID, "refresh must not displace existing emails")
}

func TestRefreshRejectsNegativeCount(t *testing.T) {
	svc, _, _ := newTestInboxService(10)

	_, err := svc.Refresh(context.Background(), -1)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestListAppliesFilterAndQuery(t *testing.T) {
	svc, repo, _ := newTestInboxService(11)
	ctx := context.Background()

	unreadMatch := model.NewEmail("a@b.c", "billing issue", "please help", model.SentimentNeutral, time.Now())
	readMatch := model.NewEmail("a@b.c", "billing question", "thanks", model.SentimentPositive, time.Now())
	readMatch.IsRead = true
	unrelated := model.NewEmail("a@b.c", "other", "other", model.SentimentNeutral, time.Now())

	for _, email := range []*model.Email{unreadMatch, readMatch, unrelated} {
		require.NoError(t, repo.Add(ctx, email))
	}

	matched, err := svc.List(ctx, model.FilterUnread, "billing")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, unreadMatch.ID, matched[0].ID)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	svc, repo, _ := newTestInboxService(12)
	ctx := context.Background()
	email := addFixture(t, repo)

	clone := model.NewEmail("x@y.z", "clone", "clone", model.SentimentNeutral, time.Now())
	clone.ID = email.ID
	assert.ErrorIs(t, svc.Add(ctx, clone), repository.ErrDuplicateID)
}
