package service

import (
	"context"
	"fmt"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/corpus"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository"
	"go.uber.org/zap"
)

type inboxService struct {
	inboxRepo repository.InboxRepository
	generator *corpus.Generator
	logger    *zap.Logger
}

func NewInboxService(
	inboxRepo repository.InboxRepository,
	generator *corpus.Generator,
	logger *zap.Logger,
) InboxService {
	return &inboxService{
		inboxRepo: inboxRepo,
		generator: generator,
		logger:    logger,
	}
}

func (s *inboxService) List(ctx context.Context, mode model.FilterMode, query string) ([]*model.Email, error) {
	emails, err := s.inboxRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}
	return FilterEmails(emails, mode, query), nil
}

func (s *inboxService) Select(ctx context.Context, id string) (*model.Email, error) {
	email, err := s.inboxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Opening an email always marks it read; there is no mark-unread-on-view
	// path. An already-read email is left untouched.
	if !email.IsRead {
		email.IsRead = true
		if err := s.inboxRepo.Update(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to mark email read: %w", err)
		}
		s.logger.Debug("marked email read on selection", zap.String("id", id))
	}
	return email, nil
}

func (s *inboxService) Toggle(ctx context.Context, id string, field model.ToggleField) (*model.Email, error) {
	email, err := s.inboxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch field {
	case model.FieldRead:
		email.IsRead = !email.IsRead
	case model.FieldResolved:
		email.IsResolved = !email.IsResolved
	case model.FieldStarred:
		email.IsStarred = !email.IsStarred
	default:
		return nil, &ValidationError{Field: "field", Reason: "must be one of read, resolved, starred"}
	}

	if err := s.inboxRepo.Update(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to update email: %w", err)
	}
	s.logger.Debug("toggled email flag", zap.String("id", id), zap.String("field", string(field)))
	return email, nil
}

func (s *inboxService) Add(ctx context.Context, email *model.Email) error {
	if err := s.inboxRepo.Add(ctx, email); err != nil {
		s.logger.Error("failed to add email", zap.String("id", email.ID), zap.Error(err))
		return err
	}
	return nil
}

// UnreadCount is recomputed from the collection on every call; a cached
// counter could drift from the source of truth.
func (s *inboxService) UnreadCount(ctx context.Context) (int, error) {
	emails, err := s.inboxRepo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load inbox: %w", err)
	}

	count := 0
	for _, email := range emails {
		if !email.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *inboxService) Stats(ctx context.Context) (model.SentimentStats, error) {
	emails, err := s.inboxRepo.All(ctx)
	if err != nil {
		return model.SentimentStats{}, fmt.Errorf("failed to load inbox: %w", err)
	}

	var stats model.SentimentStats
	for _, email := range emails {
		switch email.Sentiment {
		case model.SentimentPositive:
			stats.Positive++
		case model.SentimentNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}
	}
	return stats, nil
}

func (s *inboxService) Refresh(ctx context.Context, n int) ([]*model.Email, error) {
	if n < 0 {
		return nil, &ValidationError{Field: "count", Reason: "must not be negative"}
	}

	emails := s.generator.Generate(n)
	for _, email := range emails {
		if err := s.inboxRepo.Add(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to store generated email: %w", err)
		}
	}

	s.logger.Info("appended synthetic emails", zap.Int("count", len(emails)))
	return emails, nil
}

func (s *inboxService) Count(ctx context.Context) (int, error) {
	return s.inboxRepo.Count(ctx)
}
