package service

import (
	"context"
	"strings"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/sentiment"
	"go.uber.org/zap"
)

// Sender recorded on emails the scheduler promotes into the inbox.
const outboundSender = "agent@helpdesk.local"

type schedulerService struct {
	scheduleRepo repository.ScheduleRepository
	inbox        InboxService
	clock        clock.Clock
	logger       *zap.Logger
}

func NewSchedulerService(
	scheduleRepo repository.ScheduleRepository,
	inbox InboxService,
	clk clock.Clock,
	logger *zap.Logger,
) SchedulerService {
	return &schedulerService{
		scheduleRepo: scheduleRepo,
		inbox:        inbox,
		clock:        clk,
		logger:       logger,
	}
}

func (s *schedulerService) Schedule(ctx context.Context, to, subject, content string, date time.Time) (*model.ScheduledEmail, error) {
	if strings.TrimSpace(to) == "" {
		return nil, &ValidationError{Field: "to", Reason: "must not be empty"}
	}
	if strings.TrimSpace(subject) == "" {
		return nil, &ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}

	now := s.clock.Now()
	if date.Before(now) {
		return nil, &ValidationError{Field: "date", Reason: "must not be in the past"}
	}

	entry := model.NewScheduledEmail(to, subject, content, date, now)
	if err := s.scheduleRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("scheduled outbound email",
		zap.String("id", entry.ID),
		zap.Time("date", entry.Date))
	return entry, nil
}

func (s *schedulerService) Tick(ctx context.Context, now time.Time) ([]*model.Email, error) {
	entries, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	// Insertion order, not date order: simultaneously-due entries are
	// promoted in the order they were scheduled.
	var delivered []*model.Email
	for _, entry := range entries {
		if entry.Status != model.SchedulePending || entry.Date.After(now) {
			continue
		}

		// The transition settles the entry first, so a repeated tick or a
		// racing cancel can never promote it twice.
		if _, err := s.scheduleRepo.Transition(ctx, entry.ID, model.SchedulePending, model.ScheduleDelivered); err != nil {
			continue
		}

		email := model.NewEmail(outboundSender, entry.Subject, entry.Content, sentiment.Classify(entry.Content), now)
		email.IsRead = true
		email.Tags = []string{"outbound"}

		if err := s.inbox.Add(ctx, email); err != nil {
			s.logger.Error("failed to promote scheduled email",
				zap.String("id", entry.ID),
				zap.Error(err))
			continue
		}

		s.logger.Info("promoted scheduled email",
			zap.String("schedule_id", entry.ID),
			zap.String("email_id", email.ID))
		delivered = append(delivered, email)
	}

	return delivered, nil
}

// Cancel is best-effort: only a still-pending entry can be cancelled. An
// unknown id, or one a tick already delivered, reports ErrNotFound.
func (s *schedulerService) Cancel(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.Transition(ctx, id, model.SchedulePending, model.ScheduleCancelled); err != nil {
		return err
	}
	s.logger.Info("cancelled scheduled email", zap.String("id", id))
	return nil
}

func (s *schedulerService) Pending(ctx context.Context) ([]*model.ScheduledEmail, error) {
	entries, err := s.scheduleRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*model.ScheduledEmail, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == model.SchedulePending {
			pending = append(pending, entry)
		}
	}
	return pending, nil
}

func (s *schedulerService) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.Pending(ctx)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}
