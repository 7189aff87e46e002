package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
)

// ValidationError reports a rejected user action: an empty required field or
// a delivery date in the past. The operation aborts with no partial state
// change; the error is surfaced to the caller, never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type InboxService interface {
	// List returns the current inbox view for a filter mode and query,
	// in insertion order.
	List(ctx context.Context, mode model.FilterMode, query string) ([]*model.Email, error)
	// Select returns the email and, iff it was unread, marks it read. This
	// is the only automatic path from unread to read.
	Select(ctx context.Context, id string) (*model.Email, error)
	Toggle(ctx context.Context, id string, field model.ToggleField) (*model.Email, error)
	Add(ctx context.Context, email *model.Email) error
	UnreadCount(ctx context.Context) (int, error)
	Stats(ctx context.Context) (model.SentimentStats, error)
	// Refresh appends n newly generated synthetic emails without removing
	// existing ones, and returns them.
	Refresh(ctx context.Context, n int) ([]*model.Email, error)
	Count(ctx context.Context) (int, error)
}

type SchedulerService interface {
	Schedule(ctx context.Context, to, subject, content string, date time.Time) (*model.ScheduledEmail, error)
	// Tick promotes every pending entry due at or before now into the inbox,
	// exactly once per entry, in insertion order. It returns the emails it
	// delivered.
	Tick(ctx context.Context, now time.Time) ([]*model.Email, error)
	Cancel(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]*model.ScheduledEmail, error)
	PendingCount(ctx context.Context) (int, error)
}
