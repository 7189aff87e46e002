package repository

import (
	"context"
	"errors"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
)

var (
	// ErrNotFound is returned when no entity carries the requested id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is an invariant violation: ids are generated unique, so
	// a collision means a programming error. The add is rejected outright,
	// never merged into the existing entity.
	ErrDuplicateID = errors.New("duplicate id")
)

// InboxRepository is the single owner of all Email entities. Iteration order
// is insertion order; implementations never re-sort.
type InboxRepository interface {
	Add(ctx context.Context, email *model.Email) error
	FindByID(ctx context.Context, id string) (*model.Email, error)
	All(ctx context.Context) ([]*model.Email, error)
	Update(ctx context.Context, email *model.Email) error
	Count(ctx context.Context) (int, error)
}

// ScheduleRepository holds scheduled outbound emails, insertion-ordered.
// Status changes go through Transition so that a concurrent tick and cancel
// can never both settle the same entry.
type ScheduleRepository interface {
	Add(ctx context.Context, entry *model.ScheduledEmail) error
	FindByID(ctx context.Context, id string) (*model.ScheduledEmail, error)
	All(ctx context.Context) ([]*model.ScheduledEmail, error)
	// Transition atomically moves an entry from one status to another. It
	// returns ErrNotFound when the entry is absent or no longer in the
	// expected source status.
	Transition(ctx context.Context, id string, from, to model.ScheduleStatus) (*model.ScheduledEmail, error)
}
