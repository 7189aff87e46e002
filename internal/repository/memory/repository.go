package memory

import (
	"context"
	"sync"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository"
)

// InMemoryInboxRepository keeps every email in insertion order alongside an
// id index. The engine is in-memory by design; nothing survives a restart.
type InMemoryInboxRepository struct {
	order []string
	byID  map[string]*model.Email
	mutex sync.RWMutex
}

func NewInMemoryInboxRepository() *InMemoryInboxRepository {
	return &InMemoryInboxRepository{
		byID: make(map[string]*model.Email),
	}
}

func (r *InMemoryInboxRepository) Add(ctx context.Context, email *model.Email) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.byID[email.ID]; exists {
		return repository.ErrDuplicateID
	}
	r.byID[email.ID] = email
	r.order = append(r.order, email.ID)
	return nil
}

func (r *InMemoryInboxRepository) FindByID(ctx context.Context, id string) (*model.Email, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	email, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return email, nil
}

func (r *InMemoryInboxRepository) All(ctx context.Context) ([]*model.Email, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	emails := make([]*model.Email, 0, len(r.order))
	for _, id := range r.order {
		emails = append(emails, r.byID[id])
	}
	return emails, nil
}

func (r *InMemoryInboxRepository) Update(ctx context.Context, email *model.Email) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.byID[email.ID]; !exists {
		return repository.ErrNotFound
	}
	r.byID[email.ID] = email
	return nil
}

func (r *InMemoryInboxRepository) Count(ctx context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.order), nil
}

// InMemoryScheduleRepository holds scheduled outbound emails. Terminal
// entries stay in the collection so delivery history remains inspectable;
// callers filter on status.
type InMemoryScheduleRepository struct {
	order []string
	byID  map[string]*model.ScheduledEmail
	mutex sync.RWMutex
}

func NewInMemoryScheduleRepository() *InMemoryScheduleRepository {
	return &InMemoryScheduleRepository{
		byID: make(map[string]*model.ScheduledEmail),
	}
}

func (r *InMemoryScheduleRepository) Add(ctx context.Context, entry *model.ScheduledEmail) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.byID[entry.ID]; exists {
		return repository.ErrDuplicateID
	}
	r.byID[entry.ID] = entry
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *InMemoryScheduleRepository) FindByID(ctx context.Context, id string) (*model.ScheduledEmail, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return entry, nil
}

func (r *InMemoryScheduleRepository) All(ctx context.Context) ([]*model.ScheduledEmail, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entries := make([]*model.ScheduledEmail, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.byID[id])
	}
	return entries, nil
}

func (r *InMemoryScheduleRepository) Transition(ctx context.Context, id string, from, to model.ScheduleStatus) (*model.ScheduledEmail, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.byID[id]
	if !exists || entry.Status != from {
		return nil, repository.ErrNotFound
	}
	entry.Status = to
	return entry, nil
}
