package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
)

type OutboxRepository struct {
	store *Store
}

func NewOutboxRepository(store *Store) outbox.Repository {
	return &OutboxRepository{store: store}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	entry.ID = uuid.NewString()
	r.store.locked(ctx, func() {
		r.store.outbox = append(r.store.outbox, entry)
	})
	return nil
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	var entries []outbox.Entry
	r.store.locked(ctx, func() {
		n := max(0, min(limit, len(r.store.outbox)))
		entries = slices.Clone(r.store.outbox[:n])
	})
	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	r.store.locked(ctx, func() {
		r.store.outbox = slices.DeleteFunc(r.store.outbox, func(e outbox.Entry) bool {
			return e.ID == id
		})
	})
	return nil
}
