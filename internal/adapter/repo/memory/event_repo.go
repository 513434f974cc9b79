package memory

import (
	"context"

	"nursery/internal/app/ports"
	"nursery/internal/domain/nursery"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []nursery.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range events {
		if e.PlantID == "" {
			e.PlantID = nursery.FacilityScope
		}
		r.store.events = append(r.store.events, e)
	}
	return nil
}

// List walks the journal backwards so the newest events come first.
func (r EventRepo) List(_ context.Context, q ports.EventQuery) ([]nursery.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]nursery.Event, 0)
	for i := len(r.store.events) - 1; i >= 0; i-- {
		e := r.store.events[i]
		if q.PlantID != "" && e.PlantID != q.PlantID {
			continue
		}
		if !q.OccurredFrom.IsZero() && e.OccurredAt.Before(q.OccurredFrom) {
			continue
		}
		if !q.OccurredTo.IsZero() && e.OccurredAt.After(q.OccurredTo) {
			continue
		}
		out = append(out, e)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}
