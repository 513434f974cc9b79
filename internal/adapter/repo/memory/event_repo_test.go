package memory

import (
	"context"
	"testing"
	"time"

	"nursery/internal/app/ports"
	"nursery/internal/domain/nursery"
)

func TestEventRepo_ListNewestFirstWithFilters(t *testing.T) {
	store := NewStore()
	repo := NewEventRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Append(ctx, []nursery.Event{
			{PlantID: "p1", Type: nursery.EventPlantCreated, OccurredAt: time.Unix(10, 0)},
			{PlantID: "p2", Type: nursery.EventPlantCreated, OccurredAt: time.Unix(20, 0)},
			{Type: nursery.EventDayAdvanced, OccurredAt: time.Unix(30, 0)},
			{PlantID: "p1", Type: nursery.EventStateChanged, OccurredAt: time.Unix(40, 0)},
		})
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if store.Len() != 4 {
		t.Fatalf("expected 4 stored events, got %d", store.Len())
	}

	all, _ := repo.List(ctx, ports.EventQuery{})
	if len(all) != 4 || all[0].Type != nursery.EventStateChanged {
		t.Fatalf("expected newest first, got %+v", all)
	}
	if all[1].PlantID != nursery.FacilityScope {
		t.Fatalf("expected facility scope for unkeyed event, got %q", all[1].PlantID)
	}

	p1, _ := repo.List(ctx, ports.EventQuery{PlantID: "p1", Limit: 1})
	if len(p1) != 1 || p1[0].Type != nursery.EventStateChanged {
		t.Fatalf("unexpected plant listing %+v", p1)
	}

	window, _ := repo.List(ctx, ports.EventQuery{OccurredFrom: time.Unix(15, 0), OccurredTo: time.Unix(35, 0)})
	if len(window) != 2 {
		t.Fatalf("expected 2 events in window, got %d", len(window))
	}
}
