package replay

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"nursery/internal/adapter/repo/memory"
	"nursery/internal/app/ports"
	"nursery/internal/domain/catalog"
	"nursery/internal/domain/nursery"
	"nursery/internal/domain/plant"
)

func TestUseCase_ReconstructsHistoryFromEvents(t *testing.T) {
	repo := fakeRepo{events: []nursery.Event{
		{PlantID: "p1", Type: nursery.EventPlantPurchased, OccurredAt: time.Unix(5, 0), Payload: map[string]any{"day": 21.0, "customer_id": "c1", "price": 15.0, "name": "Rose"}},
		{PlantID: "p1", Type: nursery.EventPlantRelocated, OccurredAt: time.Unix(4, 0), Payload: map[string]any{"day": 20.0}},
		{PlantID: "p1", Type: nursery.EventStateChanged, OccurredAt: time.Unix(3, 0), Payload: map[string]any{"day": 20.0, "to": "Mature"}},
		{PlantID: "p1", Type: nursery.EventCareAlert, OccurredAt: time.Unix(2, 0), Payload: map[string]any{"day": 3.0}},
		{PlantID: "p1", Type: nursery.EventPlantCreated, OccurredAt: time.Unix(1, 0), Payload: map[string]any{"day": 0.0, "name": "Rose"}},
	}}

	uc := UseCase{Events: repo}
	out, err := uc.Execute(context.Background(), Request{PlantID: "p1", Limit: 10})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.History == nil {
		t.Fatalf("expected history for plant query")
	}
	h := *out.History
	if h.State != "Mature" || !h.Sold || h.Customer != "c1" || h.SalePrice != 15 {
		t.Fatalf("unexpected history %+v", h)
	}
	if h.Day != 21 || h.Alerts != 1 || h.Area != "" || h.Name != "Rose" {
		t.Fatalf("unexpected history %+v", h)
	}
	if len(out.Events) != 5 {
		t.Fatalf("expected 5 events")
	}
}

func TestUseCase_FiltersTimeWindow(t *testing.T) {
	repo := fakeRepo{events: []nursery.Event{
		{PlantID: "p1", Type: nursery.EventCareAlert, OccurredAt: time.Unix(30, 0)},
		{PlantID: "p1", Type: nursery.EventCareAlert, OccurredAt: time.Unix(20, 0)},
		{PlantID: "p1", Type: nursery.EventCareAlert, OccurredAt: time.Unix(10, 0)},
	}}
	out, err := UseCase{Events: repo}.Execute(context.Background(), Request{PlantID: "p1", OccurredFrom: 15, OccurredTo: 25})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 1 || out.History == nil || out.History.Alerts != 1 {
		t.Fatalf("expected one event in window, got %d", len(out.Events))
	}
}

func TestUseCase_FacilityListingHasNoHistory(t *testing.T) {
	repo := fakeRepo{events: []nursery.Event{{PlantID: nursery.FacilityScope, Type: nursery.EventDayAdvanced, OccurredAt: time.Unix(1, 0)}}}
	out, err := UseCase{Events: repo}.Execute(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.History != nil || len(out.Events) != 1 {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestUseCase_RejectsNegativeLimit(t *testing.T) {
	if _, err := (UseCase{}).Execute(context.Background(), Request{Limit: -1}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_PropagatesRepoError(t *testing.T) {
	uc := UseCase{Events: fakeRepo{err: ports.ErrNotFound}}
	if _, err := uc.Execute(context.Background(), Request{PlantID: "p1"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUseCase_LimitPagesEventsButNotHistory(t *testing.T) {
	f, err := nursery.NewFacility(nursery.Config{
		GrowingRows: 1, GrowingCols: 1, DisplayRows: 1, DisplayCols: 1,
		Logger: log.New(io.Discard, "", 0),
	}, catalog.New(catalog.NewSequenceIDs(), nil))
	if err != nil {
		t.Fatalf("facility: %v", err)
	}
	repo := memory.NewEventRepo(memory.NewStore())
	ctx := context.Background()
	placed, events, err := f.Plant(plant.CategoryFlower, "", nil)
	if err != nil {
		t.Fatalf("plant: %v", err)
	}
	if err := repo.Append(ctx, events); err != nil {
		t.Fatalf("append: %v", err)
	}
	_, events, err = f.AdvanceDay(30)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := repo.Append(ctx, events); err != nil {
		t.Fatalf("append: %v", err)
	}

	id := placed.Plant.ID
	full, err := UseCase{Events: repo}.Execute(ctx, Request{PlantID: id})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	paged, err := UseCase{Events: repo}.Execute(ctx, Request{PlantID: id, Limit: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(paged.Events) != 1 {
		t.Fatalf("expected one event, got %d", len(paged.Events))
	}
	live, err := f.PlantByID(id)
	if err != nil {
		t.Fatalf("plant by id: %v", err)
	}
	h := *paged.History
	if h.State != live.Plant.State || h.Area != string(live.Area) || h.Name != "Flower" {
		t.Fatalf("history %+v does not match live plant %+v", h, live)
	}
	if h != *full.History {
		t.Fatalf("paged history %+v differs from full %+v", h, *full.History)
	}
}

type fakeRepo struct {
	events []nursery.Event
	err    error
}

func (r fakeRepo) Append(_ context.Context, _ []nursery.Event) error {
	return nil
}

func (r fakeRepo) List(_ context.Context, _ ports.EventQuery) ([]nursery.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.events, nil
}
