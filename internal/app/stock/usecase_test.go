package stock

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"nursery/internal/adapter/repo/memory"
	"nursery/internal/app/ports"
	"nursery/internal/app/shared/journal"
	"nursery/internal/domain/catalog"
	"nursery/internal/domain/inventory"
	"nursery/internal/domain/nursery"
	"nursery/internal/domain/plant"
)

func newUseCase(t *testing.T) (UseCase, memory.EventRepo) {
	t.Helper()
	f, err := nursery.NewFacility(nursery.Config{
		GrowingRows: 2, GrowingCols: 2, DisplayRows: 1, DisplayCols: 2,
		Logger: log.New(io.Discard, "", 0),
	}, catalog.New(catalog.NewSequenceIDs(), map[plant.Category]catalog.Spec{
		plant.CategoryVegetable: {Name: "Kale", BasePrice: 4, Decay: plant.Decay{Water: 40, Nutrient: 40}},
	}))
	if err != nil {
		t.Fatalf("facility: %v", err)
	}
	store := memory.NewStore()
	events := memory.NewEventRepo(store)
	return UseCase{Facility: f, Journal: journal.Recorder{TxManager: memory.NewTxManager(store), Events: events}}, events
}

func TestUseCase_PlantRecordsCreation(t *testing.T) {
	uc, events := newUseCase(t)
	out, err := uc.Plant(context.Background(), PlantRequest{Category: " Flower ", Name: "Rose"})
	if err != nil {
		t.Fatalf("plant: %v", err)
	}
	if out.Placed.Plant.Name != "Rose" || out.Placed.Plant.State != "Seedling" {
		t.Fatalf("unexpected placement %+v", out.Placed)
	}
	got, _ := events.List(context.Background(), ports.EventQuery{PlantID: out.Placed.Plant.ID})
	if len(got) != 1 || got[0].Type != nursery.EventPlantCreated {
		t.Fatalf("expected creation event, got %+v", got)
	}
}

func TestUseCase_PlantValidation(t *testing.T) {
	uc, _ := newUseCase(t)
	if _, err := uc.Plant(context.Background(), PlantRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Plant(context.Background(), PlantRequest{Category: "flower", Position: &inventory.Position{Row: -1}}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Plant(context.Background(), PlantRequest{Category: "cactus"}); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := (UseCase{}).Plant(context.Background(), PlantRequest{Category: "flower"}); !errors.Is(err, ports.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestUseCase_ListGetAndCare(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	placed, _ := uc.Plant(ctx, PlantRequest{Category: "succulent"})

	list, err := uc.List(ctx, ListRequest{Area: "GROWING"})
	if err != nil || len(list.Plants) != 1 {
		t.Fatalf("expected one growing plant, got %+v %v", list, err)
	}
	if _, err := uc.List(ctx, ListRequest{Area: "roof"}); !errors.Is(err, nursery.ErrUnknownArea) {
		t.Fatalf("expected ErrUnknownArea, got %v", err)
	}
	got, err := uc.Get(ctx, placed.Placed.Plant.ID)
	if err != nil || got.Plant.ID != placed.Placed.Plant.ID {
		t.Fatalf("get: %+v %v", got, err)
	}
	if _, err := uc.Get(ctx, "nope"); !errors.Is(err, nursery.ErrPlantNotFound) {
		t.Fatalf("expected ErrPlantNotFound, got %v", err)
	}
	cared, err := uc.Care(ctx, CareRequest{PlantID: placed.Placed.Plant.ID})
	if err != nil {
		t.Fatalf("care: %v", err)
	}
	if cared.Plant.WaterLevel != plant.MaxLevel {
		t.Fatalf("expected water clamped at max, got %d", cared.Plant.WaterLevel)
	}
}

func TestUseCase_RemoveDead(t *testing.T) {
	uc, events := newUseCase(t)
	ctx := context.Background()
	placed, _ := uc.Plant(ctx, PlantRequest{Category: "vegetable"})
	if _, _, err := uc.Facility.AdvanceDay(3); err != nil {
		t.Fatalf("advance: %v", err)
	}
	out, err := uc.RemoveDead(ctx)
	if err != nil {
		t.Fatalf("remove dead: %v", err)
	}
	if len(out.Removed) != 1 || out.Removed[0].PlantID != placed.Placed.Plant.ID {
		t.Fatalf("unexpected removal %+v", out.Removed)
	}
	got, _ := events.List(ctx, ports.EventQuery{PlantID: placed.Placed.Plant.ID, Limit: 1})
	if len(got) != 1 || got[0].Type != nursery.EventPlantRemoved {
		t.Fatalf("expected removal event first, got %+v", got)
	}
	again, _ := uc.RemoveDead(ctx)
	if again.Removed == nil || len(again.Removed) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
