package stock

import (
	"context"
	"errors"
	"strings"

	"nursery/internal/app/ports"
	"nursery/internal/app/shared/journal"
	"nursery/internal/domain/inventory"
	"nursery/internal/domain/nursery"
	"nursery/internal/domain/plant"
)

var ErrInvalidRequest = errors.New("invalid stock request")

// UseCase covers planting, listing, immediate care and dead-plant cleanup.
type UseCase struct {
	Facility *nursery.Facility
	Journal  journal.Recorder
}

func (u UseCase) Plant(ctx context.Context, req PlantRequest) (PlantResponse, error) {
	if u.Facility == nil {
		return PlantResponse{}, ports.ErrNotConfigured
	}
	category := plant.Category(strings.ToLower(strings.TrimSpace(req.Category)))
	if category == "" {
		return PlantResponse{}, ErrInvalidRequest
	}
	if req.Position != nil && (req.Position.Row < 0 || req.Position.Col < 0) {
		return PlantResponse{}, ErrInvalidRequest
	}
	placed, events, err := u.Facility.Plant(category, req.Name, req.Position)
	if err != nil {
		return PlantResponse{}, err
	}
	u.Journal.Publish(ctx, events)
	return PlantResponse{Placed: placed}, nil
}

func (u UseCase) List(_ context.Context, req ListRequest) (ListResponse, error) {
	if u.Facility == nil {
		return ListResponse{}, ports.ErrNotConfigured
	}
	plants, err := u.Facility.Plants(inventory.Area(strings.ToLower(strings.TrimSpace(req.Area))))
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{Plants: plants}, nil
}

func (u UseCase) Get(_ context.Context, plantID string) (nursery.PlacedPlant, error) {
	if u.Facility == nil {
		return nursery.PlacedPlant{}, ports.ErrNotConfigured
	}
	plantID = strings.TrimSpace(plantID)
	if plantID == "" {
		return nursery.PlacedPlant{}, ErrInvalidRequest
	}
	return u.Facility.PlantByID(plantID)
}

func (u UseCase) Care(ctx context.Context, req CareRequest) (CareResponse, error) {
	if u.Facility == nil {
		return CareResponse{}, ports.ErrNotConfigured
	}
	plantID := strings.TrimSpace(req.PlantID)
	if plantID == "" {
		return CareResponse{}, ErrInvalidRequest
	}
	view, events, err := u.Facility.PerformCare(plantID)
	if err != nil {
		return CareResponse{}, err
	}
	u.Journal.Publish(ctx, events)
	return CareResponse{Plant: view}, nil
}

func (u UseCase) RemoveDead(ctx context.Context) (RemoveDeadResponse, error) {
	if u.Facility == nil {
		return RemoveDeadResponse{}, ports.ErrNotConfigured
	}
	removed, events := u.Facility.RemoveDead()
	u.Journal.Publish(ctx, events)
	if removed == nil {
		removed = []nursery.Removal{}
	}
	return RemoveDeadResponse{Removed: removed}, nil
}
