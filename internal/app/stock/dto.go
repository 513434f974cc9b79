package stock

import (
	"nursery/internal/domain/inventory"
	"nursery/internal/domain/nursery"
	"nursery/internal/domain/plant"
)

type PlantRequest struct {
	Category string              `json:"category"`
	Name     string              `json:"name,omitempty"`
	Position *inventory.Position `json:"position,omitempty"`
}

type PlantResponse struct {
	Placed nursery.PlacedPlant `json:"placed"`
}

type ListRequest struct {
	Area string
}

type ListResponse struct {
	Plants []nursery.PlacedPlant `json:"plants"`
}

type CareRequest struct {
	PlantID string
}

type CareResponse struct {
	Plant plant.View `json:"plant"`
}

type RemoveDeadResponse struct {
	Removed []nursery.Removal `json:"removed"`
}
