package status

import (
	"nursery/internal/domain/care"
	"nursery/internal/domain/nursery"
)

type Response struct {
	Summary        nursery.Summary       `json:"summary"`
	Pending        []care.Task           `json:"pending_tasks"`
	NeedsAttention []nursery.PlacedPlant `json:"needs_attention"`
	Dead           int                   `json:"dead"`
	ReadyForSale   int                   `json:"ready_for_sale"`
}
