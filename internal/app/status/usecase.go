package status

import (
	"context"

	"nursery/internal/app/ports"
	"nursery/internal/domain/care"
	"nursery/internal/domain/nursery"
	"nursery/internal/domain/plant"
)

// UseCase reports the facility at a glance: occupancy, the care queue and
// the living plants that sit below a care threshold.
type UseCase struct {
	Facility *nursery.Facility
}

func (u UseCase) Execute(_ context.Context) (Response, error) {
	if u.Facility == nil {
		return Response{}, ports.ErrNotConfigured
	}
	plants, err := u.Facility.Plants("")
	if err != nil {
		return Response{}, err
	}
	out := Response{
		Summary:        u.Facility.Summary(),
		Pending:        u.Facility.PendingTasks(),
		NeedsAttention: []nursery.PlacedPlant{},
	}
	for _, p := range plants {
		switch {
		case p.Plant.State == plant.Dead.Name():
			out.Dead++
			continue
		case p.Plant.ReadyForSale:
			out.ReadyForSale++
		}
		if needsAttention(p.Plant) {
			out.NeedsAttention = append(out.NeedsAttention, p)
		}
	}
	if out.Pending == nil {
		out.Pending = []care.Task{}
	}
	return out, nil
}

func needsAttention(v plant.View) bool {
	return v.WaterLevel < care.WaterThreshold ||
		v.NutrientLevel < care.NutrientThreshold ||
		v.SunlightExposure < care.SunlightThreshold
}
