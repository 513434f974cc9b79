package replay

import (
	"context"
	"errors"
	"strings"
	"time"

	"nursery/internal/app/ports"
	"nursery/internal/domain/inventory"
	"nursery/internal/domain/nursery"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const maxLimit = 500

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	plantID := strings.TrimSpace(req.PlantID)
	if req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if u.Events == nil {
		return Response{}, ports.ErrNotConfigured
	}
	limit := req.Limit
	if limit == 0 || limit > maxLimit {
		limit = maxLimit
	}
	single := plantID != "" && plantID != nursery.FacilityScope
	q := ports.EventQuery{PlantID: plantID, Limit: limit}
	if single {
		// The history needs the plant's whole journal; limit pages only
		// the returned events.
		q.Limit = 0
	}
	if req.OccurredFrom > 0 {
		q.OccurredFrom = time.Unix(req.OccurredFrom, 0)
	}
	if req.OccurredTo > 0 {
		q.OccurredTo = time.Unix(req.OccurredTo, 0)
	}
	events, err := u.Events.List(ctx, q)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	out := Response{Events: events}
	if single {
		history := reconstruct(events)
		history.PlantID = plantID
		out.History = &history
	}
	if len(out.Events) > limit {
		out.Events = out.Events[:limit]
	}
	return out, nil
}

func filterByTimeWindow(events []nursery.Event, from, to int64) []nursery.Event {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]nursery.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct folds events oldest first; the journal lists newest first.
func reconstruct(events []nursery.Event) PlantHistory {
	h := PlantHistory{}
	for i := len(events) - 1; i >= 0; i-- {
		evt := events[i]
		if day := int(num(evt.Payload["day"])); day > h.Day {
			h.Day = day
		}
		if name, ok := evt.Payload["name"].(string); ok && name != "" {
			h.Name = name
		}
		switch evt.Type {
		case nursery.EventPlantCreated:
			h.State = "Seedling"
			h.Area = string(inventory.GrowingArea)
		case nursery.EventStateChanged:
			if to, ok := evt.Payload["to"].(string); ok {
				h.State = to
			}
		case nursery.EventCareAlert:
			h.Alerts++
		case nursery.EventCareTaskExecuted:
			h.CareTasks++
		case nursery.EventPlantRelocated, nursery.EventPlantTransferred:
			h.Area = string(inventory.DisplayArea)
		case nursery.EventPlantPurchased:
			h.Sold = true
			h.Area = ""
			h.Customer, _ = evt.Payload["customer_id"].(string)
			h.SalePrice = num(evt.Payload["price"])
		case nursery.EventPlantRemoved:
			h.Removed = true
			h.Area = ""
		}
	}
	return h
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
