package nursery

import "time"

const (
	EventPlantCreated     = "plant_created"
	EventDayAdvanced      = "day_advanced"
	EventStateChanged     = "state_changed"
	EventCareAlert        = "care_alert"
	EventCarePerformed    = "care_performed"
	EventCareTaskExecuted = "care_task_executed"
	EventPlantRelocated   = "plant_relocated"
	EventPlantTransferred = "plant_transferred"
	EventPlantPurchased   = "plant_purchased"
	EventPlantRemoved     = "plant_removed"
)

// FacilityScope is the journal key for events not tied to one plant.
const FacilityScope = "facility"

type Event struct {
	PlantID    string         `json:"plant_id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
