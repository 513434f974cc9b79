package nursery

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"nursery/internal/domain/care"
	"nursery/internal/domain/catalog"
	"nursery/internal/domain/inventory"
	"nursery/internal/domain/plant"
)

type Config struct {
	GrowingRows  int
	GrowingCols  int
	DisplayRows  int
	DisplayCols  int
	AutoRelocate bool
	Logger       *log.Logger
	Now          func() time.Time
}

func DefaultConfig() Config {
	return Config{GrowingRows: 4, GrowingCols: 5, DisplayRows: 2, DisplayCols: 5}
}

type PlacedPlant struct {
	Area     inventory.Area     `json:"area"`
	Position inventory.Position `json:"position"`
	Plant    plant.View         `json:"plant"`
}

type AreaSummary struct {
	Plants   int `json:"plants"`
	Capacity int `json:"capacity"`
}

type Summary struct {
	Day          int         `json:"day"`
	Growing      AreaSummary `json:"growing"`
	Display      AreaSummary `json:"display"`
	PendingTasks int         `json:"pending_tasks"`
}

type StateChange struct {
	PlantID string      `json:"plant_id"`
	From    plant.State `json:"from"`
	To      plant.State `json:"to"`
}

type DayResult struct {
	Day          int           `json:"day"`
	StateChanges []StateChange `json:"state_changes"`
	Alerts       int           `json:"alerts"`
	Moves        []Move        `json:"moves"`
	PendingTasks int           `json:"pending_tasks"`
}

// Facility wires the grids, scheduler, coordinator and catalog together and
// serializes every operation behind one lock. Each state-changing call
// returns the journal events it produced.
type Facility struct {
	mu           sync.Mutex
	growing      *inventory.Grid
	display      *inventory.Grid
	scheduler    *care.Scheduler
	coordinator  *Coordinator
	catalog      *catalog.Catalog
	day          int
	autoRelocate bool
	logger       *log.Logger
	now          func() time.Time
}

func NewFacility(cfg Config, cat *catalog.Catalog) (*Facility, error) {
	growing, err := inventory.NewGrid(inventory.GrowingArea, cfg.GrowingRows, cfg.GrowingCols)
	if err != nil {
		return nil, err
	}
	display, err := inventory.NewGrid(inventory.DisplayArea, cfg.DisplayRows, cfg.DisplayCols)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.New(catalog.NewSequenceIDs(), nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Facility{
		growing:      growing,
		display:      display,
		scheduler:    care.NewScheduler(logger),
		coordinator:  NewCoordinator(growing, display, NewRegistry()),
		catalog:      cat,
		autoRelocate: cfg.AutoRelocate,
		logger:       logger,
		now:          now,
	}, nil
}

// Plant builds a seedling and places it in the growing area. A nil pos takes
// the first free slot.
func (f *Facility) Plant(category plant.Category, name string, pos *inventory.Position) (PlacedPlant, []Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var at inventory.Position
	if pos == nil {
		free, ok := f.growing.FirstEmpty()
		if !ok {
			return PlacedPlant{}, nil, ErrGrowingFull
		}
		at = free
	} else {
		if !f.growing.InBounds(pos.Row, pos.Col) {
			return PlacedPlant{}, nil, ErrInvalidPosition
		}
		if !f.growing.IsPositionEmpty(pos.Row, pos.Col) {
			return PlacedPlant{}, nil, ErrSlotOccupied
		}
		at = *pos
	}

	u, err := f.catalog.Build(category, strings.TrimSpace(name), f.scheduler)
	if err != nil {
		return PlacedPlant{}, nil, err
	}
	if !f.growing.AddPlant(u, at.Row, at.Col) {
		u.Release()
		return PlacedPlant{}, nil, ErrSlotOccupied
	}
	placed := PlacedPlant{Area: inventory.GrowingArea, Position: at, Plant: u.View()}
	evt := f.event(u.ID(), EventPlantCreated, map[string]any{
		"category": string(u.Category()),
		"name":     u.Name(),
		"row":      at.Row,
		"col":      at.Col,
		"price":    u.Price(),
	})
	return placed, []Event{evt}, nil
}

// AdvanceDay runs the daily update on every unit in both grids, days times.
func (f *Facility) AdvanceDay(days int) (DayResult, []Event, error) {
	if days <= 0 {
		return DayResult{}, nil, ErrInvalidDays
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	result := DayResult{}
	var events []Event
	for i := 0; i < days; i++ {
		f.day++
		for _, u := range f.allPlants() {
			rep := u.DailyUpdate()
			tr := rep.Transition
			if tr.Changed() {
				result.StateChanges = append(result.StateChanges, StateChange{PlantID: u.ID(), From: tr.From, To: tr.To})
				events = append(events, f.event(u.ID(), EventStateChanged, map[string]any{
					"from":           tr.From.Name(),
					"to":             tr.To.Name(),
					"age":            rep.Age,
					"health":         u.HealthLevel(),
					"ready_for_sale": u.ReadyForSale(),
					"price":          u.Price(),
				}))
			}
			for _, a := range tr.Alerts {
				result.Alerts++
				events = append(events, f.event(u.ID(), EventCareAlert, map[string]any{
					"kind":    string(a.Kind),
					"message": a.Message,
					"state":   tr.To.Name(),
				}))
			}
		}
		if f.autoRelocate {
			moves := f.coordinator.CheckPlantRelocation()
			result.Moves = append(result.Moves, moves...)
			events = append(events, f.moveEvents(EventPlantRelocated, moves)...)
		}
		events = append(events, f.event(FacilityScope, EventDayAdvanced, map[string]any{
			"plants":        f.growing.NumberOfPlants() + f.display.NumberOfPlants(),
			"pending_tasks": f.scheduler.Len(),
		}))
	}
	result.Day = f.day
	result.PendingTasks = f.scheduler.Len()
	return result, events, nil
}

// PerformCare applies the full care routine to one unit immediately.
func (f *Facility) PerformCare(plantID string) (plant.View, []Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, slot, ok := f.findByID(plantID)
	if !ok {
		return plant.View{}, nil, ErrPlantNotFound
	}
	u := slot.Plant
	before := u.View()
	u.PerformCare()
	after := u.View()
	evt := f.event(u.ID(), EventCarePerformed, map[string]any{
		"water_before":    before.WaterLevel,
		"water_after":     after.WaterLevel,
		"nutrient_before": before.NutrientLevel,
		"nutrient_after":  after.NutrientLevel,
		"sunlight_after":  after.SunlightExposure,
		"health_after":    after.HealthLevel,
	})
	return after, []Event{evt}, nil
}

func (f *Facility) RunNextTask() (care.Task, bool, []Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd, ok := f.scheduler.RunNextReport()
	if !ok {
		return care.Task{}, false, nil
	}
	task := care.Task{Kind: cmd.Kind(), PlantID: cmd.PlantID()}
	return task, true, []Event{f.taskEvent(task)}
}

func (f *Facility) RunAllTasks() ([]care.Task, []Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ran := f.scheduler.RunAllReport()
	tasks := make([]care.Task, 0, len(ran))
	events := make([]Event, 0, len(ran))
	for _, cmd := range ran {
		task := care.Task{Kind: cmd.Kind(), PlantID: cmd.PlantID()}
		tasks = append(tasks, task)
		events = append(events, f.taskEvent(task))
	}
	return tasks, events
}

func (f *Facility) PendingTasks() []care.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scheduler.Pending()
}

func (f *Facility) Relocate() ([]Move, []Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	moves := f.coordinator.CheckPlantRelocation()
	return moves, f.moveEvents(EventPlantRelocated, moves)
}

func (f *Facility) Transfer(name string) (Move, []Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.coordinator.TransferByName(strings.TrimSpace(name))
	if err != nil {
		return Move{}, nil, err
	}
	return m, f.moveEvents(EventPlantTransferred, []Move{m}), nil
}

func (f *Facility) RegisterCustomer(id, name string) (CustomerView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, err := f.coordinator.Registry().RegisterCustomer(id, name)
	if err != nil {
		return CustomerView{}, err
	}
	return c.View(), nil
}

func (f *Facility) Customer(id string) (CustomerView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.coordinator.Registry().Customer(id)
	if !ok {
		return CustomerView{}, ErrCustomerNotFound
	}
	return c.View(), nil
}

func (f *Facility) RegisterStaff(s Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.coordinator.Registry().RegisterStaff(s)
}

func (f *Facility) Purchase(customerID, name string) (Sale, []Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sale, err := f.coordinator.Purchase(strings.TrimSpace(customerID), strings.TrimSpace(name))
	if err != nil {
		return Sale{}, nil, err
	}
	dropped := f.scheduler.DiscardFor(sale.PlantID)
	evt := f.event(sale.PlantID, EventPlantPurchased, map[string]any{
		"customer_id":   sale.CustomerID,
		"name":          sale.Name,
		"price":         sale.Price,
		"row":           sale.From.Row,
		"col":           sale.From.Col,
		"dropped_tasks": dropped,
	})
	return sale, []Event{evt}, nil
}

func (f *Facility) RemoveDead() ([]Removal, []Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	removed := f.coordinator.RemoveDeadPlants()
	events := make([]Event, 0, len(removed))
	for _, r := range removed {
		dropped := f.scheduler.DiscardFor(r.PlantID)
		events = append(events, f.event(r.PlantID, EventPlantRemoved, map[string]any{
			"name":          r.Name,
			"area":          string(r.Area),
			"row":           r.From.Row,
			"col":           r.From.Col,
			"dropped_tasks": dropped,
		}))
	}
	return removed, events
}

// Plants lists units in row-major order; an empty area lists both grids.
func (f *Facility) Plants(area inventory.Area) ([]PlacedPlant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var grids []*inventory.Grid
	switch area {
	case "":
		grids = []*inventory.Grid{f.growing, f.display}
	case inventory.GrowingArea:
		grids = []*inventory.Grid{f.growing}
	case inventory.DisplayArea:
		grids = []*inventory.Grid{f.display}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownArea, area)
	}
	out := make([]PlacedPlant, 0)
	for _, g := range grids {
		for _, s := range g.Slots() {
			out = append(out, PlacedPlant{Area: g.Area(), Position: s.Position, Plant: s.Plant.View()})
		}
	}
	return out, nil
}

func (f *Facility) PlantByID(id string) (PlacedPlant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	g, slot, ok := f.findByID(id)
	if !ok {
		return PlacedPlant{}, ErrPlantNotFound
	}
	return PlacedPlant{Area: g.Area(), Position: slot.Position, Plant: slot.Plant.View()}, nil
}

func (f *Facility) Summary() Summary {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Summary{
		Day:          f.day,
		Growing:      AreaSummary{Plants: f.growing.NumberOfPlants(), Capacity: f.growing.Capacity()},
		Display:      AreaSummary{Plants: f.display.NumberOfPlants(), Capacity: f.display.Capacity()},
		PendingTasks: f.scheduler.Len(),
	}
}

// Close drops every queued task without running it.
func (f *Facility) Close() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.scheduler.Discard()
	if n > 0 {
		f.logger.Printf("nursery: dropped %d pending care tasks", n)
	}
	return n
}

func (f *Facility) allPlants() []*plant.Unit {
	return append(f.growing.AllPlants(), f.display.AllPlants()...)
}

func (f *Facility) findByID(id string) (*inventory.Grid, inventory.Slot, bool) {
	for _, g := range []*inventory.Grid{f.growing, f.display} {
		if s, ok := g.FindByID(id); ok {
			return g, s, true
		}
	}
	return nil, inventory.Slot{}, false
}

func (f *Facility) moveEvents(eventType string, moves []Move) []Event {
	events := make([]Event, 0, len(moves))
	for _, m := range moves {
		events = append(events, f.event(m.PlantID, eventType, map[string]any{
			"name":     m.Name,
			"from_row": m.From.Row,
			"from_col": m.From.Col,
			"to_row":   m.To.Row,
			"to_col":   m.To.Col,
		}))
	}
	return events
}

func (f *Facility) taskEvent(task care.Task) Event {
	return f.event(task.PlantID, EventCareTaskExecuted, map[string]any{
		"kind": string(task.Kind),
	})
}

func (f *Facility) event(plantID, eventType string, payload map[string]any) Event {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["day"] = f.day
	return Event{PlantID: plantID, Type: eventType, OccurredAt: f.now(), Payload: payload}
}
