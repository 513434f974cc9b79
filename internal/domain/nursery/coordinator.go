package nursery

import (
	"nursery/internal/domain/inventory"
	"nursery/internal/domain/plant"
)

type Move struct {
	PlantID string             `json:"plant_id"`
	Name    string             `json:"name"`
	From    inventory.Position `json:"from"`
	To      inventory.Position `json:"to"`
}

type Sale struct {
	CustomerID string             `json:"customer_id"`
	PlantID    string             `json:"plant_id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	From       inventory.Position `json:"from"`
}

type Removal struct {
	PlantID string             `json:"plant_id"`
	Name    string             `json:"name"`
	Area    inventory.Area     `json:"area"`
	From    inventory.Position `json:"from"`
}

// Coordinator moves units between the growing and display grids and out to
// customers. A unit changes owner in one remove-then-place step, so no two
// grids ever hold it at once.
type Coordinator struct {
	growing  *inventory.Grid
	display  *inventory.Grid
	registry *Registry
}

func NewCoordinator(growing, display *inventory.Grid, registry *Registry) *Coordinator {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Coordinator{growing: growing, display: display, registry: registry}
}

func (c *Coordinator) Growing() *inventory.Grid { return c.growing }
func (c *Coordinator) Display() *inventory.Grid { return c.display }
func (c *Coordinator) Registry() *Registry      { return c.registry }

// CheckPlantRelocation moves every ready-for-sale growing unit to the first
// free display slot. Units that do not fit stay where they are.
func (c *Coordinator) CheckPlantRelocation() []Move {
	var moves []Move
	for _, slot := range c.growing.Slots() {
		if !slot.Plant.ReadyForSale() {
			continue
		}
		if m, ok := c.moveToDisplay(slot); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (c *Coordinator) CoordinatePlantTransfer(name string) bool {
	_, err := c.TransferByName(name)
	return err == nil
}

// TransferByName moves the first growing unit called name to display.
func (c *Coordinator) TransferByName(name string) (Move, error) {
	slot, ok := c.growing.FindByName(name)
	if !ok {
		return Move{}, ErrPlantNotFound
	}
	if !slot.Plant.ReadyForSale() {
		return Move{}, ErrNotReadyForSale
	}
	m, ok := c.moveToDisplay(slot)
	if !ok {
		return Move{}, ErrDisplayFull
	}
	return m, nil
}

// Purchase hands the first display unit called name to a registered
// customer. The unit's observers are released on the way out.
func (c *Coordinator) Purchase(customerID, name string) (Sale, error) {
	customer, ok := c.registry.Customer(customerID)
	if !ok {
		return Sale{}, ErrCustomerNotFound
	}
	slot, ok := c.display.FindByName(name)
	if !ok {
		return Sale{}, ErrPlantNotFound
	}
	if !slot.Plant.ReadyForSale() {
		return Sale{}, ErrNotReadyForSale
	}
	u := c.display.RemovePlantAt(slot.Row, slot.Col)
	u.Release()
	customer.take(u, u.Price())
	return Sale{
		CustomerID: customer.ID,
		PlantID:    u.ID(),
		Name:       u.Name(),
		Price:      u.Price(),
		From:       slot.Position,
	}, nil
}

// RemoveDeadPlants clears Dead units from both grids.
func (c *Coordinator) RemoveDeadPlants() []Removal {
	var out []Removal
	for _, g := range []*inventory.Grid{c.growing, c.display} {
		for _, slot := range g.Slots() {
			if slot.Plant.State() != plant.Dead {
				continue
			}
			u := g.RemovePlantAt(slot.Row, slot.Col)
			u.Release()
			out = append(out, Removal{PlantID: u.ID(), Name: u.Name(), Area: g.Area(), From: slot.Position})
		}
	}
	return out
}

func (c *Coordinator) moveToDisplay(slot inventory.Slot) (Move, bool) {
	dest, ok := c.display.FirstEmpty()
	if !ok {
		return Move{}, false
	}
	u := c.growing.RemovePlantAt(slot.Row, slot.Col)
	if u == nil {
		return Move{}, false
	}
	if !c.display.AddPlant(u, dest.Row, dest.Col) {
		c.growing.AddPlant(u, slot.Row, slot.Col)
		return Move{}, false
	}
	return Move{PlantID: u.ID(), Name: u.Name(), From: slot.Position, To: dest}, true
}
