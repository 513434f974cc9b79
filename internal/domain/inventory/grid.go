package inventory

import (
	"errors"
	"fmt"
	"log"

	"nursery/internal/domain/plant"
)

var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

type Area string

const (
	GrowingArea Area = "growing"
	DisplayArea Area = "display"
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Slot is an occupied position.
type Slot struct {
	Position
	Plant *plant.Unit
}

// Grid is a fixed rows x cols matrix; each slot owns at most one unit.
// The occupancy counter is maintained on every add and remove.
type Grid struct {
	area     Area
	rows     int
	cols     int
	slots    [][]*plant.Unit
	occupied int
}

func NewGrid(area Area, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrInvalidDimensions, area, rows, cols)
	}
	slots := make([][]*plant.Unit, rows)
	for r := range slots {
		slots[r] = make([]*plant.Unit, cols)
	}
	return &Grid{area: area, rows: rows, cols: cols, slots: slots}, nil
}

func MustNewGrid(area Area, rows, cols int) *Grid {
	g, err := NewGrid(area, rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Area() Area { return g.area }
func (g *Grid) Rows() int  { return g.rows }
func (g *Grid) Cols() int  { return g.cols }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// AddPlant places u at (row, col). It fails without mutation when the
// position is invalid, the slot is taken, or u already sits in this grid.
func (g *Grid) AddPlant(u *plant.Unit, row, col int) bool {
	if u == nil {
		log.Printf("inventory %s: add skipped, nil plant", g.area)
		return false
	}
	if !g.InBounds(row, col) || g.slots[row][col] != nil {
		return false
	}
	if _, _, ok := g.locate(u); ok {
		return false
	}
	g.slots[row][col] = u
	g.occupied++
	return true
}

func (g *Grid) RemovePlantAt(row, col int) *plant.Unit {
	if !g.InBounds(row, col) {
		return nil
	}
	u := g.slots[row][col]
	if u == nil {
		return nil
	}
	g.slots[row][col] = nil
	g.occupied--
	return u
}

func (g *Grid) RemovePlant(u *plant.Unit) bool {
	if u == nil {
		log.Printf("inventory %s: remove skipped, nil plant", g.area)
		return false
	}
	row, col, ok := g.locate(u)
	if !ok {
		return false
	}
	return g.RemovePlantAt(row, col) != nil
}

func (g *Grid) PlantAt(row, col int) *plant.Unit {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.slots[row][col]
}

// IsPositionEmpty is false for out-of-range positions.
func (g *Grid) IsPositionEmpty(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.slots[row][col] == nil
}

// AllPlants lists occupants in row-major order.
func (g *Grid) AllPlants() []*plant.Unit {
	out := make([]*plant.Unit, 0, g.occupied)
	for _, s := range g.Slots() {
		out = append(out, s.Plant)
	}
	return out
}

func (g *Grid) Slots() []Slot {
	out := make([]Slot, 0, g.occupied)
	for r := range g.slots {
		for c, u := range g.slots[r] {
			if u != nil {
				out = append(out, Slot{Position: Position{Row: r, Col: c}, Plant: u})
			}
		}
	}
	return out
}

func (g *Grid) NumberOfPlants() int { return g.occupied }
func (g *Grid) Capacity() int       { return g.rows * g.cols }
func (g *Grid) IsFull() bool        { return g.occupied >= g.Capacity() }

// FirstEmpty scans row-major for a free slot.
func (g *Grid) FirstEmpty() (Position, bool) {
	if g.IsFull() {
		return Position{}, false
	}
	for r := range g.slots {
		for c, u := range g.slots[r] {
			if u == nil {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

func (g *Grid) FindByName(name string) (Slot, bool) {
	for _, s := range g.Slots() {
		if s.Plant.Name() == name {
			return s, true
		}
	}
	return Slot{}, false
}

func (g *Grid) FindByID(id string) (Slot, bool) {
	for _, s := range g.Slots() {
		if s.Plant.ID() == id {
			return s, true
		}
	}
	return Slot{}, false
}

func (g *Grid) Contains(u *plant.Unit) bool {
	_, _, ok := g.locate(u)
	return ok
}

func (g *Grid) locate(u *plant.Unit) (int, int, bool) {
	for r := range g.slots {
		for c, occupant := range g.slots[r] {
			if occupant != nil && occupant == u {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
