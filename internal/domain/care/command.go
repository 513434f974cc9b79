package care

import (
	"log"

	"nursery/internal/domain/plant"
)

type Kind string

const (
	KindWater          Kind = "water"
	KindFertilize      Kind = "fertilize"
	KindAdjustSunlight Kind = "adjust_sunlight"
)

// Command is a single-use care action bound to one plant.
type Command interface {
	Kind() Kind
	PlantID() string
	Execute()
}

type WaterCommand struct {
	plant *plant.Unit
}

type FertilizeCommand struct {
	plant *plant.Unit
}

type AdjustSunlightCommand struct {
	plant *plant.Unit
}

func NewWaterCommand(u *plant.Unit) WaterCommand {
	return WaterCommand{plant: u}
}

func NewFertilizeCommand(u *plant.Unit) FertilizeCommand {
	return FertilizeCommand{plant: u}
}

func NewAdjustSunlightCommand(u *plant.Unit) AdjustSunlightCommand {
	return AdjustSunlightCommand{plant: u}
}

func (c WaterCommand) Kind() Kind          { return KindWater }
func (c FertilizeCommand) Kind() Kind      { return KindFertilize }
func (c AdjustSunlightCommand) Kind() Kind { return KindAdjustSunlight }

func (c WaterCommand) PlantID() string          { return plantID(c.plant) }
func (c FertilizeCommand) PlantID() string      { return plantID(c.plant) }
func (c AdjustSunlightCommand) PlantID() string { return plantID(c.plant) }

func (c WaterCommand) Execute() {
	if s := strategyOf(c.plant, KindWater); s != nil {
		s.Water(c.plant)
	}
}

func (c FertilizeCommand) Execute() {
	if s := strategyOf(c.plant, KindFertilize); s != nil {
		s.Fertilize(c.plant)
	}
}

func (c AdjustSunlightCommand) Execute() {
	if s := strategyOf(c.plant, KindAdjustSunlight); s != nil {
		s.AdjustSunlight(c.plant)
	}
}

// strategyOf resolves the plant's strategy at execution time.
func strategyOf(u *plant.Unit, kind Kind) plant.CareStrategy {
	if u == nil {
		log.Printf("care: %s command skipped, no plant bound", kind)
		return nil
	}
	s := u.Strategy()
	if s == nil {
		log.Printf("care: %s command skipped, plant %s has no care strategy", kind, u.ID())
		return nil
	}
	return s
}

func plantID(u *plant.Unit) string {
	if u == nil {
		return ""
	}
	return u.ID()
}
