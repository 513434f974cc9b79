package catalog

import (
	"errors"
	"fmt"

	"nursery/internal/domain/care"
	"nursery/internal/domain/plant"
)

var ErrUnknownCategory = errors.New("unknown plant category")

// Builder creates seedlings of one category.
type Builder struct {
	Category  plant.Category
	Name      string
	BasePrice float64
	Decay     plant.Decay
	Strategy  func() plant.CareStrategy
	IDs       IDGenerator
}

// Build returns a fresh Seedling. With a non-nil scheduler the water,
// fertilize and sunlight observers are attached in that order.
func (b Builder) Build(s *care.Scheduler) *plant.Unit {
	return b.BuildNamed("", s)
}

func (b Builder) BuildNamed(name string, s *care.Scheduler) *plant.Unit {
	if name == "" {
		name = b.Name
	}
	ids := b.IDs
	if ids == nil {
		ids = UUIDs{}
	}
	var strategy plant.CareStrategy
	if b.Strategy != nil {
		strategy = b.Strategy()
	} else {
		strategy = plant.StrategyFor(b.Category)
	}
	u := plant.New(plant.Params{
		ID:       ids.NextID(b.Category),
		Name:     name,
		Category: b.Category,
		Strategy: strategy,
		Decay:    b.Decay,
		Price:    b.BasePrice,
	})
	care.AttachStandardObservers(s, u)
	return u
}

type Spec struct {
	Name      string
	BasePrice float64
	Decay     plant.Decay
}

func DefaultSpecs() map[plant.Category]Spec {
	return map[plant.Category]Spec{
		plant.CategoryFlower:    {Name: "Flower", BasePrice: 12.0, Decay: plant.Decay{Water: 5, Nutrient: 3}},
		plant.CategorySucculent: {Name: "Succulent", BasePrice: 8.0, Decay: plant.Decay{Water: 2, Nutrient: 1}},
		plant.CategoryVegetable: {Name: "Vegetable", BasePrice: 5.0, Decay: plant.Decay{Water: 6, Nutrient: 4}},
		plant.CategoryOther:     {Name: "Plant", BasePrice: 10.0, Decay: plant.Decay{Water: 4, Nutrient: 2}},
	}
}

type Catalog struct {
	builders map[plant.Category]Builder
}

// New builds a catalog for every known category. Missing specs fall back
// to DefaultSpecs.
func New(ids IDGenerator, specs map[plant.Category]Spec) *Catalog {
	defaults := DefaultSpecs()
	c := &Catalog{builders: make(map[plant.Category]Builder, len(defaults))}
	for category, def := range defaults {
		spec, ok := specs[category]
		if !ok {
			spec = def
		}
		c.builders[category] = Builder{
			Category:  category,
			Name:      spec.Name,
			BasePrice: spec.BasePrice,
			Decay:     spec.Decay,
			IDs:       ids,
		}
	}
	return c
}

func (c *Catalog) Builder(category plant.Category) (Builder, bool) {
	b, ok := c.builders[category]
	return b, ok
}

func (c *Catalog) Build(category plant.Category, name string, s *care.Scheduler) (*plant.Unit, error) {
	b, ok := c.builders[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return b.BuildNamed(name, s), nil
}
