package care

import "nursery/internal/domain/plant"

const (
	WaterThreshold    = 30
	NutrientThreshold = 30
	SunlightThreshold = 40
)

// binding is shared by the three observer kinds: one scheduler, one plant,
// neither owned.
type binding struct {
	scheduler *Scheduler
	plant     *plant.Unit
}

// target is the bound plant; a closed observer has none.
func (b binding) target(*plant.Unit) *plant.Unit {
	return b.plant
}

type WaterObserver struct{ binding }

type FertilizeObserver struct{ binding }

type SunlightObserver struct{ binding }

func NewWaterObserver(s *Scheduler, u *plant.Unit) *WaterObserver {
	return &WaterObserver{binding{scheduler: s, plant: u}}
}

func NewFertilizeObserver(s *Scheduler, u *plant.Unit) *FertilizeObserver {
	return &FertilizeObserver{binding{scheduler: s, plant: u}}
}

func NewSunlightObserver(s *Scheduler, u *plant.Unit) *SunlightObserver {
	return &SunlightObserver{binding{scheduler: s, plant: u}}
}

func (o *WaterObserver) Update(u *plant.Unit) {
	p := o.target(u)
	if p == nil || o.scheduler == nil {
		return
	}
	if p.WaterLevel() < WaterThreshold {
		o.scheduler.AddTask(NewWaterCommand(p))
	}
}

func (o *FertilizeObserver) Update(u *plant.Unit) {
	p := o.target(u)
	if p == nil || o.scheduler == nil {
		return
	}
	if p.NutrientLevel() < NutrientThreshold {
		o.scheduler.AddTask(NewFertilizeCommand(p))
	}
}

func (o *SunlightObserver) Update(u *plant.Unit) {
	p := o.target(u)
	if p == nil || o.scheduler == nil {
		return
	}
	if p.SunlightExposure() < SunlightThreshold {
		o.scheduler.AddTask(NewAdjustSunlightCommand(p))
	}
}

func (o *WaterObserver) Close()     { o.detach(o) }
func (o *FertilizeObserver) Close() { o.detach(o) }
func (o *SunlightObserver) Close()  { o.detach(o) }

func (b *binding) detach(self plant.Observer) {
	if b.plant != nil {
		b.plant.Detach(self)
	}
	b.plant = nil
}

// AttachStandardObservers has u adopt a water, fertilize and sunlight
// observer, in that order, all feeding s.
func AttachStandardObservers(s *Scheduler, u *plant.Unit) {
	if s == nil || u == nil {
		return
	}
	u.Adopt(NewWaterObserver(s, u))
	u.Adopt(NewFertilizeObserver(s, u))
	u.Adopt(NewSunlightObserver(s, u))
}
