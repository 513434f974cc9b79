package plant

import (
	"log"
	"math"
)

// Observer is notified after a unit's daily attribute update.
type Observer interface {
	Update(u *Unit)
}

type closer interface {
	Close()
}

type Params struct {
	ID       string
	Name     string
	Category Category
	Strategy CareStrategy
	Decay    Decay
	Price    float64
}

// Unit is one plant in inventory. It exclusively owns its state and care
// strategy. Attached observers are only notified; adopted observers are
// also closed when the unit is released.
type Unit struct {
	id       string
	name     string
	category Category

	age          int
	water        int
	sunlight     int
	nutrient     int
	health       int
	readyForSale bool
	price        float64

	state    State
	strategy CareStrategy
	decay    Decay

	observers []Observer
	owned     []Observer
}

func New(p Params) *Unit {
	name := p.Name
	if name == "" {
		name = string(p.Category)
	}
	return &Unit{
		id:       p.ID,
		name:     name,
		category: p.Category,
		water:    InitialWater,
		sunlight: InitialSunlight,
		nutrient: InitialNutrient,
		health:   InitialHealth,
		price:    math.Max(0, p.Price),
		state:    Seedling,
		strategy: p.Strategy,
		decay:    p.Decay,
	}
}

func (u *Unit) ID() string             { return u.id }
func (u *Unit) Name() string           { return u.name }
func (u *Unit) Category() Category     { return u.category }
func (u *Unit) Age() int               { return u.age }
func (u *Unit) WaterLevel() int        { return u.water }
func (u *Unit) SunlightExposure() int  { return u.sunlight }
func (u *Unit) NutrientLevel() int     { return u.nutrient }
func (u *Unit) HealthLevel() int       { return u.health }
func (u *Unit) ReadyForSale() bool     { return u.readyForSale }
func (u *Unit) Price() float64         { return u.price }
func (u *Unit) State() State           { return u.state }
func (u *Unit) Strategy() CareStrategy { return u.strategy }
func (u *Unit) Decay() Decay           { return u.decay }

func (u *Unit) SetAge(age int) {
	if age < 0 {
		age = 0
	}
	u.age = age
}

func (u *Unit) SetWaterLevel(v int) {
	u.water = clampLevel(v)
	u.recomputeHealth()
}

func (u *Unit) SetSunlightExposure(v int) {
	u.sunlight = clampLevel(v)
	u.recomputeHealth()
}

func (u *Unit) SetNutrientLevel(v int) {
	u.nutrient = clampLevel(v)
	u.recomputeHealth()
}

// SetPrice clamps to zero. Dead units keep a zero price.
func (u *Unit) SetPrice(p float64) {
	if u.state == Dead {
		return
	}
	if p < 0 || math.IsNaN(p) {
		p = 0
	}
	u.price = p
}

// SetState replaces the lifecycle state and applies its entry effects.
// A dead unit cannot be moved out of Dead.
func (u *Unit) SetState(next State) bool {
	if !next.Valid() {
		return false
	}
	if u.state == Dead && next != Dead {
		return false
	}
	if next == u.state {
		u.state.stay(u)
		return true
	}
	u.state = next
	next.enter(u)
	return true
}

// SetStrategy swaps the care policy; the previous one is dropped.
func (u *Unit) SetStrategy(s CareStrategy) {
	u.strategy = s
}

// HandleChange evaluates the current state's rule.
func (u *Unit) HandleChange() Transition {
	from := u.state
	next, alerts := from.evaluate(u)
	if next != from {
		u.state = next
		next.enter(u)
	} else {
		from.stay(u)
	}
	return Transition{From: from, To: next, Alerts: alerts}
}

func (u *Unit) PerformCare() {
	if u.strategy == nil {
		log.Printf("plant %s: perform care skipped, no care strategy", u.id)
		return
	}
	PerformCare(u.strategy, u)
}

// DailyUpdate advances one simulated day. Dead units still age but do not
// decay or notify; they only re-run their terminal rule.
func (u *Unit) DailyUpdate() DayReport {
	u.age++
	if u.state == Dead {
		return DayReport{Age: u.age, Transition: u.HandleChange()}
	}
	u.water = clampLevel(u.water - u.decay.Water)
	u.nutrient = clampLevel(u.nutrient - u.decay.Nutrient)
	u.recomputeHealth()
	u.Notify()
	return DayReport{Age: u.age, Transition: u.HandleChange()}
}

func (u *Unit) Attach(o Observer) {
	if o == nil {
		return
	}
	for _, existing := range u.observers {
		if existing == o {
			return
		}
	}
	u.observers = append(u.observers, o)
}

func (u *Unit) Detach(o Observer) {
	for i, existing := range u.observers {
		if existing == o {
			u.observers = append(u.observers[:i:i], u.observers[i+1:]...)
			return
		}
	}
}

// Adopt attaches o and makes the unit responsible for closing it.
func (u *Unit) Adopt(o Observer) {
	if o == nil {
		return
	}
	u.Attach(o)
	u.owned = append(u.owned, o)
}

func (u *Unit) Observers() []Observer {
	return append([]Observer(nil), u.observers...)
}

func (u *Unit) OwnedObservers() int {
	return len(u.owned)
}

func (u *Unit) Notify() {
	for _, o := range u.Observers() {
		o.Update(u)
	}
}

// Release closes every adopted observer. Observers attached but not adopted
// stay attached.
func (u *Unit) Release() {
	owned := u.owned
	u.owned = nil
	for _, o := range owned {
		if c, ok := o.(closer); ok {
			c.Close()
		}
		u.Detach(o)
	}
}

func (u *Unit) View() View {
	return View{
		ID:               u.id,
		Name:             u.name,
		Category:         u.category,
		State:            u.state.Name(),
		Age:              u.age,
		WaterLevel:       u.water,
		SunlightExposure: u.sunlight,
		NutrientLevel:    u.nutrient,
		HealthLevel:      u.health,
		ReadyForSale:     u.readyForSale,
		Price:            u.price,
	}
}

func (u *Unit) recomputeHealth() {
	u.health = Health(u.water, u.nutrient, u.sunlight)
}

// Health is round((water + nutrient + sunlight) / 3).
func Health(water, nutrient, sunlight int) int {
	return int(math.Round(float64(water+nutrient+sunlight) / 3))
}

func clampLevel(v int) int {
	if v < MinLevel {
		return MinLevel
	}
	if v > MaxLevel {
		return MaxLevel
	}
	return v
}
