package plant

// CareStrategy is the per-category care policy. Implementations hold no
// per-plant state; every write goes through the unit's clamped setters.
type CareStrategy interface {
	Category() Category
	Water(u *Unit)
	Fertilize(u *Unit)
	AdjustSunlight(u *Unit)
	Prune(u *Unit)
}

// PerformCare runs the full routine in order: water, fertilize, sunlight, prune.
func PerformCare(s CareStrategy, u *Unit) {
	if s == nil || u == nil {
		return
	}
	s.Water(u)
	s.Fertilize(u)
	s.AdjustSunlight(u)
	s.Prune(u)
}

type CareProfile struct {
	WaterDelta     int
	FertilizeDelta int
	SunlightTarget int
}

type TableCare struct {
	category Category
	profile  CareProfile
}

func NewTableCare(category Category, profile CareProfile) TableCare {
	return TableCare{category: category, profile: profile}
}

func FlowerCare() CareStrategy {
	return NewTableCare(CategoryFlower, CareProfile{WaterDelta: 25, FertilizeDelta: 20, SunlightTarget: 70})
}

func SucculentCare() CareStrategy {
	return NewTableCare(CategorySucculent, CareProfile{WaterDelta: 15, FertilizeDelta: 10, SunlightTarget: 85})
}

// VegetableCare uses the documented +30 water contract.
func VegetableCare() CareStrategy {
	return NewTableCare(CategoryVegetable, CareProfile{WaterDelta: 30, FertilizeDelta: 25, SunlightTarget: 75})
}

func OtherCare() CareStrategy {
	return NewTableCare(CategoryOther, CareProfile{WaterDelta: 20, FertilizeDelta: 15, SunlightTarget: 60})
}

// StrategyFor returns the built-in policy for a category, or nil.
func StrategyFor(c Category) CareStrategy {
	switch c {
	case CategoryFlower:
		return FlowerCare()
	case CategorySucculent:
		return SucculentCare()
	case CategoryVegetable:
		return VegetableCare()
	case CategoryOther:
		return OtherCare()
	default:
		return nil
	}
}

func (t TableCare) Category() Category {
	return t.category
}

func (t TableCare) Profile() CareProfile {
	return t.profile
}

func (t TableCare) Water(u *Unit) {
	if u == nil {
		return
	}
	u.SetWaterLevel(u.WaterLevel() + t.profile.WaterDelta)
}

func (t TableCare) Fertilize(u *Unit) {
	if u == nil {
		return
	}
	u.SetNutrientLevel(u.NutrientLevel() + t.profile.FertilizeDelta)
}

func (t TableCare) AdjustSunlight(u *Unit) {
	if u == nil {
		return
	}
	u.SetSunlightExposure(t.profile.SunlightTarget)
}

// Prune is informational only.
func (t TableCare) Prune(*Unit) {}
