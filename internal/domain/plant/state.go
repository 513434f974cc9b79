package plant

// State is the closed set of lifecycle stages. Each stage owns the rule that
// decides where a unit goes next; Dead has no outgoing branch.
type State string

const (
	Seedling  State = "Seedling"
	Growing   State = "Growing"
	Mature    State = "Mature"
	Flowering State = "Flowering"
	Dead      State = "Dead"
)

const (
	FloweringPriceCeiling = 15.0
	FloweringMarkup       = 1.5
)

func (s State) Name() string {
	return string(s)
}

func (s State) Valid() bool {
	switch s {
	case Seedling, Growing, Mature, Flowering, Dead:
		return true
	default:
		return false
	}
}

func (s State) Terminal() bool {
	return s == Dead
}

func (s State) Sellable() bool {
	return s == Mature || s == Flowering
}

// evaluate applies the stage rule. Death checks run before forward checks.
func (s State) evaluate(u *Unit) (State, []Alert) {
	switch s {
	case Seedling:
		if u.health < 20 {
			return Dead, nil
		}
		alerts := collectAlerts(
			lowAlert(u.water < 40, AlertWater, "seedling needs water urgently"),
		)
		if u.age >= 7 && u.health >= 50 {
			return Growing, alerts
		}
		return Seedling, alerts
	case Growing:
		if u.health < 20 {
			return Dead, nil
		}
		alerts := collectAlerts(
			lowAlert(u.water < 30, AlertWater, "growing plant needs water"),
			lowAlert(u.nutrient < 25, AlertFertilizer, "growing plant needs fertilizer"),
		)
		if u.age >= 20 && u.health >= 60 {
			return Mature, alerts
		}
		return Growing, alerts
	case Mature:
		if u.health < 10 {
			return Dead, nil
		}
		alerts := collectAlerts(
			lowAlert(u.water < 20, AlertWater, "mature plant needs water"),
		)
		if u.age >= 35 && u.health >= 80 {
			return Flowering, alerts
		}
		return Mature, alerts
	case Flowering:
		if u.health < 10 {
			return Dead, nil
		}
		alerts := collectAlerts(
			lowAlert(u.water < 30, AlertWater, "flowering plant needs water"),
			lowAlert(u.nutrient < 30, AlertFertilizer, "flowering plant needs fertilizer"),
			lowAlert(u.sunlight < 50, AlertSunlight, "flowering plant needs more sunlight"),
		)
		if u.age >= 50 {
			return Mature, alerts
		}
		return Flowering, alerts
	case Dead:
		return Dead, []Alert{{Kind: AlertRemoval, Message: "dead plant should be removed from inventory"}}
	default:
		return s, nil
	}
}

// enter runs once when a unit switches into s.
func (s State) enter(u *Unit) {
	switch s {
	case Seedling, Growing:
		u.readyForSale = false
	case Mature:
		u.readyForSale = true
	case Flowering:
		u.readyForSale = true
		if u.price < FloweringPriceCeiling {
			u.price *= FloweringMarkup
		}
	case Dead:
		u.readyForSale = false
		u.price = 0
	}
}

// stay runs when a rule keeps the unit in s.
func (s State) stay(u *Unit) {
	switch s {
	case Mature, Flowering:
		u.readyForSale = true
	case Dead:
		u.readyForSale = false
		u.price = 0
	}
}

func lowAlert(triggered bool, kind AlertKind, msg string) *Alert {
	if !triggered {
		return nil
	}
	return &Alert{Kind: kind, Message: msg}
}

func collectAlerts(in ...*Alert) []Alert {
	var out []Alert
	for _, a := range in {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}
