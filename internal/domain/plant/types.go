package plant

type Category string

const (
	CategoryFlower    Category = "flower"
	CategorySucculent Category = "succulent"
	CategoryVegetable Category = "vegetable"
	CategoryOther     Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFlower, CategorySucculent, CategoryVegetable, CategoryOther:
		return true
	default:
		return false
	}
}

const (
	MinLevel = 0
	MaxLevel = 100

	InitialWater    = 100
	InitialSunlight = 50
	InitialNutrient = 100
	InitialHealth   = 100
)

// Decay is the amount of water and nutrient a unit loses per simulated day.
type Decay struct {
	Water    int `json:"water" yaml:"water"`
	Nutrient int `json:"nutrient" yaml:"nutrient"`
}

type AlertKind string

const (
	AlertWater      AlertKind = "water"
	AlertFertilizer AlertKind = "fertilizer"
	AlertSunlight   AlertKind = "sunlight"
	AlertRemoval    AlertKind = "removal"
)

type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
}

type Transition struct {
	From   State   `json:"from"`
	To     State   `json:"to"`
	Alerts []Alert `json:"alerts,omitempty"`
}

func (t Transition) Changed() bool {
	return t.From != t.To
}

type DayReport struct {
	Age        int        `json:"age"`
	Transition Transition `json:"transition"`
}

type View struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	State            string   `json:"state"`
	Age              int      `json:"age"`
	WaterLevel       int      `json:"water_level"`
	SunlightExposure int      `json:"sunlight_exposure"`
	NutrientLevel    int      `json:"nutrient_level"`
	HealthLevel      int      `json:"health_level"`
	ReadyForSale     bool     `json:"ready_for_sale"`
	Price            float64  `json:"price"`
}
