package plant

import "testing"

func unitWith(state State, age, water, nutrient, sunlight int) *Unit {
	u := New(Params{ID: "p-1", Category: CategoryFlower, Strategy: FlowerCare(), Price: 10})
	u.state = state
	u.SetAge(age)
	u.SetWaterLevel(water)
	u.SetNutrientLevel(nutrient)
	u.SetSunlightExposure(sunlight)
	return u
}

func TestHandleChange_SeedlingGrowsWhenOldAndHealthy(t *testing.T) {
	u := unitWith(Seedling, 7, 60, 60, 60)
	if u.HealthLevel() != 60 {
		t.Fatalf("expected health 60, got %d", u.HealthLevel())
	}
	tr := u.HandleChange()
	if tr.To != Growing || u.State() != Growing {
		t.Fatalf("expected Growing, got %s", u.State())
	}
	if !tr.Changed() {
		t.Fatalf("expected transition to report a change")
	}
}

func TestHandleChange_GrowingTooYoungStays(t *testing.T) {
	u := unitWith(Growing, 5, 60, 60, 60)
	tr := u.HandleChange()
	if tr.Changed() || u.State() != Growing {
		t.Fatalf("expected to stay Growing, got %s", u.State())
	}
}

func TestHandleChange_LowHealthKillsEveryLiveState(t *testing.T) {
	for _, s := range []State{Seedling, Growing, Mature, Flowering} {
		u := unitWith(s, 3, 5, 5, 5)
		u.SetPrice(12)
		tr := u.HandleChange()
		if tr.To != Dead {
			t.Fatalf("%s: expected Dead, got %s", s, tr.To)
		}
		if u.Price() != 0 || u.ReadyForSale() {
			t.Fatalf("%s: dead unit must have zero price and not be for sale, got %.2f/%v", s, u.Price(), u.ReadyForSale())
		}
	}
}

func TestHandleChange_DeathCheckRunsBeforeForwardCheck(t *testing.T) {
	u := unitWith(Seedling, 30, 10, 10, 10)
	if tr := u.HandleChange(); tr.To != Dead {
		t.Fatalf("expected Dead before any forward transition, got %s", tr.To)
	}
}

func TestHandleChange_MatureAndFloweringDeathThresholdIsTen(t *testing.T) {
	u := unitWith(Mature, 10, 15, 15, 15)
	if tr := u.HandleChange(); tr.To != Mature {
		t.Fatalf("health 15 mature should survive, got %s", tr.To)
	}
	u = unitWith(Flowering, 40, 9, 9, 9)
	if tr := u.HandleChange(); tr.To != Dead {
		t.Fatalf("health 9 flowering should die, got %s", tr.To)
	}
}

func TestHandleChange_DeadIsTerminal(t *testing.T) {
	u := unitWith(Dead, 100, 100, 100, 100)
	for i := 0; i < 3; i++ {
		tr := u.HandleChange()
		if tr.To != Dead {
			t.Fatalf("dead unit left Dead: %s", tr.To)
		}
		if len(tr.Alerts) != 1 || tr.Alerts[0].Kind != AlertRemoval {
			t.Fatalf("expected removal alert, got %+v", tr.Alerts)
		}
	}
	if u.SetState(Growing) {
		t.Fatalf("expected SetState to refuse reviving a dead unit")
	}
	u.SetPrice(20)
	if u.Price() != 0 || u.ReadyForSale() {
		t.Fatalf("dead unit changed price or sale flag")
	}
}

func TestHandleChange_MatureSetsReadyForSale(t *testing.T) {
	u := unitWith(Mature, 25, 70, 70, 70)
	u.readyForSale = false
	u.HandleChange()
	if u.State() != Mature || !u.ReadyForSale() {
		t.Fatalf("expected mature and ready for sale, got %s/%v", u.State(), u.ReadyForSale())
	}
}

func TestHandleChange_GrowingBecomesMatureAndSellable(t *testing.T) {
	u := unitWith(Growing, 20, 60, 60, 60)
	u.HandleChange()
	if u.State() != Mature || !u.ReadyForSale() {
		t.Fatalf("expected sellable Mature, got %s/%v", u.State(), u.ReadyForSale())
	}
}

func TestHandleChange_FloweringMarkupAppliesOnce(t *testing.T) {
	u := unitWith(Mature, 35, 90, 90, 90)
	u.SetPrice(10)
	u.HandleChange()
	if u.State() != Flowering {
		t.Fatalf("expected Flowering, got %s", u.State())
	}
	if u.Price() != 15 {
		t.Fatalf("expected price 15, got %.4f", u.Price())
	}

	low := unitWith(Mature, 35, 90, 90, 90)
	low.SetPrice(4)
	low.HandleChange()
	if low.Price() != 6 {
		t.Fatalf("expected price 6, got %.4f", low.Price())
	}
	for i := 0; i < 3; i++ {
		low.HandleChange()
	}
	if low.State() != Flowering || low.Price() != 6 {
		t.Fatalf("price must not compound while Flowering, got %s %.4f", low.State(), low.Price())
	}
	if !low.ReadyForSale() {
		t.Fatalf("flowering unit must be for sale")
	}
}

func TestHandleChange_FloweringAtFifteenKeepsPrice(t *testing.T) {
	u := unitWith(Mature, 35, 90, 90, 90)
	u.SetPrice(15)
	u.HandleChange()
	if u.Price() != 15 {
		t.Fatalf("expected unchanged price 15, got %.4f", u.Price())
	}
}

func TestHandleChange_FloweringRevertsToMatureWhenOld(t *testing.T) {
	u := unitWith(Flowering, 50, 90, 90, 90)
	u.HandleChange()
	if u.State() != Mature || !u.ReadyForSale() {
		t.Fatalf("expected sellable Mature, got %s/%v", u.State(), u.ReadyForSale())
	}
}

func TestHandleChange_Alerts(t *testing.T) {
	cases := []struct {
		name  string
		unit  *Unit
		kinds []AlertKind
	}{
		{name: "seedling water", unit: unitWith(Seedling, 1, 35, 100, 100), kinds: []AlertKind{AlertWater}},
		{name: "growing water and fertilizer", unit: unitWith(Growing, 1, 25, 20, 100), kinds: []AlertKind{AlertWater, AlertFertilizer}},
		{name: "mature water", unit: unitWith(Mature, 21, 15, 100, 100), kinds: []AlertKind{AlertWater}},
		{name: "flowering all", unit: unitWith(Flowering, 40, 25, 25, 45), kinds: []AlertKind{AlertWater, AlertFertilizer, AlertSunlight}},
		{name: "healthy seedling", unit: unitWith(Seedling, 1, 100, 100, 100), kinds: nil},
	}
	for _, tc := range cases {
		tr := tc.unit.HandleChange()
		if len(tr.Alerts) != len(tc.kinds) {
			t.Fatalf("%s: expected %d alerts, got %+v", tc.name, len(tc.kinds), tr.Alerts)
		}
		for i, k := range tc.kinds {
			if tr.Alerts[i].Kind != k {
				t.Fatalf("%s: alert %d expected %s, got %s", tc.name, i, k, tr.Alerts[i].Kind)
			}
		}
	}
}

func TestHandleChange_IdempotentWithoutInputChanges(t *testing.T) {
	u := unitWith(Growing, 10, 70, 70, 70)
	first := u.View()
	u.HandleChange()
	u.HandleChange()
	if u.View() != first {
		t.Fatalf("expected unchanged unit, got %+v vs %+v", u.View(), first)
	}
}
