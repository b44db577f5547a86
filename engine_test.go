package main

import (
	"math"
	"testing"
)

// End-to-End Scenario Tests
//
// These tests pin the engine to worked examples from the published model
// versions, so any coefficient or formula drift fails loudly.

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func mustSet(t *testing.T, id string) *ConstantSet {
	t.Helper()
	set, err := GetConstantSet(id)
	if err != nil {
		t.Fatalf("GetConstantSet(%q): %v", id, err)
	}
	return set
}

func TestScenario_FieldTrialWorkedExample(t *testing.T) {
	// 5 ha, 4500 kg/ha, 70% gasifier efficiency, 120 day season
	set := mustSet(t, "field-trial")
	in := ScenarioInput{
		AreaHectares:       5,
		PaddyYieldKgPerHa:  4500,
		GasifierEfficiency: 0.70,
		SeasonDays:         120,
	}

	r, err := Compute(in, set)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"TotalPaddyKg", r.TotalPaddyKg, 22500},
		{"HuskMassKg", r.HuskMassKg, 4950},
		{"EnergyKwh", r.EnergyKwh, 4950 * 14 * 0.70 / 3.6}, // 13475
		{"BiocharMassKg", r.BiocharMassKg, 1237.5},
		{"MethaneFloodedKg", r.MethaneFloodedKg, 780},
		{"MethaneAwdKg", r.MethaneAwdKg, 450},
		{"MethaneAvoidedKg", r.MethaneAvoidedKg, 330},
		{"CO2EquivalentTons", r.CO2EquivalentTons, 9.24},
		{"Revenue.Electricity", r.Revenue.Electricity, 13475 * 7.0},
		{"Revenue.Biochar", r.Revenue.Biochar, 1237.5 * 15.0},
		{"Revenue.CarbonCredit", r.Revenue.CarbonCredit, 9.24 * 2500},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	wantTotal := 13475*7.0 + 1237.5*15.0 + 9.24*2500
	if !approxEqual(r.TotalRevenue, wantTotal) {
		t.Errorf("TotalRevenue = %v, want %v", r.TotalRevenue, wantTotal)
	}
	if r.HasPayback {
		t.Error("field-trial set should not produce a payback model")
	}
}

func TestScenario_SatemWorkedExample(t *testing.T) {
	// 50 ha, 4500 kg/ha, 70% gasifier efficiency; season days unused
	set := mustSet(t, "satem-2025")
	in := ScenarioInput{
		AreaHectares:       50,
		PaddyYieldKgPerHa:  4500,
		GasifierEfficiency: 0.70,
	}

	r, err := Compute(in, set)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !approxEqual(r.HuskMassKg, 49500) {
		t.Errorf("HuskMassKg = %v, want 49500", r.HuskMassKg)
	}
	wantEnergy := 49500 * 13.5 * 0.70 * 0.30 / 3.6 // 38981.25
	if !approxEqual(r.EnergyKwh, wantEnergy) {
		t.Errorf("EnergyKwh = %v, want %v", r.EnergyKwh, wantEnergy)
	}
	if !approxEqual(r.BiocharMassKg, 9900) {
		t.Errorf("BiocharMassKg = %v, want 9900", r.BiocharMassKg)
	}
	if !approxEqual(r.MethaneAvoidedKg, 700) {
		t.Errorf("MethaneAvoidedKg = %v, want 700", r.MethaneAvoidedKg)
	}
	if !approxEqual(r.CO2EquivalentKg, 19600) {
		t.Errorf("CO2EquivalentKg = %v, want 19600", r.CO2EquivalentKg)
	}
	if r.Revenue.CarbonCredit != 0 {
		t.Errorf("satem-2025 has no carbon revenue, got %v", r.Revenue.CarbonCredit)
	}

	// Economics: capacity 38.98125 kW, above the 5 kW floor
	if !r.HasPayback {
		t.Fatal("satem-2025 set should produce a payback model")
	}
	wantCapacity := wantEnergy / 1000
	if !approxEqual(r.CapacityKw, wantCapacity) {
		t.Errorf("CapacityKw = %v, want %v", r.CapacityKw, wantCapacity)
	}
	wantCapex := wantCapacity * 80000
	if !approxEqual(r.CapexINR, wantCapex) {
		t.Errorf("CapexINR = %v, want %v", r.CapexINR, wantCapex)
	}
	wantRevenue := wantEnergy*7.0 + 9900*15.0
	wantProfit := wantRevenue - wantCapex*0.10
	if !approxEqual(r.ProfitINR, wantProfit) {
		t.Errorf("ProfitINR = %v, want %v", r.ProfitINR, wantProfit)
	}
	if !r.PaybackDefined {
		t.Fatal("payback should be defined at 50 ha")
	}
	if !approxEqual(r.PaybackYears, wantCapex/wantProfit) {
		t.Errorf("PaybackYears = %v, want %v", r.PaybackYears, wantCapex/wantProfit)
	}
}

func TestScenario_SatemMinimumCapacityFloor(t *testing.T) {
	// A tiny farm produces well under 5 kW; CAPEX must be priced at the
	// 5 kW system minimum.
	set := mustSet(t, "satem-2025")
	in := ScenarioInput{AreaHectares: 1, PaddyYieldKgPerHa: 2000, GasifierEfficiency: 0.40}

	r, err := Compute(in, set)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if r.CapacityKw >= 5 {
		t.Fatalf("test premise broken: capacity %v kW should be under the floor", r.CapacityKw)
	}
	if !approxEqual(r.CapexINR, 5*80000) {
		t.Errorf("CapexINR = %v, want %v (5 kW floor)", r.CapexINR, 5*80000.0)
	}
}

func TestCompute_InvalidInputs(t *testing.T) {
	set := mustSet(t, "field-trial")
	valid := ScenarioInput{AreaHectares: 5, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.7, SeasonDays: 120}

	cases := []struct {
		name   string
		mutate func(*ScenarioInput)
		field  string
	}{
		{"zero area", func(in *ScenarioInput) { in.AreaHectares = 0 }, "area_hectares"},
		{"negative area", func(in *ScenarioInput) { in.AreaHectares = -3 }, "area_hectares"},
		{"NaN area", func(in *ScenarioInput) { in.AreaHectares = math.NaN() }, "area_hectares"},
		{"infinite area", func(in *ScenarioInput) { in.AreaHectares = math.Inf(1) }, "area_hectares"},
		{"zero yield", func(in *ScenarioInput) { in.PaddyYieldKgPerHa = 0 }, "paddy_yield_kg_per_ha"},
		{"negative yield", func(in *ScenarioInput) { in.PaddyYieldKgPerHa = -100 }, "paddy_yield_kg_per_ha"},
		{"zero efficiency", func(in *ScenarioInput) { in.GasifierEfficiency = 0 }, "gasifier_efficiency"},
		{"efficiency above one", func(in *ScenarioInput) { in.GasifierEfficiency = 1.2 }, "gasifier_efficiency"},
		{"NaN efficiency", func(in *ScenarioInput) { in.GasifierEfficiency = math.NaN() }, "gasifier_efficiency"},
		{"zero season days", func(in *ScenarioInput) { in.SeasonDays = 0 }, "season_days"},
		{"negative season days", func(in *ScenarioInput) { in.SeasonDays = -5 }, "season_days"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid
			c.mutate(&in)
			_, err := Compute(in, set)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			ve, ok := err.(ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if ve.Field != c.field {
				t.Errorf("error field = %q, want %q", ve.Field, c.field)
			}
		})
	}
}

func TestCompute_SeasonDaysIgnoredByFlatModel(t *testing.T) {
	// The flat-factor model is season-normalised: season days must not
	// change the result, and zero days must not be rejected.
	set := mustSet(t, "satem-2025")
	base := ScenarioInput{AreaHectares: 10, PaddyYieldKgPerHa: 4000, GasifierEfficiency: 0.6}

	r0, err := Compute(base, set)
	if err != nil {
		t.Fatalf("Compute without season days: %v", err)
	}
	withDays := base
	withDays.SeasonDays = 200
	r1, err := Compute(withDays, set)
	if err != nil {
		t.Fatalf("Compute with season days: %v", err)
	}
	if r0.MethaneAvoidedKg != r1.MethaneAvoidedKg || r0.TotalRevenue != r1.TotalRevenue {
		t.Error("season days changed flat-factor results")
	}
}

func TestAreaSweep(t *testing.T) {
	set := mustSet(t, "field-trial")
	in := ScenarioInput{AreaHectares: 5, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.70, SeasonDays: 120}

	points, err := AreaSweep(in, set, 1, 50, 5)
	if err != nil {
		t.Fatalf("AreaSweep: %v", err)
	}
	// 1, 6, 11, ..., 46
	if len(points) != 10 {
		t.Fatalf("got %d points, want 10", len(points))
	}
	if points[0].AreaHectares != 1 || points[9].AreaHectares != 46 {
		t.Errorf("unexpected area range: first %v, last %v", points[0].AreaHectares, points[9].AreaHectares)
	}

	// Both series scale linearly with area
	for i := 1; i < len(points); i++ {
		if points[i].CO2OffsetTons <= points[i-1].CO2OffsetTons {
			t.Errorf("CO2 offset not increasing at point %d", i)
		}
		if points[i].RevenueINR <= points[i-1].RevenueINR {
			t.Errorf("revenue not increasing at point %d", i)
		}
	}
	ratio := points[9].CO2OffsetTons / points[0].CO2OffsetTons
	if !approxEqual(ratio, 46) {
		t.Errorf("CO2 offset should be linear in area: ratio = %v, want 46", ratio)
	}
}

func TestAreaSweep_InvalidRange(t *testing.T) {
	set := mustSet(t, "field-trial")
	in := ScenarioInput{AreaHectares: 5, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.70, SeasonDays: 120}

	if _, err := AreaSweep(in, set, 1, 50, 0); err == nil {
		t.Error("zero step should be rejected")
	}
	if _, err := AreaSweep(in, set, 50, 1, 5); err == nil {
		t.Error("inverted range should be rejected")
	}
}
