package main

import (
	"reflect"
	"testing"
)

// Mathematical Invariants Test Suite
//
// Property-based checks that must hold for any valid input, regardless of
// the coefficient set in use.

func validInputs() []ScenarioInput {
	var inputs []ScenarioInput
	for _, area := range []float64{1, 5, 25, 50, 100} {
		for _, yld := range []float64{2000, 4500, 8000} {
			for _, eff := range []float64{0.40, 0.70, 0.90} {
				inputs = append(inputs, ScenarioInput{
					AreaHectares:       area,
					PaddyYieldKgPerHa:  yld,
					GasifierEfficiency: eff,
					SeasonDays:         120,
				})
			}
		}
	}
	return inputs
}

func TestInvariant_HuskMassFormula(t *testing.T) {
	// Property: huskMassKg = area * yield * huskFraction exactly

	for _, set := range ConstantSets {
		for _, in := range validInputs() {
			r, err := Compute(in, &set)
			if err != nil {
				t.Fatalf("[%s] Compute(%+v): %v", set.ID, in, err)
			}
			want := in.AreaHectares * in.PaddyYieldKgPerHa * set.HuskFraction
			if !approxEqual(r.HuskMassKg, want) {
				t.Errorf("[%s] HuskMassKg = %v, want %v", set.ID, r.HuskMassKg, want)
			}
		}
	}
}

func TestInvariant_OutputsNonNegative(t *testing.T) {
	// Property: any valid input produces finite, non-negative physical
	// outputs

	for _, set := range ConstantSets {
		for _, in := range validInputs() {
			r, err := Compute(in, &set)
			if err != nil {
				t.Fatalf("[%s] Compute: %v", set.ID, err)
			}
			for name, v := range map[string]float64{
				"HuskMassKg":       r.HuskMassKg,
				"EnergyKwh":        r.EnergyKwh,
				"BiocharMassKg":    r.BiocharMassKg,
				"MethaneAvoidedKg": r.MethaneAvoidedKg,
				"CO2EquivalentKg":  r.CO2EquivalentKg,
				"TotalRevenue":     r.TotalRevenue,
			} {
				if v < 0 {
					t.Errorf("[%s] %s is negative: %v", set.ID, name, v)
				}
			}
		}
	}
}

func TestInvariant_MonotoneInArea(t *testing.T) {
	// Property: energy, biochar and revenue never decrease as area grows,
	// other inputs fixed

	for _, set := range ConstantSets {
		prev := SimulationResult{}
		for i, area := range []float64{1, 2, 5, 10, 20, 50, 100} {
			in := ScenarioInput{AreaHectares: area, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.70, SeasonDays: 120}
			r, err := Compute(in, &set)
			if err != nil {
				t.Fatalf("[%s] Compute: %v", set.ID, err)
			}
			if i > 0 {
				if r.EnergyKwh < prev.EnergyKwh {
					t.Errorf("[%s] energy decreased from %v to %v at area %v", set.ID, prev.EnergyKwh, r.EnergyKwh, area)
				}
				if r.BiocharMassKg < prev.BiocharMassKg {
					t.Errorf("[%s] biochar decreased at area %v", set.ID, area)
				}
				if r.TotalRevenue < prev.TotalRevenue {
					t.Errorf("[%s] revenue decreased at area %v", set.ID, area)
				}
			}
			prev = r
		}
	}
}

func TestInvariant_MonotoneInYield(t *testing.T) {
	for _, set := range ConstantSets {
		prev := SimulationResult{}
		for i, yld := range []float64{2000, 3000, 4500, 6000, 8000} {
			in := ScenarioInput{AreaHectares: 10, PaddyYieldKgPerHa: yld, GasifierEfficiency: 0.70, SeasonDays: 120}
			r, err := Compute(in, &set)
			if err != nil {
				t.Fatalf("[%s] Compute: %v", set.ID, err)
			}
			if i > 0 && (r.EnergyKwh < prev.EnergyKwh || r.TotalRevenue < prev.TotalRevenue) {
				t.Errorf("[%s] outputs decreased when yield rose to %v", set.ID, yld)
			}
			prev = r
		}
	}
}

func TestInvariant_MethaneSavingNonNegative(t *testing.T) {
	// Property: avoided methane >= 0 whenever the flooded factor is at
	// least the AWD factor (true for every registered set)

	for _, set := range ConstantSets {
		if set.FloodedEmissionFactor < set.AwdEmissionFactor {
			t.Fatalf("[%s] registered set has flooded factor below AWD factor", set.ID)
		}
		for _, in := range validInputs() {
			r, err := Compute(in, &set)
			if err != nil {
				t.Fatalf("[%s] Compute: %v", set.ID, err)
			}
			if r.MethaneAvoidedKg < 0 {
				t.Errorf("[%s] negative methane saving: %v", set.ID, r.MethaneAvoidedKg)
			}
		}
	}
}

func TestInvariant_PaybackSentinel(t *testing.T) {
	// Property: when profit is non-positive, payback is reported as
	// undefined, never negative or infinite. A 5 kW-floor system on a
	// tiny farm cannot cover its own maintenance.

	set, err := GetConstantSet("satem-2025")
	if err != nil {
		t.Fatal(err)
	}
	in := ScenarioInput{AreaHectares: 1, PaddyYieldKgPerHa: 2000, GasifierEfficiency: 0.40}

	r, err := Compute(in, set)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if r.ProfitINR > 0 {
		t.Fatalf("test premise broken: profit %v should be non-positive", r.ProfitINR)
	}
	if r.PaybackDefined {
		t.Error("payback should be undefined for non-positive profit")
	}
	if r.PaybackYears != 0 {
		t.Errorf("undefined payback must carry zero years, got %v", r.PaybackYears)
	}
}

func TestInvariant_ComputeIdempotent(t *testing.T) {
	// Property: identical input yields bit-identical output; the engine
	// holds no hidden state

	for _, set := range ConstantSets {
		in := ScenarioInput{AreaHectares: 13, PaddyYieldKgPerHa: 3700, GasifierEfficiency: 0.55, SeasonDays: 120}
		r1, err1 := Compute(in, &set)
		r2, err2 := Compute(in, &set)
		if err1 != nil || err2 != nil {
			t.Fatalf("[%s] Compute errors: %v, %v", set.ID, err1, err2)
		}
		if !reflect.DeepEqual(r1, r2) {
			t.Errorf("[%s] repeated Compute gave different results", set.ID)
		}
	}
}

func TestInvariant_GWPConversion(t *testing.T) {
	// Property: CO2e is exactly methaneAvoided * GWP, tons are kg / 1000

	for _, set := range ConstantSets {
		in := ScenarioInput{AreaHectares: 7, PaddyYieldKgPerHa: 5000, GasifierEfficiency: 0.65, SeasonDays: 90}
		r, err := Compute(in, &set)
		if err != nil {
			t.Fatalf("[%s] Compute: %v", set.ID, err)
		}
		if !approxEqual(r.CO2EquivalentKg, r.MethaneAvoidedKg*set.MethaneGWP) {
			t.Errorf("[%s] CO2e kg mismatch", set.ID)
		}
		if !approxEqual(r.CO2EquivalentTons, r.CO2EquivalentKg/1000) {
			t.Errorf("[%s] CO2e tons mismatch", set.ID)
		}
	}
}
