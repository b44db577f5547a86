package main

import (
	"fmt"
	"math"
)

// ValidationError reports a scenario field outside its declared domain
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field of the input against its domain. SeasonDays
// is only required by time-integrated sets, so the model has to be known.
func (in ScenarioInput) Validate(model EmissionModel) error {
	if math.IsNaN(in.AreaHectares) || math.IsInf(in.AreaHectares, 0) || in.AreaHectares <= 0 {
		return ValidationError{Field: "area_hectares", Message: fmt.Sprintf("must be a positive finite number (got %v)", in.AreaHectares)}
	}
	if math.IsNaN(in.PaddyYieldKgPerHa) || math.IsInf(in.PaddyYieldKgPerHa, 0) || in.PaddyYieldKgPerHa <= 0 {
		return ValidationError{Field: "paddy_yield_kg_per_ha", Message: fmt.Sprintf("must be a positive finite number (got %v)", in.PaddyYieldKgPerHa)}
	}
	if math.IsNaN(in.GasifierEfficiency) || in.GasifierEfficiency <= 0 || in.GasifierEfficiency > 1 {
		return ValidationError{Field: "gasifier_efficiency", Message: fmt.Sprintf("must be in (0, 1] (got %v)", in.GasifierEfficiency)}
	}
	if model == TimeIntegrated && in.SeasonDays <= 0 {
		return ValidationError{Field: "season_days", Message: fmt.Sprintf("must be a positive number of days (got %d)", in.SeasonDays)}
	}
	return nil
}

// Compute runs the full formula pipeline for one scenario. It is pure and
// stateless: the same input and set always give the same result, and
// nothing is cached or mutated between calls.
func Compute(in ScenarioInput, set *ConstantSet) (SimulationResult, error) {
	if err := in.Validate(set.Model); err != nil {
		return SimulationResult{}, err
	}

	r := SimulationResult{
		Input:       in,
		ConstantSet: set.ID,
		Model:       set.Model.String(),
	}

	// Mass balance
	r.TotalPaddyKg = in.AreaHectares * in.PaddyYieldKgPerHa
	r.HuskMassKg = r.TotalPaddyKg * set.HuskFraction

	// Energy: thermal content scaled by conversion efficiencies, MJ to kWh
	r.EnergyMJ = r.HuskMassKg * set.CalorificValueMJ * in.GasifierEfficiency * set.GeneratorEff
	r.EnergyKwh = r.EnergyMJ / 3.6

	// Biochar
	r.BiocharMassKg = r.HuskMassKg * set.BiocharYieldFraction

	// Methane
	switch set.Model {
	case TimeIntegrated:
		r.MethaneFloodedKg = set.FloodedEmissionFactor * in.AreaHectares * float64(in.SeasonDays)
		r.MethaneAwdKg = set.AwdEmissionFactor * in.AreaHectares * float64(in.SeasonDays)
		r.MethaneAvoidedKg = r.MethaneFloodedKg - r.MethaneAwdKg
	case FlatFactor:
		r.MethaneFloodedKg = set.FloodedEmissionFactor * in.AreaHectares
		r.MethaneAwdKg = set.AwdEmissionFactor * in.AreaHectares
		r.MethaneAvoidedKg = in.AreaHectares * (set.FloodedEmissionFactor - set.AwdEmissionFactor)
	}
	r.CO2EquivalentKg = r.MethaneAvoidedKg * set.MethaneGWP
	r.CO2EquivalentTons = r.CO2EquivalentKg / 1000

	// Revenue streams
	r.Revenue.Electricity = r.EnergyKwh * set.ElectricityPricePerKwh
	r.Revenue.Biochar = r.BiocharMassKg * set.BiocharPricePerKg
	if set.HasCarbonRevenue() {
		r.Revenue.CarbonCredit = r.CO2EquivalentTons * set.CarbonCreditPricePerTon
	}
	r.TotalRevenue = r.Revenue.Electricity + r.Revenue.Biochar + r.Revenue.CarbonCredit

	// Capital model. Payback is undefined rather than faulting when the
	// plant never earns back its running costs.
	if set.HasPaybackModel() {
		r.HasPayback = true
		r.CapacityKw = r.EnergyKwh / 1000
		r.CapexINR = math.Max(r.CapacityKw, set.MinimumCapacityKw) * set.CapexPerKw
		r.OpexINR = r.CapexINR * set.OpexFraction
		r.ProfitINR = r.TotalRevenue - r.OpexINR
		if r.ProfitINR > 0 {
			r.PaybackDefined = true
			r.PaybackYears = r.CapexINR / r.ProfitINR
		}
	}

	return r, nil
}

// AreaSweep evaluates the scenario at each area step from lo to hi,
// holding yield, efficiency and season fixed, and returns the CO2 offset
// and electricity revenue series used by the scalability chart.
func AreaSweep(in ScenarioInput, set *ConstantSet, lo, hi, step float64) ([]SweepPoint, error) {
	if step <= 0 || hi < lo {
		return nil, fmt.Errorf("invalid sweep range [%v, %v] step %v", lo, hi, step)
	}
	var points []SweepPoint
	for area := lo; area <= hi; area += step {
		swept := in
		swept.AreaHectares = area
		r, err := Compute(swept, set)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{
			AreaHectares:  area,
			CO2OffsetTons: r.CO2EquivalentTons,
			RevenueINR:    r.Revenue.Electricity,
		})
	}
	return points, nil
}
