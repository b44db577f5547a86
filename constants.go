package main

import "fmt"

// ConstantSet is an immutable record of the physical and economic
// coefficients behind one published version of the model. Sets are looked
// up by ID and passed to Compute; nothing in the engine reads these values
// from anywhere else, so tests can substitute their own set.
type ConstantSet struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Model       EmissionModel `json:"-"`

	// Mass balance
	HuskFraction float64 `json:"husk_fraction"` // husk share of paddy mass

	// Energy
	CalorificValueMJ float64 `json:"calorific_value_mj"` // MJ per kg husk
	GeneratorEff     float64 `json:"generator_eff"`      // 1.0 when the set has no separate generator term

	// Biochar
	BiocharYieldFraction float64 `json:"biochar_yield_fraction"`

	// Methane. Units depend on Model: kg CH4/ha/day for TimeIntegrated,
	// kg CH4/ha (season total) for FlatFactor.
	FloodedEmissionFactor float64 `json:"flooded_emission_factor"`
	AwdEmissionFactor     float64 `json:"awd_emission_factor"`
	MethaneGWP            float64 `json:"methane_gwp"`

	// Prices (INR)
	ElectricityPricePerKwh  float64 `json:"electricity_price_per_kwh"`
	BiocharPricePerKg       float64 `json:"biochar_price_per_kg"`
	CarbonCreditPricePerTon float64 `json:"carbon_credit_price_per_ton"` // 0 = no carbon revenue stream

	// Capital model (FlatFactor sets only)
	CapexPerKw        float64 `json:"capex_per_kw"`
	MinimumCapacityKw float64 `json:"minimum_capacity_kw"`
	OpexFraction      float64 `json:"opex_fraction"` // annual O&M as a share of capex
}

// HasPaybackModel reports whether the set carries capital-cost
// coefficients and therefore produces capex/opex/profit/payback figures.
func (cs *ConstantSet) HasPaybackModel() bool {
	return cs.CapexPerKw > 0
}

// HasCarbonRevenue reports whether avoided CO2 is monetised.
func (cs *ConstantSet) HasCarbonRevenue() bool {
	return cs.CarbonCreditPricePerTon > 0
}

// DefaultConstantSetID is used when the config names no set.
const DefaultConstantSetID = "field-trial"

// ConstantSets contains the published coefficient sets. The two sets
// disagree on calorific value, biochar yield and emission-factor units;
// they are kept separate on purpose, never averaged.
// Emission factors: IPCC 2019 refinement, Indian field conditions.
var ConstantSets = []ConstantSet{
	{
		ID:          "field-trial",
		Name:        "Field Trial (IPCC 2019)",
		Description: "Day-by-day methane accrual over the season with carbon-credit revenue",
		Model:       TimeIntegrated,

		HuskFraction:     0.22,
		CalorificValueMJ: 14.0,
		GeneratorEff:     1.0,

		BiocharYieldFraction: 0.25,

		FloodedEmissionFactor: 1.30, // kg CH4/ha/day
		AwdEmissionFactor:     0.75, // kg CH4/ha/day
		MethaneGWP:            28,

		ElectricityPricePerKwh:  7.0,
		BiocharPricePerKg:       15.0,
		CarbonCreditPricePerTon: 2500,
	},
	{
		ID:          "satem-2025",
		Name:        "SATEM-2025",
		Description: "Season-normalised emission factors with generator efficiency and payback economics",
		Model:       FlatFactor,

		HuskFraction:     0.22,
		CalorificValueMJ: 13.5,
		GeneratorEff:     0.30,

		BiocharYieldFraction: 0.20,

		FloodedEmissionFactor: 30, // kg CH4/ha, whole season
		AwdEmissionFactor:     16, // kg CH4/ha, whole season
		MethaneGWP:            28,

		ElectricityPricePerKwh: 7.0,
		BiocharPricePerKg:      15.0,

		CapexPerKw:        80000,
		MinimumCapacityKw: 5,
		OpexFraction:      0.10,
	},
}

// GetConstantSet returns the set with the given ID, or an error listing
// the valid IDs.
func GetConstantSet(id string) (*ConstantSet, error) {
	for i := range ConstantSets {
		if ConstantSets[i].ID == id {
			return &ConstantSets[i], nil
		}
	}
	return nil, fmt.Errorf("unknown constant set %q (available: %v)", id, ConstantSetIDs())
}

// ConstantSetIDs returns the IDs of all registered sets in order.
func ConstantSetIDs() []string {
	ids := make([]string, len(ConstantSets))
	for i := range ConstantSets {
		ids[i] = ConstantSets[i].ID
	}
	return ids
}
