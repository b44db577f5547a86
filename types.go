package main

// EmissionModel selects how methane savings are calculated
type EmissionModel int

const (
	// TimeIntegrated multiplies daily per-hectare emission factors by the
	// season length (kg CH4/ha/day factors).
	TimeIntegrated EmissionModel = iota
	// FlatFactor uses season-normalised per-hectare factors (kg CH4/ha)
	// and adds the capital-cost payback model.
	FlatFactor
)

func (m EmissionModel) String() string {
	switch m {
	case TimeIntegrated:
		return "Time-Integrated Emissions"
	case FlatFactor:
		return "Flat-Factor with Payback"
	default:
		return "Unknown"
	}
}

// ScenarioInput holds the four farm parameters driving a simulation.
// It is a value object: construct, validate, pass to Compute.
type ScenarioInput struct {
	AreaHectares       float64 `json:"area_hectares"`
	PaddyYieldKgPerHa  float64 `json:"paddy_yield_kg_per_ha"`
	GasifierEfficiency float64 `json:"gasifier_efficiency"`
	SeasonDays         int     `json:"season_days"` // ignored by FlatFactor sets
}

// RevenueBreakdown splits total revenue by stream
type RevenueBreakdown struct {
	Electricity  float64 `json:"electricity"`
	Biochar      float64 `json:"biochar"`
	CarbonCredit float64 `json:"carbon_credit"` // zero for sets without carbon pricing
}

// SimulationResult holds every intermediate and final quantity for one
// scenario. Fully determined by ScenarioInput and the ConstantSet; created
// fresh on each Compute call and never mutated.
type SimulationResult struct {
	Input       ScenarioInput `json:"input"`
	ConstantSet string        `json:"constant_set"`
	Model       string        `json:"model"`

	// Mass balance
	TotalPaddyKg float64 `json:"total_paddy_kg"`
	HuskMassKg   float64 `json:"husk_mass_kg"`

	// Energy
	EnergyMJ  float64 `json:"energy_mj"`
	EnergyKwh float64 `json:"energy_kwh"`

	// Biochar
	BiocharMassKg float64 `json:"biochar_mass_kg"`

	// Methane. Flooded/AWD totals are season totals for the
	// time-integrated model and per-season flat totals for the flat model.
	MethaneFloodedKg  float64 `json:"methane_flooded_kg"`
	MethaneAwdKg      float64 `json:"methane_awd_kg"`
	MethaneAvoidedKg  float64 `json:"methane_avoided_kg"`
	CO2EquivalentKg   float64 `json:"co2_equivalent_kg"`
	CO2EquivalentTons float64 `json:"co2_equivalent_tons"`

	// Financials
	Revenue      RevenueBreakdown `json:"revenue"`
	TotalRevenue float64          `json:"total_revenue"`

	// Payback model (FlatFactor sets only)
	HasPayback     bool    `json:"has_payback"`
	CapacityKw     float64 `json:"capacity_kw,omitempty"`
	CapexINR       float64 `json:"capex_inr,omitempty"`
	OpexINR        float64 `json:"opex_inr,omitempty"`
	ProfitINR      float64 `json:"profit_inr,omitempty"`
	PaybackDefined bool    `json:"payback_defined"`
	PaybackYears   float64 `json:"payback_years,omitempty"`
}

// SweepPoint is one step of the area scalability series: CO2 offset and
// electricity revenue at a given farm area, all other inputs held fixed.
type SweepPoint struct {
	AreaHectares  float64 `json:"area_hectares"`
	CO2OffsetTons float64 `json:"co2_offset_tons"`
	RevenueINR    float64 `json:"revenue_inr"`
}
