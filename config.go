package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// ScenarioConfig holds the starting slider positions
type ScenarioConfig struct {
	AreaHectares       float64 `yaml:"area_hectares" json:"area_hectares"`
	PaddyYieldKgPerHa  float64 `yaml:"paddy_yield_kg_per_ha" json:"paddy_yield_kg_per_ha"`
	GasifierEfficiency float64 `yaml:"gasifier_efficiency" json:"gasifier_efficiency"`
	SeasonDays         int     `yaml:"season_days" json:"season_days"`
}

// Input converts the configured defaults into a ScenarioInput
func (sc ScenarioConfig) Input() ScenarioInput {
	return ScenarioInput{
		AreaHectares:       sc.AreaHectares,
		PaddyYieldKgPerHa:  sc.PaddyYieldKgPerHa,
		GasifierEfficiency: sc.GasifierEfficiency,
		SeasonDays:         sc.SeasonDays,
	}
}

// BoundsConfig holds the slider ranges shown by the UI. The engine itself
// only enforces its own domain (positive, efficiency in (0,1]); these
// bounds are a presentation concern.
type BoundsConfig struct {
	AreaMin       float64 `yaml:"area_min" json:"area_min"`
	AreaMax       float64 `yaml:"area_max" json:"area_max"`
	YieldMin      float64 `yaml:"yield_min" json:"yield_min"`
	YieldMax      float64 `yaml:"yield_max" json:"yield_max"`
	EfficiencyMin float64 `yaml:"efficiency_min" json:"efficiency_min"`
	EfficiencyMax float64 `yaml:"efficiency_max" json:"efficiency_max"`
}

// SweepConfig holds the area range for the scalability chart
type SweepConfig struct {
	From float64 `yaml:"from" json:"from"`
	To   float64 `yaml:"to" json:"to"`
	Step float64 `yaml:"step" json:"step"`
}

// OutputConfig holds presentation options
type OutputConfig struct {
	CurrencySymbol  string `yaml:"currency_symbol" json:"currency_symbol"`
	BackgroundImage string `yaml:"background_image,omitempty" json:"background_image,omitempty"` // optional; solid colour fallback if missing
}

// OverridesConfig allows individual coefficients of the selected constant
// set to be replaced from the config file. Zero values mean "keep the
// set's value". The registry sets themselves are never mutated: overrides
// produce a derived set named "<id>-custom".
type OverridesConfig struct {
	HuskFraction            float64 `yaml:"husk_fraction,omitempty" json:"husk_fraction,omitempty"`
	CalorificValueMJ        float64 `yaml:"calorific_value_mj,omitempty" json:"calorific_value_mj,omitempty"`
	GeneratorEff            float64 `yaml:"generator_eff,omitempty" json:"generator_eff,omitempty"`
	BiocharYieldFraction    float64 `yaml:"biochar_yield_fraction,omitempty" json:"biochar_yield_fraction,omitempty"`
	FloodedEmissionFactor   float64 `yaml:"flooded_emission_factor,omitempty" json:"flooded_emission_factor,omitempty"`
	AwdEmissionFactor       float64 `yaml:"awd_emission_factor,omitempty" json:"awd_emission_factor,omitempty"`
	MethaneGWP              float64 `yaml:"methane_gwp,omitempty" json:"methane_gwp,omitempty"`
	ElectricityPricePerKwh  float64 `yaml:"electricity_price_per_kwh,omitempty" json:"electricity_price_per_kwh,omitempty"`
	BiocharPricePerKg       float64 `yaml:"biochar_price_per_kg,omitempty" json:"biochar_price_per_kg,omitempty"`
	CarbonCreditPricePerTon float64 `yaml:"carbon_credit_price_per_ton,omitempty" json:"carbon_credit_price_per_ton,omitempty"`
	CapexPerKw              float64 `yaml:"capex_per_kw,omitempty" json:"capex_per_kw,omitempty"`
}

func (o OverridesConfig) isZero() bool {
	return o == OverridesConfig{}
}

// Config is the full YAML configuration
type Config struct {
	ConstantSet string          `yaml:"constant_set" json:"constant_set"`
	Scenario    ScenarioConfig  `yaml:"scenario" json:"scenario"`
	Bounds      BoundsConfig    `yaml:"bounds" json:"bounds"`
	Sweep       SweepConfig     `yaml:"sweep" json:"sweep"`
	Output      OutputConfig    `yaml:"output" json:"output"`
	Overrides   OverridesConfig `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// ResolveConstantSet returns the configured coefficient set, applying any
// overrides onto a copy.
func (c *Config) ResolveConstantSet() (*ConstantSet, error) {
	id := c.ConstantSet
	if id == "" {
		id = DefaultConstantSetID
	}
	base, err := GetConstantSet(id)
	if err != nil {
		return nil, err
	}
	if c.Overrides.isZero() {
		return base, nil
	}

	derived := *base
	derived.ID = base.ID + "-custom"
	derived.Name = base.Name + " (customised)"
	o := c.Overrides
	if o.HuskFraction > 0 {
		derived.HuskFraction = o.HuskFraction
	}
	if o.CalorificValueMJ > 0 {
		derived.CalorificValueMJ = o.CalorificValueMJ
	}
	if o.GeneratorEff > 0 {
		derived.GeneratorEff = o.GeneratorEff
	}
	if o.BiocharYieldFraction > 0 {
		derived.BiocharYieldFraction = o.BiocharYieldFraction
	}
	if o.FloodedEmissionFactor > 0 {
		derived.FloodedEmissionFactor = o.FloodedEmissionFactor
	}
	if o.AwdEmissionFactor > 0 {
		derived.AwdEmissionFactor = o.AwdEmissionFactor
	}
	if o.MethaneGWP > 0 {
		derived.MethaneGWP = o.MethaneGWP
	}
	if o.ElectricityPricePerKwh > 0 {
		derived.ElectricityPricePerKwh = o.ElectricityPricePerKwh
	}
	if o.BiocharPricePerKg > 0 {
		derived.BiocharPricePerKg = o.BiocharPricePerKg
	}
	if o.CarbonCreditPricePerTon > 0 {
		derived.CarbonCreditPricePerTon = o.CarbonCreditPricePerTon
	}
	if o.CapexPerKw > 0 {
		derived.CapexPerKw = o.CapexPerKw
	}
	return &derived, nil
}

// Validate checks the configured scenario against the selected model's
// input domain and sanity-checks the sweep range.
func (c *Config) Validate() error {
	set, err := c.ResolveConstantSet()
	if err != nil {
		return err
	}
	if err := c.Scenario.Input().Validate(set.Model); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if c.Sweep.Step <= 0 || c.Sweep.To < c.Sweep.From {
		return fmt.Errorf("sweep: invalid range [%v, %v] step %v", c.Sweep.From, c.Sweep.To, c.Sweep.Step)
	}
	return nil
}

// LoadConfig reads and parses a YAML config file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return &config, nil
}

// LoadDefaultConfig parses the embedded default configuration
func LoadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

// SaveConfig writes the config back out as YAML
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// applyDefaults fills gaps left by older or hand-edited config files
func (c *Config) applyDefaults() {
	if c.ConstantSet == "" {
		c.ConstantSet = DefaultConstantSetID
	}
	if c.Scenario.AreaHectares == 0 {
		c.Scenario.AreaHectares = 5
	}
	if c.Scenario.PaddyYieldKgPerHa == 0 {
		c.Scenario.PaddyYieldKgPerHa = 4500
	}
	if c.Scenario.GasifierEfficiency == 0 {
		c.Scenario.GasifierEfficiency = 0.70
	}
	if c.Scenario.SeasonDays == 0 {
		c.Scenario.SeasonDays = 120
	}
	if c.Bounds.AreaMax == 0 {
		c.Bounds = BoundsConfig{AreaMin: 1, AreaMax: 50, YieldMin: 2000, YieldMax: 8000, EfficiencyMin: 0.40, EfficiencyMax: 0.90}
	}
	if c.Sweep.Step == 0 {
		c.Sweep = SweepConfig{From: 1, To: 50, Step: 5}
	}
	if c.Output.CurrencySymbol == "" {
		c.Output.CurrencySymbol = "₹"
	}
}
