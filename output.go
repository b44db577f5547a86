package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatNumber formats a quantity with thousands separators
func FormatNumber(v float64, decimals int) string {
	return humanize.CommafWithDigits(v, decimals)
}

// FormatMoney formats an INR amount with the configured currency symbol
func FormatMoney(symbol string, v float64) string {
	return fmt.Sprintf("%s %s", symbol, humanize.CommafWithDigits(v, 0))
}

// PrintHeader prints the simulation banner and configuration summary
func PrintHeader(config *Config, set *ConstantSet) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║               RICE HUSK CIRCULAR ECONOMY SIMULATOR                           ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Model: %s (%s)\n", set.Name, set.Model)
	fmt.Println("──────────────")
	fmt.Printf("  Farm: %.0f ha at %.0f kg/ha paddy yield\n",
		config.Scenario.AreaHectares, config.Scenario.PaddyYieldKgPerHa)
	fmt.Printf("  Gasifier efficiency: %.0f%%", config.Scenario.GasifierEfficiency*100)
	if set.GeneratorEff < 1 {
		fmt.Printf(" | Generator efficiency: %.0f%%", set.GeneratorEff*100)
	}
	fmt.Println()
	if set.Model == TimeIntegrated {
		fmt.Printf("  Season: %d days | Emission factors: %.2f/%.2f kg CH4/ha/day (flooded/AWD)\n",
			config.Scenario.SeasonDays, set.FloodedEmissionFactor, set.AwdEmissionFactor)
	} else {
		fmt.Printf("  Emission factors: %.0f/%.0f kg CH4/ha per season (flooded/AWD)\n",
			set.FloodedEmissionFactor, set.AwdEmissionFactor)
	}
	fmt.Println()
}

// PrintResult prints the four summary cards, the emissions comparison and
// the full report table
func PrintResult(r SimulationResult, set *ConstantSet, config *Config) {
	sym := config.Output.CurrencySymbol

	fmt.Println("Projected Impact")
	fmt.Println("────────────────")
	printCard("Net Energy Output", FormatNumber(r.EnergyKwh, 0)+" kWh")
	printCard("Biochar Produced", FormatNumber(r.BiocharMassKg, 0)+" kg")
	printCard("CO2 Equivalent Avoided", co2CardValue(r, set.Model))
	printCard("Total Seasonal Revenue", FormatMoney(sym, r.TotalRevenue))
	if r.HasPayback {
		if r.PaybackDefined {
			printCard("Est. Payback Period", fmt.Sprintf("%.1f years", r.PaybackYears))
		} else {
			printCard("Est. Payback Period", "no payback (profit non-positive)")
		}
	}
	fmt.Println()

	printEmissionBars(r)
	fmt.Println()
	printReportTable(r, sym)
}

// printCard prints one aligned metric line
func printCard(label, value string) {
	fmt.Printf("  %-26s %s\n", label, value)
}

// co2CardValue picks the headline CO2 figure for the summary card: the
// time-integrated model reports tons, the flat per-season model kilograms.
func co2CardValue(r SimulationResult, model EmissionModel) string {
	if model == TimeIntegrated {
		return FormatNumber(r.CO2EquivalentTons, 2) + " tons"
	}
	return FormatNumber(r.CO2EquivalentKg, 0) + " kg"
}

// printEmissionBars renders the flooded vs AWD comparison as horizontal
// bars with the value annotated after each bar
func printEmissionBars(r SimulationResult) {
	fmt.Println("Emissions Comparison (kg CH4)")
	fmt.Println("─────────────────────────────")
	const width = 44
	max := r.MethaneFloodedKg
	if r.MethaneAwdKg > max {
		max = r.MethaneAwdKg
	}
	if max <= 0 {
		max = 1
	}
	bar := func(label string, v float64) {
		n := int(v / max * width)
		if n < 1 && v > 0 {
			n = 1
		}
		fmt.Printf("  %-18s %s %s kg\n", label, barCell(n, width), FormatNumber(v, 0))
	}
	bar("Flooded (conv.)", r.MethaneFloodedKg)
	bar("AWD (proposed)", r.MethaneAwdKg)
	fmt.Printf("  %-18s %s kg avoided\n", "Reduction", FormatNumber(r.MethaneAvoidedKg, 0))
}

// barCell renders n filled blocks padded with spaces to a fixed column of
// width runes. Padding is done by hand because %-*s counts bytes and the
// block character is multi-byte, which would let the annotations drift.
func barCell(n, width int) string {
	if n > width {
		n = width
	}
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n) + strings.Repeat(" ", width-n)
}

// ReportRow is one line of the tabular project report
type ReportRow struct {
	Metric string
	Value  string
	Unit   string
}

// BuildReportRows lists every intermediate and final quantity with its
// unit, in pipeline order. Shared by console, CSV, HTML and PDF output.
func BuildReportRows(r SimulationResult, symbol string) []ReportRow {
	rows := []ReportRow{
		{"Total Paddy Harvested", FormatNumber(r.TotalPaddyKg, 0), "kg"},
		{"Input Biomass (Rice Husk)", FormatNumber(r.HuskMassKg, 0), "kg"},
		{"Clean Energy Generated", FormatNumber(r.EnergyKwh, 2), "kWh"},
		{"Biochar Produced", FormatNumber(r.BiocharMassKg, 0), "kg"},
		{"Methane (CH4) Avoided", FormatNumber(r.MethaneAvoidedKg, 0), "kg"},
		{"CO2 Equivalent Saved", FormatNumber(r.CO2EquivalentTons, 3), "tons"},
		{"Electricity Revenue", FormatMoney(symbol, r.Revenue.Electricity), "INR"},
		{"Biochar Revenue", FormatMoney(symbol, r.Revenue.Biochar), "INR"},
	}
	if r.Revenue.CarbonCredit > 0 {
		rows = append(rows, ReportRow{"Carbon Credit Revenue", FormatMoney(symbol, r.Revenue.CarbonCredit), "INR"})
	}
	rows = append(rows, ReportRow{"TOTAL SEASONAL REVENUE", FormatMoney(symbol, r.TotalRevenue), "INR"})
	if r.HasPayback {
		rows = append(rows,
			ReportRow{"Plant Capacity", FormatNumber(r.CapacityKw, 2), "kW"},
			ReportRow{"Capital Cost (CAPEX)", FormatMoney(symbol, r.CapexINR), "INR"},
			ReportRow{"Annual O&M (OPEX)", FormatMoney(symbol, r.OpexINR), "INR"},
			ReportRow{"Annual Profit", FormatMoney(symbol, r.ProfitINR), "INR"},
		)
		if r.PaybackDefined {
			rows = append(rows, ReportRow{"Payback Period", FormatNumber(r.PaybackYears, 1), "years"})
		} else {
			rows = append(rows, ReportRow{"Payback Period", "—", "undefined"})
		}
	}
	return rows
}

// printReportTable prints the project impact report
func printReportTable(r SimulationResult, symbol string) {
	fmt.Println("Project Impact Report")
	fmt.Println("─────────────────────")
	fmt.Printf("  %-28s %18s  %s\n", "Metric", "Value", "Unit")
	for _, row := range BuildReportRows(r, symbol) {
		fmt.Printf("  %-28s %18s  %s\n", row.Metric, row.Value, row.Unit)
	}
}

// PrintSweepTable prints the area scalability series
func PrintSweepTable(points []SweepPoint, config *Config) {
	sym := config.Output.CurrencySymbol
	fmt.Println("Scalability (yield/efficiency/season held fixed)")
	fmt.Println("────────────────────────────────────────────────")
	fmt.Printf("  %10s %18s %20s\n", "Area (ha)", "CO2 Offset (tons)", "Elec. Revenue")
	for _, p := range points {
		fmt.Printf("  %10.0f %18s %20s\n",
			p.AreaHectares, FormatNumber(p.CO2OffsetTons, 2), FormatMoney(sym, p.RevenueINR))
	}
}
