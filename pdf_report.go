package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginLeft   = 18.0
	pdfMarginTop    = 18.0
	pdfMarginRight  = 18.0
	pdfMarginBottom = 18.0
	pdfContentWidth = 210 - pdfMarginLeft - pdfMarginRight // A4 portrait
)

// pdfMoney formats money for PDF output. The core PDF fonts are Latin-1,
// which has no rupee sign, so "Rs" is used instead of the configured
// symbol.
func pdfMoney(v float64) string {
	return "Rs " + FormatNumber(v, 0)
}

// GeneratePDFBytes renders a one-scenario project report as a PDF
func GeneratePDFBytes(result SimulationResult, set *ConstantSet, config *Config) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(22, 101, 52)
	pdf.CellFormat(pdfContentWidth, 12, "Rice Husk Circular Economy Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 8, set.Name+" - "+set.Model.String(), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Scenario summary
	pdf.SetFillColor(240, 247, 242)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(22, 101, 52)
	pdf.CellFormat(pdfContentWidth, 8, "Farm Scenario", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	in := result.Input
	scenario := fmt.Sprintf("%.0f ha  |  %.0f kg/ha paddy  |  %.0f%% gasifier efficiency",
		in.AreaHectares, in.PaddyYieldKgPerHa, in.GasifierEfficiency*100)
	if set.Model == TimeIntegrated {
		scenario += fmt.Sprintf("  |  %d day season", in.SeasonDays)
	}
	pdf.CellFormat(pdfContentWidth, 8, scenario, "LRB", 1, "C", true, 0, "")
	pdf.Ln(6)

	// Headline metrics, two per row
	co2Value := FormatNumber(result.CO2EquivalentTons, 2) + " tons"
	if set.Model == FlatFactor {
		co2Value = FormatNumber(result.CO2EquivalentKg, 0) + " kg"
	}
	metrics := []struct{ label, value string }{
		{"Net Energy Output", FormatNumber(result.EnergyKwh, 0) + " kWh"},
		{"Biochar Produced", FormatNumber(result.BiocharMassKg, 0) + " kg"},
		{"CO2 Equivalent Avoided", co2Value},
		{"Total Revenue", pdfMoney(result.TotalRevenue)},
	}
	half := pdfContentWidth / 2
	for i := 0; i < len(metrics); i += 2 {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(half, 6, metrics[i].label, "LTR", 0, "C", true, 0, "")
		pdf.CellFormat(half, 6, metrics[i+1].label, "LTR", 1, "C", true, 0, "")
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(half, 9, metrics[i].value, "LBR", 0, "C", true, 0, "")
		pdf.CellFormat(half, 9, metrics[i+1].value, "LBR", 1, "C", true, 0, "")
	}
	pdf.Ln(6)

	// Full report table
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(22, 101, 52)
	pdf.CellFormat(pdfContentWidth, 8, "Project Impact Report", "1", 1, "C", true, 0, "")

	colMetric, colValue, colUnit := 84.0, 56.0, pdfContentWidth-84-56
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(colMetric, 7, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colValue, 7, "Value", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colUnit, 7, "Unit", "1", 1, "L", true, 0, "")

	pdf.SetTextColor(50, 50, 50)
	for _, row := range pdfReportRows(result) {
		if row.Metric == "TOTAL SEASONAL REVENUE" {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(colMetric, 7, row.Metric, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colValue, 7, row.Value, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colUnit, 7, row.Unit, "1", 1, "L", false, 0, "")
	}

	// Payback note
	if result.HasPayback {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		note := fmt.Sprintf("Estimated payback period: %.1f years.", result.PaybackYears)
		if !result.PaybackDefined {
			note = "No meaningful payback at this scale: annual revenue does not cover operating costs."
		}
		pdf.MultiCell(pdfContentWidth, 6, note, "", "L", false)
	}

	// Footer
	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(pdfContentWidth, 5, "Emission factors: standard IPCC 2019 values. Linear model, no calibration against field data.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfReportRows mirrors BuildReportRows with Latin-1-safe money strings
func pdfReportRows(r SimulationResult) []ReportRow {
	rows := []ReportRow{
		{"Total Paddy Harvested", FormatNumber(r.TotalPaddyKg, 0), "kg"},
		{"Input Biomass (Rice Husk)", FormatNumber(r.HuskMassKg, 0), "kg"},
		{"Clean Energy Generated", FormatNumber(r.EnergyKwh, 2), "kWh"},
		{"Biochar Produced", FormatNumber(r.BiocharMassKg, 0), "kg"},
		{"Methane (CH4) Avoided", FormatNumber(r.MethaneAvoidedKg, 0), "kg"},
		{"CO2 Equivalent Saved", FormatNumber(r.CO2EquivalentTons, 3), "tons"},
		{"Electricity Revenue", pdfMoney(r.Revenue.Electricity), "INR"},
		{"Biochar Revenue", pdfMoney(r.Revenue.Biochar), "INR"},
	}
	if r.Revenue.CarbonCredit > 0 {
		rows = append(rows, ReportRow{"Carbon Credit Revenue", pdfMoney(r.Revenue.CarbonCredit), "INR"})
	}
	rows = append(rows, ReportRow{"TOTAL SEASONAL REVENUE", pdfMoney(r.TotalRevenue), "INR"})
	if r.HasPayback {
		rows = append(rows,
			ReportRow{"Plant Capacity", FormatNumber(r.CapacityKw, 2), "kW"},
			ReportRow{"Capital Cost (CAPEX)", pdfMoney(r.CapexINR), "INR"},
			ReportRow{"Annual O&M (OPEX)", pdfMoney(r.OpexINR), "INR"},
			ReportRow{"Annual Profit", pdfMoney(r.ProfitINR), "INR"},
		)
		if r.PaybackDefined {
			rows = append(rows, ReportRow{"Payback Period", FormatNumber(r.PaybackYears, 1), "years"})
		} else {
			rows = append(rows, ReportRow{"Payback Period", "-", "undefined"})
		}
	}
	return rows
}

// GeneratePDFReport writes the PDF report to a file
func GeneratePDFReport(result SimulationResult, set *ConstantSet, config *Config, filename string) error {
	data, err := GeneratePDFBytes(result, set, config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
