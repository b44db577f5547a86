package main

import (
	"fmt"
	"os"
	"time"
)

// GenerateHTMLReport writes a standalone HTML project report for one
// scenario. Everything is inlined so the file can be mailed or archived
// without assets.
func GenerateHTMLReport(result SimulationResult, set *ConstantSet, config *Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	sym := config.Output.CurrencySymbol

	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rice Husk Report: %s</title>
    <style>
        :root {
            --primary: #16a34a;
            --accent: #1e90ff;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 900px; margin: 0 auto; }
        h1 { font-size: 1.75rem; margin-bottom: 0.5rem; color: var(--primary); }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; grid-template-columns: repeat(4, 1fr); }
        @media (max-width: 768px) { .grid { grid-template-columns: 1fr 1fr; } }
        .metric { text-align: center; padding: 1rem; border-radius: 8px; background: var(--bg); }
        .metric-value { font-size: 1.4rem; font-weight: 700; color: var(--primary); }
        .metric-label { font-size: 0.875rem; color: var(--text-muted); }
        table { width: 100%%; border-collapse: collapse; }
        th, td { padding: 0.5rem 0.75rem; text-align: left; border-bottom: 1px solid var(--border); }
        th { color: var(--text-muted); font-size: 0.8rem; text-transform: uppercase; }
        td.num { text-align: right; font-variant-numeric: tabular-nums; }
        tr.total td { font-weight: 700; border-top: 2px solid var(--primary); }
        .footer { color: var(--text-muted); font-size: 0.8rem; margin-top: 2rem; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <h1>Rice Husk Circular Economy Report</h1>
    <p class="subtitle">%s &middot; %s &middot; generated %s</p>
`, set.Name, set.Name, set.Model, time.Now().Format("2 January 2006 15:04"))

	// Scenario
	in := result.Input
	fmt.Fprintf(f, `    <div class="card">
        <h2>Farm Scenario</h2>
        <p>%s ha farm &middot; %s kg/ha paddy yield &middot; %.0f%% gasifier efficiency`,
		FormatNumber(in.AreaHectares, 0), FormatNumber(in.PaddyYieldKgPerHa, 0), in.GasifierEfficiency*100)
	if set.Model == TimeIntegrated {
		fmt.Fprintf(f, ` &middot; %d day season`, in.SeasonDays)
	}
	fmt.Fprint(f, "</p>\n    </div>\n")

	// Headline metrics
	co2Value := FormatNumber(result.CO2EquivalentTons, 2) + " tons"
	if set.Model == FlatFactor {
		co2Value = FormatNumber(result.CO2EquivalentKg, 0) + " kg"
	}
	fmt.Fprintf(f, `    <div class="card">
        <h2>Projected Impact</h2>
        <div class="grid">
            <div class="metric"><div class="metric-value">%s kWh</div><div class="metric-label">Net Energy Output</div></div>
            <div class="metric"><div class="metric-value">%s kg</div><div class="metric-label">Biochar Produced</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">CO2 Equivalent Avoided</div></div>
            <div class="metric"><div class="metric-value">%s</div><div class="metric-label">Total Revenue</div></div>
        </div>
`, FormatNumber(result.EnergyKwh, 0), FormatNumber(result.BiocharMassKg, 0), co2Value, FormatMoney(sym, result.TotalRevenue))
	if result.HasPayback {
		payback := fmt.Sprintf("%.1f years", result.PaybackYears)
		if !result.PaybackDefined {
			payback = "no payback at this scale"
		}
		fmt.Fprintf(f, `        <p style="text-align:center;color:var(--text-muted);font-style:italic;margin-top:1rem">Est. payback period: %s</p>
`, payback)
	}
	fmt.Fprint(f, "    </div>\n")

	// Report table
	fmt.Fprint(f, `    <div class="card">
        <h2>Project Impact Report</h2>
        <table>
            <thead><tr><th>Metric</th><th style="text-align:right">Value</th><th>Unit</th></tr></thead>
            <tbody>
`)
	for _, row := range BuildReportRows(result, sym) {
		class := ""
		if row.Metric == "TOTAL SEASONAL REVENUE" {
			class = ` class="total"`
		}
		fmt.Fprintf(f, "                <tr%s><td>%s</td><td class=\"num\">%s</td><td>%s</td></tr>\n",
			class, row.Metric, row.Value, row.Unit)
	}
	fmt.Fprint(f, `            </tbody>
        </table>
    </div>
    <p class="footer">Standard IPCC 2019 emission factors &middot; linear model, no calibration against field data</p>
</div>
</body>
</html>
`)

	return nil
}
