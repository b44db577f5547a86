package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Rice Husk Circular Economy Simulator

Converts farm parameters (area, paddy yield, gasifier efficiency, season
length) into energy, biochar, avoided-methane and revenue estimates, and
renders the results as cards, charts and a tabular report.

MODEL VERSIONS:
  Two published coefficient sets are available (-set flag or config):

  field-trial (default)
    Day-by-day methane accrual over the season (kg CH4/ha/day factors),
    carbon-credit revenue stream, no capital model.

  satem-2025
    Season-normalised emission factors (kg CH4/ha), separate generator
    efficiency term, CAPEX/OPEX/payback economics, no carbon revenue.

  The sets disagree on calorific value and biochar yield on purpose; they
  are separate published versions and are never merged.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Desktop window (embedded browser)
  %s -web                      Web server mode (opens external browser)
  %s -web -addr :8080          Web server on a specific port
  %s -console                  One-shot console report from config.yaml
  %s -console -set satem-2025  Console report with payback economics
  %s -console -area 25 -sweep  Override area, include scalability table
  %s -console -report out.html -pdf out.pdf -csv out.csv

Configuration:
  Edit config.yaml to change the default scenario, slider bounds, sweep
  range and coefficient overrides. Delete it to be prompted again.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	uiMode := flag.Bool("ui", false, "Embedded browser mode (webview window, default)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	webAddr := flag.String("addr", "localhost:0", "Web server address (for -web mode, use :0 for auto port)")
	consoleMode := flag.Bool("console", false, "One-shot console report instead of GUI")
	setID := flag.String("set", "", "Coefficient set ID (overrides config)")
	areaFlag := flag.Float64("area", 0, "Farm area in hectares (overrides config)")
	yieldFlag := flag.Float64("yield", 0, "Paddy yield in kg/ha (overrides config)")
	effFlag := flag.Float64("efficiency", 0, "Gasifier efficiency as a fraction (overrides config)")
	daysFlag := flag.Int("days", 0, "Season length in days (overrides config)")
	showSweep := flag.Bool("sweep", false, "Include the area scalability table in console output")
	htmlFile := flag.String("report", "", "Write an HTML report to this file")
	pdfFile := flag.String("pdf", "", "Write a PDF report to this file")
	csvFile := flag.String("csv", "", "Write the report table as CSV to this file")
	listSets := flag.Bool("list-sets", false, "List available coefficient sets and exit")
	flag.Parse()

	if *listSets {
		for _, cs := range ConstantSets {
			fmt.Printf("%-14s %s\n", cs.ID, cs.Name)
			fmt.Printf("%-14s   %s\n", "", cs.Description)
		}
		return
	}

	// Embedded browser mode
	if *uiMode {
		if err := runEmbeddedUI(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser)
	if *webMode {
		config, err := loadOrDefaultConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		server := NewWebServer(config, *webAddr)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Output flags imply console mode
	useConsole := *consoleMode || *showSweep || *htmlFile != "" || *pdfFile != "" ||
		*csvFile != "" || *setID != "" || *areaFlag > 0 || *yieldFlag > 0 ||
		*effFlag > 0 || *daysFlag > 0

	if useConsole {
		runConsoleMode(*configFile, *setID, *areaFlag, *yieldFlag, *effFlag, *daysFlag,
			*showSweep, *htmlFile, *pdfFile, *csvFile)
		return
	}

	// Default: GUI mode
	if err := runGUI(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		// Fall back to console mode if GUI fails
		fmt.Println("Falling back to console mode...")
		runConsoleMode(*configFile, *setID, *areaFlag, *yieldFlag, *effFlag, *daysFlag,
			*showSweep, *htmlFile, *pdfFile, *csvFile)
	}
}

// loadOrDefaultConfig loads the config file, falling back to the embedded
// defaults when the file does not exist
func loadOrDefaultConfig(configFile string) (*Config, error) {
	config, err := LoadConfig(configFile)
	if os.IsNotExist(err) {
		return LoadDefaultConfig()
	}
	return config, err
}

// runConsoleMode runs one computation and prints/writes the requested
// outputs
func runConsoleMode(configFile, setID string, area, yieldPerHa, efficiency float64,
	days int, showSweep bool, htmlFile, pdfFile, csvFile string) {

	config, err := LoadConfig(configFile)
	if os.IsNotExist(err) {
		// No config: build one interactively and save it for next time
		builder := NewInteractiveConfigBuilder()
		config = builder.BuildConfig()
		if err := builder.SaveConfig(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nConfiguration saved to %s\n\n", configFile)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command line overrides
	if setID != "" {
		config.ConstantSet = setID
	}
	if area > 0 {
		config.Scenario.AreaHectares = area
	}
	if yieldPerHa > 0 {
		config.Scenario.PaddyYieldKgPerHa = yieldPerHa
	}
	if efficiency > 0 {
		config.Scenario.GasifierEfficiency = efficiency
	}
	if days > 0 {
		config.Scenario.SeasonDays = days
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	set, err := config.ResolveConstantSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := Compute(config.Scenario.Input(), set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Computation error: %v\n", err)
		os.Exit(1)
	}

	PrintHeader(config, set)
	PrintResult(result, set, config)

	if showSweep {
		fmt.Println()
		points, err := AreaSweep(config.Scenario.Input(), set,
			config.Sweep.From, config.Sweep.To, config.Sweep.Step)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Sweep error: %v\n", err)
			os.Exit(1)
		}
		PrintSweepTable(points, config)
	}

	if htmlFile != "" {
		if err := GenerateHTMLReport(result, set, config, htmlFile); err != nil {
			fmt.Fprintf(os.Stderr, "HTML report error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nHTML report written to %s\n", htmlFile)
	}
	if pdfFile != "" {
		if err := GeneratePDFReport(result, set, config, pdfFile); err != nil {
			fmt.Fprintf(os.Stderr, "PDF report error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF report written to %s\n", pdfFile)
	}
	if csvFile != "" {
		if err := writeCSVReport(result, csvFile); err != nil {
			fmt.Fprintf(os.Stderr, "CSV report error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CSV report written to %s\n", csvFile)
	}
}

// writeCSVReport writes the machine-readable report table to a file
func writeCSVReport(result SimulationResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"Metric", "Value", "Unit"}); err != nil {
		return err
	}
	for _, row := range buildCSVRows(result) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
