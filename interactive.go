package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// InteractiveConfigBuilder walks the user through creating a config file
// when none exists
type InteractiveConfigBuilder struct {
	reader *bufio.Reader
	config *Config
}

// NewInteractiveConfigBuilder creates a builder seeded with the embedded
// defaults
func NewInteractiveConfigBuilder() *InteractiveConfigBuilder {
	config, err := LoadDefaultConfig()
	if err != nil {
		// The embedded default config is compiled in; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded default config invalid: %v", err))
	}
	return &InteractiveConfigBuilder{
		reader: bufio.NewReader(os.Stdin),
		config: config,
	}
}

// promptFloat asks for a float within [min, max], keeping the default on
// empty input
func (b *InteractiveConfigBuilder) promptFloat(label string, def, min, max float64) float64 {
	for {
		fmt.Printf("  %s [%g]: ", label, def)
		line, _ := b.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		val, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Printf("    Not a number, try again.\n")
			continue
		}
		if val < min || val > max {
			fmt.Printf("    Must be between %g and %g.\n", min, max)
			continue
		}
		return val
	}
}

// promptInt asks for a positive integer, keeping the default on empty input
func (b *InteractiveConfigBuilder) promptInt(label string, def, min, max int) int {
	for {
		fmt.Printf("  %s [%d]: ", label, def)
		line, _ := b.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		val, err := strconv.Atoi(line)
		if err != nil {
			fmt.Printf("    Not a whole number, try again.\n")
			continue
		}
		if val < min || val > max {
			fmt.Printf("    Must be between %d and %d.\n", min, max)
			continue
		}
		return val
	}
}

// promptChoice asks the user to pick one of the given options by number
func (b *InteractiveConfigBuilder) promptChoice(label string, options []string, def string) string {
	fmt.Printf("  %s:\n", label)
	defIdx := 1
	for i, opt := range options {
		fmt.Printf("    %d) %s\n", i+1, opt)
		if opt == def {
			defIdx = i + 1
		}
	}
	for {
		fmt.Printf("  Choice [%d]: ", defIdx)
		line, _ := b.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return options[defIdx-1]
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(options) {
			fmt.Printf("    Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return options[idx-1]
	}
}

// BuildConfig prompts for the farm scenario and the coefficient set
func (b *InteractiveConfigBuilder) BuildConfig() *Config {
	fmt.Println()
	fmt.Println("No configuration file found - let's create one.")
	fmt.Println()

	fmt.Println("Coefficient set:")
	var labels []string
	byLabel := map[string]string{}
	for _, cs := range ConstantSets {
		label := fmt.Sprintf("%s - %s", cs.Name, cs.Description)
		labels = append(labels, label)
		byLabel[label] = cs.ID
	}
	defLabel := labels[0]
	chosen := b.promptChoice("Which model version", labels, defLabel)
	b.config.ConstantSet = byLabel[chosen]

	set, _ := GetConstantSet(b.config.ConstantSet)

	fmt.Println()
	fmt.Println("Farm parameters:")
	b.config.Scenario.AreaHectares = b.promptFloat("Farm area (hectares)",
		b.config.Scenario.AreaHectares, b.config.Bounds.AreaMin, b.config.Bounds.AreaMax)
	b.config.Scenario.PaddyYieldKgPerHa = b.promptFloat("Paddy yield (kg/ha)",
		b.config.Scenario.PaddyYieldKgPerHa, b.config.Bounds.YieldMin, b.config.Bounds.YieldMax)
	b.config.Scenario.GasifierEfficiency = b.promptFloat("Gasifier efficiency (0-1)",
		b.config.Scenario.GasifierEfficiency, b.config.Bounds.EfficiencyMin, b.config.Bounds.EfficiencyMax)
	if set.Model == TimeIntegrated {
		b.config.Scenario.SeasonDays = b.promptInt("Season length (days)",
			b.config.Scenario.SeasonDays, 1, 366)
	}

	return b.config
}

// SaveConfig writes the built config to disk
func (b *InteractiveConfigBuilder) SaveConfig(filename string) error {
	return SaveConfig(b.config, filename)
}
