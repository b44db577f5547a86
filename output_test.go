package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹ 0"},
		{950, "₹ 950"},
		{135988, "₹ 135,988"},
		{3118500, "₹ 3,118,500"},
	}
	for _, c := range cases {
		if got := FormatMoney("₹", c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCO2CardValue_UnitPerModel(t *testing.T) {
	ftSet, _ := GetConstantSet("field-trial")
	ft, err := Compute(ScenarioInput{AreaHectares: 5, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.70, SeasonDays: 120}, ftSet)
	if err != nil {
		t.Fatal(err)
	}
	if got := co2CardValue(ft, ftSet.Model); got != "9.24 tons" {
		t.Errorf("time-integrated card = %q, want %q", got, "9.24 tons")
	}

	satSet, _ := GetConstantSet("satem-2025")
	sat, err := Compute(ScenarioInput{AreaHectares: 50, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.70}, satSet)
	if err != nil {
		t.Fatal(err)
	}
	if got := co2CardValue(sat, satSet.Model); got != "19,600 kg" {
		t.Errorf("flat-factor card = %q, want %q", got, "19,600 kg")
	}
}

func TestBarCell_FixedRuneWidth(t *testing.T) {
	const width = 44
	for _, n := range []int{0, 1, 22, 44, 50, -3} {
		cell := barCell(n, width)
		if got := utf8.RuneCountInString(cell); got != width {
			t.Errorf("barCell(%d, %d) is %d runes wide, want %d", n, width, got, width)
		}
	}
	if got := strings.Count(barCell(22, width), "█"); got != 22 {
		t.Errorf("barCell(22, 44) has %d blocks, want 22", got)
	}
	if !strings.HasSuffix(barCell(1, width), strings.Repeat(" ", width-1)) {
		t.Error("barCell(1, 44) not space-padded to the column width")
	}
}

func TestBuildReportRows_FieldTrial(t *testing.T) {
	set, _ := GetConstantSet("field-trial")
	r, err := Compute(ScenarioInput{AreaHectares: 5, PaddyYieldKgPerHa: 4500, GasifierEfficiency: 0.70, SeasonDays: 120}, set)
	if err != nil {
		t.Fatal(err)
	}

	rows := BuildReportRows(r, "₹")

	var metrics []string
	for _, row := range rows {
		metrics = append(metrics, row.Metric)
	}
	joined := strings.Join(metrics, "|")
	for _, want := range []string{"Input Biomass", "Clean Energy", "Carbon Credit Revenue", "TOTAL SEASONAL REVENUE"} {
		if !strings.Contains(joined, want) {
			t.Errorf("report rows missing %q: %v", want, metrics)
		}
	}
	// No capital model in this set
	if strings.Contains(joined, "Payback") {
		t.Error("field-trial report should not contain payback rows")
	}
}

func TestBuildReportRows_PaybackSentinelRendering(t *testing.T) {
	set, _ := GetConstantSet("satem-2025")
	r, err := Compute(ScenarioInput{AreaHectares: 1, PaddyYieldKgPerHa: 2000, GasifierEfficiency: 0.40}, set)
	if err != nil {
		t.Fatal(err)
	}
	if r.PaybackDefined {
		t.Fatal("test premise broken: payback should be undefined")
	}

	rows := BuildReportRows(r, "₹")
	var paybackRow *ReportRow
	for i := range rows {
		if rows[i].Metric == "Payback Period" {
			paybackRow = &rows[i]
		}
	}
	if paybackRow == nil {
		t.Fatal("payback row missing")
	}
	if paybackRow.Unit != "undefined" || paybackRow.Value != "—" {
		t.Errorf("undefined payback rendered as %q / %q", paybackRow.Value, paybackRow.Unit)
	}
}
