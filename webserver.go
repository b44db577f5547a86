package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{
		config: config,
		addr:   addr,
	}
}

// APISimulateRequest carries the slider state for one computation
type APISimulateRequest struct {
	ConstantSet        string  `json:"constant_set"`
	AreaHectares       float64 `json:"area_hectares"`
	PaddyYieldKgPerHa  float64 `json:"paddy_yield_kg_per_ha"`
	GasifierEfficiency float64 `json:"gasifier_efficiency"`
	SeasonDays         int     `json:"season_days"`
}

// APISimulateResponse carries the full result plus the pre-formatted
// report table
type APISimulateResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Result  *SimulationResult `json:"result,omitempty"`
	Report  []APIReportRow    `json:"report,omitempty"`
}

// APIReportRow is one formatted line of the project report table
type APIReportRow struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
}

// APISweepResponse carries the area scalability series
type APISweepResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Points  []SweepPoint `json:"points,omitempty"`
}

// APIConstantSetInfo describes one selectable coefficient set
type APIConstantSetInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Model          string `json:"model"`
	UsesSeasonDays bool   `json:"uses_season_days"`
	HasPayback     bool   `json:"has_payback"`
}

func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/bg", ws.handleBackground)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/constant-sets", ws.handleConstantSets)
	mux.HandleFunc("/api/simulate", ws.handleSimulate)
	mux.HandleFunc("/api/sweep", ws.handleSweep)
	mux.HandleFunc("/api/export-csv", ws.handleExportCSV)
	mux.HandleFunc("/api/export-pdf", ws.handleExportPDF)
	return mux
}

// Start listens, opens the system browser and serves until the process
// exits
func (ws *WebServer) Start() error {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return err
	}

	url := serverURL(listener.Addr().String())
	log.Printf("Starting web server on %s", listener.Addr().String())
	log.Printf("Opening %s in your browser...", url)
	go openBrowser(url)

	return http.Serve(listener, ws.routes())
}

// StartForEmbedded starts the server and returns the URL and a cleanup
// function. Unlike Start(), this does NOT open the browser and does NOT
// block; the webview window owns the lifetime.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return "", nil, err
	}

	url = serverURL(listener.Addr().String())
	log.Printf("Embedded server on %s", url)

	go http.Serve(listener, ws.routes())

	return url, func() { listener.Close() }, nil
}

// serverURL turns a listen address into a browsable URL
func serverURL(actualAddr string) string {
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		return fmt.Sprintf("http://localhost:%s", port)
	}
	return fmt.Sprintf("http://%s", actualAddr)
}

func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, webUIHTML)
}

// handleBackground serves the optional dashboard background image. A 404
// here is normal: the UI falls back to a solid colour.
func (ws *WebServer) handleBackground(w http.ResponseWriter, r *http.Request) {
	path := ws.config.Output.BackgroundImage
	if path == "" {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("Background image %s not found, using fallback colour", path)
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// handleGetConfig returns the current configuration
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ws.config)
}

// handleConstantSets lists the selectable coefficient sets
func (ws *WebServer) handleConstantSets(w http.ResponseWriter, r *http.Request) {
	infos := make([]APIConstantSetInfo, 0, len(ConstantSets))
	for i := range ConstantSets {
		cs := &ConstantSets[i]
		infos = append(infos, APIConstantSetInfo{
			ID:             cs.ID,
			Name:           cs.Name,
			Description:    cs.Description,
			Model:          cs.Model.String(),
			UsesSeasonDays: cs.Model == TimeIntegrated,
			HasPayback:     cs.HasPaybackModel(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

// scenarioFromRequest resolves the request into an input and its
// coefficient set, applying config overrides
func (ws *WebServer) scenarioFromRequest(req *APISimulateRequest) (ScenarioInput, *ConstantSet, error) {
	cfg := *ws.config
	if req.ConstantSet != "" {
		cfg.ConstantSet = req.ConstantSet
	}
	set, err := cfg.ResolveConstantSet()
	if err != nil {
		return ScenarioInput{}, nil, err
	}
	in := ScenarioInput{
		AreaHectares:       req.AreaHectares,
		PaddyYieldKgPerHa:  req.PaddyYieldKgPerHa,
		GasifierEfficiency: req.GasifierEfficiency,
		SeasonDays:         req.SeasonDays,
	}
	return in, set, nil
}

// handleSimulate runs one computation for the posted slider state
func (ws *WebServer) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APISimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request: "+err.Error())
		return
	}

	in, set, err := ws.scenarioFromRequest(&req)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	result, err := Compute(in, set)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	resp := APISimulateResponse{Success: true, Result: &result}
	for _, row := range BuildReportRows(result, ws.config.Output.CurrencySymbol) {
		resp.Report = append(resp.Report, APIReportRow{Metric: row.Metric, Value: row.Value, Unit: row.Unit})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleSweep returns the scalability series for the posted slider state
func (ws *WebServer) handleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APISimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request: "+err.Error())
		return
	}

	in, set, err := ws.scenarioFromRequest(&req)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	points, err := AreaSweep(in, set, ws.config.Sweep.From, ws.config.Sweep.To, ws.config.Sweep.Step)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISweepResponse{Success: true, Points: points})
}

// requestFromQuery builds a simulate request from URL query parameters
// (used by the GET export endpoints so they work as plain links)
func requestFromQuery(r *http.Request) APISimulateRequest {
	q := r.URL.Query()
	parse := func(key string, def float64) float64 {
		if v, err := strconv.ParseFloat(q.Get(key), 64); err == nil {
			return v
		}
		return def
	}
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		days = 120
	}
	return APISimulateRequest{
		ConstantSet:        q.Get("set"),
		AreaHectares:       parse("area", 5),
		PaddyYieldKgPerHa:  parse("yield", 4500),
		GasifierEfficiency: parse("efficiency", 0.70),
		SeasonDays:         days,
	}
}

// handleExportCSV streams the report table as a CSV download
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)
	in, set, err := ws.scenarioFromRequest(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := Compute(in, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf("rice-husk-report-%s.csv", time.Now().Format("2006-01-02-150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	cw.Write([]string{"Metric", "Value", "Unit"})
	// CSV gets plain numbers, not display strings with currency symbols
	for _, row := range buildCSVRows(result) {
		cw.Write(row)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		// Headers are already sent, so the client sees a truncated file;
		// log it instead of trying to report a status.
		log.Printf("csv export: %v", err)
	}
}

// buildCSVRows builds machine-readable report rows
func buildCSVRows(r SimulationResult) [][]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	rows := [][]string{
		{"total_paddy_kg", f(r.TotalPaddyKg), "kg"},
		{"husk_mass_kg", f(r.HuskMassKg), "kg"},
		{"energy_kwh", f(r.EnergyKwh), "kWh"},
		{"biochar_mass_kg", f(r.BiocharMassKg), "kg"},
		{"methane_flooded_kg", f(r.MethaneFloodedKg), "kg"},
		{"methane_awd_kg", f(r.MethaneAwdKg), "kg"},
		{"methane_avoided_kg", f(r.MethaneAvoidedKg), "kg"},
		{"co2_equivalent_tons", f(r.CO2EquivalentTons), "tons"},
		{"revenue_electricity", f(r.Revenue.Electricity), "INR"},
		{"revenue_biochar", f(r.Revenue.Biochar), "INR"},
		{"revenue_carbon_credit", f(r.Revenue.CarbonCredit), "INR"},
		{"total_revenue", f(r.TotalRevenue), "INR"},
	}
	if r.HasPayback {
		rows = append(rows,
			[]string{"capacity_kw", f(r.CapacityKw), "kW"},
			[]string{"capex", f(r.CapexINR), "INR"},
			[]string{"opex", f(r.OpexINR), "INR"},
			[]string{"profit", f(r.ProfitINR), "INR"},
		)
		if r.PaybackDefined {
			rows = append(rows, []string{"payback_years", f(r.PaybackYears), "years"})
		} else {
			rows = append(rows, []string{"payback_years", "", "undefined"})
		}
	}
	return rows
}

// handleExportPDF streams a PDF report download
func (ws *WebServer) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)
	in, set, err := ws.scenarioFromRequest(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := Compute(in, set)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdfBytes, err := GeneratePDFBytes(result, set, ws.config)
	if err != nil {
		http.Error(w, "PDF generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("rice-husk-report-%s.pdf", time.Now().Format("2006-01-02-150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdfBytes)
}

func sendJSONError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(APISimulateResponse{
		Success: false,
		Error:   message,
	})
}

// openBrowser opens a URL or file in the default browser
func openBrowser(target string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
