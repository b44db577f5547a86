package main

// webUIHTML is the embedded web interface. It is a self-contained page:
// sliders on the left, metric cards, the two charts and the report table
// on the right, all recomputed on every input event via /api/simulate and
// /api/sweep. Charts are drawn as inline SVG, no frontend dependencies.
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rice Husk Circular Economy Simulator</title>
    <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'%3E%3Cpath d='M32 6 C38 18 38 30 32 58 C26 30 26 18 32 6 Z' fill='%234CAF50'/%3E%3Cpath d='M32 20 C22 24 16 32 14 44 C24 42 30 34 32 26 Z' fill='%232cc985'/%3E%3Cpath d='M32 20 C42 24 48 32 50 44 C40 42 34 34 32 26 Z' fill='%232cc985'/%3E%3C/svg%3E">
    <style>
        :root {
            --primary: #2cc985;
            --primary-dark: #16a34a;
            --accent: #1e90ff;
            --danger: #ff4b4b;
            --gold: #e5b92e;
            --bg: #f1f5f9;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            background-size: cover;
            background-position: center;
            color: var(--text);
            line-height: 1.6;
        }
        .header {
            background: linear-gradient(135deg, var(--primary-dark) 0%, var(--primary) 100%);
            color: white;
            padding: 1.25rem 2rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .header h1 { font-size: 1.5rem; font-weight: 600; }
        .header p { opacity: 0.9; font-size: 0.875rem; }
        .container {
            display: flex;
            height: calc(100vh - 84px);
            overflow: hidden;
        }
        .config-panel {
            width: 340px;
            min-width: 340px;
            background: var(--card-bg);
            border-right: 1px solid var(--border);
            overflow-y: auto;
            padding: 1rem;
        }
        .results-panel {
            flex: 1;
            overflow-y: auto;
            padding: 1rem;
        }
        .card {
            background: var(--card-bg);
            border-radius: 10px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1rem;
            margin-bottom: 1rem;
        }
        .card h2 {
            font-size: 0.9rem;
            font-weight: 600;
            margin-bottom: 0.75rem;
            color: var(--primary-dark);
        }
        .grid { display: grid; gap: 1rem; }
        .grid-2 { grid-template-columns: 1fr 1fr; }
        .grid-4 { grid-template-columns: repeat(4, 1fr); }
        @media (max-width: 1100px) {
            .grid-2, .grid-4 { grid-template-columns: 1fr; }
        }
        .metric-card {
            background: var(--card-bg);
            border-radius: 10px;
            border-left: 6px solid var(--primary);
            box-shadow: 0 2px 8px rgba(0,0,0,0.08);
            padding: 1rem;
            text-align: center;
        }
        .metric-card.gold { border-left-color: var(--gold); }
        .metric-card.red { border-left-color: var(--danger); }
        .metric-card.blue { border-left-color: var(--accent); }
        .metric-label { font-size: 0.8rem; font-weight: 600; color: var(--text-muted); }
        .metric-value { font-size: 1.5rem; font-weight: 700; }
        .form-group { margin-bottom: 1rem; }
        .form-group label {
            display: flex;
            justify-content: space-between;
            font-size: 0.8rem;
            font-weight: 600;
            color: var(--text-muted);
            margin-bottom: 0.25rem;
        }
        .form-group label span.val { color: var(--primary-dark); font-size: 0.95rem; }
        input[type=range] { width: 100%; accent-color: var(--primary); }
        input[type=number], select {
            width: 100%;
            padding: 0.4rem;
            border: 1px solid var(--border);
            border-radius: 6px;
            font-size: 0.85rem;
        }
        .set-desc { font-size: 0.72rem; color: var(--text-muted); margin-top: 0.25rem; }
        table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
        th, td { padding: 0.4rem 0.6rem; text-align: left; border-bottom: 1px solid var(--border); }
        th { color: var(--text-muted); font-weight: 600; font-size: 0.75rem; text-transform: uppercase; }
        tr.total td { font-weight: 700; border-top: 2px solid var(--primary); }
        td.num { text-align: right; font-variant-numeric: tabular-nums; }
        .payback-line {
            text-align: center;
            font-style: italic;
            color: var(--text-muted);
            margin: 0.5rem 0 1rem;
        }
        .export-row { display: flex; gap: 0.5rem; }
        .export-row a {
            flex: 1;
            text-align: center;
            padding: 0.5rem;
            background: var(--primary-dark);
            color: white;
            border-radius: 6px;
            text-decoration: none;
            font-size: 0.8rem;
        }
        .export-row a:hover { background: var(--primary); }
        .error-banner {
            display: none;
            background: #fef2f2;
            color: var(--danger);
            border: 1px solid var(--danger);
            border-radius: 6px;
            padding: 0.5rem 1rem;
            margin-bottom: 1rem;
            font-size: 0.85rem;
        }
        svg text { font-family: inherit; }
    </style>
</head>
<body>
    <div class="header">
        <h1>🌾 Rice Husk Circular Economy Simulator</h1>
        <p>Integrated Bio-Energy &amp; Carbon Mitigation System</p>
    </div>
    <div class="container">
        <div class="config-panel">
            <div class="card">
                <h2>Model Version</h2>
                <div class="form-group">
                    <select id="in-set"></select>
                    <div class="set-desc" id="set-desc"></div>
                </div>
            </div>
            <div class="card">
                <h2>🚜 Farm Parameters</h2>
                <div class="form-group">
                    <label>Farm Area (Hectares) <span class="val" id="lbl-area">5 ha</span></label>
                    <input type="range" id="in-area" min="1" max="50" step="1" value="5">
                </div>
                <div class="form-group">
                    <label>Paddy Yield (kg/ha) <span class="val" id="lbl-yield">4,500 kg</span></label>
                    <input type="range" id="in-yield" min="2000" max="8000" step="100" value="4500">
                </div>
            </div>
            <div class="card">
                <h2>⚙️ Tech Parameters</h2>
                <div class="form-group">
                    <label>Gasifier Efficiency <span class="val" id="lbl-eff">70%</span></label>
                    <input type="range" id="in-eff" min="40" max="90" step="1" value="70">
                </div>
                <div class="form-group" id="group-days">
                    <label>Season Length (Days)</label>
                    <input type="number" id="in-days" min="1" max="366" value="120">
                </div>
            </div>
            <div class="card">
                <h2>Export</h2>
                <div class="export-row">
                    <a id="export-csv" href="#">⬇ CSV</a>
                    <a id="export-pdf" href="#">⬇ PDF</a>
                </div>
            </div>
        </div>
        <div class="results-panel">
            <div class="error-banner" id="error-banner"></div>
            <div class="grid grid-4" style="margin-bottom:1rem">
                <div class="metric-card">
                    <div class="metric-label">⚡ Net Energy Output</div>
                    <div class="metric-value" id="card-energy">–</div>
                </div>
                <div class="metric-card gold">
                    <div class="metric-label">🔥 Biochar Produced</div>
                    <div class="metric-value" id="card-biochar">–</div>
                </div>
                <div class="metric-card red">
                    <div class="metric-label">💨 CO2 Equivalent Avoided</div>
                    <div class="metric-value" id="card-co2">–</div>
                </div>
                <div class="metric-card blue">
                    <div class="metric-label">💰 Total Revenue</div>
                    <div class="metric-value" id="card-revenue">–</div>
                </div>
            </div>
            <div class="payback-line" id="payback-line" style="display:none"></div>
            <div class="grid grid-2">
                <div class="card">
                    <h2>📉 Emissions Comparison</h2>
                    <svg id="bar-chart" viewBox="0 0 420 260" width="100%"></svg>
                </div>
                <div class="card">
                    <h2>📈 Scalability &amp; Revenue (1–50 ha)</h2>
                    <svg id="line-chart" viewBox="0 0 420 260" width="100%"></svg>
                </div>
            </div>
            <div class="card">
                <h2>📋 Project Impact Report</h2>
                <table>
                    <thead><tr><th>Metric</th><th style="text-align:right">Value</th><th>Unit</th></tr></thead>
                    <tbody id="report-body"></tbody>
                </table>
            </div>
        </div>
    </div>

    <script>
        var sets = [];
        var currentSet = null;

        function fmt(n, d) {
            return n.toLocaleString('en-IN', {maximumFractionDigits: d === undefined ? 0 : d});
        }

        function buildRequest() {
            return {
                constant_set: document.getElementById('in-set').value,
                area_hectares: parseFloat(document.getElementById('in-area').value),
                paddy_yield_kg_per_ha: parseFloat(document.getElementById('in-yield').value),
                gasifier_efficiency: parseFloat(document.getElementById('in-eff').value) / 100,
                season_days: parseInt(document.getElementById('in-days').value, 10) || 120
            };
        }

        function updateLabels(req) {
            document.getElementById('lbl-area').textContent = fmt(req.area_hectares) + ' ha';
            document.getElementById('lbl-yield').textContent = fmt(req.paddy_yield_kg_per_ha) + ' kg';
            document.getElementById('lbl-eff').textContent = Math.round(req.gasifier_efficiency * 100) + '%';
        }

        function updateExportLinks(req) {
            var q = '?set=' + encodeURIComponent(req.constant_set) +
                '&area=' + req.area_hectares +
                '&yield=' + req.paddy_yield_kg_per_ha +
                '&efficiency=' + req.gasifier_efficiency +
                '&days=' + req.season_days;
            document.getElementById('export-csv').href = '/api/export-csv' + q;
            document.getElementById('export-pdf').href = '/api/export-pdf' + q;
        }

        function showError(msg) {
            var banner = document.getElementById('error-banner');
            if (!msg) { banner.style.display = 'none'; return; }
            banner.textContent = msg;
            banner.style.display = 'block';
        }

        function renderCards(res) {
            var r = res.result;
            document.getElementById('card-energy').textContent = fmt(r.energy_kwh) + ' kWh';
            document.getElementById('card-biochar').textContent = fmt(r.biochar_mass_kg) + ' kg';
            if (currentSet && currentSet.uses_season_days) {
                document.getElementById('card-co2').textContent = fmt(r.co2_equivalent_tons, 2) + ' t';
            } else {
                document.getElementById('card-co2').textContent = fmt(r.co2_equivalent_kg) + ' kg';
            }
            document.getElementById('card-revenue').textContent = '₹ ' + fmt(r.total_revenue);

            var pb = document.getElementById('payback-line');
            if (r.has_payback) {
                pb.style.display = 'block';
                if (!r.payback_defined) {
                    pb.textContent = 'Est. Payback Period: no payback at current scale';
                } else if (r.payback_years > 10) {
                    pb.textContent = 'Est. Payback Period: > 10 years';
                } else {
                    pb.textContent = 'Est. Payback Period: ' + r.payback_years.toFixed(1) + ' years';
                }
            } else {
                pb.style.display = 'none';
            }
        }

        function renderReport(res) {
            var body = document.getElementById('report-body');
            body.innerHTML = '';
            res.report.forEach(function(row) {
                var tr = document.createElement('tr');
                if (row.metric.indexOf('TOTAL') === 0) tr.className = 'total';
                var tds = [row.metric, row.value, row.unit];
                tds.forEach(function(v, i) {
                    var td = document.createElement('td');
                    if (i === 1) td.className = 'num';
                    td.textContent = v;
                    tr.appendChild(td);
                });
                body.appendChild(tr);
            });
        }

        function renderBarChart(res) {
            var r = res.result;
            var svg = document.getElementById('bar-chart');
            var W = 420, H = 260, pad = 40;
            var vals = [r.methane_flooded_kg, r.methane_awd_kg];
            var labels = ['Flooded (Conventional)', 'AWD (Proposed)'];
            var colors = ['#ff9999', '#66b3ff'];
            var max = Math.max(vals[0], vals[1], 1);
            var out = '';
            var barW = 100;
            for (var i = 0; i < 2; i++) {
                var h = (H - 2 * pad) * vals[i] / max;
                var x = pad + 60 + i * 170;
                var y = H - pad - h;
                out += '<rect x="' + x + '" y="' + y + '" width="' + barW + '" height="' + h + '" rx="4" fill="' + colors[i] + '"/>';
                out += '<text x="' + (x + barW / 2) + '" y="' + (y - 6) + '" text-anchor="middle" font-size="13" font-weight="bold" fill="#1e293b">' + fmt(vals[i]) + ' kg</text>';
                out += '<text x="' + (x + barW / 2) + '" y="' + (H - pad + 16) + '" text-anchor="middle" font-size="11" fill="#64748b">' + labels[i] + '</text>';
            }
            out += '<line x1="' + pad + '" y1="' + (H - pad) + '" x2="' + (W - 20) + '" y2="' + (H - pad) + '" stroke="#e2e8f0"/>';
            out += '<text x="14" y="' + (H / 2) + '" transform="rotate(-90 14 ' + (H / 2) + ')" text-anchor="middle" font-size="11" fill="#64748b">Methane Emissions (kg)</text>';
            svg.innerHTML = out;
        }

        function renderLineChart(points) {
            var svg = document.getElementById('line-chart');
            var W = 420, H = 260, padL = 46, padR = 56, padT = 16, padB = 36;
            if (!points || points.length === 0) { svg.innerHTML = ''; return; }
            var maxCO2 = 0, maxRev = 0, maxArea = 0, minArea = points[0].area_hectares;
            points.forEach(function(p) {
                if (p.co2_offset_tons > maxCO2) maxCO2 = p.co2_offset_tons;
                if (p.revenue_inr > maxRev) maxRev = p.revenue_inr;
                if (p.area_hectares > maxArea) maxArea = p.area_hectares;
            });
            maxCO2 = maxCO2 || 1; maxRev = maxRev || 1;
            var plotW = W - padL - padR, plotH = H - padT - padB;
            function sx(a) { return padL + plotW * (a - minArea) / (maxArea - minArea || 1); }
            function syL(v) { return padT + plotH * (1 - v / maxCO2); }
            function syR(v) { return padT + plotH * (1 - v / maxRev); }

            var out = '';
            // gridlines
            for (var g = 0; g <= 4; g++) {
                var gy = padT + plotH * g / 4;
                out += '<line x1="' + padL + '" y1="' + gy + '" x2="' + (W - padR) + '" y2="' + gy + '" stroke="#e2e8f0"/>';
                out += '<text x="' + (padL - 6) + '" y="' + (gy + 4) + '" text-anchor="end" font-size="10" fill="#16a34a">' + fmt(maxCO2 * (4 - g) / 4, 1) + '</text>';
                out += '<text x="' + (W - padR + 6) + '" y="' + (gy + 4) + '" font-size="10" fill="#1e90ff">' + fmt(maxRev * (4 - g) / 4) + '</text>';
            }
            var co2Path = '', revPath = '', marks = '';
            points.forEach(function(p, i) {
                var cmd = (i === 0 ? 'M' : 'L');
                co2Path += cmd + sx(p.area_hectares) + ' ' + syL(p.co2_offset_tons) + ' ';
                revPath += cmd + sx(p.area_hectares) + ' ' + syR(p.revenue_inr) + ' ';
                marks += '<circle cx="' + sx(p.area_hectares) + '" cy="' + syL(p.co2_offset_tons) + '" r="3" fill="#16a34a"/>';
                marks += '<rect x="' + (sx(p.area_hectares) - 3) + '" y="' + (syR(p.revenue_inr) - 3) + '" width="6" height="6" fill="#1e90ff"/>';
            });
            out += '<path d="' + co2Path + '" fill="none" stroke="#16a34a" stroke-width="2"/>';
            out += '<path d="' + revPath + '" fill="none" stroke="#1e90ff" stroke-width="2" stroke-dasharray="6 4"/>';
            out += marks;
            out += '<text x="' + (W / 2) + '" y="' + (H - 6) + '" text-anchor="middle" font-size="11" fill="#64748b">Farm Area (Hectares)</text>';
            out += '<text x="12" y="' + (H / 2) + '" transform="rotate(-90 12 ' + (H / 2) + ')" text-anchor="middle" font-size="11" fill="#16a34a">CO2 Offset (Tons)</text>';
            out += '<text x="' + (W - 10) + '" y="' + (H / 2) + '" transform="rotate(90 ' + (W - 10) + ' ' + (H / 2) + ')" text-anchor="middle" font-size="11" fill="#1e90ff">Revenue (INR)</text>';
            svg.innerHTML = out;
        }

        async function runSimulation() {
            var req = buildRequest();
            updateLabels(req);
            updateExportLinks(req);
            try {
                var resp = await fetch('/api/simulate', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify(req)
                });
                var data = await resp.json();
                if (!data.success) { showError(data.error); return; }
                showError(null);
                renderCards(data);
                renderReport(data);
                renderBarChart(data);

                var sweepResp = await fetch('/api/sweep', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify(req)
                });
                var sweep = await sweepResp.json();
                if (sweep.success) renderLineChart(sweep.points);
            } catch (e) {
                showError('Simulation failed: ' + e);
            }
        }

        function onSetChanged() {
            var id = document.getElementById('in-set').value;
            currentSet = sets.find(function(s) { return s.id === id; }) || null;
            if (currentSet) {
                document.getElementById('set-desc').textContent = currentSet.description;
                document.getElementById('group-days').style.display =
                    currentSet.uses_season_days ? 'block' : 'none';
            }
            runSimulation();
        }

        function applyBounds(cfg) {
            var area = document.getElementById('in-area');
            area.min = cfg.bounds.area_min; area.max = cfg.bounds.area_max;
            area.value = cfg.scenario.area_hectares;
            var yld = document.getElementById('in-yield');
            yld.min = cfg.bounds.yield_min; yld.max = cfg.bounds.yield_max;
            yld.value = cfg.scenario.paddy_yield_kg_per_ha;
            var eff = document.getElementById('in-eff');
            eff.min = Math.round(cfg.bounds.efficiency_min * 100);
            eff.max = Math.round(cfg.bounds.efficiency_max * 100);
            eff.value = Math.round(cfg.scenario.gasifier_efficiency * 100);
            document.getElementById('in-days').value = cfg.scenario.season_days;
        }

        function applyBackground() {
            // Optional background image; a missing file leaves the solid
            // colour in place.
            var img = new Image();
            img.onload = function() {
                document.body.style.backgroundImage =
                    'linear-gradient(rgba(241,245,249,0.92), rgba(241,245,249,0.92)), url(/bg)';
            };
            img.src = '/bg';
        }

        async function init() {
            applyBackground();
            var cfg = await (await fetch('/api/config')).json();
            applyBounds(cfg);
            sets = await (await fetch('/api/constant-sets')).json();
            var sel = document.getElementById('in-set');
            sets.forEach(function(s) {
                var opt = document.createElement('option');
                opt.value = s.id;
                opt.textContent = s.name;
                sel.appendChild(opt);
            });
            sel.value = cfg.constant_set;
            if (!sets.find(function(s) { return s.id === sel.value; })) sel.value = sets[0].id;
            sel.addEventListener('change', onSetChanged);
            ['in-area', 'in-yield', 'in-eff'].forEach(function(id) {
                document.getElementById(id).addEventListener('input', runSimulation);
            });
            document.getElementById('in-days').addEventListener('change', runSimulation);
            onSetChanged();
        }

        init();
    </script>
</body>
</html>
`
