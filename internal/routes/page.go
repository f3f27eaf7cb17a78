package routes

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/recinall/IrrigoDash/pkg/utils"
)

type dashboardData struct {
	Title      string
	RefreshURL string
	IntervalMS int
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(tmplDashboard))

func (app *App) renderDashboard(w http.ResponseWriter) {
	data := dashboardData{
		Title:      "Dashboard Telemetria",
		RefreshURL: DashboardPath + "api/refresh",
		IntervalMS: int(app.Config.GetRefreshInterval().Milliseconds()),
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		app.logger.Error().Err(err).Msg("failed to render dashboard")
		utils.ReplyInternalServerError(w, "failed to render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

const tmplDashboard = `<!DOCTYPE html>
<html lang="it">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css" rel="stylesheet">
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
<style>
body{background:#ffffff}
#graph{height:65vh}
#status .badge{font-size:.9rem}
</style>
</head>
<body>
<div class="container mt-4">
  <h1 class="mb-4">{{.Title}}</h1>
  <div class="row mb-3 align-items-center">
    <div class="col-md-4">
      <select id="sensor" class="form-select">
        <option value="">Seleziona sensore...</option>
      </select>
    </div>
    <div class="col-md-8" id="status"></div>
  </div>
  <div id="graph"></div>
</div>

<script>
var REFRESH_URL = {{.RefreshURL}};
var INTERVAL_MS = {{.IntervalMS}};
var selected = '';

function renderChart(chart) {
  var layout = {
    title: {text: chart.title || ''},
    plot_bgcolor: '#ffffff',
    paper_bgcolor: '#ffffff',
    hovermode: 'x unified',
    transition: {duration: chart.transition_ms || 0},
    xaxis: {title: {text: chart.x_label || ''}, gridcolor: '#eeeeee'},
    yaxis: {title: {text: chart.y_label || ''}, gridcolor: '#eeeeee'}
  };
  var traces = (chart.series || []).map(function (s) {
    return {
      name: s.name,
      x: s.points.map(function (p) { return p.timestamp; }),
      y: s.points.map(function (p) { return p.value; }),
      type: 'scatter',
      mode: 'lines',
      line: {color: chart.color || '#17a2b8'}
    };
  });
  Plotly.react('graph', traces, layout, {displayModeBar: false});
}

function renderOptions(options, current) {
  var sel = document.getElementById('sensor');
  var keep = '';
  sel.innerHTML = '';
  var ph = document.createElement('option');
  ph.value = '';
  ph.textContent = 'Seleziona sensore...';
  sel.appendChild(ph);
  (options || []).forEach(function (o) {
    var opt = document.createElement('option');
    opt.value = o.value;
    opt.textContent = o.label;
    if (o.value === current) keep = o.value;
    sel.appendChild(opt);
  });
  sel.value = keep;
  return keep;
}

function renderStatus(status) {
  var el = document.getElementById('status');
  if (!status) { el.innerHTML = ''; return; }
  var pump = status.pump_running
    ? '<span class="badge bg-success">Pompa accesa</span>'
    : '<span class="badge bg-secondary">Pompa spenta</span>';
  var valve = status.output_valve_open
    ? '<span class="badge bg-success">Valvola aperta</span>'
    : '<span class="badge bg-secondary">Valvola chiusa</span>';
  el.innerHTML = pump + ' ' + valve;
}

function refresh() {
  fetch(REFRESH_URL + '?sensor=' + encodeURIComponent(selected))
    .then(function (res) { return res.json(); })
    .then(function (body) {
      var data = body.data;
      selected = renderOptions(data.options, selected);
      renderChart(data.chart);
      renderStatus(data.status);
    })
    .catch(function (err) { console.error('refresh failed', err); });
}

document.getElementById('sensor').addEventListener('change', function (e) {
  selected = e.target.value;
  refresh();
});

refresh();
setInterval(refresh, INTERVAL_MS);
</script>
</body>
</html>
`
