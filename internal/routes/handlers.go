package routes

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/recinall/IrrigoDash/pkg/utils"
)

// DashboardPath is where the interactive page lives. The root path only
// redirects here.
const DashboardPath = "/dash/"

func (app *App) rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		utils.ReplyNotFound(w, "not found")
		return
	}
	http.Redirect(w, r, DashboardPath, http.StatusFound)
}

func (app *App) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != DashboardPath {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		utils.ReplyMethodNotAllowed(w)
		return
	}

	app.renderDashboard(w)
}

func (app *App) refreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.ReplyMethodNotAllowed(w)
		return
	}

	selected := r.URL.Query().Get("sensor")

	res := app.Rebuilder.Rebuild(r.Context(), selected)

	utils.ReplyJSON(w, http.StatusOK, utils.Body{
		"data": res,
	})
}

func (app *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	body := utils.Body{
		"state": "healthy",
	}

	if latest := app.Refresher.Latest(); latest != nil {
		body["last_refresh"] = latest.At.Format(time.RFC3339)
		body["last_refresh_age"] = humanize.Time(latest.At)
		body["rows"] = latest.Rows
	}

	utils.ReplyJSON(w, http.StatusOK, body)
}
