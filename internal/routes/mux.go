// Package routes
package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/recinall/IrrigoDash/pkg/utils"
)

func NewMux(app *App) http.Handler {
	mux := http.NewServeMux()

	// root redirects to the dashboard
	mux.HandleFunc("/", app.rootHandler)

	// dashboard page and its update endpoint
	mux.HandleFunc("/dash/", app.dashboardHandler)
	mux.HandleFunc("/dash/api/refresh", app.refreshHandler)

	// health check
	mux.HandleFunc("/healthz", app.healthHandler)

	// metrics
	mux.Handle("/metrics", promhttp.Handler())

	return utils.WithCORS(utils.WithRequestLogging(mux, app.logger))
}
