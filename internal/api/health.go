package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"newskoop/newsroom/internal/common"
)

type serviceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type healthData struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]serviceStatus `json:"services"`
}

// HealthCheckHandler handles GET /health
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]serviceStatus)

		pgStatus := "ok"
		pgDetails := "postgres connected"
		if err := db.PingContext(r.Context()); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		statuses["postgres"] = serviceStatus{Status: pgStatus, Details: pgDetails}

		overall := "ok"
		code := http.StatusOK
		for _, s := range statuses {
			if s.Status != "ok" {
				overall = "down"
				code = http.StatusServiceUnavailable
				break
			}
		}

		common.RespondSuccess(w, "health check", healthData{
			Status:   overall,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: statuses,
		}, code)
	}
}
