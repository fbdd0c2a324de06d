package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Root is the liveness banner kept for uptime checkers that only follow "/".
func (ctrl *Controller) Root(c *gin.Context) {
	c.String(http.StatusOK, "Amazing Thailand 2025 Backend is running!")
}

// Healthz probes every backing service. Any failed probe turns the overall
// status to 503 so load balancers stop routing here.
func (ctrl *Controller) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if err := ctrl.Infra.Postgres.Ping(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	} else {
		checks["postgres"] = "ok"
	}

	if err := ctrl.Infra.Redis.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	if info, err := ctrl.Infra.Minio.ServerInfo(ctx); err != nil {
		checks["minio"] = err.Error()
		healthy = false
	} else {
		checks["minio"] = gin.H{
			"mode":    info.Mode,
			"servers": len(info.Servers),
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(status, gin.H{
		"status": overall,
		"checks": checks,
	})
}
