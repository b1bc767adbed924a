package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"citabot/utils"
)

// HealthHandler reports the latest health snapshot of mongo and redis.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
