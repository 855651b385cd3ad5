package handlers

import (
	"net/http"

	"apptchat/utils"
	"apptchat/web"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the static landing page.
func HomeHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// NewHealthHandler reports the latest snapshot of the background health monitor.
func NewHealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": monitor.Status()})
	}
}
