// File: apptchat/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	HomeHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Chat endpoints
	ChatHandler        gin.HandlerFunc
	ChatHistoryHandler gin.HandlerFunc
}
