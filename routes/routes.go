package routes

import (
	"time"

	"apptchat/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	chat := r.Group("/chat")
	{
		chat.POST("", hb.ChatHandler)
		chat.GET("/history", hb.ChatHistoryHandler)
	}
}

// RegisterStaticRoutes registers the landing page.
func RegisterStaticRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterStaticRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
