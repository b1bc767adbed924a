package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"citabot/handlers"
	"citabot/middleware"
)

// RegisterRoutes wires the transport endpoints.
func RegisterRoutes(r *gin.Engine, mh *handlers.MessageHandler, rh *handlers.ReservationsHandler) {
	r.Use(cors.Default())

	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/messages", middleware.RateLimitMiddleware(), mh.HandleInbound)
		api.GET("/reservations", rh.List)
		api.GET("/reservations/:date", rh.ListByDate)
	}
}
