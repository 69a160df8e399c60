package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine with recovery, request logging and CORS
func NewRouter(handler *Handler, origins []string, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, handler)
	return router
}

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)

		api.GET("/shell", handler.GetShell)
		api.POST("/shell/role", handler.SetRole)
		api.POST("/shell/view", handler.SetView)

		api.GET("/views/current", handler.GetCurrentView)
		api.GET("/views/:view", handler.GetView)

		api.GET("/map/geojson", handler.GetGeoJSON)
		api.GET("/collections/:name", handler.GetCollection)

		actions := api.Group("/actions")
		{
			actions.POST("/bookings/:id/approve", handler.ApproveBooking)
			actions.POST("/bookings/:id/reject", handler.RejectBooking)
			actions.POST("/complaints", handler.SubmitComplaint)
			actions.POST("/complaints/:id/resolve", handler.ResolveComplaint)
			actions.POST("/payments/:id/pay", handler.MakePayment)
			actions.POST("/expenses", handler.AddExpense)
			actions.POST("/properties", handler.AddProperty)
			actions.PUT("/properties/:id", handler.EditProperty)
			actions.DELETE("/properties/:id", handler.DeleteProperty)
		}
	}
}
