package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusvoice/pkg/logger"
	"campusvoice/pkg/metrics"
)

func SetupRoutes(reviewHandler *ReviewHandler, adminHandler *AdminHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware("reviews-service"))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "reviews-service",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// public: student submission and admin key check
		api.POST("/reviews", reviewHandler.SubmitReview)
		api.POST("/admin/auth", adminHandler.Login)

		// bearer credential required; authorization happens in the services
		protected := api.Group("")
		protected.Use(RequireBearer())
		{
			protected.GET("/reviews", adminHandler.ListReviews)
			protected.PATCH("/admin/reviews", adminHandler.UpdateStatus)
			protected.DELETE("/reviews/:review_id", adminHandler.DeleteReview)
			protected.DELETE("/admin/auth", adminHandler.Logout)
		}
	}

	return router
}
