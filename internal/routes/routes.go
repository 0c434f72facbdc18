package routes

import (
	"github.com/gin-gonic/gin"

	"petshop-catalog/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, products *handlers.ProductHandler, health *handlers.HealthHandler) {
	router.GET("/", health.Root)
	router.GET("/test", health.Test)

	api := router.Group("/api")
	{
		api.GET("/products", products.ListProducts)
		api.POST("/products", products.CreateProduct)
		api.POST("/seed", products.SeedProducts)
	}
}
