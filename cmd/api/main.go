package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"petshop-catalog/internal/config"
	"petshop-catalog/internal/database"
	"petshop-catalog/internal/handlers"
	"petshop-catalog/internal/logger"
	"petshop-catalog/internal/metrics"
	"petshop-catalog/internal/middleware"
	"petshop-catalog/internal/repository"
	"petshop-catalog/internal/routes"
)

func main() {
	logger.InitJSONLogger()

	cfg := config.LoadConfig()

	// The client may be nil; every dependent path degrades instead of
	// crashing.
	client := database.Connect(cfg.DatabaseURL)
	var db *mongo.Database
	if client != nil {
		db = client.Database(cfg.MongoDB)
	}

	store := repository.NewMongoStore(db)

	metrics.StartMetricsServer(cfg.MetricsPort)

	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.CORS())
	routes.RegisterRoutes(router, handlers.NewProductHandler(store), handlers.NewHealthHandler(cfg, db))

	slog.Info("server starting", slog.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
