package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"petshop-catalog/internal/config"
)

const maxDiagnosticCollections = 10

// HealthHandler serves the liveness root and the database diagnostic.
// The database handle may be nil when the connection failed at startup.
type HealthHandler struct {
	cfg *config.Config
	db  *mongo.Database
}

func NewHealthHandler(cfg *config.Config, db *mongo.Database) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db}
}

// Root handles GET /. It never touches the database.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Extravagant Pet Shop Backend is live!"})
}

// Test handles GET /test. It probes the database and folds every failure
// into a human-readable status string; the endpoint itself never errors.
func (h *HealthHandler) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Available"
	if h.cfg.DatabaseURL != "" {
		resp["database_url"] = "✅ Set"
	} else {
		resp["database_url"] = "❌ Not Set"
	}
	resp["database_name"] = h.db.Name()
	resp["connection_status"] = "Connected"

	names, err := h.db.ListCollectionNames(c.Request.Context(), bson.M{})
	if err != nil {
		resp["database"] = fmt.Sprintf("⚠️ Connected but Error: %s", truncateError(err))
		c.JSON(http.StatusOK, resp)
		return
	}

	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	resp["collections"] = names
	resp["database"] = "✅ Connected & Working"

	c.JSON(http.StatusOK, resp)
}
