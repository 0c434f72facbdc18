package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"petshop-catalog/internal/metrics"
	"petshop-catalog/internal/models"
)

const (
	// ProductCollection is the single collection this service reads and writes.
	ProductCollection = "product"

	// maxListResults caps every listing query.
	maxListResults = 100

	// maxErrorLength bounds error text surfaced to clients.
	maxErrorLength = 80
)

// DocumentStore is the persistence gateway consumed by the handlers.
// Tests substitute an in-memory implementation.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

type ProductHandler struct {
	store DocumentStore
}

func NewProductHandler(store DocumentStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// ListProducts handles GET /api/products. Optional query parameters:
// animal (exact match) and q (case-insensitive substring over title,
// description and tags). At most 100 documents are returned and each
// identifier is coerced to a hex string.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := bson.M{}

	if animal := c.Query("animal"); animal != "" {
		filter["animal"] = animal
	}

	if q := c.Query("q"); q != "" {
		contains := bson.M{"$regex": q, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": contains},
			{"description": contains},
			{"tags": contains},
		}
	}

	items, err := h.store.GetDocuments(c.Request.Context(), ProductCollection, filter, maxListResults)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": truncateError(err)})
		return
	}

	// ObjectIDs are opaque to clients; hand them out as strings.
	for _, item := range items {
		if oid, ok := item["_id"].(primitive.ObjectID); ok {
			item["_id"] = oid.Hex()
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateProduct handles POST /api/products. The bound payload is the
// authoritative validation gate; defaults are applied before storage.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload models.ProductCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := payload.ToProduct()

	id, err := h.store.CreateDocument(c.Request.Context(), ProductCollection, product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": truncateError(err)})
		return
	}

	metrics.ProductsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorLength {
		msg = msg[:maxErrorLength]
	}
	return msg
}
