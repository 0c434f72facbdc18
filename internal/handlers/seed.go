package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"petshop-catalog/internal/metrics"
	"petshop-catalog/internal/models"
)

// DemoProducts returns the fixed demonstration dataset inserted by the
// seed endpoint.
func DemoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Neon Glow Collar",
			Price:       29.99,
			Category:    "Accessories",
			Description: "Rechargeable LED collar with rave-mode for night walks.",
			ImageURL:    "https://images.unsplash.com/photo-1543466835-00a7907e9de1?q=80&w=1200&auto=format&fit=crop",
			Animal:      "dogs",
			Colors:      []string{"neon-pink", "electric-blue", "lime"},
			Rating:      4.7,
			Tags:        []string{"neon", "glow", "night"},
			InStock:     true,
		},
		{
			Title:       "Catnip Disco Ball",
			Price:       18.5,
			Category:    "Toys",
			Description: "Sparkly orb that scatters rainbow reflections across the room.",
			ImageURL:    "https://images.unsplash.com/photo-1543852786-1cf6624b9987?q=80&w=1200&auto=format&fit=crop",
			Animal:      "cats",
			Colors:      []string{"holographic", "silver"},
			Rating:      4.6,
			Tags:        []string{"disco", "sparkle"},
			InStock:     true,
		},
		{
			Title:       "Tropical Reef Palace",
			Price:       89.0,
			Category:    "Aquarium",
			Description: "A vibrant coral-themed habitat with neon accents.",
			ImageURL:    "https://images.unsplash.com/photo-1518837695005-2083093ee35b?q=80&w=1200&auto=format&fit=crop",
			Animal:      "fish",
			Colors:      []string{"coral", "aqua", "purple"},
			Rating:      4.8,
			Tags:        []string{"reef", "aquatic", "premium"},
			InStock:     true,
		},
		{
			Title:       "Feather Carnival Wand",
			Price:       12.99,
			Category:    "Toys",
			Description: "Rainbow plume teaser for cats with bells and glitter ribbon.",
			ImageURL:    "https://images.unsplash.com/photo-1592194996308-7b43878e84a6?q=80&w=1200&auto=format&fit=crop",
			Animal:      "cats",
			Colors:      []string{"rainbow", "gold"},
			Rating:      4.4,
			Tags:        []string{"play", "rainbow"},
			InStock:     true,
		},
		{
			Title:       "Birdie Neon Gym",
			Price:       54.0,
			Category:    "Cages",
			Description: "Modular perch system with colorful beads and swings.",
			ImageURL:    "https://images.unsplash.com/photo-1535850836387-0f9dfce30846?q=80&w=1200&auto=format&fit=crop",
			Animal:      "birds",
			Colors:      []string{"neon-orange", "teal"},
			Rating:      4.5,
			Tags:        []string{"gym", "beads"},
			InStock:     true,
		},
	}
}

// SeedProducts handles POST /api/seed. Inserts the demo dataset once:
// if any product already exists the call is skipped without touching data.
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	existing, err := h.store.GetDocuments(c.Request.Context(), ProductCollection, bson.M{}, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": truncateError(err)})
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "message": "Products already exist"})
		return
	}

	inserted := 0
	for _, product := range DemoProducts() {
		if _, err := h.store.CreateDocument(c.Request.Context(), ProductCollection, product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": truncateError(err)})
			return
		}
		inserted++
		metrics.ProductsSeeded.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "inserted": inserted})
}
