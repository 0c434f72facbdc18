package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default values applied when a creation payload omits the field.
const DefaultRating = 4.5

// Product is the canonical stored shape of a catalog entry.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Animal      string             `json:"animal,omitempty" bson:"animal,omitempty"`
	Colors      []string           `json:"colors" bson:"colors"`
	Rating      float64            `json:"rating" bson:"rating"`
	Tags        []string           `json:"tags" bson:"tags"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
}

// ProductCreate is the accepted creation payload. Title, price and category
// are required; price is a pointer so an explicit zero still satisfies the
// required rule.
type ProductCreate struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Animal      string   `json:"animal"`
	Colors      []string `json:"colors"`
	Rating      *float64 `json:"rating"`
	Tags        []string `json:"tags"`
	InStock     *bool    `json:"in_stock"`
}

// ToProduct normalizes a creation payload into the canonical shape,
// filling in defaults: rating 4.5, in_stock true, empty colors and tags.
func (pc *ProductCreate) ToProduct() Product {
	p := Product{
		Title:       pc.Title,
		Price:       *pc.Price,
		Category:    pc.Category,
		Description: pc.Description,
		ImageURL:    pc.ImageURL,
		Animal:      pc.Animal,
		Colors:      pc.Colors,
		Rating:      DefaultRating,
		Tags:        pc.Tags,
		InStock:     true,
	}
	if pc.Rating != nil {
		p.Rating = *pc.Rating
	}
	if pc.InStock != nil {
		p.InStock = *pc.InStock
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
