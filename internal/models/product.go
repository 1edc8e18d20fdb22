package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductSize is a single purchasable size option with its own price.
type ProductSize struct {
	Size     string  `bson:"size" json:"size"`
	SizeType string  `bson:"sizeType,omitempty" json:"sizeType,omitempty"`
	Price    float64 `bson:"price" json:"price"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Category     StringList         `bson:"category" json:"category"`
	Sizes        []ProductSize      `bson:"sizes" json:"sizes"`
	Colours      []string           `bson:"colours,omitempty" json:"colours,omitempty"`
	Images       []string           `bson:"images" json:"images"`
	CountInStock int                `bson:"countInStock" json:"countInStock"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
