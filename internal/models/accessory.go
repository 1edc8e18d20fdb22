package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accessory is a jewelry-like catalog entry, optionally sold as part of a set.
type Accessory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Category     StringList         `bson:"category" json:"category"`
	Price        float64            `bson:"price" json:"price"`
	SetType      string             `bson:"setType,omitempty" json:"setType,omitempty"`
	Images       []string           `bson:"images" json:"images"`
	CountInStock int                `bson:"countInStock" json:"countInStock"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
