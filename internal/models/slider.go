package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlideImage is one entry of the storefront hero slider. Image is a URL on
// the external image host.
type SlideImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Image     string             `bson:"image" json:"image"`
	SortOrder int                `bson:"sortOrder" json:"sortOrder"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
