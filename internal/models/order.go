package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PagdiSelection is an optional turban add-on attached to a line item.
type PagdiSelection struct {
	Type  string  `bson:"type" json:"type"`
	Size  string  `bson:"size,omitempty" json:"size,omitempty"`
	Price float64 `bson:"price" json:"price"`
}

// OrderItem is a single line of an order. CatalogEntryID references either a
// product or an accessory; the two collections share one ID namespace.
type OrderItem struct {
	ItemCode       string          `bson:"itemCode,omitempty" json:"itemCode,omitempty"`
	CatalogEntryID string          `bson:"catalogEntryId" json:"catalogEntryId"`
	ProductName    string          `bson:"productName" json:"productName"`
	Quantity       int             `bson:"quantity" json:"quantity"`
	Size           string          `bson:"size,omitempty" json:"size,omitempty"`
	SizeType       string          `bson:"sizeType,omitempty" json:"sizeType,omitempty"`
	Price          float64         `bson:"price" json:"price"`
	Image          string          `bson:"image,omitempty" json:"image,omitempty"`
	Customization  string          `bson:"customization,omitempty" json:"customization,omitempty"`
	Colour         string          `bson:"colour,omitempty" json:"colour,omitempty"`
	PagdiSelection *PagdiSelection `bson:"pagdiSelection,omitempty" json:"pagdiSelection,omitempty"`
}

// Order is the persisted order document. OrderID is the human-readable code
// ({YY}{seq}{MM}), distinct from the Mongo _id.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	OrderItems    []OrderItem        `bson:"orderItems" json:"orderItems"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
