package catalog

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kunjcreation/internal/models"
)

// ErrNotFound reports that neither the products nor the accessories
// collection holds the requested ID. Callers treat it as "item unavailable",
// not as a server fault.
var ErrNotFound = errors.New("catalog entry not found")

// Entry is the common shape the order flow needs from a sellable item,
// regardless of which collection it lives in.
type Entry interface {
	EntryID() primitive.ObjectID
	DisplayName() string
	Stock() int
}

type productEntry struct {
	product models.Product
}

func (e productEntry) EntryID() primitive.ObjectID { return e.product.ID }
func (e productEntry) DisplayName() string         { return e.product.Name }
func (e productEntry) Stock() int                  { return e.product.CountInStock }

type accessoryEntry struct {
	accessory models.Accessory
}

func (e accessoryEntry) EntryID() primitive.ObjectID { return e.accessory.ID }
func (e accessoryEntry) DisplayName() string         { return e.accessory.Name }
func (e accessoryEntry) Stock() int                  { return e.accessory.CountInStock }

func collectionFor(entry Entry) string {
	if _, ok := entry.(accessoryEntry); ok {
		return "accessories"
	}
	return "products"
}

// CleanID strips the variant suffix the storefront appends to composite item
// IDs ("<id>-<variantTag>"), returning the bare catalog ID.
func CleanID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if idx := strings.Index(trimmed, "-"); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

// Lookup resolves catalog IDs against the products collection first and the
// accessories collection second; the two share one ID namespace.
type Lookup struct {
	db *mongo.Database
}

func NewLookup(db *mongo.Database) *Lookup {
	return &Lookup{db: db}
}

// FindByID resolves a cleaned catalog ID to its entry. A malformed or unknown
// ID yields ErrNotFound.
func (l *Lookup) FindByID(ctx context.Context, id string) (Entry, error) {
	objectID, err := primitive.ObjectIDFromHex(CleanID(id))
	if err != nil {
		return nil, ErrNotFound
	}

	var product models.Product
	err = l.db.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err == nil {
		return productEntry{product: product}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	var accessory models.Accessory
	err = l.db.Collection("accessories").FindOne(ctx, bson.M{"_id": objectID}).Decode(&accessory)
	if err == nil {
		return accessoryEntry{accessory: accessory}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	return nil, ErrNotFound
}

// ApplyDecrement re-resolves the entry and writes back its stock reduced by
// quantity, floored at zero. Runs after the order is persisted; a vanished
// entry is skipped silently because the order is already the source of truth.
func (l *Lookup) ApplyDecrement(ctx context.Context, id string, quantity int) error {
	entry, err := l.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	newStock := FlooredStock(entry.Stock(), quantity)

	_, err = l.db.Collection(collectionFor(entry)).UpdateOne(
		ctx,
		bson.M{"_id": entry.EntryID()},
		bson.M{"$set": bson.M{"countInStock": newStock}},
	)
	return err
}

// FlooredStock is the post-order stock value: current minus requested, never
// below zero. The floor caps concurrent overselling at empty, it does not
// prevent it.
func FlooredStock(current, quantity int) int {
	next := current - quantity
	if next < 0 {
		return 0
	}
	return next
}
