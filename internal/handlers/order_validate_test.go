package handlers

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"kunjcreation/internal/catalog"
	"kunjcreation/internal/models"
)

type fakeEntry struct {
	id    primitive.ObjectID
	name  string
	stock int
}

func (e fakeEntry) EntryID() primitive.ObjectID { return e.id }
func (e fakeEntry) DisplayName() string         { return e.name }
func (e fakeEntry) Stock() int                  { return e.stock }

type fakeResolver struct {
	entries map[string]fakeEntry
	looked  []string
}

func (r *fakeResolver) FindByID(ctx context.Context, id string) (catalog.Entry, error) {
	r.looked = append(r.looked, id)
	entry, ok := r.entries[catalog.CleanID(id)]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return entry, nil
}

func TestValidateStockAllItemsPass(t *testing.T) {
	resolver := &fakeResolver{entries: map[string]fakeEntry{
		"poshak1": {name: "Poshak Set", stock: 5},
		"mala1":   {name: "Pearl Mala", stock: 3},
	}}
	items := []models.OrderItem{
		{CatalogEntryID: "poshak1", ProductName: "Poshak Set", Quantity: 2},
		{CatalogEntryID: "mala1", ProductName: "Pearl Mala", Quantity: 3},
	}

	if err := validateStock(context.Background(), resolver, items); err != nil {
		t.Fatalf("expected validation to pass, got %v", err)
	}
	if len(resolver.looked) != 2 {
		t.Fatalf("expected both items resolved, got %d lookups", len(resolver.looked))
	}
}

func TestValidateStockUnknownItem(t *testing.T) {
	resolver := &fakeResolver{entries: map[string]fakeEntry{}}
	items := []models.OrderItem{
		{CatalogEntryID: "ghost1", ProductName: "Ghost Poshak", Quantity: 1},
	}

	err := validateStock(context.Background(), resolver, items)

	var notFoundErr itemNotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected itemNotFoundError, got %v", err)
	}
	if notFoundErr.ProductName != "Ghost Poshak" {
		t.Fatalf("expected error to name the missing product, got %q", notFoundErr.ProductName)
	}
}

func TestValidateStockUnknownItemFallsBackToID(t *testing.T) {
	resolver := &fakeResolver{entries: map[string]fakeEntry{}}
	items := []models.OrderItem{
		{CatalogEntryID: "ghost1", Quantity: 1},
	}

	err := validateStock(context.Background(), resolver, items)

	var notFoundErr itemNotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected itemNotFoundError, got %v", err)
	}
	if notFoundErr.ProductName != "ghost1" {
		t.Fatalf("expected error to fall back to the catalog ID, got %q", notFoundErr.ProductName)
	}
}

func TestValidateStockShortfallCarriesCounts(t *testing.T) {
	resolver := &fakeResolver{entries: map[string]fakeEntry{
		"mala1": {name: "Pearl Mala", stock: 2},
	}}
	items := []models.OrderItem{
		{CatalogEntryID: "mala1", ProductName: "Pearl Mala", Quantity: 5},
	}

	err := validateStock(context.Background(), resolver, items)

	var stockErr insufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected insufficientStockError, got %v", err)
	}
	if stockErr.ProductName != "Pearl Mala" || stockErr.Available != 2 || stockErr.Requested != 5 {
		t.Fatalf("unexpected error detail: %+v", stockErr)
	}
}

// A cart with a valid product and an out-of-stock accessory is rejected as a
// whole: the error names the accessory and no stock is touched anywhere,
// because validation finishes before any write begins.
func TestValidateStockRejectsWholeMixedCart(t *testing.T) {
	resolver := &fakeResolver{entries: map[string]fakeEntry{
		"poshak1": {name: "Poshak Set", stock: 5},
		"mala1":   {name: "Pearl Mala", stock: 0},
	}}
	items := []models.OrderItem{
		{CatalogEntryID: "poshak1", ProductName: "Poshak Set", Quantity: 2},
		{CatalogEntryID: "mala1", ProductName: "Pearl Mala", Quantity: 1},
	}

	err := validateStock(context.Background(), resolver, items)

	var stockErr insufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected insufficientStockError, got %v", err)
	}
	if stockErr.ProductName != "Pearl Mala" {
		t.Fatalf("expected the accessory to be named, got %q", stockErr.ProductName)
	}
	if stockErr.Available != 0 || stockErr.Requested != 1 {
		t.Fatalf("unexpected counts: %+v", stockErr)
	}
	if resolver.entries["poshak1"].stock != 5 {
		t.Fatalf("expected product stock untouched, got %d", resolver.entries["poshak1"].stock)
	}
}
