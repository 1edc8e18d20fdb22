package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kunjcreation/internal/catalog"
	"kunjcreation/internal/middleware"
	"kunjcreation/internal/models"
	"kunjcreation/internal/sequence"
)

const orderCounterName = "orderId"

type insufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e insufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

type itemNotFoundError struct {
	ProductName string
}

func (e itemNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductName)
}

// entryResolver is the lookup seam the validator needs; *catalog.Lookup
// satisfies it against the live collections.
type entryResolver interface {
	FindByID(ctx context.Context, id string) (catalog.Entry, error)
}

// validateStock resolves every item and checks requested quantity against
// current stock. All-or-nothing: the first failure rejects the whole order,
// and nothing is written until every item has passed.
func validateStock(ctx context.Context, resolver entryResolver, items []models.OrderItem) error {
	for _, item := range items {
		entry, err := resolver.FindByID(ctx, item.CatalogEntryID)
		if errors.Is(err, catalog.ErrNotFound) {
			name := item.ProductName
			if name == "" {
				name = item.CatalogEntryID
			}
			return itemNotFoundError{ProductName: name}
		}
		if err != nil {
			return err
		}

		if entry.Stock() < item.Quantity {
			return insufficientStockError{
				ProductName: entry.DisplayName(),
				Available:   entry.Stock(),
				Requested:   item.Quantity,
			}
		}
	}
	return nil
}

// CreateOrder runs the order placement pipeline: clean, validate stock, mint
// an order code, persist, then decrement stock best-effort. Validation is
// advisory, not a reservation; a concurrent order for the same item can still
// interleave between the stock check and the decrement.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	lookup := catalog.NewLookup(db)
	generator := sequence.New(db)

	return func(c *gin.Context) {
		const route = "POST /api/orders/create"
		// Registered before handlePanic so it observes the 500 the recover
		// writes, not the pre-panic status.
		defer func() {
			ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
			middleware.RecordOrderOperation("create", ok)
		}()
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		userIDValue, ok := c.Get("userId")
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}
		userID := userIDValue.(primitive.ObjectID)

		items, err := cleanOrderItems(req.OrderItems)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := validateStock(ctx, lookup, items); err != nil {
			var stockErr insufficientStockError
			if errors.As(err, &stockErr) {
				respondWithError(c, http.StatusBadRequest, route, stockErr.Error())
				return
			}
			var notFoundErr itemNotFoundError
			if errors.As(err, &notFoundErr) {
				respondWithError(c, http.StatusNotFound, route, notFoundErr.Error())
				return
			}
			log.Printf("[%s] stock validation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		seq, err := generator.Next(ctx, orderCounterName)
		if err != nil {
			log.Printf("[%s] sequence error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		now := time.Now()
		order := models.Order{
			OrderID:       formatOrderCode(seq, now),
			UserID:        userID,
			CustomerName:  resolveCustomerName(ctx, db, userID, req.CustomerName),
			CustomerPhone: req.CustomerPhone,
			OrderItems:    items,
			TotalPrice:    trustedTotalPrice(req.TotalPrice),
			CreatedAt:     now,
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		// The order is durable from here on. Stock accounting is best-effort
		// bookkeeping: per-item failures are logged and swallowed.
		for _, item := range order.OrderItems {
			if err := lookup.ApplyDecrement(ctx, item.CatalogEntryID, item.Quantity); err != nil {
				log.Printf("[%s] stock decrement failed for %s: %v", route, item.CatalogEntryID, err)
			}
		}

		log.Printf("[%s] order %s created for user %s", route, order.OrderID, userID.Hex())
		c.JSON(http.StatusCreated, order)
	}
}

// resolveCustomerName prefers the account name on record, falling back to the
// name supplied with the request for accounts created before profiles had one.
func resolveCustomerName(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, fallback string) string {
	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == nil && user.Name != "" {
		return user.Name
	}
	return fallback
}
