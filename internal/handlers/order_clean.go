package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kunjcreation/internal/catalog"
	"kunjcreation/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

// Quantity and price arrive from the storefront as numbers or strings
// depending on which form produced them, so they bind loosely and get
// coerced during cleaning.

type pagdiSelectionRequest struct {
	Type  string      `json:"type"`
	Size  string      `json:"size"`
	Price interface{} `json:"price"`
}

type createOrderItemRequest struct {
	ItemCode       string                 `json:"itemCode"`
	ProductID      string                 `json:"productId" binding:"required"`
	ProductName    string                 `json:"productName"`
	Quantity       interface{}            `json:"quantity"`
	Size           string                 `json:"size"`
	SizeType       string                 `json:"sizeType"`
	Price          interface{}            `json:"price"`
	Image          string                 `json:"image"`
	Customization  string                 `json:"customization"`
	Colour         string                 `json:"colour"`
	PagdiSelection *pagdiSelectionRequest `json:"pagdiSelection"`
}

type createOrderRequest struct {
	CustomerName  string                   `json:"customerName"`
	CustomerPhone string                   `json:"customerPhone" binding:"required"`
	OrderItems    []createOrderItemRequest `json:"orderItems"`
	TotalPrice    float64                  `json:"totalPrice"`
}

/* =========================
   CLEANING
========================= */

// cleanOrderItems trims string fields, coerces quantity/price and extracts
// the bare catalog ID from composite variant IDs. No store access happens
// here; resolution is the validator's job.
func cleanOrderItems(raw []createOrderItemRequest) ([]models.OrderItem, error) {
	if len(raw) == 0 {
		return nil, errors.New("at least one item is required")
	}

	items := make([]models.OrderItem, 0, len(raw))
	for _, item := range raw {
		id := catalog.CleanID(item.ProductID)
		if id == "" {
			return nil, errors.New("productId is required for every item")
		}

		cleaned := models.OrderItem{
			ItemCode:       strings.TrimSpace(item.ItemCode),
			CatalogEntryID: id,
			ProductName:    strings.TrimSpace(item.ProductName),
			Quantity:       asQuantity(item.Quantity),
			Size:           strings.TrimSpace(item.Size),
			SizeType:       strings.TrimSpace(item.SizeType),
			Price:          asPrice(item.Price),
			Image:          strings.TrimSpace(item.Image),
			Customization:  strings.TrimSpace(item.Customization),
			Colour:         strings.TrimSpace(item.Colour),
		}

		if item.PagdiSelection != nil && strings.TrimSpace(item.PagdiSelection.Type) != "" {
			cleaned.PagdiSelection = &models.PagdiSelection{
				Type:  strings.TrimSpace(item.PagdiSelection.Type),
				Size:  strings.TrimSpace(item.PagdiSelection.Size),
				Price: asPrice(item.PagdiSelection.Price),
			}
		}

		items = append(items, cleaned)
	}

	return items, nil
}

// asQuantity coerces a loosely typed quantity to a positive integer,
// defaulting to 1 when missing or unparseable. Fractional values truncate
// toward zero.
func asQuantity(value interface{}) int {
	switch typed := value.(type) {
	case float64:
		if typed >= 1 {
			return int(typed)
		}
	case int:
		if typed >= 1 {
			return typed
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil && parsed >= 1 {
			return parsed
		}
	}
	return 1
}

// asPrice coerces a loosely typed price to a non-negative number,
// defaulting to 0 when missing or unparseable.
func asPrice(value interface{}) float64 {
	switch typed := value.(type) {
	case float64:
		if typed >= 0 {
			return typed
		}
	case int:
		if typed >= 0 {
			return float64(typed)
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return 0
}

// trustedTotalPrice is the named trust boundary on the client-supplied total:
// the server stores it verbatim and never recomputes it from item prices.
func trustedTotalPrice(clientTotal float64) float64 {
	return clientTotal
}

// formatOrderCode builds the human-readable order code: two-digit year, the
// raw sequence integer with no padding, two-digit month. Existing stored
// codes use exactly this layout, so it must not change.
func formatOrderCode(seq int, now time.Time) string {
	return fmt.Sprintf("%s%d%s", now.Format("06"), seq, now.Format("01"))
}
