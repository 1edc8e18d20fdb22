package handlers

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

func TestCleanOrderItemsRejectsEmptyCart(t *testing.T) {
	if _, err := cleanOrderItems(nil); err == nil {
		t.Fatal("expected error for empty cart")
	}
	if _, err := cleanOrderItems([]createOrderItemRequest{}); err == nil {
		t.Fatal("expected error for empty cart")
	}
}

func TestCleanOrderItemsStripsVariantSuffix(t *testing.T) {
	items, err := cleanOrderItems([]createOrderItemRequest{
		{ProductID: "64a1f2c3d4e5f6a7b8c9d0e1-red-large", Quantity: 2.0},
	})
	if err != nil {
		t.Fatalf("cleanOrderItems returned error: %v", err)
	}
	if items[0].CatalogEntryID != "64a1f2c3d4e5f6a7b8c9d0e1" {
		t.Fatalf("expected bare catalog ID, got %q", items[0].CatalogEntryID)
	}
}

func TestCleanOrderItemsPreservesItemCount(t *testing.T) {
	raw := []createOrderItemRequest{
		{ProductID: "a", Quantity: 1.0},
		{ProductID: "b", Quantity: "2"},
		{ProductID: "c"},
	}
	items, err := cleanOrderItems(raw)
	if err != nil {
		t.Fatalf("cleanOrderItems returned error: %v", err)
	}
	if len(items) != len(raw) {
		t.Fatalf("expected %d items, got %d", len(raw), len(items))
	}
}

func TestCleanOrderItemsTrimsStringsAndKeepsPagdi(t *testing.T) {
	items, err := cleanOrderItems([]createOrderItemRequest{
		{
			ProductID:     "abc",
			ProductName:   "  Poshak Set  ",
			Size:          " 2 ",
			Colour:        " red ",
			Customization: "  laddu gopal 4  ",
			PagdiSelection: &pagdiSelectionRequest{
				Type:  " fancy ",
				Size:  "2",
				Price: "150",
			},
		},
	})
	if err != nil {
		t.Fatalf("cleanOrderItems returned error: %v", err)
	}

	item := items[0]
	if item.ProductName != "Poshak Set" || item.Size != "2" || item.Colour != "red" {
		t.Fatalf("expected trimmed fields, got %+v", item)
	}
	if item.PagdiSelection == nil {
		t.Fatal("expected pagdi selection to be kept")
	}
	if item.PagdiSelection.Type != "fancy" || item.PagdiSelection.Price != 150 {
		t.Fatalf("unexpected pagdi selection: %+v", item.PagdiSelection)
	}
}

func TestCleanOrderItemsDropsEmptyPagdi(t *testing.T) {
	items, err := cleanOrderItems([]createOrderItemRequest{
		{ProductID: "abc", PagdiSelection: &pagdiSelectionRequest{Type: "  "}},
	})
	if err != nil {
		t.Fatalf("cleanOrderItems returned error: %v", err)
	}
	if items[0].PagdiSelection != nil {
		t.Fatalf("expected empty pagdi selection to be dropped, got %+v", items[0].PagdiSelection)
	}
}

func TestAsQuantityDefaultsToOne(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected int
	}{
		{3.0, 3},
		{2.7, 2},
		{0.4, 1},
		{"4", 4},
		{" 5 ", 5},
		{nil, 1},
		{"abc", 1},
		{0.0, 1},
		{-2.0, 1},
		{"", 1},
	}
	for _, tt := range tests {
		if got := asQuantity(tt.value); got != tt.expected {
			t.Fatalf("asQuantity(%v) = %d, expected %d", tt.value, got, tt.expected)
		}
	}
}

func TestAsPriceDefaultsToZero(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected float64
	}{
		{199.5, 199.5},
		{"250", 250},
		{"12.5", 12.5},
		{nil, 0},
		{"abc", 0},
		{-10.0, 0},
	}
	for _, tt := range tests {
		if got := asPrice(tt.value); got != tt.expected {
			t.Fatalf("asPrice(%v) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestTrustedTotalPriceIsVerbatim(t *testing.T) {
	if got := trustedTotalPrice(1234.56); got != 1234.56 {
		t.Fatalf("expected client total to pass through verbatim, got %v", got)
	}
}

func TestFormatOrderCodeScenario(t *testing.T) {
	// counter at seq=41 before the order, so this order mints 42
	at := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	if got := formatOrderCode(42, at); got != "254203" {
		t.Fatalf("expected 254203, got %q", got)
	}
}

func TestFormatOrderCodeSequenceUnpadded(t *testing.T) {
	at := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	if got := formatOrderCode(7, at); got != "25712" {
		t.Fatalf("expected 25712, got %q", got)
	}
	if got := formatOrderCode(12345, at); got != "251234512" {
		t.Fatalf("expected 251234512, got %q", got)
	}
}

func TestFormatOrderCodeMatchesCurrentYearMonth(t *testing.T) {
	now := time.Now()
	code := formatOrderCode(9, now)

	if matched := regexp.MustCompile(`^\d{2}\d+\d{2}$`).MatchString(code); !matched {
		t.Fatalf("code %q does not match expected shape", code)
	}
	if code[:2] != now.Format("06") {
		t.Fatalf("expected code to start with year %s, got %q", now.Format("06"), code)
	}
	if code[len(code)-2:] != now.Format("01") {
		t.Fatalf("expected code to end with month %s, got %q", now.Format("01"), code)
	}
}

func TestInsufficientStockErrorNamesProductAndCounts(t *testing.T) {
	err := insufficientStockError{ProductName: "Pearl Mala", Available: 0, Requested: 1}
	expected := fmt.Sprintf("insufficient stock for %s: available %d, requested %d", "Pearl Mala", 0, 1)
	if err.Error() != expected {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
