package catalog

import "testing"

func TestCleanIDStripsVariantSuffix(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"64a1f2c3d4e5f6a7b8c9d0e1-red", "64a1f2c3d4e5f6a7b8c9d0e1"},
		{"64a1f2c3d4e5f6a7b8c9d0e1-red-large", "64a1f2c3d4e5f6a7b8c9d0e1"},
		{"64a1f2c3d4e5f6a7b8c9d0e1", "64a1f2c3d4e5f6a7b8c9d0e1"},
		{"  64a1f2c3d4e5f6a7b8c9d0e1  ", "64a1f2c3d4e5f6a7b8c9d0e1"},
		{"-variant", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanID(tt.raw); got != tt.expected {
			t.Fatalf("CleanID(%q) = %q, expected %q", tt.raw, got, tt.expected)
		}
	}
}

func TestFlooredStockNeverNegative(t *testing.T) {
	tests := []struct {
		current  int
		quantity int
		expected int
	}{
		{5, 2, 3},
		{2, 2, 0},
		{1, 3, 0},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := FlooredStock(tt.current, tt.quantity); got != tt.expected {
			t.Fatalf("FlooredStock(%d, %d) = %d, expected %d",
				tt.current, tt.quantity, got, tt.expected)
		}
	}
}
