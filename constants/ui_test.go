package constants

import "testing"

func TestBulletPaletteSize(t *testing.T) {
	if len(BulletPalette) != 4 {
		t.Fatalf("expected 4 bullet colors, got %d", len(BulletPalette))
	}
	seen := make(map[int32]bool)
	for _, c := range BulletPalette {
		if seen[c.Hex()] {
			t.Errorf("duplicate palette color %06x", c.Hex())
		}
		seen[c.Hex()] = true
	}
}

func TestPlayerBoundsInsideField(t *testing.T) {
	if PlayerSize/2 >= FieldWidth-PlayerSize/2 {
		t.Fatal("player bounds are empty")
	}
	if FireY >= FieldHeight || PlayerHitY >= FieldHeight {
		t.Error("player reference heights must be inside the field")
	}
}
