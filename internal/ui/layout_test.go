package ui

import (
	"image"
	"math"
	"testing"
)

func TestLabelScale(t *testing.T) {
	if got := labelScale(glyphHeight); got != 1 {
		t.Fatalf("native size should not scale, got %f", got)
	}
	if got := labelScale(labelSize); math.Abs(got*glyphHeight-labelSize) > 1e-9 {
		t.Fatalf("scaled glyph height %f, expected %d", got*glyphHeight, labelSize)
	}
	if got := labelScale(0); got != 1 {
		t.Fatalf("non-positive size should fall back to 1, got %f", got)
	}
}

func TestCellRect(t *testing.T) {
	got := cellRect(2, 3, 25)
	want := image.Rect(50, 75, 75, 100)
	if got != want {
		t.Fatalf("cellRect = %v, expected %v", got, want)
	}
}
