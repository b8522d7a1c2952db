package raster

import (
	"image"
	"image/color"
	"testing"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func newBlack(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func TestFillerFillSquare(t *testing.T) {
	dst := newBlack(20, 20)
	NewFiller().Fill(dst, []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}, white)

	if got := dst.RGBAAt(10, 10); got.R < 254 {
		t.Errorf("inside pixel = %v, want white", got)
	}
	if got := dst.RGBAAt(2, 2); got.R != 0 {
		t.Errorf("outside pixel = %v, want black", got)
	}
	// Pixel-aligned edges are fully covered.
	if got := dst.RGBAAt(5, 5); got.R < 254 {
		t.Errorf("edge pixel = %v, want fully covered", got)
	}
}

func TestFillerFillAntialiased(t *testing.T) {
	dst := newBlack(20, 20)
	NewFiller().Fill(dst, []Point{{5.5, 5}, {15, 5}, {15, 15}, {5.5, 15}}, white)

	got := dst.RGBAAt(5, 10).R
	if got < 64 || got > 192 {
		t.Errorf("half-covered pixel R = %d, want partial coverage", got)
	}
}

func TestFillerFillPartlyOutside(t *testing.T) {
	dst := newBlack(10, 10)
	NewFiller().Fill(dst, []Point{{-10, -10}, {5, -10}, {5, 5}, {-10, 5}}, white)

	if got := dst.RGBAAt(0, 0); got.R < 254 {
		t.Errorf("pixel (0,0) = %v, want white", got)
	}
	if got := dst.RGBAAt(7, 7); got.R != 0 {
		t.Errorf("pixel (7,7) = %v, want black", got)
	}
}

func TestFillerFillNothing(t *testing.T) {
	dst := newBlack(10, 10)
	f := NewFiller()

	f.Fill(dst, nil, white)
	f.Fill(dst, []Point{{1, 1}, {5, 5}}, white)
	f.Fill(dst, []Point{{20, 20}, {30, 20}, {30, 30}}, white)
	f.Fill(nil, []Point{{1, 1}, {5, 1}, {5, 5}}, white)

	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatalf("pixel %d painted", i/4)
		}
	}
}

func TestFillerReuse(t *testing.T) {
	f := NewFiller()
	a := newBlack(30, 30)
	b := newBlack(30, 30)

	f.Fill(a, []Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}, white)
	f.Fill(b, []Point{{25, 25}, {28, 25}, {28, 28}, {25, 28}}, white)

	if got := b.RGBAAt(10, 10); got.R != 0 {
		t.Errorf("coverage leaked between fills: %v", got)
	}
	if got := b.RGBAAt(26, 26); got.R < 254 {
		t.Errorf("second fill pixel = %v, want white", got)
	}
}
