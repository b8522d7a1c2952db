// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/pathanim"
)

func TestPreview(t *testing.T) {
	line := mustPath(t, pathanim.Pt(20, 100), pathanim.Pt(180, 100))
	line.Color = "#00ff00"
	line.Name = "Path 1"
	anchor := mustPath(t, pathanim.Pt(150, 40))
	anchor.Color = "#0000ff"

	doc := newDoc(line, anchor)
	doc.Canvas = pathanim.Size{Width: 200, Height: 150}

	img, err := Preview(doc, nil)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 200 || got.Y != 150 {
		t.Fatalf("preview size = %v, want 200x150", got)
	}

	if c := img.RGBAAt(100, 100); c.G < 250 || c.R > 30 {
		t.Errorf("polyline pixel = %v, want green", c)
	}
	if c := img.RGBAAt(150, 40); c.B < 250 || c.G > 30 {
		t.Errorf("anchor pixel = %v, want blue", c)
	}
	if c := img.RGBAAt(100, 20); c != previewBackground {
		t.Errorf("empty pixel = %v, want background", c)
	}

	// The label sits above and right of the start point.
	found := false
	for y := 80; y < 92 && !found; y++ {
		for x := 28; x < 80; x++ {
			if img.RGBAAt(x, y).G > 128 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("name label not drawn")
	}
}

func TestPreviewInvalidCanvas(t *testing.T) {
	doc := pathanim.NewDocument()
	doc.Canvas = pathanim.Size{Width: -1, Height: 10}

	_, err := Preview(doc, nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want *ConfigError", err)
	}
}

func TestSegment(t *testing.T) {
	if got := segment(pathanim.Pt(1, 1), pathanim.Pt(1, 1), 2); got != nil {
		t.Errorf("zero-length segment = %v, want nil", got)
	}

	quad := segment(pathanim.Pt(0, 0), pathanim.Pt(10, 0), 2)
	if len(quad) != 4 {
		t.Fatalf("segment has %d vertices", len(quad))
	}
	for _, p := range quad {
		if p.Y != 1 && p.Y != -1 {
			t.Errorf("vertex %v not at half width", p)
		}
	}
}

func TestPreviewWithoutCanvas(t *testing.T) {
	doc := pathanim.NewDocument()
	doc.Canvas = pathanim.Size{}

	img, err := Preview(doc, nil)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 512 || got.Y != 512 {
		t.Errorf("preview size = %v, want 512x512", got)
	}
}
