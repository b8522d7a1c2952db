package pathanim

import (
	"errors"
	"testing"
)

func TestZoomBoxScroll(t *testing.T) {
	z := NewZoomBox(Rect{Min: Pt(0, 0), Max: Pt(100, 50)})
	z.Scroll(3)
	z.Scroll(0.1)
	z.Scroll(0)
	if z.Steps() != 3 {
		t.Fatalf("Steps() = %d, want 3", z.Steps())
	}

	want := Rect{Min: Pt(50-50*1.05*1.05, 25-25*1.05*1.05), Max: Pt(50+50*1.05*1.05, 25+25*1.05*1.05)}
	diff(t, want, z.Rect(), pointComparer)

	z.Scroll(-100)
	if z.Steps() != 4 {
		t.Fatalf("Steps() = %d, want 4", z.Steps())
	}
}

func TestZoomBoxFinalize(t *testing.T) {
	z := NewZoomBox(Rect{Min: Pt(0, 0), Max: Pt(100, 50)})
	z.Scroll(1)
	z.Scroll(1)

	paths := z.Finalize()
	if len(paths) != 4 {
		t.Fatalf("Finalize() returned %d paths, want 4", len(paths))
	}
	firsts := []Point{Pt(0, 0), Pt(100, 0), Pt(0, 50), Pt(100, 50)}
	for i, p := range paths {
		if len(p.Points) != 3 {
			t.Errorf("path %d has %d points, want 3", i, len(p.Points))
		}
		diff(t, firsts[i], p.Start(), pointComparer)
		if p.Kind.Name() != "zoombox" {
			t.Errorf("path %d kind = %q, want zoombox", i, p.Kind.Name())
		}
	}
	diff(t, Pt(50-50*1.05, 25-25*1.05), paths[0].Points[1], pointComparer)
	diff(t, Pt(50+50*1.05, 25+25*1.05), paths[3].Points[1], pointComparer)
}

func TestZoomBoxDegenerate(t *testing.T) {
	t.Run("no steps", func(t *testing.T) {
		z := NewZoomBox(Rect{Min: Pt(0, 0), Max: Pt(100, 100)})
		if got := z.Finalize(); got != nil {
			t.Errorf("Finalize() = %v, want nil", got)
		}
	})
	t.Run("collapsed", func(t *testing.T) {
		z := NewZoomBox(Rect{Min: Pt(0, 0), Max: Pt(100, 100)})
		z.Scroll(1)
		z.Resize(0.01)
		if !z.Collapsed() {
			t.Fatal("box did not collapse")
		}
		z.Scroll(1)
		if got := z.Finalize(); got != nil {
			t.Errorf("Finalize() = %v, want nil", got)
		}
	})
	t.Run("seed too small", func(t *testing.T) {
		z := NewZoomBox(Rect{Min: Pt(0, 0), Max: Pt(2, 100)})
		if !z.Collapsed() {
			t.Error("2px wide box is not collapsed")
		}
	})
	t.Run("session rejects", func(t *testing.T) {
		s, _ := NewSession(DefaultCanvas)
		_, err := s.AddZoomBox(NewZoomBox(Rect{Min: Pt(0, 0), Max: Pt(100, 100)}))
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("AddZoomBox() error = %v, want ErrDegenerate", err)
		}
		if s.Len() != 0 {
			t.Errorf("session has %d paths, want 0", s.Len())
		}
	})
}
