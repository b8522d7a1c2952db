package pathanim

import (
	"testing"
)

func TestExportTrack(t *testing.T) {
	line := mustPath(t, pts(0, 0, 120, 0), nil)
	anchor := mustPath(t, pts(7, 9), nil)
	override := Window{Start: 0.25, End: 0.75}

	tests := []struct {
		name        string
		path        *Path
		override    *Window
		first, last Point
	}{
		{"motion", line, nil, Pt(0, 0), Pt(120, 0)},
		{"motion with override", line, &override, Pt(30, 0), Pt(90, 0)},
		{"motion with full override", line, &FullWindow, Pt(0, 0), Pt(120, 0)},
		{"anchor", anchor, nil, Pt(7, 9), Pt(7, 9)},
		{"anchor ignores override", anchor, &override, Pt(7, 9), Pt(7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.ExportTrack(tt.override)
			if len(got) != TrackLength {
				t.Fatalf("len = %d, want %d", len(got), TrackLength)
			}
			diff(t, tt.first, got[0], pointComparer)
			diff(t, tt.last, got[TrackLength-1], pointComparer)
		})
	}
}

func TestExportTrackIgnoresOwnWindow(t *testing.T) {
	p := mustPath(t, pts(0, 0, 120, 0), nil)
	p.SetWindow(0.5, 0.6)
	got := p.ExportTrack(nil)
	diff(t, Pt(0, 0), got[0], pointComparer)
	diff(t, Pt(120, 0), got[TrackLength-1], pointComparer)
}

func TestExportTracksOrder(t *testing.T) {
	paths := []*Path{
		mustPath(t, pts(1, 1), nil),
		mustPath(t, pts(0, 0, 10, 10), nil),
		mustPath(t, pts(2, 2), nil),
	}
	tracks := ExportTracks(paths, nil)
	if len(tracks) != 3 {
		t.Fatalf("len = %d, want 3", len(tracks))
	}
	for i, tr := range tracks {
		diff(t, paths[i].Start(), tr[0], pointComparer)
	}
}

func TestFormatTracks(t *testing.T) {
	tests := []struct {
		name   string
		tracks []Track
		want   string
	}{
		{"empty", nil, "[]"},
		{"no paths", []Track{}, "[]"},
		{
			name:   "half to even",
			tracks: []Track{{Pt(0.5, 1.5), Pt(2.5, -0.5)}},
			want:   `[[{"x":0,"y":2},{"x":2,"y":0}]]`,
		},
		{
			name:   "two tracks",
			tracks: []Track{{Pt(1.2, 3.7)}, {Pt(-4.6, 10)}},
			want:   `[[{"x":1,"y":4}],[{"x":-5,"y":10}]]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTracks(tt.tracks)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FormatTracks() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTrackCoordsAreIntegersOfTrackLength(t *testing.T) {
	p := mustPath(t, pts(0.3, 0.3, 99.7, 50.2), nil)
	coords := p.Track().Coords()
	if len(coords) != TrackLength {
		t.Fatalf("len = %d, want %d", len(coords), TrackLength)
	}
	diff(t, Coord{X: 0, Y: 0}, coords[0])
	diff(t, Coord{X: 100, Y: 50}, coords[TrackLength-1])
}

func TestFullOverrideReproducesTrack(t *testing.T) {
	p := mustPath(t, pts(0, 0, 40, 30, 90, 10), nil)
	w, active := GlobalWindow(0, 100)
	if active {
		t.Fatal("[0, 100] override reported active")
	}
	diff(t, p.ExportTrack(nil), p.ExportTrack(&w))
}
