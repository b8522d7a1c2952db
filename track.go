package pathanim

import (
	"encoding/json"
	"fmt"
)

// Track is the TrackLength-point, constant-speed output of one path.
type Track []Point

// Track resamples the path to TrackLength points.
func (p *Path) Track() Track {
	return Resample(p.Points, TrackLength)
}

// ExportTrack returns the path's track restricted to the global override
// window, when one is set. Anchors are never windowed.
func (p *Path) ExportTrack(override *Window) Track {
	track := p.Track()
	if override == nil || override.IsFull() || p.IsAnchor() {
		return track
	}
	Logger().Debug("pathanim: windowing track",
		"id", p.ID, "start", override.Start, "end", override.End)
	return WindowTrack(track, *override, TrackLength)
}

// ExportTracks returns one track per path, in path order.
func ExportTracks(paths []*Path, override *Window) []Track {
	tracks := make([]Track, len(paths))
	for i, p := range paths {
		tracks[i] = p.ExportTrack(override)
	}
	return tracks
}

// Coord is an integer coordinate pair in the external track format.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Coords rounds every point of the track, half to even.
func (t Track) Coords() []Coord {
	out := make([]Coord, len(t))
	for i, p := range t {
		out[i].X, out[i].Y = p.Rounded()
	}
	return out
}

// FormatTracks serializes tracks as [[{"x":int,"y":int}, ...], ...].
// Rounding happens here and nowhere else.
func FormatTracks(tracks []Track) (string, error) {
	coords := make([][]Coord, len(tracks))
	for i, t := range tracks {
		coords[i] = t.Coords()
	}
	b, err := json.Marshal(coords)
	if err != nil {
		return "", fmt.Errorf("pathanim: format tracks: %w", err)
	}
	return string(b), nil
}
