// Package pathanim turns sketched 2D motion trajectories into fixed-length,
// constant-speed coordinate tracks and the animation timeline that drives
// rendered frames.
//
// # Overview
//
// A [Path] is an ordered point sequence plus timeline metadata: an active
// [Window] on the normalized [0,1] timeline, an [Interpolation] easing and a
// [Visibility] mode. Paths are freehand strokes, static anchors (a single
// point) or generated by [Orbit], [Arc] or a [ZoomBox].
//
// # Quick Start
//
//	s, _ := pathanim.NewSession(pathanim.Size{Width: 512, Height: 512})
//	s.Add([]pathanim.Point{{X: 10, Y: 10}, {X: 200, Y: 80}, {X: 400, Y: 300}}, nil)
//	s.AddGenerated(pathanim.OrbitParams{
//	    Center: pathanim.Pt(256, 256), RX: 100, RY: 60,
//	    Ref: &pathanim.Point{X: 356, Y: 256}, Points: 32,
//	})
//
//	tracks := pathanim.ExportTracks(s.Paths(), nil)
//	coords, _ := pathanim.FormatTracks(tracks)
//
// # Tracks
//
// Every track has exactly [TrackLength] points, equally spaced along the
// path's arc length ([Resample]). Anchors produce TrackLength copies of
// their point. Coordinates are rounded only by [FormatTracks].
//
// # Coordinate System
//
// Canvas pixel coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Clockwise means increasing screen angle
//
// Rendering lives in the render sub-package; host storage for background
// images in storage; file exports in export.
package pathanim
