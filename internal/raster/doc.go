// Package raster fills closed polygons into RGBA frames.
//
// Coverage is computed by golang.org/x/image/vector over the polygon's
// bounding box only, so the cost of a fill scales with the shape rather than
// the frame. Polygons reaching outside the frame are clipped first.
package raster
