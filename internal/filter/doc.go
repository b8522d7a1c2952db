// Package filter provides the frame filters used by the renderer.
//
// The gaussian blur is separable: a horizontal and a vertical 1D pass,
// O(w*h*(rx+ry)) instead of O(w*h*rx*ry). The radius is the standard
// deviation of the gaussian, so a blur of radius r spreads a pixel over
// roughly 3r pixels in each direction.
package filter
