// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.NewRenderer(
//	    render.WithWorkers(8),
//	    render.WithBackground(img),
//	)
type Option func(*options)

type options struct {
	workers    int
	background image.Image
}

func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
	}
}

// WithWorkers sets the number of frame workers. Zero or negative means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBackground seeds every frame with img, resized to the frame size,
// instead of the plain background color. The document's background
// reference is resolved by the caller (see the storage package).
func WithBackground(img image.Image) Option {
	return func(o *options) {
		o.background = img
	}
}
