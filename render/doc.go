// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns a path document into an animation batch: RGB frames,
// single-channel masks and the coordinate tracks for every path.
//
// # Pipeline
//
// Animate runs, in order:
//
//  1. Params validation (structural errors are *ConfigError).
//  2. Canvas to frame scaling of copies of the document's paths.
//  3. Length override and multiplier (delta-based, per motion path).
//  4. Global timeline override resolution.
//  5. Base frames, rendered concurrently: background, shapes, blur.
//  6. The motion trail, sequential because each frame feeds the next.
//  7. Masks (red channel) and tracks, concurrently.
//
// # Usage
//
//	r := render.NewRenderer(render.WithWorkers(4))
//	defer r.Close()
//
//	params := render.DefaultParams()
//	params.FrameCount = 49
//	res, err := r.Animate(ctx, doc, params)
//
// Parameters can be loaded from TOML, YAML or JSON files with LoadParams.
//
// Preview draws a static overview of a document (paths, start markers and
// names) for headless inspection.
package render
