// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// applyTrail blends every frame with its trail predecessor in place:
//
//	out = cur + trail*prev
//
// where prev is the previous output before quantization. When a frame's
// brightest channel exceeds full intensity the whole frame is divided by
// it. Alpha is left opaque.
func applyTrail(frames []*image.RGBA, trail float64) {
	if trail <= 0 || len(frames) < 2 {
		return
	}

	k := float32(trail)
	prev := make([]float32, len(frames[0].Pix))
	cur := make([]float32, len(frames[0].Pix))
	for i, v := range frames[0].Pix {
		prev[i] = float32(v) / 255
	}

	for _, f := range frames[1:] {
		var peak float32
		for i, v := range f.Pix {
			if i%4 == 3 {
				continue
			}
			o := float32(v)/255 + k*prev[i]
			cur[i] = o
			peak = max(peak, o)
		}
		if peak > 1 {
			inv := 1 / peak
			for i := range cur {
				cur[i] *= inv
			}
		}
		for i := range f.Pix {
			if i%4 == 3 {
				continue
			}
			f.Pix[i] = uint8(min(cur[i], 1)*255 + 0.5)
		}
		prev, cur = cur, prev
	}
}
