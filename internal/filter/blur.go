package filter

import (
	"image"
	"math"
	"sync"
)

// BlurFilter applies separable Gaussian blur to an image.
type BlurFilter struct {
	// RadiusX is the horizontal blur radius in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius in pixels.
	RadiusY float64
}

// NewBlurFilter creates a new blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radius,
		RadiusY: radius,
	}
}

// NewBlurFilterXY creates a new blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radiusX,
		RadiusY: radiusY,
	}
}

// Apply blurs the bounds region of src into dst. src and dst may be the
// same image: the horizontal pass reads src completely into a temporary
// buffer before the vertical pass writes dst.
func (f *BlurFilter) Apply(src, dst *image.RGBA, bounds image.Rectangle) {
	if src == nil || dst == nil {
		return
	}

	bounds = bounds.Intersect(src.Bounds()).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	if f.RadiusX <= 0 && f.RadiusY <= 0 {
		if src != dst {
			copyRegion(src, dst, bounds)
		}
		return
	}

	width := bounds.Dx()
	height := bounds.Dy()

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	kernelX := CachedGaussianKernel(f.RadiusX)
	kernelY := CachedGaussianKernel(f.RadiusY)

	// Pass 1: src -> temp
	blurHorizontal(src, temp, bounds, kernelX)

	// Pass 2: temp -> dst
	blurVertical(temp, dst, bounds, kernelY)
}

// ApplyInPlace blurs the whole image.
func (f *BlurFilter) ApplyInPlace(img *image.RGBA) {
	f.Apply(img, img, img.Bounds())
}

// ExpandBounds returns the region affected by blurring input.
func (f *BlurFilter) ExpandBounds(input image.Rectangle) image.Rectangle {
	ex := int(math.Ceil(f.RadiusX * 3))
	ey := int(math.Ceil(f.RadiusY * 3))
	if ex < 0 {
		ex = 0
	}
	if ey < 0 {
		ey = 0
	}
	return image.Rect(input.Min.X-ex, input.Min.Y-ey, input.Max.X+ex, input.Max.Y+ey)
}

// blurHorizontal convolves each row of the region with kernel. Samples
// outside the region are clamped to its edge.
func blurHorizontal(src *image.RGBA, temp []float32, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	width := r.Dx()

	for y := 0; y < r.Dy(); y++ {
		row := src.PixOffset(r.Min.X, r.Min.Y+y)
		for x := 0; x < width; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				i := row + kx*4
				cr += float32(src.Pix[i+0]) * weight
				cg += float32(src.Pix[i+1]) * weight
				cb += float32(src.Pix[i+2]) * weight
				ca += float32(src.Pix[i+3]) * weight
			}
			t := (y*width + x) * 4
			temp[t+0] = cr
			temp[t+1] = cg
			temp[t+2] = cb
			temp[t+3] = ca
		}
	}
}

// blurVertical convolves each column of temp with kernel and writes the
// result into the region of dst.
func blurVertical(temp []float32, dst *image.RGBA, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	width, height := r.Dx(), r.Dy()

	for y := 0; y < height; y++ {
		row := dst.PixOffset(r.Min.X, r.Min.Y+y)
		for x := 0; x < width; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				t := (ky*width + x) * 4
				cr += temp[t+0] * weight
				cg += temp[t+1] * weight
				cb += temp[t+2] * weight
				ca += temp[t+3] * weight
			}
			i := row + x*4
			dst.Pix[i+0] = clampUint8(cr)
			dst.Pix[i+1] = clampUint8(cg)
			dst.Pix[i+2] = clampUint8(cb)
			dst.Pix[i+3] = clampUint8(ca)
		}
	}
}

// copyRegion copies the bounds region of src into dst.
func copyRegion(src, dst *image.RGBA, bounds image.Rectangle) {
	n := bounds.Dx() * 4
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		s := src.PixOffset(bounds.Min.X, y)
		d := dst.PixOffset(bounds.Min.X, y)
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations. Frames of one batch share a
// size, so buffers are reused across the whole batch.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer is guaranteed to have exactly width*height*4 elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// 4096x4096 RGBA is the largest frame the renderer accepts.
	if cap(buf) <= 4096*4096*4 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
