package capture

import (
	"image"
	"image/draw"
	"sync"
)

// Crop buffers are transient: one is taken for each analysed selection and
// returned once the histogram has been built. Pooling them keeps repeated
// drags over a large screenshot from allocating a fresh backing slice each
// time.
//
// Buffers are straight-alpha NRGBA so that a translucent pixel keeps the RGB
// triple stored in the file instead of being folded toward black.

var bufferPool sync.Pool // stores *image.NRGBA

// acquireBuffer returns a reusable NRGBA image with bounds (0,0)-(w,h). The
// returned Pix length exactly matches w*h*4, and Stride is w*4. Contents are
// undefined.
func acquireBuffer(w, h int) *image.NRGBA {
	rect := image.Rect(0, 0, w, h)
	if w <= 0 || h <= 0 {
		return &image.NRGBA{Rect: image.Rectangle{}}
	}
	needed := w * h * 4
	var img *image.NRGBA
	if v := bufferPool.Get(); v != nil {
		img = v.(*image.NRGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.NRGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	} else {
		img.Stride = w * 4
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// Crop copies r of src into a pooled, zero-origin NRGBA buffer. r is clipped
// to src's bounds; an empty intersection yields an empty image. NRGBA sources
// are copied byte for byte, so even fully transparent pixels keep their RGB;
// other models are converted per pixel. Callers should hand the result back
// with Release once done with it.
func Crop(src image.Image, r image.Rectangle) *image.NRGBA {
	if src == nil {
		return &image.NRGBA{}
	}
	r = r.Intersect(src.Bounds())
	dst := acquireBuffer(r.Dx(), r.Dy())
	if r.Empty() {
		return dst
	}
	if n, ok := src.(*image.NRGBA); ok {
		rowLen := r.Dx() * 4
		for y := 0; y < r.Dy(); y++ {
			off := n.PixOffset(r.Min.X, r.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], n.Pix[off:off+rowLen])
		}
		return dst
	}
	draw.Draw(dst, dst.Rect, src, r.Min, draw.Src)
	return dst
}

// Release returns the buffer to the pool for potential reuse. The buffer
// must no longer be accessed by the caller after invoking Release.
func Release(img *image.NRGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	bufferPool.Put(img)
}
