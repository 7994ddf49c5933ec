package display

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Frame is the core's framebuffer shape: 262 rows by 160 columns of raw
// TIA colour codes, matching hardware/tia.Framebuffer.
type Frame = [262][160]uint8

// ToImage converts a raw framebuffer of TIA colour codes into an RGBA
// image using the NTSC palette.
func ToImage(frame Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 160, 262))
	for y := 0; y < 262; y++ {
		for x := 0; x < 160; x++ {
			img.Set(x, y, RGB(frame[y][x]))
		}
	}
	return img
}

// EncodePNG writes a framebuffer to w as a PNG, scaled by the given
// integer factor using nearest-neighbour scaling (the correct filter for
// pixel art: it never blends TIA colour codes together).
func EncodePNG(w io.Writer, frame Frame, scale int) error {
	src := ToImage(frame)
	if scale <= 1 {
		return png.Encode(w, src)
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return png.Encode(w, dst)
}
