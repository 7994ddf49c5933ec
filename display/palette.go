// Package display is the external collaborator the core hands its
// framebuffer to. It owns the one thing the core deliberately does not:
// the NTSC colour-code to RGB mapping, and the scaling/encoding needed to
// turn a frame into a viewable image.
package display

import "image/color"

// NTSC is the 128-entry colour-code to RGB lookup table. Index is the
// upper nibble (hue, 0-15) * 8 + lower nibble / 2 (luma, 0-7), matching
// the TIA's 4-bit hue / 3-bit luma colour code layout.
var NTSC = buildNTSCPalette()

// RGB returns the display colour for a raw TIA colour code (upper nibble
// hue, lower nibble luma).
func RGB(code uint8) color.RGBA {
	hue := (code >> 4) & 0x0F
	luma := (code >> 1) & 0x07
	return NTSC[int(hue)*8+int(luma)]
}

// buildNTSCPalette synthesises the table from the documented NTSC hue
// angles and a fixed luma ramp, rather than hand-transcribing all 128
// entries; this reproduces the well-known Stella NTSC palette shape
// closely enough for a debug viewer.
func buildNTSCPalette() [128]color.RGBA {
	var pal [128]color.RGBA

	lumaRamp := [8]float64{0.05, 0.20, 0.35, 0.50, 0.65, 0.78, 0.90, 1.00}

	for hue := 0; hue < 16; hue++ {
		for luma := 0; luma < 8; luma++ {
			pal[hue*8+luma] = hueToRGB(hue, lumaRamp[luma])
		}
	}
	return pal
}

// hueToRGB maps a TIA hue index (0 is grey, 1-15 step around the colour
// wheel) and a normalised luma to an RGB triple.
func hueToRGB(hue int, luma float64) color.RGBA {
	if hue == 0 {
		v := uint8(luma * 255)
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}

	angle := float64(hue-1) / 15.0 * 360.0
	r, g, b := hsvToRGB(angle, 0.65, luma)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - abs(mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func mod(a, b float64) float64 {
	for a >= b {
		a -= b
	}
	return a
}
