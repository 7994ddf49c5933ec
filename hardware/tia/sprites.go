package tia

// nusizShape describes the copy offsets and pixel scale NUSIZx selects for
// players and missiles. Offsets are approximate color-clock spacings per
// the documented behavior; a scan-counter-accurate TIA would derive these
// from a per-object state machine instead.
type nusizShape struct {
	copies []int
	scale  int
}

var nusizShapes = [8]nusizShape{
	{copies: []int{0}, scale: 1},      // one copy
	{copies: []int{0, 16}, scale: 1},  // two copies, close
	{copies: []int{0, 32}, scale: 1},  // two copies, medium
	{copies: []int{0, 16, 32}, scale: 1},
	{copies: []int{0, 64}, scale: 1},  // two copies, wide
	{copies: []int{0}, scale: 2},      // one copy, double width
	{copies: []int{0, 32, 64}, scale: 1},
	{copies: []int{0}, scale: 4},      // one copy, quad width
}

func missileWidth(nusiz uint8) int {
	switch (nusiz >> 4) & 0x03 {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

func ballWidth(ctrlpf uint8) int {
	switch (ctrlpf >> 4) & 0x03 {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 4
	default:
		return 8
	}
}

// playerAt reports whether an 8-pixel GRP sprite, replicated and scaled per
// NUSIZx, is set at visible column x.
func (t *TIA) playerAt(x, posX int, nusiz uint8, grp uint8, reflect bool) bool {
	shape := nusizShapes[nusiz&0x07]
	span := 8 * shape.scale

	for _, offset := range shape.copies {
		start := wrap160(posX + offset)
		rel := wrap160(x - start)
		if rel >= span {
			continue
		}
		pixel := rel / shape.scale
		bit := 7 - pixel
		if reflect {
			bit = pixel
		}
		if grp&(1<<uint(bit)) != 0 {
			return true
		}
	}
	return false
}

// missileAt reports whether the missile, replicated per NUSIZx and widened
// per its own width field, is set at visible column x.
func (t *TIA) missileAt(x, posX int, nusiz uint8) bool {
	shape := nusizShapes[nusiz&0x07]
	width := missileWidth(nusiz)

	for _, offset := range shape.copies {
		start := wrap160(posX + offset)
		rel := wrap160(x - start)
		if rel < width {
			return true
		}
	}
	return false
}

// ballAt reports whether the ball primitive is set at visible column x.
func (t *TIA) ballAt(x int) bool {
	width := ballWidth(t.ctrlpf)
	rel := wrap160(x - t.blX)
	return rel < width
}
