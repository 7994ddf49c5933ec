package tia

const (
	pfHalfColumns = visibleColumns / 2
	pfBits        = 20
)

// pattern returns the 20-bit playfield pattern for the left half of the
// screen: PF0 bits 4-7 (MSB-first), then PF1 MSB-to-LSB, then PF2
// LSB-to-MSB.
func (t *TIA) pattern() [pfBits]bool {
	var bits [pfBits]bool
	idx := 0
	for b := 4; b <= 7; b++ {
		bits[idx] = t.pf0&(1<<uint(b)) != 0
		idx++
	}
	for b := 7; b >= 0; b-- {
		bits[idx] = t.pf1&(1<<uint(b)) != 0
		idx++
	}
	for b := 0; b <= 7; b++ {
		bits[idx] = t.pf2&(1<<uint(b)) != 0
		idx++
	}
	return bits
}

// playfieldAt reports whether the playfield is set at visible column x, and
// which color it should draw in (COLUP0/COLUP1 when SCORE mode is active,
// COLUPF otherwise).
func (t *TIA) playfieldAt(x int) (bool, uint8) {
	bits := t.pattern()

	half := x / pfHalfColumns
	col := x % pfHalfColumns
	bitIndex := col / 4

	on := false
	if half == 0 {
		on = bits[bitIndex]
	} else if t.ctrlpf&0x01 != 0 {
		on = bits[pfBits-1-bitIndex]
	} else {
		on = bits[bitIndex]
	}

	color := t.colupf
	if t.ctrlpf&0x02 != 0 {
		if half == 0 {
			color = t.colup0
		} else {
			color = t.colup1
		}
	}
	return on, color
}
