package tia

// latchCollisions ORs in the bits for every overlapping pair present this
// column. Latches are sticky: they persist across columns and frames until
// a CXCLR strobe clears them, so every assignment here uses |= rather than
// =. The bit layout (D7/D6 per register) matches the documented TIA
// collision register map.
func (t *TIA) latchCollisions(p0, p1, m0, m1, bl, pf bool) {
	if m0 && p1 {
		t.collisions[0] |= 0x80 // CXM0P: M0/P1
	}
	if m0 && p0 {
		t.collisions[0] |= 0x40 // CXM0P: M0/P0
	}
	if m1 && p0 {
		t.collisions[1] |= 0x80 // CXM1P: M1/P0
	}
	if m1 && p1 {
		t.collisions[1] |= 0x40 // CXM1P: M1/P1
	}
	if p0 && pf {
		t.collisions[2] |= 0x80 // CXP0FB: P0/PF
	}
	if p0 && bl {
		t.collisions[2] |= 0x40 // CXP0FB: P0/BL
	}
	if p1 && pf {
		t.collisions[3] |= 0x80 // CXP1FB: P1/PF
	}
	if p1 && bl {
		t.collisions[3] |= 0x40 // CXP1FB: P1/BL
	}
	if m0 && pf {
		t.collisions[4] |= 0x80 // CXM0FB: M0/PF
	}
	if m0 && bl {
		t.collisions[4] |= 0x40 // CXM0FB: M0/BL
	}
	if m1 && pf {
		t.collisions[5] |= 0x80 // CXM1FB: M1/PF
	}
	if m1 && bl {
		t.collisions[5] |= 0x40 // CXM1FB: M1/BL
	}
	if bl && pf {
		t.collisions[6] |= 0x80 // CXBLPF: BL/PF
	}
	if p0 && p1 {
		t.collisions[7] |= 0x80 // CXPPMM: P0/P1
	}
	if m0 && m1 {
		t.collisions[7] |= 0x40 // CXPPMM: M0/M1
	}
}
