// Package tia implements the Television Interface Adaptor: the Atari
// 2600's beam-synchronous video (and, for the parts this core models,
// collision and input) engine. One call to Clock advances one color clock;
// three clocks correspond to one CPU cycle.
package tia

import "github.com/schirmr/atari2600-emulator/hardware/memory/addresses"

const (
	// ClocksPerScanline is the number of color clocks in one scanline: 68
	// of HBLANK followed by 160 visible columns.
	ClocksPerScanline = 228
	hblankClocks      = 68
	visibleColumns    = 160
	// Scanlines is the number of scanlines in a full NTSC frame.
	Scanlines = 262
)

// real TIA write-register addresses, masked to 6 bits by the bus.
const (
	regVSYNC  = 0x00
	regVBLANK = 0x01
	regWSYNC  = 0x02
	regNUSIZ0 = 0x04
	regNUSIZ1 = 0x05
	regCOLUP0 = 0x06
	regCOLUP1 = 0x07
	regCOLUPF = 0x08
	regCOLUBK = 0x09
	regCTRLPF = 0x0A
	regREFP0  = 0x0B
	regREFP1  = 0x0C
	regPF0    = 0x0D
	regPF1    = 0x0E
	regPF2    = 0x0F
	regRESP0  = 0x10
	regRESP1  = 0x11
	regRESM0  = 0x12
	regRESM1  = 0x13
	regRESBL  = 0x14
	regGRP0   = 0x1B
	regGRP1   = 0x1C
	regENAM0  = 0x1D
	regENAM1  = 0x1E
	regENABL  = 0x1F
	regHMP0   = 0x20
	regHMP1   = 0x21
	regHMM0   = 0x22
	regHMM1   = 0x23
	regHMBL   = 0x24
	regRESMP0 = 0x28
	regRESMP1 = 0x29
	regHMOVE  = 0x2A
	regHMCLR  = 0x2B
	regCXCLR  = 0x2C
)

// TIA is the full chip: beam position, the write-side register state, the
// read-side collision and input latches, and the rendered framebuffer.
type TIA struct {
	TiaCycle int
	Scanline int

	vsyncActive  bool
	vblankActive bool
	wsyncActive  bool
	vsyncLines   int

	colup0, colup1, colupf, colubk uint8

	pf0, pf1, pf2 uint8
	ctrlpf        uint8

	grp0, grp1     uint8
	refp0, refp1   bool
	nusiz0, nusiz1 uint8
	p0X, p1X       int

	enam0, enam1   bool
	m0X, m1X       int
	resmp0, resmp1 bool

	enabl bool
	blX   int

	hmp0, hmp1, hmm0, hmm1, hmbl int8
	hmovePending                 bool

	collisions [8]uint8

	inputLatchEnabled                bool
	trigger0Pressed, trigger1Pressed bool
	trigger0Latch, trigger1Latch     bool

	// Framebuffer holds one color code per (scanline, column). It is
	// overwritten in place every frame; the driver reads it between Clock
	// calls.
	Framebuffer [Scanlines][visibleColumns]uint8
}

// New returns a TIA with its beam and registers at their power-on state.
func New() *TIA {
	return &TIA{}
}

// WSYNCActive reports whether the bus should keep stalling the CPU.
func (t *TIA) WSYNCActive() bool {
	return t.wsyncActive
}

// WriteStrobe writes one of the 64 write-side registers at offset reg
// (already masked to 6 bits by the bus). Strobe registers take effect
// immediately regardless of the data byte; ordinary registers just store
// their value. Unknown offsets are silently ignored.
func (t *TIA) WriteStrobe(reg uint8, v uint8) {
	switch reg {
	case regVSYNC:
		t.vsyncActive = v&0x02 != 0
	case regVBLANK:
		t.vblankActive = v&0x02 != 0
		latch := v&0x40 != 0
		if latch && !t.inputLatchEnabled {
			t.trigger0Latch = false
			t.trigger1Latch = false
		}
		t.inputLatchEnabled = latch
	case regWSYNC:
		t.wsyncActive = true
	case regNUSIZ0:
		t.nusiz0 = v
	case regNUSIZ1:
		t.nusiz1 = v
	case regCOLUP0:
		t.colup0 = v
	case regCOLUP1:
		t.colup1 = v
	case regCOLUPF:
		t.colupf = v
	case regCOLUBK:
		t.colubk = v
	case regCTRLPF:
		t.ctrlpf = v
	case regREFP0:
		t.refp0 = v&0x08 != 0
	case regREFP1:
		t.refp1 = v&0x08 != 0
	case regPF0:
		t.pf0 = v
	case regPF1:
		t.pf1 = v
	case regPF2:
		t.pf2 = v
	case regRESP0:
		t.p0X = t.beamColumn()
	case regRESP1:
		t.p1X = t.beamColumn()
	case regRESM0:
		t.m0X = t.beamColumn()
	case regRESM1:
		t.m1X = t.beamColumn()
	case regRESBL:
		t.blX = t.beamColumn()
	case regGRP0:
		t.grp0 = v
	case regGRP1:
		t.grp1 = v
	case regENAM0:
		t.enam0 = v&0x02 != 0
	case regENAM1:
		t.enam1 = v&0x02 != 0
	case regENABL:
		t.enabl = v&0x02 != 0
	case regHMP0:
		t.hmp0 = decodeMotion(v)
	case regHMP1:
		t.hmp1 = decodeMotion(v)
	case regHMM0:
		t.hmm0 = decodeMotion(v)
	case regHMM1:
		t.hmm1 = decodeMotion(v)
	case regHMBL:
		t.hmbl = decodeMotion(v)
	case regRESMP0:
		t.resmp0 = v&0x02 != 0
		if t.resmp0 {
			t.m0X = t.p0X
		}
	case regRESMP1:
		t.resmp1 = v&0x02 != 0
		if t.resmp1 {
			t.m1X = t.p1X
		}
	case regHMOVE:
		t.hmovePending = true
	case regHMCLR:
		t.hmp0, t.hmp1, t.hmm0, t.hmm1, t.hmbl = 0, 0, 0, 0, 0
	case regCXCLR:
		t.collisions = [8]uint8{}
	}
}

// beamColumn derives an object's latched X from the current beam position:
// the visible column the beam is about to draw, nudged by the TIA's
// documented 8-pixel strobe pipeline, wrapped into the 160-column window.
func (t *TIA) beamColumn() int {
	x := t.TiaCycle - hblankClocks + 8
	x %= visibleColumns
	if x < 0 {
		x += visibleColumns
	}
	return x
}

func decodeMotion(v uint8) int8 {
	nibble := int8(v&0xF0) >> 4
	return nibble
}

// ReadCollision returns a collision latch or input register by its offset
// in the read-side window (0-7 collisions, 8-13 inputs). Reads mirror
// every $10.
func (t *TIA) ReadCollision(reg addresses.ChipRegister) uint8 {
	switch reg {
	case addresses.CXM0P:
		return t.collisions[0]
	case addresses.CXM1P:
		return t.collisions[1]
	case addresses.CXP0FB:
		return t.collisions[2]
	case addresses.CXP1FB:
		return t.collisions[3]
	case addresses.CXM0FB:
		return t.collisions[4]
	case addresses.CXM1FB:
		return t.collisions[5]
	case addresses.CXBLPF:
		return t.collisions[6]
	case addresses.CXPPMM:
		return t.collisions[7]
	case addresses.INPT0, addresses.INPT1, addresses.INPT2, addresses.INPT3:
		return 0
	case addresses.INPT4:
		return t.readTrigger(0)
	case addresses.INPT5:
		return t.readTrigger(1)
	}
	return 0
}

func (t *TIA) readTrigger(which int) uint8 {
	pressed := t.trigger0Pressed
	latched := t.trigger0Latch
	if which == 1 {
		pressed = t.trigger1Pressed
		latched = t.trigger1Latch
	}
	if t.inputLatchEnabled && latched {
		return 0x00
	}
	if pressed {
		return 0x00
	}
	return 0x80
}

// SetTrigger0 and SetTrigger1 update the fire-button pins; pressed is true
// when the button is held down.
func (t *TIA) SetTrigger0(pressed bool) {
	t.trigger0Pressed = pressed
	if pressed {
		t.trigger0Latch = true
	}
}

func (t *TIA) SetTrigger1(pressed bool) {
	t.trigger1Pressed = pressed
	if pressed {
		t.trigger1Latch = true
	}
}

// Clock advances the beam by one color clock: it may apply pending HMOVE
// deltas, render one pixel, latch collisions, and roll the beam position
// over into the next scanline or frame.
func (t *TIA) Clock() {
	if t.TiaCycle == 0 && t.hmovePending {
		t.applyMotion()
		t.hmovePending = false
	}

	if t.TiaCycle >= hblankClocks {
		x := t.TiaCycle - hblankClocks
		t.renderColumn(x)
	}

	if t.resmp0 {
		t.m0X = t.p0X
	}
	if t.resmp1 {
		t.m1X = t.p1X
	}

	t.TiaCycle++
	if t.TiaCycle >= ClocksPerScanline {
		t.TiaCycle = 0
		t.wsyncActive = false
		t.advanceScanline()
	}
}

func (t *TIA) advanceScanline() {
	if t.vsyncActive {
		t.vsyncLines++
	} else if t.vsyncLines >= 3 {
		t.vsyncLines = 0
		t.Scanline = 0
		return
	} else {
		t.vsyncLines = 0
	}

	t.Scanline++
	if t.Scanline >= Scanlines {
		t.Scanline = 0
	}
}

func wrap160(x int) int {
	x %= visibleColumns
	if x < 0 {
		x += visibleColumns
	}
	return x
}

func (t *TIA) applyMotion() {
	t.p0X = wrap160(t.p0X - int(t.hmp0))
	t.p1X = wrap160(t.p1X - int(t.hmp1))
	t.m0X = wrap160(t.m0X - int(t.hmm0))
	t.m1X = wrap160(t.m1X - int(t.hmm1))
	t.blX = wrap160(t.blX - int(t.hmbl))
}

func (t *TIA) renderColumn(x int) {
	pfOn, pfColor := t.playfieldAt(x)
	p0On := t.playerAt(x, t.p0X, t.nusiz0, t.grp0, t.refp0)
	p1On := t.playerAt(x, t.p1X, t.nusiz1, t.grp1, t.refp1)
	m0On := t.enam0 && t.missileAt(x, t.m0X, t.nusiz0)
	m1On := t.enam1 && t.missileAt(x, t.m1X, t.nusiz1)
	blOn := t.enabl && t.ballAt(x)

	t.latchCollisions(p0On, p1On, m0On, m1On, blOn, pfOn)

	if t.vsyncActive || t.vblankActive {
		t.Framebuffer[t.Scanline][x] = 0
		return
	}

	t.Framebuffer[t.Scanline][x] = t.selectColor(pfOn, pfColor, p0On, p1On, m0On, m1On, blOn)
}

// selectColor applies TIA priority: normally players/missiles sit in front
// of playfield/ball, but CTRLPF bit 2 reverses that for playfield+ball.
func (t *TIA) selectColor(pfOn bool, pfColor uint8, p0On, p1On, m0On, m1On, blOn bool) uint8 {
	pfPriority := t.ctrlpf&0x04 != 0

	objectColor := func() (uint8, bool) {
		switch {
		case p0On || m0On:
			return t.colup0, true
		case p1On || m1On:
			return t.colup1, true
		}
		return 0, false
	}
	fieldColor := func() (uint8, bool) {
		switch {
		case pfOn:
			return pfColor, true
		case blOn:
			return t.colupf, true
		}
		return 0, false
	}

	if pfPriority {
		if c, ok := fieldColor(); ok {
			return c
		}
		if c, ok := objectColor(); ok {
			return c
		}
	} else {
		if c, ok := objectColor(); ok {
			return c
		}
		if c, ok := fieldColor(); ok {
			return c
		}
	}
	return t.colubk
}
