package tia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schirmr/atari2600-emulator/hardware/memory/addresses"
	"github.com/schirmr/atari2600-emulator/hardware/tia"
)

func clockScanline(t *tia.TIA) {
	for i := 0; i < tia.ClocksPerScanline; i++ {
		t.Clock()
	}
}

func TestBeamWrapsWithinBounds(t *testing.T) {
	chip := tia.New()
	for i := 0; i < tia.ClocksPerScanline*10; i++ {
		chip.Clock()
		assert.True(t, chip.TiaCycle >= 0 && chip.TiaCycle < tia.ClocksPerScanline)
		assert.True(t, chip.Scanline >= 0 && chip.Scanline < tia.Scanlines)
	}
}

func TestWSYNCClearsAtEndOfScanline(t *testing.T) {
	chip := tia.New()
	for i := 0; i < 10; i++ {
		chip.Clock()
	}
	chip.WriteStrobe(0x02, 0x00) // WSYNC
	assert.True(t, chip.WSYNCActive())

	for chip.TiaCycle != 0 {
		chip.Clock()
	}
	assert.False(t, chip.WSYNCActive())
}

func TestPlayfieldReflectedScanline(t *testing.T) {
	chip := tia.New()
	chip.WriteStrobe(0x0D, 0xF0) // PF0
	chip.WriteStrobe(0x0E, 0xFF) // PF1
	chip.WriteStrobe(0x0F, 0xFF) // PF2
	chip.WriteStrobe(0x08, 0x1E) // COLUPF
	chip.WriteStrobe(0x09, 0x00) // COLUBK
	chip.WriteStrobe(0x0A, 0x01) // CTRLPF reflect

	clockScanline(chip)

	for x := 0; x < 80; x++ {
		assert.Equal(t, uint8(0x1E), chip.Framebuffer[0][x], "left column %d", x)
	}
	for x := 0; x < 80; x++ {
		mirrored := 159 - x
		assert.Equal(t, chip.Framebuffer[0][x], chip.Framebuffer[0][mirrored], "mirror at %d/%d", x, mirrored)
	}
}

func TestCollisionLatchAndClear(t *testing.T) {
	chip := tia.New()
	chip.WriteStrobe(0x1B, 0xFF) // GRP0 all on
	chip.WriteStrobe(0x1C, 0xFF) // GRP1 all on
	chip.WriteStrobe(0x06, 0x0E) // COLUP0
	chip.WriteStrobe(0x07, 0x0E) // COLUP1

	// advance beam to the visible window, then strobe both players to the
	// same X so their 8-pixel spans overlap.
	for chip.TiaCycle < 70 {
		chip.Clock()
	}
	chip.WriteStrobe(0x10, 0x00) // RESP0
	chip.WriteStrobe(0x11, 0x00) // RESP1

	for chip.TiaCycle < 90 {
		chip.Clock()
	}

	assert.Equal(t, uint8(0x80), chip.ReadCollision(addresses.CXPPMM))

	chip.WriteStrobe(0x2C, 0x00) // CXCLR
	assert.Equal(t, uint8(0x00), chip.ReadCollision(addresses.CXPPMM))
}

func TestHMOVEReversedSignMovesLeft(t *testing.T) {
	chip := tia.New()
	for chip.TiaCycle < 70 {
		chip.Clock()
	}
	chip.WriteStrobe(0x10, 0x00) // RESP0 latches p0X from the beam column
	chip.WriteStrobe(0x1B, 0x80) // GRP0: leftmost pixel only
	chip.WriteStrobe(0x06, 0x0E) // COLUP0

	chip.WriteStrobe(0x20, 0x10) // HMP0 = +1 (nibble 0x1 sign-extends to +1)
	chip.WriteStrobe(0x2A, 0x00) // HMOVE

	// run to the end of the scanline so the pending motion applies at the
	// start of the next one.
	for chip.TiaCycle != 0 {
		chip.Clock()
	}
	chip.Clock() // first clock of the new scanline applies the motion
	for chip.TiaCycle != 0 {
		chip.Clock()
	}

	// a positive nibble moves left under the documented reversed convention:
	// RESP0 at colour clock 70 latched column 10, so the player is drawn at 9.
	assert.Equal(t, uint8(0x0E), chip.Framebuffer[1][9])
	assert.Equal(t, uint8(0x00), chip.Framebuffer[1][10])
}
