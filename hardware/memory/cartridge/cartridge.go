// Package cartridge models the Atari 2600 cartridge: an immutable ROM
// image plus a bank-selection policy (the "mapper"). Two mappers are
// supported, matching the two sizes of image the core accepts: None for
// images up to 4 KB, mirrored to fill the cartridge window, and F8 for
// images of exactly 8 KB, switched between two 4 KB banks by address-bus
// hotspots.
package cartridge

import (
	"github.com/schirmr/atari2600-emulator/errors"
	"github.com/schirmr/atari2600-emulator/logger"
)

const (
	bankSize  = 4096
	maxSize   = 8192
	windowLen = 4096
)

// Mapper identifies the bank-switching scheme an image uses.
type Mapper int

const (
	// None is used for 2 KB and 4 KB images; they have a single bank,
	// mirrored across the 4 KB cartridge window if smaller than it.
	None Mapper = iota
	// F8 switches between two 4 KB banks via hotspots at $1FF8/$1FF9.
	F8
)

func (m Mapper) String() string {
	if m == F8 {
		return "F8"
	}
	return "None"
}

// Cartridge is the loaded ROM image together with its mapper state.
type Cartridge struct {
	mapper Mapper
	banks  [][]uint8

	// activeBank is always 0 for None. For F8 it defaults to 1, matching
	// the convention that the reset vector lives in the upper 4 KB.
	activeBank int
}

// NewFromData builds a Cartridge from a raw image. Images larger than 8 KB
// are truncated to 8 KB, with a warning recorded in the central logger. Images of exactly 8 KB are mapped with F8; smaller
// images use None and are mirrored to fill the 4 KB window.
func NewFromData(data []uint8) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, errors.Errorf(errors.CartridgeFileError, "empty image")
	}

	if len(data) > maxSize {
		logger.Logf("cartridge", "image of %d bytes truncated to %d bytes", len(data), maxSize)
		data = data[:maxSize]
	}

	if len(data) == maxSize {
		return &Cartridge{
			mapper: F8,
			banks: [][]uint8{
				append([]uint8(nil), data[:bankSize]...),
				append([]uint8(nil), data[bankSize:]...),
			},
			activeBank: 1,
		}, nil
	}

	mirrored := make([]uint8, windowLen)
	for i := range mirrored {
		mirrored[i] = data[i%len(data)]
	}
	return &Cartridge{
		mapper:     None,
		banks:      [][]uint8{mirrored},
		activeBank: 0,
	}, nil
}

// Mapper reports the cartridge's bank-switching scheme.
func (c *Cartridge) Mapper() Mapper {
	return c.mapper
}

// ActiveBank reports the index of the currently selected bank.
func (c *Cartridge) ActiveBank() int {
	return c.activeBank
}

// touch applies the bank-switch side effect of any bus access (read or
// write) to one of the hotspot addresses. addr is already masked to 13
// bits by the caller.
func (c *Cartridge) touch(addr uint16) {
	if c.mapper != F8 {
		return
	}
	switch addr {
	case 0x1FF8:
		c.activeBank = 0
	case 0x1FF9:
		c.activeBank = 1
	}
}

// Read returns the byte at addr (already masked to 13 bits by the caller;
// Read keeps only the low 12 bits to index the 4 KB window) after applying
// any hotspot side effect that addr itself triggers.
func (c *Cartridge) Read(addr uint16) uint8 {
	c.touch(addr)
	offset := int(addr & 0x0FFF)
	return c.banks[c.activeBank][offset%len(c.banks[c.activeBank])]
}

// Write applies the hotspot side effect of addr, if any; cartridge ROM
// itself is never modified.
func (c *Cartridge) Write(addr uint16) {
	c.touch(addr)
}
