// Package memory implements the 6507 address bus: decoding of the 13
// usable address lines into the TIA, RIOT-RAM, RIOT-I/O and Cartridge
// regions, the WSYNC CPU-stall handshake, and per-CPU-cycle clocking of
// the other two chips at their documented ratios.
package memory

import (
	"github.com/schirmr/atari2600-emulator/hardware/memory/addresses"
	"github.com/schirmr/atari2600-emulator/hardware/memory/cartridge"
	"github.com/schirmr/atari2600-emulator/hardware/riot"
	"github.com/schirmr/atari2600-emulator/hardware/tia"
)

const addressMask = 0x1FFF

// riot I/O register-select offsets, masked to the 6532's 5 address lines.
const (
	riotOffA        = 0x00
	riotOffADDR     = 0x01
	riotOffB        = 0x02
	riotOffBDDR     = 0x03
	riotOffINTIM    = 0x04
	riotOffTIMINT   = 0x05
	riotOffTIM1T    = 0x14
	riotOffTIM8T    = 0x15
	riotOffTIM64T   = 0x16
	riotOffTIM1024T = 0x17
)

// Bus wires the CPU to the cartridge, TIA and RIOT. It is the sole owner of
// address decoding; TIA and RIOT are non-owning references supplied by the
// Machine that constructs them all.
type Bus struct {
	cart *cartridge.Cartridge
	tia  *tia.TIA
	riot *riot.RIOT
}

// New returns a Bus wired to the given chips.
func New(cart *cartridge.Cartridge, t *tia.TIA, r *riot.RIOT) *Bus {
	return &Bus{cart: cart, tia: t, riot: r}
}

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint16) (uint8, error) {
	addr &= addressMask

	switch {
	case addr&0x1000 != 0:
		return b.cart.Read(addr), nil

	case addr&0x0080 == 0:
		offset := addr & 0x0F
		if int(offset) >= len(addresses.DataMasks) {
			return uint8(addr), nil
		}
		idx := addresses.ChipRegister(offset)
		mask := addresses.DataMasks[idx]
		value := b.tia.ReadCollision(idx) & mask
		leftover := uint8(addr) &^ mask
		return value | leftover, nil

	case addr&0x0280 == 0x0080:
		return b.riot.ReadRAM(uint8(addr & 0x7F)), nil

	default:
		return b.readRIOTIO(uint8(addr & 0x1F)), nil
	}
}

func (b *Bus) readRIOTIO(offset uint8) uint8 {
	switch offset {
	case riotOffA:
		return b.riot.ReadRegister(addresses.SWCHA)
	case riotOffADDR:
		return b.riot.ReadRegister(addresses.SWACNT)
	case riotOffB:
		return b.riot.ReadRegister(addresses.SWCHB)
	case riotOffBDDR:
		return b.riot.ReadRegister(addresses.SWBCNT)
	case riotOffINTIM:
		return b.riot.ReadRegister(addresses.INTIM)
	case riotOffTIMINT:
		return b.riot.ReadRegister(addresses.TIMINT)
	}
	return 0
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, v uint8) error {
	addr &= addressMask

	switch {
	case addr&0x1000 != 0:
		b.cart.Write(addr)

	case addr&0x0080 == 0:
		b.tia.WriteStrobe(uint8(addr&0x3F), v)

	case addr&0x0280 == 0x0080:
		b.riot.WriteRAM(uint8(addr&0x7F), v)

	default:
		b.writeRIOTIO(uint8(addr&0x1F), v)
	}

	return nil
}

func (b *Bus) writeRIOTIO(offset uint8, v uint8) {
	switch offset {
	case riotOffA:
		b.riot.WriteRegister(addresses.SWCHA, v)
	case riotOffADDR:
		b.riot.WriteRegister(addresses.SWACNT, v)
	case riotOffB:
		b.riot.WriteRegister(addresses.SWCHB, v)
	case riotOffBDDR:
		b.riot.WriteRegister(addresses.SWBCNT, v)
	case riotOffTIM1T:
		b.riot.WriteTimer(1, v)
	case riotOffTIM8T:
		b.riot.WriteTimer(8, v)
	case riotOffTIM64T:
		b.riot.WriteTimer(64, v)
	case riotOffTIM1024T:
		b.riot.WriteTimer(1024, v)
	}
}

// AdvanceCycles clocks RIOT and TIA for n CPU cycles: one RIOT step and
// three TIA color clocks per cycle. If a WSYNC strobe landed during the
// CPU instruction just executed, this also drains the rest of the current
// scanline before returning, which is how the bus implements the WSYNC
// stall without needing to suspend the CPU mid-instruction.
func (b *Bus) AdvanceCycles(n int) {
	for i := 0; i < n; i++ {
		b.riot.Step(1)
		b.tia.Clock()
		b.tia.Clock()
		b.tia.Clock()
	}

	for b.tia.WSYNCActive() {
		b.riot.Step(1)
		b.tia.Clock()
		b.tia.Clock()
		b.tia.Clock()
	}
}
